package service

import (
	"context"
	"log"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/repository"
)

// SettingsService handles settings-related business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings returns the current settings, defaults included
func (s *SettingsService) GetSettings(ctx context.Context) (entity.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettings replaces the settings
func (s *SettingsService) UpdateSettings(ctx context.Context, settings entity.Settings) (entity.Settings, error) {
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return entity.Settings{}, err
	}
	log.Printf("[settings] GST enabled: %t", settings.GSTEnabled)
	return settings, nil
}

// ToggleGST flips GST on or off and returns the new settings
func (s *SettingsService) ToggleGST(ctx context.Context) (entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return entity.Settings{}, err
	}
	settings.GSTEnabled = !settings.GSTEnabled
	return s.UpdateSettings(ctx, settings)
}
