package repository

import (
	"context"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
)

type settingsRepository struct {
	blob jsonBlob
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(store domainRepo.BlobStore, reporter diagnostics.Reporter) domainRepo.SettingsRepository {
	return &settingsRepository{blob: newJSONBlob(store, reporter)}
}

// Get returns the stored settings, or the defaults when absent or corrupt
func (r *settingsRepository) Get(ctx context.Context) (entity.Settings, error) {
	settings, err := loadBlob(ctx, r.blob, domainRepo.KeySettings, entity.DefaultSettings)
	if err != nil {
		return entity.Settings{}, err
	}
	return settings, nil
}

// Update replaces the stored settings
func (r *settingsRepository) Update(ctx context.Context, settings entity.Settings) error {
	return r.blob.save(ctx, domainRepo.KeySettings, settings)
}
