package repository

import (
	"context"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
)

// SettingsRepository defines the interface for settings data access
type SettingsRepository interface {
	Get(ctx context.Context) (entity.Settings, error)
	Update(ctx context.Context, settings entity.Settings) error
}
