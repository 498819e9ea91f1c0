package service

import (
	"context"
	"testing"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService(t *testing.T) {
	s := newStores(t)
	svc := NewSettingsService(s.settings)
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.GSTEnabled, "GST is on by default")

	settings, err = svc.ToggleGST(ctx)
	require.NoError(t, err)
	assert.False(t, settings.GSTEnabled)

	settings, err = svc.ToggleGST(ctx)
	require.NoError(t, err)
	assert.True(t, settings.GSTEnabled)

	_, err = svc.UpdateSettings(ctx, entity.Settings{GSTEnabled: false})
	require.NoError(t, err)
	stored, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.False(t, stored.GSTEnabled)
}
