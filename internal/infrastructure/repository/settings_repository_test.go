package repository

import (
	"context"
	"testing"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/internal/infrastructure/storage"
	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_Get(t *testing.T) {
	tests := []struct {
		name        string
		blob        *string
		want        entity.Settings
		wantReports int
	}{
		{name: "absent", blob: nil, want: entity.Settings{GSTEnabled: true}},
		{name: "disabled", blob: strPtr(`{"gstEnabled":false}`), want: entity.Settings{GSTEnabled: false}},
		{name: "empty object keeps default", blob: strPtr(`{}`), want: entity.Settings{GSTEnabled: true}},
		{name: "corrupt", blob: strPtr(`gst=off`), want: entity.Settings{GSTEnabled: true}, wantReports: 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewMemoryStore()
			if testCase.blob != nil {
				require.NoError(t, store.Set(ctx, domainRepo.KeySettings, *testCase.blob))
			}
			recorder := diagnostics.NewRecorder()

			got, err := NewSettingsRepository(store, recorder).Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
			assert.Len(t, recorder.Entries(), testCase.wantReports)
		})
	}
}

func TestSettingsRepository_Update(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewSettingsRepository(store, nil)

	require.NoError(t, repo.Update(ctx, entity.Settings{GSTEnabled: false}))

	raw, ok, err := store.Get(ctx, domainRepo.KeySettings)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"gstEnabled":false}`, raw)
}
