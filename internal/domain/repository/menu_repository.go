package repository

import (
	"context"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
)

// MenuRepository defines the interface for the menu catalog
type MenuRepository interface {
	Insert(ctx context.Context, draft entity.MenuItemDraft) (*entity.MenuItem, error)
	Update(ctx context.Context, id string, draft entity.MenuItemDraft) (*entity.MenuItem, error)
	GetByID(ctx context.Context, id string) (*entity.MenuItem, error)
	// List returns every item in insertion order
	List(ctx context.Context) ([]entity.MenuItem, error)
}
