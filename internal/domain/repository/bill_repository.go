package repository

import (
	"context"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
)

// BillRepository defines the interface for the bill ledger
type BillRepository interface {
	// Append assigns id, bill number and date, then stores the bill
	Append(ctx context.Context, bill entity.Bill) (*entity.Bill, error)
	GetByID(ctx context.Context, id string) (*entity.Bill, error)
	// List returns bills most recent first
	List(ctx context.Context) ([]entity.Bill, error)
	Patch(ctx context.Context, id string, patch entity.BillPatch) (*entity.Bill, error)
}
