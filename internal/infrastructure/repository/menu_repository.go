package repository

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
	"github.com/sangkips/snacksbunk-pos/pkg/utils"
)

const (
	opSaveMenuItem = "save menu item"

	msgMenuFieldsRequired = "Item name and price are required"
	msgInvalidItemData    = "Invalid item data"
)

type menuRepository struct {
	blob  jsonBlob
	newID func() string
}

// NewMenuRepository creates a menu catalog stored under the menuItems blob
func NewMenuRepository(store domainRepo.BlobStore, reporter diagnostics.Reporter) domainRepo.MenuRepository {
	return &menuRepository{
		blob:  newJSONBlob(store, reporter),
		newID: utils.NewID,
	}
}

func emptyMenu() []entity.MenuItem { return []entity.MenuItem{} }

func (r *menuRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	items, err := loadBlob(ctx, r.blob, domainRepo.KeyMenuItems, emptyMenu)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.MenuItem{}
	}
	return items, nil
}

func (r *menuRepository) listForWrite(ctx context.Context) ([]entity.MenuItem, error) {
	items, err := loadForWrite(ctx, r.blob, domainRepo.KeyMenuItems, opSaveMenuItem, emptyMenu)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.MenuItem{}
	}
	return items, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Menu item")
}

func (r *menuRepository) Insert(ctx context.Context, draft entity.MenuItemDraft) (*entity.MenuItem, error) {
	item, err := coerceDraft(draft, entity.MenuItem{}, msgMenuFieldsRequired)
	if err != nil {
		return nil, err
	}

	items, err := r.listForWrite(ctx)
	if err != nil {
		return nil, err
	}

	item.ID = r.newID()
	items = append(items, item)
	if err := r.blob.save(ctx, domainRepo.KeyMenuItems, items); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) Update(ctx context.Context, id string, draft entity.MenuItemDraft) (*entity.MenuItem, error) {
	items, err := r.listForWrite(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	item, err := coerceDraft(draft, items[idx], msgInvalidItemData)
	if err != nil {
		return nil, err
	}
	item.ID = id
	items[idx] = item

	if err := r.blob.save(ctx, domainRepo.KeyMenuItems, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// coerceDraft applies draft on top of prior. Name and price are always
// required; an omitted offer or GST keeps the prior value, an empty one clears it.
func coerceDraft(draft entity.MenuItemDraft, prior entity.MenuItem, missingMsg string) (entity.MenuItem, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" || strings.TrimSpace(draft.Price) == "" {
		return entity.MenuItem{}, apperror.NewBadRequestError(missingMsg)
	}

	var fieldErrors []apperror.FieldError
	item := prior
	item.Name = name

	price, ok := parseAmount(draft.Price)
	if !ok {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "must be a non-negative number"})
	}
	item.Price = price

	if draft.OfferPrice != nil {
		if strings.TrimSpace(*draft.OfferPrice) == "" {
			item.OfferPrice = nil
		} else if offer, ok := parseAmount(*draft.OfferPrice); ok {
			item.OfferPrice = &offer
		} else {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "offerPrice", Message: "must be a non-negative number"})
		}
	} else if prior.OfferPrice != nil {
		offer := *prior.OfferPrice
		item.OfferPrice = &offer
	}

	if draft.GSTPercentage != nil {
		if strings.TrimSpace(*draft.GSTPercentage) == "" {
			item.GSTPercentage = 0
		} else if gst, ok := parseAmount(*draft.GSTPercentage); ok && gst <= 100 {
			item.GSTPercentage = gst
		} else {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "gstPercentage", Message: "must be between 0 and 100"})
		}
	}

	if len(fieldErrors) > 0 {
		return entity.MenuItem{}, apperror.NewValidationError(fieldErrors)
	}
	return item, nil
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
