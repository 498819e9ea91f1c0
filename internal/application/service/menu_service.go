package service

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
)

// MenuService handles menu catalog operations
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// ListItems returns the catalog in insertion order, optionally filtered by
// search: a case-insensitive match on the name or a substring of the price
func (s *MenuService) ListItems(ctx context.Context, search string) ([]entity.MenuItem, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterMenu(items, search), nil
}

// FilterMenu applies the billing screen search box to items
func FilterMenu(items []entity.MenuItem, search string) []entity.MenuItem {
	search = strings.TrimSpace(search)
	if search == "" {
		return items
	}

	needle := strings.ToLower(search)
	out := make([]entity.MenuItem, 0, len(items))
	for _, item := range items {
		price := strconv.FormatFloat(item.Price, 'f', -1, 64)
		if strings.Contains(strings.ToLower(item.Name), needle) || strings.Contains(price, search) {
			out = append(out, item)
		}
	}
	return out
}

// GetItem retrieves a menu item by id
func (s *MenuService) GetItem(ctx context.Context, id string) (*entity.MenuItem, error) {
	return s.menuRepo.GetByID(ctx, id)
}

// CreateItem adds a menu item from raw form values
func (s *MenuService) CreateItem(ctx context.Context, draft entity.MenuItemDraft) (*entity.MenuItem, error) {
	item, err := s.menuRepo.Insert(ctx, draft)
	if err != nil {
		return nil, err
	}
	log.Printf("[menu] added %q (%s)", item.Name, item.ID)
	return item, nil
}

// UpdateItem replaces a menu item's fields from raw form values
func (s *MenuService) UpdateItem(ctx context.Context, id string, draft entity.MenuItemDraft) (*entity.MenuItem, error) {
	item, err := s.menuRepo.Update(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	log.Printf("[menu] updated %q (%s)", item.Name, item.ID)
	return item, nil
}

// ResolveCart replaces each line's menu item with the current catalog
// entry, so clients only need to send ids and quantities
func (s *MenuService) ResolveCart(ctx context.Context, lines []CartLineInput) ([]entity.LineItem, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	var cart []entity.LineItem
	for _, line := range lines {
		item, ok := byID[line.MenuItemID]
		if !ok {
			return nil, apperror.NewNotFoundError("Menu item")
		}
		cart = UpdateCartQuantity(cart, item.ID, 0)
		if line.Quantity > 0 {
			cart = append(cart, entity.LineItem{MenuItem: item.Clone(), Quantity: line.Quantity})
		}
	}
	return cart, nil
}

// CartLineInput is a cart line as sent by clients
type CartLineInput struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity"`
}
