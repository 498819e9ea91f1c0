package request

import "github.com/sangkips/snacksbunk-pos/internal/domain/entity"

// MenuItemRequest represents a create or update request for a menu item.
// Leaving offerPrice or gstPercentage out keeps the stored value; sending
// an empty string clears it.
type MenuItemRequest struct {
	Name          string     `json:"name"`
	Price         FormValue  `json:"price"`
	OfferPrice    *FormValue `json:"offerPrice"`
	GSTPercentage *FormValue `json:"gstPercentage"`
}

// ToDraft converts the request into an uncoerced menu item draft
func (r MenuItemRequest) ToDraft() entity.MenuItemDraft {
	return entity.MenuItemDraft{
		Name:          r.Name,
		Price:         r.Price.String(),
		OfferPrice:    optional(r.OfferPrice),
		GSTPercentage: optional(r.GSTPercentage),
	}
}
