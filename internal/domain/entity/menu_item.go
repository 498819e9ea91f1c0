package entity

// MenuItem is a sellable catalog entry. The JSON layout is the persisted one.
type MenuItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OfferPrice    *float64 `json:"offerPrice"`
	GSTPercentage float64  `json:"gstPercentage"`
}

// UnitPrice is the offer price when one is set, otherwise the list price
func (m *MenuItem) UnitPrice() float64 {
	if m.OfferPrice != nil {
		return *m.OfferPrice
	}
	return m.Price
}

// Clone returns a deep copy, so the copy shares no pointers with m
func (m MenuItem) Clone() MenuItem {
	out := m
	if m.OfferPrice != nil {
		offer := *m.OfferPrice
		out.OfferPrice = &offer
	}
	return out
}

// MenuItemDraft carries raw, uncoerced form values for a menu item.
// A nil OfferPrice or GSTPercentage means the field was not submitted.
type MenuItemDraft struct {
	Name          string  `json:"name"`
	Price         string  `json:"price"`
	OfferPrice    *string `json:"offerPrice"`
	GSTPercentage *string `json:"gstPercentage"`
}
