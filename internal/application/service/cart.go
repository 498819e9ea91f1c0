package service

import "github.com/sangkips/snacksbunk-pos/internal/domain/entity"

// AddToCart increments the quantity of an item already in the cart, or
// appends it with quantity 1. The input slice is not modified.
func AddToCart(cart []entity.LineItem, item entity.MenuItem) []entity.LineItem {
	out := entity.CloneLines(cart)
	for i := range out {
		if out[i].MenuItem.ID == item.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, entity.LineItem{MenuItem: item.Clone(), Quantity: 1})
}

// UpdateCartQuantity sets the quantity for itemID; zero or less removes the line
func UpdateCartQuantity(cart []entity.LineItem, itemID string, quantity int) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(cart))
	for _, line := range cart {
		if line.MenuItem.ID != itemID {
			out = append(out, line.Clone())
			continue
		}
		if quantity > 0 {
			line = line.Clone()
			line.Quantity = quantity
			out = append(out, line)
		}
	}
	return out
}
