package service

import (
	"testing"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart(t *testing.T) {
	samosa := menuItem("1", "Samosa", 20, 0)
	tea := menuItem("2", "Tea", 10, 0)

	cart := AddToCart(nil, samosa)
	cart = AddToCart(cart, tea)
	next := AddToCart(cart, samosa)

	require.Len(t, next, 2)
	assert.Equal(t, 2, next[0].Quantity)
	assert.Equal(t, 1, next[1].Quantity)
	assert.Equal(t, 1, cart[0].Quantity, "input cart is not modified")
}

func TestUpdateCartQuantity(t *testing.T) {
	cart := []entity.LineItem{
		line(menuItem("1", "Samosa", 20, 0), 1),
		line(menuItem("2", "Tea", 10, 0), 3),
	}

	tests := []struct {
		name     string
		id       string
		quantity int
		want     map[string]int
	}{
		{name: "set quantity", id: "2", quantity: 5, want: map[string]int{"1": 1, "2": 5}},
		{name: "zero removes", id: "1", quantity: 0, want: map[string]int{"2": 3}},
		{name: "negative removes", id: "2", quantity: -1, want: map[string]int{"1": 1}},
		{name: "unknown id", id: "9", quantity: 4, want: map[string]int{"1": 1, "2": 3}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := UpdateCartQuantity(cart, testCase.id, testCase.quantity)
			quantities := make(map[string]int, len(got))
			for _, l := range got {
				quantities[l.MenuItem.ID] = l.Quantity
			}
			assert.Equal(t, testCase.want, quantities)
			assert.Equal(t, 3, cart[1].Quantity)
		})
	}
}
