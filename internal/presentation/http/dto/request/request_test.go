package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuItemRequest_ToDraft(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantPrice string
		wantOffer *string
		wantGST   *string
	}{
		{
			name:      "numbers",
			body:      `{"name":"Samosa","price":20,"offerPrice":18.5,"gstPercentage":5}`,
			wantPrice: "20",
			wantOffer: strPtr("18.5"),
			wantGST:   strPtr("5"),
		},
		{
			name:      "strings",
			body:      `{"name":"Samosa","price":"20","offerPrice":"","gstPercentage":" 5 "}`,
			wantPrice: "20",
			wantOffer: strPtr(""),
			wantGST:   strPtr(" 5 "),
		},
		{
			name:      "omitted optional fields",
			body:      `{"name":"Samosa","price":"20"}`,
			wantPrice: "20",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var req MenuItemRequest
			require.NoError(t, json.Unmarshal([]byte(testCase.body), &req))
			draft := req.ToDraft()
			assert.Equal(t, "Samosa", draft.Name)
			assert.Equal(t, testCase.wantPrice, draft.Price)
			assert.Equal(t, testCase.wantOffer, draft.OfferPrice)
			assert.Equal(t, testCase.wantGST, draft.GSTPercentage)
		})
	}
}

func TestFormValue_RejectsObjects(t *testing.T) {
	var req MenuItemRequest
	assert.Error(t, json.Unmarshal([]byte(`{"price":{"a":1}}`), &req))
}

func TestParseCash(t *testing.T) {
	cash, err := ParseCash(nil)
	require.NoError(t, err)
	assert.Nil(t, cash)

	blank := FormValue("  ")
	cash, err = ParseCash(&blank)
	require.NoError(t, err)
	assert.Nil(t, cash)

	v := FormValue("150")
	cash, err = ParseCash(&v)
	require.NoError(t, err)
	assert.Equal(t, 150.0, *cash)

	for _, bad := range []FormValue{"abc", "NaN", "-5"} {
		_, err = ParseCash(&bad)
		assert.Error(t, err, string(bad))
	}
}

func TestCreateBillRequest_Method(t *testing.T) {
	assert.Equal(t, "CASH", CreateBillRequest{PaymentMethod: "cash"}.Method().String())
	assert.Equal(t, "", CreateBillRequest{PaymentMethod: "card"}.Method().String())
}

func TestPrintReceiptRequest_CopyCount(t *testing.T) {
	assert.Equal(t, 1, PrintReceiptRequest{}.CopyCount())
	assert.Equal(t, 3, PrintReceiptRequest{Copies: 3}.CopyCount())
}

func strPtr(s string) *string {
	return &s
}
