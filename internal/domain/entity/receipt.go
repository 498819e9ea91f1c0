package entity

// ReceiptHeader holds the shop header printed at the top of a receipt.
type ReceiptHeader struct {
	ShopName string `json:"shop_name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	GSTIN    string `json:"gstin,omitempty"`
}

// ReceiptItem represents a single line on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	GST       float64 `json:"gst"`
	Total     float64 `json:"total"`
}

// Receipt is a printable view of a bill, composed at print time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	BillNo        int           `json:"bill_no"`
	Date          string        `json:"date"`
	PaymentMethod string        `json:"payment_method"`
	Items         []ReceiptItem `json:"items"`
	ShowGST       bool          `json:"show_gst"`
	SubTotal      float64       `json:"sub_total"`
	GST           float64       `json:"gst"`
	Total         float64       `json:"total"`
	CashReceived  *float64      `json:"cash_received,omitempty"`
	Change        float64       `json:"change"`
}
