package request

// PrintReceiptRequest is the optional body for printing a bill receipt.
type PrintReceiptRequest struct {
	Copies int `json:"copies" binding:"omitempty,min=1,max=5"`
}

// CopyCount defaults to a single copy
func (r PrintReceiptRequest) CopyCount() int {
	if r.Copies < 1 {
		return 1
	}
	return r.Copies
}
