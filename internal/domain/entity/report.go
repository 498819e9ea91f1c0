package entity

// DateTotal is the per-day cash register aggregate. Never persisted.
type DateTotal struct {
	Date  string  `json:"date"`
	Cash  float64 `json:"cash"`
	UPI   float64 `json:"upi"`
	Total float64 `json:"total"`
}
