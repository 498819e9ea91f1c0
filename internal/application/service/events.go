package service

import (
	"context"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
)

const EventBillCreated = "bill.created"

// BillEvent is published after a bill is stored
type BillEvent struct {
	Type          string             `json:"type"`
	BillID        string             `json:"bill_id"`
	BillNumber    int                `json:"bill_number"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	BillTotal     float64            `json:"bill_total"`
	ItemCount     int                `json:"item_count"`
	Date          time.Time          `json:"date"`
}

// NewBillCreatedEvent builds the event for a stored bill
func NewBillCreatedEvent(bill *entity.Bill) BillEvent {
	count := 0
	for _, line := range bill.Items {
		count += line.Quantity
	}
	return BillEvent{
		Type:          EventBillCreated,
		BillID:        bill.ID,
		BillNumber:    bill.BillNumber,
		PaymentMethod: bill.PaymentMethod,
		BillTotal:     bill.BillTotal,
		ItemCount:     count,
		Date:          bill.Date,
	}
}

// BillEventPublisher delivers bill events to downstream consumers
type BillEventPublisher interface {
	Publish(ctx context.Context, event BillEvent) error
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event
func NewNoopPublisher() BillEventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, BillEvent) error { return nil }
