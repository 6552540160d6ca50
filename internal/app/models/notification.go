package models

// NotificationRequest is the ephemeral fan-out order handed to the
// dispatcher after an event is persisted. It is never stored.
type NotificationRequest struct {
	EventID    string
	Recipients []string
	Message    string
	Channels   []string
}

type DeliveryStatus string

const (
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

type ChannelDelivery struct {
	Channel   string         `json:"channel"`
	Recipient string         `json:"recipient"`
	Status    DeliveryStatus `json:"status"`
	Reason    string         `json:"reason,omitempty"`
}

type DispatchReport struct {
	EventID    string            `json:"event_id"`
	Deliveries []ChannelDelivery `json:"deliveries"`
}

func (r *DispatchReport) FailedCount() int {
	failed := 0
	for _, d := range r.Deliveries {
		if d.Status == DeliveryStatusFailed {
			failed++
		}
	}
	return failed
}
