package responses

import "medplan-service/internal/app/models"

type Event struct {
	ID          string `json:"id"`
	StaffID     string `json:"staff_id"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Specialty   string `json:"specialty,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`

	// Notifications reports best-effort channel delivery for the event
	// that was just scheduled. Failures here never fail the schedule.
	Notifications []models.ChannelDelivery `json:"notifications,omitempty"`
	Warning       string                   `json:"warning,omitempty"`
}
