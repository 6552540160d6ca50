package requests

import "time"

type CreateEvent struct {
	StaffID     string   `json:"staff_id" validate:"required"`
	Type        string   `json:"type" validate:"required,event_type"`
	Start       string   `json:"start" validate:"required"`
	End         string   `json:"end" validate:"required"`
	Specialty   string   `json:"specialty,omitempty"`
	Description string   `json:"description,omitempty"`
	Channels    []string `json:"channels,omitempty" validate:"omitempty,dive,notification_channel"`

	// Parsed timestamps, populated during request validation.
	StartTime time.Time `json:"-"`
	EndTime   time.Time `json:"-"`
}

type ListEvents struct {
	StaffID string `json:"staff_id" validate:"required"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`

	FromTime time.Time `json:"-"`
	ToTime   time.Time `json:"-"`
}
