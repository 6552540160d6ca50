package models

import "time"

type EventType string

const (
	EventTypeGuardShift      EventType = "guard_shift"
	EventTypeEmergency       EventType = "emergency"
	EventTypeClinicalMeeting EventType = "clinical_meeting"
)

type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusCancelled EventStatus = "cancelled"
)

// MedicalEvent is a staff member's commitment over a half-open time
// window [Start, End). Variant-specific data lives behind Type plus the
// optional payload fields; the conflict checker only reads the shared
// window fields.
type MedicalEvent struct {
	ID          string      `bson:"_id,omitempty"`
	StaffID     string      `bson:"staffId"`
	Type        EventType   `bson:"type"`
	Status      EventStatus `bson:"status"`
	Start       time.Time   `bson:"start"`
	End         time.Time   `bson:"end"`
	Specialty   string      `bson:"specialty,omitempty"`
	Description string      `bson:"description,omitempty"`
	CreatedAt   time.Time   `bson:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt"`
}

func (e *MedicalEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Overlaps uses half-open semantics: windows that merely touch at a
// boundary are back-to-back shifts, not a conflict.
func (e *MedicalEvent) Overlaps(other *MedicalEvent) bool {
	return e.Start.Before(other.End) && other.Start.Before(e.End)
}

// RequiresDescription reports whether the variant cannot be scheduled
// without free-text context.
func (e *MedicalEvent) RequiresDescription() bool {
	return e.Type == EventTypeEmergency || e.Type == EventTypeClinicalMeeting
}
