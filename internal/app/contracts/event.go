package contracts

import (
	"context"
	"medplan-service/internal/app/models"
	"time"
)

type EventRepository interface {
	// ListScheduledByStaff returns a staff member's Scheduled events ordered
	// by start time. Zero-valued from/to disable the range filter.
	ListScheduledByStaff(ctx context.Context, staffID string, from, to time.Time) ([]models.MedicalEvent, error)
	FindByID(ctx context.Context, eventID string) (*models.MedicalEvent, error)
	Insert(ctx context.Context, event *models.MedicalEvent) (*models.MedicalEvent, error)
	// UpdateStatus transitions eventID from one status to another and
	// returns the updated document. The transition is conditional on the
	// current status so concurrent writers cannot both win.
	UpdateStatus(ctx context.Context, eventID string, from, to models.EventStatus) (*models.MedicalEvent, error)
}
