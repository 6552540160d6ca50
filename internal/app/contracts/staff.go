package contracts

import (
	"context"
	"medplan-service/internal/app/models"
)

type StaffRepository interface {
	FindByID(ctx context.Context, staffID string) (*models.StaffMember, error)
	FindByEmail(ctx context.Context, email string) (*models.StaffMember, error)
	Create(ctx context.Context, staff *models.StaffMember) (string, error)
	UpdateActive(ctx context.Context, staffID string, active bool) error
}
