package contracts

import (
	"context"
	"medplan-service/internal/pkg/dto/requests"
	"medplan-service/internal/pkg/dto/responses"
)

type SchedulingUsecase interface {
	Schedule(ctx context.Context, request *requests.CreateEvent) (*responses.Event, error)
	Cancel(ctx context.Context, eventID string) (*responses.Event, error)
	ListByStaff(ctx context.Context, request *requests.ListEvents) ([]responses.Event, error)
}
