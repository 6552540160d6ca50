package contracts

import (
	"context"
	"medplan-service/internal/pkg/dto/requests"
	"medplan-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterStaff) (*responses.Staff, error)
	Login(ctx context.Context, request *requests.LoginStaff) (*responses.Login, error)
	SetActive(ctx context.Context, staffID string, active bool) error
}
