package contracts

import "context"

// OnCallService resolves the broadcast list notified on Emergency events.
type OnCallService interface {
	ListOnCallStaff(ctx context.Context) ([]string, error)
	AddOnCallStaff(ctx context.Context, staffID string) error
	RemoveOnCallStaff(ctx context.Context, staffID string) error
}
