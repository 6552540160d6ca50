package oncall

import (
	"context"
	"medplan-service/internal/app/contracts"
	"medplan-service/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

var (
	onCallServiceInstance contracts.OnCallService
	onceOnCallService     sync.Once
)

type onCallService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewOnCallService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.OnCallService {
	onceOnCallService.Do(func() {
		instance := &onCallService{
			RedisRepository: redisRepository,
			Log:             logger,
		}
		onCallServiceInstance = instance
	})
	return onCallServiceInstance
}

func (s *onCallService) ListOnCallStaff(ctx context.Context) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	members, err := s.RedisRepository.GetSetMembers(ctx, constvars.RedisKeyOnCallStaffSet)
	if err != nil {
		s.Log.Error("onCallService.ListOnCallStaff error reading roster",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	s.Log.Debug("onCallService.ListOnCallStaff succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOnCallStaffCountKey, len(members)),
	)
	return members, nil
}

func (s *onCallService) AddOnCallStaff(ctx context.Context, staffID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := s.RedisRepository.AddToSet(ctx, constvars.RedisKeyOnCallStaffSet, staffID)
	if err != nil {
		s.Log.Error("onCallService.AddOnCallStaff error adding to roster",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStaffIDKey, staffID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *onCallService) RemoveOnCallStaff(ctx context.Context, staffID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := s.RedisRepository.RemoveFromSet(ctx, constvars.RedisKeyOnCallStaffSet, staffID)
	if err != nil {
		s.Log.Error("onCallService.RemoveOnCallStaff error removing from roster",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStaffIDKey, staffID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
