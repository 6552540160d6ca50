package scheduling

import (
	"context"
	"fmt"
	"medplan-service/internal/app/config"
	"medplan-service/internal/app/contracts"
	"medplan-service/internal/app/models"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/dto/requests"
	"medplan-service/internal/pkg/dto/responses"
	"medplan-service/internal/pkg/exceptions"
	"medplan-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	schedulingUsecaseInstance contracts.SchedulingUsecase
	onceSchedulingUsecase     sync.Once
)

const lockRetryInterval = 50 * time.Millisecond

type schedulingUsecase struct {
	StaffRepository contracts.StaffRepository
	EventRepository contracts.EventRepository
	OnCallService   contracts.OnCallService
	Dispatcher      contracts.NotificationDispatcher
	LockService     contracts.LockerService
	Checker         *ConflictChecker
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewSchedulingUsecase(
	staffRepository contracts.StaffRepository,
	eventRepository contracts.EventRepository,
	onCallService contracts.OnCallService,
	dispatcher contracts.NotificationDispatcher,
	lockService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SchedulingUsecase {
	onceSchedulingUsecase.Do(func() {
		instance := &schedulingUsecase{
			StaffRepository: staffRepository,
			EventRepository: eventRepository,
			OnCallService:   onCallService,
			Dispatcher:      dispatcher,
			LockService:     lockService,
			Checker:         NewConflictChecker(internalConfig.Quota),
			InternalConfig:  internalConfig,
			Log:             logger,
		}
		schedulingUsecaseInstance = instance
	})
	return schedulingUsecaseInstance
}

func (uc *schedulingUsecase) Schedule(ctx context.Context, request *requests.CreateEvent) (*responses.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.Schedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStaffIDKey, request.StaffID),
		zap.String(constvars.LoggingEventTypeKey, request.Type),
	)

	candidate, err := uc.buildCandidate(request)
	if err != nil {
		uc.Log.Error("schedulingUsecase.Schedule invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	staffMember, err := uc.resolveActiveStaff(ctx, request.StaffID)
	if err != nil {
		return nil, err
	}
	if candidate.Type == models.EventTypeGuardShift && !staffMember.IsMedical() {
		return nil, exceptions.ErrGuardRequiresMedicalRole(nil)
	}

	persisted, err := uc.checkAndPersist(ctx, candidate)
	if err != nil {
		uc.Log.Error("schedulingUsecase.Schedule rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStaffIDKey, request.StaffID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("schedulingUsecase.Schedule event persisted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, persisted.ID),
	)

	// notification is best effort and runs outside the lock; a failed
	// channel degrades to a warning on the response
	report := uc.notify(ctx, staffMember, persisted, request.Channels)

	response := buildEventResponse(persisted)
	response.Notifications = report.Deliveries
	if report.FailedCount() > 0 {
		response.Warning = "event scheduled, but some notifications could not be delivered"
	}
	return response, nil
}

func (uc *schedulingUsecase) Cancel(ctx context.Context, eventID string) (*responses.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
	)

	event, err := uc.EventRepository.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, exceptions.ErrEventNotFound(nil)
	}
	if event.Status == models.EventStatusCancelled {
		return nil, exceptions.ErrEventAlreadyCancelled(nil)
	}

	// cancellation frees capacity and never re-runs conflict checks; the
	// conditional update handles a concurrent double-cancel
	updated, err := uc.EventRepository.UpdateStatus(ctx, eventID, models.EventStatusScheduled, models.EventStatusCancelled)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrEventAlreadyCancelled(nil)
	}

	uc.Log.Info("schedulingUsecase.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
	)
	return buildEventResponse(updated), nil
}

func (uc *schedulingUsecase) ListByStaff(ctx context.Context, request *requests.ListEvents) ([]responses.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.FromTime, err = parseOptionalTime(request.From); err != nil {
		return nil, err
	}
	if request.ToTime, err = parseOptionalTime(request.To); err != nil {
		return nil, err
	}

	if _, err := uc.resolveStaff(ctx, request.StaffID); err != nil {
		return nil, err
	}

	events, err := uc.EventRepository.ListScheduledByStaff(ctx, request.StaffID, request.FromTime, request.ToTime)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("schedulingUsecase.ListByStaff succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStaffIDKey, request.StaffID),
		zap.Int(constvars.LoggingScheduledEventsCountKey, len(events)),
	)

	result := make([]responses.Event, 0, len(events))
	for i := range events {
		result = append(result, *buildEventResponse(&events[i]))
	}
	return result, nil
}

// checkAndPersist serializes the fetch-check-insert sequence per staff
// member behind the redis lock so two concurrent requests cannot both
// validate against the same stale snapshot.
func (uc *schedulingUsecase) checkAndPersist(ctx context.Context, candidate *models.MedicalEvent) (*models.MedicalEvent, error) {
	lockKey := fmt.Sprintf(constvars.RedisKeyScheduleLockFormat, candidate.StaffID)
	lockTTL := time.Duration(uc.InternalConfig.Quota.LockTTLInSeconds) * time.Second

	lockValue, err := uc.acquireLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	defer uc.LockService.Unlock(ctx, lockKey, lockValue)

	existing, err := uc.EventRepository.ListScheduledByStaff(ctx, candidate.StaffID, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	outcome := uc.Checker.Check(candidate, existing)
	switch outcome.Kind {
	case OutcomeRejectedOverlap:
		return nil, exceptions.ErrScheduleConflict(outcome.ConflictingEventID)
	case OutcomeRejectedQuotaHours:
		return nil, exceptions.ErrGuardQuotaHoursExceeded(outcome.ComputedHours, outcome.LimitHours)
	case OutcomeRejectedQuotaCount:
		return nil, exceptions.ErrGuardQuotaCountExceeded(outcome.ComputedCount, outcome.LimitCount)
	}

	return uc.EventRepository.Insert(ctx, candidate)
}

func (uc *schedulingUsecase) acquireLock(ctx context.Context, key string, ttl time.Duration) (string, error) {
	for {
		acquired, lockValue, err := uc.LockService.TryLock(ctx, key, ttl)
		if err != nil {
			return "", err
		}
		if acquired {
			return lockValue, nil
		}

		select {
		case <-ctx.Done():
			return "", exceptions.ErrScheduleLockNotAcquired(ctx.Err())
		case <-time.After(lockRetryInterval):
		}
	}
}

func (uc *schedulingUsecase) buildCandidate(request *requests.CreateEvent) (*models.MedicalEvent, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	request.StartTime, err = time.Parse(time.RFC3339, request.Start)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	request.EndTime, err = time.Parse(time.RFC3339, request.End)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	if !request.EndTime.After(request.StartTime) {
		return nil, exceptions.ErrEndBeforeStart(nil)
	}

	candidate := &models.MedicalEvent{
		StaffID:     request.StaffID,
		Type:        models.EventType(request.Type),
		Status:      models.EventStatusScheduled,
		Start:       request.StartTime,
		End:         request.EndTime,
		Specialty:   request.Specialty,
		Description: request.Description,
	}
	if candidate.RequiresDescription() && candidate.Description == "" {
		return nil, exceptions.ErrDescriptionRequired(nil)
	}
	return candidate, nil
}

func (uc *schedulingUsecase) resolveStaff(ctx context.Context, staffID string) (*models.StaffMember, error) {
	staffMember, err := uc.StaffRepository.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staffMember == nil {
		return nil, exceptions.ErrStaffNotFound(nil)
	}
	return staffMember, nil
}

func (uc *schedulingUsecase) resolveActiveStaff(ctx context.Context, staffID string) (*models.StaffMember, error) {
	staffMember, err := uc.resolveStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if !staffMember.Active {
		return nil, exceptions.ErrStaffInactive(nil)
	}
	return staffMember, nil
}

func (uc *schedulingUsecase) notify(ctx context.Context, staffMember *models.StaffMember, event *models.MedicalEvent, channels []string) *models.DispatchReport {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if len(channels) == 0 {
		channels = []string{constvars.NotificationChannelInApp}
	}

	recipients := []string{staffMember.ID}
	if event.Type == models.EventTypeEmergency {
		onCallStaff, err := uc.OnCallService.ListOnCallStaff(ctx)
		if err != nil {
			uc.Log.Warn("schedulingUsecase.notify could not resolve on-call roster",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		for _, staffID := range onCallStaff {
			if staffID != staffMember.ID {
				recipients = append(recipients, staffID)
			}
		}
	}

	return uc.Dispatcher.Dispatch(ctx, &models.NotificationRequest{
		EventID:    event.ID,
		Recipients: recipients,
		Message:    buildNotificationMessage(event),
		Channels:   channels,
	})
}

func buildNotificationMessage(event *models.MedicalEvent) string {
	window := fmt.Sprintf("%s to %s",
		event.Start.Format(time.RFC3339),
		event.End.Format(time.RFC3339),
	)
	switch event.Type {
	case models.EventTypeEmergency:
		return fmt.Sprintf("Emergency reported: %s (%s)", event.Description, window)
	case models.EventTypeClinicalMeeting:
		return fmt.Sprintf("Clinical meeting scheduled: %s (%s)", event.Description, window)
	default:
		return fmt.Sprintf("Guard shift scheduled from %s", window)
	}
}

func buildEventResponse(event *models.MedicalEvent) *responses.Event {
	return &responses.Event{
		ID:          event.ID,
		StaffID:     event.StaffID,
		Type:        string(event.Type),
		Status:      string(event.Status),
		Start:       event.Start.Format(time.RFC3339),
		End:         event.End.Format(time.RFC3339),
		Specialty:   event.Specialty,
		Description: event.Description,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
	}
}

func parseOptionalTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	return parsed, nil
}
