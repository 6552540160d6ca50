package scheduling

import (
	"context"
	"fmt"
	"medplan-service/internal/app/config"
	"medplan-service/internal/app/contracts"
	"medplan-service/internal/app/models"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/dto/requests"
	"medplan-service/internal/pkg/exceptions"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staffRepositoryStub struct {
	mu      sync.Mutex
	members map[string]*models.StaffMember
}

func (s *staffRepositoryStub) FindByID(_ context.Context, staffID string) (*models.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	member, ok := s.members[staffID]
	if !ok {
		return nil, nil
	}
	clone := *member
	return &clone, nil
}

func (s *staffRepositoryStub) FindByEmail(_ context.Context, email string) (*models.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, member := range s.members {
		if member.Email == email {
			clone := *member
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *staffRepositoryStub) Create(_ context.Context, staff *models.StaffMember) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("staff-%d", len(s.members)+1)
	clone := *staff
	clone.ID = id
	s.members[id] = &clone
	return id, nil
}

func (s *staffRepositoryStub) UpdateActive(_ context.Context, staffID string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	member, ok := s.members[staffID]
	if !ok {
		return exceptions.ErrStaffNotFound(nil)
	}
	member.Active = active
	return nil
}

type eventRepositoryStub struct {
	mu     sync.Mutex
	nextID int
	events map[string]*models.MedicalEvent

	// listDelay widens the fetch-to-insert race window in concurrency tests
	listDelay time.Duration
}

func newEventRepositoryStub() *eventRepositoryStub {
	return &eventRepositoryStub{events: make(map[string]*models.MedicalEvent)}
}

func (e *eventRepositoryStub) ListScheduledByStaff(_ context.Context, staffID string, from, to time.Time) ([]models.MedicalEvent, error) {
	e.mu.Lock()
	result := make([]models.MedicalEvent, 0)
	for _, event := range e.events {
		if event.StaffID != staffID || event.Status != models.EventStatusScheduled {
			continue
		}
		if !from.IsZero() && !event.End.After(from) {
			continue
		}
		if !to.IsZero() && !event.Start.Before(to) {
			continue
		}
		result = append(result, *event)
	}
	e.mu.Unlock()

	if e.listDelay > 0 {
		time.Sleep(e.listDelay)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Start.Before(result[j].Start) })
	return result, nil
}

func (e *eventRepositoryStub) FindByID(_ context.Context, eventID string) (*models.MedicalEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	event, ok := e.events[eventID]
	if !ok {
		return nil, nil
	}
	clone := *event
	return &clone, nil
}

func (e *eventRepositoryStub) Insert(_ context.Context, event *models.MedicalEvent) (*models.MedicalEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	clone := *event
	clone.ID = fmt.Sprintf("ev-%d", e.nextID)
	clone.Status = models.EventStatusScheduled
	clone.CreatedAt = time.Now().UTC()
	e.events[clone.ID] = &clone
	persisted := clone
	return &persisted, nil
}

func (e *eventRepositoryStub) UpdateStatus(_ context.Context, eventID string, from, to models.EventStatus) (*models.MedicalEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	event, ok := e.events[eventID]
	if !ok || event.Status != from {
		return nil, nil
	}
	event.Status = to
	clone := *event
	return &clone, nil
}

// memoryLocker gives the usecase real mutual exclusion without redis.
type memoryLocker struct {
	mu     sync.Mutex
	tokens map[string]string
	nextID int
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{tokens: make(map[string]string)}
}

func (l *memoryLocker) TryLock(_ context.Context, key string, _ time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, held := l.tokens[key]; held {
		return false, "", nil
	}
	l.nextID++
	token := fmt.Sprintf("token-%d", l.nextID)
	l.tokens[key] = token
	return true, token, nil
}

func (l *memoryLocker) Unlock(_ context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tokens[key] == lockValue {
		delete(l.tokens, key)
	}
	return nil
}

func (l *memoryLocker) Refresh(_ context.Context, key, lockValue string, _ time.Duration) error {
	return nil
}

type dispatcherStub struct {
	mu       sync.Mutex
	requests []*models.NotificationRequest
	failures int
}

func (d *dispatcherStub) Dispatch(_ context.Context, request *models.NotificationRequest) *models.DispatchReport {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.requests = append(d.requests, request)

	report := &models.DispatchReport{EventID: request.EventID}
	for _, channel := range request.Channels {
		for i, recipient := range request.Recipients {
			delivery := models.ChannelDelivery{Channel: channel, Recipient: recipient, Status: models.DeliveryStatusDelivered}
			if i < d.failures {
				delivery.Status = models.DeliveryStatusFailed
				delivery.Reason = "channel unavailable"
			}
			report.Deliveries = append(report.Deliveries, delivery)
		}
	}
	return report
}

type onCallServiceStub struct {
	staffIDs []string
	err      error
}

func (o *onCallServiceStub) ListOnCallStaff(_ context.Context) ([]string, error) {
	return o.staffIDs, o.err
}

func (o *onCallServiceStub) AddOnCallStaff(_ context.Context, _ string) error    { return nil }
func (o *onCallServiceStub) RemoveOnCallStaff(_ context.Context, _ string) error { return nil }

type usecaseFixture struct {
	usecase    contracts.SchedulingUsecase
	staff      *staffRepositoryStub
	events     *eventRepositoryStub
	dispatcher *dispatcherStub
	oncall     *onCallServiceStub
}

func newUsecaseFixture() *usecaseFixture {
	staff := &staffRepositoryStub{members: map[string]*models.StaffMember{
		"staff-1": {ID: "staff-1", Email: "amara@hospital.test", Role: models.RolePhysician, Active: true},
		"staff-2": {ID: "staff-2", Email: "beatriz@hospital.test", Role: models.RoleResident, Active: false},
		"staff-3": {ID: "staff-3", Email: "chidi@hospital.test", Role: models.RoleNurse, Active: true},
	}}
	events := newEventRepositoryStub()
	dispatcher := &dispatcherStub{}
	oncall := &onCallServiceStub{}

	internalConfig := &config.InternalConfig{
		Quota: config.Quota{
			GuardMaxRollingHours: 48,
			GuardMaxWeeklyCount:  3,
			LockTTLInSeconds:     5,
		},
	}

	return &usecaseFixture{
		usecase: &schedulingUsecase{
			StaffRepository: staff,
			EventRepository: events,
			OnCallService:   oncall,
			Dispatcher:      dispatcher,
			LockService:     newMemoryLocker(),
			Checker:         NewConflictChecker(internalConfig.Quota),
			InternalConfig:  internalConfig,
			Log:             zap.NewNop(),
		},
		staff:      staff,
		events:     events,
		dispatcher: dispatcher,
		oncall:     oncall,
	}
}

func shiftRequest(staffID string, day, startHour, durationHours int) *requests.CreateEvent {
	return &requests.CreateEvent{
		StaffID: staffID,
		Type:    string(models.EventTypeGuardShift),
		Start:   at(day, startHour).Format(time.RFC3339),
		End:     at(day, startHour+durationHours).Format(time.RFC3339),
	}
}

func requireCustomError(t *testing.T, err error, statusCode int) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	require.Equal(t, statusCode, customErr.StatusCode)
	return customErr
}

func TestSchedulingUsecase_Schedule(t *testing.T) {
	ctx := context.Background()

	t.Run("schedules a valid guard shift and notifies the owner", func(t *testing.T) {
		fixture := newUsecaseFixture()

		response, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 8, 8))
		require.NoError(t, err)
		assert.NotEmpty(t, response.ID)
		assert.Equal(t, string(models.EventStatusScheduled), response.Status)
		assert.Empty(t, response.Warning)

		require.Len(t, fixture.dispatcher.requests, 1)
		assert.Equal(t, []string{"staff-1"}, fixture.dispatcher.requests[0].Recipients)
		assert.Equal(t, []string{constvars.NotificationChannelInApp}, fixture.dispatcher.requests[0].Channels)
	})

	t.Run("rejects an overlapping event with the conflicting id", func(t *testing.T) {
		fixture := newUsecaseFixture()

		first, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 8, 8))
		require.NoError(t, err)

		_, err = fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 12, 8))
		customErr := requireCustomError(t, err, constvars.StatusConflict)
		assert.Equal(t, first.ID, customErr.Details["conflicting_event_id"])
	})

	t.Run("rejects when end is not after start", func(t *testing.T) {
		fixture := newUsecaseFixture()

		request := shiftRequest("staff-1", 0, 8, 8)
		request.End = request.Start
		_, err := fixture.usecase.Schedule(ctx, request)
		requireCustomError(t, err, constvars.StatusBadRequest)
	})

	t.Run("rejects an emergency without description", func(t *testing.T) {
		fixture := newUsecaseFixture()

		request := shiftRequest("staff-1", 0, 8, 2)
		request.Type = string(models.EventTypeEmergency)
		_, err := fixture.usecase.Schedule(ctx, request)
		requireCustomError(t, err, constvars.StatusBadRequest)
	})

	t.Run("rejects unknown staff before touching storage", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-missing", 0, 8, 8))
		requireCustomError(t, err, constvars.StatusNotFound)
		assert.Empty(t, fixture.events.events)
	})

	t.Run("rejects inactive staff", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-2", 0, 8, 8))
		requireCustomError(t, err, constvars.StatusUnprocessableEntity)
	})

	t.Run("rejects a guard shift for a non-medical role", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-3", 0, 8, 8))
		requireCustomError(t, err, constvars.StatusBadRequest)
		assert.Empty(t, fixture.events.events)
	})

	t.Run("non-guard events are open to all roles", func(t *testing.T) {
		fixture := newUsecaseFixture()

		request := shiftRequest("staff-3", 0, 10, 1)
		request.Type = string(models.EventTypeClinicalMeeting)
		request.Description = "medication protocol review"
		_, err := fixture.usecase.Schedule(ctx, request)
		require.NoError(t, err)
	})

	t.Run("rejects the fourth guard shift of the week with quota details", func(t *testing.T) {
		fixture := newUsecaseFixture()

		for day := 0; day < 3; day++ {
			_, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", day, 8, 8))
			require.NoError(t, err)
		}

		_, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 3, 8, 8))
		customErr := requireCustomError(t, err, constvars.StatusUnprocessableEntity)
		assert.Equal(t, 4, customErr.Details["computed_count"])
		assert.Equal(t, 3, customErr.Details["limit_count"])
	})

	t.Run("emergency broadcast includes the on-call roster once", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.oncall.staffIDs = []string{"staff-1", "staff-9"}

		request := shiftRequest("staff-1", 0, 8, 2)
		request.Type = string(models.EventTypeEmergency)
		request.Description = "multi-vehicle trauma intake"
		_, err := fixture.usecase.Schedule(ctx, request)
		require.NoError(t, err)

		require.Len(t, fixture.dispatcher.requests, 1)
		assert.Equal(t, []string{"staff-1", "staff-9"}, fixture.dispatcher.requests[0].Recipients)
	})

	t.Run("notification failure degrades to a warning", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.dispatcher.failures = 1

		response, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 8, 8))
		require.NoError(t, err)
		assert.NotEmpty(t, response.Warning)
		require.Len(t, response.Notifications, 1)
		assert.Equal(t, models.DeliveryStatusFailed, response.Notifications[0].Status)

		// the event itself is persisted regardless
		stored, err := fixture.events.FindByID(ctx, response.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
	})
}

type busyLocker struct{}

func (busyLocker) TryLock(_ context.Context, _ string, _ time.Duration) (bool, string, error) {
	return false, "", nil
}
func (busyLocker) Unlock(_ context.Context, _, _ string) error { return nil }
func (busyLocker) Refresh(_ context.Context, _, _ string, _ time.Duration) error {
	return nil
}

func TestSchedulingUsecase_ScheduleLockBusy(t *testing.T) {
	fixture := newUsecaseFixture()
	fixture.usecase.(*schedulingUsecase).LockService = busyLocker{}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	_, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 8, 8))
	requireCustomError(t, err, constvars.StatusServiceUnavailable)
	assert.Empty(t, fixture.events.events)
}

func TestSchedulingUsecase_ScheduleConcurrent(t *testing.T) {
	ctx := context.Background()
	fixture := newUsecaseFixture()
	fixture.events.listDelay = 10 * time.Millisecond

	const attempts = 8
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 8, 8))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var accepted, conflicted int
	for err := range results {
		if err == nil {
			accepted++
			continue
		}
		requireCustomError(t, err, constvars.StatusConflict)
		conflicted++
	}

	assert.Equal(t, 1, accepted)
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, fixture.events.events, 1)
}

func TestSchedulingUsecase_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels a scheduled event", func(t *testing.T) {
		fixture := newUsecaseFixture()

		scheduled, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 8, 8))
		require.NoError(t, err)

		cancelled, err := fixture.usecase.Cancel(ctx, scheduled.ID)
		require.NoError(t, err)
		assert.Equal(t, string(models.EventStatusCancelled), cancelled.Status)
	})

	t.Run("cancelling twice reports already cancelled", func(t *testing.T) {
		fixture := newUsecaseFixture()

		scheduled, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 8, 8))
		require.NoError(t, err)

		_, err = fixture.usecase.Cancel(ctx, scheduled.ID)
		require.NoError(t, err)

		_, err = fixture.usecase.Cancel(ctx, scheduled.ID)
		requireCustomError(t, err, constvars.StatusConflict)
	})

	t.Run("cancelling an unknown event reports not found", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.Cancel(ctx, "ev-missing")
		requireCustomError(t, err, constvars.StatusNotFound)
	})

	t.Run("cancellation frees capacity for a new event", func(t *testing.T) {
		fixture := newUsecaseFixture()

		first, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 8, 8))
		require.NoError(t, err)

		_, err = fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 10, 8))
		requireCustomError(t, err, constvars.StatusConflict)

		_, err = fixture.usecase.Cancel(ctx, first.ID)
		require.NoError(t, err)

		_, err = fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 10, 8))
		require.NoError(t, err)
	})
}

func TestSchedulingUsecase_ListByStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("lists only scheduled events ordered by start", func(t *testing.T) {
		fixture := newUsecaseFixture()

		later, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 2, 8, 8))
		require.NoError(t, err)
		earlier, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 8, 8))
		require.NoError(t, err)
		cancelled, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 4, 8, 8))
		require.NoError(t, err)
		_, err = fixture.usecase.Cancel(ctx, cancelled.ID)
		require.NoError(t, err)

		listed, err := fixture.usecase.ListByStaff(ctx, &requests.ListEvents{StaffID: "staff-1"})
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, earlier.ID, listed[0].ID)
		assert.Equal(t, later.ID, listed[1].ID)
	})

	t.Run("applies the optional time range", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 0, 8, 8))
		require.NoError(t, err)
		inRange, err := fixture.usecase.Schedule(ctx, shiftRequest("staff-1", 2, 8, 8))
		require.NoError(t, err)

		listed, err := fixture.usecase.ListByStaff(ctx, &requests.ListEvents{
			StaffID: "staff-1",
			From:    at(1, 0).Format(time.RFC3339),
			To:      at(3, 0).Format(time.RFC3339),
		})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, inRange.ID, listed[0].ID)
	})

	t.Run("rejects unknown staff", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.ListByStaff(ctx, &requests.ListEvents{StaffID: "staff-missing"})
		requireCustomError(t, err, constvars.StatusNotFound)
	})
}
