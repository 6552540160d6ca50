package notifier

import (
	"context"
	"medplan-service/internal/app/models"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	published []amqp091.Publishing
	err       error
}

func (p *fakePublisher) PublishWithContext(_ context.Context, _, _ string, _, _ bool, msg amqp091.Publishing) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

type staffDirectoryStub struct {
	members map[string]*models.StaffMember
}

func (s *staffDirectoryStub) FindByID(_ context.Context, staffID string) (*models.StaffMember, error) {
	member, ok := s.members[staffID]
	if !ok {
		return nil, nil
	}
	return member, nil
}

func (s *staffDirectoryStub) FindByEmail(_ context.Context, email string) (*models.StaffMember, error) {
	for _, member := range s.members {
		if member.Email == email {
			return member, nil
		}
	}
	return nil, nil
}

func (s *staffDirectoryStub) Create(_ context.Context, staff *models.StaffMember) (string, error) {
	s.members[staff.ID] = staff
	return staff.ID, nil
}

func (s *staffDirectoryStub) UpdateActive(_ context.Context, staffID string, active bool) error {
	s.members[staffID].Active = active
	return nil
}

func TestEmailChannel_Send(t *testing.T) {
	ctx := context.Background()

	newChannel := func() (*emailChannel, *fakePublisher) {
		publisher := &fakePublisher{}
		channel := &emailChannel{
			Publisher: publisher,
			Queue:     "medplan.mail",
			Subject:   "Medical event notification",
			StaffRepository: &staffDirectoryStub{members: map[string]*models.StaffMember{
				"staff-1": {ID: "staff-1", Email: "amara@hospital.test", Role: models.RolePhysician, Active: true},
			}},
		}
		return channel, publisher
	}

	t.Run("publishes to the staff member's email address", func(t *testing.T) {
		channel, publisher := newChannel()

		err := channel.Send(ctx, "staff-1", "Guard shift scheduled")
		require.NoError(t, err)
		require.Len(t, publisher.published, 1)

		payload := new(EmailPayload)
		require.NoError(t, json.Unmarshal(publisher.published[0].Body, payload))
		assert.Equal(t, "amara@hospital.test", payload.To)
		assert.Equal(t, "Guard shift scheduled", payload.Body)
		assert.Equal(t, uint8(amqp091.Persistent), publisher.published[0].DeliveryMode)
	})

	t.Run("fails for an unknown staff id without publishing", func(t *testing.T) {
		channel, publisher := newChannel()

		err := channel.Send(ctx, "staff-missing", "Guard shift scheduled")
		require.Error(t, err)
		assert.Empty(t, publisher.published)
	})
}
