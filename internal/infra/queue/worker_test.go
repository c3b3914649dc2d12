package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
)

type MockEmailRepository struct {
	mock.Mock
}

func (m *MockEmailRepository) FindByID(ctx context.Context, id string) (*entity.Email, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Email), args.Error(1)
}

func (m *MockEmailRepository) List(ctx context.Context, filter entity.EmailListFilter) ([]entity.Email, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Email), args.Error(1)
}

func (m *MockEmailRepository) UpdateReview(ctx context.Context, id, classification, notes string) error {
	args := m.Called(ctx, id, classification, notes)
	return args.Error(0)
}

func (m *MockEmailRepository) Upsert(ctx context.Context, e *entity.Email) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func outcomeBody(t *testing.T, event OutcomeEvent) []byte {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body
}

func TestProcessSentOutcome(t *testing.T) {
	repo := new(MockEmailRepository)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(e *entity.Email) bool {
		return e.ID == "email-1" && e.Status == entity.EmailStatusSent
	})).Return(nil)

	w := NewWorker(nil, repo, zap.NewNop())

	body := outcomeBody(t, OutcomeEvent{
		Event: "sent",
		Email: entity.Email{ID: "email-1", Email: "lead@acme.com", Company: "Acme"},
	})

	require.NoError(t, w.Process(context.Background(), body))
	repo.AssertExpectations(t)
}

func TestProcessRepliedOutcomeStampsReplyTime(t *testing.T) {
	repo := new(MockEmailRepository)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(e *entity.Email) bool {
		return e.Status == entity.EmailStatusReplied && e.LastReplyAt != nil
	})).Return(nil)

	w := NewWorker(nil, repo, zap.NewNop())

	body := outcomeBody(t, OutcomeEvent{
		Event: "replied",
		Email: entity.Email{ID: "email-1", Email: "lead@acme.com", ReplyText: "interested"},
	})

	require.NoError(t, w.Process(context.Background(), body))
	repo.AssertExpectations(t)
}

func TestProcessRejectsMalformedJSON(t *testing.T) {
	repo := new(MockEmailRepository)
	w := NewWorker(nil, repo, zap.NewNop())

	err := w.Process(context.Background(), []byte("{not json"))

	assert.ErrorContains(t, err, "invalid outcome json")
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestProcessRejectsUnknownEvent(t *testing.T) {
	repo := new(MockEmailRepository)
	w := NewWorker(nil, repo, zap.NewNop())

	body := outcomeBody(t, OutcomeEvent{
		Event: "opened",
		Email: entity.Email{ID: "email-1", Email: "lead@acme.com"},
	})

	err := w.Process(context.Background(), body)

	assert.ErrorContains(t, err, "unknown outcome event")
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestProcessRejectsMissingIdentity(t *testing.T) {
	repo := new(MockEmailRepository)
	w := NewWorker(nil, repo, zap.NewNop())

	body := outcomeBody(t, OutcomeEvent{Event: "sent"})

	err := w.Process(context.Background(), body)

	assert.ErrorContains(t, err, "missing record identity")
}

func TestProcessSurfacesStoreError(t *testing.T) {
	repo := new(MockEmailRepository)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	w := NewWorker(nil, repo, zap.NewNop())

	body := outcomeBody(t, OutcomeEvent{
		Event: "bounced",
		Email: entity.Email{ID: "email-1", Email: "lead@acme.com"},
	})

	assert.ErrorContains(t, w.Process(context.Background(), body), "persist outcome")
}
