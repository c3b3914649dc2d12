package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetOrCreate(ctx context.Context, userID string) (*entity.Settings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Update(ctx context.Context, userID string, update entity.SettingsUpdate) error {
	args := m.Called(ctx, userID, update)
	return args.Error(0)
}

func (m *MockSettingsRepository) SetLinkedInAccount(ctx context.Context, userID, accountID string) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

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
