package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
)

func TestGetSettingsRequiresUser(t *testing.T) {
	uc := NewSettingsUseCase(new(MockSettingsRepository))

	_, err := uc.GetSettings(context.Background(), "")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestGetSettingsCreatesOnFirstAccess(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("GetOrCreate", mock.Anything, testUser).Return(&entity.Settings{UserID: testUser}, nil)

	uc := NewSettingsUseCase(repo)

	settings, err := uc.GetSettings(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, testUser, settings.UserID)
	repo.AssertExpectations(t)
}

func TestUpdateSettingsWritesEditableFields(t *testing.T) {
	update := entity.SettingsUpdate{
		WebhookURL:         "https://hooks.example.com/search",
		EmailTemplate:      "Hello {{name}}",
		LinkedInWebhookURL: "https://hooks.example.com/campaign",
	}

	repo := new(MockSettingsRepository)
	repo.On("GetOrCreate", mock.Anything, testUser).Return(&entity.Settings{UserID: testUser}, nil)
	repo.On("Update", mock.Anything, testUser, update).Return(nil)

	uc := NewSettingsUseCase(repo)

	require.NoError(t, uc.UpdateSettings(context.Background(), testUser, update))
	repo.AssertExpectations(t)
}

func TestWebhookConfigured(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("GetOrCreate", mock.Anything, "with-hook").
		Return(&entity.Settings{UserID: "with-hook", WebhookURL: "https://hooks.example.com"}, nil)
	repo.On("GetOrCreate", mock.Anything, "without-hook").
		Return(&entity.Settings{UserID: "without-hook"}, nil)
	repo.On("GetOrCreate", mock.Anything, "store-down").
		Return(nil, errors.New("connection refused"))

	uc := NewSettingsUseCase(repo)

	assert.True(t, uc.WebhookConfigured(context.Background(), "with-hook"))
	assert.False(t, uc.WebhookConfigured(context.Background(), "without-hook"))
	assert.False(t, uc.WebhookConfigured(context.Background(), "store-down"))
}
