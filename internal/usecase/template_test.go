package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
)

func TestRenderTemplate(t *testing.T) {
	vars := map[string]string{"name": "Jane", "company": "Acme"}

	assert.Equal(t,
		"Hi Jane, I saw Acme is hiring.",
		RenderTemplate("Hi {{name}}, I saw {{company}} is hiring.", vars))

	// Whitespace inside braces is tolerated.
	assert.Equal(t, "Hi Jane", RenderTemplate("Hi {{ name }}", vars))

	// Unknown placeholders stay visible instead of vanishing.
	assert.Equal(t, "Hi {{nickname}}", RenderTemplate("Hi {{nickname}}", vars))

	assert.Equal(t, "no placeholders", RenderTemplate("no placeholders", vars))
}

func TestSendTestRendersSettingsTemplate(t *testing.T) {
	resolver := new(MockSettingsResolver)
	resolver.On("GetSettings", mock.Anything, testUser).Return(&entity.Settings{
		UserID:        testUser,
		EmailTemplate: "Hi {{name}} from {{company}}",
	}, nil)

	mailer := new(MockMailer)
	mailer.On("Configured").Return(true)
	mailer.On("SendTemplateTest", "me@example.com", "Template preview", "Hi Jane Doe from Acme Corp").Return(nil)

	uc := NewTemplateTestUseCase(resolver, mailer)

	require.NoError(t, uc.SendTest(context.Background(), testUser, "me@example.com"))
	mailer.AssertExpectations(t)
}

func TestSendTestWithoutSMTP(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Configured").Return(false)

	uc := NewTemplateTestUseCase(new(MockSettingsResolver), mailer)

	err := uc.SendTest(context.Background(), testUser, "me@example.com")

	assert.True(t, IsConfigurationError(err))
	mailer.AssertNotCalled(t, "SendTemplateTest", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendTestEmptyTemplate(t *testing.T) {
	resolver := new(MockSettingsResolver)
	resolver.On("GetSettings", mock.Anything, testUser).Return(&entity.Settings{UserID: testUser}, nil)

	mailer := new(MockMailer)
	mailer.On("Configured").Return(true)

	uc := NewTemplateTestUseCase(resolver, mailer)

	err := uc.SendTest(context.Background(), testUser, "me@example.com")

	assert.True(t, IsValidationError(err))
}
