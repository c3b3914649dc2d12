package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEmailReviewSave(t *testing.T) {
	repo := new(MockEmailRepository)
	repo.On("UpdateReview", mock.Anything, "email-1", "hot", "follow up").Return(nil)

	uc := NewEmailReviewUseCase(repo)

	err := uc.Save(context.Background(), "email-1", "hot", "follow up")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEmailReviewSaveInvalidClassification(t *testing.T) {
	repo := new(MockEmailRepository)
	uc := NewEmailReviewUseCase(repo)

	err := uc.Save(context.Background(), "email-1", "lukewarm", "")

	assert.True(t, IsValidationError(err))
	repo.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEmailReviewSaveMissingID(t *testing.T) {
	uc := NewEmailReviewUseCase(new(MockEmailRepository))

	err := uc.Save(context.Background(), "", "cold", "")

	assert.True(t, IsValidationError(err))
}

func TestEmailReviewSaveStoreError(t *testing.T) {
	repo := new(MockEmailRepository)
	repo.On("UpdateReview", mock.Anything, "email-1", "warm", "call back").
		Return(errors.New("connection refused"))

	uc := NewEmailReviewUseCase(repo)

	err := uc.Save(context.Background(), "email-1", "warm", "call back")

	assert.ErrorContains(t, err, "connection refused")
}
