package usecase

import (
	"context"
	"fmt"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
)

// EmailReviewUseCase is the record editor: it mutates classification and
// notes on an existing email record and nothing else.
type EmailReviewUseCase struct {
	Repo entity.EmailRepositoryInterface
}

func NewEmailReviewUseCase(repo entity.EmailRepositoryInterface) *EmailReviewUseCase {
	return &EmailReviewUseCase{Repo: repo}
}

// Save performs a single scoped update of lead_classification and notes,
// keyed by record identity. A store failure is surfaced verbatim so the
// caller can keep the typed values on screen.
func (uc *EmailReviewUseCase) Save(ctx context.Context, emailID, classification, notes string) error {
	if emailID == "" {
		return &ValidationError{Message: "email id is required"}
	}
	if !entity.ValidClassification(classification) {
		return &ValidationError{Message: fmt.Sprintf("invalid classification %q", classification)}
	}

	if err := uc.Repo.UpdateReview(ctx, emailID, classification, notes); err != nil {
		return fmt.Errorf("save review: %w", err)
	}

	return nil
}
