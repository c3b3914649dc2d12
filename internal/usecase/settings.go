package usecase

import (
	"context"
	"fmt"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
)

// SettingsResolver is the single source of truth the dispatch flows query
// before every outbound call.
type SettingsResolver interface {
	GetSettings(ctx context.Context, userID string) (*entity.Settings, error)
}

type SettingsUseCase struct {
	Repo entity.SettingsRepositoryInterface
}

func NewSettingsUseCase(repo entity.SettingsRepositoryInterface) *SettingsUseCase {
	return &SettingsUseCase{Repo: repo}
}

// GetSettings returns the user's settings row, creating a default one on
// first access.
func (uc *SettingsUseCase) GetSettings(ctx context.Context, userID string) (*entity.Settings, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	settings, err := uc.Repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return settings, nil
}

// UpdateSettings writes the three user-editable fields. Last write wins.
func (uc *SettingsUseCase) UpdateSettings(ctx context.Context, userID string, update entity.SettingsUpdate) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	// Make sure the row exists before the partial update.
	if _, err := uc.Repo.GetOrCreate(ctx, userID); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err := uc.Repo.Update(ctx, userID, update); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}

// WebhookConfigured backs the non-blocking warning banner on the search page.
// A store error reads as "not configured"; the banner is advisory and never
// blocks the form.
func (uc *SettingsUseCase) WebhookConfigured(ctx context.Context, userID string) bool {
	settings, err := uc.GetSettings(ctx, userID)
	if err != nil {
		return false
	}
	return settings.WebhookURL != ""
}
