package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Settings holds the per-user integration configuration. Exactly one row per
// user; created lazily with defaults on first access.
type Settings struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	WebhookURL         string    `json:"webhook_url"`          // lead-search trigger endpoint
	LinkedInWebhookURL string    `json:"linkedin_webhook_url"` // campaign-dispatch endpoint
	EmailTemplate      string    `json:"email_template"`
	LinkedInAccountID  string    `json:"linkedin_account_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SettingsUpdate carries the three user-editable fields. Last write wins,
// there is no version check on the save path.
type SettingsUpdate struct {
	WebhookURL         string `json:"webhook_url"`
	EmailTemplate      string `json:"email_template"`
	LinkedInWebhookURL string `json:"linkedin_webhook_url"`
}

func NewSettings(userID string) *Settings {
	now := time.Now()
	return &Settings{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type SettingsRepositoryInterface interface {
	// GetOrCreate returns the user's settings row, inserting a default one
	// when none exists yet. Concurrent first reads may race to insert; the
	// unique constraint on user_id resolves the race.
	GetOrCreate(ctx context.Context, userID string) (*Settings, error)

	Update(ctx context.Context, userID string, update SettingsUpdate) error

	SetLinkedInAccount(ctx context.Context, userID, accountID string) error
}
