package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
)

type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

const settingsColumns = `id, user_id, webhook_url, linkedin_webhook_url, email_template, linkedin_account_id, created_at, updated_at`

// GetOrCreate implements the lazy create-on-read. The insert is a no-op when
// a row already exists; two concurrent first reads race and the unique
// constraint on user_id keeps exactly one row.
func (r *SettingsRepository) GetOrCreate(ctx context.Context, userID string) (*entity.Settings, error) {
	s, err := r.findByUser(ctx, userID)
	if err == nil {
		return s, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("query settings: %w", err)
	}

	defaults := entity.NewSettings(userID)
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO settings (id, user_id, webhook_url, linkedin_webhook_url, email_template, linkedin_account_id, created_at, updated_at)
		VALUES ($1, $2, '', '', '', '', $3, $3)
		ON CONFLICT (user_id) DO NOTHING
	`, defaults.ID, userID, defaults.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create settings: %w", err)
	}

	s, err = r.findByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload settings: %w", err)
	}
	return s, nil
}

func (r *SettingsRepository) findByUser(ctx context.Context, userID string) (*entity.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE user_id = $1`

	var s entity.Settings
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&s.ID,
		&s.UserID,
		&s.WebhookURL,
		&s.LinkedInWebhookURL,
		&s.EmailTemplate,
		&s.LinkedInAccountID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Update writes only the three user-editable columns. Last write wins.
func (r *SettingsRepository) Update(ctx context.Context, userID string, update entity.SettingsUpdate) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE settings
		SET webhook_url = $1, email_template = $2, linkedin_webhook_url = $3, updated_at = NOW()
		WHERE user_id = $4
	`, update.WebhookURL, update.EmailTemplate, update.LinkedInWebhookURL, userID)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetLinkedInAccount is called when the hosted link flow completes.
func (r *SettingsRepository) SetLinkedInAccount(ctx context.Context, userID, accountID string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE settings
		SET linkedin_account_id = $1, updated_at = NOW()
		WHERE user_id = $2
	`, accountID, userID)
	if err != nil {
		return fmt.Errorf("update linkedin account: %w", err)
	}
	return nil
}
