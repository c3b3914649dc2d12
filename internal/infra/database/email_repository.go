package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
)

type EmailRepository struct {
	DB *sql.DB
}

func NewEmailRepository(db *sql.DB) *EmailRepository {
	return &EmailRepository{DB: db}
}

const emailColumns = `
	id, company, email,
	COALESCE(region, ''), COALESCE(industry, ''), COALESCE(campaign_name, ''),
	date_sent, status,
	COALESCE(lead_classification, 'cold'), COALESCE(notes, ''),
	COALESCE(lead_name, ''), COALESCE(phone, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(address, ''),
	COALESCE(email_sender, ''), COALESCE(cc_1, ''), COALESCE(cc_2, ''), COALESCE(cc_3, ''), COALESCE(bcc, ''),
	COALESCE(reply_text, ''), replied_at, last_reply_at,
	keywords, created_at`

func scanEmail(row interface{ Scan(...any) error }) (*entity.Email, error) {
	var e entity.Email
	err := row.Scan(
		&e.ID, &e.Company, &e.Email,
		&e.Region, &e.Industry, &e.CampaignName,
		&e.DateSent, &e.Status,
		&e.LeadClassification, &e.Notes,
		&e.LeadName, &e.Phone, &e.City, &e.State, &e.Address,
		&e.EmailSender, &e.CC1, &e.CC2, &e.CC3, &e.BCC,
		&e.ReplyText, &e.RepliedAt, &e.LastReplyAt,
		pq.Array(&e.Keywords), &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmailRepository) FindByID(ctx context.Context, id string) (*entity.Email, error) {
	query := `SELECT ` + emailColumns + ` FROM emails WHERE id = $1`

	e, err := scanEmail(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("find email %s: %w", id, err)
	}
	return e, nil
}

func (r *EmailRepository) List(ctx context.Context, filter entity.EmailListFilter) ([]entity.Email, error) {
	query := `SELECT ` + emailColumns + ` FROM emails WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Classification != "" {
		args = append(args, filter.Classification)
		query += fmt.Sprintf(" AND COALESCE(lead_classification, 'cold') = $%d", len(args))
	}

	query += " ORDER BY date_sent DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	defer rows.Close()

	var emails []entity.Email
	for rows.Next() {
		e, err := scanEmail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		emails = append(emails, *e)
	}
	return emails, rows.Err()
}

// UpdateReview touches exactly the two editor-mutable columns.
func (r *EmailRepository) UpdateReview(ctx context.Context, id, classification, notes string) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE emails
		SET lead_classification = $1, notes = $2
		WHERE id = $3
	`, classification, notes, id)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Upsert is the outcome-event ingestion path. Review fields are never
// overwritten here; they belong to the editor.
func (r *EmailRepository) Upsert(ctx context.Context, e *entity.Email) error {
	if e.DateSent.IsZero() {
		e.DateSent = time.Now()
	}

	query := `
		INSERT INTO emails (
			id, company, email, region, industry, campaign_name, date_sent, status,
			lead_name, phone, city, state, address,
			email_sender, cc_1, cc_2, cc_3, bcc,
			reply_text, replied_at, last_reply_at, keywords, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, NOW())
		ON CONFLICT (id)
		DO UPDATE SET
			status = EXCLUDED.status,
			reply_text = COALESCE(NULLIF(EXCLUDED.reply_text, ''), emails.reply_text),
			replied_at = COALESCE(EXCLUDED.replied_at, emails.replied_at),
			last_reply_at = COALESCE(EXCLUDED.last_reply_at, emails.last_reply_at)
	`

	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Company, e.Email, e.Region, e.Industry, e.CampaignName, e.DateSent, e.Status,
		e.LeadName, e.Phone, e.City, e.State, e.Address,
		e.EmailSender, e.CC1, e.CC2, e.CC3, e.BCC,
		e.ReplyText, e.RepliedAt, e.LastReplyAt, pq.Array(e.Keywords),
	)
	if err != nil {
		return fmt.Errorf("upsert email: %w", err)
	}
	return nil
}
