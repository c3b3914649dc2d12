package entity

import (
	"context"
	"time"
)

// Email status values written by the automation pipeline.
const (
	EmailStatusSent    = "sent"
	EmailStatusReplied = "replied"
	EmailStatusBounced = "bounced"
)

// Lead temperature labels, assigned manually through the record editor.
const (
	ClassificationHot  = "hot"
	ClassificationWarm = "warm"
	ClassificationCold = "cold"
)

func ValidClassification(c string) bool {
	return c == ClassificationHot || c == ClassificationWarm || c == ClassificationCold
}

// Email is one persisted outreach record. Rows are created by the external
// automation workflow; this service reads them and mutates only
// lead_classification and notes.
type Email struct {
	ID           string    `json:"id"`
	Company      string    `json:"company"`
	Email        string    `json:"email"`
	Region       string    `json:"region"`
	Industry     string    `json:"industry"`
	CampaignName string    `json:"campaign_name,omitempty"`
	DateSent     time.Time `json:"date_sent"`
	Status       string    `json:"status"`

	LeadClassification string `json:"lead_classification"`
	Notes              string `json:"notes,omitempty"`

	// Contact & location
	LeadName string `json:"lead_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Address  string `json:"address,omitempty"`

	// Email routing
	EmailSender string `json:"email_sender,omitempty"`
	CC1         string `json:"cc_1,omitempty"`
	CC2         string `json:"cc_2,omitempty"`
	CC3         string `json:"cc_3,omitempty"`
	BCC         string `json:"bcc,omitempty"`

	// Reply metadata
	ReplyText   string     `json:"reply_text,omitempty"`
	RepliedAt   *time.Time `json:"replied_at,omitempty"`
	LastReplyAt *time.Time `json:"last_reply_at,omitempty"`

	Keywords []string `json:"keywords,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// EmailListFilter narrows the dashboard listing.
type EmailListFilter struct {
	Status         string
	Classification string
	Limit          int
}

type EmailRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*Email, error)

	List(ctx context.Context, filter EmailListFilter) ([]Email, error)

	// UpdateReview mutates exactly lead_classification and notes, nothing else.
	UpdateReview(ctx context.Context, id, classification, notes string) error

	// Upsert is the ingestion path fed by the automation pipeline's outcome
	// events.
	Upsert(ctx context.Context, e *Email) error
}
