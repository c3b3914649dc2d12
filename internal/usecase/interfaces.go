package usecase

import "context"

// WebhookDispatcher posts a JSON payload to a user-configured endpoint.
type WebhookDispatcher interface {
	Dispatch(ctx context.Context, url string, payload any) error
}

// LinkClient brokers the hosted account-link flow with the messaging provider.
type LinkClient interface {
	// Configured reports whether both server-held secrets are present.
	Configured() bool

	CreateHostedLink(ctx context.Context, successRedirectURL, failureRedirectURL string) (string, error)
}

// TemplateMailer sends a rendered outreach template over SMTP.
type TemplateMailer interface {
	Configured() bool

	SendTemplateTest(to, subject, body string) error
}
