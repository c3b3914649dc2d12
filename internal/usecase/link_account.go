package usecase

import "context"

// LinkAccountUseCase brokers the hosted link flow. Completion is observed
// out-of-band: the provider redirects back with a success query parameter and
// the caller re-reads Settings to pick up the new account id.
type LinkAccountUseCase struct {
	Client LinkClient
}

func NewLinkAccountUseCase(client LinkClient) *LinkAccountUseCase {
	return &LinkAccountUseCase{Client: client}
}

// RequestLinkURL returns the provider-hosted redirect URL, valid for 30
// minutes.
func (uc *LinkAccountUseCase) RequestLinkURL(ctx context.Context, successRedirectURL, failureRedirectURL string) (string, error) {
	if successRedirectURL == "" || failureRedirectURL == "" {
		return "", &ValidationError{Message: "success and failure redirect URLs are required"}
	}

	// Missing secrets fail here, before any outbound call is attempted.
	if !uc.Client.Configured() {
		return "", &ConfigurationError{Message: "Unipile credentials not configured"}
	}

	url, err := uc.Client.CreateHostedLink(ctx, successRedirectURL, failureRedirectURL)
	if err != nil {
		// Upstream message when available, generic otherwise.
		msg := err.Error()
		if msg == "" {
			msg = "Failed to create auth link"
		}
		return "", &UpstreamError{Message: msg}
	}

	return url, nil
}
