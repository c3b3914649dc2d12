package unipile

type hostedLinkRequest struct {
	Type               string   `json:"type"`
	APIURL             string   `json:"api_url"`
	Providers          []string `json:"providers"`
	ExpiresOn          string   `json:"expiresOn"`
	SuccessRedirectURL string   `json:"success_redirect_url"`
	FailureRedirectURL string   `json:"failure_redirect_url"`
}

type hostedLinkResponse struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
