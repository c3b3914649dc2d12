package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rafaelqm2/outreach-hub/internal/infra/http/middleware"
	"github.com/rafaelqm2/outreach-hub/internal/usecase"
)

type LinkedInAuthHandler struct {
	LinkAccount *usecase.LinkAccountUseCase
}

func NewLinkedInAuthHandler(uc *usecase.LinkAccountUseCase) *LinkedInAuthHandler {
	return &LinkedInAuthHandler{LinkAccount: uc}
}

type linkRequest struct {
	SuccessRedirectURL string `json:"success_redirect_url"`
	FailureRedirectURL string `json:"failure_redirect_url"`
}

type linkResponse struct {
	URL string `json:"url"`
}

// HandleLink (POST /auth/linkedin/link) returns the provider-hosted redirect
// URL. The UI sends the user there; completion comes back through the success
// redirect, after which the frontend re-reads Settings for the account id.
func (h *LinkedInAuthHandler) HandleLink(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	url, err := h.LinkAccount.RequestLinkURL(r.Context(), req.SuccessRedirectURL, req.FailureRedirectURL)
	if err != nil {
		if usecase.IsUpstreamError(err) {
			middleware.RecordIntegrationError("unipile")
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, linkResponse{URL: url})
}
