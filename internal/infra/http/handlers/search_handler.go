package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rafaelqm2/outreach-hub/internal/infra/http/middleware"
	"github.com/rafaelqm2/outreach-hub/internal/usecase"
)

type SearchHandler struct {
	Flows    *usecase.SearchFlows
	Settings *usecase.SettingsUseCase
}

func NewSearchHandler(flows *usecase.SearchFlows, settings *usecase.SettingsUseCase) *SearchHandler {
	return &SearchHandler{
		Flows:    flows,
		Settings: settings,
	}
}

type searchStatusResponse struct {
	usecase.SearchSnapshot
	WebhookConfigured bool `json:"webhook_configured"`
}

// HandleGet (GET /search) returns the flow snapshot plus the advisory
// webhook-configured flag for the banner.
func (h *SearchHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	writeJSON(w, http.StatusOK, searchStatusResponse{
		SearchSnapshot:    h.Flows.Snapshot(userID),
		WebhookConfigured: h.Settings.WebhookConfigured(r.Context(), userID),
	})
}

// HandleTrigger (POST /search/trigger) validates the form and performs one
// dispatch to the search webhook.
func (h *SearchHandler) HandleTrigger(w http.ResponseWriter, r *http.Request) {
	var input usecase.SearchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r.Context())

	snap, err := h.Flows.Trigger(r.Context(), userID, input)
	middleware.RecordSearchTrigger(string(snap.Status))
	if err != nil {
		if usecase.IsUpstreamError(err) {
			middleware.RecordIntegrationError("search-webhook")
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}
