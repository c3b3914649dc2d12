package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
	"github.com/rafaelqm2/outreach-hub/internal/infra/http/middleware"
	"github.com/rafaelqm2/outreach-hub/internal/usecase"
)

type SettingsHandler struct {
	Settings     *usecase.SettingsUseCase
	TemplateTest *usecase.TemplateTestUseCase
}

func NewSettingsHandler(settings *usecase.SettingsUseCase, templateTest *usecase.TemplateTestUseCase) *SettingsHandler {
	return &SettingsHandler{
		Settings:     settings,
		TemplateTest: templateTest,
	}
}

// HandleGet (GET /settings) returns the row, creating a default one on first
// access.
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.GetSettings(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// HandleUpdate (PUT /settings) writes the three editable fields.
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var update entity.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r.Context())
	if err := h.Settings.UpdateSettings(r.Context(), userID, update); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Settings saved successfully"})
}

// HandleWebhookStatus (GET /settings/webhook-status) backs the advisory
// banner on the search page.
func (h *SettingsHandler) HandleWebhookStatus(w http.ResponseWriter, r *http.Request) {
	configured := h.Settings.WebhookConfigured(r.Context(), middleware.UserID(r.Context()))
	writeJSON(w, http.StatusOK, map[string]bool{"configured": configured})
}

type templateTestRequest struct {
	To string `json:"to"`
}

// HandleTemplateTest (POST /settings/template/test) sends a rendered copy of
// the email template to one address.
func (h *SettingsHandler) HandleTemplateTest(w http.ResponseWriter, r *http.Request) {
	var req templateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r.Context())
	if err := h.TemplateTest.SendTest(r.Context(), userID, req.To); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Test email sent"})
}
