package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
	"github.com/rafaelqm2/outreach-hub/internal/infra/http/middleware"
	"github.com/rafaelqm2/outreach-hub/internal/usecase"
)

type CampaignHandler struct {
	Flows    *usecase.CampaignFlows
	Settings *usecase.SettingsUseCase
}

func NewCampaignHandler(flows *usecase.CampaignFlows, settings *usecase.SettingsUseCase) *CampaignHandler {
	return &CampaignHandler{
		Flows:    flows,
		Settings: settings,
	}
}

// HandleGet (GET /campaign) refreshes the linked account from a Settings read
// and returns the flow snapshot. The frontend calls this on page load and
// again when it returns from the hosted link flow with connected=true.
func (h *CampaignHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	settings, err := h.Settings.GetSettings(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	h.Flows.SetAccount(userID, settings.LinkedInAccountID)

	writeJSON(w, http.StatusOK, h.Flows.Snapshot(userID))
}

type leadsRequest struct {
	Leads []entity.Lead `json:"leads"`
}

// HandleSetLeads (PUT /campaign/leads) stores the collected lead sequence.
func (h *CampaignHandler) HandleSetLeads(w http.ResponseWriter, r *http.Request) {
	var req leadsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r.Context())
	if err := h.Flows.SetLeads(userID, req.Leads); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.Flows.Snapshot(userID))
}

type templateRequest struct {
	Template string `json:"template"`
}

// HandleSetTemplate (PUT /campaign/template) stores the message template.
func (h *CampaignHandler) HandleSetTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r.Context())
	if err := h.Flows.SetTemplate(userID, req.Template); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.Flows.Snapshot(userID))
}

type detailsRequest struct {
	CampaignName string `json:"campaign_name"`
	DelaySeconds int    `json:"delay_seconds"`
	MaxLeads     int    `json:"max_leads"`
}

// HandleSetDetails (PUT /campaign/details) stores name, delay and cap.
func (h *CampaignHandler) HandleSetDetails(w http.ResponseWriter, r *http.Request) {
	var req detailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	userID := middleware.UserID(r.Context())
	if err := h.Flows.SetDetails(userID, req.CampaignName, req.DelaySeconds, req.MaxLeads); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.Flows.Snapshot(userID))
}

// HandleSubmit (POST /campaign/submit) runs one dispatch attempt.
func (h *CampaignHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	snap, err := h.Flows.Submit(r.Context(), userID)
	middleware.RecordCampaignDispatch(string(snap.Status))
	if err != nil {
		if usecase.IsUpstreamError(err) {
			middleware.RecordIntegrationError("campaign-webhook")
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}
