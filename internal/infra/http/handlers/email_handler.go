package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
	"github.com/rafaelqm2/outreach-hub/internal/usecase"
)

type EmailHandler struct {
	Repo   entity.EmailRepositoryInterface
	Review *usecase.EmailReviewUseCase
}

func NewEmailHandler(repo entity.EmailRepositoryInterface, review *usecase.EmailReviewUseCase) *EmailHandler {
	return &EmailHandler{
		Repo:   repo,
		Review: review,
	}
}

// HandleList (GET /emails) feeds the dashboard table.
func (h *EmailHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	filter := entity.EmailListFilter{
		Status:         r.URL.Query().Get("status"),
		Classification: r.URL.Query().Get("classification"),
		Limit:          limit,
	}

	emails, err := h.Repo.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if emails == nil {
		emails = []entity.Email{}
	}

	writeJSON(w, http.StatusOK, emails)
}

// HandleGet (GET /emails/{id}) returns one record for the detail modal.
func (h *EmailHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "ID is required", http.StatusBadRequest)
		return
	}

	email, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, email)
}

type reviewRequest struct {
	LeadClassification string `json:"lead_classification"`
	Notes              string `json:"notes"`
}

// HandleReview (PUT /emails/{id}/review) saves classification and notes. No
// body on success; the caller re-fetches the list.
func (h *EmailHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "ID is required", http.StatusBadRequest)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.Review.Save(r.Context(), id, req.LeadClassification, req.Notes); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
