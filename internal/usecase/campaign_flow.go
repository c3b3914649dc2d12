package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
)

// SubmitStatus is the campaign submission lifecycle. Both terminal states
// fall back to idle after the display delay; only success clears the draft.
type SubmitStatus string

const (
	StatusIdle       SubmitStatus = "idle"
	StatusSubmitting SubmitStatus = "submitting"
	StatusSuccess    SubmitStatus = "success"
	StatusError      SubmitStatus = "error"
)

const (
	DefaultDelaySeconds = 90
	statusResetDelay    = 3 * time.Second

	msgIncompleteSteps = "Please complete all steps first"
	msgWebhookMissing  = "LinkedIn webhook URL not configured in Settings"
	msgSubmitSuccess   = "Campaign submitted successfully!"
	msgSubmitFallback  = "Failed to submit campaign"
)

// CampaignDraft is the step data collected before submission.
type CampaignDraft struct {
	AccountID    string        `json:"account_id"`
	Leads        []entity.Lead `json:"leads"`
	Template     string        `json:"template"`
	CampaignName string        `json:"campaign_name"`
	DelaySeconds int           `json:"delay_seconds"`
	MaxLeads     int           `json:"max_leads"`
}

// CampaignSnapshot is what the status endpoint returns.
type CampaignSnapshot struct {
	Status  SubmitStatus  `json:"status"`
	Message string        `json:"message,omitempty"`
	Draft   CampaignDraft `json:"draft"`
}

type campaignFlow struct {
	mu         sync.Mutex
	status     SubmitStatus
	message    string
	draft      CampaignDraft
	resetTimer *time.Timer
}

func newCampaignFlow() *campaignFlow {
	return &campaignFlow{
		status: StatusIdle,
		draft:  CampaignDraft{DelaySeconds: DefaultDelaySeconds},
	}
}

// CampaignFlows keeps one submission machine per user.
type CampaignFlows struct {
	mu    sync.Mutex
	flows map[string]*campaignFlow

	settings   SettingsResolver
	dispatcher WebhookDispatcher
	logger     *zap.Logger

	maxLeads   int
	resetDelay time.Duration
}

func NewCampaignFlows(settings SettingsResolver, dispatcher WebhookDispatcher, maxLeads int, logger *zap.Logger) *CampaignFlows {
	return &CampaignFlows{
		flows:      make(map[string]*campaignFlow),
		settings:   settings,
		dispatcher: dispatcher,
		logger:     logger,
		maxLeads:   maxLeads,
		resetDelay: statusResetDelay,
	}
}

func (m *CampaignFlows) flow(userID string) *campaignFlow {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.flows[userID]
	if !ok {
		f = newCampaignFlow()
		m.flows[userID] = f
	}
	return f
}

// SetAccount records the linked account identifier picked up from a fresh
// Settings read. An empty id locks the lead-collection step again.
func (m *CampaignFlows) SetAccount(userID, accountID string) {
	f := m.flow(userID)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.AccountID = accountID
}

// SetLeads stores the collected lead sequence. The lead step is gated on a
// linked account.
func (m *CampaignFlows) SetLeads(userID string, leads []entity.Lead) error {
	f := m.flow(userID)
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft.AccountID == "" {
		return &ValidationError{Message: "Connect your LinkedIn account first"}
	}
	if len(leads) == 0 {
		return &ValidationError{Message: "Lead list is empty"}
	}
	if m.maxLeads > 0 && len(leads) > m.maxLeads {
		return &ValidationError{Message: fmt.Sprintf("Lead list exceeds the %d lead limit", m.maxLeads)}
	}

	f.draft.Leads = leads
	return nil
}

func (m *CampaignFlows) SetTemplate(userID, template string) error {
	f := m.flow(userID)
	f.mu.Lock()
	defer f.mu.Unlock()

	if template == "" {
		return &ValidationError{Message: "Message template is empty"}
	}

	f.draft.Template = template
	return nil
}

// SetDetails records campaign name, per-lead delay and the optional max-leads
// cap.
func (m *CampaignFlows) SetDetails(userID, campaignName string, delaySeconds, maxLeads int) error {
	f := m.flow(userID)
	f.mu.Lock()
	defer f.mu.Unlock()

	if delaySeconds < 0 || maxLeads < 0 {
		return &ValidationError{Message: "Delay and max leads must not be negative"}
	}
	if delaySeconds == 0 {
		delaySeconds = DefaultDelaySeconds
	}

	f.draft.CampaignName = campaignName
	f.draft.DelaySeconds = delaySeconds
	f.draft.MaxLeads = maxLeads
	return nil
}

func (m *CampaignFlows) Snapshot(userID string) CampaignSnapshot {
	f := m.flow(userID)
	f.mu.Lock()
	defer f.mu.Unlock()
	return CampaignSnapshot{Status: f.status, Message: f.message, Draft: f.draft}
}

// Submit runs one dispatch attempt: guard, fresh Settings read, exactly one
// webhook POST. The returned snapshot reflects the terminal state; the flow
// transitions back to idle on its own after the display delay.
func (m *CampaignFlows) Submit(ctx context.Context, userID string) (CampaignSnapshot, error) {
	f := m.flow(userID)

	f.mu.Lock()
	if f.status == StatusSubmitting {
		snap := CampaignSnapshot{Status: f.status, Message: f.message, Draft: f.draft}
		f.mu.Unlock()
		return snap, &ValidationError{Message: "A submission is already in progress"}
	}

	// Entry guard: every step must be complete before any network call.
	if userID == "" || f.draft.AccountID == "" || len(f.draft.Leads) == 0 ||
		f.draft.Template == "" || f.draft.CampaignName == "" {
		f.message = msgIncompleteSteps
		snap := CampaignSnapshot{Status: f.status, Message: f.message, Draft: f.draft}
		f.mu.Unlock()
		return snap, &ValidationError{Message: msgIncompleteSteps}
	}

	f.stopResetTimer()
	f.status = StatusSubmitting
	f.message = ""
	draft := f.draft
	f.mu.Unlock()

	// Fresh read so the dispatch never goes to a stale or just-changed URL.
	settings, err := m.settings.GetSettings(ctx, userID)
	if err != nil {
		return m.fail(f, userID, err)
	}
	if settings.LinkedInWebhookURL == "" {
		return m.fail(f, userID, &ConfigurationError{Message: msgWebhookMissing})
	}

	leads := draft.Leads
	if draft.MaxLeads > 0 && draft.MaxLeads < len(leads) {
		leads = leads[:draft.MaxLeads]
	}

	payload := entity.CampaignPayload{
		UserID:            userID,
		LinkedInAccountID: draft.AccountID,
		Leads:             leads,
		MessageTemplate:   draft.Template,
		DelaySeconds:      draft.DelaySeconds,
		CampaignName:      draft.CampaignName,
	}

	if err := m.dispatcher.Dispatch(ctx, settings.LinkedInWebhookURL, payload); err != nil {
		return m.fail(f, userID, &UpstreamError{Message: err.Error()})
	}

	f.mu.Lock()
	f.status = StatusSuccess
	f.message = msgSubmitSuccess
	m.scheduleReset(f, true)
	snap := CampaignSnapshot{Status: f.status, Message: f.message, Draft: f.draft}
	f.mu.Unlock()

	m.logger.Info("campaign dispatched",
		zap.String("user_id", userID),
		zap.String("campaign", draft.CampaignName),
		zap.Int("leads", len(leads)))

	return snap, nil
}

func (m *CampaignFlows) fail(f *campaignFlow, userID string, cause error) (CampaignSnapshot, error) {
	message := cause.Error()
	if message == "" {
		message = msgSubmitFallback
	}

	f.mu.Lock()
	f.status = StatusError
	f.message = message
	// The draft survives an error so the user can resubmit as-is.
	m.scheduleReset(f, false)
	snap := CampaignSnapshot{Status: f.status, Message: f.message, Draft: f.draft}
	f.mu.Unlock()

	m.logger.Warn("campaign submission failed",
		zap.String("user_id", userID),
		zap.Error(cause))

	return snap, cause
}

// scheduleReset arms the display-delay timer. Caller holds f.mu.
func (m *CampaignFlows) scheduleReset(f *campaignFlow, clearDraft bool) {
	f.stopResetTimer()
	f.resetTimer = time.AfterFunc(m.resetDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.status = StatusIdle
		f.message = ""
		if clearDraft {
			accountID := f.draft.AccountID
			f.draft = CampaignDraft{AccountID: accountID, DelaySeconds: DefaultDelaySeconds}
		}
	})
}

// stopResetTimer cancels a pending auto-reset. Caller holds f.mu.
func (f *campaignFlow) stopResetTimer() {
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

// Close cancels every pending timer so nothing mutates flow state after
// shutdown.
func (m *CampaignFlows) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.flows {
		f.mu.Lock()
		f.stopResetTimer()
		f.mu.Unlock()
	}
}
