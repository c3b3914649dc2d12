package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
)

// SearchStatus is the search-trigger lifecycle. completed auto-resets the
// form after the display delay; error sticks until the next trigger.
type SearchStatus string

const (
	SearchIdle      SearchStatus = "idle"
	SearchRunning   SearchStatus = "running"
	SearchCompleted SearchStatus = "completed"
	SearchError     SearchStatus = "error"
)

const msgSearchWebhookMissing = "Webhook URL not configured. Please configure it in Settings."

// SearchInput is the raw form input; keywords arrive comma-separated.
type SearchInput struct {
	Region   string `json:"region"`
	Industry string `json:"industry"`
	Keywords string `json:"keywords"`
	Campaign string `json:"campaign"`
}

type SearchSnapshot struct {
	Status  SearchStatus `json:"status"`
	Message string       `json:"message,omitempty"`
	Input   SearchInput  `json:"input"`
}

type searchFlow struct {
	mu         sync.Mutex
	status     SearchStatus
	message    string
	input      SearchInput
	resetTimer *time.Timer
}

// SearchFlows keeps one trigger flow per user.
type SearchFlows struct {
	mu    sync.Mutex
	flows map[string]*searchFlow

	settings   SettingsResolver
	dispatcher WebhookDispatcher
	logger     *zap.Logger

	resetDelay time.Duration
}

func NewSearchFlows(settings SettingsResolver, dispatcher WebhookDispatcher, logger *zap.Logger) *SearchFlows {
	return &SearchFlows{
		flows:      make(map[string]*searchFlow),
		settings:   settings,
		dispatcher: dispatcher,
		logger:     logger,
		resetDelay: statusResetDelay,
	}
}

func (m *SearchFlows) flow(userID string) *searchFlow {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.flows[userID]
	if !ok {
		f = &searchFlow{status: SearchIdle}
		m.flows[userID] = f
	}
	return f
}

func (m *SearchFlows) Snapshot(userID string) SearchSnapshot {
	f := m.flow(userID)
	f.mu.Lock()
	defer f.mu.Unlock()
	return SearchSnapshot{Status: f.status, Message: f.message, Input: f.input}
}

// ParseKeywords splits the comma-separated input, trimming each entry and
// preserving order. Empty entries are kept as-is; the webhook decides what to
// do with them.
func ParseKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, len(parts))
	for i, p := range parts {
		keywords[i] = strings.TrimSpace(p)
	}
	return keywords
}

// Trigger validates the form, resolves the search webhook with a fresh
// Settings read and performs exactly one dispatch.
func (m *SearchFlows) Trigger(ctx context.Context, userID string, input SearchInput) (SearchSnapshot, error) {
	f := m.flow(userID)

	f.mu.Lock()
	if f.status == SearchRunning {
		snap := SearchSnapshot{Status: f.status, Message: f.message, Input: f.input}
		f.mu.Unlock()
		return snap, &ValidationError{Message: "A search is already running"}
	}

	if userID == "" {
		f.mu.Unlock()
		return SearchSnapshot{}, ErrNotAuthenticated
	}
	if strings.TrimSpace(input.Region) == "" || strings.TrimSpace(input.Industry) == "" ||
		strings.TrimSpace(input.Keywords) == "" {
		snap := SearchSnapshot{Status: f.status, Message: f.message, Input: f.input}
		f.mu.Unlock()
		return snap, &ValidationError{Message: "Region, industry and keywords are required"}
	}

	f.stopResetTimer()
	f.status = SearchRunning
	f.message = ""
	f.input = input
	f.mu.Unlock()

	settings, err := m.settings.GetSettings(ctx, userID)
	if err != nil {
		return m.fail(f, userID, err)
	}
	if settings.WebhookURL == "" {
		return m.fail(f, userID, &ConfigurationError{Message: msgSearchWebhookMissing})
	}

	payload := entity.SearchPayload{
		Region:   input.Region,
		Industry: input.Industry,
		Keywords: ParseKeywords(input.Keywords),
		Campaign: input.Campaign,
	}

	if err := m.dispatcher.Dispatch(ctx, settings.WebhookURL, payload); err != nil {
		return m.fail(f, userID, &UpstreamError{Message: err.Error()})
	}

	name := input.Campaign
	if name == "" {
		name = "Untitled"
	}

	f.mu.Lock()
	f.status = SearchCompleted
	f.message = fmt.Sprintf("Campaign %q triggered successfully!", name)
	m.scheduleReset(f)
	snap := SearchSnapshot{Status: f.status, Message: f.message, Input: f.input}
	f.mu.Unlock()

	m.logger.Info("search triggered",
		zap.String("user_id", userID),
		zap.String("campaign", name))

	return snap, nil
}

func (m *SearchFlows) fail(f *searchFlow, userID string, cause error) (SearchSnapshot, error) {
	f.mu.Lock()
	f.status = SearchError
	f.message = cause.Error()
	// No auto-reset on error: the form keeps its values until the next
	// trigger.
	snap := SearchSnapshot{Status: f.status, Message: f.message, Input: f.input}
	f.mu.Unlock()

	m.logger.Warn("search trigger failed",
		zap.String("user_id", userID),
		zap.Error(cause))

	return snap, cause
}

// scheduleReset arms the completed->idle timer, clearing the form with it.
// Caller holds f.mu.
func (m *SearchFlows) scheduleReset(f *searchFlow) {
	f.stopResetTimer()
	f.resetTimer = time.AfterFunc(m.resetDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.status = SearchIdle
		f.message = ""
		f.input = SearchInput{}
	})
}

func (f *searchFlow) stopResetTimer() {
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

func (m *SearchFlows) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.flows {
		f.mu.Lock()
		f.stopResetTimer()
		f.mu.Unlock()
	}
}
