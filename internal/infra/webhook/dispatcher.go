package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Dispatcher posts campaign and search payloads to user-configured endpoints.
// The endpoint is opaque automation (n8n or similar); only the status code is
// consumed.
type Dispatcher struct {
	http   *http.Client
	logger *zap.Logger
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		http:   &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, url string, payload any) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "OutreachHub/1.0")

	resp, err := d.http.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		d.logger.Warn("webhook rejected dispatch",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
