package unipile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const linkExpiry = 30 * time.Minute

// Client talks to the Unipile hosted-accounts API. Only the hosted link flow
// is used; account data itself flows back through the api_url callback.
type Client struct {
	dsn    string
	apiKey string
	apiURL string
	http   *http.Client
}

// NewClient takes the server-held secrets. Either may be empty; Configured
// gates the feature at the use-case layer.
func NewClient(dsn, apiKey, apiURL string) *Client {
	return &Client{
		dsn:    dsn,
		apiKey: apiKey,
		apiURL: apiURL,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.dsn != "" && c.apiKey != ""
}

// CreateHostedLink requests a time-boxed hosted link scoped to LinkedIn and
// returns the redirect URL verbatim.
func (c *Client) CreateHostedLink(ctx context.Context, successRedirectURL, failureRedirectURL string) (string, error) {
	url := fmt.Sprintf("https://%s/api/v1/hosted/accounts/link", c.dsn)

	payload := hostedLinkRequest{
		Type:               "create",
		APIURL:             c.apiURL,
		Providers:          []string{"LINKEDIN"},
		ExpiresOn:          time.Now().Add(linkExpiry).UTC().Format(time.RFC3339),
		SuccessRedirectURL: successRedirectURL,
		FailureRedirectURL: failureRedirectURL,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal link request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("unipile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var upstream errorResponse
		if json.Unmarshal(body, &upstream) == nil {
			if upstream.Message != "" {
				return "", fmt.Errorf("unipile rejected link request: %s", upstream.Message)
			}
			if upstream.Error != "" {
				return "", fmt.Errorf("unipile rejected link request: %s", upstream.Error)
			}
		}
		return "", fmt.Errorf("unipile rejected link request (status %d)", resp.StatusCode)
	}

	var response hostedLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("decode unipile response: %w", err)
	}

	return response.URL, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "OutreachHub/1.0")
}
