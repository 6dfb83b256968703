package facebookads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"adops-server/internal/channels"
	"adops-server/internal/observability"
)

const defaultTimeout = 10 * time.Second

var (
	ErrMissingID      = errors.New("external ref is missing id")
	ErrLaunchRejected = errors.New("facebook ads rejected the campaign launch")
	ErrPauseRejected  = errors.New("facebook ads rejected the pause request")
)

// launchResponse is the platform's launch payload: {"id": "...", "account": "..."}
type launchResponse struct {
	ID      string `json:"id"`
	Account string `json:"account"`
}

// statusPayload is the platform-native status shape. Spent is reported in
// integer minor units (cents); ROI is omitted until the platform has data.
type statusPayload struct {
	Status string   `json:"status"`
	Spent  *int64   `json:"spent"`
	ROI    *float64 `json:"roi"`
}

type pauseResponse struct {
	OK bool `json:"ok"`
}

// Adapter talks to a Facebook-style ads API. It is a stateless wrapper
// around one team's channel configuration.
type Adapter struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	logger     *observability.Logger
}

// New creates a Facebook Ads adapter bound to the given channel configuration.
func New(cfg channels.Config, logger *observability.Logger) channels.Adapter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Adapter{
		baseURL:   cfg.BaseURL,
		authToken: cfg.AuthToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Launch creates the campaign on the platform and returns its identifier set.
func (a *Adapter) Launch(ctx context.Context, spec channels.LaunchSpec) (channels.ExternalRef, error) {
	body, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal launch spec: %w", err)
	}

	respBody, err := a.do(ctx, http.MethodPost, a.baseURL+"/campaigns", body)
	if err != nil {
		a.logger.Error(ctx, "facebook ads launch call failed", err)
		return nil, fmt.Errorf("%w: %v", ErrLaunchRejected, err)
	}

	var launched launchResponse
	if err := json.Unmarshal(respBody, &launched); err != nil {
		return nil, fmt.Errorf("failed to parse launch response: %w", err)
	}
	if launched.ID == "" {
		return nil, fmt.Errorf("launch response has no id: %w", ErrLaunchRejected)
	}

	return channels.ExternalRef{
		"id":      launched.ID,
		"account": launched.Account,
	}, nil
}

// GetStatus fetches the platform-native status payload for the campaign.
func (a *Adapter) GetStatus(ctx context.Context, ref channels.ExternalRef) (json.RawMessage, error) {
	id, ok := ref["id"]
	if !ok || id == "" {
		return nil, ErrMissingID
	}

	respBody, err := a.do(ctx, http.MethodGet, fmt.Sprintf("%s/campaigns/%s/status", a.baseURL, id), nil)
	if err != nil {
		a.logger.Error(ctx, "facebook ads status call failed", err)
		return nil, fmt.Errorf("failed to fetch campaign status: %w", err)
	}
	return respBody, nil
}

// NormalizeStatus maps the platform vocabulary onto the canonical one and
// converts spend from minor units to currency units. It is total: any
// payload the parser cannot interpret maps to FAILED, with the raw payload
// retained for diagnosis.
func (a *Adapter) NormalizeStatus(raw json.RawMessage) channels.CanonicalStatus {
	var payload statusPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return channels.CanonicalStatus{State: channels.StateFailed, Raw: raw}
	}

	var state channels.CanonicalState
	switch payload.Status {
	case "ACTIVE":
		state = channels.StateRunning
	case "PAUSED":
		state = channels.StatePaused
	case "ENDED", "COMPLETED":
		state = channels.StateCompleted
	default:
		state = channels.StateFailed
	}

	var spend *float64
	if payload.Spent != nil {
		// Spent arrives in cents.
		units := float64(*payload.Spent) / 100
		spend = &units
	}

	return channels.CanonicalStatus{
		State: state,
		ROI:   payload.ROI,
		Spend: spend,
		Raw:   raw,
	}
}

// Pause asks the platform to halt spend. The platform treats pausing an
// already-paused campaign as a successful no-op.
func (a *Adapter) Pause(ctx context.Context, ref channels.ExternalRef) error {
	id, ok := ref["id"]
	if !ok || id == "" {
		return ErrMissingID
	}

	respBody, err := a.do(ctx, http.MethodPost, fmt.Sprintf("%s/campaigns/%s/pause", a.baseURL, id), nil)
	if err != nil {
		a.logger.Error(ctx, "facebook ads pause call failed", err)
		return fmt.Errorf("failed to pause campaign: %w", err)
	}

	var paused pauseResponse
	if err := json.Unmarshal(respBody, &paused); err != nil {
		return fmt.Errorf("failed to parse pause response: %w", err)
	}
	if !paused.OK {
		return ErrPauseRejected
	}
	return nil
}

// do performs an authenticated HTTP call and returns the response body.
// Non-2xx responses are errors.
func (a *Adapter) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.authToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}
