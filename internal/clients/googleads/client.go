package googleads

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
	ErrMissingCampaignID = errors.New("external ref is missing campaignId")
	ErrLaunchRejected    = errors.New("google ads rejected the campaign launch")
	ErrPauseRejected     = errors.New("google ads rejected the pause request")
)

// launchResponse is the platform's launch payload: {"campaignId": "...", "accountId": "..."}
type launchResponse struct {
	CampaignID string `json:"campaignId"`
	AccountID  string `json:"accountId"`
}

// statusPayload is the platform-native status shape. Spend and ROI are
// pointers because the platform omits them until the campaign has data.
type statusPayload struct {
	State string   `json:"state"`
	Spend *float64 `json:"spend"`
	ROI   *float64 `json:"roi"`
}

type pauseResponse struct {
	OK bool `json:"ok"`
}

// Adapter talks to a Google-style ads API. It is a stateless wrapper
// around one team's channel configuration.
type Adapter struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	logger     *observability.Logger
}

// New creates a Google Ads adapter bound to the given channel configuration.
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
		a.logger.Error(ctx, "google ads launch call failed", err)
		return nil, fmt.Errorf("%w: %v", ErrLaunchRejected, err)
	}

	var launched launchResponse
	if err := json.Unmarshal(respBody, &launched); err != nil {
		return nil, fmt.Errorf("failed to parse launch response: %w", err)
	}
	if launched.CampaignID == "" {
		return nil, fmt.Errorf("launch response has no campaignId: %w", ErrLaunchRejected)
	}

	return channels.ExternalRef{
		"campaignId": launched.CampaignID,
		"accountId":  launched.AccountID,
	}, nil
}

// GetStatus fetches the platform-native status payload for the campaign.
func (a *Adapter) GetStatus(ctx context.Context, ref channels.ExternalRef) (json.RawMessage, error) {
	campaignID, ok := ref["campaignId"]
	if !ok || campaignID == "" {
		return nil, ErrMissingCampaignID
	}

	respBody, err := a.do(ctx, http.MethodGet, fmt.Sprintf("%s/campaigns/%s/status", a.baseURL, campaignID), nil)
	if err != nil {
		a.logger.Error(ctx, "google ads status call failed", err)
		return nil, fmt.Errorf("failed to fetch campaign status: %w", err)
	}
	return respBody, nil
}

// NormalizeStatus maps the platform vocabulary onto the canonical one.
// It is total: any payload the parser cannot interpret maps to FAILED,
// with the raw payload retained for diagnosis.
func (a *Adapter) NormalizeStatus(raw json.RawMessage) channels.CanonicalStatus {
	var payload statusPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return channels.CanonicalStatus{State: channels.StateFailed, Raw: raw}
	}

	var state channels.CanonicalState
	switch payload.State {
	case "ENABLED", "ACTIVE":
		state = channels.StateRunning
	case "PAUSED":
		state = channels.StatePaused
	case "ENDED", "COMPLETED":
		state = channels.StateCompleted
	default:
		state = channels.StateFailed
	}

	return channels.CanonicalStatus{
		State: state,
		ROI:   payload.ROI,
		Spend: payload.Spend,
		Raw:   raw,
	}
}

// Pause asks the platform to halt spend. The platform treats pausing an
// already-paused campaign as a successful no-op.
func (a *Adapter) Pause(ctx context.Context, ref channels.ExternalRef) error {
	campaignID, ok := ref["campaignId"]
	if !ok || campaignID == "" {
		return ErrMissingCampaignID
	}

	respBody, err := a.do(ctx, http.MethodPost, fmt.Sprintf("%s/campaigns/%s/pause", a.baseURL, campaignID), nil)
	if err != nil {
		a.logger.Error(ctx, "google ads pause call failed", err)
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
