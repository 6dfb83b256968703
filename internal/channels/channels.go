package channels

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Channel identifies a supported external ad platform.
type Channel string

const (
	ChannelGoogleAds   Channel = "google_ads"
	ChannelFacebookAds Channel = "facebook_ads"
)

// Valid reports whether the channel names a platform this system knows
func (c Channel) Valid() bool {
	switch c {
	case ChannelGoogleAds, ChannelFacebookAds:
		return true
	}
	return false
}

// CanonicalState is the platform-agnostic campaign state vocabulary.
// Every adapter maps its platform's own status words onto these four values.
type CanonicalState string

const (
	StateRunning   CanonicalState = "RUNNING"
	StatePaused    CanonicalState = "PAUSED"
	StateCompleted CanonicalState = "COMPLETED"
	StateFailed    CanonicalState = "FAILED"
)

var (
	// ErrUnsupportedChannel is returned when no adapter is registered for a channel.
	ErrUnsupportedChannel = errors.New("unsupported channel")
	// ErrUnknownMetric is returned when a metric key is not part of the canonical status.
	ErrUnknownMetric = errors.New("unknown metric key")
)

// ExternalRef is the opaque identifier set a platform returns at launch.
// Field names vary per platform; only the adapter that produced a ref
// interprets its contents.
type ExternalRef map[string]string

// LaunchSpec carries the campaign creation data sent to a platform.
type LaunchSpec struct {
	Title     string   `json:"title"`
	Audience  string   `json:"audience"`
	Creatives []string `json:"creatives"`
}

// CanonicalStatus is the normalized view of a campaign's remote state.
// ROI and Spend are nil until the platform starts reporting them.
// Raw keeps the untouched platform payload for audit and debugging.
type CanonicalStatus struct {
	State CanonicalState
	ROI   *float64
	Spend *float64
	Raw   json.RawMessage
}

// Metric returns the metric named by key. A nil result with a nil error
// means the platform has not reported the metric yet.
func (s CanonicalStatus) Metric(key string) (*float64, error) {
	switch key {
	case "roi":
		return s.ROI, nil
	case "spend":
		return s.Spend, nil
	default:
		return nil, ErrUnknownMetric
	}
}

// Config holds the connection settings an adapter is bound to.
type Config struct {
	BaseURL   string
	AuthToken string
	Timeout   time.Duration
}

// Adapter is the capability set every ad platform integration implements.
//
// GetStatus surfaces network and API failures as errors; NormalizeStatus is
// pure and total over every payload the platform can emit, mapping anything
// uninterpretable to StateFailed rather than returning an error. Pause is
// idempotent: pausing an already-paused campaign succeeds.
type Adapter interface {
	Launch(ctx context.Context, spec LaunchSpec) (ExternalRef, error)
	GetStatus(ctx context.Context, ref ExternalRef) (json.RawMessage, error)
	NormalizeStatus(raw json.RawMessage) CanonicalStatus
	Pause(ctx context.Context, ref ExternalRef) error
}
