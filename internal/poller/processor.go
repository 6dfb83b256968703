package poller

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adops-server/internal/alerts"
	"adops-server/internal/channels"
	"adops-server/internal/lifecycle"
	"adops-server/internal/observability"
	"adops-server/internal/store"

	"github.com/google/uuid"
)

// PollerStore defines the database operations required by the Poller
type PollerStore interface {
	GetCampaignTaskByID(ctx context.Context, taskID uuid.UUID) (store.CampaignTask, error)
	GetChannelConfig(ctx context.Context, teamID uuid.UUID, channel string) (store.ChannelConfig, error)
	UpdateCampaignTaskPollResult(ctx context.Context, taskID uuid.UUID, status string, roi, spend *float64) (store.CampaignTask, error)
}

// ExecutorFactory resolves a channel identifier to an adapter
type ExecutorFactory interface {
	GetExecutor(channel channels.Channel, cfg channels.Config) (channels.Adapter, error)
}

// TriggerEvaluator runs a campaign's alert rules after a successful poll
type TriggerEvaluator interface {
	EvaluateTriggers(ctx context.Context, campaign store.CampaignTask, adapter channels.Adapter, status channels.CanonicalStatus) (alerts.Outcome, error)
}

var (
	// ErrPollInFlight means another cycle for the same campaign has not
	// finished yet; the caller skips and retries next tick.
	ErrPollInFlight = errors.New("poll already in flight for campaign")
	// ErrConfigMissing means the campaign's team has no connection
	// settings for the channel. Fatal for the cycle, retried next tick.
	ErrConfigMissing = errors.New("channel config missing")
)

// Poller drives the status control loop for individual campaigns.
type Poller struct {
	store         PollerStore
	factory       ExecutorFactory
	evaluator     TriggerEvaluator
	logger        *observability.Logger
	remoteTimeout time.Duration
	registry      *inflightRegistry
}

// New creates a campaign status poller. remoteTimeout bounds every ad
// platform call made during a cycle.
func New(pollerStore PollerStore, factory ExecutorFactory, evaluator TriggerEvaluator, logger *observability.Logger, remoteTimeout time.Duration) *Poller {
	if remoteTimeout <= 0 {
		remoteTimeout = 10 * time.Second
	}
	return &Poller{
		store:         pollerStore,
		factory:       factory,
		evaluator:     evaluator,
		logger:        logger,
		remoteTimeout: remoteTimeout,
		registry:      newInflightRegistry(),
	}
}

// PollCampaignStatus runs one poll cycle for a campaign: fetch the remote
// status, normalize it, persist the observation, and evaluate alert
// triggers. Every returned error is scoped to this campaign's cycle; the
// caller reports it and retries on the next scheduled tick.
func (p *Poller) PollCampaignStatus(ctx context.Context, campaignID uuid.UUID) error {
	if !p.registry.tryAcquire(campaignID) {
		return ErrPollInFlight
	}
	defer p.registry.release(campaignID)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
	)

	task, err := p.store.GetCampaignTaskByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Scheduling races with deletion are expected; skip quietly.
			p.logger.Info(ctx, "campaign gone before poll, skipping")
			return nil
		}
		return fmt.Errorf("failed to load campaign: %w", err)
	}

	// Dormant and terminal campaigns are not polled.
	if task.Status != store.CampaignTaskStatusInProgress {
		return nil
	}

	config, err := p.store.GetChannelConfig(ctx, task.TeamID, task.Channel)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no config for team %s channel %s: %w", task.TeamID, task.Channel, ErrConfigMissing)
		}
		return fmt.Errorf("failed to load channel config: %w", err)
	}

	adapter, err := p.factory.GetExecutor(channels.Channel(task.Channel), channels.Config{
		BaseURL:   config.BaseURL(),
		AuthToken: config.AuthToken,
		Timeout:   p.remoteTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve adapter: %w", err)
	}

	statusCtx, cancel := context.WithTimeout(ctx, p.remoteTimeout)
	defer cancel()
	raw, err := adapter.GetStatus(statusCtx, channels.ExternalRef(task.ExternalRef))
	if err != nil {
		// Transient: nothing is persisted, the next tick retries.
		return fmt.Errorf("failed to fetch remote status: %w", err)
	}

	canonical := adapter.NormalizeStatus(raw)

	// Metrics update independently of lifecycle transitions; only a
	// terminal canonical state moves the campaign's own status.
	nextStatus := task.Status
	switch canonical.State {
	case channels.StateCompleted:
		nextStatus = store.CampaignTaskStatusCompleted
	case channels.StateFailed:
		nextStatus = store.CampaignTaskStatusFailed
	}
	if nextStatus != task.Status && !lifecycle.CanTransition(task.Status, nextStatus) {
		nextStatus = task.Status
	}

	task, err = p.store.UpdateCampaignTaskPollResult(ctx, task.ID, nextStatus, canonical.ROI, canonical.Spend)
	if err != nil {
		return fmt.Errorf("failed to persist poll result: %w", err)
	}

	if lifecycle.IsTerminal(task.Status) {
		p.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "status", Value: task.Status}),
			"campaign reached terminal state")
		return nil
	}

	outcome, err := p.evaluator.EvaluateTriggers(ctx, task, adapter, canonical)
	if err != nil {
		return fmt.Errorf("trigger evaluation failed: %w", err)
	}
	if outcome.Paused {
		p.logger.Info(ctx, "campaign paused by alert trigger")
	}
	return nil
}
