package alerts

import (
	"context"
	"errors"
	"fmt"

	"adops-server/internal/channels"
	"adops-server/internal/lifecycle"
	"adops-server/internal/observability"
	"adops-server/internal/store"

	"github.com/google/uuid"
)

// TriggerStore defines the database operations required by the Evaluator
type TriggerStore interface {
	ListActiveTriggersByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.ROIAlertTrigger, error)
	UpdateCampaignTaskStatus(ctx context.Context, taskID uuid.UUID, status string) (store.CampaignTask, error)
}

// Notifier dispatches non-lifecycle trigger actions to an external channel
type Notifier interface {
	NotifyTriggerFired(ctx context.Context, campaign store.CampaignTask, trigger store.ROIAlertTrigger, observed float64) error
}

// Outcome summarizes what one evaluation cycle did
type Outcome struct {
	// Paused is true when an AutoPause action fired and the campaign is
	// now in the paused state.
	Paused bool
	// Fired counts triggers whose condition matched this cycle.
	Fired int
}

// Evaluator runs a campaign's active threshold rules against its latest
// canonical status and executes matching actions.
type Evaluator struct {
	store    TriggerStore
	notifier Notifier
	logger   *observability.Logger
}

// New creates an alert trigger evaluator
func New(triggerStore TriggerStore, notifier Notifier, logger *observability.Logger) Evaluator {
	return Evaluator{
		store:    triggerStore,
		notifier: notifier,
		logger:   logger,
	}
}

// EvaluateTriggers evaluates every active trigger attached to the campaign,
// in insertion order, against the canonical status.
//
// A trigger whose metric the platform has not reported yet is skipped for
// the cycle; absence never satisfies a comparator. A trigger referencing an
// unknown metric key or comparator is a configuration error: logged,
// skipped, never fatal to the cycle. At most one pause is issued per cycle,
// and once an AutoPause succeeds the remaining triggers are skipped because
// the campaign is no longer in progress. Triggers are not deactivated by
// firing.
func (e Evaluator) EvaluateTriggers(ctx context.Context, campaign store.CampaignTask, adapter channels.Adapter, status channels.CanonicalStatus) (Outcome, error) {
	if campaign.Status != store.CampaignTaskStatusInProgress {
		return Outcome{}, nil
	}

	triggers, err := e.store.ListActiveTriggersByCampaign(ctx, campaign.ID)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to load triggers: %w", err)
	}

	var outcome Outcome
	pauseIssued := false
	for _, trigger := range triggers {
		if !trigger.IsActive {
			continue
		}

		triggerCtx := observability.WithFields(ctx,
			observability.Field{Key: "trigger_id", Value: trigger.ID},
			observability.Field{Key: "metric_key", Value: trigger.MetricKey},
		)

		observed, err := status.Metric(trigger.MetricKey)
		if err != nil {
			if errors.Is(err, channels.ErrUnknownMetric) {
				e.logger.WarnWithError(triggerCtx, "trigger references unknown metric, skipping", err)
				continue
			}
			return outcome, fmt.Errorf("failed to read metric %q: %w", trigger.MetricKey, err)
		}
		if observed == nil {
			// Platform has not reported this metric yet.
			continue
		}

		matched, err := compare(*observed, trigger.Threshold, trigger.Comparator)
		if err != nil {
			e.logger.WarnWithError(triggerCtx, "trigger has unknown comparator, skipping", err)
			continue
		}
		if !matched {
			continue
		}
		outcome.Fired++

		switch trigger.Action {
		case store.TriggerActionAutoPause:
			if pauseIssued {
				// A pause was already attempted this cycle; the next
				// scheduled poll retries if it did not stick.
				continue
			}
			pauseIssued = true

			if err := adapter.Pause(ctx, channels.ExternalRef(campaign.ExternalRef)); err != nil {
				// A failed pause is never treated as already-paused.
				e.logger.Error(triggerCtx, "auto-pause action failed, campaign stays in progress", err)
				continue
			}
			if !lifecycle.CanTransition(campaign.Status, store.CampaignTaskStatusPaused) {
				continue
			}
			if _, err := e.store.UpdateCampaignTaskStatus(ctx, campaign.ID, store.CampaignTaskStatusPaused); err != nil {
				e.logger.Error(triggerCtx, "failed to record paused status", err)
				return outcome, fmt.Errorf("failed to record paused status: %w", err)
			}
			outcome.Paused = true
			e.logger.Info(triggerCtx, "campaign auto-paused by trigger")
			// The campaign left the in-progress state; remaining
			// triggers have nothing to act on this cycle.
			return outcome, nil
		case store.TriggerActionNotify:
			if err := e.notifier.NotifyTriggerFired(ctx, campaign, trigger, *observed); err != nil {
				e.logger.Error(triggerCtx, "failed to dispatch trigger notification", err)
			}
		default:
			e.logger.Warn(observability.WithFields(triggerCtx,
				observability.Field{Key: "action", Value: trigger.Action}),
				"trigger has unknown action, skipping")
		}
	}

	return outcome, nil
}
