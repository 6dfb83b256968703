package processor

import (
	"context"
	"errors"
	"fmt"

	"adops-server/internal/channels"
	"adops-server/internal/observability"
	"adops-server/internal/store"

	"github.com/google/uuid"
)

// CreateTriggerParams represents parameters for attaching a threshold rule
type CreateTriggerParams struct {
	MetricKey  string
	Comparator string
	Threshold  float64
	Action     string
}

func validComparator(comparator string) bool {
	switch comparator {
	case store.TriggerComparatorLT, store.TriggerComparatorLTE,
		store.TriggerComparatorGT, store.TriggerComparatorGTE,
		store.TriggerComparatorEQ:
		return true
	}
	return false
}

func validAction(action string) bool {
	return action == store.TriggerActionAutoPause || action == store.TriggerActionNotify
}

// CreateTrigger attaches an active alert trigger to a campaign. The metric
// key is validated against the canonical status vocabulary so a typo fails
// here instead of being silently skipped on every poll.
func (p CampaignProcessor) CreateTrigger(ctx context.Context, teamID, campaignID uuid.UUID, params CreateTriggerParams) (store.ROIAlertTrigger, error) {
	if _, err := (channels.CanonicalStatus{}).Metric(params.MetricKey); err != nil {
		return store.ROIAlertTrigger{}, fmt.Errorf("%q: %w", params.MetricKey, channels.ErrUnknownMetric)
	}
	if !validComparator(params.Comparator) {
		return store.ROIAlertTrigger{}, fmt.Errorf("%w: %q", ErrInvalidComparator, params.Comparator)
	}
	if !validAction(params.Action) {
		return store.ROIAlertTrigger{}, fmt.Errorf("%w: %q", ErrInvalidAction, params.Action)
	}

	if _, err := p.GetCampaign(ctx, teamID, campaignID); err != nil {
		return store.ROIAlertTrigger{}, err
	}

	trigger, err := p.store.CreateAlertTrigger(ctx, store.CreateAlertTriggerParams{
		CampaignID: campaignID,
		MetricKey:  params.MetricKey,
		Comparator: params.Comparator,
		Threshold:  params.Threshold,
		Action:     params.Action,
	})
	if err != nil {
		return store.ROIAlertTrigger{}, fmt.Errorf("failed to create trigger: %w", err)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "trigger_id", Value: trigger.ID},
	), "alert trigger created")
	return trigger, nil
}

// ListTriggers lists every trigger attached to a campaign, active or not
func (p CampaignProcessor) ListTriggers(ctx context.Context, teamID, campaignID uuid.UUID) ([]store.ROIAlertTrigger, error) {
	if _, err := p.GetCampaign(ctx, teamID, campaignID); err != nil {
		return nil, err
	}
	return p.store.ListTriggersByCampaign(ctx, campaignID)
}

// SetTriggerActive toggles a trigger without deleting its history. The
// update is scoped to the campaign, so a trigger id belonging to another
// campaign is never written.
func (p CampaignProcessor) SetTriggerActive(ctx context.Context, teamID, campaignID, triggerID uuid.UUID, active bool) (store.ROIAlertTrigger, error) {
	if _, err := p.GetCampaign(ctx, teamID, campaignID); err != nil {
		return store.ROIAlertTrigger{}, err
	}

	trigger, err := p.store.SetAlertTriggerActive(ctx, campaignID, triggerID, active)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ROIAlertTrigger{}, ErrTriggerNotFound
		}
		return store.ROIAlertTrigger{}, fmt.Errorf("failed to update trigger: %w", err)
	}
	return trigger, nil
}

// CreateChannelConfigParams represents parameters for storing a team's
// platform connection settings
type CreateChannelConfigParams struct {
	Channel   string
	AuthToken string
	BaseURL   string
	Settings  map[string]any
}

// CreateChannelConfig stores a team's connection settings for one channel
func (p CampaignProcessor) CreateChannelConfig(ctx context.Context, teamID uuid.UUID, params CreateChannelConfigParams) (store.ChannelConfig, error) {
	if !channels.Channel(params.Channel).Valid() {
		return store.ChannelConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedChannel, params.Channel)
	}

	settings := store.JSONB{}
	for k, v := range params.Settings {
		settings[k] = v
	}
	if params.BaseURL != "" {
		settings["base_url"] = params.BaseURL
	}

	config, err := p.store.CreateChannelConfig(ctx, store.CreateChannelConfigParams{
		TeamID:    teamID,
		Channel:   params.Channel,
		AuthToken: params.AuthToken,
		Settings:  settings,
	})
	if err != nil {
		return store.ChannelConfig{}, fmt.Errorf("failed to create channel config: %w", err)
	}
	return config, nil
}

// ListChannelConfigs lists a team's connection settings across channels
func (p CampaignProcessor) ListChannelConfigs(ctx context.Context, teamID uuid.UUID) ([]store.ChannelConfig, error) {
	return p.store.ListChannelConfigsByTeam(ctx, teamID)
}
