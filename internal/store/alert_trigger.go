package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateAlertTriggerParams represents parameters for creating an alert trigger
type CreateAlertTriggerParams struct {
	CampaignID uuid.UUID
	MetricKey  string
	Comparator string
	Threshold  float64
	Action     string
}

const sqlCreateAlertTrigger = `
INSERT INTO roi_alert_triggers (campaign_id, metric_key, comparator, threshold, action, is_active)
VALUES ($1, $2, $3, $4, $5, true)
RETURNING id, campaign_id, metric_key, comparator, threshold, action, is_active, created_at
`

// CreateAlertTrigger attaches an active threshold rule to a campaign
func (s *Store) CreateAlertTrigger(ctx context.Context, params CreateAlertTriggerParams) (ROIAlertTrigger, error) {
	var trigger ROIAlertTrigger
	err := s.db.GetContext(ctx, &trigger, sqlCreateAlertTrigger,
		params.CampaignID,
		params.MetricKey,
		params.Comparator,
		params.Threshold,
		params.Action)
	if err != nil {
		s.logger.Error(ctx, "failed to create alert trigger", err)
		return ROIAlertTrigger{}, fmt.Errorf("failed to create alert trigger: %w", err)
	}
	return trigger, nil
}

const sqlListActiveTriggersByCampaign = `
SELECT id, campaign_id, metric_key, comparator, threshold, action, is_active, created_at
FROM roi_alert_triggers
WHERE campaign_id = $1 AND is_active = true
ORDER BY created_at, id
`

// ListActiveTriggersByCampaign lists a campaign's active triggers in
// insertion order, which is also their evaluation order.
func (s *Store) ListActiveTriggersByCampaign(ctx context.Context, campaignID uuid.UUID) ([]ROIAlertTrigger, error) {
	triggers := []ROIAlertTrigger{}
	err := s.db.SelectContext(ctx, &triggers, sqlListActiveTriggersByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list active triggers", err)
		return nil, fmt.Errorf("failed to list active triggers: %w", err)
	}
	return triggers, nil
}

const sqlListTriggersByCampaign = `
SELECT id, campaign_id, metric_key, comparator, threshold, action, is_active, created_at
FROM roi_alert_triggers
WHERE campaign_id = $1
ORDER BY created_at, id
`

// ListTriggersByCampaign lists all of a campaign's triggers, active or not
func (s *Store) ListTriggersByCampaign(ctx context.Context, campaignID uuid.UUID) ([]ROIAlertTrigger, error) {
	triggers := []ROIAlertTrigger{}
	err := s.db.SelectContext(ctx, &triggers, sqlListTriggersByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list triggers", err)
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}
	return triggers, nil
}

const sqlSetAlertTriggerActive = `
UPDATE roi_alert_triggers
SET is_active = $3
WHERE id = $1 AND campaign_id = $2
RETURNING id, campaign_id, metric_key, comparator, threshold, action, is_active, created_at
`

// SetAlertTriggerActive flips a trigger's active flag. The update is scoped
// to the owning campaign so a trigger id from another campaign never
// matches a row.
func (s *Store) SetAlertTriggerActive(ctx context.Context, campaignID, triggerID uuid.UUID, active bool) (ROIAlertTrigger, error) {
	var trigger ROIAlertTrigger
	err := s.db.GetContext(ctx, &trigger, sqlSetAlertTriggerActive, triggerID, campaignID, active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ROIAlertTrigger{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update alert trigger", err)
		return ROIAlertTrigger{}, fmt.Errorf("failed to update alert trigger: %w", err)
	}
	return trigger, nil
}
