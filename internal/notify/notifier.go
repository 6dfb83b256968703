// Package notify dispatches alert trigger notifications to the event bus.
// Consumers of the alert-events topic (email, chat, webhooks) live outside
// this service.
package notify

import (
	"context"
	"fmt"
	"time"

	kafkaClient "adops-server/internal/clients/kafka"
	"adops-server/internal/observability"
	"adops-server/internal/store"

	"github.com/google/uuid"
)

// Event types published to the alert-events topic
const (
	EventTypeTriggerFired = "alert.trigger_fired"
)

// KafkaNotifier publishes trigger notifications through the Kafka producer
type KafkaNotifier struct {
	producer *kafkaClient.Producer
	logger   *observability.Logger
}

// New creates a Kafka-backed notifier
func New(producer *kafkaClient.Producer, logger *observability.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		producer: producer,
		logger:   logger,
	}
}

// NotifyTriggerFired publishes one trigger-fired event for a campaign
func (n *KafkaNotifier) NotifyTriggerFired(ctx context.Context, campaign store.CampaignTask, trigger store.ROIAlertTrigger, observed float64) error {
	event := kafkaClient.EventMessage{
		ID:         uuid.New().String(),
		Type:       EventTypeTriggerFired,
		TeamID:     campaign.TeamID.String(),
		CampaignID: campaign.ID.String(),
		Data: map[string]interface{}{
			"trigger_id": trigger.ID.String(),
			"metric_key": trigger.MetricKey,
			"comparator": trigger.Comparator,
			"threshold":  trigger.Threshold,
			"observed":   observed,
			"channel":    campaign.Channel,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := n.producer.PublishEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to publish trigger notification: %w", err)
	}
	return nil
}
