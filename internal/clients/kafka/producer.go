package kafka

import (
	"adops-server/internal/observability"
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Producer handles publishing events to Kafka
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Topic:    config.Topic,
		Balancer: &kafka.LeastBytes{},
		Async:    false,
		// Compression for better throughput
		Compression: kafka.Snappy,
		BatchSize:   100,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// EventMessage represents an event message structure
type EventMessage struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	TeamID     string                 `json:"team_id"`
	CampaignID string                 `json:"campaign_id"`
	Data       map[string]interface{} `json:"data"`
	Timestamp  string                 `json:"timestamp"`
}

// PublishEvent publishes an event to Kafka
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		// Partition by campaign id so one campaign's events stay ordered
		Key:   []byte(event.CampaignID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "campaign_id", Value: []byte(event.CampaignID)},
		},
	}

	err = p.writer.WriteMessages(ctx, msg)
	if err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
