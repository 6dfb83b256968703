package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"adops-server/internal/alerts"
	campaignHandler "adops-server/internal/campaign/handler"
	campaignProcessor "adops-server/internal/campaign/processor"
	"adops-server/internal/channels"
	"adops-server/internal/clients/facebookads"
	"adops-server/internal/clients/googleads"
	kafkaClient "adops-server/internal/clients/kafka"
	"adops-server/internal/config"
	"adops-server/internal/jobs/scheduler"
	schedulerJobs "adops-server/internal/jobs/scheduler/jobs"
	"adops-server/internal/notify"
	"adops-server/internal/observability"
	"adops-server/internal/poller"
	"adops-server/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Logger *observability.Logger

	// Handlers
	CampaignHandler campaignHandler.Handler

	// Background work
	Poller    *poller.Poller
	Scheduler *scheduler.Scheduler

	// Kafka clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	st, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.Store = &st

	// Initialize Kafka producer for alert notifications
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: strings.Split(cfg.Kafka.Brokers, ","),
		Topic:   cfg.Kafka.Topic,
	}, logger)
	notifier := notify.New(deps.KafkaProducer, logger)

	// Register the supported ad platform adapters. Adding a platform means
	// one constructor registration here plus its client package.
	factory := channels.NewExecutorFactory(logger)
	factory.Register(channels.ChannelGoogleAds, googleads.New)
	factory.Register(channels.ChannelFacebookAds, facebookads.New)

	// Campaign processor and handler
	campaignProc := campaignProcessor.New(deps.Store, factory, logger, cfg.Poller.RemoteTimeout)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	// Alert evaluation and the status polling loop
	evaluator := alerts.New(deps.Store, notifier, logger)
	deps.Poller = poller.New(deps.Store, factory, evaluator, logger, cfg.Poller.RemoteTimeout)

	deps.Scheduler = scheduler.New(logger)
	deps.Scheduler.Register(schedulerJobs.NewPollCampaignsJob(
		deps.Store,
		deps.Poller,
		logger,
		cfg.Poller.Interval,
		cfg.Poller.Concurrency,
	))

	return deps, nil
}

// Cleanup closes long-lived connections
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close kafka producer", err)
		}
	}
}
