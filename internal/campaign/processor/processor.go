package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adops-server/internal/channels"
	"adops-server/internal/lifecycle"
	"adops-server/internal/observability"
	"adops-server/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	// Campaign tasks
	CreateCampaignTask(ctx context.Context, params store.CreateCampaignTaskParams) (store.CampaignTask, error)
	GetCampaignTaskByID(ctx context.Context, taskID uuid.UUID) (store.CampaignTask, error)
	ListCampaignTasksByTeam(ctx context.Context, teamID uuid.UUID) ([]store.CampaignTask, error)
	UpdateCampaignTaskLaunch(ctx context.Context, taskID uuid.UUID, externalRef store.StringMap, status string) (store.CampaignTask, error)
	UpdateCampaignTaskStatus(ctx context.Context, taskID uuid.UUID, status string) (store.CampaignTask, error)

	// Channel configs
	CreateChannelConfig(ctx context.Context, params store.CreateChannelConfigParams) (store.ChannelConfig, error)
	GetChannelConfig(ctx context.Context, teamID uuid.UUID, channel string) (store.ChannelConfig, error)
	ListChannelConfigsByTeam(ctx context.Context, teamID uuid.UUID) ([]store.ChannelConfig, error)

	// Alert triggers
	CreateAlertTrigger(ctx context.Context, params store.CreateAlertTriggerParams) (store.ROIAlertTrigger, error)
	ListTriggersByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.ROIAlertTrigger, error)
	SetAlertTriggerActive(ctx context.Context, campaignID, triggerID uuid.UUID, active bool) (store.ROIAlertTrigger, error)
}

// ExecutorFactory resolves a channel identifier to an adapter
type ExecutorFactory interface {
	GetExecutor(channel channels.Channel, cfg channels.Config) (channels.Adapter, error)
}

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrTriggerNotFound      = errors.New("trigger not found")
	ErrChannelConfigMissing = errors.New("no channel config for team")
	ErrInvalidTransition    = errors.New("invalid campaign state transition")
	ErrUnsupportedChannel   = errors.New("unsupported channel")
	ErrInvalidComparator    = errors.New("invalid comparator")
	ErrInvalidAction        = errors.New("invalid trigger action")
)

type CampaignProcessor struct {
	store         CampaignStore
	factory       ExecutorFactory
	logger        *observability.Logger
	launchTimeout time.Duration
}

// New creates a campaign processor. launchTimeout bounds the remote launch
// call made against the ad platform.
func New(campaignStore CampaignStore, factory ExecutorFactory, logger *observability.Logger, launchTimeout time.Duration) CampaignProcessor {
	if launchTimeout <= 0 {
		launchTimeout = 10 * time.Second
	}
	return CampaignProcessor{
		store:         campaignStore,
		factory:       factory,
		logger:        logger,
		launchTimeout: launchTimeout,
	}
}

// CreateCampaignParams represents parameters for creating a campaign task
type CreateCampaignParams struct {
	TeamID        uuid.UUID
	Name          string
	Audience      *string
	Creatives     []string
	Channel       string
	ScheduledDate *time.Time
	CreatedBy     *uuid.UUID
}

// CreateCampaign records a new campaign task in the scheduled state.
// Nothing is sent to the ad platform until LaunchCampaign.
func (p CampaignProcessor) CreateCampaign(ctx context.Context, params CreateCampaignParams) (store.CampaignTask, error) {
	if !channels.Channel(params.Channel).Valid() {
		return store.CampaignTask{}, fmt.Errorf("%w: %q", ErrUnsupportedChannel, params.Channel)
	}

	task, err := p.store.CreateCampaignTask(ctx, store.CreateCampaignTaskParams{
		TeamID:        params.TeamID,
		Name:          params.Name,
		Audience:      params.Audience,
		Creatives:     store.StringList(params.Creatives),
		Channel:       params.Channel,
		ScheduledDate: params.ScheduledDate,
		CreatedBy:     params.CreatedBy,
	})
	if err != nil {
		return store.CampaignTask{}, fmt.Errorf("failed to create campaign: %w", err)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: task.ID},
		observability.Field{Key: "channel", Value: task.Channel},
	), "campaign created")
	return task, nil
}

// GetCampaign fetches one campaign task, scoped to the owning team
func (p CampaignProcessor) GetCampaign(ctx context.Context, teamID, campaignID uuid.UUID) (store.CampaignTask, error) {
	task, err := p.store.GetCampaignTaskByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignTask{}, ErrCampaignNotFound
		}
		return store.CampaignTask{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if task.TeamID != teamID {
		// Cross-team ids are indistinguishable from missing ones.
		return store.CampaignTask{}, ErrCampaignNotFound
	}
	return task, nil
}

// ListCampaigns lists every campaign task owned by the team
func (p CampaignProcessor) ListCampaigns(ctx context.Context, teamID uuid.UUID) ([]store.CampaignTask, error) {
	return p.store.ListCampaignTasksByTeam(ctx, teamID)
}

// LaunchCampaign sends a scheduled campaign to its ad platform. On success
// the platform's identifier set and the in-progress state are persisted
// together. A launch failure leaves the campaign scheduled so the caller
// can retry.
func (p CampaignProcessor) LaunchCampaign(ctx context.Context, teamID, campaignID uuid.UUID) (store.CampaignTask, error) {
	task, err := p.GetCampaign(ctx, teamID, campaignID)
	if err != nil {
		return store.CampaignTask{}, err
	}

	// Launch is the scheduled to in-progress edge only; paused campaigns
	// go through ResumeCampaign.
	if task.Status != store.CampaignTaskStatusScheduled ||
		!lifecycle.CanTransition(task.Status, store.CampaignTaskStatusInProgress) {
		return store.CampaignTask{}, fmt.Errorf("%w: cannot launch from %s", ErrInvalidTransition, task.Status)
	}

	adapter, err := p.adapterFor(ctx, task)
	if err != nil {
		return store.CampaignTask{}, err
	}

	var audience string
	if task.Audience != nil {
		audience = *task.Audience
	}
	launchCtx, cancel := context.WithTimeout(ctx, p.launchTimeout)
	defer cancel()
	ref, err := adapter.Launch(launchCtx, channels.LaunchSpec{
		Title:     task.Name,
		Audience:  audience,
		Creatives: task.Creatives,
	})
	if err != nil {
		p.logger.Error(ctx, "campaign launch rejected by platform", err)
		return store.CampaignTask{}, fmt.Errorf("failed to launch campaign: %w", err)
	}

	task, err = p.store.UpdateCampaignTaskLaunch(ctx, task.ID, store.StringMap(ref), store.CampaignTaskStatusInProgress)
	if err != nil {
		return store.CampaignTask{}, fmt.Errorf("failed to record launch: %w", err)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: task.ID},
		observability.Field{Key: "channel", Value: task.Channel},
	), "campaign launched")
	return task, nil
}

// ResumeCampaign moves a paused campaign back to in progress. The supported
// platforms expose no resume endpoint, so resuming only re-enables the
// status polling loop.
func (p CampaignProcessor) ResumeCampaign(ctx context.Context, teamID, campaignID uuid.UUID) (store.CampaignTask, error) {
	task, err := p.GetCampaign(ctx, teamID, campaignID)
	if err != nil {
		return store.CampaignTask{}, err
	}

	if task.Status != store.CampaignTaskStatusPaused ||
		!lifecycle.CanTransition(task.Status, store.CampaignTaskStatusInProgress) {
		return store.CampaignTask{}, fmt.Errorf("%w: cannot resume from %s", ErrInvalidTransition, task.Status)
	}

	task, err = p.store.UpdateCampaignTaskStatus(ctx, task.ID, store.CampaignTaskStatusInProgress)
	if err != nil {
		return store.CampaignTask{}, fmt.Errorf("failed to resume campaign: %w", err)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: task.ID},
	), "campaign resumed")
	return task, nil
}

func (p CampaignProcessor) adapterFor(ctx context.Context, task store.CampaignTask) (channels.Adapter, error) {
	config, err := p.store.GetChannelConfig(ctx, task.TeamID, task.Channel)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: team %s channel %s", ErrChannelConfigMissing, task.TeamID, task.Channel)
		}
		return nil, fmt.Errorf("failed to load channel config: %w", err)
	}

	adapter, err := p.factory.GetExecutor(channels.Channel(task.Channel), channels.Config{
		BaseURL:   config.BaseURL(),
		AuthToken: config.AuthToken,
		Timeout:   p.launchTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve adapter: %w", err)
	}
	return adapter, nil
}
