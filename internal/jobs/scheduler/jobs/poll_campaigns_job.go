package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"adops-server/internal/observability"
	"adops-server/internal/poller"
	"adops-server/internal/store"

	"github.com/google/uuid"
)

// CampaignLister provides the set of campaigns due for a poll sweep
type CampaignLister interface {
	ListCampaignTasksByStatus(ctx context.Context, status string) ([]store.CampaignTask, error)
}

// CampaignPoller runs one poll cycle for a single campaign
type CampaignPoller interface {
	PollCampaignStatus(ctx context.Context, campaignID uuid.UUID) error
}

// PollCampaignsJob sweeps every in-progress campaign on a fixed interval
// and polls each through a bounded worker pool. A failed campaign cycle is
// logged and never aborts the sweep.
type PollCampaignsJob struct {
	store       CampaignLister
	poller      CampaignPoller
	logger      *observability.Logger
	interval    time.Duration
	concurrency int
}

// NewPollCampaignsJob creates the campaign status polling job
func NewPollCampaignsJob(campaignStore CampaignLister, campaignPoller CampaignPoller, logger *observability.Logger, interval time.Duration, concurrency int) *PollCampaignsJob {
	if interval <= 0 {
		interval = 1 * time.Minute
	}
	if concurrency <= 0 {
		concurrency = 5
	}
	return &PollCampaignsJob{
		store:       campaignStore,
		poller:      campaignPoller,
		logger:      logger,
		interval:    interval,
		concurrency: concurrency,
	}
}

// Name returns the job name
func (j *PollCampaignsJob) Name() string {
	return "poll_campaigns"
}

// Schedule returns how often the job should run
func (j *PollCampaignsJob) Schedule() time.Duration {
	return j.interval
}

// Run executes one poll sweep
func (j *PollCampaignsJob) Run(ctx context.Context) error {
	campaigns, err := j.store.ListCampaignTasksByStatus(ctx, store.CampaignTaskStatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to list in-progress campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return nil
	}

	j.logger.Info(ctx, fmt.Sprintf("Polling %d in-progress campaigns", len(campaigns)))

	sem := make(chan struct{}, j.concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for _, campaign := range campaigns {
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(campaignID uuid.UUID) {
			defer wg.Done()
			defer func() { <-sem }()

			err := j.poller.PollCampaignStatus(ctx, campaignID)
			switch {
			case err == nil:
			case errors.Is(err, poller.ErrPollInFlight):
				// A previous sweep is still working on this campaign.
			default:
				j.logger.Error(observability.WithFields(ctx,
					observability.Field{Key: "campaign_id", Value: campaignID}),
					"campaign poll cycle failed", err)
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(campaign.ID)
	}
	wg.Wait()

	if failed > 0 {
		j.logger.Info(ctx, fmt.Sprintf("Poll sweep finished with %d of %d campaigns failing", failed, len(campaigns)))
	}
	return nil
}
