package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateCampaignTaskParams represents parameters for creating a campaign task
type CreateCampaignTaskParams struct {
	TeamID        uuid.UUID
	Name          string
	Audience      *string
	Creatives     StringList
	Channel       string
	ScheduledDate *time.Time
	CreatedBy     *uuid.UUID
}

const sqlCreateCampaignTask = `
INSERT INTO campaign_tasks (team_id, name, audience, creatives, channel, status, scheduled_date, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, team_id, name, audience, creatives, channel, status, scheduled_date, created_by, external_ref, roi, spend, last_polled_at, created_at, updated_at
`

// CreateCampaignTask creates a campaign task in the scheduled state
func (s *Store) CreateCampaignTask(ctx context.Context, params CreateCampaignTaskParams) (CampaignTask, error) {
	var task CampaignTask
	err := s.db.GetContext(ctx, &task, sqlCreateCampaignTask,
		params.TeamID,
		params.Name,
		params.Audience,
		params.Creatives,
		params.Channel,
		CampaignTaskStatusScheduled,
		params.ScheduledDate,
		params.CreatedBy)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign task", err)
		return CampaignTask{}, fmt.Errorf("failed to create campaign task: %w", err)
	}
	return task, nil
}

const sqlGetCampaignTaskByID = `
SELECT id, team_id, name, audience, creatives, channel, status, scheduled_date, created_by, external_ref, roi, spend, last_polled_at, created_at, updated_at
FROM campaign_tasks
WHERE id = $1
`

// GetCampaignTaskByID fetches a campaign task by id
func (s *Store) GetCampaignTaskByID(ctx context.Context, taskID uuid.UUID) (CampaignTask, error) {
	var task CampaignTask
	err := s.db.GetContext(ctx, &task, sqlGetCampaignTaskByID, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignTask{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign task", err)
		return CampaignTask{}, fmt.Errorf("failed to get campaign task: %w", err)
	}
	return task, nil
}

const sqlListCampaignTasksByStatus = `
SELECT id, team_id, name, audience, creatives, channel, status, scheduled_date, created_by, external_ref, roi, spend, last_polled_at, created_at, updated_at
FROM campaign_tasks
WHERE status = $1
ORDER BY created_at, id
`

// ListCampaignTasksByStatus lists campaign tasks in one lifecycle state
func (s *Store) ListCampaignTasksByStatus(ctx context.Context, status string) ([]CampaignTask, error) {
	tasks := []CampaignTask{}
	err := s.db.SelectContext(ctx, &tasks, sqlListCampaignTasksByStatus, status)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaign tasks", err)
		return nil, fmt.Errorf("failed to list campaign tasks: %w", err)
	}
	return tasks, nil
}

const sqlListCampaignTasksByTeam = `
SELECT id, team_id, name, audience, creatives, channel, status, scheduled_date, created_by, external_ref, roi, spend, last_polled_at, created_at, updated_at
FROM campaign_tasks
WHERE team_id = $1
ORDER BY created_at DESC, id
`

// ListCampaignTasksByTeam lists every campaign task owned by a team
func (s *Store) ListCampaignTasksByTeam(ctx context.Context, teamID uuid.UUID) ([]CampaignTask, error) {
	tasks := []CampaignTask{}
	err := s.db.SelectContext(ctx, &tasks, sqlListCampaignTasksByTeam, teamID)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaign tasks", err)
		return nil, fmt.Errorf("failed to list campaign tasks: %w", err)
	}
	return tasks, nil
}

const sqlUpdateCampaignTaskLaunch = `
UPDATE campaign_tasks
SET external_ref = $2, status = $3, updated_at = now()
WHERE id = $1
RETURNING id, team_id, name, audience, creatives, channel, status, scheduled_date, created_by, external_ref, roi, spend, last_polled_at, created_at, updated_at
`

// UpdateCampaignTaskLaunch records a successful launch: the channel-assigned
// external ref and the lifecycle transition are written together.
func (s *Store) UpdateCampaignTaskLaunch(ctx context.Context, taskID uuid.UUID, externalRef StringMap, status string) (CampaignTask, error) {
	var task CampaignTask
	err := s.db.GetContext(ctx, &task, sqlUpdateCampaignTaskLaunch, taskID, externalRef, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignTask{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to record campaign launch", err)
		return CampaignTask{}, fmt.Errorf("failed to record campaign launch: %w", err)
	}
	return task, nil
}

const sqlUpdateCampaignTaskPollResult = `
UPDATE campaign_tasks
SET status = $2, roi = COALESCE($3, roi), spend = COALESCE($4, spend), last_polled_at = now(), updated_at = now()
WHERE id = $1
RETURNING id, team_id, name, audience, creatives, channel, status, scheduled_date, created_by, external_ref, roi, spend, last_polled_at, created_at, updated_at
`

// UpdateCampaignTaskPollResult persists one poll cycle's observation.
// Status and metrics are written in a single statement so a cycle never
// commits partial state. Metrics hold the last observed value: a cycle
// where the platform omits roi or spend keeps the previous observation.
func (s *Store) UpdateCampaignTaskPollResult(ctx context.Context, taskID uuid.UUID, status string, roi, spend *float64) (CampaignTask, error) {
	var task CampaignTask
	err := s.db.GetContext(ctx, &task, sqlUpdateCampaignTaskPollResult, taskID, status, roi, spend)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignTask{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to persist poll result", err)
		return CampaignTask{}, fmt.Errorf("failed to persist poll result: %w", err)
	}
	return task, nil
}

const sqlUpdateCampaignTaskStatus = `
UPDATE campaign_tasks
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, team_id, name, audience, creatives, channel, status, scheduled_date, created_by, external_ref, roi, spend, last_polled_at, created_at, updated_at
`

// UpdateCampaignTaskStatus updates only the lifecycle state
func (s *Store) UpdateCampaignTaskStatus(ctx context.Context, taskID uuid.UUID, status string) (CampaignTask, error) {
	var task CampaignTask
	err := s.db.GetContext(ctx, &task, sqlUpdateCampaignTaskStatus, taskID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignTask{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign task status", err)
		return CampaignTask{}, fmt.Errorf("failed to update campaign task status: %w", err)
	}
	return task, nil
}
