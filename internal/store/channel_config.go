package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateChannelConfigParams represents parameters for creating a channel config
type CreateChannelConfigParams struct {
	TeamID    uuid.UUID
	Channel   string
	AuthToken string
	Settings  JSONB
}

const sqlCreateChannelConfig = `
INSERT INTO channel_configs (team_id, channel, auth_token, settings)
VALUES ($1, $2, $3, $4)
RETURNING id, team_id, channel, auth_token, settings, created_at, updated_at
`

// CreateChannelConfig creates a team's connection settings for one channel.
// (team_id, channel) is unique; a second insert for the same pair fails.
func (s *Store) CreateChannelConfig(ctx context.Context, params CreateChannelConfigParams) (ChannelConfig, error) {
	var config ChannelConfig
	err := s.db.GetContext(ctx, &config, sqlCreateChannelConfig,
		params.TeamID,
		params.Channel,
		params.AuthToken,
		params.Settings)
	if err != nil {
		s.logger.Error(ctx, "failed to create channel config", err)
		return ChannelConfig{}, fmt.Errorf("failed to create channel config: %w", err)
	}
	return config, nil
}

const sqlGetChannelConfig = `
SELECT id, team_id, channel, auth_token, settings, created_at, updated_at
FROM channel_configs
WHERE team_id = $1 AND channel = $2
`

// GetChannelConfig fetches a team's connection settings for one channel
func (s *Store) GetChannelConfig(ctx context.Context, teamID uuid.UUID, channel string) (ChannelConfig, error) {
	var config ChannelConfig
	err := s.db.GetContext(ctx, &config, sqlGetChannelConfig, teamID, channel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ChannelConfig{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get channel config", err)
		return ChannelConfig{}, fmt.Errorf("failed to get channel config: %w", err)
	}
	return config, nil
}

const sqlListChannelConfigsByTeam = `
SELECT id, team_id, channel, auth_token, settings, created_at, updated_at
FROM channel_configs
WHERE team_id = $1
ORDER BY channel
`

// ListChannelConfigsByTeam lists every channel a team has connected
func (s *Store) ListChannelConfigsByTeam(ctx context.Context, teamID uuid.UUID) ([]ChannelConfig, error) {
	configs := []ChannelConfig{}
	err := s.db.SelectContext(ctx, &configs, sqlListChannelConfigsByTeam, teamID)
	if err != nil {
		s.logger.Error(ctx, "failed to list channel configs", err)
		return nil, fmt.Errorf("failed to list channel configs: %w", err)
	}
	return configs, nil
}
