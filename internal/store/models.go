package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	err := json.Unmarshal(bytes, &result)
	if err != nil {
		return err
	}
	*j = result
	return nil
}

// StringMap is a custom type for JSONB fields holding flat string maps,
// used for platform-assigned external refs whose keys vary per channel.
type StringMap map[string]string

// Value implements the driver.Valuer interface for StringMap
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for StringMap
func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for StringMap")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*m = nil
		return nil
	}

	result := make(StringMap)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*m = result
	return nil
}

// StringList is a custom type for JSONB fields holding string arrays
type StringList []string

// Value implements the driver.Valuer interface for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface for StringList
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for StringList")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*l = nil
		return nil
	}

	var result StringList
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*l = result
	return nil
}

// CampaignTask represents a scheduled advertising campaign on one channel
type CampaignTask struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	TeamID        uuid.UUID  `db:"team_id" json:"team_id"`
	Name          string     `db:"name" json:"name"`
	Audience      *string    `db:"audience" json:"audience,omitempty"`
	Creatives     StringList `db:"creatives" json:"creatives,omitempty"`
	Channel       string     `db:"channel" json:"channel"`
	Status        string     `db:"status" json:"status"`
	ScheduledDate *time.Time `db:"scheduled_date" json:"scheduled_date,omitempty"`
	CreatedBy     *uuid.UUID `db:"created_by" json:"created_by,omitempty"`

	// Channel-assigned identifier set; owned by this campaign once launch succeeds
	ExternalRef StringMap `db:"external_ref" json:"external_ref,omitempty"`

	// Last observed metrics, nil until the platform starts reporting
	ROI          *float64   `db:"roi" json:"roi,omitempty"`
	Spend        *float64   `db:"spend" json:"spend,omitempty"`
	LastPolledAt *time.Time `db:"last_polled_at" json:"last_polled_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ChannelConfig represents a team's connection settings for one ad platform
type ChannelConfig struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TeamID    uuid.UUID `db:"team_id" json:"team_id"`
	Channel   string    `db:"channel" json:"channel"`
	AuthToken string    `db:"auth_token" json:"-"`
	Settings  JSONB     `db:"settings" json:"settings"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BaseURL returns the platform API base URL from the free-form settings
func (c ChannelConfig) BaseURL() string {
	if v, ok := c.Settings["base_url"].(string); ok {
		return v
	}
	return ""
}

// ROIAlertTrigger represents a threshold rule bound to one campaign
type ROIAlertTrigger struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CampaignID uuid.UUID `db:"campaign_id" json:"campaign_id"`
	MetricKey  string    `db:"metric_key" json:"metric_key"`
	Comparator string    `db:"comparator" json:"comparator"`
	Threshold  float64   `db:"threshold" json:"threshold"`
	Action     string    `db:"action" json:"action"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
