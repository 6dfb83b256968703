package handler

import (
	"errors"
	"net/http"
	"time"

	"adops-server/internal/apierrors"
	"adops-server/internal/campaign/processor"
	"adops-server/internal/channels"
	"adops-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(campaignProcessor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: campaignProcessor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=255"`
	Audience      *string    `json:"audience,omitempty"`
	Creatives     []string   `json:"creatives,omitempty"`
	Channel       string     `json:"channel" binding:"required,oneof=google_ads facebook_ads"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	CreatedBy     *uuid.UUID `json:"created_by,omitempty"`
}

// CreateTriggerRequest represents the HTTP request for attaching an alert trigger
type CreateTriggerRequest struct {
	MetricKey  string   `json:"metric_key" binding:"required,oneof=roi spend"`
	Comparator string   `json:"comparator" binding:"required,oneof=< <= > >= =="`
	Threshold  *float64 `json:"threshold" binding:"required"`
	Action     string   `json:"action" binding:"required,oneof=auto_pause notify"`
}

// SetTriggerActiveRequest represents the HTTP request for toggling a trigger
type SetTriggerActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// CreateChannelConfigRequest represents the HTTP request for storing a
// team's platform connection settings
type CreateChannelConfigRequest struct {
	Channel   string         `json:"channel" binding:"required,oneof=google_ads facebook_ads"`
	AuthToken string         `json:"auth_token" binding:"required,min=1"`
	BaseURL   string         `json:"base_url" binding:"required,url"`
	Settings  map[string]any `json:"settings,omitempty"`
}

// getTeamID extracts the team scope from the X-Team-ID header. Responds
// with an error and returns false when the header is absent or malformed.
func (h Handler) getTeamID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader("X-Team-ID")
	if raw == "" {
		apierrors.Unauthorized(c, "X-Team-ID header is required")
		return uuid.Nil, false
	}
	teamID, err := uuid.Parse(raw)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_TEAM_ID", "X-Team-ID must be a valid UUID")
		return uuid.Nil, false
	}
	return teamID, true
}

func (h Handler) getPathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_ID", name+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// handleError maps processor errors onto HTTP responses
func (h Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrTriggerNotFound):
		apierrors.NotFound(c, "Trigger not found")
	case errors.Is(err, processor.ErrInvalidTransition):
		apierrors.Conflict(c, "INVALID_TRANSITION", "Campaign is not in a state that allows this operation")
	case errors.Is(err, processor.ErrChannelConfigMissing):
		apierrors.Conflict(c, "CHANNEL_CONFIG_MISSING", "No channel configuration exists for this team and channel")
	case errors.Is(err, processor.ErrUnsupportedChannel):
		apierrors.BadRequest(c, "UNSUPPORTED_CHANNEL", "Channel is not supported")
	case errors.Is(err, processor.ErrInvalidComparator),
		errors.Is(err, processor.ErrInvalidAction),
		errors.Is(err, channels.ErrUnknownMetric):
		apierrors.BadRequest(c, "INVALID_TRIGGER", "Trigger definition is invalid")
	default:
		apierrors.InternalError(c, err)
	}
}

// HandleCreateCampaign creates a campaign task in the scheduled state
func (h Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, ok := h.getTeamID(c)
	if !ok {
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "team_id", Value: teamID.String()})

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	task, err := h.processor.CreateCampaign(ctx, processor.CreateCampaignParams{
		TeamID:        teamID,
		Name:          req.Name,
		Audience:      req.Audience,
		Creatives:     req.Creatives,
		Channel:       req.Channel,
		ScheduledDate: req.ScheduledDate,
		CreatedBy:     req.CreatedBy,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// HandleListCampaigns lists the team's campaign tasks
func (h Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, ok := h.getTeamID(c)
	if !ok {
		return
	}

	tasks, err := h.processor.ListCampaigns(ctx, teamID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": tasks})
}

// HandleGetCampaign retrieves a campaign task by id
func (h Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, ok := h.getTeamID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getPathID(c, "campaignID")
	if !ok {
		return
	}

	task, err := h.processor.GetCampaign(ctx, teamID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// HandleLaunchCampaign sends a scheduled campaign to its ad platform
func (h Handler) HandleLaunchCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, ok := h.getTeamID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getPathID(c, "campaignID")
	if !ok {
		return
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "team_id", Value: teamID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	task, err := h.processor.LaunchCampaign(ctx, teamID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// HandleResumeCampaign moves a paused campaign back to in progress
func (h Handler) HandleResumeCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, ok := h.getTeamID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getPathID(c, "campaignID")
	if !ok {
		return
	}

	task, err := h.processor.ResumeCampaign(ctx, teamID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// HandleCreateTrigger attaches an alert trigger to a campaign
func (h Handler) HandleCreateTrigger(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, ok := h.getTeamID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getPathID(c, "campaignID")
	if !ok {
		return
	}

	var req CreateTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	trigger, err := h.processor.CreateTrigger(ctx, teamID, campaignID, processor.CreateTriggerParams{
		MetricKey:  req.MetricKey,
		Comparator: req.Comparator,
		Threshold:  *req.Threshold,
		Action:     req.Action,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trigger)
}

// HandleListTriggers lists a campaign's alert triggers
func (h Handler) HandleListTriggers(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, ok := h.getTeamID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getPathID(c, "campaignID")
	if !ok {
		return
	}

	triggers, err := h.processor.ListTriggers(ctx, teamID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"triggers": triggers})
}

// HandleSetTriggerActive toggles an alert trigger
func (h Handler) HandleSetTriggerActive(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, ok := h.getTeamID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getPathID(c, "campaignID")
	if !ok {
		return
	}
	triggerID, ok := h.getPathID(c, "triggerID")
	if !ok {
		return
	}

	var req SetTriggerActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	trigger, err := h.processor.SetTriggerActive(ctx, teamID, campaignID, triggerID, *req.Active)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trigger)
}

// HandleCreateChannelConfig stores a team's connection settings for one channel
func (h Handler) HandleCreateChannelConfig(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, ok := h.getTeamID(c)
	if !ok {
		return
	}

	var req CreateChannelConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	config, err := h.processor.CreateChannelConfig(ctx, teamID, processor.CreateChannelConfigParams{
		Channel:   req.Channel,
		AuthToken: req.AuthToken,
		BaseURL:   req.BaseURL,
		Settings:  req.Settings,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, config)
}

// HandleListChannelConfigs lists a team's channel configurations
func (h Handler) HandleListChannelConfigs(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, ok := h.getTeamID(c)
	if !ok {
		return
	}

	configs, err := h.processor.ListChannelConfigs(ctx, teamID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"channel_configs": configs})
}
