package api

import (
	"net/http"

	campaignHandler "adops-server/internal/campaign/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	campaignHandler campaignHandler.Handler
}

func New(router *gin.RouterGroup, handler campaignHandler.Handler) API {
	return API{
		router:          router,
		campaignHandler: handler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		campaignGroup := apiGroup.Group("/campaigns")
		campaignGroup.POST("", a.campaignHandler.HandleCreateCampaign)
		campaignGroup.GET("", a.campaignHandler.HandleListCampaigns)
		campaignGroup.GET("/:campaignID", a.campaignHandler.HandleGetCampaign)
		campaignGroup.POST("/:campaignID/launch", a.campaignHandler.HandleLaunchCampaign)
		campaignGroup.POST("/:campaignID/resume", a.campaignHandler.HandleResumeCampaign)
		campaignGroup.POST("/:campaignID/triggers", a.campaignHandler.HandleCreateTrigger)
		campaignGroup.GET("/:campaignID/triggers", a.campaignHandler.HandleListTriggers)
		campaignGroup.PATCH("/:campaignID/triggers/:triggerID", a.campaignHandler.HandleSetTriggerActive)
	}
	{
		configGroup := apiGroup.Group("/channel-configs")
		configGroup.POST("", a.campaignHandler.HandleCreateChannelConfig)
		configGroup.GET("", a.campaignHandler.HandleListChannelConfigs)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
