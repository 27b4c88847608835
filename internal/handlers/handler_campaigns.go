package handlers

import (
	"net/http"

	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/assogestion/assogestion/internal/middleware"
	"github.com/gin-gonic/gin"
)

// campaignHandler handles email campaign administration.
type campaignHandler struct {
	campaignService portssvc.CampaignSvcFacade
}

func newCampaignHandler(cs portssvc.CampaignSvcFacade) *campaignHandler {
	return &campaignHandler{campaignService: cs}
}

func registerCampaignRoutes(rg *gin.RouterGroup, campaignService portssvc.CampaignSvcFacade) {
	h := newCampaignHandler(campaignService)

	campaigns := rg.Group("/campaigns")
	{
		campaigns.POST("", h.createCampaign)
		campaigns.GET("", h.listCampaigns)
		campaigns.GET("/:id", h.getCampaign)
		campaigns.POST("/:id/send", h.sendCampaign)
		campaigns.GET("/:id/logs", h.listEmailLogs)
	}
}

// createCampaign godoc
// @Summary Draft a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Param body body dto.CreateCampaignRequest true "Campaign content"
// @Success 201 {object} dto.CampaignResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /campaigns [post]
func (h *campaignHandler) createCampaign(c *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	campaign, err := h.campaignService.CreateCampaign(c.Request.Context(), req, callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create campaign")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCampaignResponse(campaign))
}

// listCampaigns godoc
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListCampaignsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /campaigns [get]
func (h *campaignHandler) listCampaigns(c *gin.Context) {
	var params dto.ListCampaignsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	campaigns, err := h.campaignService.ListCampaigns(c.Request.Context(), params.Limit, params.Offset, callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to list campaigns")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCampaignsResponse(campaigns))
}

// getCampaign godoc
// @Summary Get a campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} dto.CampaignResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /campaigns/{id} [get]
func (h *campaignHandler) getCampaign(c *gin.Context) {
	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	campaign, err := h.campaignService.GetCampaignByID(c.Request.Context(), c.Param("id"), callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to load campaign")
		return
	}
	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

// sendCampaign godoc
// @Summary Send a campaign
// @Description Delivers the draft to every opted-in contact. 409 when already sent.
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} dto.SendCampaignResult
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /campaigns/{id}/send [post]
func (h *campaignHandler) sendCampaign(c *gin.Context) {
	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.campaignService.SendCampaign(c.Request.Context(), c.Param("id"), callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to send campaign")
		return
	}
	c.JSON(http.StatusOK, result)
}

// listEmailLogs godoc
// @Summary List a campaign's delivery log
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {array} dto.EmailLogResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /campaigns/{id}/logs [get]
func (h *campaignHandler) listEmailLogs(c *gin.Context) {
	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logs, err := h.campaignService.ListEmailLogs(c.Request.Context(), c.Param("id"), callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to list email logs")
		return
	}

	out := make([]dto.EmailLogResponse, len(logs))
	for i := range logs {
		out[i] = dto.ToEmailLogResponse(&logs[i])
	}
	c.JSON(http.StatusOK, out)
}
