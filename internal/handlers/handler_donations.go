package handlers

import (
	"net/http"

	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/assogestion/assogestion/internal/middleware"
	"github.com/gin-gonic/gin"
)

// donationHandler handles the public donation form and the back-office listing.
type donationHandler struct {
	donationService portssvc.DonationSvcFacade
}

func newDonationHandler(ds portssvc.DonationSvcFacade) *donationHandler {
	return &donationHandler{donationService: ds}
}

func registerDonationAdminRoutes(rg *gin.RouterGroup, donationService portssvc.DonationSvcFacade) {
	h := newDonationHandler(donationService)

	donations := rg.Group("/donations")
	{
		donations.GET("", h.listDonations)
	}
}

// recordDonation godoc
// @Summary Record a donation
// @Description Stores a donation from the public form. Opting in also adds the
// @Description donor to the campaign contact list.
// @Tags donations
// @Accept json
// @Produce json
// @Param body body dto.RecordDonationRequest true "Donation details"
// @Success 201 {object} dto.DonationResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/public/donations [post]
func (h *donationHandler) recordDonation(c *gin.Context) {
	var req dto.RecordDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	donation, err := h.donationService.RecordDonation(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to record donation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDonationResponse(donation))
}

// listDonations godoc
// @Summary List donations
// @Tags donations
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListDonationsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /donations [get]
func (h *donationHandler) listDonations(c *gin.Context) {
	var params dto.ListDonationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	donations, err := h.donationService.ListDonations(c.Request.Context(), params.Limit, params.Offset, callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to list donations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDonationsResponse(donations))
}
