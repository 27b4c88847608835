package handlers

import (
	"net/http"

	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/assogestion/assogestion/internal/middleware"
	"github.com/gin-gonic/gin"
)

// volunteerHandler handles the public sign-up form and the back-office
// volunteer roster.
type volunteerHandler struct {
	volunteerService portssvc.VolunteerSvcFacade
}

func newVolunteerHandler(vs portssvc.VolunteerSvcFacade) *volunteerHandler {
	return &volunteerHandler{volunteerService: vs}
}

// signUp godoc
// @Summary Sign up as a volunteer
// @Description Registers a volunteer for a published event. Rejected with 409
// @Description when the volunteer target is reached or the email already signed up.
// @Tags volunteers
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body dto.VolunteerSignupRequest true "Sign-up details"
// @Success 201 {object} dto.VolunteerSignupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/public/events/{id}/volunteers [post]
func (h *volunteerHandler) signUp(c *gin.Context) {
	var req dto.VolunteerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	signup, err := h.volunteerService.SignUp(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to sign up")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVolunteerSignupResponse(signup))
}

// listSignups godoc
// @Summary List an event's volunteer sign-ups
// @Tags volunteers
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.ListSignupsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/volunteers [get]
func (h *volunteerHandler) listSignups(c *gin.Context) {
	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	signups, err := h.volunteerService.ListSignups(c.Request.Context(), c.Param("id"), callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to list sign-ups")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSignupsResponse(signups))
}

// cancelSignup godoc
// @Summary Cancel a volunteer sign-up
// @Description Frees the slot; a subsequent sign-up may take it.
// @Tags volunteers
// @Param id path string true "Event ID"
// @Param signupID path string true "Sign-up ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/volunteers/{signupID} [delete]
func (h *volunteerHandler) cancelSignup(c *gin.Context) {
	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.volunteerService.CancelSignup(c.Request.Context(), c.Param("id"), c.Param("signupID"), callerUserID); err != nil {
		respondServiceError(c, err, "Failed to cancel sign-up")
		return
	}
	c.Status(http.StatusNoContent)
}
