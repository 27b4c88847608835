package handlers

import (
	"net/http"

	"github.com/assogestion/assogestion/internal/apperrors"
	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/assogestion/assogestion/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler handles public event listings and back-office event management.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

func registerEventAdminRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade, volunteerService portssvc.VolunteerSvcFacade) {
	h := newEventHandler(eventService)
	vh := newVolunteerHandler(volunteerService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listAllEvents)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)
		events.POST("/:id/publish", h.publishEvent)
		events.DELETE("/:id", h.deleteEvent)
		events.GET("/:id/volunteers", vh.listSignups)
		events.DELETE("/:id/volunteers/:signupID", vh.cancelSignup)
	}
}

// listPublishedEvents godoc
// @Summary List published events
// @Description Public listing for the association website.
// @Tags events
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListEventsResponse
// @Router /api/public/events [get]
func (h *eventHandler) listPublishedEvents(c *gin.Context) {
	var params dto.ListEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), true, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventsResponse(events))
}

// getPublishedEvent godoc
// @Summary Get a published event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/public/events/{id} [get]
func (h *eventHandler) getPublishedEvent(c *gin.Context) {
	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to load event")
		return
	}
	if !event.IsPublished {
		// Drafts are invisible to the public.
		respondServiceError(c, apperrors.ErrNotFound, "Failed to load event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// createEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param body body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req, callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// listAllEvents godoc
// @Summary List all events including drafts
// @Tags events
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListEventsResponse
// @Security BearerAuth
// @Router /events [get]
func (h *eventHandler) listAllEvents(c *gin.Context) {
	var params dto.ListEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), false, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventsResponse(events))
}

// getEvent godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to load event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// updateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body dto.UpdateEventRequest true "Changes"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), c.Param("id"), req, callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// publishEvent godoc
// @Summary Publish an event
// @Description Makes the event visible on the public website. Idempotent.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/publish [post]
func (h *eventHandler) publishEvent(c *gin.Context) {
	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	event, err := h.eventService.PublishEvent(c.Request.Context(), c.Param("id"), callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to publish event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Param id path string true "Event ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), c.Param("id"), callerUserID); err != nil {
		respondServiceError(c, err, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}
