package handlers

import (
	"net/http"

	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/assogestion/assogestion/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bureauHandler handles the public bureau directory and its administration.
type bureauHandler struct {
	bureauService portssvc.BureauSvcFacade
}

func newBureauHandler(bs portssvc.BureauSvcFacade) *bureauHandler {
	return &bureauHandler{bureauService: bs}
}

func registerBureauAdminRoutes(rg *gin.RouterGroup, bureauService portssvc.BureauSvcFacade) {
	h := newBureauHandler(bureauService)

	bureau := rg.Group("/bureau")
	{
		bureau.POST("", h.createBureauMember)
		bureau.PUT("/:id", h.updateBureauMember)
		bureau.DELETE("/:id", h.deleteBureauMember)
	}
}

// listBureauMembers godoc
// @Summary List bureau members
// @Description Public directory, ordered for display.
// @Tags bureau
// @Produce json
// @Success 200 {object} dto.ListBureauMembersResponse
// @Router /api/public/bureau [get]
func (h *bureauHandler) listBureauMembers(c *gin.Context) {
	members, err := h.bureauService.ListBureauMembers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list bureau members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBureauMembersResponse(members))
}

// createBureauMember godoc
// @Summary Add a bureau member
// @Tags bureau
// @Accept json
// @Produce json
// @Param body body dto.CreateBureauMemberRequest true "Member details"
// @Success 201 {object} dto.BureauMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /bureau [post]
func (h *bureauHandler) createBureauMember(c *gin.Context) {
	var req dto.CreateBureauMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.bureauService.CreateBureauMember(c.Request.Context(), req, callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create bureau member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBureauMemberResponse(member))
}

// updateBureauMember godoc
// @Summary Update a bureau member
// @Tags bureau
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param body body dto.UpdateBureauMemberRequest true "Changes"
// @Success 200 {object} dto.BureauMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bureau/{id} [put]
func (h *bureauHandler) updateBureauMember(c *gin.Context) {
	var req dto.UpdateBureauMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.bureauService.UpdateBureauMember(c.Request.Context(), c.Param("id"), req, callerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update bureau member")
		return
	}
	c.JSON(http.StatusOK, dto.ToBureauMemberResponse(member))
}

// deleteBureauMember godoc
// @Summary Remove a bureau member
// @Tags bureau
// @Param id path string true "Member ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bureau/{id} [delete]
func (h *bureauHandler) deleteBureauMember(c *gin.Context) {
	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.bureauService.DeleteBureauMember(c.Request.Context(), c.Param("id"), callerUserID); err != nil {
		respondServiceError(c, err, "Failed to delete bureau member")
		return
	}
	c.Status(http.StatusNoContent)
}
