package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/DruxAMB/based-list/internal/common/errors"
	"github.com/DruxAMB/based-list/internal/features/project/service"
)

type ProjectHandler struct {
	service service.ProjectService
}

func NewProjectHandler(service service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects", h.ListProjects)
}

// @Summary List a user's submitted projects
// @Description Read-only project feed for an identity. An empty feed carries empty_state=true so the client renders a call to action instead of a blank list.
// @Tags projects
// @Produce json
// @Param user_id query string true "Identity ID"
// @Success 200 {object} service.Feed "Project feed"
// @Failure 400 {object} middleware.ErrorResponse "Missing user_id"
// @Failure 502 {object} middleware.ErrorResponse "Document store unavailable"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.Error(apperrors.New(apperrors.ErrCodeBadRequest, "user_id query parameter is required"))
		c.Abort()
		return
	}

	feed, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		// A failed feed fetch surfaces a notification on the client but never
		// blocks the rest of the profile page.
		c.Error(apperrors.NewStoreError("list projects", err))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, feed)
}
