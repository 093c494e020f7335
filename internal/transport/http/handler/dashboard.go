package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrackr/internal/app"
	"studytrackr/internal/transport/http/middleware"
	"studytrackr/internal/transport/http/render"
)

type DashboardHandler struct {
	dashboardService *app.DashboardService
	render           *render.Renderer
}

func NewDashboardHandler(dashboardService *app.DashboardService, renderer *render.Renderer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, render: renderer}
}

func (h *DashboardHandler) Show(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.render.Fail(c, "/login", "Please login first")
		return
	}

	dash, err := h.dashboardService.Summary(c.Request.Context(), user.UserID)
	if err != nil {
		h.render.Internal(c, "/login", "load dashboard", err)
		return
	}

	h.render.Page(c, http.StatusOK, "dashboard.html", "Dashboard", gin.H{
		"Dashboard": dash,
	})
}
