package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrackr/internal/app"
	"studytrackr/internal/transport/http/middleware"
	"studytrackr/internal/transport/http/render"
)

type StudySessionHandler struct {
	studyService *app.StudyService
	render       *render.Renderer
}

type AddStudySessionRequest struct {
	CourseID uint     `form:"course_id" binding:"required"`
	Date     string   `form:"date" binding:"required"`
	Hours    *float64 `form:"hours" binding:"required,gte=0"`
	Note     string   `form:"note" binding:"max=2000"`
}

func NewStudySessionHandler(studyService *app.StudyService, renderer *render.Renderer) *StudySessionHandler {
	return &StudySessionHandler{studyService: studyService, render: renderer}
}

func (h *StudySessionHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.render.Fail(c, "/login", "Please login first")
		return
	}

	overview, err := h.studyService.Overview(c.Request.Context(), user.UserID)
	if err != nil {
		h.render.Internal(c, "/dashboard", "list study sessions", err)
		return
	}

	h.render.Page(c, http.StatusOK, "sessions.html", "Study sessions", gin.H{
		"Courses":  overview.Courses,
		"Sessions": overview.Sessions,
	})
}

func (h *StudySessionHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.render.Fail(c, "/login", "Please login first")
		return
	}

	var req AddStudySessionRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render.Fail(c, "/sessions", "Please choose a course, a date and a non-negative number of hours")
		return
	}

	_, err := h.studyService.AddSession(c.Request.Context(), app.AddSessionInput{
		UserID:   user.UserID,
		CourseID: req.CourseID,
		Date:     req.Date,
		Hours:    *req.Hours,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidCourse):
			h.render.Fail(c, "/sessions", "Invalid course")
		case errors.Is(err, app.ErrInvalidDate):
			h.render.Fail(c, "/sessions", "Invalid date, expected YYYY-MM-DD")
		case errors.Is(err, app.ErrInvalidInput):
			h.render.Fail(c, "/sessions", "Please choose a course, a date and a non-negative number of hours")
		default:
			h.render.Internal(c, "/sessions", "add study session", err)
		}
		return
	}

	h.render.Success(c, "/sessions", "Study session added successfully!")
}

func (h *StudySessionHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.render.Fail(c, "/login", "Please login first")
		return
	}

	sessionID, ok := parseIDParam(c)
	if !ok {
		h.render.NotFound(c, "Study session not found")
		return
	}

	if err := h.studyService.DeleteSession(c.Request.Context(), user.UserID, sessionID); err != nil {
		switch {
		case errors.Is(err, app.ErrSessionNotFound):
			h.render.NotFound(c, "Study session not found")
		case errors.Is(err, app.ErrForbidden):
			h.render.Fail(c, "/sessions", "Unauthorized access")
		default:
			h.render.Internal(c, "/sessions", "delete study session", err)
		}
		return
	}

	h.render.Success(c, "/sessions", "Study session deleted successfully!")
}
