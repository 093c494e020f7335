package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrackr/internal/app"
	"studytrackr/internal/transport/http/middleware"
	"studytrackr/internal/transport/http/render"
)

type CourseHandler struct {
	courseService *app.CourseService
	render        *render.Renderer
}

type AddCourseRequest struct {
	Name           string `form:"name" binding:"required,max=100"`
	EstimatedGrade *int   `form:"estimated_grade" binding:"required,min=0,max=100"`
}

func NewCourseHandler(courseService *app.CourseService, renderer *render.Renderer) *CourseHandler {
	return &CourseHandler{courseService: courseService, render: renderer}
}

func (h *CourseHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.render.Fail(c, "/login", "Please login first")
		return
	}

	courses, err := h.courseService.ListCourses(c.Request.Context(), user.UserID)
	if err != nil {
		h.render.Internal(c, "/dashboard", "list courses", err)
		return
	}

	h.render.Page(c, http.StatusOK, "courses.html", "Courses", gin.H{
		"Courses": courses,
	})
}

func (h *CourseHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.render.Fail(c, "/login", "Please login first")
		return
	}

	var req AddCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render.Fail(c, "/courses", "Please provide a course name and an estimated grade between 0 and 100")
		return
	}

	_, err := h.courseService.AddCourse(c.Request.Context(), app.AddCourseInput{
		UserID:         user.UserID,
		Name:           req.Name,
		EstimatedGrade: *req.EstimatedGrade,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			h.render.Fail(c, "/courses", "Please provide a course name and an estimated grade between 0 and 100")
		default:
			h.render.Internal(c, "/courses", "add course", err)
		}
		return
	}

	h.render.Success(c, "/courses", "Course added successfully!")
}

func (h *CourseHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.render.Fail(c, "/login", "Please login first")
		return
	}

	courseID, ok := parseIDParam(c)
	if !ok {
		h.render.NotFound(c, "Course not found")
		return
	}

	if err := h.courseService.DeleteCourse(c.Request.Context(), user.UserID, courseID); err != nil {
		switch {
		case errors.Is(err, app.ErrCourseNotFound):
			h.render.NotFound(c, "Course not found")
		case errors.Is(err, app.ErrForbidden):
			h.render.Fail(c, "/courses", "Unauthorized access")
		default:
			h.render.Internal(c, "/courses", "delete course", err)
		}
		return
	}

	h.render.Success(c, "/courses", "Course deleted successfully!")
}
