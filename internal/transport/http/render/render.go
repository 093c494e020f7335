package render

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrackr/internal/session"
	"studytrackr/internal/transport/http/middleware"
)

const msgInternal = "Something went wrong, please try again."

type Renderer struct {
	sessions *session.Manager
}

func New(sessions *session.Manager) *Renderer {
	return &Renderer{sessions: sessions}
}

// Page renders an HTML template, handing it the pending flash notices and
// the logged-in user next to data.
func (r *Renderer) Page(c *gin.Context, status int, name, title string, data gin.H) {
	flashes, err := r.sessions.PopFlashes(c)
	if err != nil {
		log.Printf("pop flashes failed: %v", err)
	}

	view := gin.H{
		"Title":   title,
		"Flashes": flashes,
	}
	if user, ok := middleware.CurrentUser(c); ok {
		view["User"] = user
	}
	for k, v := range data {
		view[k] = v
	}
	c.HTML(status, name, view)
}

func (r *Renderer) Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

func (r *Renderer) Success(c *gin.Context, location, message string) {
	r.flash(c, session.FlashSuccess, message)
	r.Redirect(c, location)
}

func (r *Renderer) Fail(c *gin.Context, location, message string) {
	r.flash(c, session.FlashError, message)
	r.Redirect(c, location)
}

// Internal logs an unexpected failure and answers with a generic notice.
func (r *Renderer) Internal(c *gin.Context, location, action string, err error) {
	log.Printf("%s failed: %v", action, err)
	r.Fail(c, location, msgInternal)
}

func (r *Renderer) NotFound(c *gin.Context, message string) {
	r.Page(c, http.StatusNotFound, "not_found.html", "Not found", gin.H{"Message": message})
}

func (r *Renderer) flash(c *gin.Context, kind, message string) {
	if err := r.sessions.AddFlash(c, kind, message); err != nil {
		log.Printf("store flash failed: %v", err)
	}
}
