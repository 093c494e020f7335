package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrackr/internal/app"
	"studytrackr/internal/session"
	"studytrackr/internal/transport/http/middleware"
	"studytrackr/internal/transport/http/render"
)

type AuthHandler struct {
	authService *app.AuthService
	sessions    *session.Manager
	render      *render.Renderer
}

type RegisterRequest struct {
	Username string `form:"username" binding:"required,min=3,max=80"`
	Email    string `form:"email" binding:"required,email,max=120"`
	Password string `form:"password" binding:"required,min=8,max=128"`
}

type LoginRequest struct {
	Username string `form:"username" binding:"required,max=80"`
	Password string `form:"password" binding:"required,max=128"`
}

func NewAuthHandler(authService *app.AuthService, sessions *session.Manager, renderer *render.Renderer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		render:      renderer,
	}
}

func (h *AuthHandler) Index(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		h.render.Redirect(c, "/dashboard")
		return
	}
	h.render.Redirect(c, "/login")
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.render.Page(c, http.StatusOK, "register.html", "Register", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render.Fail(c, "/register", "Please provide a username (3-80 characters), a valid email and a password of at least 8 characters")
		return
	}

	_, err := h.authService.Register(c.Request.Context(), app.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			h.render.Fail(c, "/register", "Please fill in every field")
		case errors.Is(err, app.ErrUsernameExists):
			h.render.Fail(c, "/register", "Username already exists")
		case errors.Is(err, app.ErrEmailExists):
			h.render.Fail(c, "/register", "Email already exists")
		case errors.Is(err, app.ErrAccountExists):
			h.render.Fail(c, "/register", "Username or email already exists")
		default:
			h.render.Internal(c, "/register", "register", err)
		}
		return
	}

	h.render.Success(c, "/login", "Registration successful! Please login.")
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.render.Page(c, http.StatusOK, "login.html", "Login", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render.Fail(c, "/login", "Invalid username or password")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput), errors.Is(err, app.ErrInvalidCredential):
			h.render.Fail(c, "/login", "Invalid username or password")
		default:
			h.render.Internal(c, "/login", "login", err)
		}
		return
	}

	if err := h.sessions.Establish(c, session.Identity{UserID: user.ID, Username: user.Username}); err != nil {
		h.render.Internal(c, "/login", "establish session", err)
		return
	}
	h.render.Success(c, "/dashboard", "Login successful!")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c); err != nil {
		// the cookie is already expired, so the browser is logged out regardless
		h.render.Internal(c, "/login", "clear session", err)
		return
	}
	h.render.Success(c, "/login", "Logged out successfully")
}
