package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	appsvc "studytrackr/internal/app"
	"studytrackr/internal/bootstrap"
	"studytrackr/internal/repository"
	"studytrackr/internal/transport/http/handler"
	"studytrackr/internal/transport/http/middleware"
	"studytrackr/internal/transport/http/render"
	"studytrackr/web"
)

func NewRouter(app *bootstrap.App) (*gin.Engine, error) {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("load templates failed: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	userRepo := repository.NewUserRepository(app.DB)
	courseRepo := repository.NewCourseRepository(app.DB)
	sessionRepo := repository.NewStudySessionRepository(app.DB)

	authService := appsvc.NewAuthService(userRepo, app.Config.Auth.BcryptCost)
	courseService := appsvc.NewCourseService(courseRepo)
	studyService := appsvc.NewStudyService(courseRepo, sessionRepo)
	dashboardService := appsvc.NewDashboardService(courseRepo, sessionRepo)

	renderer := render.New(app.Sessions)
	healthHandler := handler.NewHealthHandler(app)
	authHandler := handler.NewAuthHandler(authService, app.Sessions, renderer)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, renderer)
	courseHandler := handler.NewCourseHandler(courseService, renderer)
	studyHandler := handler.NewStudySessionHandler(studyService, renderer)

	router.GET("/healthz", healthHandler.Check)

	pages := router.Group("/")
	pages.Use(middleware.LoadSession(app.Sessions, authService))
	pages.GET("/", authHandler.Index)
	pages.GET("/register", authHandler.RegisterPage)
	pages.POST("/register", authHandler.Register)
	pages.GET("/login", authHandler.LoginPage)
	pages.POST("/login", authHandler.Login)
	pages.GET("/logout", authHandler.Logout)

	protected := pages.Group("/")
	protected.Use(middleware.RequireLogin(app.Sessions))
	protected.GET("/dashboard", dashboardHandler.Show)
	protected.GET("/courses", courseHandler.List)
	protected.POST("/courses", courseHandler.Create)
	protected.POST("/courses/:id/delete", courseHandler.Delete)
	protected.GET("/sessions", studyHandler.List)
	protected.POST("/sessions", studyHandler.Create)
	protected.POST("/sessions/:id/delete", studyHandler.Delete)

	return router, nil
}
