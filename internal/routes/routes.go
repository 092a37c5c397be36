package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/calendar-scheduler/internal/config"
	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/google"
	"github.com/BruksfildServices01/calendar-scheduler/internal/handlers"
	"github.com/BruksfildServices01/calendar-scheduler/internal/middleware"
	"github.com/BruksfildServices01/calendar-scheduler/internal/ratelimit"
	uc "github.com/BruksfildServices01/calendar-scheduler/internal/usecase/scheduling"
)

// Dependencies are the singletons built by main and shared by every route.
type Dependencies struct {
	Config  *config.Config
	Repo    domain.Repository
	Limiter ratelimit.Limiter
	Google  google.Source
	Auditor uc.Auditor
	Log     zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config
	repo := deps.Repo
	log := deps.Log

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := uc.NewRegisterUser(repo, deps.Auditor, cfg.JWTSecret)
	loginUC := uc.NewLogin(repo, cfg.JWTSecret)
	visitorUC := uc.NewCreateVisitor(repo, deps.Auditor)
	resolveUC := uc.NewResolveUser(repo, cfg.JWTSecret)
	createTaskUC := uc.NewCreateTask(repo, deps.Auditor)
	replaceAvailabilityUC := uc.NewReplaceAvailability(repo, deps.Auditor)
	bookAppointmentUC := uc.NewBookAppointment(repo, deps.Auditor)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, visitorUC, resolveUC, log)
	taskHandler := handlers.NewTaskHandler(repo, createTaskUC, log)
	availabilityHandler := handlers.NewAvailabilityHandler(repo, replaceAvailabilityUC, log)
	appointmentHandler := handlers.NewAppointmentHandler(repo, bookAppointmentUC, log)
	feedHandler := handlers.NewCalendarFeedHandler(repo, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(repo, log)
	googleHandler := handlers.NewGoogleHandler(deps.Google, log)

	throttle := middleware.RateLimit(deps.Limiter, log)
	optionalAuth := middleware.OptionalAuth(cfg)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// IDENTITY
		// ------------------------------
		api.GET("/me", authHandler.Me)
		api.GET("/user", authHandler.Me)
		api.POST("/register", throttle, authHandler.Register)
		api.POST("/users", throttle, authHandler.Register)
		api.POST("/login", throttle, authHandler.Login)
		api.POST("/random-user", throttle, authHandler.RandomUser)

		// ------------------------------
		// CALENDAR
		// ------------------------------
		api.GET("/tasks", taskHandler.List)
		api.POST("/tasks", optionalAuth, taskHandler.Create)

		api.GET("/availability", availabilityHandler.List)
		api.POST("/availability", optionalAuth, availabilityHandler.Submit)

		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)

		api.GET("/calendar.ics", feedHandler.Feed)
		api.GET("/audit-logs", optionalAuth, auditLogsHandler.List)

		// ------------------------------
		// GOOGLE PROXIES
		// ------------------------------
		api.GET("/google-calendar", googleHandler.Events)
		api.GET("/google-calendar-tasks", googleHandler.Tasks)
	}
}
