package router

import (
	"time"

	"einsatzplan/internal/config"
	"einsatzplan/internal/handler"
	"einsatzplan/internal/middleware"
	"einsatzplan/internal/model"
	"einsatzplan/internal/repository"
	"einsatzplan/internal/service"
	"einsatzplan/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	responseRepo := repository.NewResponseRepository(db)

	// Worker dispatcher — injected into services that enqueue mail jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	eventSvc := service.NewEventService(eventRepo, responseRepo, userRepo, authSvc)
	responseSvc := service.NewResponseService(eventRepo, responseRepo, userRepo, authSvc, dispatcher)
	reportSvc := service.NewReportService(eventRepo, responseRepo, userRepo, authSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	consentH := handler.NewConsentHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	eventsH := handler.NewEventsHandler(eventSvc)
	responsesH := handler.NewResponsesHandler(responseSvc)
	reportH := handler.NewReportHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	login := middleware.LoginRateLimiter()
	r.POST("/login", login, authH.Login)
	r.POST("/", login, authH.Login)

	// Protected routes
	auth := r.Group("", middleware.JWTAuth(cfg.JWTSecret))
	{
		auth.GET("/dashboard", authH.Dashboard)
		auth.GET("/logout", authH.Logout)

		auth.GET("/consent_status", consentH.Status)
		auth.POST("/consent", consentH.Set)

		// Name-only roster for the planning views
		auth.GET("/users_public", middleware.RequireRole(model.PlanningRoles...), usersH.ListPublic)

		// Full personnel records — vorgesetzter_cp is deliberately excluded
		admin := auth.Group("/users", middleware.RequireRole(model.AdminRoles...))
		{
			admin.POST("", usersH.Create)
			admin.GET("", usersH.List)
			admin.PUT("/:username", usersH.Update)
			admin.DELETE("/:username", usersH.Delete)
			admin.POST("/rename", usersH.Rename)
		}

		// Calendar view and payroll report — consent is enforced in the service
		auth.GET("/events", eventsH.List)
		auth.GET("/events/report", reportH.WorkedHours)

		// Event administration
		manage := middleware.RequireRole(model.EventManagerRoles...)
		auth.POST("/events", manage, eventsH.Create)
		auth.POST("/events/update", manage, eventsH.Update)
		auth.DELETE("/events/:event_id", manage, eventsH.Delete)
		auth.POST("/events/release", manage, eventsH.Release)
		auth.POST("/events/duplicate", manage, eventsH.Duplicate)

		// Employee self-service
		employee := middleware.RequireRole(model.RoleMitarbeiter)
		auth.POST("/events/respond", employee, responsesH.Respond)
		auth.POST("/events/endtime", employee, responsesH.EndTime)

		// Manager response administration
		auth.POST("/events/assign_user", manage, responsesH.Assign)
		auth.POST("/events/remove_user", manage, responsesH.Remove)
		auth.POST("/events/confirm", manage, responsesH.Confirm)
		auth.POST("/events/edit_entry", manage, responsesH.EditEntry)
		auth.POST("/events/send_mail_all", manage, responsesH.SendMailAll)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
