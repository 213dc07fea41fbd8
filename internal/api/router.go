package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/loopcrm/crm-backend/docs"
	"github.com/loopcrm/crm-backend/internal/api/handler"
	"github.com/loopcrm/crm-backend/internal/api/middleware"
	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/policy"
	"github.com/loopcrm/crm-backend/internal/core/service"
	mongodb "github.com/loopcrm/crm-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/loopcrm/crm-backend/internal/infrastructure/db/redis"
	"github.com/loopcrm/crm-backend/internal/pkg/config"
	"github.com/loopcrm/crm-backend/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Dependencies ---
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	leadRepo := mongodb.NewLeadRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	badgeCache := redisdb.NewBadgeCache(rdb, cfg.Redis.BadgeTTL)

	notifier := service.NewNotifier(notificationRepo, badgeCache, log)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, tokens))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo))
	customerHandler := handler.NewCustomerHandler(service.NewCustomerService(customerRepo, userRepo, log))
	leadHandler := handler.NewLeadHandler(service.NewLeadService(leadRepo, userRepo, customerRepo, log))
	taskHandler := handler.NewTaskHandler(service.NewTaskService(taskRepo, customerRepo, userRepo, notifier, log))
	saleHandler := handler.NewSaleHandler(service.NewSaleService(saleRepo, customerRepo, userRepo, log))
	notificationHandler := handler.NewNotificationHandler(service.NewNotificationService(notificationRepo, taskRepo, badgeCache, log))

	// --- Health probes and operational surfaces (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	auth := middleware.Auth(tokens)
	protected := apiGroup.Group("", auth)

	protected.GET("/users/me", userHandler.Me)
	protected.GET("/users/sales-reps", userHandler.SalesReps)

	protected.GET("/customers", customerHandler.List)
	protected.GET("/customers/:id", customerHandler.Get)
	protected.POST("/customers", customerHandler.Create,
		middleware.RoleCheck(policy.MutationRoles(policy.EntityCustomer, policy.ActionCreate)...))
	protected.PUT("/customers/:id", customerHandler.Update,
		middleware.RoleCheck(policy.MutationRoles(policy.EntityCustomer, policy.ActionUpdate)...))
	protected.DELETE("/customers/:id", customerHandler.Delete,
		middleware.RoleCheck(policy.MutationRoles(policy.EntityCustomer, policy.ActionDelete)...))

	protected.GET("/leads", leadHandler.List)
	protected.GET("/leads/:id", leadHandler.Get)
	protected.POST("/leads", leadHandler.Create,
		middleware.RoleCheck(policy.MutationRoles(policy.EntityLead, policy.ActionCreate)...))
	protected.PUT("/leads/:id", leadHandler.Update,
		middleware.RoleCheck(policy.MutationRoles(policy.EntityLead, policy.ActionUpdate)...))
	protected.DELETE("/leads/:id", leadHandler.Delete,
		middleware.RoleCheck(policy.MutationRoles(policy.EntityLead, policy.ActionDelete)...))

	// /tasks/unseen must be registered before /tasks/:id so the static
	// segment wins over the parameter.
	protected.GET("/tasks/unseen", taskHandler.Unseen,
		middleware.RoleCheck(domain.RoleSales))
	protected.PATCH("/tasks/:id/seen", taskHandler.MarkSeen,
		middleware.RoleCheck(domain.RoleSales))
	protected.GET("/tasks", taskHandler.List)
	protected.GET("/tasks/:id", taskHandler.Get)
	protected.POST("/tasks", taskHandler.Create,
		middleware.RoleCheck(policy.MutationRoles(policy.EntityTask, policy.ActionCreate)...))
	protected.PUT("/tasks/:id", taskHandler.Update,
		middleware.RoleCheck(policy.MutationRoles(policy.EntityTask, policy.ActionUpdate)...))
	protected.DELETE("/tasks/:id", taskHandler.Delete,
		middleware.RoleCheck(policy.MutationRoles(policy.EntityTask, policy.ActionDelete)...))

	protected.GET("/sales", saleHandler.List)
	protected.GET("/sales/:id", saleHandler.Get)
	protected.POST("/sales", saleHandler.Create,
		middleware.RoleCheck(policy.MutationRoles(policy.EntitySale, policy.ActionCreate)...))
	protected.PUT("/sales/:id", saleHandler.Update,
		middleware.RoleCheck(policy.MutationRoles(policy.EntitySale, policy.ActionUpdate)...))

	protected.GET("/notifications", notificationHandler.List)
	protected.GET("/notifications/unseen-count", notificationHandler.UnseenCount)
	protected.PATCH("/notifications/seen/all", notificationHandler.MarkAllSeen)
	protected.PATCH("/notifications/:id/seen", notificationHandler.MarkSeen)

	return e
}
