package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/harukimoto/crm-dashboard-api/internal/config"
	"github.com/harukimoto/crm-dashboard-api/internal/database"
	"github.com/harukimoto/crm-dashboard-api/internal/handlers"
	"github.com/harukimoto/crm-dashboard-api/internal/identity"
	"github.com/harukimoto/crm-dashboard-api/internal/jobs"
	"github.com/harukimoto/crm-dashboard-api/internal/logging"
	"github.com/harukimoto/crm-dashboard-api/internal/middleware"
	"github.com/harukimoto/crm-dashboard-api/internal/pipedrive"
	"github.com/harukimoto/crm-dashboard-api/internal/repository"
	"github.com/harukimoto/crm-dashboard-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logger.Fatal("Failed to create indexes", zap.Error(err))
	}

	// Identity provider: offline JWT verification when the signing secret
	// is available, remote verification otherwise.
	var provider identity.Provider
	if cfg.AuthJWTSecret != "" {
		provider = identity.NewJWTProvider(cfg.AuthJWTSecret)
	} else {
		provider = identity.NewHTTPProvider(cfg.AuthBaseURL)
	}

	memberships := repository.NewMembershipRepository(database.GetDB())
	crmClient := pipedrive.NewClient(cfg)
	aggregation := services.NewAggregationService(crmClient, logger)

	// Background jobs
	registry := jobs.NewRegistry(logger)
	registry.Register(&jobs.IntegrationHealthJob{CRM: crmClient})
	registry.Register(&jobs.MembershipAuditJob{Memberships: memberships})

	// Initialize handlers
	orgHandler := handlers.NewOrgHandler(memberships, logger)
	crmHandler := handlers.NewCRMHandler(aggregation)
	jobsHandler := handlers.NewJobsHandler(registry, cfg.CronSecret, logger)
	integrationsHandler := handlers.NewIntegrationsHandler(crmClient)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "CRM Dashboard API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Integration status (public, informational only)
		api.GET("/integrations/status", integrationsHandler.Status)

		// Scheduled job gateway (own authorization rule)
		api.GET("/jobs/run", jobsHandler.RunJob)

		// Tenant-scoped routes (org guard required)
		guarded := api.Group("")
		guarded.Use(middleware.RequireOrgContext(provider, memberships))
		{
			guarded.GET("/me", orgHandler.GetCurrentContext)
			guarded.GET("/org/members", orgHandler.ListMembers)
			guarded.GET("/crm/organizations/:id/overview", crmHandler.GetOrgOverview)
			guarded.GET("/crm/organizations/:id/activity", crmHandler.GetOrgActivity)
		}
	}

	// Start server
	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
