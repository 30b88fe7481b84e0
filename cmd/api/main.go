package main

// @title VivWell API
// @version 1.0
// @description Lead attribution, scoring and proposal pipeline for VivWell corporate wellness.

// @contact.name API Support
// @contact.email sales@vivwell.co

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/vivwell/api/config"
	_ "github.com/vivwell/api/docs" // Swagger docs (generated)
	"github.com/vivwell/api/pkg/api/handlers"
	"github.com/vivwell/api/pkg/attribution"
	"github.com/vivwell/api/pkg/auth"
	"github.com/vivwell/api/pkg/billing"
	"github.com/vivwell/api/pkg/cache"
	"github.com/vivwell/api/pkg/database"
	"github.com/vivwell/api/pkg/email"
	"github.com/vivwell/api/pkg/esign"
	"github.com/vivwell/api/pkg/export"
	"github.com/vivwell/api/pkg/jobs"
	"github.com/vivwell/api/pkg/leadlifecycle"
	"github.com/vivwell/api/pkg/metrics"
	custommiddleware "github.com/vivwell/api/pkg/middleware"
	"github.com/vivwell/api/pkg/notify"
	"github.com/vivwell/api/pkg/pricing"
	"github.com/vivwell/api/pkg/sms"
	"github.com/vivwell/api/pkg/submissions"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Attribution and submission-gate state live in Redis behind the same
	// key-value interface the tests fake out
	kvStore := cache.NewStore(redisClient)
	extractor := attribution.NewExtractor(kvStore, cfg.AttributionWindow, nil)
	gate := submissions.NewGate(kvStore, cfg.SubmissionWindow, nil)

	// Chat clients for sales notifications
	var chats []notify.ChatClient
	if cfg.SlackWebhookURL != "" {
		chats = append(chats, notify.NewSlackClient(cfg.SlackWebhookURL))
		log.Printf("✅ Slack notifications enabled")
	}
	if cfg.DiscordWebhookURL != "" {
		chats = append(chats, notify.NewDiscordClient(cfg.DiscordWebhookURL))
		log.Printf("✅ Discord notifications enabled")
	}

	// Initialize services
	notifyService := notify.NewService(db.Ent, chats...)
	emailService := email.NewService(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName, cfg.SalesEmail)

	var smsProvider sms.SMSProvider
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		smsProvider = sms.NewTwilioProvider(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
		log.Printf("✅ Twilio SMS provider initialized")
	} else {
		log.Printf("ℹ️  Twilio disabled (no credentials), SMS alerts will be logged")
	}
	smsService := sms.NewService(smsProvider, cfg.TwilioFromNumber, cfg.SalesPhoneNumber)

	submissionService := submissions.NewService(db.Ent, extractor, gate).
		WithNotifier(notifyService).
		WithMailer(emailService).
		WithAlerter(smsService, cfg.HighScoreThreshold)

	lifecycleService := leadlifecycle.NewService(db.Ent)
	pricingService := pricing.NewService(db.Ent, notifyService)
	billingService := billing.NewService(pricingService, cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	esignService := esign.NewService(pricingService, cfg.DocuSealWebhookSecret)
	exportService := export.NewService(db.Ent)

	// JWT blacklist for admin logout
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Daily digest and stale-lead cron jobs
	cronManager := jobs.NewCronManager(db.Ent, chats, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	submitRateLimiter := custommiddleware.NewRateLimiter(10, 3)    // public form posts
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // login brute-force
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // Stripe/DocuSeal

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(metrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health and metrics (public)
	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		dbStatus := "up"
		if err := db.Ping(ctx); err != nil {
			dbStatus = "down"
		}

		redisStatus := "up"
		if _, err := redisClient.Redis.Ping(ctx).Result(); err != nil {
			redisStatus = "down"
		}

		status := http.StatusOK
		overall := "healthy"
		if dbStatus == "down" || redisStatus == "down" {
			status = http.StatusServiceUnavailable
			overall = "unhealthy"
		}

		return c.JSON(status, map[string]string{
			"status":   overall,
			"database": dbStatus,
			"redis":    redisStatus,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Initialize handlers
	leadHandler := handlers.NewLeadHandler(submissionService, lifecycleService)
	proposalHandler := handlers.NewProposalHandler(pricingService)
	webhookHandler := handlers.NewWebhookHandler(billingService, esignService)
	notificationHandler := handlers.NewNotificationHandler(notifyService)
	exportHandler := handlers.NewExportHandler(exportService)
	authHandler := handlers.NewAuthHandler(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpirationHours, tokenBlacklist)

	v1 := e.Group("/api/v1")

	// Public routes
	v1.POST("/leads", leadHandler.Submit, submitRateLimiter.RateLimitMiddleware())
	v1.GET("/proposals/view/:token", proposalHandler.View)
	v1.POST("/proposals/:token/approve", proposalHandler.Approve)
	v1.POST("/webhooks/stripe", webhookHandler.HandleStripe, webhookRateLimiter.RateLimitMiddleware())
	v1.POST("/webhooks/docuseal", webhookHandler.HandleDocuSeal, webhookRateLimiter.RateLimitMiddleware())
	v1.POST("/auth/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())

	// Admin routes (require JWT)
	admin := v1.Group("")
	admin.Use(custommiddleware.RequireAuth(cfg.JWTSecret, tokenBlacklist))
	{
		admin.POST("/auth/logout", authHandler.Logout)
		admin.GET("/auth/me", authHandler.Me)

		admin.GET("/leads", leadHandler.List)
		admin.GET("/leads/export", exportHandler.Download)
		admin.GET("/leads/status-counts", leadHandler.GetStatusCounts)
		admin.GET("/leads/:id", leadHandler.GetByID)
		admin.PATCH("/leads/:id/status", leadHandler.UpdateStatus)
		admin.GET("/leads/:id/status-history", leadHandler.GetStatusHistory)

		admin.POST("/proposals", proposalHandler.Create)
		admin.GET("/proposals", proposalHandler.List)
		admin.GET("/proposals/:id", proposalHandler.Get)
		admin.PATCH("/proposals/:id", proposalHandler.Update)
		admin.POST("/proposals/:id/send", proposalHandler.Send)
		admin.POST("/proposals/:id/link-invoice", proposalHandler.LinkInvoice)
		admin.POST("/proposals/:id/link-submission", proposalHandler.LinkSubmission)

		admin.POST("/notification-endpoints", notificationHandler.Create)
		admin.GET("/notification-endpoints", notificationHandler.List)
		admin.PATCH("/notification-endpoints/:id", notificationHandler.Update)
		admin.DELETE("/notification-endpoints/:id", notificationHandler.Delete)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 VivWell API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d), submissions 10/min", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏳ Attribution window: %s, submission cool-down: %s", cfg.AttributionWindow, cfg.SubmissionWindow)
	log.Printf("🎯 High-score alert threshold: %d", cfg.HighScoreThreshold)

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
