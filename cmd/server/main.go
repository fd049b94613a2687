package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"survey_platform/internal/config"
	"survey_platform/internal/handler"
	"survey_platform/internal/logging"
	"survey_platform/internal/metrics"
	"survey_platform/internal/middleware"
	"survey_platform/internal/payment"
	"survey_platform/internal/repository"
	"survey_platform/internal/service"
	"survey_platform/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger := logging.New()
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Info(ctx, "no .env file found, relying on environment variables")
	}

	// --- Configuration ---
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		fatal(ctx, logger, "load app config", err)
	}
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		fatal(ctx, logger, "load db config", err)
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, dbCfg, logger)
	if err != nil {
		fatal(ctx, logger, "connect to database", err)
	}
	defer dbPool.Close()

	// --- Migrations ---
	if err := config.RunMigrations(ctx, dbPool); err != nil {
		fatal(ctx, logger, "run migrations", err)
	}
	logger.Info(ctx, "migrations applied")

	// --- Metrics ---
	metricsProvider, err := metrics.NewPrometheusProvider()
	if err != nil {
		fatal(ctx, logger, "init metrics", err)
	}
	recorder, err := metricsProvider.Recorder()
	if err != nil {
		fatal(ctx, logger, "init metric instruments", err)
	}

	// --- Token revocation (optional) ---
	var revocations repository.RevocationStore
	if appCfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: appCfg.RedisAddr, Password: appCfg.RedisPassword})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			fatal(ctx, logger, "connect to redis", err)
		}
		revocations = repository.NewRedisRevocationStore(rdb, "")
		logger.Info(ctx, "token revocation enabled", "redis", appCfg.RedisAddr)
	}

	// --- Payment gateway (optional) ---
	var gateway service.PaymentGateway
	if appCfg.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(appCfg.StripeSecretKey)
	} else {
		logger.Warn(ctx, "STRIPE_SECRET_KEY not set, payment intents are disabled")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(appCfg.TokenSecret, appCfg.TokenTTL)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	surveyRepo := repository.NewSurveyRepository(dbPool)
	feedbackRepo := repository.NewFeedbackRepository(dbPool)
	paymentRepo := repository.NewPaymentRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(jwtUtil, revocations)
	userService := service.NewUserService(userRepo)
	surveyService := service.NewSurveyService(surveyRepo, appCfg.LatestLimit)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	paymentService := service.NewPaymentService(paymentRepo, gateway, appCfg.Currency)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	surveyHandler := handler.NewSurveyHandler(surveyService, logger)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, logger)
	paymentHandler := handler.NewPaymentHandler(paymentService, logger)

	// --- Setup Gin Router ---
	router := gin.Default()
	router.Use(middleware.MetricsMiddleware(recorder))

	// Simple CORS middleware (allow all origins)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(authService, recorder, logger)
	adminRoleMW := middleware.AdminMiddleware(userService, recorder, logger)
	surveyorRoleMW := middleware.SurveyorMiddleware(userService, recorder, logger)

	// --- Register Routes ---
	rootGroup := router.Group("")
	authHandler.RegisterAuthRoutes(rootGroup, jwtAuthMW)
	userHandler.RegisterUserRoutes(rootGroup, jwtAuthMW, adminRoleMW)
	paymentHandler.RegisterPaymentRoutes(rootGroup, jwtAuthMW, adminRoleMW)

	apiGroup := router.Group("/api/v1")
	surveyHandler.RegisterSurveyRoutes(apiGroup, jwtAuthMW, surveyorRoleMW)
	feedbackHandler.RegisterFeedbackRoutes(apiGroup, jwtAuthMW, adminRoleMW)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Crud is running...")
	})

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	router.GET("/metrics", gin.WrapH(metricsProvider.Handler))

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + appCfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info(ctx, "server starting", "port", appCfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(ctx, logger, "listen", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "server forced to shutdown", "err", err)
	}
	if err := metricsProvider.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "metrics shutdown", "err", err)
	}

	logger.Info(ctx, "server exiting")
}

func fatal(ctx context.Context, logger logging.Logger, msg string, err error) {
	logger.Error(ctx, msg, "err", err)
	os.Exit(1)
}
