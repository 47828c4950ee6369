// @title CareerPath API
// @version 1.0
// @description Quiz-driven career guidance API: skill assessment, career matching and recommendations.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"careerpath/internal/adapter"
	"careerpath/internal/adapter/evaluator"
	"careerpath/internal/cache"
	"careerpath/internal/config"
	"careerpath/internal/database"
	"careerpath/internal/domain"
	"careerpath/internal/handler"
	"careerpath/internal/logger"
	"careerpath/internal/middleware"
	"careerpath/internal/repository"
	"careerpath/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// Repositories
	sessionRepository := repository.NewSessionRepository(db)
	questionRepository := repository.NewQuestionRepository(db)
	careerRepository := repository.NewCareerRepository(db)
	recommendationRepository := repository.NewRecommendationRepository(db)
	userRepository := repository.NewUserRepository(db)

	// Open-ended scoring strategy
	var openEnded domain.OpenEndedScorer
	switch cfg.Quiz.OpenEndedStrategy {
	case "llm":
		appLogger.Info("Using LLM open-ended scorer",
			zap.String("server", cfg.Quiz.LLMServer),
			zap.String("model", cfg.Quiz.LLMModel),
		)
		openEnded = evaluator.NewLLMOpenEndedScorer(cfg.Quiz.LLMServer, cfg.Quiz.LLMModel)
	default:
		openEnded = domain.NewKeywordScorer(cfg.Quiz.MinKeywordHits)
	}

	matchCfg := domain.MatchConfig{
		MatchThreshold: cfg.Matching.MatchThreshold,
		TopN:           cfg.Matching.TopN,
		MinMatchFloor:  cfg.Matching.MinMatchFloor,
	}

	// Services
	careerService := service.NewCareerService(careerRepository, cacheAdapter, cfg.Matching.CatalogCacheTTL)
	quizService := service.NewQuizService(sessionRepository, questionRepository, careerService, openEnded,
		matchCfg, cfg.Quiz.SessionQuestionCount, cacheAdapter, cfg.Matching.ResultCacheTTL)
	recommendationService := service.NewRecommendationService(sessionRepository, recommendationRepository,
		careerService, openEnded, matchCfg, cacheAdapter, cfg.Matching.ResultCacheTTL)

	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	// Handlers
	quizHandler := handler.NewQuizHandler(quizService, recommendationService)
	careerHandler := handler.NewCareerHandler(careerService)
	authHandler := handler.NewAuthHandler(authService, cfg)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Career catalog (public)
	apiGroup.Get("/careers", careerHandler.GetAllCareers)
	apiGroup.Get("/careers/:id", careerHandler.GetCareerByID)

	// Quiz routes
	apiGroup.Post("/quizzes", middleware.Protected(authService), quizHandler.CreateSession)
	apiGroup.Get("/quizzes/:id", middleware.Protected(authService), quizHandler.GetSession)
	apiGroup.Post("/quizzes/:id/submit", middleware.Protected(authService), quizHandler.SubmitQuiz)
	apiGroup.Post("/quizzes/:id/recommendations", middleware.Protected(authService), quizHandler.GenerateRecommendations)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
