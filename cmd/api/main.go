package main

import (
	"context"
	"log"
	"time"

	"aura-backend/config"
	"aura-backend/internal/handler"
	"aura-backend/internal/llm"
	"aura-backend/internal/redis"
	"aura-backend/internal/repository"
	"aura-backend/internal/server"
	"aura-backend/internal/services"
	"aura-backend/internal/storage"
	"aura-backend/pkg/database"
	"aura-backend/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	defer l.Sync()

	ctx := context.Background()

	var (
		sessionRepo repository.SessionRepository
		userRepo    repository.UserRepository
		health      server.HealthCheck
	)
	if cfg.MongoURI != "" {
		db, err := database.Connect(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close(ctx)

		sessionRepo = repository.NewSessionRepository(db.Database)
		userRepo = repository.NewUserRepository(db.Database)
		health = db.HealthCheck
		l.Infof("Connected to MongoDB (%s)", cfg.MongoDB)
	} else {
		sessionRepo = repository.NewMemorySessionRepository()
		userRepo = repository.NewMemoryUserRepository()
		l.Infof("MONGO_URI not set, using in-memory stores (data is not persisted)")
	}

	var completions llm.CompletionClient
	if cfg.LLMBaseURL != "" {
		completions = llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	} else {
		completions = llm.NewMock()
		l.Infof("LLM_BASE_URL not set, using canned completions")
	}

	var limiter *redis.RateLimiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		limiter = redis.NewRateLimiter(client, redis.DefaultRateLimitConfig())
	} else {
		l.Infof("REDIS_ADDR not set, rate limiting disabled")
	}

	var avatarService *services.AvatarService
	if cfg.S3Bucket != "" {
		s3Client, err := storage.NewClient(ctx, storage.S3Config{
			Region:     cfg.S3Region,
			Bucket:     cfg.S3Bucket,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			Endpoint:   cfg.S3Endpoint,
			PublicBase: cfg.S3PublicBase,
			PresignTTL: 15 * time.Minute,
		})
		if err != nil {
			log.Fatalf("Failed to initialize S3 client: %v", err)
		}
		avatarService = services.NewAvatarService(s3Client)
	} else {
		l.Infof("S3_BUCKET not set, avatar uploads disabled")
	}

	chatService := services.NewChatService(sessionRepo, completions)
	authService := services.NewAuthService(userRepo, cfg)
	profileService := services.NewProfileService(userRepo)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Chat:    handler.NewChatHandler(chatService),
		Auth:    handler.NewAuthHandler(authService),
		Profile: handler.NewProfileHandler(profileService, avatarService),
	}, authService, limiter, health)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
