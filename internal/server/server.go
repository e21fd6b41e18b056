package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aura-backend/config"
	"aura-backend/internal/handler"
	"aura-backend/internal/middleware"
	"aura-backend/internal/redis"
	"aura-backend/internal/services"
	"aura-backend/internal/transport/httpdto"
	"aura-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Chat    *handler.ChatHandler
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
}

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService, limiter *redis.RateLimiter, health HealthCheck) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorLogger(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewMessageResponse("pong"))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if health != nil {
			if err := health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, httpdto.NewMessageResponse("unhealthy"))
				return
			}
		}
		c.JSON(http.StatusOK, httpdto.NewMessageResponse("healthy"))
	})

	sessions := s.engine.Group("/sessions")
	{
		sessions.POST("", middleware.MessageRateLimitMiddleware(limiter), handlers.Chat.CreateSession)
		sessions.GET("", handlers.Chat.ListSessions)
		sessions.GET("/:sessionId", handlers.Chat.GetSession)
		sessions.POST("/:sessionId/messages", middleware.MessageRateLimitMiddleware(limiter), handlers.Chat.AddMessage)
	}

	auth := s.engine.Group("/auth")
	{
		auth.POST("/register", middleware.AuthRateLimitMiddleware(limiter), handlers.Auth.Register)
		auth.POST("/login", middleware.AuthRateLimitMiddleware(limiter), handlers.Auth.Login)
		auth.POST("/logout", handlers.Auth.Logout)
	}

	profile := s.engine.Group("/profile", middleware.AuthMiddleware(authService))
	{
		profile.GET("", handlers.Profile.GetProfile)
		profile.PUT("", handlers.Profile.UpdateProfile)
		profile.POST("/image", handlers.Profile.PresignAvatar)
	}
}

// Engine exposes the router, used by handler tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	if s.logger != nil {
		s.logger.Infof("Shutdown signal received, draining requests...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
