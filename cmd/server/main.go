package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/krishisahayak/app-backend/internal/api"
	"github.com/krishisahayak/app-backend/internal/audio"
	"github.com/krishisahayak/app-backend/internal/backend"
	"github.com/krishisahayak/app-backend/internal/cache/redis"
	"github.com/krishisahayak/app-backend/internal/config"
	"github.com/krishisahayak/app-backend/internal/conversation"
	"github.com/krishisahayak/app-backend/internal/service"
	"github.com/krishisahayak/app-backend/internal/service/chat"
	"github.com/krishisahayak/app-backend/internal/service/market"
	"github.com/krishisahayak/app-backend/internal/service/pump"
	"github.com/krishisahayak/app-backend/internal/service/weather"
	"github.com/krishisahayak/app-backend/internal/storage/userfile"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Load configuration (.env first, then environment)
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}

	// Configure log format
	if cfg.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	}

	logger.Info("starting app gateway")

	// Optional lookup cache
	var cache *redis.Client
	if cfg.Redis.URI != "" {
		cache, err = redis.New(cfg.Redis.URI)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to redis")
		}
		defer cache.Close()
	}

	// Local user registry
	users, err := userfile.Open(cfg.Users.File)
	if err != nil {
		logger.WithError(err).Fatal("failed to open users file")
	}

	// Remote backend clients
	backendClient := backend.NewClient(cfg.Backend.BaseURL, backend.WithTimeout(cfg.Backend.Timeout))
	pumpClient := backend.NewPumpClient(cfg.Pump.BaseURL, backend.WithTimeout(cfg.Backend.Timeout))

	// Audio devices
	capture := audio.NewCapture(audio.NewExecInput(cfg.Audio.RecordCmd, cfg.Audio.Dir), logger)
	player := audio.NewPlayer(audio.NewExecOutput(cfg.Audio.PlayCmd), cfg.Audio.Dir, logger)
	defer player.Close()

	// Conversation log and UI event hub
	log := conversation.NewLog()
	hub := api.NewHub(logger)
	defer hub.Close()

	// Services
	authService := service.NewAuthService(cfg.Server.JWTSecret)
	chatService := chat.NewService(log, backendClient, capture, player, hub, logger, cfg.Chat.AutoSendDelay)
	marketService := market.NewService(backendClient, cache, logger)
	weatherService := weather.NewService(backendClient, cache, logger)
	pumpService := pump.NewService(pumpClient, logger)

	// API server
	server := api.NewServer(authService, users, chatService, marketService, weatherService, pumpService, hub, logger)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Add middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			}).Info("request")
			return nil
		},
	}))

	// Health check endpoint (public)
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	// Account routes (public)
	e.POST("/auth/register", server.Register)
	e.POST("/auth/login", server.Login)

	// App routes (authenticated)
	app := e.Group("/app", server.AuthMiddleware)
	app.GET("/chat/messages", server.ListMessages)
	app.POST("/chat/messages", server.SendMessage)
	app.POST("/chat/mic", server.ToggleMic)
	app.POST("/chat/messages/:id/speak", server.Speak)
	app.POST("/market/prices", server.MandiPrices)
	app.GET("/weather/next", server.WeatherNext)
	app.GET("/weather/previous", server.WeatherPrevious)
	app.POST("/pump/start", server.PumpStart)
	app.POST("/pump/stop", server.PumpStop)
	app.GET("/stream", hub.Stream)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.WithField("addr", addr).Info("server listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server shutdown error")
	}

	logger.Info("server stopped")
}
