package api

import (
	"github.com/sirupsen/logrus"

	"github.com/krishisahayak/app-backend/internal/service"
	"github.com/krishisahayak/app-backend/internal/service/chat"
	"github.com/krishisahayak/app-backend/internal/service/market"
	"github.com/krishisahayak/app-backend/internal/service/pump"
	"github.com/krishisahayak/app-backend/internal/service/weather"
	"github.com/krishisahayak/app-backend/internal/storage/userfile"
)

// Server holds API dependencies.
type Server struct {
	authService *service.AuthService
	users       *userfile.Store
	chatService *chat.Service
	market      *market.Service
	weather     *weather.Service
	pump        *pump.Service
	hub         *Hub
	logger      *logrus.Logger
}

// NewServer creates a new API server.
func NewServer(
	authService *service.AuthService,
	users *userfile.Store,
	chatService *chat.Service,
	marketService *market.Service,
	weatherService *weather.Service,
	pumpService *pump.Service,
	hub *Hub,
	logger *logrus.Logger,
) *Server {
	return &Server{
		authService: authService,
		users:       users,
		chatService: chatService,
		market:      marketService,
		weather:     weatherService,
		pump:        pumpService,
		hub:         hub,
		logger:      logger,
	}
}
