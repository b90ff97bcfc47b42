package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krishisahayak/app-backend/internal/backend"
)

// PumpResponse reports the confirmed pump state after a command.
type PumpResponse struct {
	On      bool   `json:"on"`
	Message string `json:"message,omitempty"`
}

// PumpStart handles POST /app/pump/start.
func (s *Server) PumpStart(c echo.Context) error {
	return s.pumpCommand(c, true)
}

// PumpStop handles POST /app/pump/stop.
func (s *Server) PumpStop(c echo.Context) error {
	return s.pumpCommand(c, false)
}

func (s *Server) pumpCommand(c echo.Context, on bool) error {
	status, err := s.pump.Set(c.Request().Context(), on)
	if err != nil {
		var pumpErr *backend.PumpError
		if errors.As(err, &pumpErr) {
			return c.JSON(http.StatusBadGateway, ErrorResponse{Error: pumpErr.Error()})
		}
		s.logger.WithError(err).Error("pump command failed")
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to reach pump controller"})
	}

	return c.JSON(http.StatusOK, PumpResponse{On: s.pump.On(), Message: status.Message})
}
