package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krishisahayak/app-backend/internal/service/weather"
	"github.com/krishisahayak/app-backend/internal/types"
)

// WeatherResponse carries a seven-day weather window.
type WeatherResponse struct {
	City string               `json:"city"`
	Days []types.DailyWeather `json:"days"`
}

// WeatherNext handles GET /app/weather/next?city=...
func (s *Server) WeatherNext(c echo.Context) error {
	return s.weatherWindow(c, s.weather.Next)
}

// WeatherPrevious handles GET /app/weather/previous?city=...
func (s *Server) WeatherPrevious(c echo.Context) error {
	return s.weatherWindow(c, s.weather.Previous)
}

func (s *Server) weatherWindow(c echo.Context, fetch func(ctx context.Context, city string) ([]types.DailyWeather, error)) error {
	city := c.QueryParam("city")

	days, err := fetch(c.Request().Context(), city)
	switch {
	case errors.Is(err, weather.ErrMissingCity):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case err != nil:
		s.logger.WithError(err).Error("weather lookup failed")
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch weather"})
	}

	if days == nil {
		days = []types.DailyWeather{}
	}
	return c.JSON(http.StatusOK, WeatherResponse{City: city, Days: days})
}
