// Package weather serves forecast and history lookups for the weather
// screen.
package weather

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/krishisahayak/app-backend/internal/cache/redis"
	"github.com/krishisahayak/app-backend/internal/types"
)

const cacheTTL = 30 * time.Minute

// ErrMissingCity means no city was supplied; the remote call is blocked.
var ErrMissingCity = errors.New("weather: city is required")

// Forecaster is the slice of the backend client weather lookups use.
type Forecaster interface {
	WeatherNext(ctx context.Context, city string) ([]types.DailyWeather, error)
	WeatherPrevious(ctx context.Context, city string) ([]types.DailyWeather, error)
}

// Service answers weather queries, with an optional cache in front of the
// backend.
type Service struct {
	forecaster Forecaster
	cache      *redis.Client
	logger     *logrus.Logger
}

// NewService creates a weather service. cache may be nil to disable caching.
func NewService(forecaster Forecaster, cache *redis.Client, logger *logrus.Logger) *Service {
	return &Service{forecaster: forecaster, cache: cache, logger: logger}
}

// Next returns the seven-day forecast for a city.
func (s *Service) Next(ctx context.Context, city string) ([]types.DailyWeather, error) {
	return s.lookup(ctx, "next", city, s.forecaster.WeatherNext)
}

// Previous returns the previous seven days of weather for a city.
func (s *Service) Previous(ctx context.Context, city string) ([]types.DailyWeather, error) {
	return s.lookup(ctx, "previous", city, s.forecaster.WeatherPrevious)
}

func (s *Service) lookup(ctx context.Context, window, city string, fetch func(context.Context, string) ([]types.DailyWeather, error)) ([]types.DailyWeather, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrMissingCity
	}

	key := "weather:" + window + ":" + strings.ToLower(city)
	if s.cache != nil {
		var days []types.DailyWeather
		found, err := s.cache.GetJSON(ctx, key, &days)
		if err != nil {
			s.logger.WithError(err).Warn("weather cache read failed")
		} else if found {
			return days, nil
		}
	}

	days, err := fetch(ctx, city)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, days, cacheTTL); err != nil {
			s.logger.WithError(err).Warn("weather cache write failed")
		}
	}
	return days, nil
}
