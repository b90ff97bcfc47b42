// Package market serves mandi price lookups for the market dashboard.
package market

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/krishisahayak/app-backend/internal/backend"
	"github.com/krishisahayak/app-backend/internal/cache/redis"
	"github.com/krishisahayak/app-backend/internal/types"
)

// Mandi tables change at most daily; a short TTL keeps repeat dashboard
// loads off the backend without serving stale prices for long.
const cacheTTL = 15 * time.Minute

// ErrMissingField means the lookup form was incomplete. Validation blocks
// the remote call entirely.
var ErrMissingField = errors.New("market: state, district, market and commodity are all required")

// Quoter is the slice of the backend client market lookups use.
type Quoter interface {
	MandiPrices(ctx context.Context, q types.MandiQuery) ([]types.MandiQuote, error)
}

// Service answers mandi price queries, with an optional cache in front of
// the backend.
type Service struct {
	quoter Quoter
	cache  *redis.Client
	logger *logrus.Logger
}

// NewService creates a market service. cache may be nil to disable caching.
func NewService(quoter Quoter, cache *redis.Client, logger *logrus.Logger) *Service {
	return &Service{quoter: quoter, cache: cache, logger: logger}
}

// Prices validates the query and returns the recent price table.
func (s *Service) Prices(ctx context.Context, q types.MandiQuery) ([]types.MandiQuote, error) {
	if q.State == "" || q.District == "" || q.Market == "" || q.Commodity == "" {
		return nil, ErrMissingField
	}

	key := backend.CacheKey(q)
	if s.cache != nil {
		var quotes []types.MandiQuote
		found, err := s.cache.GetJSON(ctx, key, &quotes)
		if err != nil {
			s.logger.WithError(err).Warn("mandi cache read failed")
		} else if found {
			return quotes, nil
		}
	}

	quotes, err := s.quoter.MandiPrices(ctx, q)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, quotes, cacheTTL); err != nil {
			s.logger.WithError(err).Warn("mandi cache write failed")
		}
	}
	return quotes, nil
}
