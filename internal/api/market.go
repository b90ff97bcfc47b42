package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krishisahayak/app-backend/internal/service/market"
	"github.com/krishisahayak/app-backend/internal/types"
)

// MandiPricesResponse carries the parsed price table.
type MandiPricesResponse struct {
	Quotes []types.MandiQuote `json:"quotes"`
}

// MandiPrices handles POST /app/market/prices.
func (s *Server) MandiPrices(c echo.Context) error {
	var q types.MandiQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	quotes, err := s.market.Prices(c.Request().Context(), q)
	switch {
	case errors.Is(err, market.ErrMissingField):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case err != nil:
		s.logger.WithError(err).Error("mandi price lookup failed")
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch mandi prices"})
	}

	if quotes == nil {
		quotes = []types.MandiQuote{}
	}
	return c.JSON(http.StatusOK, MandiPricesResponse{Quotes: quotes})
}
