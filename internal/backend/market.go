package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/krishisahayak/app-backend/internal/types"
)

// mandiResponse wraps the price table, which arrives as pipe-delimited text
// rather than structured JSON.
type mandiResponse struct {
	Response string `json:"response"`
}

// MandiPrices fetches recent mandi prices for a commodity and parses the
// returned table.
func (c *Client) MandiPrices(ctx context.Context, q types.MandiQuery) ([]types.MandiQuote, error) {
	var out mandiResponse
	if err := c.postJSON(ctx, "/ai/mandi/price", q, &out); err != nil {
		return nil, err
	}
	if out.Response == "" {
		return nil, ErrEmptyResponse
	}
	return parseMandiTable(out.Response), nil
}

// parseMandiTable splits the backend's markdown-style table into quotes.
// The first two rows are the header and separator. Rows without all seven
// columns are skipped.
func parseMandiTable(table string) []types.MandiQuote {
	rows := strings.Split(table, "\n")
	if len(rows) <= 2 {
		return nil
	}

	var quotes []types.MandiQuote
	for _, row := range rows[2:] {
		var cols []string
		for _, col := range strings.Split(row, "|") {
			col = strings.TrimSpace(col)
			if col != "" {
				cols = append(cols, col)
			}
		}
		if len(cols) < 7 {
			continue
		}
		quotes = append(quotes, types.MandiQuote{
			Date:      cols[0],
			State:     cols[1],
			District:  cols[2],
			Market:    cols[3],
			Commodity: cols[4],
			MinPrice:  cols[5],
			MaxPrice:  cols[6],
		})
	}
	return quotes
}

// CacheKey returns a stable cache key for a mandi query.
func CacheKey(q types.MandiQuery) string {
	return fmt.Sprintf("mandi:%s:%s:%s:%s",
		strings.ToLower(q.State),
		strings.ToLower(q.District),
		strings.ToLower(q.Market),
		strings.ToLower(q.Commodity),
	)
}
