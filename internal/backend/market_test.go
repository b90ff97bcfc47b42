package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/krishisahayak/app-backend/internal/types"
)

const sampleTable = `| Date | State | District | Market | Commodity | Min | Max |
|------|-------|----------|--------|-----------|-----|-----|
| 2026-08-24 | Uttrakhand | Haridwar | Haridwar | Rice | 2100 | 2350 |
| 2026-08-25 | Uttrakhand | Haridwar | Haridwar | Rice | 2150 | 2400 |

| short | row |`

func TestParseMandiTable(t *testing.T) {
	quotes := parseMandiTable(sampleTable)
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}

	first := quotes[0]
	if first.Date != "2026-08-24" || first.Commodity != "Rice" {
		t.Errorf("unexpected first quote: %+v", first)
	}
	if first.MinPrice != "2100" || first.MaxPrice != "2350" {
		t.Errorf("unexpected prices: %+v", first)
	}
	if quotes[1].MinPrice != "2150" {
		t.Errorf("row order not preserved: %+v", quotes[1])
	}
}

func TestParseMandiTableHeaderOnly(t *testing.T) {
	if quotes := parseMandiTable("| Date |\n|------|"); quotes != nil {
		t.Fatalf("expected nil for header-only table, got %v", quotes)
	}
}

func TestMandiPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ai/mandi/price" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var q types.MandiQuery
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			t.Fatalf("decode query: %v", err)
		}
		if q.Commodity != "Rice" {
			t.Errorf("unexpected commodity %q", q.Commodity)
		}
		_ = json.NewEncoder(w).Encode(mandiResponse{Response: sampleTable})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	quotes, err := c.MandiPrices(context.Background(), types.MandiQuery{
		State: "Uttrakhand", District: "Haridwar", Market: "Haridwar", Commodity: "Rice",
	})
	if err != nil {
		t.Fatalf("MandiPrices failed: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
}

func TestCacheKeyCaseInsensitive(t *testing.T) {
	a := CacheKey(types.MandiQuery{State: "Uttrakhand", District: "Haridwar", Market: "Haridwar", Commodity: "Rice"})
	b := CacheKey(types.MandiQuery{State: "uttrakhand", District: "haridwar", Market: "haridwar", Commodity: "rice"})
	if a != b {
		t.Errorf("cache keys differ: %q vs %q", a, b)
	}
}
