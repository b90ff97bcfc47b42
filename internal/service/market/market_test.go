package market

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/krishisahayak/app-backend/internal/types"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

type fakeQuoter struct {
	calls  int
	quotes []types.MandiQuote
	err    error
}

func (f *fakeQuoter) MandiPrices(ctx context.Context, q types.MandiQuery) ([]types.MandiQuote, error) {
	f.calls++
	return f.quotes, f.err
}

func fullQuery() types.MandiQuery {
	return types.MandiQuery{State: "Uttrakhand", District: "Haridwar", Market: "Haridwar", Commodity: "Rice"}
}

func TestPrices(t *testing.T) {
	quoter := &fakeQuoter{quotes: []types.MandiQuote{{Commodity: "Rice", MinPrice: "2100"}}}
	svc := NewService(quoter, nil, testLogger())

	quotes, err := svc.Prices(context.Background(), fullQuery())
	if err != nil {
		t.Fatalf("Prices failed: %v", err)
	}
	if len(quotes) != 1 || quotes[0].MinPrice != "2100" {
		t.Errorf("unexpected quotes: %v", quotes)
	}
}

func TestPricesValidationBlocksRemoteCall(t *testing.T) {
	quoter := &fakeQuoter{}
	svc := NewService(quoter, nil, testLogger())

	incomplete := []types.MandiQuery{
		{District: "Haridwar", Market: "Haridwar", Commodity: "Rice"},
		{State: "Uttrakhand", Market: "Haridwar", Commodity: "Rice"},
		{State: "Uttrakhand", District: "Haridwar", Commodity: "Rice"},
		{State: "Uttrakhand", District: "Haridwar", Market: "Haridwar"},
	}
	for _, q := range incomplete {
		if _, err := svc.Prices(context.Background(), q); !errors.Is(err, ErrMissingField) {
			t.Errorf("query %+v: expected ErrMissingField, got %v", q, err)
		}
	}
	if quoter.calls != 0 {
		t.Errorf("validation failures reached the backend %d times", quoter.calls)
	}
}

func TestPricesBackendError(t *testing.T) {
	quoter := &fakeQuoter{err: errors.New("backend down")}
	svc := NewService(quoter, nil, testLogger())

	if _, err := svc.Prices(context.Background(), fullQuery()); err == nil {
		t.Fatal("expected backend error to propagate")
	}
}
