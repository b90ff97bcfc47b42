package weather

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

type fakeForecaster struct {
	nextCalls int
	prevCalls int
	days      []types.DailyWeather
	err       error
}

func (f *fakeForecaster) WeatherNext(ctx context.Context, city string) ([]types.DailyWeather, error) {
	f.nextCalls++
	return f.days, f.err
}

func (f *fakeForecaster) WeatherPrevious(ctx context.Context, city string) ([]types.DailyWeather, error) {
	f.prevCalls++
	return f.days, f.err
}

func TestNextAndPrevious(t *testing.T) {
	fc := &fakeForecaster{days: []types.DailyWeather{{Date: "2026-09-01", TempC: 28, Condition: "Sunny"}}}
	svc := NewService(fc, nil, testLogger())

	days, err := svc.Next(context.Background(), "Haridwar")
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if len(days) != 1 || days[0].Condition != "Sunny" {
		t.Errorf("unexpected days: %v", days)
	}

	if _, err := svc.Previous(context.Background(), "Haridwar"); err != nil {
		t.Fatalf("Previous failed: %v", err)
	}
	if fc.nextCalls != 1 || fc.prevCalls != 1 {
		t.Errorf("unexpected call counts: next=%d prev=%d", fc.nextCalls, fc.prevCalls)
	}
}

func TestMissingCityBlocksRemoteCall(t *testing.T) {
	fc := &fakeForecaster{}
	svc := NewService(fc, nil, testLogger())

	for _, city := range []string{"", "   "} {
		if _, err := svc.Next(context.Background(), city); !errors.Is(err, ErrMissingCity) {
			t.Errorf("city %q: expected ErrMissingCity, got %v", city, err)
		}
	}
	if fc.nextCalls != 0 {
		t.Error("validation failures reached the backend")
	}
}
