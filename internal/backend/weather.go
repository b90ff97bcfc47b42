package backend

import (
	"context"
	"net/url"

	"github.com/krishisahayak/app-backend/internal/types"
)

// WeatherNext fetches the seven-day forecast for a city.
func (c *Client) WeatherNext(ctx context.Context, city string) ([]types.DailyWeather, error) {
	return c.weather(ctx, "/weather/next/7days", city)
}

// WeatherPrevious fetches the previous seven days of weather for a city.
func (c *Client) WeatherPrevious(ctx context.Context, city string) ([]types.DailyWeather, error) {
	return c.weather(ctx, "/weather/previous/7days", city)
}

func (c *Client) weather(ctx context.Context, path, city string) ([]types.DailyWeather, error) {
	var days []types.DailyWeather
	q := url.Values{"city": {city}}
	if err := c.getJSON(ctx, path+"?"+q.Encode(), &days); err != nil {
		return nil, err
	}
	return days, nil
}
