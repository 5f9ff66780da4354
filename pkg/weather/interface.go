package weather

import "context"

// IWeather is the OpenWeatherMap surface the weather provider depends on.
type IWeather interface {
	Geocode(ctx context.Context, query string) ([]GeoLocation, error)
	Current(ctx context.Context, lat, lon float64) (*CurrentResponse, error)
	Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error)
}
