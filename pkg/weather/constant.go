package weather

import "time"

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultGeoURL  = "https://api.openweathermap.org/geo/1.0"

	defaultTimeout       = 10 * time.Second
	defaultRetryAttempts = 3
	defaultRetryDelay    = 2 * time.Second
	defaultMaxRetryDelay = 8 * time.Second

	units = "metric"
)
