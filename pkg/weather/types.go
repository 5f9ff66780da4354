package weather

import "time"

// Config holds OpenWeatherMap client settings. Zero values fall back to defaults.
type Config struct {
	APIKey        string
	BaseURL       string
	GeoURL        string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	MaxRetryDelay time.Duration
}

// GeoLocation is one match from the direct geocoding endpoint.
type GeoLocation struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}

// Condition is one entry of the "weather" array.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

// MainReadings carries the temperature block of a reading.
type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
}

// CurrentResponse is the /weather payload.
type CurrentResponse struct {
	Name    string       `json:"name"`
	Main    MainReadings `json:"main"`
	Weather []Condition  `json:"weather"`
	Wind    Wind         `json:"wind"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// Description returns the first condition description, or "".
func (r CurrentResponse) Description() string {
	if len(r.Weather) == 0 {
		return ""
	}
	return r.Weather[0].Description
}

// ForecastEntry is one 3-hour bucket of the /forecast payload.
type ForecastEntry struct {
	Dt      int64        `json:"dt"`
	Main    MainReadings `json:"main"`
	Weather []Condition  `json:"weather"`
	DtTxt   string       `json:"dt_txt"`
}

// Description returns the first condition description, or "".
func (e ForecastEntry) Description() string {
	if len(e.Weather) == 0 {
		return ""
	}
	return e.Weather[0].Description
}

// ForecastResponse is the /forecast payload: ordered 3-hour predictions.
type ForecastResponse struct {
	List []ForecastEntry `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}
