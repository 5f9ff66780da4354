package weather

import (
	"time"

	"travel-assistant/internal/model"
)

// Config controls the snapshot cache.
type Config struct {
	CacheTTL  time.Duration
	CacheSize int
}

// ErrorKind classifies a failed weather fetch.
type ErrorKind string

const (
	ErrorKindTimeout  ErrorKind = "timeout"
	ErrorKindNotFound ErrorKind = "not_found"
	ErrorKindAPI      ErrorKind = "api_error"
	ErrorKindUnknown  ErrorKind = "unknown"
)

// FetchError is set on a Snapshot when the weather or forecast call failed.
type FetchError struct {
	Kind    ErrorKind
	Message string
}

// Reading is the numeric part of a snapshot.
type Reading struct {
	Temperature float64
	Description string
	Humidity    int
	WindSpeed   float64
}

// TempRange is set for aggregated day forecasts.
type TempRange struct {
	Min float64
	Max float64
}

// Snapshot is one weather result for a place and mode.
//
// A geocoding miss is a soft result: only Message is set. A failed weather call
// sets Err. Climate snapshots for a named month or season carry only Message.
type Snapshot struct {
	Place   string
	Country string
	Mode    model.Mode
	When    string
	Reading *Reading
	Range   *TempRange
	Message string
	Err     *FetchError
}

// Failed reports whether the weather call itself failed.
func (s Snapshot) Failed() bool {
	return s.Err != nil
}

// HasReading reports whether numeric data is present.
func (s Snapshot) HasReading() bool {
	return s.Reading != nil
}
