package model

import "strings"

// Category is the classification label assigned to a user question.
type Category string

const (
	CategoryDestination      Category = "DESTINATION"
	CategoryComplexReasoning Category = "COMPLEX_REASONING"
	CategoryPacking          Category = "PACKING"
	CategoryAttractions      Category = "ATTRACTIONS"
	CategoryWeather          Category = "WEATHER"
	CategoryGeneral          Category = "GENERAL"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryDestination,
	CategoryComplexReasoning,
	CategoryPacking,
	CategoryAttractions,
	CategoryWeather,
	CategoryGeneral,
}

// ParseCategory coerces free text to a Category. Unknown values become GENERAL.
func ParseCategory(s string) Category {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c
		}
	}
	return CategoryGeneral
}

// Mode is the weather query kind.
type Mode string

const (
	ModeCurrent  Mode = "current"
	ModeForecast Mode = "forecast"
	ModeClimate  Mode = "climate"
	ModeNone     Mode = "none"
)

// ParseMode coerces free text to a Mode. Unknown values become none.
func ParseMode(s string) Mode {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeCurrent, ModeForecast, ModeClimate:
		return m
	default:
		return ModeNone
	}
}

// Fetchable reports whether the mode triggers a weather lookup.
func (m Mode) Fetchable() bool {
	return m == ModeCurrent || m == ModeForecast || m == ModeClimate
}

// AnalysisResult is the structured decision produced for one user turn.
type AnalysisResult struct {
	Category           Category `json:"category"`
	NeedsWeather       bool     `json:"needs_weather"`
	Mode               Mode     `json:"mode"`
	City               string   `json:"city"`
	Country            string   `json:"country"`
	When               string   `json:"when"`
	NeedsClarification bool     `json:"needs_clarification"`
	Confidence         float64  `json:"confidence"`
	Reason             string   `json:"reason"`
}

// Location returns the city, or the country when no city was extracted.
func (a AnalysisResult) Location() string {
	if a.City != "" {
		return a.City
	}
	return a.Country
}
