package weather

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"travel-assistant/internal/model"
	pkgWeather "travel-assistant/pkg/weather"
)

var titleCaser = cases.Title(language.English)

func (p *provider) forecast(ctx context.Context, loc pkgWeather.GeoLocation, place, country, when string) Snapshot {
	fc, err := p.client.Forecast(ctx, loc.Lat, loc.Lon)
	if err != nil {
		return p.failed(ctx, place, model.ModeForecast, err)
	}
	if len(fc.List) == 0 {
		return Snapshot{Message: fmt.Sprintf(msgForecastEmpty, place)}
	}

	snap := Snapshot{Place: place, Country: country, Mode: model.ModeForecast, When: when}
	norm := strings.ToLower(strings.TrimSpace(when))

	switch {
	case norm == "tomorrow" || norm == "next day":
		entries := window(fc.List, bucketsPerDay, 2*bucketsPerDay)
		if len(entries) == 0 {
			return Snapshot{Message: fmt.Sprintf(msgForecastTomorrowEmpty, place)}
		}
		agg := aggregate(entries)
		snap.Reading = &Reading{
			Temperature: round1(agg.meanTemp),
			Description: agg.description,
			Humidity:    int(math.Round(agg.meanHumidity)),
		}
		snap.Range = &TempRange{Min: round1(agg.minTemp), Max: round1(agg.maxTemp)}
		snap.Message = fmt.Sprintf(msgForecastTomorrow, place)

	case norm != "":
		agg := aggregate(window(fc.List, 0, bucketsPerDay))
		snap.Reading = &Reading{Temperature: round1(agg.meanTemp), Description: agg.description}
		snap.Message = fmt.Sprintf(msgForecastWhen, when, place)

	default:
		agg := aggregate(window(fc.List, 0, bucketsPerDay))
		snap.Reading = &Reading{Temperature: round1(agg.meanTemp), Description: agg.description}
		snap.Message = fmt.Sprintf(msgForecastNext24Hours, place)
	}

	return snap
}

// climate answers named months and seasons from the season table without any
// numeric data. Only an absent time reference reads the forecast.
func (p *provider) climate(ctx context.Context, loc pkgWeather.GeoLocation, place, country, when string) Snapshot {
	snap := Snapshot{Place: place, Country: country, Mode: model.ModeClimate, When: when}

	if strings.TrimSpace(when) != "" {
		if season, ok := SeasonFor(when); ok {
			snap.Message = fmt.Sprintf(msgClimateSeason, titleCaser.String(when), place, seasonInfo[season])
		} else {
			snap.Message = fmt.Sprintf(msgClimateGeneric, when, place)
		}
		return snap
	}

	fc, err := p.client.Forecast(ctx, loc.Lat, loc.Lon)
	if err != nil {
		return p.failed(ctx, place, model.ModeClimate, err)
	}
	if len(fc.List) == 0 {
		return Snapshot{Message: fmt.Sprintf(msgClimateNoData, place)}
	}

	agg := aggregate(window(fc.List, 0, bucketsPerDay))
	snap.Message = fmt.Sprintf(msgClimateAverage, place, agg.meanTemp, agg.description)
	return snap
}

// SeasonFor maps a free-form time reference to winter, spring, summer or autumn
// by case-insensitive substring match against month and season names.
func SeasonFor(when string) (string, bool) {
	norm := strings.ToLower(strings.TrimSpace(when))
	for _, e := range monthSeasons {
		if strings.Contains(norm, e.token) {
			return e.season, true
		}
	}
	return "", false
}

type aggregation struct {
	meanTemp     float64
	minTemp      float64
	maxTemp      float64
	meanHumidity float64
	description  string
}

// aggregate summarizes non-empty entries. Ties for the most frequent
// description go to the one seen first.
func aggregate(entries []pkgWeather.ForecastEntry) aggregation {
	agg := aggregation{minTemp: math.Inf(1), maxTemp: math.Inf(-1)}

	counts := make(map[string]int, len(entries))
	var order []string
	var sumTemp, sumHumidity float64

	for _, e := range entries {
		t := e.Main.Temp
		sumTemp += t
		sumHumidity += float64(e.Main.Humidity)
		agg.minTemp = math.Min(agg.minTemp, t)
		agg.maxTemp = math.Max(agg.maxTemp, t)

		d := e.Description()
		if counts[d] == 0 {
			order = append(order, d)
		}
		counts[d]++
	}

	n := float64(len(entries))
	agg.meanTemp = sumTemp / n
	agg.meanHumidity = sumHumidity / n

	best := 0
	for _, d := range order {
		if counts[d] > best {
			best = counts[d]
			agg.description = d
		}
	}
	return agg
}

func window(list []pkgWeather.ForecastEntry, from, to int) []pkgWeather.ForecastEntry {
	if from >= len(list) {
		return nil
	}
	if to > len(list) {
		to = len(list)
	}
	return list[from:to]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
