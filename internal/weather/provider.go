package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/metrics"
	pkgWeather "travel-assistant/pkg/weather"
)

// Fetch returns a snapshot for place. Modes other than forecast and climate are served as current.
func (p *provider) Fetch(ctx context.Context, place string, mode model.Mode, when string) Snapshot {
	if mode != model.ModeForecast && mode != model.ModeClimate {
		mode = model.ModeCurrent
	}

	key := cacheKey(place, mode, when)
	if snap, ok := p.cache.Get(key); ok {
		p.l.Infof(ctx, "%s: using cached weather data for %s", LogPrefixFetch, place)
		p.metrics.ObserveWeather(string(mode), metrics.WeatherHit)
		return snap
	}

	snap := p.fetch(ctx, place, mode, when)

	switch {
	case snap.Failed():
		p.l.Warnf(ctx, "%s: %s weather for %s failed: %s", LogPrefixFetch, mode, place, snap.Err.Kind)
		p.metrics.ObserveWeather(string(mode), metrics.WeatherError)
	case snap.Mode == "":
		p.metrics.ObserveWeather(string(mode), metrics.WeatherSoftMiss)
		snap.Place, snap.Mode = place, mode
	default:
		p.metrics.ObserveWeather(string(mode), metrics.WeatherMiss)
		p.cache.Add(key, snap)
	}
	return snap
}

// cacheKey is place and mode, plus the time reference for forecast and climate.
func cacheKey(place string, mode model.Mode, when string) string {
	key := strings.ToLower(strings.TrimSpace(place)) + "|" + string(mode)
	if mode != model.ModeCurrent {
		key += "|" + strings.ToLower(strings.TrimSpace(when))
	}
	return key
}

// fetch returns a snapshot with an empty Mode for soft misses that must not be cached.
func (p *provider) fetch(ctx context.Context, place string, mode model.Mode, when string) Snapshot {
	locs, err := p.client.Geocode(ctx, place)
	if err != nil {
		p.l.Errorf(ctx, "%s: geocode %s: %v", LogPrefixFetch, place, err)
		if errors.Is(err, pkgWeather.ErrTimeout) {
			return Snapshot{Message: fmt.Sprintf(msgGeocodeTimeout, place)}
		}
		return Snapshot{Message: fmt.Sprintf(msgGeocodeUnavailable, place)}
	}
	if len(locs) == 0 {
		return Snapshot{Message: fmt.Sprintf(msgLocationNotFound, place)}
	}

	loc := locs[0]
	country := loc.Country
	if country == "" {
		country = unknownCountry
	}

	switch mode {
	case model.ModeForecast:
		return p.forecast(ctx, loc, place, country, when)
	case model.ModeClimate:
		return p.climate(ctx, loc, place, country, when)
	default:
		return p.current(ctx, loc, place)
	}
}

func (p *provider) current(ctx context.Context, loc pkgWeather.GeoLocation, place string) Snapshot {
	cur, err := p.client.Current(ctx, loc.Lat, loc.Lon)
	if err != nil {
		return p.failed(ctx, place, model.ModeCurrent, err)
	}

	name := cur.Name
	if name == "" {
		name = place
	}
	return Snapshot{
		Place:   name,
		Country: cur.Sys.Country,
		Mode:    model.ModeCurrent,
		Reading: &Reading{
			Temperature: cur.Main.Temp,
			Description: cur.Description(),
			Humidity:    cur.Main.Humidity,
			WindSpeed:   cur.Wind.Speed,
		},
	}
}

func (p *provider) failed(ctx context.Context, place string, mode model.Mode, err error) Snapshot {
	p.l.Errorf(ctx, "%s: %s %s: %v", LogPrefixFetch, mode, place, err)

	fe := &FetchError{}
	switch {
	case errors.Is(err, pkgWeather.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		fe.Kind, fe.Message = ErrorKindTimeout, msgTimeout
	case errors.Is(err, pkgWeather.ErrNotFound):
		fe.Kind, fe.Message = ErrorKindNotFound, fmt.Sprintf(msgNotFound, place)
	case errors.Is(err, pkgWeather.ErrMalformed):
		fe.Kind, fe.Message = ErrorKindUnknown, pick(mode, msgWeatherUnknown, msgForecastUnknown)
	default:
		fe.Kind, fe.Message = ErrorKindAPI, pick(mode, msgWeatherUnavailable, msgForecastUnavailable)
	}
	return Snapshot{Place: place, Mode: mode, Err: fe, Message: fe.Message}
}

func pick(mode model.Mode, current, forecast string) string {
	if mode == model.ModeCurrent {
		return current
	}
	return forecast
}
