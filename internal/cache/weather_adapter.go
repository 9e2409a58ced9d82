package cache

import (
	"context"

	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/voyage"
	"github.com/saltmarch/voyage-engine/internal/weather"
)

// CachingWeatherAdapter decorates a voyage.WeatherAdapter with a
// per-voyage-day Redis cache, so a voyage resumed after a crash (or
// replayed for a report) doesn't reroll that day's weather. It satisfies
// voyage.WeatherAdapter itself.
type CachingWeatherAdapter struct {
	cache    *WeatherCache
	inner    voyage.WeatherAdapter
	roller   dice.Roller
	voyageID string
	day      func() int
}

// NewCachingWeatherAdapter builds an adapter for one voyage id. day
// reports the voyage's current day so the cache key tracks which day is
// being generated without the adapter owning voyage state itself. inner
// may be nil, in which case voyage.FallbackWeather generates uncached
// misses using roller.
func NewCachingWeatherAdapter(cache *WeatherCache, inner voyage.WeatherAdapter, roller dice.Roller, voyageID string, day func() int) *CachingWeatherAdapter {
	return &CachingWeatherAdapter{cache: cache, inner: inner, roller: roller, voyageID: voyageID, day: day}
}

// GenerateDayWeather returns the cached record for the current day if
// present, otherwise generates one via inner (or FallbackWeather if inner
// is nil) and caches it.
func (a *CachingWeatherAdapter) GenerateDayWeather(ctx context.Context) (weather.Record, error) {
	day := a.day()

	if rec, ok, err := a.cache.Get(ctx, a.voyageID, day); err == nil && ok {
		return rec, nil
	}

	var rec weather.Record
	if a.inner != nil {
		generated, err := a.inner.GenerateDayWeather(ctx)
		if err != nil {
			return weather.Record{}, err
		}
		rec = generated
	} else {
		rec = voyage.FallbackWeather(a.roller)
	}

	if err := a.cache.Set(ctx, a.voyageID, day, rec); err != nil {
		return rec, nil // serve the generated record even if caching failed
	}
	return rec, nil
}
