//go:build unit || !integration

package cache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltmarch/voyage-engine/internal/cache"
	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/weather"
)

type fakeWeatherAdapter struct {
	rec   weather.Record
	calls int
}

func (f *fakeWeatherAdapter) GenerateDayWeather(ctx context.Context) (weather.Record, error) {
	f.calls++
	return f.rec, nil
}

func TestCachingWeatherAdapter_SecondCallHitsCacheNotInner(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	wc := cache.NewWeatherCache(client)
	inner := &fakeWeatherAdapter{rec: weather.Record{Sky: "storm"}}

	day := 1
	adapter := cache.NewCachingWeatherAdapter(wc, inner, dice.New(1), "v1", func() int { return day })

	rec1, err := adapter.GenerateDayWeather(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "storm", rec1.Sky)
	assert.Equal(t, 1, inner.calls)

	rec2, err := adapter.GenerateDayWeather(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "storm", rec2.Sky)
	assert.Equal(t, 1, inner.calls, "second call for the same day should be served from cache")
}

func TestCachingWeatherAdapter_NilInnerFallsBack(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	wc := cache.NewWeatherCache(client)

	adapter := cache.NewCachingWeatherAdapter(wc, nil, dice.New(1), "v1", func() int { return 1 })

	rec, err := adapter.GenerateDayWeather(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "partly_cloudy", rec.Sky)
}
