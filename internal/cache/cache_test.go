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
	"github.com/saltmarch/voyage-engine/internal/weather"
)

func TestWeatherCache_SetGet_RoundTrips(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	c := cache.NewWeatherCache(client)

	rec := weather.Record{Sky: "clear", Wind: weather.Wind{SpeedMPH: 12, Direction: "NE"}}
	require.NoError(t, c.Set(context.Background(), "v1", 3, rec))

	got, ok, err := c.Get(context.Background(), "v1", 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, rec, got)
}

func TestWeatherCache_Get_MissReturnsFalse(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	c := cache.NewWeatherCache(client)

	_, ok, err := c.Get(context.Background(), "v1", 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMerchantOfferCache_SetGet_RoundTrips(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	c := cache.NewMerchantOfferCache(client)

	offers := []cache.Offer{
		{MerchantIndex: 0, Category: "comfort", PricePerLoad: 150, LoadsOffered: 4},
		{MerchantIndex: 1, Category: "fine", PricePerLoad: 400, LoadsOffered: 1},
	}
	require.NoError(t, c.Set(context.Background(), "port-1", 10, offers))

	got, ok, err := c.Get(context.Background(), "port-1", 10)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, offers, got)
}
