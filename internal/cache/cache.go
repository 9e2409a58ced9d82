// Package cache provides Redis caching for voyage simulation lookups that
// are expensive to recompute but cheap to go stale: generated weather for
// a day already simulated, and the set of merchants/offers rolled for a
// port visit already resolved.
package cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saltmarch/voyage-engine/internal/metrics"
	"github.com/saltmarch/voyage-engine/internal/weather"
)

// WeatherCache caches generated weather records keyed by voyage id and day
// number, so a replayed or resumed voyage reproduces the same day instead
// of rerolling it.
type WeatherCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewWeatherCache creates a new weather cache with a default TTL that
// comfortably outlives a single voyage's real-world simulation window.
func NewWeatherCache(redisClient *redis.Client) *WeatherCache {
	return &WeatherCache{redis: redisClient, ttl: 24 * time.Hour}
}

func weatherKey(voyageID string, day int) string {
	return fmt.Sprintf("weather:%s:%d", voyageID, day)
}

// Get retrieves the cached weather record for a voyage day, if any.
func (c *WeatherCache) Get(ctx context.Context, voyageID string, day int) (weather.Record, bool, error) {
	data, err := c.redis.Get(ctx, weatherKey(voyageID, day)).Bytes()
	if err == redis.Nil {
		metrics.CacheMissesTotal.WithLabelValues("weather").Inc()
		return weather.Record{}, false, nil
	}
	if err != nil {
		return weather.Record{}, false, fmt.Errorf("failed to get cached weather: %w", err)
	}
	var rec weather.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return weather.Record{}, false, fmt.Errorf("failed to decode cached weather: %w", err)
	}
	metrics.CacheHitsTotal.WithLabelValues("weather").Inc()
	return rec, true, nil
}

// Set stores the generated weather record for a voyage day.
func (c *WeatherCache) Set(ctx context.Context, voyageID string, day int, rec weather.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode weather: %w", err)
	}
	if err := c.redis.Set(ctx, weatherKey(voyageID, day), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cached weather: %w", err)
	}
	return nil
}

// MerchantOfferCache caches the merchants and cargo offers rolled for a
// port visit, compressed to keep a port's full offer sheet cheap to hold
// across many concurrent voyages calling on the same port the same day.
type MerchantOfferCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewMerchantOfferCache creates a new merchant offer cache.
func NewMerchantOfferCache(redisClient *redis.Client) *MerchantOfferCache {
	return &MerchantOfferCache{redis: redisClient, ttl: 1 * time.Hour}
}

func offerKey(portID string, day int) string {
	return fmt.Sprintf("offers:%s:%d", portID, day)
}

// Offer is one merchant's cargo proposal at a port on a given day.
type Offer struct {
	MerchantIndex int
	Category      string
	PricePerLoad  int
	LoadsOffered  int
}

// Get retrieves the cached offers for a port on a given simulated day.
func (c *MerchantOfferCache) Get(ctx context.Context, portID string, day int) ([]Offer, bool, error) {
	data, err := c.redis.Get(ctx, offerKey(portID, day)).Bytes()
	if err == redis.Nil {
		metrics.CacheMissesTotal.WithLabelValues("merchant_offers").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached offers: %w", err)
	}
	offers, err := decompressOffers(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode cached offers: %w", err)
	}
	metrics.CacheHitsTotal.WithLabelValues("merchant_offers").Inc()
	return offers, true, nil
}

// Set stores the offers rolled for a port on a given simulated day.
func (c *MerchantOfferCache) Set(ctx context.Context, portID string, day int, offers []Offer) error {
	compressed, err := compressOffers(offers)
	if err != nil {
		return fmt.Errorf("failed to compress offers: %w", err)
	}
	if err := c.redis.Set(ctx, offerKey(portID, day), compressed, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cached offers: %w", err)
	}
	return nil
}

func compressOffers(offers []Offer) ([]byte, error) {
	jsonData, err := json.Marshal(offers)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(jsonData); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressOffers(data []byte) ([]Offer, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	jsonData, err := io.ReadAll(gz)
	if err != nil {
		return nil, err
	}
	var offers []Offer
	if err := json.Unmarshal(jsonData, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}
