package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/namaz/internal/hijri"
	"github.com/Nixie-Tech-LLC/namaz/internal/prayer"
)

type countingFetcher struct {
	calls int
	day   *Day
	err   error
}

func (f *countingFetcher) Fetch(context.Context, time.Time) (*Day, error) {
	f.calls++
	return f.day, f.err
}

// mapCache mimics the JSON round trip the redis cache performs.
type mapCache struct {
	data    map[string][]byte
	failGet bool
}

func (m *mapCache) Get(_ context.Context, key string, out any) (bool, error) {
	if m.failGet {
		return false, errors.New("connection refused")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *mapCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func sampleDay() *Day {
	return &Day{
		Timings: prayer.FallbackTimings(),
		Hijri:   hijri.Date{Day: 3, Month: "Rabīʿ al-awwal", Year: 1447},
	}
}

func TestCachedClient_HitSkipsUpstream(t *testing.T) {
	next := &countingFetcher{day: sampleDay()}
	c := NewCachedClient(next, &mapCache{data: map[string][]byte{}}, time.Hour)
	date := time.Date(2025, time.August, 27, 0, 0, 0, 0, time.UTC)

	first, err := c.Fetch(context.Background(), date)
	require.NoError(t, err)
	second, err := c.Fetch(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)
}

func TestCachedClient_FailuresNotCached(t *testing.T) {
	next := &countingFetcher{err: errors.New("down")}
	cache := &mapCache{data: map[string][]byte{}}
	c := NewCachedClient(next, cache, time.Hour)

	_, err := c.Fetch(context.Background(), time.Now())
	assert.Error(t, err)
	assert.Empty(t, cache.data)
}

func TestCachedClient_BrokenCacheFallsThrough(t *testing.T) {
	next := &countingFetcher{day: sampleDay()}
	c := NewCachedClient(next, &mapCache{data: map[string][]byte{}, failGet: true}, time.Hour)

	day, err := c.Fetch(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, sampleDay(), day)
	assert.Equal(t, 1, next.calls)
}
