package db

import (
	"context"
	"slices"
	"sync"

	"github.com/Nixie-Tech-LLC/namaz/internal/model"
)

// memStore keeps adjustments in process memory. Used by tests and by the
// "memory" store driver for local runs without PostgreSQL.
type memStore struct {
	mu     sync.RWMutex
	prayer map[string][]model.PrayerAdjustment
	hijri  map[string]int
}

var _ Store = (*memStore)(nil)

func NewMemoryStore() Store {
	return &memStore{
		prayer: make(map[string][]model.PrayerAdjustment),
		hijri:  make(map[string]int),
	}
}

func (m *memStore) SavePrayerAdjustments(_ context.Context, date string, adjustments []model.PrayerAdjustment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prayer[date] = slices.Clone(adjustments)
	return nil
}

func (m *memStore) GetPrayerAdjustments(_ context.Context, date string) ([]model.PrayerAdjustment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := slices.Clone(m.prayer[date])
	if out == nil {
		out = []model.PrayerAdjustment{}
	}
	return out, nil
}

func (m *memStore) SaveHijriAdjustment(_ context.Context, date string, dayAdjustment int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hijri[date] = dayAdjustment
	return nil
}

func (m *memStore) GetHijriAdjustment(_ context.Context, date string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hijri[date], nil
}

func (m *memStore) Close() error { return nil }
