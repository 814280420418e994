// Package db persists prayer and Hijri adjustments keyed by date.
package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Nixie-Tech-LLC/namaz/internal/model"
)

// Store persists manual adjustments keyed by DateKey ("27-Aug-2025").
// Saves replace the whole record for a date; the last writer wins.
type Store interface {
	SavePrayerAdjustments(ctx context.Context, date string, adjustments []model.PrayerAdjustment) error
	GetPrayerAdjustments(ctx context.Context, date string) ([]model.PrayerAdjustment, error)

	SaveHijriAdjustment(ctx context.Context, date string, dayAdjustment int) error
	GetHijriAdjustment(ctx context.Context, date string) (int, error)

	Close() error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}

func (s *pgStore) Close() error {
	return s.db.Close()
}
