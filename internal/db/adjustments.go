package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/namaz/internal/model"
)

func (s *pgStore) SavePrayerAdjustments(ctx context.Context, date string, adjustments []model.PrayerAdjustment) error {
	if adjustments == nil {
		adjustments = []model.PrayerAdjustment{}
	}
	payload, err := json.Marshal(adjustments)
	if err != nil {
		return fmt.Errorf("encode adjustments: %w", err)
	}

	const q = `
	INSERT INTO prayer_adjustments (date, adjustments, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (date) DO UPDATE
	   SET adjustments = EXCLUDED.adjustments,
	       updated_at  = EXCLUDED.updated_at;`
	if _, err := s.db.ExecContext(ctx, q, date, payload); err != nil {
		log.Error().Err(err).Str("date", date).Msg("SavePrayerAdjustments failed")
		return err
	}
	return nil
}

func (s *pgStore) GetPrayerAdjustments(ctx context.Context, date string) ([]model.PrayerAdjustment, error) {
	var payload []byte
	err := s.db.GetContext(ctx, &payload, `SELECT adjustments FROM prayer_adjustments WHERE date = $1;`, date)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.PrayerAdjustment{}, nil
	}
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("GetPrayerAdjustments failed")
		return nil, err
	}

	out := []model.PrayerAdjustment{}
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode adjustments for %s: %w", date, err)
	}
	return out, nil
}

func (s *pgStore) SaveHijriAdjustment(ctx context.Context, date string, dayAdjustment int) error {
	const q = `
	INSERT INTO hijri_adjustments (date, day_adjustment, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (date) DO UPDATE
	   SET day_adjustment = EXCLUDED.day_adjustment,
	       updated_at     = EXCLUDED.updated_at;`
	if _, err := s.db.ExecContext(ctx, q, date, dayAdjustment); err != nil {
		log.Error().Err(err).Str("date", date).Int("day_adjustment", dayAdjustment).Msg("SaveHijriAdjustment failed")
		return err
	}
	return nil
}

func (s *pgStore) GetHijriAdjustment(ctx context.Context, date string) (int, error) {
	var adj int
	err := s.db.GetContext(ctx, &adj, `SELECT day_adjustment FROM hijri_adjustments WHERE date = $1;`, date)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("GetHijriAdjustment failed")
		return 0, err
	}
	return adj, nil
}
