// Package schedule builds the adjusted daily prayer schedule for a date by
// combining upstream timings, the stored manual adjustments and the Hijri
// date.
package schedule

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/namaz/internal/aladhan"
	"github.com/Nixie-Tech-LLC/namaz/internal/db"
	"github.com/Nixie-Tech-LLC/namaz/internal/hijri"
	"github.com/Nixie-Tech-LLC/namaz/internal/model"
	"github.com/Nixie-Tech-LLC/namaz/internal/prayer"
)

var errEmptyResponse = errors.New("provider returned no data")

// Provider supplies raw timings and the Hijri date for a day.
type Provider interface {
	Fetch(ctx context.Context, date time.Time) (*aladhan.Day, error)
}

type Assembler struct {
	provider Provider
	store    db.Store
	timeout  time.Duration

	now   func() time.Time
	newID func() string
}

func NewAssembler(provider Provider, store db.Store, timeout time.Duration) *Assembler {
	return &Assembler{
		provider: provider,
		store:    store,
		timeout:  timeout,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Assemble returns the adjusted schedule for date ("27-Aug-2025"). The only
// error it returns is a *ValidationError for a malformed date; upstream and
// store read failures degrade to fallback data.
func (a *Assembler) Assemble(ctx context.Context, date string) (*model.DailySchedule, error) {
	day, err := ParseDateKey(date)
	if err != nil {
		return nil, err
	}

	raw := a.fetch(ctx, date, day)
	end := prayer.DeriveEndTimes(raw.Timings)

	adjustments, err := a.store.GetPrayerAdjustments(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("reading prayer adjustments failed, using none")
		adjustments = nil
	}
	dayAdjustment, err := a.store.GetHijriAdjustment(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("reading hijri adjustment failed, using 0")
		dayAdjustment = 0
	}

	month := hijri.NormalizeMonthName(raw.Hijri.Month)
	hDay, hMonth, hYear := hijri.ApplyDayAdjustment(raw.Hijri.Day, hijri.MonthIndex(month), raw.Hijri.Year, dayAdjustment)

	prayers := make([]model.PrayerTime, 0, len(prayer.Names))
	for _, name := range prayer.Names {
		startAdj, endAdj := findAdjustment(adjustments, name)
		prayers = append(prayers, model.PrayerTime{
			ID:              a.newID(),
			Name:            string(name),
			StartTime:       adjustAndFormat(raw.Timings[name], startAdj),
			EndTime:         adjustAndFormat(end[name], endAdj),
			StartAdjustment: startAdj,
			EndAdjustment:   endAdj,
			Adjustment:      startAdj,
		})
	}

	schedulesBuilt.Inc()
	return &model.DailySchedule{
		ID:         a.newID(),
		Date:       date,
		HijriDay:   strconv.Itoa(hDay),
		HijriMonth: hijri.Months[hMonth],
		HijriYear:  strconv.Itoa(hYear),
		Prayers:    prayers,
		CreatedAt:  a.now().UTC(),
	}, nil
}

// fetch asks the provider for the day's data under a bounded timeout and
// falls back to the built-in table and approximate Hijri date on any error.
func (a *Assembler) fetch(ctx context.Context, date string, day time.Time) *aladhan.Day {
	fetchCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	raw, err := a.provider.Fetch(fetchCtx, day)
	if err == nil && raw == nil {
		err = errEmptyResponse
	}
	if err == nil {
		err = raw.Timings.Validate()
	}
	if err == nil {
		return raw
	}

	upstreamFallbacks.Inc()
	log.Warn().Err(err).Str("date", date).Msg("upstream timings unavailable, using fallback")
	return &aladhan.Day{
		Timings: prayer.FallbackTimings(),
		Hijri:   hijri.Approximate(day),
	}
}

// findAdjustment returns the offsets of the first entry naming the prayer.
func findAdjustment(adjustments []model.PrayerAdjustment, name prayer.Name) (int, int) {
	for _, adj := range adjustments {
		if adj.PrayerName == string(name) {
			return adj.Start(), adj.EndAdjustment
		}
	}
	return 0, 0
}

func adjustAndFormat(hhmm string, offset int) string {
	minutes, err := prayer.ToMinutes(hhmm)
	if err != nil {
		return prayer.FormatNoAmPm(hhmm)
	}
	return prayer.FormatNoAmPm(prayer.FormatMinutes(prayer.ApplyOffsetClamped(minutes, offset)))
}
