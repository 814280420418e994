package model

import "time"

// PrayerAdjustment is one stored manual correction for a prayer on a date.
// StartAdjustment is nil only for records stored before the field existed;
// those fall back to the legacy Adjustment.
type PrayerAdjustment struct {
	PrayerName      string `json:"prayer_name"`
	StartAdjustment *int   `json:"start_adjustment,omitempty"`
	EndAdjustment   int    `json:"end_adjustment"`
	Adjustment      int    `json:"adjustment"` // deprecated, start offset for old clients
}

// Start returns the start offset in minutes, falling back to the legacy field.
func (a PrayerAdjustment) Start() int {
	if a.StartAdjustment != nil {
		return *a.StartAdjustment
	}
	return a.Adjustment
}

type HijriAdjustment struct {
	DayAdjustment int `json:"day_adjustment"`
}

type PrayerTime struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	StartTime       string `json:"start_time"` // "5:40"
	EndTime         string `json:"end_time"`
	StartAdjustment int    `json:"start_adjustment"`
	EndAdjustment   int    `json:"end_adjustment"`
	Adjustment      int    `json:"adjustment"` // mirrors StartAdjustment
}

// DailySchedule is the adjusted, display-ready timetable for one DateKey.
type DailySchedule struct {
	ID         string       `json:"id"`
	Date       string       `json:"date"`       // "27-Aug-2025"
	HijriDay   string       `json:"hijri_date"` // adjusted day of month
	HijriMonth string       `json:"hijri_month"`
	HijriYear  string       `json:"hijri_year"`
	Prayers    []PrayerTime `json:"prayers"`
	CreatedAt  time.Time    `json:"created_at"`
}
