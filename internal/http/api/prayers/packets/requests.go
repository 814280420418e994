package packets

import "github.com/Nixie-Tech-LLC/namaz/internal/model"

// REQUESTS FOR /api/adjust-*

// PrayerAdjustmentItem is one adjustment as posted by a client. Offsets left
// out of the body are zero.
type PrayerAdjustmentItem struct {
	PrayerName      string `json:"prayer_name"`
	StartAdjustment int    `json:"start_adjustment"`
	EndAdjustment   int    `json:"end_adjustment"`
	Adjustment      int    `json:"adjustment"`
}

// ToModel always records the start offset so the stored item never looks
// like one written before start_adjustment existed.
func (i PrayerAdjustmentItem) ToModel() model.PrayerAdjustment {
	start := i.StartAdjustment
	return model.PrayerAdjustment{
		PrayerName:      i.PrayerName,
		StartAdjustment: &start,
		EndAdjustment:   i.EndAdjustment,
		Adjustment:      i.Adjustment,
	}
}

type AdjustPrayersRequest struct {
	Adjustments []PrayerAdjustmentItem `json:"adjustments" binding:"required"`
}

func (r AdjustPrayersRequest) ToModel() []model.PrayerAdjustment {
	out := make([]model.PrayerAdjustment, 0, len(r.Adjustments))
	for _, item := range r.Adjustments {
		out = append(out, item.ToModel())
	}
	return out
}

// AdjustHijriRequest bounds the day offset to roughly 27 years either way.
type AdjustHijriRequest struct {
	DayAdjustment int `json:"day_adjustment" binding:"min=-10000,max=10000"`
}
