package packets

// RESPONSES FOR /api/*

type MessageResponse struct {
	Message string `json:"message"`
}

type HijriAdjustmentResponse struct {
	DayAdjustment int `json:"day_adjustment"`
}
