package endpoints

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/namaz/internal/db"
	"github.com/Nixie-Tech-LLC/namaz/internal/http/api"
	"github.com/Nixie-Tech-LLC/namaz/internal/http/api/prayers/packets"
	"github.com/Nixie-Tech-LLC/namaz/internal/model"
	"github.com/Nixie-Tech-LLC/namaz/internal/schedule"
)

const (
	KindPrayers = "prayers"
	KindHijri   = "hijri"
)

// Assembler builds the schedule for a DateKey.
type Assembler interface {
	Assemble(ctx context.Context, date string) (*model.DailySchedule, error)
}

// Notifier is told about every adjustment that was saved.
type Notifier interface {
	AdjustmentSaved(ctx context.Context, date, kind string) error
}

type PrayerController struct {
	assembler Assembler
	store     db.Store
	notifier  Notifier
}

func NewPrayerController(assembler Assembler, store db.Store, notifier Notifier) *PrayerController {
	return &PrayerController{assembler: assembler, store: store, notifier: notifier}
}

func PrayerModule(assembler Assembler, store db.Store, notifier Notifier) api.Module {
	ctl := NewPrayerController(assembler, store, notifier)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/", ctl.root)

		c.GET("/prayer-times/:date", ctl.getPrayerTimes)

		c.POST("/adjust-prayers/:date", ctl.adjustPrayers)
		c.GET("/adjustments/:date", ctl.getAdjustments)

		c.POST("/adjust-hijri/:date", ctl.adjustHijri)
		c.GET("/hijri-adjustment/:date", ctl.getHijriAdjustment)
	})
}

func (p *PrayerController) root(ctx *gin.Context) (any, *api.Error) {
	return packets.MessageResponse{Message: "Namaz Timing App API"}, nil
}

func (p *PrayerController) getPrayerTimes(ctx *gin.Context) (any, *api.Error) {
	result, err := p.assembler.Assemble(ctx.Request.Context(), ctx.Param("date"))
	if err != nil {
		var verr *schedule.ValidationError
		if errors.As(err, &verr) {
			return nil, api.BadRequest(verr.Error())
		}
		log.Error().Err(err).Str("date", ctx.Param("date")).Msg("assemble failed")
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not build prayer times"}
	}
	return result, nil
}

func (p *PrayerController) adjustPrayers(ctx *gin.Context) (any, *api.Error) {
	date, apiErr := dateParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.AdjustPrayersRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	if err := p.store.SavePrayerAdjustments(ctx.Request.Context(), date, request.ToModel()); err != nil {
		return nil, api.BadRequest("could not save adjustments: " + err.Error())
	}
	p.notify(ctx, date, KindPrayers)

	log.Info().Str("date", date).Int("count", len(request.Adjustments)).Msg("prayer adjustments saved")
	return packets.MessageResponse{Message: "Adjustments saved successfully"}, nil
}

func (p *PrayerController) getAdjustments(ctx *gin.Context) (any, *api.Error) {
	date, apiErr := dateParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	adjustments, err := p.store.GetPrayerAdjustments(ctx.Request.Context(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("reading adjustments failed")
		adjustments = []model.PrayerAdjustment{}
	}
	return adjustments, nil
}

func (p *PrayerController) adjustHijri(ctx *gin.Context) (any, *api.Error) {
	date, apiErr := dateParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.AdjustHijriRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	if err := p.store.SaveHijriAdjustment(ctx.Request.Context(), date, request.DayAdjustment); err != nil {
		return nil, api.BadRequest("could not save hijri adjustment: " + err.Error())
	}
	p.notify(ctx, date, KindHijri)

	log.Info().Str("date", date).Int("day_adjustment", request.DayAdjustment).Msg("hijri adjustment saved")
	return packets.MessageResponse{Message: "Hijri adjustment saved successfully"}, nil
}

func (p *PrayerController) getHijriAdjustment(ctx *gin.Context) (any, *api.Error) {
	date, apiErr := dateParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	day, err := p.store.GetHijriAdjustment(ctx.Request.Context(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("reading hijri adjustment failed")
		day = 0
	}
	return packets.HijriAdjustmentResponse{DayAdjustment: day}, nil
}

// notify reports a saved adjustment. The save already succeeded, so a
// failed publish is only logged.
func (p *PrayerController) notify(ctx *gin.Context, date, kind string) {
	if p.notifier == nil {
		return
	}
	if err := p.notifier.AdjustmentSaved(ctx.Request.Context(), date, kind); err != nil {
		log.Warn().Err(err).Str("date", date).Str("kind", kind).Msg("adjustment notification failed")
	}
}

func dateParam(ctx *gin.Context) (string, *api.Error) {
	date := ctx.Param("date")
	if _, err := schedule.ParseDateKey(date); err != nil {
		return "", api.BadRequest(err.Error())
	}
	return date, nil
}
