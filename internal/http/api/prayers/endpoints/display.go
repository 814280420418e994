package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/namaz/internal/http/api"
	"github.com/Nixie-Tech-LLC/namaz/internal/schedule"
)

// DisplayModule serves the schedule as an HTML page for wall screens.
// The engine must have a "schedule.html" template loaded.
func DisplayModule(assembler Assembler) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.Group.GET("/", func(ctx *gin.Context) {
			renderSchedule(ctx, assembler, time.Now().Format(schedule.DateKeyLayout))
		})
		c.Group.GET("/:date", func(ctx *gin.Context) {
			renderSchedule(ctx, assembler, ctx.Param("date"))
		})
	})
}

func renderSchedule(ctx *gin.Context, assembler Assembler, date string) {
	result, err := assembler.Assemble(ctx.Request.Context(), date)
	if err != nil {
		var verr *schedule.ValidationError
		if errors.As(err, &verr) {
			ctx.String(http.StatusBadRequest, verr.Error())
			return
		}
		log.Error().Err(err).Str("date", date).Msg("display assemble failed")
		ctx.String(http.StatusInternalServerError, "failed to get prayer times")
		return
	}
	ctx.HTML(http.StatusOK, "schedule.html", result)
}
