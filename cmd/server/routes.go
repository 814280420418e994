package main

import (
	"html/template"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nixie-Tech-LLC/namaz/internal/config"
	"github.com/Nixie-Tech-LLC/namaz/internal/db"
	"github.com/Nixie-Tech-LLC/namaz/internal/http/api"
	"github.com/Nixie-Tech-LLC/namaz/internal/http/api/prayers/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, assembler endpoints.Assembler, store db.Store, notifier endpoints.Notifier, tmpl *template.Template) {
	r.SetHTMLTemplate(tmpl)

	allowAll := slices.Contains(cfg.CORSOrigins, "*")
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowAll || slices.Contains(cfg.CORSOrigins, origin)
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
			http.MethodHead,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: true,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix:     "/api",
		Middleware: []gin.HandlerFunc{noStore},
	},
		endpoints.PrayerModule(assembler, store, notifier),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/display",
	},
		endpoints.DisplayModule(assembler),
	)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// noStore keeps clients from caching API responses; adjustments can change
// between two requests for the same date.
func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Next()
}
