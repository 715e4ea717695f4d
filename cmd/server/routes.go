package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Engineered0/athan-server/internal/aladhan"
	"github.com/Engineered0/athan-server/internal/config"
	"github.com/Engineered0/athan-server/internal/http/api"
	mosquesapi "github.com/Engineered0/athan-server/internal/http/api/mosques/endpoints"
	prayerapi "github.com/Engineered0/athan-server/internal/http/api/prayer/endpoints"
	siteapi "github.com/Engineered0/athan-server/internal/http/api/site/endpoints"
	"github.com/Engineered0/athan-server/internal/http/middleware"
	"github.com/Engineered0/athan-server/internal/overpass"
	"github.com/Engineered0/athan-server/internal/tracker"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, aladhanClient *aladhan.Client, overpassClient *overpass.Client, trk *tracker.Tracker) {
	r.Use(middleware.RequestLogger())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		prayerapi.PrayerModule(aladhanClient, trk, cfg.DefaultCountry),
		mosquesapi.MosquesModule(overpassClient),
		siteapi.SiteModule(),
	)
}
