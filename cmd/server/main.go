package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Engineered0/athan-server/internal/aladhan"
	"github.com/Engineered0/athan-server/internal/config"
	"github.com/Engineered0/athan-server/internal/overpass"
	"github.com/Engineered0/athan-server/internal/redis"
	"github.com/Engineered0/athan-server/internal/tracker"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.RedisAddress != "" {
		redis.InitRedis(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	}

	aladhanClient := aladhan.NewClient(cfg.AladhanBaseURL)
	overpassClient := overpass.NewClient(cfg.OverpassBaseURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var trk *tracker.Tracker
	if cfg.DefaultCity != "" {
		trk = tracker.New(aladhanClient, cfg.DefaultCity, cfg.DefaultCountry, aladhan.MethodISNA)
		go trk.Run(ctx)
		log.Info().Str("city", cfg.DefaultCity).Msg("tracking prayer state")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, cfg, aladhanClient, overpassClient, trk)

	log.Info().Str("address", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
