package main

import (
	"research_hub_go_backend/internal/api"
	"research_hub_go_backend/internal/config"
	"research_hub_go_backend/internal/services"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	config.ConfigureLogger(cfg)

	searchService := services.NewSearchServiceFromConfig(cfg)
	r := api.NewRouter(cfg, searchService)

	log.Info().
		Str("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Dur("upstream_timeout", cfg.UpstreamTimeout).
		Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
