package main

import (
	"context"
	"runtime"

	"github.com/omapatel2503/UptradeX-Trading-Platform/config"
	"github.com/omapatel2503/UptradeX-Trading-Platform/database"
	"github.com/omapatel2503/UptradeX-Trading-Platform/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	cfg, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().AnErr("Error loading configuration: ", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	mongoClient, db := database.InitMongoClient(cfg)
	defer mongoClient.Disconnect(context.Background())

	router := routes.SetupRouter(db, cfg)

	log.Info().Msgf("Server starting on port %s", cfg.Port)
	if err := router.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatal().AnErr("Server failed to start: ", err)
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
