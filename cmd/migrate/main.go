// Command migrate applies or reverts the upload table schema.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
//	go run ./cmd/migrate version
package main

import (
	"os"

	"ProjectUploadService/internal/config"
	"ProjectUploadService/internal/logger"
	"ProjectUploadService/internal/storage/migrations"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	lg := logger.New(cfg.Log, cfg.Env).With().Str("driver", cfg.Database.Driver).Logger()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = migrations.Up(cfg.Database)
	case "down":
		err = migrations.Down(cfg.Database)
	case "version":
		version, dirty, verr := migrations.Version(cfg.Database)
		if verr == nil {
			lg.Info().Uint("version", version).Bool("dirty", dirty).Msg("schema version")
		}
		err = verr
	default:
		lg.Fatal().Str("command", cmd).Msg("unknown command, expected up|down|version")
	}

	if err != nil {
		lg.Fatal().Err(err).Str("command", cmd).Msg("migration failed")
	}
	lg.Info().Str("command", cmd).Msg("migration done")
}
