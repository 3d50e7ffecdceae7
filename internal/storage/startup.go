package storage

import (
	"context"

	"github.com/rs/zerolog"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// CheckConnection pings the database once and logs the outcome. A failure is
// reported through the return value only; the caller keeps running.
func CheckConnection(ctx context.Context, p Pinger, log zerolog.Logger) bool {
	if err := p.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("CheckConnection(): database connection failed")
		return false
	}
	log.Info().Msg("CheckConnection(): database connection established")
	return true
}
