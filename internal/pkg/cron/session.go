package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/pkg/clock"
)

// RevocationStore is the part of the session service that keeps logged out tokens.
type RevocationStore interface {
	PruneRevoked(now time.Time) int
}

type SessionJobs struct {
	store RevocationStore
	clock clock.Clock
}

func NewSessionJobs(store RevocationStore, clk clock.Clock) *SessionJobs {
	return &SessionJobs{store: store, clock: clk}
}

// PruneRevokedTokens drops revoked tokens whose expiry has passed.
func (j *SessionJobs) PruneRevokedTokens(ctx context.Context) error {
	if n := j.store.PruneRevoked(j.clock.Now()); n > 0 {
		slog.InfoContext(ctx, "Pruned revoked session tokens", "count", n)
	}
	return nil
}
