package store

import (
	"context"
	"errors"

	"github.com/2beens/fitscore/internal/assessment"
	"github.com/2beens/fitscore/internal/telemetry/metrics"
	"github.com/2beens/fitscore/pkg"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Fallback serves every call from the primary store and repeats it once on the
// secondary store when the primary fails. Callers only see an error when both fail.
type Fallback struct {
	primary        Store
	secondary      Store
	metricsManager *metrics.Manager
}

var _ Store = (*Fallback)(nil)

func NewFallback(primary, secondary Store, metricsManager *metrics.Manager) *Fallback {
	return &Fallback{
		primary:        primary,
		secondary:      secondary,
		metricsManager: metricsManager,
	}
}

func (f *Fallback) onPrimaryFailure(op string, err error) {
	entry := log.WithFields(log.Fields{
		"op":    op,
		"error": err,
	})
	// an unreachable db is expected while postgres is down, anything else is reported
	if pkg.IsConnectionError(err) {
		entry.Warnln("primary store unreachable, using fallback store")
	} else {
		entry.Errorln("primary store failed, using fallback store")
	}
	f.metricsManager.CounterStoreFallbacks.WithLabelValues(op).Inc()
}

func withFallback[T any](f *Fallback, op string, call func(Store) (T, error)) (T, error) {
	res, primaryErr := call(f.primary)
	if primaryErr == nil {
		return res, nil
	}
	// the primary answered, there is nothing to fall back from
	if errors.Is(primaryErr, ErrDuplicate) {
		var zero T
		return zero, primaryErr
	}
	f.onPrimaryFailure(op, primaryErr)

	res, secondaryErr := call(f.secondary)
	if secondaryErr != nil {
		var zero T
		return zero, multierr.Combine(primaryErr, secondaryErr)
	}
	return res, nil
}

func (f *Fallback) SaveAttempt(ctx context.Context, attempt assessment.Attempt) (*assessment.Attempt, error) {
	return withFallback(f, "save_attempt", func(s Store) (*assessment.Attempt, error) {
		return s.SaveAttempt(ctx, attempt)
	})
}

func (f *Fallback) GetHistory(ctx context.Context, userID string, testType assessment.TestType, limit int) ([]assessment.Attempt, error) {
	return withFallback(f, "get_history", func(s Store) ([]assessment.Attempt, error) {
		return s.GetHistory(ctx, userID, testType, limit)
	})
}

func (f *Fallback) GetUserStats(ctx context.Context, userID string) (*assessment.UserStats, error) {
	return withFallback(f, "get_user_stats", func(s Store) (*assessment.UserStats, error) {
		return s.GetUserStats(ctx, userID)
	})
}

func (f *Fallback) GetProfile(ctx context.Context, userID string) (*assessment.Profile, error) {
	return withFallback(f, "get_profile", func(s Store) (*assessment.Profile, error) {
		return s.GetProfile(ctx, userID)
	})
}

func (f *Fallback) SaveProfile(ctx context.Context, profile assessment.Profile) (*assessment.Profile, error) {
	return withFallback(f, "save_profile", func(s Store) (*assessment.Profile, error) {
		return s.SaveProfile(ctx, profile)
	})
}

func (f *Fallback) GetLeaderboard(ctx context.Context, query LeaderboardQuery) ([]assessment.LeaderboardEntry, error) {
	return withFallback(f, "get_leaderboard", func(s Store) ([]assessment.LeaderboardEntry, error) {
		return s.GetLeaderboard(ctx, query)
	})
}

func (f *Fallback) SaveEMGReading(ctx context.Context, reading assessment.EMGReading) error {
	_, err := withFallback(f, "save_emg_reading", func(s Store) (struct{}, error) {
		return struct{}{}, s.SaveEMGReading(ctx, reading)
	})
	return err
}

func (f *Fallback) GetEMGHistory(ctx context.Context, userID string, limit int) ([]assessment.EMGReading, error) {
	return withFallback(f, "get_emg_history", func(s Store) ([]assessment.EMGReading, error) {
		return s.GetEMGHistory(ctx, userID, limit)
	})
}
