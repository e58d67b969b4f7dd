package store

import (
	"context"
	"errors"

	"github.com/2beens/fitscore/internal/assessment"
)

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=store_test

const (
	DefaultHistoryLimit     = 20
	DefaultLeaderboardLimit = 100
	DefaultEMGHistoryLimit  = 10

	sportAll = "All"
)

// ErrDuplicate is returned when a record with the same id already exists.
var ErrDuplicate = errors.New("duplicate record")

// Store persists attempts, profiles and EMG readings.
// GetProfile returns nil, nil when the profile does not exist.
type Store interface {
	SaveAttempt(ctx context.Context, attempt assessment.Attempt) (*assessment.Attempt, error)
	GetHistory(ctx context.Context, userID string, testType assessment.TestType, limit int) ([]assessment.Attempt, error)
	GetUserStats(ctx context.Context, userID string) (*assessment.UserStats, error)
	GetProfile(ctx context.Context, userID string) (*assessment.Profile, error)
	SaveProfile(ctx context.Context, profile assessment.Profile) (*assessment.Profile, error)
	GetLeaderboard(ctx context.Context, query LeaderboardQuery) ([]assessment.LeaderboardEntry, error)
	SaveEMGReading(ctx context.Context, reading assessment.EMGReading) error
	GetEMGHistory(ctx context.Context, userID string, limit int) ([]assessment.EMGReading, error)
}

type LeaderboardQuery struct {
	Level assessment.LeaderboardLevel
	// Sport filters on the profile sport. Empty and "All" disable the filter.
	Sport string
	// Region is matched against the district or state, depending on Level.
	Region string
	Limit  int
}

func (q LeaderboardQuery) sportFilter() string {
	if q.Sport == sportAll {
		return ""
	}
	return q.Sport
}

func (q LeaderboardQuery) limit() int {
	if q.Limit <= 0 {
		return DefaultLeaderboardLimit
	}
	return q.Limit
}

func historyLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return limit
}

func emgHistoryLimit(limit int) int {
	if limit <= 0 {
		return DefaultEMGHistoryLimit
	}
	return limit
}
