package store

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/fitscore/internal/assessment"
)

// Memory keeps everything for the lifetime of the process, newest entries first.
type Memory struct {
	mutex       sync.RWMutex
	attempts    []assessment.Attempt
	profiles    map[string]assessment.Profile
	emgReadings []assessment.EMGReading
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		profiles: map[string]assessment.Profile{},
	}
}

func (m *Memory) SaveAttempt(_ context.Context, attempt assessment.Attempt) (*assessment.Attempt, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.attempts = append([]assessment.Attempt{attempt}, m.attempts...)
	return &attempt, nil
}

func (m *Memory) GetHistory(_ context.Context, userID string, testType assessment.TestType, limit int) ([]assessment.Attempt, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	limit = historyLimit(limit)
	history := []assessment.Attempt{}
	for _, a := range m.attempts {
		if a.UserID != userID {
			continue
		}
		if testType != "" && a.TestType != testType {
			continue
		}
		history = append(history, a)
		if len(history) == limit {
			break
		}
	}

	return history, nil
}

func (m *Memory) GetUserStats(_ context.Context, userID string) (*assessment.UserStats, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var attempts []assessment.Attempt
	for _, a := range m.attempts {
		if a.UserID == userID {
			attempts = append(attempts, a)
		}
	}

	return ComputeUserStats(attempts), nil
}

func (m *Memory) GetProfile(_ context.Context, userID string) (*assessment.Profile, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	profile, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (m *Memory) SaveProfile(_ context.Context, profile assessment.Profile) (*assessment.Profile, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := time.Now().UTC()
	if existing, ok := m.profiles[profile.ID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	m.profiles[profile.ID] = profile
	return &profile, nil
}

func (m *Memory) GetLeaderboard(_ context.Context, query LeaderboardQuery) ([]assessment.LeaderboardEntry, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return RankLeaderboard(m.attempts, m.profiles, query), nil
}

func (m *Memory) SaveEMGReading(_ context.Context, reading assessment.EMGReading) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.emgReadings = append([]assessment.EMGReading{reading}, m.emgReadings...)
	return nil
}

func (m *Memory) GetEMGHistory(_ context.Context, userID string, limit int) ([]assessment.EMGReading, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	limit = emgHistoryLimit(limit)
	readings := []assessment.EMGReading{}
	for _, r := range m.emgReadings {
		if r.UserID != userID {
			continue
		}
		readings = append(readings, r)
		if len(readings) == limit {
			break
		}
	}

	return readings, nil
}
