package store

import (
	"math"
	"sort"

	"github.com/2beens/fitscore/internal/assessment"
)

const (
	defaultRegion = "Unknown"
	defaultSport  = "Athletics"
)

// ComputeUserStats aggregates the attempts of one user.
func ComputeUserStats(attempts []assessment.Attempt) *assessment.UserStats {
	stats := &assessment.UserStats{
		TotalAttempts:    len(attempts),
		BestPerformances: map[assessment.TestType]assessment.Attempt{},
		// no trend computation yet, clients rely on the field being present
		RecentTrend:    assessment.TrendStable,
		WeeklyProgress: min(100, len(attempts)*10),
	}
	if len(attempts) == 0 {
		return stats
	}

	var sum float64
	for _, a := range attempts {
		sum += a.FormScore
		best, ok := stats.BestPerformances[a.TestType]
		if !ok || a.FormScore > best.FormScore ||
			(a.FormScore == best.FormScore && a.CreatedAt.After(best.CreatedAt)) {
			stats.BestPerformances[a.TestType] = a
		}
	}
	stats.AverageFormScore = math.Round(sum / float64(len(attempts)))

	return stats
}

// RankLeaderboard builds the ranked leaderboard out of all attempts and the known profiles.
// Users without attempts never show up. Missing profile fields get display defaults, and the
// sport and region filters apply to those effective values.
func RankLeaderboard(attempts []assessment.Attempt, profiles map[string]assessment.Profile, query LeaderboardQuery) []assessment.LeaderboardEntry {
	best := map[string]assessment.Attempt{}
	for _, a := range attempts {
		current, ok := best[a.UserID]
		if !ok || a.FormScore > current.FormScore ||
			(a.FormScore == current.FormScore && a.CreatedAt.Before(current.CreatedAt)) {
			best[a.UserID] = a
		}
	}

	sport := query.sportFilter()
	entries := make([]assessment.LeaderboardEntry, 0, len(best))
	achievedAt := map[string]int64{}
	for userID, bestAttempt := range best {
		entry := leaderboardEntry(userID, profiles[userID], bestAttempt)
		if sport != "" && entry.Sport != sport {
			continue
		}
		if !matchesRegion(entry, query.Level, query.Region) {
			continue
		}
		achievedAt[userID] = bestAttempt.CreatedAt.UnixNano()
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		ti, tj := achievedAt[entries[i].UserID], achievedAt[entries[j].UserID]
		if ti != tj {
			return ti < tj
		}
		return entries[i].UserID < entries[j].UserID
	})

	if limit := query.limit(); len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

func leaderboardEntry(userID string, profile assessment.Profile, bestAttempt assessment.Attempt) assessment.LeaderboardEntry {
	entry := assessment.LeaderboardEntry{
		UserID:   userID,
		Name:     profile.Name,
		District: profile.District,
		State:    profile.State,
		Sport:    profile.Sport,
		Score:    bestAttempt.FormScore,
		Badge:    bestAttempt.Badge,
	}
	if entry.Name == "" {
		entry.Name = DefaultDisplayName(userID)
	}
	if entry.District == "" {
		entry.District = defaultRegion
	}
	if entry.State == "" {
		entry.State = defaultRegion
	}
	if entry.Sport == "" {
		entry.Sport = defaultSport
	}
	if entry.Badge == "" {
		entry.Badge = assessment.BadgeForScore(entry.Score)
	}
	return entry
}

func matchesRegion(entry assessment.LeaderboardEntry, level assessment.LeaderboardLevel, region string) bool {
	if region == "" {
		return true
	}
	switch level {
	case assessment.LevelDistrict:
		return entry.District == region
	case assessment.LevelState:
		return entry.State == region
	default:
		return true
	}
}

// DefaultDisplayName is the name shown for users without a profile name.
func DefaultDisplayName(userID string) string {
	if len(userID) > 8 {
		userID = userID[:8]
	}
	return "User " + userID
}
