package assessment

import "math"

// Badge is the qualitative tier derived from a form score.
// Only the four tiers from Good upwards are stored; NeedsImprovement is a display value.
type Badge string

const (
	BadgeNeedsImprovement Badge = "Needs Improvement"
	BadgeGood             Badge = "Good"
	BadgeDistrictElite    Badge = "District Elite"
	BadgeStateLevel       Badge = "State Level"
	BadgeNationalStandard Badge = "National Standard"
)

const (
	MinFormScore = 0
	MaxFormScore = 100
)

// BadgeForScore clamps the score and returns the matching tier.
func BadgeForScore(score float64) Badge {
	score = ClampFormScore(score)
	switch {
	case score >= 90:
		return BadgeNationalStandard
	case score >= 80:
		return BadgeStateLevel
	case score >= 70:
		return BadgeDistrictElite
	case score >= 50:
		return BadgeGood
	default:
		return BadgeNeedsImprovement
	}
}

func ClampFormScore(score float64) float64 {
	if score < MinFormScore || math.IsNaN(score) {
		return MinFormScore
	}
	if score > MaxFormScore {
		return MaxFormScore
	}
	return score
}

// Persisted reports whether the badge belongs to the stored tier set.
func (b Badge) Persisted() bool {
	return b == BadgeGood || b == BadgeDistrictElite || b == BadgeStateLevel || b == BadgeNationalStandard
}
