package assessment

import (
	"encoding/json"
	"time"
)

// Attempt is a single analyzed and scored exercise submission.
// Attempts are append only, they are never updated after creation.
type Attempt struct {
	ID              string             `json:"id"`
	UserID          string             `json:"userId"`
	TestType        TestType           `json:"testType"`
	MediaRef        *string            `json:"videoUrl"`
	AnalysisResult  json.RawMessage    `json:"analysisResult"`
	Metrics         map[string]float64 `json:"metrics"`
	FormScore       float64            `json:"formScore"`
	Badge           Badge              `json:"badge"`
	Recommendations []string           `json:"recommendations"`
	CreatedAt       time.Time          `json:"createdAt"`
}

type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Name      string    `json:"name,omitempty" validate:"omitempty,max=120"`
	Age       int       `json:"age,omitempty" validate:"omitempty,gte=5,lte=120"`
	Gender    string    `json:"gender,omitempty" validate:"omitempty,max=32"`
	District  string    `json:"district,omitempty" validate:"omitempty,max=120"`
	State     string    `json:"state,omitempty" validate:"omitempty,max=120"`
	Sport     string    `json:"sport,omitempty" validate:"omitempty,max=64"`
	PhotoRef  string    `json:"photo_url,omitempty" validate:"omitempty,url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LeaderboardLevel string

const (
	LevelDistrict LeaderboardLevel = "district"
	LevelState    LeaderboardLevel = "state"
	LevelNational LeaderboardLevel = "national"
)

func (l LeaderboardLevel) Valid() bool {
	return l == LevelDistrict || l == LevelState || l == LevelNational
}

type LeaderboardEntry struct {
	UserID   string  `json:"userId"`
	Name     string  `json:"name"`
	District string  `json:"district"`
	State    string  `json:"state"`
	Sport    string  `json:"sport"`
	Score    float64 `json:"score"`
	Badge    Badge   `json:"badge"`
	Rank     int     `json:"rank"`
}

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

type UserStats struct {
	TotalAttempts    int                  `json:"totalAttempts"`
	AverageFormScore float64              `json:"averageFormScore"`
	BestPerformances map[TestType]Attempt `json:"bestPerformances"`
	RecentTrend      Trend                `json:"recentTrend"`
	WeeklyProgress   int                  `json:"weeklyProgress"`
}

// EMGReading is a single muscle sensor sample, optionally tied to an attempt.
type EMGReading struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	AttemptID          string    `json:"testAttemptId,omitempty"`
	EMGValue           float64   `json:"emgValue"`
	MuscleActivity     float64   `json:"muscleActivity"`
	FatigueLevel       float64   `json:"fatigueLevel"`
	ActivationDetected bool      `json:"activationDetected"`
	Timestamp          time.Time `json:"timestamp"`
}
