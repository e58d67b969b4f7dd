package training

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/fitscore/internal/assessment"
)

type Plan struct {
	Name       string     `json:"name" validate:"required,max=200"`
	Difficulty string     `json:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration   string     `json:"duration"`
	Focus      []string   `json:"focus"`
	Exercises  []Exercise `json:"exercises" validate:"required,min=1,dive"`
	Schedule   string     `json:"schedule"`
}

type Exercise struct {
	Name  string      `json:"name" validate:"required"`
	Sets  looseInt    `json:"sets"`
	Reps  looseString `json:"reps"`
	Rest  looseString `json:"rest"`
	Notes string      `json:"notes,omitempty"`
}

// BasicPlan is served whenever a personalised plan cannot be generated.
func BasicPlan() Plan {
	return Plan{
		Name:       "Basic Fitness Plan",
		Difficulty: "Intermediate",
		Duration:   "4 weeks",
		Focus:      []string{"Overall Fitness"},
		Exercises: []Exercise{
			{Name: "Push-ups", Sets: 3, Reps: "10-15", Rest: "60s"},
			{Name: "Squats", Sets: 3, Reps: "15-20", Rest: "45s"},
			{Name: "Plank", Sets: 3, Reps: "30s", Rest: "30s"},
		},
		Schedule: "3 days per week",
	}
}

const defaultAverageScore = 60

func planPrompt(stats *assessment.UserStats, recent []assessment.Attempt) string {
	avg := stats.AverageFormScore
	if avg == 0 {
		avg = defaultAverageScore
	}

	results := make([]string, 0, 5)
	for i, a := range recent {
		if i == 5 {
			break
		}
		results = append(results, fmt.Sprintf("%s: %.0f/100", a.TestType, a.FormScore))
	}

	return fmt.Sprintf(`You are an expert fitness trainer. Based on this user's performance data, create a personalized training plan.

User Performance Summary:
- Average Form Score: %.0f/100
- Total Tests: %d
- Recent Test Results: %s

Create a training plan with:
1. Difficulty level (Beginner/Intermediate/Advanced)
2. 4-6 specific exercises targeting weak areas
3. Sets, reps, and rest periods
4. Training focus areas

Return ONLY valid JSON:
{
  "name": "Plan Name",
  "difficulty": "Beginner|Intermediate|Advanced",
  "duration": "X weeks",
  "focus": ["area1", "area2"],
  "exercises": [
    {"name": "Exercise", "sets": 3, "reps": "10-15", "rest": "60s", "notes": "tip"}
  ],
  "schedule": "X days per week"
}`, avg, len(recent), strings.Join(results, ", "))
}

// looseInt accepts 3 as well as "3".
type looseInt int

func (i *looseInt) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*i = looseInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("sets: %w", err)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("sets %q: %w", s, err)
	}
	*i = looseInt(n)
	return nil
}

// looseString accepts "10-15" as well as 12.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = looseString(n.String())
	return nil
}
