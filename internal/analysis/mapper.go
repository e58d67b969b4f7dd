package analysis

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/2beens/fitscore/internal/assessment"
)

// Mapped is the canonical form of a model response for one test type.
type Mapped struct {
	Metrics         map[string]float64
	FormScore       float64
	Badge           assessment.Badge
	Recommendations []string
}

// MapResponse converts the extracted JSON object into the metric set of the test type.
// It never fails: missing, null or non-numeric fields read as 0, and unknown test
// types produce an empty metric set.
func MapResponse(raw json.RawMessage, testType assessment.TestType) Mapped {
	var env envelope
	_ = json.Unmarshal(raw, &env)

	metrics := map[string]float64{}
	if payload := payloadFor(testType); payload != nil {
		_ = json.Unmarshal(raw, payload)
		decoded := payload.metrics()
		for _, key := range testType.MetricKeys() {
			metrics[key] = decoded[key]
		}
	}

	score := assessment.ClampFormScore(float64(env.FormScore))
	recommendations := []string(env.Recommendations)
	if recommendations == nil {
		recommendations = []string{}
	}

	return Mapped{
		Metrics:         metrics,
		FormScore:       score,
		Badge:           assessment.BadgeForScore(score),
		Recommendations: recommendations,
	}
}

type envelope struct {
	FormScore       number     `json:"formScore"`
	Recommendations stringList `json:"recommendations"`
}

type metricsPayload interface {
	metrics() map[string]float64
}

func payloadFor(testType assessment.TestType) metricsPayload {
	switch testType {
	case assessment.TestTypeVerticalJump:
		return &jumpPayload{}
	case assessment.TestTypeSitUps, assessment.TestTypePushUps, assessment.TestTypePullUps:
		return &repsPayload{}
	case assessment.TestTypeShuttleRun:
		return &shuttlePayload{}
	case assessment.TestTypeFlexibilityTest:
		return &flexibilityPayload{}
	case assessment.TestTypeAgilityLadder:
		return &agilityPayload{}
	case assessment.TestTypeEnduranceRun:
		return &endurancePayload{}
	case assessment.TestTypeHeightWeight:
		return &bodyPayload{}
	default:
		return nil
	}
}

type jumpPayload struct {
	JumpHeight number `json:"jumpHeight"`
}

func (p *jumpPayload) metrics() map[string]float64 {
	return map[string]float64{"jumpHeightCm": float64(p.JumpHeight)}
}

type repsPayload struct {
	Reps number `json:"reps"`
}

func (p *repsPayload) metrics() map[string]float64 {
	return map[string]float64{"reps": float64(p.Reps)}
}

type shuttlePayload struct {
	Laps number `json:"laps"`
	Time number `json:"time"`
}

func (p *shuttlePayload) metrics() map[string]float64 {
	return map[string]float64{
		"laps":    float64(p.Laps),
		"timeSec": float64(p.Time),
	}
}

type flexibilityPayload struct {
	Reach       number `json:"reach"`
	Flexibility number `json:"flexibility"`
}

func (p *flexibilityPayload) metrics() map[string]float64 {
	return map[string]float64{
		"reachCm":          float64(p.Reach),
		"flexibilityScore": float64(p.Flexibility),
	}
}

type agilityPayload struct {
	Time     number `json:"time"`
	Footwork number `json:"footwork"`
}

func (p *agilityPayload) metrics() map[string]float64 {
	return map[string]float64{
		"completionTime": float64(p.Time),
		"footworkScore":  float64(p.Footwork),
	}
}

type endurancePayload struct {
	Distance number `json:"distance"`
	Pace     number `json:"pace"`
}

func (p *endurancePayload) metrics() map[string]float64 {
	return map[string]float64{
		"distanceKm": float64(p.Distance),
		"pace":       float64(p.Pace),
	}
}

type bodyPayload struct {
	Height number `json:"height"`
	Weight number `json:"weight"`
	BMI    number `json:"bmi"`
}

func (p *bodyPayload) metrics() map[string]float64 {
	return map[string]float64{
		"heightCm": float64(p.Height),
		"weightKg": float64(p.Weight),
		"bmi":      float64(p.BMI),
	}
}

// number accepts JSON numbers and numeric strings; everything else decodes as 0.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	*n = 0

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if f, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return nil
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = number(f)
	return nil
}

// stringList accepts a list of strings (non-string items are dropped) or a single string.
type stringList []string

func (l *stringList) UnmarshalJSON(b []byte) error {
	*l = nil

	var items []any
	if err := json.Unmarshal(b, &items); err == nil {
		for _, item := range items {
			if s, ok := item.(string); ok {
				*l = append(*l, s)
			}
		}
		return nil
	}

	var single string
	if err := json.Unmarshal(b, &single); err == nil && single != "" {
		*l = stringList{single}
	}
	return nil
}
