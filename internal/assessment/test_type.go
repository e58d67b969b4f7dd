package assessment

import (
	"errors"
	"fmt"
)

var ErrUnknownTestType = errors.New("unknown test type")

type TestType string

const (
	TestTypeVerticalJump    TestType = "verticalJump"
	TestTypeSitUps          TestType = "sitUps"
	TestTypePushUps         TestType = "pushUps"
	TestTypePullUps         TestType = "pullUps"
	TestTypeShuttleRun      TestType = "shuttleRun"
	TestTypeFlexibilityTest TestType = "flexibilityTest"
	TestTypeAgilityLadder   TestType = "agilityLadder"
	TestTypeEnduranceRun    TestType = "enduranceRun"
	TestTypeHeightWeight    TestType = "heightWeight"
)

// AllTestTypes lists every supported test type, in the order they are shown to athletes.
var AllTestTypes = []TestType{
	TestTypeVerticalJump,
	TestTypeSitUps,
	TestTypePushUps,
	TestTypePullUps,
	TestTypeShuttleRun,
	TestTypeFlexibilityTest,
	TestTypeAgilityLadder,
	TestTypeEnduranceRun,
	TestTypeHeightWeight,
}

var metricKeys = map[TestType][]string{
	TestTypeVerticalJump:    {"jumpHeightCm"},
	TestTypeSitUps:          {"reps"},
	TestTypePushUps:         {"reps"},
	TestTypePullUps:         {"reps"},
	TestTypeShuttleRun:      {"laps", "timeSec"},
	TestTypeFlexibilityTest: {"reachCm", "flexibilityScore"},
	TestTypeAgilityLadder:   {"completionTime", "footworkScore"},
	TestTypeEnduranceRun:    {"distanceKm", "pace"},
	TestTypeHeightWeight:    {"heightCm", "weightKg", "bmi"},
}

func ParseTestType(s string) (TestType, error) {
	tt := TestType(s)
	if !tt.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTestType, s)
	}
	return tt, nil
}

func (tt TestType) Valid() bool {
	_, ok := metricKeys[tt]
	return ok
}

// MetricKeys returns the canonical metric names recorded for the test type.
// Unknown test types have no metrics.
func (tt TestType) MetricKeys() []string {
	keys := metricKeys[tt]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

func (tt TestType) String() string {
	return string(tt)
}
