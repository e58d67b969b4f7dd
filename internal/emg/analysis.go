package emg

type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

type Analysis struct {
	PerformanceLevel Level    `json:"performanceLevel"`
	FatigueWarning   bool     `json:"fatigueWarning"`
	Recommendations  []string `json:"recommendations"`
	InjuryRisk       Level    `json:"injuryRisk"`
}

// Analyze derives coaching hints from one reading. Activity and fatigue are percentages.
func Analyze(muscleActivity, fatigue float64) Analysis {
	return Analysis{
		PerformanceLevel: performanceLevel(muscleActivity),
		FatigueWarning:   fatigue > 80,
		Recommendations:  recommendations(muscleActivity, fatigue),
		InjuryRisk:       injuryRisk(muscleActivity, fatigue),
	}
}

func performanceLevel(activity float64) Level {
	switch {
	case activity > 70:
		return LevelHigh
	case activity > 40:
		return LevelMedium
	default:
		return LevelLow
	}
}

func recommendations(activity, fatigue float64) []string {
	recs := []string{}
	if fatigue > 70 {
		recs = append(recs, "Consider taking a rest break")
	}
	if activity < 30 {
		recs = append(recs, "Increase muscle engagement")
	}
	if activity > 90 {
		recs = append(recs, "Monitor for overexertion")
	}
	return recs
}

func injuryRisk(activity, fatigue float64) Level {
	if fatigue > 80 && activity > 80 {
		return LevelHigh
	}
	if fatigue > 60 || activity > 70 {
		return LevelMedium
	}
	return LevelLow
}
