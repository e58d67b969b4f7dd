package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitscore/internal/analysis"
	"github.com/2beens/fitscore/internal/assessment"
	"github.com/2beens/fitscore/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var seedSports = []string{"athletics", "football", "kabaddi", "hockey", "wrestling", "badminton"}

func newSeedCmd() *cobra.Command {
	var (
		users    int
		attempts int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with fake athletes and attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if users <= 0 || attempts < 0 {
				return fmt.Errorf("invalid counts: users=%d attempts=%d", users, attempts)
			}

			pool, err := openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			saved, err := seedStore(cmd.Context(), store.NewPsqlStore(pool), gofakeit.New(seed), users, attempts)
			if err != nil {
				return err
			}
			log.Infof("seeded %d profiles and %d attempts (seed %d)", users, saved, seed)
			return nil
		},
	}

	cmd.Flags().IntVar(&users, "users", 20, "number of athletes")
	cmd.Flags().IntVar(&attempts, "attempts", 5, "attempts per athlete")
	cmd.Flags().Int64Var(&seed, "seed", 0, "faker seed, random when 0")
	return cmd
}

// seedStore saves users fake profiles with attempts each, and returns the number of saved attempts.
func seedStore(ctx context.Context, st store.Store, faker *gofakeit.Faker, users, attempts int) (int, error) {
	saved := 0
	for i := 0; i < users; i++ {
		profile, err := st.SaveProfile(ctx, fakeProfile(faker))
		if err != nil {
			return saved, fmt.Errorf("save profile: %w", err)
		}

		for j := 0; j < attempts; j++ {
			attempt, err := fakeAttempt(faker, profile.ID)
			if err != nil {
				return saved, err
			}
			if _, err := st.SaveAttempt(ctx, attempt); err != nil {
				return saved, fmt.Errorf("save attempt for %s: %w", profile.ID, err)
			}
			saved++
		}
	}
	return saved, nil
}

func fakeProfile(faker *gofakeit.Faker) assessment.Profile {
	return assessment.Profile{
		ID:       faker.UUID(),
		Email:    faker.Email(),
		Name:     faker.Name(),
		Age:      faker.Number(12, 35),
		Gender:   faker.Gender(),
		District: faker.City(),
		State:    faker.State(),
		Sport:    faker.RandomString(seedSports),
	}
}

// fakeAttempt builds a model-like answer and runs it through the regular mapping,
// so seeded rows look exactly like analyzed ones.
func fakeAttempt(faker *gofakeit.Faker, userID string) (assessment.Attempt, error) {
	testType := assessment.AllTestTypes[faker.Number(0, len(assessment.AllTestTypes)-1)]

	answer := map[string]any{
		"formScore":       faker.Number(20, 100),
		"recommendations": []string{faker.HipsterSentence(6)},
		"errors":          []string{},
	}
	for key, value := range fakeFields(faker, testType) {
		answer[key] = value
	}

	raw, err := json.Marshal(answer)
	if err != nil {
		return assessment.Attempt{}, fmt.Errorf("marshal fake answer: %w", err)
	}
	mapped := analysis.MapResponse(raw, testType)

	result, err := json.Marshal(analysis.Result{
		TestType:        testType,
		Metrics:         mapped.Metrics,
		FormScore:       mapped.FormScore,
		Recommendations: mapped.Recommendations,
		Badge:           mapped.Badge,
		Errors:          []string{},
	})
	if err != nil {
		return assessment.Attempt{}, fmt.Errorf("marshal fake result: %w", err)
	}

	return assessment.Attempt{
		ID:              faker.UUID(),
		UserID:          userID,
		TestType:        testType,
		AnalysisResult:  result,
		Metrics:         mapped.Metrics,
		FormScore:       mapped.FormScore,
		Badge:           mapped.Badge,
		Recommendations: mapped.Recommendations,
		CreatedAt:       faker.DateRange(time.Now().AddDate(0, -2, 0), time.Now()).UTC(),
	}, nil
}

// fakeFields returns the raw answer fields the model reports for the test type.
func fakeFields(faker *gofakeit.Faker, testType assessment.TestType) map[string]any {
	switch testType {
	case assessment.TestTypeVerticalJump:
		return map[string]any{"jumpHeight": faker.Number(20, 70)}
	case assessment.TestTypeSitUps, assessment.TestTypePushUps, assessment.TestTypePullUps:
		return map[string]any{"reps": faker.Number(3, 60)}
	case assessment.TestTypeShuttleRun:
		return map[string]any{"laps": faker.Number(4, 12), "time": faker.Float64Range(9, 20)}
	case assessment.TestTypeFlexibilityTest:
		return map[string]any{"reach": faker.Number(-5, 30), "flexibility": faker.Number(30, 100)}
	case assessment.TestTypeAgilityLadder:
		return map[string]any{"time": faker.Float64Range(6, 15), "footwork": faker.Number(30, 100)}
	case assessment.TestTypeEnduranceRun:
		return map[string]any{"distance": faker.Float64Range(1, 5), "pace": faker.Float64Range(4, 8)}
	case assessment.TestTypeHeightWeight:
		height, weight := faker.Number(140, 195), faker.Number(40, 95)
		heightM := float64(height) / 100
		return map[string]any{"height": height, "weight": weight, "bmi": float64(weight) / (heightM * heightM)}
	default:
		return map[string]any{}
	}
}
