package training_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/2beens/fitscore/internal/analysis"
	"github.com/2beens/fitscore/internal/assessment"
	"github.com/2beens/fitscore/internal/training"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generatedPlan = `{
  "name": "Core Power Block",
  "difficulty": "Advanced",
  "duration": "6 weeks",
  "focus": ["Core", "Explosiveness"],
  "exercises": [
    {"name": "Hanging leg raises", "sets": "4", "reps": 12, "rest": "60s", "notes": "no swinging"},
    {"name": "Box jumps", "sets": 5, "reps": "5", "rest": "90s"}
  ],
  "schedule": "4 days per week"
}`

func TestPlanner_Plan_Generated(t *testing.T) {
	ctrl := gomock.NewController(t)
	generatorMock := NewMockplanGenerator(ctrl)
	storeMock := NewMockhistoryStore(ctrl)
	planner := training.NewPlanner(generatorMock, storeMock)
	ctx := context.Background()

	recent := []assessment.Attempt{
		{ID: "a2", UserID: "user-1", TestType: assessment.TestTypeSitUps, FormScore: 81},
		{ID: "a1", UserID: "user-1", TestType: assessment.TestTypeVerticalJump, FormScore: 64},
	}
	storeMock.EXPECT().GetUserStats(gomock.Any(), "user-1").Return(&assessment.UserStats{TotalAttempts: 2, AverageFormScore: 72.5}, nil).Times(2)
	storeMock.EXPECT().GetHistory(gomock.Any(), "user-1", assessment.TestType(""), 10).Return(recent, nil).Times(1)
	generatorMock.EXPECT().
		GenerateJSON(gomock.Any(), "training_plan", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, prompt string) (json.RawMessage, error) {
			assert.Contains(t, prompt, "Average Form Score: 72/100")
			assert.Contains(t, prompt, "Total Tests: 2")
			assert.Contains(t, prompt, "sitUps: 81/100, verticalJump: 64/100")
			return json.RawMessage(generatedPlan), nil
		}).
		Times(1)

	plan, err := planner.Plan(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Core Power Block", plan.Name)
	assert.Equal(t, "Advanced", plan.Difficulty)
	require.Len(t, plan.Exercises, 2)
	assert.EqualValues(t, 4, plan.Exercises[0].Sets)
	assert.EqualValues(t, "12", plan.Exercises[0].Reps)

	// same attempt count, served from cache
	cached, err := planner.Plan(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, plan, cached)
}

func TestPlanner_Plan_FallsBackToBasicPlan(t *testing.T) {
	testCases := []struct {
		name   string
		raw    json.RawMessage
		genErr error
	}{
		{name: "NotConfigured", genErr: analysis.ErrNotConfigured},
		{name: "Malformed", genErr: analysis.ErrMalformedResponse},
		{name: "WrongShape", raw: json.RawMessage(`{"name": 7}`)},
		{name: "NoExercises", raw: json.RawMessage(`{"name": "Empty", "exercises": []}`)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			generatorMock := NewMockplanGenerator(ctrl)
			storeMock := NewMockhistoryStore(ctrl)
			planner := training.NewPlanner(generatorMock, storeMock)

			storeMock.EXPECT().GetUserStats(gomock.Any(), "user-1").Return(&assessment.UserStats{}, nil)
			storeMock.EXPECT().GetHistory(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).Return([]assessment.Attempt{}, nil)
			generatorMock.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.raw, tc.genErr)

			plan, err := planner.Plan(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, training.BasicPlan(), *plan)
		})
	}
}

func TestPlanner_Plan_NewAttemptRegenerates(t *testing.T) {
	ctrl := gomock.NewController(t)
	generatorMock := NewMockplanGenerator(ctrl)
	storeMock := NewMockhistoryStore(ctrl)
	planner := training.NewPlanner(generatorMock, storeMock)
	ctx := context.Background()

	gomock.InOrder(
		storeMock.EXPECT().GetUserStats(gomock.Any(), "user-1").Return(&assessment.UserStats{TotalAttempts: 1}, nil),
		storeMock.EXPECT().GetUserStats(gomock.Any(), "user-1").Return(&assessment.UserStats{TotalAttempts: 2}, nil),
	)
	storeMock.EXPECT().GetHistory(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).Return([]assessment.Attempt{}, nil).Times(2)
	generatorMock.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("quota exceeded")).Times(2)

	_, err := planner.Plan(ctx, "user-1")
	require.NoError(t, err)
	_, err = planner.Plan(ctx, "user-1")
	require.NoError(t, err)
}

func TestPlanner_Plan_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := NewMockhistoryStore(ctrl)
	planner := training.NewPlanner(NewMockplanGenerator(ctrl), storeMock)

	storeErr := errors.New("both stores down")
	storeMock.EXPECT().GetUserStats(gomock.Any(), "user-1").Return(nil, storeErr)

	plan, err := planner.Plan(context.Background(), "user-1")
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, storeErr)
}

func TestPlanner_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := NewMockhistoryStore(ctrl)
	// the generator must not be called for a saved plan
	planner := training.NewPlanner(NewMockplanGenerator(ctrl), storeMock)
	ctx := context.Background()

	storeMock.EXPECT().GetUserStats(gomock.Any(), "user-1").Return(&assessment.UserStats{TotalAttempts: 3}, nil).Times(2)

	custom := training.Plan{
		Name:       "Coach Ravi's sprint plan",
		Difficulty: "Beginner",
		Exercises:  []training.Exercise{{Name: "Strides", Sets: 6, Reps: "80m", Rest: "2m"}},
	}
	require.NoError(t, planner.Save(ctx, "user-1", custom))

	plan, err := planner.Plan(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, custom, *plan)

	err = planner.Save(ctx, "user-1", training.Plan{Name: "No exercises"})
	assert.ErrorIs(t, err, training.ErrInvalidPlan)
}
