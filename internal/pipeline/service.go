package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitscore/internal/analysis"
	"github.com/2beens/fitscore/internal/assessment"
	"github.com/2beens/fitscore/internal/store"
	"github.com/2beens/fitscore/internal/telemetry/metrics"
	"github.com/2beens/fitscore/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=pipeline_test

// MaxUploadBytes caps the accepted upload at the transport level.
const MaxUploadBytes = 100 * 1024 * 1024

type State string

const (
	StateReceived         State = "received"
	StateValidated        State = "validated"
	StateAnalyzing        State = "analyzing"
	StateMapped           State = "mapped"
	StatePersisted        State = "persisted"
	StateResponded        State = "responded"
	StateValidationFailed State = "validation_failed"
	StateAnalysisFailed   State = "analysis_failed"
	StatePersistFailed    State = "persist_failed"
)

// ErrPersistFailed marks a submission that was analyzed but could not be stored.
var ErrPersistFailed = errors.New("persist attempt failed")

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

type attemptAnalyzer interface {
	Analyze(ctx context.Context, media []byte, testType assessment.TestType) (*analysis.Result, error)
}

type Submission struct {
	UserID      string
	TestType    string
	Filename    string
	ContentType string
	Media       []byte
}

type Outcome struct {
	Attempt  assessment.Attempt
	Analysis analysis.Result
}

type Service struct {
	analyzer       attemptAnalyzer
	store          store.Store
	metricsManager *metrics.Manager
}

func NewService(analyzer attemptAnalyzer, attemptStore store.Store, metricsManager *metrics.Manager) *Service {
	return &Service{
		analyzer:       analyzer,
		store:          attemptStore,
		metricsManager: metricsManager,
	}
}

// Submit validates, analyzes, scores and stores one attempt. There are no retries:
// an analysis failure ends the submission and nothing is stored.
func (s *Service) Submit(ctx context.Context, sub Submission) (_ *Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "pipeline.submit")
	span.SetAttributes(
		attribute.String("user.id", sub.UserID),
		attribute.String("test_type", sub.TestType),
		attribute.Int("media_bytes", len(sub.Media)),
	)
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	logger := log.WithFields(log.Fields{
		"user":      sub.UserID,
		"test_type": sub.TestType,
		"file":      sub.Filename,
		"bytes":     len(sub.Media),
	})
	logger.WithField("state", StateReceived).Debug("submission")

	testType, err := validate(sub)
	if err != nil {
		s.finish(logger, StateValidationFailed, err)
		return nil, err
	}
	logger.WithField("state", StateValidated).Debug("submission")

	logger.WithField("state", StateAnalyzing).Debug("submission")
	result, err := s.analyzer.Analyze(ctx, sub.Media, testType)
	if err != nil {
		s.finish(logger, StateAnalysisFailed, err)
		return nil, fmt.Errorf("analyze %s attempt: %w", testType, err)
	}
	logger.WithFields(log.Fields{
		"state":      StateMapped,
		"form_score": result.FormScore,
		"badge":      result.Badge,
	}).Debug("submission")

	resultJson, err := json.Marshal(result)
	if err != nil {
		s.finish(logger, StatePersistFailed, err)
		return nil, fmt.Errorf("%w: marshal analysis result: %w", ErrPersistFailed, err)
	}

	attempt := assessment.Attempt{
		ID:              uuid.NewString(),
		UserID:          sub.UserID,
		TestType:        testType,
		AnalysisResult:  resultJson,
		Metrics:         result.Metrics,
		FormScore:       result.FormScore,
		Badge:           result.Badge,
		Recommendations: result.Recommendations,
		CreatedAt:       time.Now().UTC(),
	}

	saved, err := s.store.SaveAttempt(ctx, attempt)
	if err != nil {
		s.finish(logger, StatePersistFailed, err)
		return nil, fmt.Errorf("%w: save attempt %s: %w", ErrPersistFailed, attempt.ID, err)
	}
	logger.WithFields(log.Fields{
		"state":   StatePersisted,
		"attempt": saved.ID,
	}).Debug("submission")

	s.finish(logger, StateResponded, nil)
	return &Outcome{
		Attempt:  *saved,
		Analysis: *result,
	}, nil
}

func (s *Service) finish(logger *log.Entry, state State, err error) {
	s.metricsManager.CounterSubmissions.WithLabelValues(string(state)).Inc()
	entry := logger.WithField("state", state)
	switch {
	case err == nil:
		entry.Info("submission done")
	case state == StateValidationFailed:
		entry.Debugf("submission rejected: %s", err)
	default:
		entry.Errorf("submission failed: %s", err)
	}
}

func validate(sub Submission) (assessment.TestType, error) {
	if len(sub.Media) == 0 {
		return "", &ValidationError{Reason: "No video file provided"}
	}
	if sub.TestType == "" || sub.UserID == "" {
		return "", &ValidationError{Reason: "Missing testType or userId"}
	}
	if !strings.HasPrefix(sub.ContentType, "video/") {
		return "", &ValidationError{Reason: "Only video files allowed"}
	}
	if len(sub.Media) > MaxUploadBytes {
		return "", &ValidationError{Reason: "Video file too large"}
	}
	testType, err := assessment.ParseTestType(sub.TestType)
	if err != nil {
		return "", &ValidationError{Reason: fmt.Sprintf("Unknown test type: %s", sub.TestType)}
	}
	return testType, nil
}

func (s *Service) History(ctx context.Context, userID, testType string, limit int) ([]assessment.Attempt, error) {
	var tt assessment.TestType
	if testType != "" {
		parsed, err := assessment.ParseTestType(testType)
		if err != nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("Unknown test type: %s", testType)}
		}
		tt = parsed
	}
	return s.store.GetHistory(ctx, userID, tt, limit)
}

func (s *Service) Stats(ctx context.Context, userID string) (*assessment.UserStats, error) {
	return s.store.GetUserStats(ctx, userID)
}

func (s *Service) Leaderboard(ctx context.Context, query store.LeaderboardQuery) ([]assessment.LeaderboardEntry, error) {
	if query.Level == "" {
		query.Level = assessment.LevelDistrict
	}
	if !query.Level.Valid() {
		return nil, &ValidationError{Reason: fmt.Sprintf("Invalid leaderboard level: %s", query.Level)}
	}
	return s.store.GetLeaderboard(ctx, query)
}
