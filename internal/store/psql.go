package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fitscore/internal/assessment"
	"github.com/2beens/fitscore/internal/telemetry/tracing"
	"github.com/2beens/fitscore/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const attemptColumns = `id, user_id, test_type, video_url, analysis_result, metrics, form_score, badge, recommendations, created_at`

type PsqlStore struct {
	db *pgxpool.Pool
}

var _ Store = (*PsqlStore)(nil)

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

func (s *PsqlStore) SaveAttempt(ctx context.Context, attempt assessment.Attempt) (_ *assessment.Attempt, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.psql.saveAttempt")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("attempt.id", attempt.ID))

	metricsJson, err := json.Marshal(attempt.Metrics)
	if err != nil {
		return nil, fmt.Errorf("marshal metrics: %w", err)
	}
	recommendations := attempt.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	recommendationsJson, err := json.Marshal(recommendations)
	if err != nil {
		return nil, fmt.Errorf("marshal recommendations: %w", err)
	}

	var analysisResult any
	if len(attempt.AnalysisResult) > 0 {
		analysisResult = []byte(attempt.AnalysisResult)
	}

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO test_attempts (`+attemptColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		attempt.ID, attempt.UserID, string(attempt.TestType), attempt.MediaRef, analysisResult,
		metricsJson, attempt.FormScore, persistedBadge(attempt.Badge), recommendationsJson, attempt.CreatedAt,
	)
	if pkg.IsUniqueViolationError(err) {
		return nil, fmt.Errorf("attempt %s: %w", attempt.ID, ErrDuplicate)
	}
	if err != nil {
		return nil, fmt.Errorf("insert attempt: %w", err)
	}

	return &attempt, nil
}

func (s *PsqlStore) GetHistory(ctx context.Context, userID string, testType assessment.TestType, limit int) (_ []assessment.Attempt, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.psql.getHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := s.db.Query(
		ctx,
		`SELECT `+attemptColumns+` FROM test_attempts
			WHERE user_id = $1 AND ($2 = '' OR test_type = $2)
			ORDER BY created_at DESC
			LIMIT $3;`,
		userID, string(testType), historyLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

func (s *PsqlStore) GetUserStats(ctx context.Context, userID string) (_ *assessment.UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.psql.getUserStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := s.db.Query(
		ctx,
		`SELECT `+attemptColumns+` FROM test_attempts WHERE user_id = $1 ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query user attempts: %w", err)
	}
	defer rows.Close()

	attempts, err := scanAttempts(rows)
	if err != nil {
		return nil, err
	}

	return ComputeUserStats(attempts), nil
}

func (s *PsqlStore) GetProfile(ctx context.Context, userID string) (_ *assessment.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.psql.getProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var p assessment.Profile
	err = s.db.QueryRow(
		ctx,
		`SELECT id, email, name, age, gender, district, state, sport, photo_url, created_at, updated_at
			FROM profiles WHERE id = $1;`,
		userID,
	).Scan(&p.ID, &p.Email, &p.Name, &p.Age, &p.Gender, &p.District, &p.State, &p.Sport, &p.PhotoRef, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	return &p, nil
}

func (s *PsqlStore) SaveProfile(ctx context.Context, profile assessment.Profile) (_ *assessment.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.psql.saveProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", profile.ID))

	err = s.db.QueryRow(
		ctx,
		`INSERT INTO profiles (id, email, name, age, gender, district, state, sport, photo_url, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
			ON CONFLICT (id) DO UPDATE SET
				email = EXCLUDED.email,
				name = EXCLUDED.name,
				age = EXCLUDED.age,
				gender = EXCLUDED.gender,
				district = EXCLUDED.district,
				state = EXCLUDED.state,
				sport = EXCLUDED.sport,
				photo_url = EXCLUDED.photo_url,
				updated_at = now()
			RETURNING created_at, updated_at;`,
		profile.ID, profile.Email, profile.Name, profile.Age, profile.Gender,
		profile.District, profile.State, profile.Sport, profile.PhotoRef,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return &profile, nil
}

func (s *PsqlStore) GetLeaderboard(ctx context.Context, query LeaderboardQuery) (_ []assessment.LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.psql.getLeaderboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("leaderboard.level", string(query.Level)),
		attribute.String("leaderboard.sport", query.Sport),
		attribute.String("leaderboard.region", query.Region),
	)

	// best attempt per user: highest score, earliest achievement first
	rows, err := s.db.Query(
		ctx,
		`SELECT DISTINCT ON (user_id) `+attemptColumns+`
			FROM test_attempts
			ORDER BY user_id, form_score DESC, created_at ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query best attempts: %w", err)
	}
	bestAttempts, err := scanAttempts(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if len(bestAttempts) == 0 {
		return []assessment.LeaderboardEntry{}, nil
	}

	userIDs := make([]string, 0, len(bestAttempts))
	for _, a := range bestAttempts {
		userIDs = append(userIDs, a.UserID)
	}

	profileRows, err := s.db.Query(
		ctx,
		`SELECT id, name, district, state, sport FROM profiles WHERE id = ANY($1);`,
		userIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard profiles: %w", err)
	}
	defer profileRows.Close()

	profiles := map[string]assessment.Profile{}
	for profileRows.Next() {
		var p assessment.Profile
		if err := profileRows.Scan(&p.ID, &p.Name, &p.District, &p.State, &p.Sport); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles[p.ID] = p
	}
	if err := profileRows.Err(); err != nil {
		return nil, fmt.Errorf("profile rows: %w", err)
	}

	return RankLeaderboard(bestAttempts, profiles, query), nil
}

func (s *PsqlStore) SaveEMGReading(ctx context.Context, reading assessment.EMGReading) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.psql.saveEMGReading")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var attemptID *string
	if reading.AttemptID != "" {
		attemptID = &reading.AttemptID
	}

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO emg_readings
				(id, user_id, test_attempt_id, emg_value, muscle_activity, fatigue_level, activation_detected, timestamp)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		reading.ID, reading.UserID, attemptID, reading.EMGValue, reading.MuscleActivity,
		reading.FatigueLevel, reading.ActivationDetected, reading.Timestamp,
	)
	if pkg.IsUniqueViolationError(err) {
		return fmt.Errorf("emg reading %s: %w", reading.ID, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("insert emg reading: %w", err)
	}
	return nil
}

func (s *PsqlStore) GetEMGHistory(ctx context.Context, userID string, limit int) (_ []assessment.EMGReading, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.psql.getEMGHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := s.db.Query(
		ctx,
		`SELECT id, user_id, test_attempt_id, emg_value, muscle_activity, fatigue_level, activation_detected, timestamp
			FROM emg_readings
			WHERE user_id = $1
			ORDER BY timestamp DESC
			LIMIT $2;`,
		userID, emgHistoryLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query emg history: %w", err)
	}
	defer rows.Close()

	readings := []assessment.EMGReading{}
	for rows.Next() {
		var r assessment.EMGReading
		var attemptID *string
		if err := rows.Scan(
			&r.ID, &r.UserID, &attemptID, &r.EMGValue, &r.MuscleActivity,
			&r.FatigueLevel, &r.ActivationDetected, &r.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan emg reading: %w", err)
		}
		if attemptID != nil {
			r.AttemptID = *attemptID
		}
		readings = append(readings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("emg rows: %w", err)
	}

	return readings, nil
}

func scanAttempts(rows pgx.Rows) ([]assessment.Attempt, error) {
	attempts := []assessment.Attempt{}
	for rows.Next() {
		var (
			a                   assessment.Attempt
			testType            string
			analysisResult      []byte
			metricsJson         []byte
			badge               *string
			recommendationsJson []byte
		)
		if err := rows.Scan(
			&a.ID, &a.UserID, &testType, &a.MediaRef, &analysisResult,
			&metricsJson, &a.FormScore, &badge, &recommendationsJson, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}

		a.TestType = assessment.TestType(testType)
		a.Badge = storedBadge(badge)
		if len(analysisResult) > 0 {
			a.AnalysisResult = json.RawMessage(analysisResult)
		}
		if err := json.Unmarshal(metricsJson, &a.Metrics); err != nil {
			return nil, fmt.Errorf("unmarshal metrics of attempt %s: %w", a.ID, err)
		}
		if err := json.Unmarshal(recommendationsJson, &a.Recommendations); err != nil {
			return nil, fmt.Errorf("unmarshal recommendations of attempt %s: %w", a.ID, err)
		}

		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("attempt rows: %w", err)
	}

	return attempts, nil
}

// persistedBadge maps the display-only tier to NULL.
func persistedBadge(b assessment.Badge) *string {
	if !b.Persisted() {
		return nil
	}
	s := string(b)
	return &s
}

func storedBadge(s *string) assessment.Badge {
	if s == nil {
		return assessment.BadgeNeedsImprovement
	}
	return assessment.Badge(*s)
}
