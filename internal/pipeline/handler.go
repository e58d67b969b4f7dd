package pipeline

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/2beens/fitscore/internal/analysis"
	"github.com/2beens/fitscore/internal/assessment"
	"github.com/2beens/fitscore/internal/middleware"
	"github.com/2beens/fitscore/internal/store"
	"github.com/2beens/fitscore/internal/telemetry/metrics"
	"github.com/2beens/fitscore/internal/telemetry/tracing"
	"github.com/2beens/fitscore/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	multipartMemory = 32 * 1024 * 1024

	analyzeAllowedPerMin = 10
)

type AnalyzeResponse struct {
	Success  bool               `json:"success"`
	Attempt  assessment.Attempt `json:"attempt"`
	Analysis analysis.Result    `json:"analysis"`
}

type HistoryResponse struct {
	Success  bool                 `json:"success"`
	Attempts []assessment.Attempt `json:"attempts"`
}

type StatsResponse struct {
	Success bool                  `json:"success"`
	Stats   *assessment.UserStats `json:"stats"`
}

type LeaderboardResponse struct {
	Success     bool                          `json:"success"`
	Leaderboard []assessment.LeaderboardEntry `json:"leaderboard"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
) {
	// each analysis is a paid model call, limit them per client
	rateLimit := middleware.RateLimit(rateLimiter, "tests-analyze", analyzeAllowedPerMin, metricsManager)
	router.Handle("/api/tests/analyze", rateLimit(http.HandlerFunc(handler.HandleAnalyze))).
		Methods("POST", "OPTIONS").Name("tests-analyze")

	router.HandleFunc("/api/tests/history/{userId}", handler.HandleHistory).Methods("GET", "OPTIONS").Name("tests-history")
	router.HandleFunc("/api/tests/stats/{userId}", handler.HandleStats).Methods("GET", "OPTIONS").Name("tests-stats")
	router.HandleFunc("/api/leaderboard", handler.HandleLeaderboard).Methods("GET", "OPTIONS").Name("leaderboard")
}

func (handler *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tests.analyze")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	sub, err := readSubmission(r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			pkg.WriteJSONError(w, http.StatusBadRequest, "Video file too large")
			return
		}
		log.Debugf("analyze, read multipart form: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "No video file provided")
		return
	}

	outcome, err := handler.service.Submit(ctx, sub)
	if err != nil {
		writeSubmitError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, AnalyzeResponse{
		Success:  true,
		Attempt:  outcome.Attempt,
		Analysis: outcome.Analysis,
	})
}

// readSubmission reads the multipart form. A missing video part is not an error here,
// the submission is then rejected by validation.
func readSubmission(r *http.Request) (Submission, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return Submission{}, err
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	sub := Submission{
		UserID:   r.FormValue("userId"),
		TestType: r.FormValue("testType"),
	}

	file, header, err := r.FormFile("video")
	if errors.Is(err, http.ErrMissingFile) {
		return sub, nil
	}
	if err != nil {
		return Submission{}, err
	}
	defer file.Close()

	media, err := io.ReadAll(file)
	if err != nil {
		return Submission{}, err
	}

	sub.Filename = header.Filename
	sub.ContentType = header.Header.Get("Content-Type")
	sub.Media = media
	return sub, nil
}

func writeSubmitError(w http.ResponseWriter, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		pkg.WriteJSONError(w, http.StatusBadRequest, vErr.Reason)
	case errors.Is(err, analysis.ErrPayloadTooLarge):
		pkg.WriteJSONError(w, http.StatusBadRequest, "Video file too large for analysis")
	case errors.Is(err, analysis.ErrNotConfigured):
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Analysis failed: AI service is not configured (missing GEMINI_API_KEY)")
	case errors.Is(err, ErrPersistFailed):
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to save test attempt")
	default:
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Analysis failed")
	}
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tests.history")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	limit, err := limitParam(r)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	attempts, err := handler.service.History(ctx, userID, r.URL.Query().Get("testType"), limit)
	if err != nil {
		if IsValidationError(err) {
			pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("get history for user %s: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch test history")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, HistoryResponse{Success: true, Attempts: attempts})
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tests.stats")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	stats, err := handler.service.Stats(ctx, userID)
	if err != nil {
		log.Errorf("get stats for user %s: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch user stats")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, StatsResponse{Success: true, Stats: stats})
}

func (handler *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.leaderboard")
	defer span.End()

	limit, err := limitParam(r)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	query := r.URL.Query()
	entries, err := handler.service.Leaderboard(ctx, store.LeaderboardQuery{
		Level:  assessment.LeaderboardLevel(query.Get("level")),
		Sport:  query.Get("sport"),
		Region: query.Get("region"),
		Limit:  limit,
	})
	if err != nil {
		if IsValidationError(err) {
			pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("get leaderboard: %s", err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, LeaderboardResponse{Success: true, Leaderboard: entries})
}

// limitParam returns 0 when the limit is absent, the store then applies its default.
func limitParam(r *http.Request) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		return 0, errors.New("invalid limit")
	}
	return limit, nil
}
