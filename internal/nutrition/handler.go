package nutrition

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitscore/internal/analysis"
	"github.com/2beens/fitscore/internal/middleware"
	"github.com/2beens/fitscore/internal/telemetry/metrics"
	"github.com/2beens/fitscore/internal/telemetry/tracing"
	"github.com/2beens/fitscore/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

const (
	MaxImageBytes = 10 * 1024 * 1024

	// multipart framing on top of the image itself
	formOverheadBytes = 64 * 1024

	analyzeAllowedPerMin = 10
)

type foodAnalyzer interface {
	AnalyzeFood(ctx context.Context, image []byte) (*analysis.FoodAnalysis, error)
}

type AnalyzeResponse struct {
	Success  bool                   `json:"success"`
	Analysis *analysis.FoodAnalysis `json:"analysis"`
}

type Handler struct {
	analyzer foodAnalyzer
}

func NewHandler(analyzer foodAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
) {
	rateLimit := middleware.RateLimit(rateLimiter, "food-analyze", analyzeAllowedPerMin, metricsManager)
	router.Handle("/api/food/analyze", rateLimit(http.HandlerFunc(handler.HandleAnalyze))).
		Methods("POST", "OPTIONS").Name("food-analyze")
}

func (handler *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.food.analyze")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, MaxImageBytes+formOverheadBytes)
	image, contentType, err := readImage(r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			pkg.WriteJSONError(w, http.StatusBadRequest, "Image file too large")
			return
		}
		log.Debugf("food analyze, read image: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	if len(image) > MaxImageBytes {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Image file too large")
		return
	}
	if !strings.HasPrefix(contentType, "image/") {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Only image files allowed")
		return
	}

	fa, err := handler.analyzer.AnalyzeFood(ctx, image)
	if err != nil {
		log.Errorf("food analysis: %s", err)
		if errors.Is(err, analysis.ErrNotConfigured) {
			pkg.WriteJSONError(w, http.StatusInternalServerError, "Food analysis failed: AI service is not configured (missing GEMINI_API_KEY)")
			return
		}
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Food analysis failed")
		return
	}

	log.Debugf("food analysis completed: %s", fa.FoodName)
	pkg.WriteJSON(w, http.StatusOK, AnalyzeResponse{Success: true, Analysis: fa})
}

func readImage(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(MaxImageBytes); err != nil {
		return nil, "", err
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("foodImage")
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	if len(image) == 0 {
		return nil, "", http.ErrMissingFile
	}
	return image, header.Header.Get("Content-Type"), nil
}
