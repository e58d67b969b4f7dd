package emg

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitscore/internal/assessment"
	"github.com/2beens/fitscore/internal/telemetry/tracing"
	"github.com/2beens/fitscore/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=emg_test

const maxReadingBodyBytes = 16 * 1024

type readingsStore interface {
	SaveEMGReading(ctx context.Context, reading assessment.EMGReading) error
	GetEMGHistory(ctx context.Context, userID string, limit int) ([]assessment.EMGReading, error)
}

type ReadingRequest struct {
	UserID         string  `json:"userId" validate:"required"`
	AttemptID      string  `json:"testAttemptId"`
	EMGValue       float64 `json:"emgValue"`
	MuscleActivity float64 `json:"muscleActivity" validate:"gte=0,lte=100"`
	Fatigue        float64 `json:"fatigue" validate:"gte=0,lte=100"`
	Activated      bool    `json:"activated"`
}

type ReadingResponse struct {
	Success  bool                  `json:"success"`
	Data     assessment.EMGReading `json:"data"`
	Analysis Analysis              `json:"analysis"`
}

type HistoryResponse struct {
	Success bool                    `json:"success"`
	Data    []assessment.EMGReading `json:"data"`
}

type Handler struct {
	store    readingsStore
	validate *validator.Validate
}

func NewHandler(store readingsStore) *Handler {
	return &Handler{
		store:    store,
		validate: validator.New(),
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/emg/data", handler.HandleReading).Methods("POST", "OPTIONS").Name("emg-data")
	router.HandleFunc("/api/emg/history/{userId}", handler.HandleHistory).Methods("GET", "OPTIONS").Name("emg-history")
}

func (handler *Handler) HandleReading(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.emg.reading")
	defer span.End()

	var req ReadingRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxReadingBodyBytes)).Decode(&req); err != nil {
		log.Tracef("emg reading, unmarshal json: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid EMG payload")
		return
	}
	if err := handler.validate.Struct(req); err != nil {
		log.Tracef("emg reading, validate: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid EMG payload")
		return
	}

	reading := assessment.EMGReading{
		ID:                 uuid.NewString(),
		UserID:             req.UserID,
		AttemptID:          req.AttemptID,
		EMGValue:           req.EMGValue,
		MuscleActivity:     req.MuscleActivity,
		FatigueLevel:       req.Fatigue,
		ActivationDetected: req.Activated,
		Timestamp:          time.Now().UTC(),
	}
	if err := handler.store.SaveEMGReading(ctx, reading); err != nil {
		log.Errorf("save emg reading for user %s: %s", req.UserID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to process EMG data")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, ReadingResponse{
		Success:  true,
		Data:     reading,
		Analysis: Analyze(req.MuscleActivity, req.Fatigue),
	})
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.emg.history")
	defer span.End()

	userID := mux.Vars(r)["userId"]

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	readings, err := handler.store.GetEMGHistory(ctx, userID, limit)
	if err != nil {
		log.Errorf("get emg history for user %s: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch EMG history")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, HistoryResponse{Success: true, Data: readings})
}
