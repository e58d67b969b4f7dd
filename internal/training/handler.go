package training

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitscore/internal/telemetry/tracing"
	"github.com/2beens/fitscore/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxPlanBodyBytes = 64 * 1024

type PlanResponse struct {
	Success   bool   `json:"success"`
	Plan      *Plan  `json:"plan"`
	UserLevel string `json:"userLevel"`
}

type SaveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Handler struct {
	planner *Planner
}

func NewHandler(planner *Planner) *Handler {
	return &Handler{
		planner: planner,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/training-plans/{userId}", handler.HandleGet).Methods("GET", "OPTIONS").Name("training-plans-get")
	router.HandleFunc("/api/training-plans/{userId}", handler.HandleSave).Methods("POST", "OPTIONS").Name("training-plans-save")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.get")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	plan, err := handler.planner.Plan(ctx, userID)
	if err != nil {
		log.Errorf("training plan for user %s: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to generate training plans")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, PlanResponse{
		Success:   true,
		Plan:      plan,
		UserLevel: plan.Difficulty,
	})
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.save")
	defer span.End()

	userID := mux.Vars(r)["userId"]

	var plan Plan
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPlanBodyBytes)).Decode(&plan); err != nil {
		log.Tracef("save training plan, unmarshal json: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid training plan")
		return
	}

	if err := handler.planner.Save(ctx, userID, plan); err != nil {
		if errors.Is(err, ErrInvalidPlan) {
			pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid training plan")
			return
		}
		log.Errorf("save training plan for user %s: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to save training plan")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, SaveResponse{
		Success: true,
		Message: "Training plan saved successfully",
	})
}
