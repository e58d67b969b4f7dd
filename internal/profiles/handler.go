package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/2beens/fitscore/internal/assessment"
	"github.com/2beens/fitscore/internal/telemetry/tracing"
	"github.com/2beens/fitscore/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profiles_test

const maxProfileBodyBytes = 64 * 1024

type profileStore interface {
	GetProfile(ctx context.Context, userID string) (*assessment.Profile, error)
	SaveProfile(ctx context.Context, profile assessment.Profile) (*assessment.Profile, error)
}

type ProfileResponse struct {
	Success bool                `json:"success"`
	Profile *assessment.Profile `json:"profile"`
}

type Handler struct {
	store    profileStore
	validate *validator.Validate
}

func NewHandler(store profileStore) *Handler {
	return &Handler{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/profile/{userId}", handler.HandleGet).Methods("GET", "OPTIONS").Name("profile-get")
	router.HandleFunc("/api/profile/{userId}", handler.HandleSave).Methods("POST", "OPTIONS").Name("profile-save")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	span.SetAttributes(attribute.String("user.id", userID))

	profile, err := handler.store.GetProfile(ctx, userID)
	if err != nil {
		log.Errorf("get profile %s: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, ProfileResponse{Success: true, Profile: profile})
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.save")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	span.SetAttributes(attribute.String("user.id", userID))

	var profile assessment.Profile
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxProfileBodyBytes))
	if err := decoder.Decode(&profile); err != nil {
		log.Tracef("save profile, unmarshal json: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid profile payload")
		return
	}
	// the path decides whose profile this is
	profile.ID = userID

	if err := handler.validate.Struct(profile); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	saved, err := handler.store.SaveProfile(ctx, profile)
	if err != nil {
		log.Errorf("save profile %s: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, ProfileResponse{Success: true, Profile: saved})
}

func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return "Invalid profile"
	}
	fields := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return "Invalid profile fields: " + strings.Join(fields, ", ")
}
