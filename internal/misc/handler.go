package misc

import (
	"net/http"

	"github.com/2beens/fitscore/internal/telemetry/tracing"
	"github.com/2beens/fitscore/pkg"

	"github.com/gorilla/mux"
)

type Handler struct {
	pingMessage string
	versionInfo string
}

type pingResponse struct {
	Message string `json:"message"`
}

type versionResponse struct {
	Version string `json:"version"`
}

func NewHandler(pingMessage, versionInfo string) *Handler {
	if pingMessage == "" {
		pingMessage = "ping"
	}
	return &Handler{
		pingMessage: pingMessage,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	router.HandleFunc("/api/ping", handler.handlePing).Methods("GET", "OPTIONS").Name("ping")
	router.HandleFunc("/api/version", handler.handleVersion).Methods("GET", "OPTIONS").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.ping")
	defer span.End()

	pkg.WriteJSON(w, http.StatusOK, pingResponse{Message: handler.pingMessage})
}

func (handler *Handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	version := handler.versionInfo
	if version == "" {
		version = "unknown"
	}
	pkg.WriteJSON(w, http.StatusOK, versionResponse{Version: version})
}
