package misc

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func serve(t *testing.T, handler *Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	handler.SetupRoutes(r)

	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandler_Root(t *testing.T) {
	rr := serve(t, NewHandler("pong", "abc123"), "GET", "/")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "I'm OK, thanks ;)", rr.Body.String())
}

func TestHandler_Ping(t *testing.T) {
	rr := serve(t, NewHandler("Fitness assessment API is running", ""), "GET", "/api/ping")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Fitness assessment API is running"}`, rr.Body.String())

	rr = serve(t, NewHandler("", ""), "GET", "/api/ping")
	assert.JSONEq(t, `{"message":"ping"}`, rr.Body.String())

	rr = serve(t, NewHandler("pong", ""), "POST", "/api/ping")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHandler_Version(t *testing.T) {
	rr := serve(t, NewHandler("", "abc123"), "GET", "/api/version")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"abc123"}`, rr.Body.String())

	rr = serve(t, NewHandler("", ""), "GET", "/api/version")
	assert.JSONEq(t, `{"version":"unknown"}`, rr.Body.String())
}
