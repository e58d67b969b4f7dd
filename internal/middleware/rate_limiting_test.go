package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/fitscore/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	testCases := []struct {
		name           string
		result         *redis_rate.Result
		err            error
		expectNext     bool
		expectedStatus int
		expectedLimits float64
	}{
		{
			name:           "Allowed",
			result:         &redis_rate.Result{Allowed: 1, Remaining: 4},
			expectNext:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Limited",
			result:         &redis_rate.Result{Allowed: 0, RetryAfter: 12 * time.Second},
			expectedStatus: http.StatusTooManyRequests,
			expectedLimits: 1,
		},
		{
			name:           "LimiterDown",
			err:            errors.New("redis: connection refused"),
			expectNext:     true,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			limiterMock := NewMockRequestRateLimiter(ctrl)
			metricsManager := metrics.NewTestManager()

			limiterMock.EXPECT().
				Allow(gomock.Any(), "rl::analyze::10.0.0.7", redis_rate.PerMinute(5)).
				Return(tc.result, tc.err).
				Times(1)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})
			handler := RateLimit(limiterMock, "analyze", 5, metricsManager)(next)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/tests/analyze", nil)
			req.RemoteAddr = "10.0.0.7:51234"
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectNext, nextCalled)
			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectedLimits, testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
			if tc.expectedStatus == http.StatusTooManyRequests {
				assert.Equal(t, "12", rr.Header().Get("Retry-After"))
			}
		})
	}
}

func TestRequestMetrics(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	handler := RequestMetrics(metricsManager)(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/leaderboard", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "400")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.GaugeRequests))
}
