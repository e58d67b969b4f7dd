package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/2beens/fitscore/internal/analysis"
	"github.com/2beens/fitscore/internal/config"
	"github.com/2beens/fitscore/internal/db"
	"github.com/2beens/fitscore/internal/emg"
	"github.com/2beens/fitscore/internal/middleware"
	"github.com/2beens/fitscore/internal/misc"
	"github.com/2beens/fitscore/internal/nutrition"
	"github.com/2beens/fitscore/internal/pipeline"
	"github.com/2beens/fitscore/internal/profiles"
	"github.com/2beens/fitscore/internal/store"
	"github.com/2beens/fitscore/internal/telemetry/metrics"
	"github.com/2beens/fitscore/internal/telemetry/tracing"
	"github.com/2beens/fitscore/internal/training"
	"github.com/2beens/fitscore/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config         *config.Config
	dbPool         *pgxpool.Pool
	redisClient    *redis.Client
	store          store.Store
	analysisClient *analysis.Client
	rateLimiter    middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	GeminiAPIKey            string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		// the fallback store keeps the service usable without postgres
		log.Warnf("failed to ping db: %s", err)
	} else if err := store.Migrate(ctx, dbPool); err != nil {
		log.Warnf("failed to migrate db schema: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitscore", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitscore-backend")
	if err != nil {
		return nil, err
	}

	var generator analysis.Generator
	gemini, err := analysis.NewGemini(ctx, params.GeminiAPIKey, params.Config.GeminiModel)
	switch {
	case errors.Is(err, analysis.ErrNotConfigured):
		log.Errorln("GEMINI_API_KEY not set, analysis endpoints will fail")
	case err != nil:
		return nil, fmt.Errorf("new gemini client: %w", err)
	default:
		generator = gemini
	}

	attemptStore := store.NewLeaderboardCache(
		store.NewFallback(store.NewPsqlStore(dbPool), store.NewMemory(), metricsManager),
		rdb,
		params.Config.LeaderboardCacheTTL.Duration,
	)

	return &Server{
		config:         params.Config,
		versionInfo:    params.VersionInfo,
		dbPool:         dbPool,
		redisClient:    rdb,
		store:          attemptStore,
		analysisClient: analysis.NewClient(generator, params.Config.AnalysisTimeout.Duration, metricsManager),
		rateLimiter:    redis_rate.NewLimiter(rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	misc.NewHandler(s.config.PingMessage, s.versionInfo).SetupRoutes(r)

	pipelineHandler := pipeline.NewHandler(
		pipeline.NewService(s.analysisClient, s.store, s.metricsManager),
	)
	pipelineHandler.SetupRoutes(r, s.rateLimiter, s.metricsManager)

	profiles.NewHandler(s.store).SetupRoutes(r)
	emg.NewHandler(s.store).SetupRoutes(r)
	nutrition.NewHandler(s.analysisClient).SetupRoutes(r, s.rateLimiter, s.metricsManager)
	training.NewHandler(training.NewPlanner(s.analysisClient, s.store)).SetupRoutes(r)

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteJSONError(w, http.StatusNotFound, "Not found")
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler: router,
		Addr:    ipAndPort,
		// uploads up to 100MiB plus a model call
		WriteTimeout: 3 * time.Minute,
		ReadTimeout:  2 * time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, in flight analyses still need the stores
	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
	}
	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
	}
	log.Warnln("http servers shut down")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		err = multierr.Append(err, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	for _, e := range multierr.Errors(err) {
		log.Errorf(" >>> graceful shutdown: %s", e)
	}
}
