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
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/healthapi/internal/auth"
	"github.com/2beens/healthapi/internal/bodylog"
	"github.com/2beens/healthapi/internal/calibration"
	"github.com/2beens/healthapi/internal/config"
	"github.com/2beens/healthapi/internal/db"
	"github.com/2beens/healthapi/internal/exercises"
	"github.com/2beens/healthapi/internal/middleware"
	"github.com/2beens/healthapi/internal/misc"
	"github.com/2beens/healthapi/internal/scoring"
	"github.com/2beens/healthapi/internal/telemetry/metrics"
	"github.com/2beens/healthapi/internal/telemetry/tracing"
	"github.com/2beens/healthapi/internal/training"
	"github.com/2beens/healthapi/internal/users"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config    *config.Config
	dbPool    *pgxpool.Pool
	estimator scoring.CalorieEstimator

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service
	rateLimiter  middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	estimator, err := scoring.NewCalorieEstimator(cfg.CalorieStrategy)
	if err != nil {
		return nil, fmt.Errorf("calorie estimator: %w", err)
	}
	log.Debugf("using calorie strategy: %s", estimator.Strategy())

	dbParams := db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	}

	if cfg.RunMigrations {
		if err := db.Migrate(cfg.MigrationsPath, db.ConnString(dbParams)); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("health_api", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(cfg.SessionTTL.Duration, rdb)
	go cleanSessionsLoop(ctx, authService, sessionsCleanupInterval)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "health-api", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		estimator:   estimator,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(cfg.SessionTTL.Duration, rdb),
		rateLimiter:  redis_rate.NewLimiter(rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// cleanSessionsLoop drops expired and broken sessions until ctx is done.
func cleanSessionsLoop(ctx context.Context, authService *auth.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			authService.ScanAndClean(ctx)
		}
	}
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	usersRepo := users.NewRepo(s.dbPool)
	bodyLogRepo := bodylog.NewRepo(s.dbPool)
	profiles := users.NewProfileService(usersRepo, bodyLogRepo, s.config.ProfileCacheSizeMB)

	trainingService := training.NewService(
		training.NewRepo(s.dbPool),
		profiles,
		s.estimator,
		s.metricsManager,
	)
	bodyLogService := bodylog.NewService(bodyLogRepo, profiles, trainingService)
	exercisesService := exercises.NewService(
		exercises.NewRepo(s.dbPool),
		profiles,
		calibration.NewCalibrator(calibration.NewPsqlStore(s.dbPool)),
		s.metricsManager,
	)

	misc.NewHandler(s.versionInfo).SetupRoutes(r)

	usersHandler := users.NewHandler(usersRepo, s.authService, s.metricsManager)
	r.HandleFunc("/users/login", usersHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/users/register", usersHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	r.HandleFunc("/users/logout", usersHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	r.HandleFunc("/users/authenticated", usersHandler.HandleAuthenticated).Methods("GET", "OPTIONS").Name("authenticated")
	r.HandleFunc("/users/age", usersHandler.HandleAge).Methods("GET", "OPTIONS").Name("age")

	bodyLogHandler := bodylog.NewHandler(bodyLogService)
	r.HandleFunc("/bodylog", bodyLogHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-bodylog")
	r.HandleFunc("/bodylog", bodyLogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-bodylogs")
	// registered before /bodylog/{id} so "calories" is never taken for an id
	r.HandleFunc("/bodylog/calories", bodyLogHandler.HandleCaloriesOnDay).Methods("GET", "OPTIONS").Name("calories-on-day")
	r.HandleFunc("/bodylog/{id}", bodyLogHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-bodylog")
	r.HandleFunc("/bodylog/{id}", bodyLogHandler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-bodylog")
	r.HandleFunc("/bodylog/{id}", bodyLogHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-bodylog")

	trainingHandler := training.NewHandler(trainingService)
	r.HandleFunc("/training", trainingHandler.HandleCreateTraining).Methods("POST", "OPTIONS").Name("new-training")
	r.HandleFunc("/training", trainingHandler.HandleListTrainings).Methods("GET", "OPTIONS").Name("list-trainings")
	r.HandleFunc("/training/types", trainingHandler.HandleTrainingTypes).Methods("GET", "OPTIONS").Name("training-types")
	r.HandleFunc("/training/{id}", trainingHandler.HandleGetTraining).Methods("GET", "OPTIONS").Name("get-training")
	r.HandleFunc("/training/{id}", trainingHandler.HandleUpdateTraining).Methods("PATCH", "OPTIONS").Name("update-training")
	r.HandleFunc("/training/{id}", trainingHandler.HandleDeleteTraining).Methods("DELETE", "OPTIONS").Name("delete-training")
	r.HandleFunc("/exercise-log", trainingHandler.HandleCreateExerciseLog).Methods("POST", "OPTIONS").Name("new-exercise-log")
	r.HandleFunc("/exercise-log/{id}", trainingHandler.HandleGetExerciseLog).Methods("GET", "OPTIONS").Name("get-exercise-log")
	r.HandleFunc("/exercise-log/{id}", trainingHandler.HandleUpdateExerciseLog).Methods("PATCH", "OPTIONS").Name("update-exercise-log")
	r.HandleFunc("/exercise-log/{id}", trainingHandler.HandleDeleteExerciseLog).Methods("DELETE", "OPTIONS").Name("delete-exercise-log")
	r.HandleFunc("/set", trainingHandler.HandleCreateSet).Methods("POST", "OPTIONS").Name("new-set")
	r.HandleFunc("/set/{id}", trainingHandler.HandleGetSet).Methods("GET", "OPTIONS").Name("get-set")
	r.HandleFunc("/set/{id}", trainingHandler.HandleUpdateSet).Methods("PATCH", "OPTIONS").Name("update-set")
	r.HandleFunc("/set/{id}", trainingHandler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")

	exercisesHandler := exercises.NewHandler(exercisesService)
	r.HandleFunc("/exercise/names", exercisesHandler.HandleNames).Methods("GET", "OPTIONS").Name("exercise-names")
	r.HandleFunc("/exercise/score", exercisesHandler.HandleScore).Methods("POST", "OPTIONS").Name("exercise-score")
	r.HandleFunc("/exercise", exercisesHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercise/{name}/progression", exercisesHandler.HandleProgression).Methods("GET", "OPTIONS").Name("exercise-progression")
	r.HandleFunc("/exercise/{name}/scores", exercisesHandler.HandleScores).Methods("GET", "OPTIONS").Name("exercise-scores")
	r.HandleFunc("/exercise/{name}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercise/{name}", exercisesHandler.HandleRename).Methods("PATCH", "OPTIONS").Name("rename-exercise")
	r.HandleFunc("/exercise/{name}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest(middleware.DefaultMaxBodyBytes))
	// before the session check, so floods never reach the session store
	r.Use(middleware.RateLimit(s.rateLimiter, s.metricsManager,
		redis_rate.Limit{
			Rate:   s.config.RateLimitAllowed,
			Burst:  s.config.RateLimitAllowed,
			Period: s.config.RateLimitWindow.Duration,
		},
		map[string]redis_rate.Limit{
			"login":         redis_rate.PerMinute(s.config.LoginRateLimitAllowedPerMin),
			"authenticated": redis_rate.PerMinute(s.config.AuthenticatedRateLimitAllowedPerMin),
		},
	))
	r.Use(authMiddleware.AuthCheck())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
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

	// stop taking requests before the stores go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
