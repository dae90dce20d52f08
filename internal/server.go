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
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/abcde-dev/abcdecom/internal/auth"
	"github.com/abcde-dev/abcdecom/internal/blog"
	"github.com/abcde-dev/abcdecom/internal/config"
	"github.com/abcde-dev/abcdecom/internal/db"
	"github.com/abcde-dev/abcdecom/internal/mailer"
	"github.com/abcde-dev/abcdecom/internal/media"
	"github.com/abcde-dev/abcdecom/internal/middleware"
	"github.com/abcde-dev/abcdecom/internal/misc"
	"github.com/abcde-dev/abcdecom/internal/projects"
	"github.com/abcde-dev/abcdecom/internal/subscribers"
	"github.com/abcde-dev/abcdecom/internal/telemetry/metrics"
	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/internal/visits"
)

// AdminRoutes are the named routes that require a valid admin bearer token.
var AdminRoutes = []string{
	"admin-get",
	"subscriber-list",
	"subscriber-broadcast",
	"project-add",
	"project-update",
	"project-delete",
	"blog-add",
	"blog-update",
	"blog-delete",
	"visit-list",
	"visit-by-month",
	"visit-designation-count",
	"visit-export",
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	authService *auth.Service
	dispatcher  *mailer.Dispatcher
	mediaStore  *media.DiskStore

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	JWTSecret               string
	SMTPUsername            string
	SMTPPassword            string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (_ *Server, err error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		ConnString:     cfg.PostgresURL,
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		MaxConns:       cfg.PostgresMaxConns,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	defer func() {
		if err != nil {
			dbPool.Close()
		}
	}()

	if pingErr := dbPool.Ping(ctx); pingErr != nil {
		log.Warnf("failed to ping db: %s", pingErr)
	} else if err = db.Bootstrap(ctx, dbPool); err != nil {
		return nil, err
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})
	defer func() {
		if err != nil {
			if closeErr := rdb.Close(); closeErr != nil {
				log.Errorf("close redis client: %s", closeErr)
			}
		}
	}()

	rdbStatus := rdb.Ping(ctx)
	if pingErr := rdbStatus.Err(); pingErr != nil {
		log.Errorf("--> failed to ping redis: %s", pingErr)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "abcde-backend", rdb)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			otelShutdown()
		}
	}()

	tokenIssuer, err := auth.NewTokenIssuer(params.JWTSecret, cfg.TokenValidity())
	if err != nil {
		return nil, fmt.Errorf("new token issuer: %w", err)
	}

	smtpSender, err := mailer.NewSMTPSender(mailer.SMTPSenderParams{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: params.SMTPUsername,
		Password: params.SMTPPassword,
		From:     cfg.MailFrom,
	})
	if err != nil {
		return nil, fmt.Errorf("new smtp sender: %w", err)
	}

	mediaStore, err := media.NewDiskStore(cfg.MediaRootPath, cfg.MediaBaseURL, cfg.MaxUploadSize())
	if err != nil {
		return nil, fmt.Errorf("new media store: %w", err)
	}

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),
		authService: auth.NewService(auth.NewRepo(dbPool), tokenIssuer),
		dispatcher:  mailer.NewDispatcher(smtpSender, cfg.MailDelay(), metricsManager),
		mediaStore:  mediaStore,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	misc.NewHandler(s.versionInfo, s.healthChecks()).SetupRoutes(r)

	authHandler := auth.NewHandler(s.authService, s.metricsManager)
	authHandler.SetupRoutes(r, s.rateLimiter, s.config.AuthRateLimitPerMin)

	subscribersHandler := subscribers.NewHandler(
		subscribers.NewRepo(s.dbPool),
		s.dispatcher,
		s.metricsManager,
	)
	subscribersHandler.SetupRoutes(r, s.rateLimiter, s.config.SubscribeRateLimitPerMin)

	projects.NewHandler(projects.NewRepo(s.dbPool)).SetupRoutes(r)

	blogHandler := blog.NewHandler(
		blog.NewCachingRepo(blog.NewRepo(s.dbPool), s.redisClient, s.config.LatestBlogsCacheTTL()),
		s.mediaStore,
		s.config.MaxUploadSize(),
	)
	blogHandler.SetupRoutes(r)

	media.NewHandler(s.mediaStore).SetupRoutes(r)

	visitsHandler := visits.NewHandler(
		visits.NewRepo(s.dbPool),
		visits.NewExporter(nil),
		s.metricsManager,
	)
	visitsHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.authService,
		AdminRoutes,
		s.config.RequireAdminAuth,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest(s.config.MaxUploadSize()))

	return r
}

func (s *Server) healthChecks() map[string]misc.HealthCheck {
	checks := map[string]misc.HealthCheck{}
	if s.dbPool != nil {
		checks["db"] = s.dbPool.Ping
	}
	if s.redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return s.redisClient.Ping(ctx).Err()
		}
	}
	return checks
}

func (s *Server) Serve(host string, port int) {
	s.httpServer = newAPIServer(
		net.JoinHostPort(host, strconv.Itoa(port)),
		s.routerSetup(),
		defaultAPIServerTimeouts,
	)
	s.httpServer.ConnState = s.connStateMetrics

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{Registry: s.promRegistry}),
		"metrics",
	)).Methods("GET").Name("metrics")
	s.metricsHttpServer = &http.Server{
		Addr:              net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort),
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go listenAndServe("api", s.httpServer)
	go listenAndServe("metrics", s.metricsHttpServer)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

type apiServerTimeouts struct {
	readHeader time.Duration
	read       time.Duration
	idle       time.Duration
}

var defaultAPIServerTimeouts = apiServerTimeouts{
	readHeader: 10 * time.Second,
	read:       time.Minute,
	idle:       2 * time.Minute,
}

// newAPIServer leaves WriteTimeout unset: a broadcast answers only after the last
// mail and its throttle delay, which grows with the subscriber count.
func newAPIServer(addr string, handler http.Handler, timeouts apiServerTimeouts) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.readHeader,
		ReadTimeout:       timeouts.read,
		IdleTimeout:       timeouts.idle,
	}
}

func listenAndServe(name string, srv *http.Server) {
	log.Infof(" > %s server listening on [%s]", name, srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("%s server stopped: %s", name, err)
	}
}

// GracefulShutdown stops accepting requests first, since in-flight broadcasts
// still need the db pool, then releases the backing clients.
func (s *Server) GracefulShutdown() {
	log.Debugln("shutting down ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for name, srv := range map[string]*http.Server{"api": s.httpServer, "metrics": s.metricsHttpServer} {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("%s server shutdown: %s", name, err)
			continue
		}
		log.Debugf("%s server stopped", name)
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
	}
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}
	if s.dbPool != nil {
		s.dbPool.Close()
	}

	flushed := sentry.Flush(5 * time.Second)
	log.Warnf("shutdown complete (sentry flushed: %t)", flushed)
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
