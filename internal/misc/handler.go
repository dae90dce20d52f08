package misc

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck reports whether a backing dependency (db, redis) is reachable.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	versionInfo  string
	healthChecks map[string]HealthCheck
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func NewHandler(versionInfo string, healthChecks map[string]HealthCheck) *Handler {
	return &Handler{
		versionInfo:  versionInfo,
		healthChecks: healthChecks,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleVersion).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
	mainRouter.HandleFunc("/myip", handler.handleClientIp).Methods("GET").Name("myip")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(handler.healthChecks))
	for name := range handler.healthChecks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := healthResponse{Status: "ok", Checks: map[string]string{}}
	for _, name := range names {
		if err := handler.healthChecks[name](ctx); err != nil {
			log.Warnf("health check [%s] failed: %s", name, err)
			resp.Status = "degraded"
			resp.Checks[name] = err.Error()
			continue
		}
		resp.Checks[name] = "ok"
	}
	span.SetAttributes(attribute.String("health.status", resp.Status))

	if resp.Status != "ok" {
		span.SetStatus(codes.Error, "degraded")
		pkg.WriteJSON(w, resp, http.StatusServiceUnavailable)
		return
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) handleClientIp(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.myip")
	defer span.End()

	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("read client ip: %s", err)
		pkg.WriteError(w, "failed to get IP", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("user.ip", ip))
	pkg.WriteTextResponseOK(w, ip)
}
