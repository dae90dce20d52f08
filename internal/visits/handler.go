package visits

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/abcde-dev/abcdecom/internal/telemetry/metrics"
	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=visits_test

type visitRepo interface {
	Add(ctx context.Context, visit *Visit) error
	All(ctx context.Context) ([]*Visit, error)
}

type newVisitRequest struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,simple_email"`
	Designation string `json:"designation" validate:"required,oneof=Student Professor Employee Other"`
}

type Handler struct {
	repo           visitRepo
	exporter       *Exporter
	metricsManager *metrics.Manager
}

func NewHandler(repo visitRepo, exporter *Exporter, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		exporter:       exporter,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	visitsRouter := router.PathPrefix("/api/blogvisits").Subrouter()
	visitsRouter.HandleFunc("", handler.handleAdd).Methods("POST", "OPTIONS").Name("visit-add")
	visitsRouter.HandleFunc("", handler.handleAll).Methods("GET").Name("visit-list")
	visitsRouter.HandleFunc("/by-month", handler.handleByMonth).Methods("GET").Name("visit-by-month")
	visitsRouter.HandleFunc("/designation-count", handler.handleDesignationCount).Methods("GET").Name("visit-designation-count")
	visitsRouter.HandleFunc("/export", handler.handleExport).Methods("GET").Name("visit-export")
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.visits.add")
	defer span.End()

	var req newVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add visit, unmarshal json params: %s", err)
		pkg.WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.Username = pkg.SanitizeText(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.Designation = strings.TrimSpace(req.Designation)
	if err := pkg.Validate(req); err != nil {
		pkg.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	visit := &Visit{
		Username:    req.Username,
		Email:       req.Email,
		Designation: req.Designation,
	}
	if err := handler.repo.Add(ctx, visit); err != nil {
		if errors.Is(err, ErrInvalidDesignation) {
			pkg.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add visit: %s", err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("visit.designation", visit.Designation))
	if handler.metricsManager != nil {
		handler.metricsManager.CounterBlogVisits.WithLabelValues(visit.Designation).Inc()
	}

	pkg.WriteJSON(w, visit, http.StatusCreated)
}

func (handler *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	visits, ok := handler.allVisits(w, r, "handler.visits.all")
	if !ok {
		return
	}
	if visits == nil {
		visits = []*Visit{}
	}
	pkg.WriteJSON(w, visits, http.StatusOK)
}

func (handler *Handler) handleByMonth(w http.ResponseWriter, r *http.Request) {
	visits, ok := handler.allVisits(w, r, "handler.visits.byMonth")
	if !ok {
		return
	}
	pkg.WriteJSON(w, GroupByMonth(visits), http.StatusOK)
}

func (handler *Handler) handleDesignationCount(w http.ResponseWriter, r *http.Request) {
	visits, ok := handler.allVisits(w, r, "handler.visits.designationCount")
	if !ok {
		return
	}
	pkg.WriteJSON(w, GroupByDesignation(visits), http.StatusOK)
}

func (handler *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.visits.export")
	defer span.End()

	visits, err := handler.repo.All(ctx)
	if err != nil {
		log.Errorf("export visits, get all: %s", err)
		pkg.WriteError(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	// render fully before writing, so a failure still gets a clean 500
	var buf bytes.Buffer
	if err := handler.exporter.Write(&buf, visits); err != nil {
		log.Errorf("export visits: %s", err)
		pkg.WriteError(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("visits.count", len(visits)))
	w.Header().Set("Content-Disposition", "attachment; filename="+ExportFilename)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.XLSX, buf.Bytes())
}

func (handler *Handler) allVisits(w http.ResponseWriter, r *http.Request, spanName string) ([]*Visit, bool) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	visits, err := handler.repo.All(ctx)
	if err != nil {
		log.Errorf("get all visits: %s", err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}

	span.SetAttributes(attribute.Int("visits.count", len(visits)))
	return visits, true
}
