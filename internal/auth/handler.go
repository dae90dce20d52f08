package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/abcde-dev/abcdecom/internal/middleware"
	"github.com/abcde-dev/abcdecom/internal/telemetry/metrics"
	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type adminService interface {
	Register(ctx context.Context, username, password string) (*Admin, error)
	Login(ctx context.Context, username, password string) (string, error)
	Admin(ctx context.Context, id int) (*Admin, error)
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type Handler struct {
	service        adminService
	metricsManager *metrics.Manager
}

func NewHandler(service adminService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
) {
	rootRouter := mainRouter.PathPrefix("/api/root").Subrouter()
	rootRouter.HandleFunc("/register", handler.handleRegister).Methods("POST", "OPTIONS").Name("admin-register")
	rootRouter.HandleFunc("/login", handler.handleLogin).Methods("POST", "OPTIONS").Name("admin-login")
	rootRouter.HandleFunc("/user/{id}", handler.handleGetAdmin).Methods("GET", "OPTIONS").Name("admin-get")

	// rate limit register and login to slow down credential guessing
	rootRouter.Use(middleware.RateLimit(rateLimiter, "admin", allowedPerMin, handler.metricsManager))
}

func (handler *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	creds, ok := readCredentials(w, r)
	if !ok {
		return
	}

	admin, err := handler.service.Register(ctx, creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			pkg.WriteMessage(w, "Username already exists", http.StatusBadRequest)
			return
		}
		log.Errorf("register admin: %s", err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("admin.id", admin.ID))
	pkg.WriteMessage(w, "Root user created successfully", http.StatusCreated)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	creds, ok := readCredentials(w, r)
	if !ok {
		return
	}

	token, err := handler.service.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Tracef("failed login attempt for user: %s", creds.Username)
			handler.countLogin("failed")
			pkg.WriteMessage(w, "Invalid credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login: %s", err)
		handler.countLogin("error")
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	handler.countLogin("ok")
	pkg.WriteJSON(w, LoginResponse{
		Message: "Login successful",
		Token:   token,
	}, http.StatusOK)
}

func (handler *Handler) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.getAdmin")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteMessage(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	admin, err := handler.service.Admin(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			pkg.WriteMessage(w, "User not found", http.StatusNotFound)
			return
		}
		log.Errorf("get admin %d: %s", id, err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, admin, http.StatusOK)
}

func (handler *Handler) countLogin(result string) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterLogins.WithLabelValues(result).Inc()
	}
}

// readCredentials accepts a JSON body or a form, and writes the 400 itself when the input is invalid.
func readCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var creds credentialsRequest
	if pkg.IsJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			log.Errorf("credentials, unmarshal json params: %s", err)
			pkg.WriteMessage(w, "Invalid request body", http.StatusBadRequest)
			return creds, false
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("credentials, parse form error: %s", err)
			pkg.WriteMessage(w, "Invalid request body", http.StatusBadRequest)
			return creds, false
		}
		creds = credentialsRequest{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	if err := pkg.Validate(creds); err != nil {
		pkg.WriteMessage(w, "Username and password are required", http.StatusBadRequest)
		return creds, false
	}
	return creds, true
}
