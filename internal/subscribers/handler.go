package subscribers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/abcde-dev/abcdecom/internal/mailer"
	"github.com/abcde-dev/abcdecom/internal/middleware"
	"github.com/abcde-dev/abcdecom/internal/telemetry/metrics"
	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=subscribers_test

type subscriberRepo interface {
	Add(ctx context.Context, email string) (*Subscriber, error)
	Exists(ctx context.Context, email string) (bool, error)
	All(ctx context.Context) ([]*Subscriber, error)
	Emails(ctx context.Context) ([]string, error)
}

type mailDispatcher interface {
	Dispatch(ctx context.Context, recipients []string, subject, body string) (mailer.Summary, error)
	DispatchOne(ctx context.Context, recipient, subject, body string) (mailer.Summary, error)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

type broadcastRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type SubscribeResponse struct {
	Message string      `json:"message"`
	User    *Subscriber `json:"user"`
}

type Handler struct {
	repo           subscriberRepo
	dispatcher     mailDispatcher
	metricsManager *metrics.Manager
}

func NewHandler(
	repo subscriberRepo,
	dispatcher mailDispatcher,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		dispatcher:     dispatcher,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	subscribeAllowedPerMin int,
) {
	subscribeRateLimit := middleware.RateLimit(rateLimiter, "subscribe", subscribeAllowedPerMin, handler.metricsManager)
	router.Handle("/api/users", subscribeRateLimit(http.HandlerFunc(handler.handleSubscribe))).
		Methods("POST", "OPTIONS").Name("subscriber-add")
	router.HandleFunc("/api/users", handler.handleAll).Methods("GET").Name("subscriber-list")
	router.HandleFunc("/api/send-mails", handler.handleBroadcast).Methods("POST", "OPTIONS").Name("subscriber-broadcast")
}

func (handler *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.subscribers.subscribe")
	defer span.End()

	var req subscribeRequest
	if pkg.IsJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("subscribe, unmarshal json params: %s", err)
			pkg.WriteError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("subscribe, parse form error: %s", err)
			pkg.WriteError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		req.Email = r.Form.Get("email")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		pkg.WriteError(w, "Email is required", http.StatusBadRequest)
		return
	}
	if !pkg.IsValidEmail(email) {
		pkg.WriteError(w, "Invalid email format", http.StatusBadRequest)
		return
	}

	// advisory only, the unique constraint decides
	exists, err := handler.repo.Exists(ctx, email)
	if err != nil {
		log.Errorf("subscribe, check existing %s: %s", email, err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if exists {
		pkg.WriteError(w, "Email already exists", http.StatusBadRequest)
		return
	}

	subscriber, err := handler.repo.Add(ctx, email)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			pkg.WriteError(w, "Email already exists", http.StatusBadRequest)
			return
		}
		log.Errorf("subscribe, add %s: %s", email, err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("subscriber.id", subscriber.ID))
	if handler.metricsManager != nil {
		handler.metricsManager.CounterSubscribers.Inc()
	}
	log.Tracef("new subscriber %d added", subscriber.ID)

	// a client disconnect must not cut the welcome mail short
	if _, err := handler.dispatcher.DispatchOne(
		context.WithoutCancel(ctx), subscriber.Email, mailer.WelcomeSubject, mailer.WelcomeBody,
	); err != nil {
		log.Errorf("subscribe, welcome mail to %s: %s", subscriber.Email, err)
	}

	pkg.WriteJSON(w, SubscribeResponse{
		Message: "Email saved successfully!",
		User:    subscriber,
	}, http.StatusCreated)
}

func (handler *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.subscribers.all")
	defer span.End()

	subscribers, err := handler.repo.All(ctx)
	if err != nil {
		log.Errorf("get all subscribers: %s", err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if subscribers == nil {
		subscribers = []*Subscriber{}
	}

	span.SetAttributes(attribute.Int("subscribers.count", len(subscribers)))
	pkg.WriteJSON(w, subscribers, http.StatusOK)
}

func (handler *Handler) handleBroadcast(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.subscribers.broadcast")
	defer span.End()

	var req broadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("broadcast, unmarshal json params: %s", err)
		pkg.WriteError(w, "Message and subject are required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		pkg.WriteError(w, "Message and subject are required", http.StatusBadRequest)
		return
	}

	emails, err := handler.repo.Emails(ctx)
	if err != nil {
		log.Errorf("broadcast, get emails: %s", err)
		pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(emails) == 0 {
		pkg.WriteError(w, "No emails found in the database", http.StatusBadRequest)
		return
	}

	summary, err := handler.dispatcher.Dispatch(context.WithoutCancel(ctx), emails, req.Subject, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, mailer.ErrMissingFields):
			pkg.WriteError(w, "Message and subject are required", http.StatusBadRequest)
		case errors.Is(err, mailer.ErrEmptyRecipientList):
			pkg.WriteError(w, "No emails found in the database", http.StatusBadRequest)
		default:
			log.Errorf("broadcast [%s]: %s", req.Subject, err)
			pkg.WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	span.SetAttributes(
		attribute.Int("mail.sent", summary.Sent),
		attribute.Int("mail.failed", summary.Failed),
	)
	if summary.Failed > 0 {
		log.Warnf("broadcast [%s]: %d of %d failed: %v", req.Subject, summary.Failed, summary.Attempted, summary.FailedRecipients)
	}

	pkg.WriteMessage(w, "Emails sent successfully!", http.StatusOK)
}
