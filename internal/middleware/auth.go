package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type tokenVerifier interface {
	VerifyToken(token string) (int, error)
}

type adminIDKey struct{}

// AdminIDFromContext returns the id of the admin the request was authenticated for.
func AdminIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(adminIDKey{}).(int)
	return id, ok
}

type AuthMiddlewareHandler struct {
	verifier        tokenVerifier
	protectedRoutes map[string]bool
	enabled         bool
}

// NewAuthMiddlewareHandler gates the named routes behind a bearer token.
// With enabled set to false every route passes through.
func NewAuthMiddlewareHandler(
	verifier tokenVerifier,
	protectedRoutes []string,
	enabled bool,
) *AuthMiddlewareHandler {
	routes := make(map[string]bool, len(protectedRoutes))
	for _, name := range protectedRoutes {
		routes[name] = true
	}
	return &AuthMiddlewareHandler{
		verifier:        verifier,
		protectedRoutes: routes,
		enabled:         enabled,
	}
}

func (h *AuthMiddlewareHandler) routeIsProtected(r *http.Request) bool {
	route := mux.CurrentRoute(r)
	if route == nil {
		return false
	}
	return h.protectedRoutes[route.GetName()]
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if !h.enabled || !h.routeIsProtected(r) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := bearerToken(r)
			adminID, err := h.verifier.VerifyToken(authToken)
			if err != nil {
				if authToken == "" {
					log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
					pkg.WriteMessage(w, "Access Denied: No token", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "missing-auth-token")
					return
				}
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				pkg.WriteMessage(w, "Invalid Token", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-auth-token")
				if !errors.Is(err, context.Canceled) {
					span.RecordError(err)
				}
				return
			}

			span.SetAttributes(attribute.Int("admin.id", adminID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, adminIDKey{}, adminID)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// A header with any other scheme is returned whole so it fails verification as an
// invalid credential; only a missing header yields "".
func bearerToken(r *http.Request) string {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return authHeader
	}
	if token = strings.TrimSpace(token); token == "" {
		return authHeader
	}
	return token
}
