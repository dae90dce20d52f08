package pkg

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ReadUserIP resolves the client address. Behind nginx the proxy headers carry it,
// otherwise the connection's remote address is used.
func ReadUserIP(r *http.Request) (string, error) {
	candidate := firstNonEmpty(
		r.Header.Get("X-Real-Ip"),
		forwardedClient(r.Header.Get("X-Forwarded-For")),
		r.RemoteAddr,
	)

	if host, _, err := net.SplitHostPort(candidate); err == nil {
		candidate = host
	}
	if net.ParseIP(candidate) == nil {
		return "", fmt.Errorf("invalid client ip [%s]", candidate)
	}
	return candidate, nil
}

// forwardedClient picks the originating client from an X-Forwarded-For chain.
func forwardedClient(header string) string {
	client, _, _ := strings.Cut(header, ",")
	return strings.TrimSpace(client)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
