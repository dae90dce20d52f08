package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// DrainAndCloseRequest discards whatever the handler left unread in the body, up to maxDrain bytes,
// so the connection can be reused. Bodies larger than that are just closed.
func DrainAndCloseRequest(maxDrain int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			if drained, err := io.CopyN(io.Discard, r.Body, maxDrain); err == nil {
				log.Tracef("request body for [%s] not fully drained after %d bytes", r.URL.Path, drained)
			}
			if err := r.Body.Close(); err != nil {
				log.Tracef("close request body [%s]: %s", r.URL.Path, err)
			}
		})
	}
}
