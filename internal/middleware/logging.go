package middleware

import (
	"net/http"
	"time"

	"github.com/abcde-dev/abcdecom/pkg"

	log "github.com/sirupsen/logrus"
)

// LogRequest traces every request together with its matched route and how long it took.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !log.IsLevelEnabled(log.TraceLevel) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			fields := log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"route":  routeName(r),
				"ua":     r.Header.Get("User-Agent"),
			}
			if ip, err := pkg.ReadUserIP(r); err == nil {
				fields["ip"] = ip
			}

			next.ServeHTTP(w, r)

			fields["took"] = time.Since(start).String()
			log.WithFields(fields).Trace("request served")
		})
	}
}
