package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/gymstats/internal/auth"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every request at trace level once it is served.
// The principal is only known when the auth middleware runs before this one.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			fields := log.Fields{
				"method":   r.Method,
				"route":    routeTemplate(r),
				"status":   rw.statusCode,
				"duration": time.Since(started).String(),
				"ua":       r.Header.Get("User-Agent"),
			}
			if p, ok := auth.FromContext(r.Context()); ok {
				fields["user_id"] = p.UserID
			}
			log.WithFields(fields).Trace("request")
		})
	}
}
