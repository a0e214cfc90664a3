package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes bounds how much of an unread body is consumed so the connection can be reused.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest drains what handlers left unread (up to maxDrainBytes) and closes the body.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			if n, err := io.Copy(io.Discard, io.LimitReader(r.Body, maxDrainBytes)); err != nil {
				log.Tracef("drain %s body after %d bytes: %s", r.URL.Path, n, err)
			}
			if err := r.Body.Close(); err != nil {
				log.Tracef("close %s body: %s", r.URL.Path, err)
			}
		})
	}
}
