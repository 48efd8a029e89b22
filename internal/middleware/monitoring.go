package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/templui/mindspace/internal/metrics"
)

// Monitor records request counts and latencies per route pattern.
// ServeMux fills in r.Pattern during dispatch, so Monitor must hand the same
// *http.Request to the mux: place it after any middleware that clones the
// request.
func Monitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrap(w)

		next.ServeHTTP(rw, r)

		route := routePattern(r)
		metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rw.statusCode)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
