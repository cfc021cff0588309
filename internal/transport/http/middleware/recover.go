package middleware

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"timetally/internal/transport/http/api"
)

// Recoverer converts a handler panic into a 500 so one bad request cannot
// take the process down. The computation core should never panic on validated
// input; if it does, the stack ends up in the log, not the response.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.String("requestId", GetRequestID(r.Context())),
						zap.ByteString("stack", debug.Stack()),
					)
					api.Fail(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
