package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/shashiranjanraj/verandah/config"
	"github.com/shashiranjanraj/verandah/pkg/logger"
	"github.com/shashiranjanraj/verandah/pkg/response"
)

// Recovery catches any panic in downstream handlers, logs the stack trace,
// and returns a 500 Internal Server Error to the client. Outside production
// the panic value is included in the response to ease debugging.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()
				logger.Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(stack),
					"method", r.Method,
					"path", r.URL.Path,
				)

				msg := "Internal server error"
				if env := config.AppEnv(); env != "production" && env != "prod" {
					msg = fmt.Sprintf("panic: %v", err)
				}
				response.ServerError(w, msg)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
