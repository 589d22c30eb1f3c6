package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/vfg2006/digital-grade-api/pkg/apiErrors"
	"github.com/vfg2006/digital-grade-api/pkg/log"
)

// LogPanicMiddleware recupera panics do handler, registra a pilha e responde 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.ForContext(r.Context()).WithFields(log.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
						"panic":  err,
						"stack":  string(debug.Stack()),
					}).Error("Panic recuperado durante a requisição")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
