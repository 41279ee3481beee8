package middleware

import (
	"context"
	"net/http"

	"github.com/easyeats/easyeats-server/internal/api/http/response"
	"github.com/easyeats/easyeats-server/internal/logger"
	"github.com/easyeats/easyeats-server/internal/model"
)

// Reconciler resolves an Authorization header to the local account.
type Reconciler interface {
	Reconcile(ctx context.Context, authorization string) (model.Account, error)
}

// Authenticate reconciles bearer credentials and injects the account id into
// the request context.
type Authenticate struct {
	reconciler     Reconciler
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(reconciler Reconciler, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{reconciler: reconciler, contextManager: contextManager, logger: logger}
}

// Handle wraps next so it only runs with a reconciled account in context.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, err := m.reconciler.Reconcile(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			response.Error(w, m.logger, err)
			return
		}

		ctx := m.contextManager.SetAccountIDToContext(r.Context(), account.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
