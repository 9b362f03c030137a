package middleware

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Alphawga/insightFlow/pkg/apiErrors"
	"github.com/Alphawga/insightFlow/pkg/log"
)

// WorkspaceAccess exige que o workspace da rota (parâmetro do httprouter ou,
// na falta dele, da query string) esteja entre os workspaces do token.
func WorkspaceAccess(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			workspaceID := httprouter.ParamsFromContext(r.Context()).ByName(param)
			if workspaceID == "" {
				workspaceID = r.URL.Query().Get(param)
			}
			if workspaceID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "workspace_id é obrigatório", nil)
				return
			}

			if !claims.CanAccessWorkspace(workspaceID) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id":      claims.UserID,
					"workspace_id": workspaceID,
				}).Warn("Acesso negado ao workspace")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Acesso negado ao workspace", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
