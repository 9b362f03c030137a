package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/internal/usecases/account"
	"github.com/Alphawga/insightFlow/internal/usecases/connecting"
	"github.com/Alphawga/insightFlow/internal/usecases/syncing"
	"github.com/Alphawga/insightFlow/pkg/apiErrors"
	"github.com/Alphawga/insightFlow/pkg/log"
	"github.com/Alphawga/insightFlow/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithField("error", err.Error()).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta da API
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		accountErr *account.AccountError
		connectErr *connecting.ConnectError
		syncErr    *syncing.SyncError
	)

	switch {
	case errors.As(err, &accountErr):
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
	case errors.As(err, &connectErr):
		apiErrors.WriteError(w, connectErr.Code, connectErr.Error(), nil)
	case errors.As(err, &syncErr):
		apiErrors.WriteError(w, syncErr.Code, syncErr.Error(), map[string]any{
			"account_id": syncErr.AccountID,
			"phase":      syncErr.Phase,
		})
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// authorizeAccount carrega a conta da rota e confere se o workspace dela está no token
func authorizeAccount(w http.ResponseWriter, r *http.Request, service account.AccountService, accountID string) (*domain.Account, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}

	acc, err := service.GetAccount(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, err, "Erro ao buscar conta")
		return nil, false
	}

	if !claims.CanAccessWorkspace(acc.WorkspaceID) {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id":      claims.UserID,
			"account_id":   accountID,
			"workspace_id": acc.WorkspaceID,
		}).Warn("Acesso negado à conta")
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Acesso negado à conta", nil)
		return nil, false
	}

	return acc, true
}
