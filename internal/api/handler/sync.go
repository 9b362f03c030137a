package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/internal/usecases/account"
	"github.com/Alphawga/insightFlow/internal/usecases/syncing"
	"github.com/Alphawga/insightFlow/pkg/log"
)

// SyncAccount roda a sincronização completa dentro da requisição. Uma
// sincronização já em andamento responde SYNC_001 em vez de enfileirar outra.
func SyncAccount(accounts account.AccountService, orchestrator syncing.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, ok := authorizeAccount(w, r, accounts, accountID); !ok {
			return
		}

		report, err := orchestrator.Sync(r.Context(), accountID)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Warn("Sincronização manual falhou")
			writeServiceError(w, err, "Erro ao sincronizar conta")
			return
		}

		writeJSON(w, http.StatusOK, domain.SyncAccountResponse{Success: true, Report: report})
	})
}
