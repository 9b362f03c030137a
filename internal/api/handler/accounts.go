package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/Alphawga/insightFlow/internal/usecases/account"
	"github.com/Alphawga/insightFlow/pkg/apiErrors"
)

const maxFailuresLimit = 100

func GetConnectedAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("workspace_id")

		acc, err := service.GetConnectedAccount(r.Context(), workspaceID)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar conta conectada")
			return
		}

		writeJSON(w, http.StatusOK, acc)
	})
}

func ListAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("workspace_id")

		accounts, err := service.ListAccounts(r.Context(), workspaceID)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar contas")
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	})
}

func ListCampaigns(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("workspace_id")

		campaigns, err := service.ListCampaigns(r.Context(), workspaceID)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	})
}

func GetConversionActions(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, ok := authorizeAccount(w, r, service, accountID); !ok {
			return
		}

		actions, err := service.GetConversionActions(r.Context(), accountID)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar ações de conversão")
			return
		}

		writeJSON(w, http.StatusOK, actions)
	})
}

func SetPrimaryConversion(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")
		if _, ok := authorizeAccount(w, r, service, accountID); !ok {
			return
		}

		conversionID := params.ByName("conversion_id")
		if err := service.SetPrimaryConversion(r.Context(), accountID, conversionID); err != nil {
			writeServiceError(w, err, "Erro ao definir conversão primária")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":              true,
			"conversion_action_id": conversionID,
		})
	})
}

func ListSyncFailures(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 || parsed > maxFailuresLimit {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve estar entre 1 e 100", nil)
				return
			}
			limit = parsed
		}

		if _, ok := authorizeAccount(w, r, service, accountID); !ok {
			return
		}

		failures, err := service.ListSyncFailures(r.Context(), accountID, limit)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar falhas de sincronização")
			return
		}

		writeJSON(w, http.StatusOK, failures)
	})
}
