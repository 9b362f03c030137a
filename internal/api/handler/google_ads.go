package handler

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/internal/usecases/connecting"
	"github.com/Alphawga/insightFlow/pkg/apiErrors"
	"github.com/Alphawga/insightFlow/pkg/log"
)

func GetAuthURL(connector connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceID := r.URL.Query().Get("workspace_id")

		authURL, err := connector.GetAuthURL(workspaceID)
		if err != nil {
			writeServiceError(w, err, "Erro ao gerar URL de autorização")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"url": authURL})
	})
}

// OAuthCallback recebe o retorno do consentimento do Google e devolve o usuário ao
// onboarding do front-end. O state carrega o workspace que iniciou o fluxo.
func OAuthCallback(connector connecting.Connector, appURL string) http.Handler {
	onboarding := strings.TrimRight(appURL, "/") + "/onboarding"

	redirect := func(w http.ResponseWriter, r *http.Request, key, value string) {
		target := onboarding + "?" + url.Values{key: []string{value}}.Encode()
		http.Redirect(w, r, target, http.StatusFound)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		logger := log.ForContext(r.Context())

		if oauthErr := query.Get("error"); oauthErr != "" {
			logger.WithField("error", oauthErr).Warn("Consentimento do Google Ads recusado")
			redirect(w, r, "error", oauthErr)
			return
		}

		code := query.Get("code")
		if code == "" {
			redirect(w, r, "error", "no_code")
			return
		}

		workspaceID := query.Get("state")
		accounts, err := connector.ConnectAccount(r.Context(), workspaceID, code)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Error("Erro no callback do Google Ads")
			redirect(w, r, "error", err.Error())
			return
		}

		logger.WithFields(log.Fields{
			"workspace_id": workspaceID,
			"accounts":     len(accounts),
		}).Info("Contas Google Ads conectadas pelo callback")

		redirect(w, r, "step", "conversion")
	})
}

func ConnectAccount(connector connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("workspace_id")

		var req domain.ConnectAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		accounts, err := connector.ConnectAccount(r.Context(), workspaceID, req.Code)
		if err != nil {
			writeServiceError(w, err, "Erro ao conectar conta Google Ads")
			return
		}

		resp := domain.ConnectAccountResponse{Accounts: make([]*domain.AccountResponse, 0, len(accounts))}
		for _, acc := range accounts {
			resp.Accounts = append(resp.Accounts, domain.NewAccountResponse(acc))
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
