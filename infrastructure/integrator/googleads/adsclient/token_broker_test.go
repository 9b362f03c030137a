package adsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	adsdomain "github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/domain"
	"github.com/Alphawga/insightFlow/internal/config"
)

func newTestBroker(t *testing.T, tokenHandler http.HandlerFunc) *OAuthTokenBroker {
	t.Helper()

	srv := httptest.NewServer(tokenHandler)
	t.Cleanup(srv.Close)

	cfg := config.GoogleAds{
		ClientID:       "client-id",
		ClientSecret:   "client-secret",
		DeveloperToken: "dev-token",
		APIURL:         srv.URL,
		APIVersion:     "v17",
		RedirectURL:    "http://localhost:3000/api/auth/google-ads/callback",
	}

	return NewTokenBroker(cfg,
		WithHTTPClient(srv.Client()),
		WithEndpoint(oauth2.Endpoint{
			AuthURL:   srv.URL + "/auth",
			TokenURL:  srv.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		}),
	)
}

func writeToken(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestOAuthTokenBroker_AuthURL(t *testing.T) {
	broker := NewTokenBroker(config.GoogleAds{
		ClientID:    "client-id",
		RedirectURL: "http://localhost/callback",
	})

	raw := broker.AuthURL("ws-1")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "ws-1", query.Get("state"))
	assert.Equal(t, "offline", query.Get("access_type"))
	assert.Equal(t, "consent", query.Get("prompt"))
	assert.Equal(t, AdwordsScope, query.Get("scope"))
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "http://localhost/callback", query.Get("redirect_uri"))
}

func TestOAuthTokenBroker_ExchangeCode(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		code        string
		wantRefresh string
		wantErr     error
	}{
		{
			name: "Deve trocar o código pelas credenciais",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = r.ParseForm()
				if r.Form.Get("code") != "auth-code" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				writeToken(w, `{"access_token":"access","refresh_token":"refresh","token_type":"Bearer","expires_in":3600}`)
			},
			code:        "auth-code",
			wantRefresh: "refresh",
		},
		{
			name: "Deve falhar quando o endpoint recusa o código",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			},
			code:    "bad-code",
			wantErr: adsdomain.ErrAuthExchange,
		},
		{
			name: "Deve falhar quando a resposta não traz refresh token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeToken(w, `{"access_token":"access","token_type":"Bearer","expires_in":3600}`)
			},
			code:    "auth-code",
			wantErr: adsdomain.ErrAuthExchange,
		},
		{
			name: "Deve falhar com código vazio",
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("endpoint de token não deveria ser chamado")
			},
			wantErr: adsdomain.ErrAuthExchange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broker := newTestBroker(t, tt.handler)

			creds, err := broker.ExchangeCode(context.Background(), tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, creds)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRefresh, creds.RefreshToken)
			assert.Equal(t, "access", creds.AccessToken)
		})
	}
}

func TestOAuthTokenBroker_DeriveClient(t *testing.T) {
	t.Run("Deve retornar credencial expirada quando o refresh token é revogado", func(t *testing.T) {
		broker := newTestBroker(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Token has been expired or revoked."}`))
		})

		client, err := broker.DeriveClient(context.Background(), "revoked")

		assert.ErrorIs(t, err, adsdomain.ErrCredentialExpired)
		assert.Nil(t, client)
	})

	t.Run("Deve tratar indisponibilidade do endpoint de token como erro remoto", func(t *testing.T) {
		broker := newTestBroker(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("backend unavailable"))
		})

		client, err := broker.DeriveClient(context.Background(), "refresh")

		assert.ErrorIs(t, err, adsdomain.ErrRemoteAPI)
		assert.NotErrorIs(t, err, adsdomain.ErrCredentialExpired)
		assert.Nil(t, client)
	})

	t.Run("Deve respeitar o prazo do contexto ao buscar o token", func(t *testing.T) {
		broker := newTestBroker(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		})

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		started := time.Now()
		client, err := broker.DeriveClient(ctx, "refresh")

		assert.ErrorIs(t, err, adsdomain.ErrRemoteTimeout)
		assert.Nil(t, client)
		assert.Less(t, time.Since(started), 2*time.Second)
	})

	t.Run("Deve retornar credencial expirada sem refresh token", func(t *testing.T) {
		broker := NewTokenBroker(config.GoogleAds{})

		_, err := broker.DeriveClient(context.Background(), "")

		assert.ErrorIs(t, err, adsdomain.ErrCredentialExpired)
	})

	t.Run("Deve derivar um client autenticado", func(t *testing.T) {
		var authHeader string
		broker := newTestBroker(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/token":
				writeToken(w, `{"access_token":"fresh-access","token_type":"Bearer","expires_in":3600}`)
			case "/v17/customers:listAccessibleCustomers":
				authHeader = r.Header.Get("Authorization")
				writeToken(w, `{"resourceNames":["customers/123"]}`)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		})

		client, err := broker.DeriveClient(context.Background(), "refresh")
		require.NoError(t, err)

		names, err := client.ListAccessibleCustomers(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{"customers/123"}, names)
		assert.Equal(t, "Bearer fresh-access", authHeader)
	})
}
