package adsclient

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	adsdomain "github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/domain"
	"github.com/Alphawga/insightFlow/internal/config"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=token_broker.go -destination=../mocks/token_broker.go -package=mocks

const AdwordsScope = "https://www.googleapis.com/auth/adwords"

// Credentials é o resultado da troca do código de autorização
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// TokenBroker cuida do fluxo OAuth2: URL de consentimento, troca do código e
// derivação de clientes a partir do refresh token
type TokenBroker interface {
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Credentials, error)
	DeriveClient(ctx context.Context, refreshToken string) (Client, error)
}

type OAuthTokenBroker struct {
	cfg         config.GoogleAds
	oauthConfig *oauth2.Config
	// baseCtx carrega o http.Client usado pelo oauth2 nas renovações
	baseCtx context.Context
}

type BrokerOption func(*OAuthTokenBroker)

// WithHTTPClient troca o http.Client usado nas chamadas ao endpoint de token
func WithHTTPClient(client *http.Client) BrokerOption {
	return func(b *OAuthTokenBroker) {
		b.baseCtx = context.WithValue(context.Background(), oauth2.HTTPClient, client)
	}
}

// WithEndpoint troca o endpoint OAuth2 (padrão: google.Endpoint)
func WithEndpoint(endpoint oauth2.Endpoint) BrokerOption {
	return func(b *OAuthTokenBroker) {
		b.oauthConfig.Endpoint = endpoint
	}
}

func NewTokenBroker(cfg config.GoogleAds, opts ...BrokerOption) *OAuthTokenBroker {
	broker := &OAuthTokenBroker{
		cfg: cfg,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{AdwordsScope},
			Endpoint:     google.Endpoint,
		},
		baseCtx: context.Background(),
	}

	for _, opt := range opts {
		opt(broker)
	}

	return broker
}

// AuthURL gera a URL de consentimento pedindo acesso offline e forçando o consentimento,
// assim o Google sempre devolve um refresh token
func (b *OAuthTokenBroker) AuthURL(state string) string {
	return b.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (b *OAuthTokenBroker) ExchangeCode(ctx context.Context, code string) (*Credentials, error) {
	if code == "" {
		return nil, errors.Wrap(adsdomain.ErrAuthExchange, "código vazio")
	}

	token, err := b.oauthConfig.Exchange(b.withHTTPClient(ctx), code)
	if err != nil {
		logrus.WithError(err).Error("googleads: falha na troca do código de autorização")
		return nil, errors.Wrap(adsdomain.ErrAuthExchange, err.Error())
	}

	if token.AccessToken == "" || token.RefreshToken == "" {
		return nil, errors.Wrap(adsdomain.ErrAuthExchange, "resposta sem access token ou refresh token")
	}

	return &Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

// DeriveClient resolve um access token novo a partir do refresh token e devolve
// um Client que renova o token sozinho quando expirar. A primeira busca respeita
// o prazo de ctx; as renovações seguintes usam o contexto base do broker.
func (b *OAuthTokenBroker) DeriveClient(ctx context.Context, refreshToken string) (Client, error) {
	if refreshToken == "" {
		return nil, errors.Wrap(adsdomain.ErrCredentialExpired, "refresh token ausente")
	}

	seed := &oauth2.Token{RefreshToken: refreshToken}

	token, err := b.oauthConfig.TokenSource(b.withHTTPClient(ctx), seed).Token()
	if err != nil {
		return nil, classifyTokenError(ctx, err)
	}

	source := oauth2.ReuseTokenSource(token, b.oauthConfig.TokenSource(b.baseCtx, token))
	httpClient := oauth2.NewClient(b.baseCtx, source)

	return newClient(b.cfg, httpClient), nil
}

// classifyTokenError separa credencial revogada de falhas transitórias do endpoint
// de token. Só invalid_grant (ou 400/401 sem código) exige reconectar a conta.
func classifyTokenError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return errors.Wrap(adsdomain.ErrRemoteTimeout, err.Error())
	}

	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) {
		return errors.Wrap(adsdomain.ErrRemoteAPI, err.Error())
	}

	if retrieveErr.ErrorCode == "invalid_grant" {
		return errors.Wrap(adsdomain.ErrCredentialExpired, retrieveErr.Error())
	}

	if retrieveErr.ErrorCode == "" && retrieveErr.Response != nil {
		switch retrieveErr.Response.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized:
			return errors.Wrap(adsdomain.ErrCredentialExpired, retrieveErr.Error())
		}
	}

	return errors.Wrap(adsdomain.ErrRemoteAPI, retrieveErr.Error())
}

func (b *OAuthTokenBroker) withHTTPClient(ctx context.Context) context.Context {
	if client, ok := b.baseCtx.Value(oauth2.HTTPClient).(*http.Client); ok {
		return context.WithValue(ctx, oauth2.HTTPClient, client)
	}
	return ctx
}
