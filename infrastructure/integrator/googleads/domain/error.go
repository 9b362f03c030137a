package adsdomain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthExchange indica que o endpoint de token recusou o código ou omitiu uma das credenciais
	ErrAuthExchange = errors.New("falha ao trocar o código de autorização")
	// ErrCredentialExpired indica refresh token revogado ou expirado
	ErrCredentialExpired = errors.New("credencial expirada ou revogada")
	// ErrNoAccessibleAccounts é terminal para o fluxo de conexão
	ErrNoAccessibleAccounts = errors.New("nenhuma conta do Google Ads acessível")
	ErrRemoteAPI            = errors.New("erro na API do Google Ads")
	ErrRemoteTimeout        = errors.New("timeout na API do Google Ads")
	ErrRateLimited          = errors.New("limite de requisições da API do Google Ads atingido")
	ErrMalformedRow         = errors.New("linha malformada")
)

// ErrorResponse representa o envelope de erro da API do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// APIError carrega o status HTTP e o envelope de erro decodificado
type APIError struct {
	HTTPStatus int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google ads: %d %s: %s", e.HTTPStatus, e.Details.Status, e.Details.Message)
}

func (e *APIError) IsCredentialExpired() bool {
	return e.HTTPStatus == http.StatusUnauthorized || e.Details.Status == "UNAUTHENTICATED"
}

func (e *APIError) IsRateLimited() bool {
	return e.HTTPStatus == http.StatusTooManyRequests || e.Details.Status == "RESOURCE_EXHAUSTED"
}

// Unwrap classifica o erro na taxonomia do integrador
func (e *APIError) Unwrap() error {
	switch {
	case e.IsCredentialExpired():
		return ErrCredentialExpired
	case e.IsRateLimited():
		return ErrRateLimited
	default:
		return ErrRemoteAPI
	}
}
