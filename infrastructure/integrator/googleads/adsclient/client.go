package adsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	adsdomain "github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/domain"
	"github.com/Alphawga/insightFlow/internal/config"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=client.go -destination=../mocks/client.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite de páginas por consulta para evitar laço infinito caso a API repita o token
const maxSearchPages = 1000

// Client é um handle da API do Google Ads já vinculado a uma credencial
type Client interface {
	ListAccessibleCustomers(ctx context.Context) ([]string, error)
	Search(ctx context.Context, customerID, query string) ([]adsdomain.SearchRow, error)
}

type GoogleAdsClient struct {
	cfg        config.GoogleAds
	httpClient *http.Client
}

func newClient(cfg config.GoogleAds, httpClient *http.Client) *GoogleAdsClient {
	if cfg.RequestTimeout > 0 {
		httpClient.Timeout = cfg.RequestTimeout
	}

	return &GoogleAdsClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// ListAccessibleCustomers retorna os resource names ("customers/<id>") acessíveis pela credencial
func (c *GoogleAdsClient) ListAccessibleCustomers(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%s/%s/customers:listAccessibleCustomers", c.baseURL(), c.cfg.APIVersion)

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar contas acessíveis")
	}

	var response adsdomain.ListAccessibleCustomersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(adsdomain.ErrRemoteAPI, "resposta inválida ao listar contas: %v", err)
	}

	return response.ResourceNames, nil
}

// Search executa uma consulta GAQL e percorre todas as páginas de resultado
func (c *GoogleAdsClient) Search(ctx context.Context, customerID, query string) ([]adsdomain.SearchRow, error) {
	endpoint := fmt.Sprintf("%s/%s/customers/%s/googleAds:search", c.baseURL(), c.cfg.APIVersion, customerID)

	rows := make([]adsdomain.SearchRow, 0)
	request := adsdomain.SearchRequest{Query: query}

	for page := 0; page < maxSearchPages; page++ {
		payload, err := json.Marshal(request)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar consulta")
		}

		body, err := c.do(ctx, http.MethodPost, endpoint, payload)
		if err != nil {
			return nil, errors.Wrapf(err, "erro na consulta da conta %s", customerID)
		}

		var response adsdomain.SearchResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errors.Wrapf(adsdomain.ErrRemoteAPI, "resposta inválida da consulta: %v", err)
		}

		rows = append(rows, response.Results...)

		if response.NextPageToken == "" || response.NextPageToken == request.PageToken {
			return rows, nil
		}
		request.PageToken = response.NextPageToken
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"pages":       maxSearchPages,
	}).Warn("googleads: limite de páginas atingido na consulta")

	return rows, nil
}

func (c *GoogleAdsClient) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if c.cfg.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", strings.ReplaceAll(c.cfg.LoginCustomerID, "-", ""))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(adsdomain.ErrRemoteAPI, "erro ao ler resposta: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"method":   method,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("googleads: requisição concluída")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	return body, nil
}

func (c *GoogleAdsClient) baseURL() string {
	return strings.TrimRight(c.cfg.APIURL, "/")
}

func decodeAPIError(status int, body []byte) error {
	apiErr := &adsdomain.APIError{HTTPStatus: status}

	var envelope adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Details = envelope.Error
	}
	if apiErr.Details.Message == "" {
		apiErr.Details.Message = http.StatusText(status)
	}

	return apiErr
}

// classifyTransportError separa timeout e credencial revogada dos demais erros de rede
func classifyTransportError(ctx context.Context, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return errors.Wrap(adsdomain.ErrCredentialExpired, retrieveErr.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Wrap(adsdomain.ErrRemoteTimeout, err.Error())
	}

	return errors.Wrap(adsdomain.ErrRemoteAPI, err.Error())
}
