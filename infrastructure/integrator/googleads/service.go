package googleads

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/domain"
	"github.com/Alphawga/insightFlow/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=service.go -destination=mocks/service.go -package=mocks

const (
	customerQuery = `SELECT customer.id, customer.descriptive_name, customer.currency_code, customer.time_zone FROM customer LIMIT 1`

	campaignsQuery = `SELECT campaign.id, campaign.name, campaign.status, campaign_budget.amount_micros, campaign.start_date, campaign.end_date FROM campaign WHERE campaign.status != 'REMOVED'`

	metricsQueryTemplate = `SELECT campaign.id, metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.conversions, metrics.conversions_value, metrics.ctr, metrics.average_cpc, metrics.conversions_value_per_cost, segments.device, segments.date FROM campaign WHERE segments.date BETWEEN '%s' AND '%s' AND campaign.status != 'REMOVED'`

	conversionActionsQuery = `SELECT conversion_action.id, conversion_action.name, conversion_action.status, conversion_action.type, conversion_action.category FROM conversion_action`

	customerResourcePrefix = "customers/"
	microsPerUnit          = 1_000_000
)

// Integrator traduz a API do Google Ads para o domínio: converte micros,
// normaliza status e separa as linhas que não podem ser aproveitadas
type Integrator interface {
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*adsclient.Credentials, error)
	DeriveClient(ctx context.Context, refreshToken string) (adsclient.Client, error)
	ListAccessibleCustomerIDs(ctx context.Context, client adsclient.Client) ([]string, error)
	GetCustomer(ctx context.Context, client adsclient.Client, customerID string) (*domain.CustomerInfo, error)
	FetchCampaigns(ctx context.Context, client adsclient.Client, customerID string) ([]*domain.Campaign, []domain.RowFailure, error)
	FetchMetrics(ctx context.Context, client adsclient.Client, customerID string, window domain.DateWindow) ([]*domain.MetricRow, []domain.RowFailure, error)
	FetchConversionActions(ctx context.Context, client adsclient.Client, customerID string) ([]*domain.ConversionAction, []domain.RowFailure, error)
}

type GoogleAdsIntegrator struct {
	broker adsclient.TokenBroker
}

func New(broker adsclient.TokenBroker) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		broker: broker,
	}
}

func (s *GoogleAdsIntegrator) AuthURL(state string) string {
	return s.broker.AuthURL(state)
}

func (s *GoogleAdsIntegrator) ExchangeCode(ctx context.Context, code string) (*adsclient.Credentials, error) {
	return s.broker.ExchangeCode(ctx, code)
}

func (s *GoogleAdsIntegrator) DeriveClient(ctx context.Context, refreshToken string) (adsclient.Client, error) {
	return s.broker.DeriveClient(ctx, refreshToken)
}

// ListAccessibleCustomerIDs retorna os IDs numéricos das contas acessíveis, na ordem da API
func (s *GoogleAdsIntegrator) ListAccessibleCustomerIDs(ctx context.Context, client adsclient.Client) ([]string, error) {
	resourceNames, err := client.ListAccessibleCustomers(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resourceNames))
	seen := make(map[string]struct{}, len(resourceNames))
	for _, name := range resourceNames {
		id := NormalizeCustomerID(name)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, adsdomain.ErrNoAccessibleAccounts
	}

	return ids, nil
}

func (s *GoogleAdsIntegrator) GetCustomer(ctx context.Context, client adsclient.Client, customerID string) (*domain.CustomerInfo, error) {
	rows, err := client.Search(ctx, customerID, customerQuery)
	if err != nil {
		return nil, err
	}

	info := &domain.CustomerInfo{ID: customerID}
	for _, row := range rows {
		if row.Customer == nil {
			continue
		}
		info.DescriptiveName = strings.TrimSpace(row.Customer.DescriptiveName.String())
		info.CurrencyCode = row.Customer.CurrencyCode.String()
		info.TimeZone = row.Customer.TimeZone.String()
		break
	}

	return info, nil
}

func (s *GoogleAdsIntegrator) FetchCampaigns(ctx context.Context, client adsclient.Client, customerID string) ([]*domain.Campaign, []domain.RowFailure, error) {
	rows, err := client.Search(ctx, customerID, campaignsQuery)
	if err != nil {
		return nil, nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(rows))
	failures := make([]domain.RowFailure, 0)

	for _, row := range rows {
		campaign, err := FactoryCampaign(row)
		if err != nil {
			failures = append(failures, rowFailure(campaignExternalID(row), err))
			continue
		}
		campaigns = append(campaigns, campaign)
	}

	logFailures(customerID, domain.SyncPhaseCampaigns, len(rows), failures)

	return campaigns, failures, nil
}

func (s *GoogleAdsIntegrator) FetchMetrics(ctx context.Context, client adsclient.Client, customerID string, window domain.DateWindow) ([]*domain.MetricRow, []domain.RowFailure, error) {
	query := MetricsQuery(window)

	rows, err := client.Search(ctx, customerID, query)
	if err != nil {
		return nil, nil, err
	}

	metrics := make([]*domain.MetricRow, 0, len(rows))
	failures := make([]domain.RowFailure, 0)

	for _, row := range rows {
		metric, err := FactoryMetricRow(row)
		if err != nil {
			failures = append(failures, rowFailure(campaignExternalID(row), err))
			continue
		}
		metrics = append(metrics, metric)
	}

	logFailures(customerID, domain.SyncPhaseMetrics, len(rows), failures)

	return metrics, failures, nil
}

func (s *GoogleAdsIntegrator) FetchConversionActions(ctx context.Context, client adsclient.Client, customerID string) ([]*domain.ConversionAction, []domain.RowFailure, error) {
	rows, err := client.Search(ctx, customerID, conversionActionsQuery)
	if err != nil {
		return nil, nil, err
	}

	actions := make([]*domain.ConversionAction, 0, len(rows))
	failures := make([]domain.RowFailure, 0)

	for _, row := range rows {
		action, err := FactoryConversionAction(row)
		if err != nil {
			externalID := ""
			if row.ConversionAction != nil {
				externalID = row.ConversionAction.ID.String()
			}
			failures = append(failures, rowFailure(externalID, err))
			continue
		}
		actions = append(actions, action)
	}

	logFailures(customerID, domain.SyncPhaseConversionActions, len(rows), failures)

	return actions, failures, nil
}

// MetricsQuery monta a consulta de métricas para a janela semiaberta [Start, End)
func MetricsQuery(window domain.DateWindow) string {
	lastDay := window.End.AddDate(0, 0, -1)
	return fmt.Sprintf(metricsQueryTemplate, window.Start.Format(time.DateOnly), lastDay.Format(time.DateOnly))
}

// NormalizeCustomerID aceita "customers/123", "123-456-7890" ou "1234567890"
func NormalizeCustomerID(value string) string {
	id := strings.TrimPrefix(strings.TrimSpace(value), customerResourcePrefix)
	return strings.ReplaceAll(id, "-", "")
}

func FactoryCampaign(row adsdomain.SearchRow) (*domain.Campaign, error) {
	if row.Campaign == nil || row.Campaign.ID.IsEmpty() {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "campanha sem id")
	}

	status := domain.CampaignStatus(row.Campaign.Status.String())
	if !status.IsValid() {
		return nil, errors.Wrapf(adsdomain.ErrMalformedRow, "status de campanha desconhecido: %q", status)
	}

	campaign := &domain.Campaign{
		ExternalID: row.Campaign.ID.String(),
		Name:       row.Campaign.Name.String(),
		Status:     status,
		BudgetType: domain.BudgetTypeDaily,
	}

	if row.CampaignBudget != nil && !row.CampaignBudget.AmountMicros.IsEmpty() {
		budget, err := parseMicros(row.CampaignBudget.AmountMicros)
		if err != nil {
			return nil, errors.Wrap(adsdomain.ErrMalformedRow, "orçamento inválido")
		}
		campaign.Budget = &budget
	}

	startDate, err := parseOptionalDate(row.Campaign.StartDate)
	if err != nil {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "data de início inválida")
	}
	campaign.StartDate = startDate

	endDate, err := parseOptionalDate(row.Campaign.EndDate)
	if err != nil {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "data de término inválida")
	}
	campaign.EndDate = endDate

	return campaign, nil
}

// FactoryMetricRow converte uma linha de métricas. Contagens e custos malformados
// invalidam a linha; taxas não numéricas (NaN incluso) viram zero.
func FactoryMetricRow(row adsdomain.SearchRow) (*domain.MetricRow, error) {
	if row.Campaign == nil || row.Campaign.ID.IsEmpty() {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "métrica sem campanha")
	}
	if row.Segments == nil {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "métrica sem segmentos")
	}

	date, err := time.Parse(time.DateOnly, row.Segments.Date.String())
	if err != nil {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "data da métrica inválida")
	}

	metrics := row.Metrics
	if metrics == nil {
		metrics = &adsdomain.Metrics{}
	}

	impressions, err := parseCount(metrics.Impressions)
	if err != nil {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "impressões inválidas")
	}

	clicks, err := parseCount(metrics.Clicks)
	if err != nil {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "cliques inválidos")
	}

	cost, err := parseMicros(metrics.CostMicros)
	if err != nil {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "custo inválido")
	}

	conversions, err := parseAmount(metrics.Conversions)
	if err != nil {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "conversões inválidas")
	}

	conversionValue, err := parseAmount(metrics.ConversionsValue)
	if err != nil {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "valor de conversão inválido")
	}

	return &domain.MetricRow{
		CampaignExternalID: row.Campaign.ID.String(),
		Date:               date,
		Device:             domain.Device(row.Segments.Device.String()),
		Impressions:        impressions,
		Clicks:             clicks,
		Cost:               cost,
		Conversions:        conversions,
		ConversionValue:    conversionValue,
		CTR:                floorRate(metrics.Ctr, 1),
		CPC:                floorRate(metrics.AverageCpc, microsPerUnit),
		ROAS:               floorRate(metrics.ConversionsValuePerCost, 1),
	}, nil
}

func FactoryConversionAction(row adsdomain.SearchRow) (*domain.ConversionAction, error) {
	if row.ConversionAction == nil || row.ConversionAction.ID.IsEmpty() {
		return nil, errors.Wrap(adsdomain.ErrMalformedRow, "ação de conversão sem id")
	}

	return &domain.ConversionAction{
		ExternalID: row.ConversionAction.ID.String(),
		Name:       row.ConversionAction.Name.String(),
		Status:     row.ConversionAction.Status.String(),
		Type:       row.ConversionAction.Type.String(),
		Category:   row.ConversionAction.Category.String(),
	}, nil
}

// parseMicros converte micros (1/1.000.000 da moeda) para unidades decimais
func parseMicros(v adsdomain.Value) (float64, error) {
	if v.IsEmpty() {
		return 0, nil
	}

	micros, err := strconv.ParseInt(v.String(), 10, 64)
	if err != nil {
		// alguns campos chegam como double na serialização JSON
		f, ferr := strconv.ParseFloat(v.String(), 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, err
		}
		return f / microsPerUnit, nil
	}

	return float64(micros) / microsPerUnit, nil
}

// A API omite campos com valor zero
func parseCount(v adsdomain.Value) (int64, error) {
	if v.IsEmpty() {
		return 0, nil
	}
	return strconv.ParseInt(v.String(), 10, 64)
}

func parseAmount(v adsdomain.Value) (float64, error) {
	if v.IsEmpty() {
		return 0, nil
	}

	f, err := strconv.ParseFloat(v.String(), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, nil
	}
	return f, nil
}

func floorRate(v adsdomain.Value, divisor float64) float64 {
	f, err := strconv.ParseFloat(v.String(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f / divisor
}

func parseOptionalDate(v adsdomain.Value) (*time.Time, error) {
	if v.IsEmpty() {
		return nil, nil
	}

	value := v.String()
	// versões antigas da API usam "2006-01-02 15:04:05" nas datas de campanha
	if len(value) > len(time.DateOnly) {
		value = value[:len(time.DateOnly)]
	}

	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func campaignExternalID(row adsdomain.SearchRow) string {
	if row.Campaign == nil {
		return ""
	}
	return row.Campaign.ID.String()
}

func rowFailure(externalID string, err error) domain.RowFailure {
	return domain.RowFailure{ExternalID: externalID, Error: err.Error()}
}

func logFailures(customerID string, phase domain.SyncPhase, total int, failures []domain.RowFailure) {
	if len(failures) == 0 {
		return
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"phase":       phase,
		"total":       total,
		"failed":      len(failures),
	}).Warn("googleads: linhas descartadas na conversão")
}
