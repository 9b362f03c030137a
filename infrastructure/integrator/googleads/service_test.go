package googleads

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/domain"
	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/mocks"
	"github.com/Alphawga/insightFlow/internal/domain"
)

func TestGoogleAdsIntegrator_ListAccessibleCustomerIDs(t *testing.T) {
	tests := []struct {
		name      string
		resources []string
		wantIDs   []string
		wantErr   error
	}{
		{
			name:      "Deve normalizar os resource names mantendo a ordem",
			resources: []string{"customers/123", "customers/456", "customers/123"},
			wantIDs:   []string{"123", "456"},
		},
		{
			name:      "Deve retornar erro quando não há contas acessíveis",
			resources: []string{},
			wantErr:   adsdomain.ErrNoAccessibleAccounts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			client.EXPECT().ListAccessibleCustomers(gomock.Any()).Return(tt.resources, nil)

			integrator := New(mocks.NewMockTokenBroker(ctrl))
			ids, err := integrator.ListAccessibleCustomerIDs(context.Background(), client)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGoogleAdsIntegrator_GetCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Search(gomock.Any(), "123", customerQuery).Return([]adsdomain.SearchRow{
		{Customer: &adsdomain.Customer{ID: "123", DescriptiveName: " Loja Centro ", CurrencyCode: "BRL", TimeZone: "America/Sao_Paulo"}},
	}, nil)

	info, err := New(mocks.NewMockTokenBroker(ctrl)).GetCustomer(context.Background(), client, "123")

	require.NoError(t, err)
	assert.Equal(t, "Loja Centro", info.DescriptiveName)
	assert.Equal(t, "BRL", info.CurrencyCode)
	assert.Equal(t, "America/Sao_Paulo", info.TimeZone)
}

func TestGoogleAdsIntegrator_FetchCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Search(gomock.Any(), "123", campaignsQuery).Return([]adsdomain.SearchRow{
		{
			Campaign:       &adsdomain.Campaign{ID: "1", Name: "Promo", Status: "ENABLED", StartDate: "2024-01-01", EndDate: "2037-12-30"},
			CampaignBudget: &adsdomain.CampaignBudget{AmountMicros: "5000000"},
		},
		{
			Campaign: &adsdomain.Campaign{ID: "2", Name: "Sem orçamento", Status: "PAUSED"},
		},
		{
			Campaign: &adsdomain.Campaign{ID: "3", Name: "Desconhecida", Status: "UNKNOWN"},
		},
		{
			Campaign: &adsdomain.Campaign{Name: "Sem id", Status: "ENABLED"},
		},
	}, nil)

	campaigns, failures, err := New(mocks.NewMockTokenBroker(ctrl)).FetchCampaigns(context.Background(), client, "123")

	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	require.Len(t, failures, 2)

	assert.Equal(t, "1", campaigns[0].ExternalID)
	assert.Equal(t, domain.CampaignStatusEnabled, campaigns[0].Status)
	require.NotNil(t, campaigns[0].Budget)
	assert.Equal(t, 5.0, *campaigns[0].Budget)
	assert.Equal(t, domain.BudgetTypeDaily, campaigns[0].BudgetType)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *campaigns[0].StartDate)

	assert.Nil(t, campaigns[1].Budget)
	assert.Nil(t, campaigns[1].StartDate)

	assert.Equal(t, "3", failures[0].ExternalID)
	assert.Equal(t, "", failures[1].ExternalID)
}

func TestFactoryMetricRow(t *testing.T) {
	tests := []struct {
		name    string
		row     adsdomain.SearchRow
		want    *domain.MetricRow
		wantErr bool
	}{
		{
			name: "Deve converter micros e manter as taxas da plataforma",
			row: adsdomain.SearchRow{
				Campaign: &adsdomain.Campaign{ID: "1"},
				Metrics: &adsdomain.Metrics{
					Impressions:             "1000",
					Clicks:                  "50",
					CostMicros:              "25000000",
					Conversions:             "5",
					ConversionsValue:        "100",
					Ctr:                     "0.05",
					AverageCpc:              "500000",
					ConversionsValuePerCost: "4",
				},
				Segments: &adsdomain.Segments{Device: "MOBILE", Date: "2024-03-10"},
			},
			want: &domain.MetricRow{
				CampaignExternalID: "1",
				Date:               time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Device:             domain.DeviceMobile,
				Impressions:        1000,
				Clicks:             50,
				Cost:               25,
				Conversions:        5,
				ConversionValue:    100,
				CTR:                0.05,
				CPC:                0.5,
				ROAS:               4,
			},
		},
		{
			name: "Deve zerar taxas não numéricas e campos omitidos",
			row: adsdomain.SearchRow{
				Campaign: &adsdomain.Campaign{ID: "1"},
				Metrics:  &adsdomain.Metrics{Ctr: "NaN", AverageCpc: "abc"},
				Segments: &adsdomain.Segments{Device: "DESKTOP", Date: "2024-03-10"},
			},
			want: &domain.MetricRow{
				CampaignExternalID: "1",
				Date:               time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Device:             domain.DeviceDesktop,
			},
		},
		{
			name: "Deve rejeitar custo malformado",
			row: adsdomain.SearchRow{
				Campaign: &adsdomain.Campaign{ID: "1"},
				Metrics:  &adsdomain.Metrics{CostMicros: "dez"},
				Segments: &adsdomain.Segments{Device: "DESKTOP", Date: "2024-03-10"},
			},
			wantErr: true,
		},
		{
			name: "Deve rejeitar linha sem data",
			row: adsdomain.SearchRow{
				Campaign: &adsdomain.Campaign{ID: "1"},
				Segments: &adsdomain.Segments{Device: "DESKTOP"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FactoryMetricRow(tt.row)

			if tt.wantErr {
				assert.ErrorIs(t, err, adsdomain.ErrMalformedRow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoogleAdsIntegrator_FetchMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	window := domain.DateWindow{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	client.EXPECT().
		Search(gomock.Any(), "123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query string) ([]adsdomain.SearchRow, error) {
			assert.Contains(t, query, "BETWEEN '2024-03-01' AND '2024-03-30'")
			return []adsdomain.SearchRow{
				{
					Campaign: &adsdomain.Campaign{ID: "1"},
					Metrics:  &adsdomain.Metrics{Impressions: "10"},
					Segments: &adsdomain.Segments{Device: "TABLET", Date: "2024-03-02"},
				},
				{
					Campaign: &adsdomain.Campaign{ID: "2"},
					Metrics:  &adsdomain.Metrics{Clicks: "1.5"},
					Segments: &adsdomain.Segments{Device: "TABLET", Date: "2024-03-02"},
				},
			}, nil
		})

	rows, failures, err := New(mocks.NewMockTokenBroker(ctrl)).FetchMetrics(context.Background(), client, "123", window)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(10), rows[0].Impressions)
	require.Len(t, failures, 1)
	assert.Equal(t, "2", failures[0].ExternalID)
}

func TestGoogleAdsIntegrator_DelegatesToBroker(t *testing.T) {
	ctrl := gomock.NewController(t)
	broker := mocks.NewMockTokenBroker(ctrl)
	client := mocks.NewMockClient(ctrl)

	var _ adsclient.TokenBroker = broker

	broker.EXPECT().ExchangeCode(gomock.Any(), "code-1").Return(&adsclient.Credentials{AccessToken: "a", RefreshToken: "r"}, nil)
	broker.EXPECT().DeriveClient(gomock.Any(), "r").Return(client, nil)

	integrator := New(broker)

	creds, err := integrator.ExchangeCode(context.Background(), "code-1")
	require.NoError(t, err)
	assert.Equal(t, "r", creds.RefreshToken)

	derived, err := integrator.DeriveClient(context.Background(), creds.RefreshToken)
	require.NoError(t, err)
	assert.Same(t, client, derived)
}

func TestMetricsQuery(t *testing.T) {
	window := domain.DateWindow{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	query := MetricsQuery(window)

	assert.Contains(t, query, "segments.date BETWEEN '2024-01-01' AND '2024-01-30'")
	assert.Contains(t, query, "campaign.status != 'REMOVED'")
	assert.Contains(t, query, "segments.device")
}

func TestGoogleAdsIntegrator_FetchConversionActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Search(gomock.Any(), "123", conversionActionsQuery).Return([]adsdomain.SearchRow{
		{ConversionAction: &adsdomain.ConversionAction{ID: "9", Name: "Compra", Status: "ENABLED", Type: "WEBPAGE", Category: "PURCHASE"}},
		{ConversionAction: &adsdomain.ConversionAction{Name: "Sem id"}},
	}, nil)

	actions, failures, err := New(mocks.NewMockTokenBroker(ctrl)).FetchConversionActions(context.Background(), client, "123")

	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "9", actions[0].ExternalID)
	assert.Equal(t, "PURCHASE", actions[0].Category)
	assert.False(t, actions[0].IsPrimary)
	assert.Len(t, failures, 1)
}

func TestNormalizeCustomerID(t *testing.T) {
	assert.Equal(t, "1234567890", NormalizeCustomerID("customers/1234567890"))
	assert.Equal(t, "1234567890", NormalizeCustomerID("123-456-7890"))
	assert.Equal(t, "", NormalizeCustomerID("customers/"))
}
