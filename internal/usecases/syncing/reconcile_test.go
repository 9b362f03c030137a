package syncing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/adsclient"
	adsmocks "github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/mocks"
	repomocks "github.com/Alphawga/insightFlow/infrastructure/repository/mocks"
	"github.com/Alphawga/insightFlow/internal/domain"
)

// fakeCampaignStore reproduz o ON CONFLICT (ad_account_id, external_id) do banco
type fakeCampaignStore struct {
	mu   sync.Mutex
	rows map[string]*domain.Campaign
}

func newFakeCampaignStore() *fakeCampaignStore {
	return &fakeCampaignStore{rows: make(map[string]*domain.Campaign)}
}

func (s *fakeCampaignStore) upsert(_ context.Context, c *domain.Campaign) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := c.AccountID + "/" + c.ExternalID
	if existing, ok := s.rows[key]; ok {
		id := existing.ID
		copied := *c
		copied.ID = id
		s.rows[key] = &copied
		return id, nil
	}

	copied := *c
	s.rows[key] = &copied
	return c.ID, nil
}

// fakeMetricStore reproduz as chaves únicas de ad_metrics e device_metrics
type fakeMetricStore struct {
	mu        sync.Mutex
	snapshots map[snapshotKey]domain.MetricSnapshot
	devices   map[deviceSnapshotKey]domain.DeviceMetricSnapshot
}

func newFakeMetricStore() *fakeMetricStore {
	return &fakeMetricStore{
		snapshots: make(map[snapshotKey]domain.MetricSnapshot),
		devices:   make(map[deviceSnapshotKey]domain.DeviceMetricSnapshot),
	}
}

func (s *fakeMetricStore) upsertSnapshot(_ context.Context, m *domain.MetricSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snapshotKey{campaignID: m.CampaignID, date: m.Date.Format(time.DateOnly)}] = *m
	return nil
}

func (s *fakeMetricStore) upsertDevice(_ context.Context, m *domain.DeviceMetricSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.devices[deviceSnapshotKey{campaignID: m.CampaignID, date: m.Date.Format(time.DateOnly), device: m.Device}] = *m
	return nil
}

func TestCampaignReconciler_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := adsmocks.NewMockIntegrator(ctrl)
	client := adsmocks.NewMockClient(ctrl)
	accounts := repomocks.NewMockAccountRepository(ctrl)
	campaigns := repomocks.NewMockCampaignRepository(ctrl)

	store := newFakeCampaignStore()
	campaigns.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(store.upsert).AnyTimes()
	accounts.EXPECT().Exists(gomock.Any(), "acc-1").Return(true, nil).Times(2)

	budget := 12.5
	fetch := func() ([]*domain.Campaign, []domain.RowFailure, error) {
		return []*domain.Campaign{
			{ExternalID: "111", Name: "Promo", Status: domain.CampaignStatusEnabled, Budget: &budget, BudgetType: domain.BudgetTypeDaily},
			{ExternalID: "222", Name: "Marca", Status: domain.CampaignStatusPaused},
		}, nil, nil
	}
	integrator.EXPECT().FetchCampaigns(gomock.Any(), client, "123").DoAndReturn(
		func(context.Context, adsclient.Client, string) ([]*domain.Campaign, []domain.RowFailure, error) {
			return fetch()
		},
	).Times(2)

	reconciler := NewCampaignReconciler(integrator, accounts, campaigns)
	account := connectedAccount()

	first, err := reconciler.Reconcile(context.Background(), client, account)
	require.NoError(t, err)
	firstIDs := map[string]string{}
	for key, c := range store.rows {
		firstIDs[key] = c.ID
	}

	second, err := reconciler.Reconcile(context.Background(), client, account)
	require.NoError(t, err)

	assert.Equal(t, 2, first.Updated)
	assert.Equal(t, 2, second.Updated)
	assert.Len(t, store.rows, 2)
	for key, c := range store.rows {
		assert.Equal(t, firstIDs[key], c.ID, "o ID local não pode mudar entre sincronizações")
	}
	assert.Equal(t, 12.5, *store.rows["acc-1/111"].Budget)
}

func TestCampaignReconciler_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := adsmocks.NewMockIntegrator(ctrl)
	client := adsmocks.NewMockClient(ctrl)
	accounts := repomocks.NewMockAccountRepository(ctrl)
	campaigns := repomocks.NewMockCampaignRepository(ctrl)

	integrator.EXPECT().FetchCampaigns(gomock.Any(), client, "123").Return([]*domain.Campaign{
		{ExternalID: "111", Status: domain.CampaignStatusEnabled},
		{ExternalID: "222", Status: domain.CampaignStatusEnabled},
	}, []domain.RowFailure{{ExternalID: "333", Error: "status desconhecido"}}, nil)
	accounts.EXPECT().Exists(gomock.Any(), "acc-1").Return(true, nil)

	campaigns.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Campaign) (string, error) {
		if c.ExternalID == "222" {
			return "", errors.New("erro no banco de dados")
		}
		return c.ID, nil
	}).Times(2)

	result, err := NewCampaignReconciler(integrator, accounts, campaigns).Reconcile(context.Background(), client, connectedAccount())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, "333", result.Failed[0].ExternalID)
	assert.Equal(t, "222", result.Failed[1].ExternalID)
}

func TestConversionReconciler_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := adsmocks.NewMockIntegrator(ctrl)
	client := adsmocks.NewMockClient(ctrl)
	accounts := repomocks.NewMockAccountRepository(ctrl)
	conversions := repomocks.NewMockConversionActionRepository(ctrl)

	integrator.EXPECT().FetchConversionActions(gomock.Any(), client, "123").Return([]*domain.ConversionAction{
		{ExternalID: "9", Name: "Compra", Status: domain.ConversionActionStatusEnabled, Category: "PURCHASE"},
	}, nil, nil)
	accounts.EXPECT().Exists(gomock.Any(), "acc-1").Return(true, nil)
	conversions.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.ConversionAction) error {
		assert.Equal(t, "acc-1", a.AccountID)
		assert.NotEmpty(t, a.ID)
		assert.False(t, a.IsPrimary)
		return nil
	})

	result, err := NewConversionReconciler(integrator, accounts, conversions).Reconcile(context.Background(), client, connectedAccount())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Empty(t, result.Failed)
}

func TestConversionReconciler_AccountRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := adsmocks.NewMockIntegrator(ctrl)
	client := adsmocks.NewMockClient(ctrl)
	accounts := repomocks.NewMockAccountRepository(ctrl)
	conversions := repomocks.NewMockConversionActionRepository(ctrl)

	integrator.EXPECT().FetchConversionActions(gomock.Any(), client, "123").Return([]*domain.ConversionAction{{ExternalID: "9"}}, nil, nil)
	accounts.EXPECT().Exists(gomock.Any(), "acc-1").Return(false, nil)

	_, err := NewConversionReconciler(integrator, accounts, conversions).Reconcile(context.Background(), client, connectedAccount())

	assert.ErrorIs(t, err, ErrAccountRemoved)
}

func TestMetricsIngestor_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := adsmocks.NewMockIntegrator(ctrl)
	client := adsmocks.NewMockClient(ctrl)
	accounts := repomocks.NewMockAccountRepository(ctrl)
	campaigns := repomocks.NewMockCampaignRepository(ctrl)
	metrics := repomocks.NewMockMetricRepository(ctrl)

	store := newFakeMetricStore()
	metrics.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(store.upsertSnapshot).AnyTimes()
	metrics.EXPECT().UpsertDeviceSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(store.upsertDevice).AnyTimes()
	accounts.EXPECT().Exists(gomock.Any(), "acc-1").Return(true, nil).AnyTimes()
	campaigns.EXPECT().MapExternalIDs(gomock.Any(), "acc-1").Return(map[string]string{"111": "camp-1"}, nil).AnyTimes()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	window := domain.DateWindow{Start: day, End: day.AddDate(0, 0, 1)}
	rows := []*domain.MetricRow{
		{CampaignExternalID: "111", Date: day, Device: domain.DeviceMobile, Impressions: 100, Clicks: 10, Cost: 5},
		{CampaignExternalID: "111", Date: day, Device: domain.DeviceDesktop, Impressions: 50, Clicks: 5, Cost: 5},
		{CampaignExternalID: "999", Date: day, Device: domain.DeviceMobile, Impressions: 1},
	}
	integrator.EXPECT().FetchMetrics(gomock.Any(), client, "123", window).Return(rows, nil, nil).Times(2)

	ingestor := NewMetricsIngestor(integrator, accounts, campaigns, metrics)

	for i := 0; i < 2; i++ {
		result, err := ingestor.Ingest(context.Background(), client, connectedAccount(), window)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Updated)
		assert.Equal(t, 1, result.Skipped)
	}

	require.Len(t, store.snapshots, 1)
	assert.Len(t, store.devices, 2)

	snapshot := store.snapshots[snapshotKey{campaignID: "camp-1", date: "2024-03-01"}]
	assert.Equal(t, int64(150), snapshot.Impressions)
	assert.Equal(t, int64(15), snapshot.Clicks)
	assert.InDelta(t, 10.0, snapshot.Cost, 1e-9)
	assert.InDelta(t, 0.1, snapshot.CTR, 1e-9)
}

func TestFoldMetricRows(t *testing.T) {
	day := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)
	ids := map[string]string{"111": "camp-1", "222": "camp-2"}

	t.Run("Deve manter as taxas da plataforma quando há uma única linha", func(t *testing.T) {
		snapshots, devices, skipped := foldMetricRows("acc-1", []*domain.MetricRow{
			{CampaignExternalID: "111", Date: day, Device: domain.DeviceTablet, Impressions: 10, Clicks: 1, Cost: 2, CTR: 0.1, CPC: 2, ROAS: 3.5},
		}, ids)

		require.Len(t, snapshots, 1)
		assert.Equal(t, 0, skipped)
		assert.Len(t, devices, 1)
		assert.Equal(t, 3.5, snapshots[0].snapshot.ROAS)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), snapshots[0].snapshot.Date)
		assert.Equal(t, "acc-1", snapshots[0].snapshot.AccountID)
	})

	t.Run("Deve recalcular as taxas sobre as somas", func(t *testing.T) {
		snapshots, _, _ := foldMetricRows("acc-1", []*domain.MetricRow{
			{CampaignExternalID: "111", Date: day, Device: domain.DeviceMobile, Impressions: 100, Clicks: 10, Cost: 10, ConversionValue: 30, CTR: 0.1, CPC: 1, ROAS: 3},
			{CampaignExternalID: "111", Date: day, Device: domain.DeviceDesktop, Impressions: 300, Clicks: 10, Cost: 30, ConversionValue: 10, CTR: 0.033, CPC: 3, ROAS: 0.33},
		}, ids)

		require.Len(t, snapshots, 1)
		s := snapshots[0].snapshot
		assert.InDelta(t, 0.05, s.CTR, 1e-9)
		assert.InDelta(t, 2.0, s.CPC, 1e-9)
		assert.InDelta(t, 1.0, s.ROAS, 1e-9)
	})

	t.Run("Deve separar dias e campanhas e ignorar desconhecidas", func(t *testing.T) {
		snapshots, devices, skipped := foldMetricRows("acc-1", []*domain.MetricRow{
			{CampaignExternalID: "111", Date: day, Device: domain.DeviceMobile, Impressions: 1},
			{CampaignExternalID: "111", Date: next, Device: domain.DeviceMobile, Impressions: 1},
			{CampaignExternalID: "222", Date: day, Device: domain.DeviceMobile, Impressions: 1},
			{CampaignExternalID: "333", Date: day, Device: domain.DeviceMobile, Impressions: 1},
		}, ids)

		assert.Len(t, snapshots, 3)
		assert.Len(t, devices, 3)
		assert.Equal(t, 1, skipped)
	})

	t.Run("Deve somar segmentos desconhecidos apenas no total da campanha", func(t *testing.T) {
		snapshots, devices, _ := foldMetricRows("acc-1", []*domain.MetricRow{
			{CampaignExternalID: "111", Date: day, Device: domain.DeviceMobile, Impressions: 10, Clicks: 2},
			{CampaignExternalID: "111", Date: day, Device: domain.Device("CONNECTED_TV"), Impressions: 5, Clicks: 0},
		}, ids)

		require.Len(t, snapshots, 1)
		assert.Equal(t, int64(15), snapshots[0].snapshot.Impressions)
		require.Len(t, devices, 1)
		assert.Equal(t, domain.DeviceMobile, devices[0].snapshot.Device)
		assert.Equal(t, int64(10), devices[0].snapshot.Impressions)
	})

	t.Run("Deve zerar as taxas sem denominador", func(t *testing.T) {
		snapshots, _, _ := foldMetricRows("acc-1", []*domain.MetricRow{
			{CampaignExternalID: "111", Date: day, Device: domain.DeviceMobile},
			{CampaignExternalID: "111", Date: day, Device: domain.DeviceDesktop},
		}, ids)

		s := snapshots[0].snapshot
		assert.Zero(t, s.CTR)
		assert.Zero(t, s.CPC)
		assert.Zero(t, s.ROAS)
	})
}

func TestSyncErrorMessage(t *testing.T) {
	err := NewSyncError(classifyPhaseError(context.Background(), context.DeadlineExceeded), "acc-1", domain.SyncPhaseMetrics)

	msg := syncErrorMessage(err)

	assert.Contains(t, msg, "metrics")
	assert.Equal(t, "timeout: ", msg[:len("timeout: ")])
}
