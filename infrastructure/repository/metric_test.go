package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alphawga/insightFlow/internal/domain"
)

func TestMetricRepository_UpsertSnapshot(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewMetricRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ad_metrics")+".*"+regexp.QuoteMeta("ON CONFLICT (campaign_id, date) DO UPDATE SET")).
		WithArgs("acc-1", "camp-1", "2024-03-10", int64(1000), int64(50), 25.0, 5.0, 100.0, 0.05, 0.5, 4.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertSnapshot(context.Background(), &domain.MetricSnapshot{
		AccountID:       "acc-1",
		CampaignID:      "camp-1",
		Date:            time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Impressions:     1000,
		Clicks:          50,
		Cost:            25,
		Conversions:     5,
		ConversionValue: 100,
		CTR:             0.05,
		CPC:             0.5,
		ROAS:            4,
	})

	assert.NoError(t, err)
}

func TestMetricRepository_UpsertDeviceSnapshot(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewMetricRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (campaign_id, date, device) DO UPDATE SET")).
		WithArgs("camp-1", "2024-03-10", domain.DeviceMobile, int64(10), int64(1), 2.5, 0.0, 0.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertDeviceSnapshot(context.Background(), &domain.DeviceMetricSnapshot{
		CampaignID:  "camp-1",
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Device:      domain.DeviceMobile,
		Impressions: 10,
		Clicks:      1,
		Cost:        2.5,
	})

	assert.NoError(t, err)
}

func TestMetricRepository_ListSnapshotsByWorkspace(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewMetricRepository(conn)

	window := domain.DateWindow{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	columns := []string{"ad_account_id", "campaign_id", "date", "impressions", "clicks", "cost", "conversions", "conversion_value", "ctr", "cpc", "roas"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.workspace_id = $1 AND m.date >= $2 AND m.date < $3")).
		WithArgs("ws-1", "2024-03-01", "2024-03-31").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("acc-1", "camp-1", day, 1000, 50, "25.000000", "5.0000", "100.0000", "0.050000", "0.500000", "4.000000"))

	snapshots, err := repo.ListSnapshotsByWorkspace(context.Background(), "ws-1", window)

	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, int64(1000), snapshots[0].Impressions)
	assert.Equal(t, 25.0, snapshots[0].Cost)
	assert.Equal(t, 4.0, snapshots[0].ROAS)
	assert.Equal(t, day, snapshots[0].Date)
}
