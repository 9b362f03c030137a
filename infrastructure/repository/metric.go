package repository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=metric.go -destination=mocks/metric.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Alphawga/insightFlow/infrastructure/database/postgres"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Masterminds/squirrel"
)

type MetricRepository interface {
	UpsertSnapshot(ctx context.Context, snapshot *domain.MetricSnapshot) error
	UpsertDeviceSnapshot(ctx context.Context, snapshot *domain.DeviceMetricSnapshot) error
	ListSnapshotsByWorkspace(ctx context.Context, workspaceID string, window domain.DateWindow) ([]*domain.MetricSnapshot, error)
	ListDeviceSnapshotsByWorkspace(ctx context.Context, workspaceID string, window domain.DateWindow) ([]*domain.DeviceMetricSnapshot, error)
}

type metricRepository struct {
	conn *postgres.Connection
}

func NewMetricRepository(conn *postgres.Connection) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

// UpsertSnapshot substitui o fato diário da campanha; (campaign_id, date) é a chave natural
func (r *metricRepository) UpsertSnapshot(ctx context.Context, s *domain.MetricSnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("ad_metrics").
		Columns("ad_account_id", "campaign_id", "date", "impressions", "clicks", "cost", "conversions", "conversion_value", "ctr", "cpc", "roas").
		Values(
			s.AccountID,
			s.CampaignID,
			s.Date.Format(time.DateOnly),
			s.Impressions,
			s.Clicks,
			s.Cost,
			s.Conversions,
			s.ConversionValue,
			s.CTR,
			s.CPC,
			s.ROAS,
		).
		Suffix(`
			ON CONFLICT (campaign_id, date) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				cost = EXCLUDED.cost,
				conversions = EXCLUDED.conversions,
				conversion_value = EXCLUDED.conversion_value,
				ctr = EXCLUDED.ctr,
				cpc = EXCLUDED.cpc,
				roas = EXCLUDED.roas,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

// UpsertDeviceSnapshot substitui o fato diário por dispositivo; chave (campaign_id, date, device)
func (r *metricRepository) UpsertDeviceSnapshot(ctx context.Context, s *domain.DeviceMetricSnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("device_metrics").
		Columns("campaign_id", "date", "device", "impressions", "clicks", "cost", "conversions", "conversion_value").
		Values(
			s.CampaignID,
			s.Date.Format(time.DateOnly),
			s.Device,
			s.Impressions,
			s.Clicks,
			s.Cost,
			s.Conversions,
			s.ConversionValue,
		).
		Suffix(`
			ON CONFLICT (campaign_id, date, device) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				cost = EXCLUDED.cost,
				conversions = EXCLUDED.conversions,
				conversion_value = EXCLUDED.conversion_value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *metricRepository) ListSnapshotsByWorkspace(ctx context.Context, workspaceID string, window domain.DateWindow) ([]*domain.MetricSnapshot, error) {
	query, args, err := squirrel.
		Select("m.ad_account_id, m.campaign_id, m.date, m.impressions, m.clicks, m.cost, m.conversions, m.conversion_value, m.ctr, m.cpc, m.roas").
		From("ad_metrics m").
		Join("campaigns c ON c.id = m.campaign_id").
		Join("ad_accounts a ON a.id = c.ad_account_id").
		Where(squirrel.Eq{"a.workspace_id": workspaceID}).
		Where(squirrel.GtOrEq{"m.date": window.Start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"m.date": window.End.Format(time.DateOnly)}).
		OrderBy("m.campaign_id ASC", "m.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricSnapshot, 0)
	for rows.Next() {
		s := &domain.MetricSnapshot{}
		if err := rows.Scan(
			&s.AccountID,
			&s.CampaignID,
			&s.Date,
			&s.Impressions,
			&s.Clicks,
			&s.Cost,
			&s.Conversions,
			&s.ConversionValue,
			&s.CTR,
			&s.CPC,
			&s.ROAS,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *metricRepository) ListDeviceSnapshotsByWorkspace(ctx context.Context, workspaceID string, window domain.DateWindow) ([]*domain.DeviceMetricSnapshot, error) {
	query, args, err := squirrel.
		Select("d.campaign_id, d.date, d.device, d.impressions, d.clicks, d.cost, d.conversions, d.conversion_value").
		From("device_metrics d").
		Join("campaigns c ON c.id = d.campaign_id").
		Join("ad_accounts a ON a.id = c.ad_account_id").
		Where(squirrel.Eq{"a.workspace_id": workspaceID}).
		Where(squirrel.GtOrEq{"d.date": window.Start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"d.date": window.End.Format(time.DateOnly)}).
		OrderBy("d.campaign_id ASC", "d.date ASC", "d.device ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.DeviceMetricSnapshot, 0)
	for rows.Next() {
		s := &domain.DeviceMetricSnapshot{}
		if err := rows.Scan(
			&s.CampaignID,
			&s.Date,
			&s.Device,
			&s.Impressions,
			&s.Clicks,
			&s.Cost,
			&s.Conversions,
			&s.ConversionValue,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas por dispositivo: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}
