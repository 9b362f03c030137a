package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads"
	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/adsclient"
	"github.com/Alphawga/insightFlow/infrastructure/repository"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/pkg/utils"
)

// MetricsIngestor grava os fatos diários por campanha e por dispositivo.
// As linhas são consolidadas pela chave natural antes da gravação, então
// reprocessar a mesma janela converge para um registro por chave.
type MetricsIngestor struct {
	integrator googleads.Integrator
	accounts   repository.AccountRepository
	campaigns  repository.CampaignRepository
	metrics    repository.MetricRepository
}

func NewMetricsIngestor(
	integrator googleads.Integrator,
	accounts repository.AccountRepository,
	campaigns repository.CampaignRepository,
	metrics repository.MetricRepository,
) *MetricsIngestor {
	return &MetricsIngestor{
		integrator: integrator,
		accounts:   accounts,
		campaigns:  campaigns,
		metrics:    metrics,
	}
}

type snapshotKey struct {
	campaignID string
	date       string
}

type deviceSnapshotKey struct {
	campaignID string
	date       string
	device     domain.Device
}

type campaignAggregate struct {
	externalID string
	snapshot   *domain.MetricSnapshot
	rows       int
}

func (m *MetricsIngestor) Ingest(ctx context.Context, client adsclient.Client, account *domain.Account, window domain.DateWindow) (domain.ReconcileResult, error) {
	result := domain.ReconcileResult{}

	rows, failures, err := m.integrator.FetchMetrics(ctx, client, account.ExternalID, window)
	if err != nil {
		return result, err
	}
	result.Failed = append(result.Failed, failures...)

	campaignIDs, err := m.campaigns.MapExternalIDs(ctx, account.ID)
	if err != nil {
		return result, err
	}

	snapshots, devices, skipped := foldMetricRows(account.ID, rows, campaignIDs)
	result.Skipped = skipped

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"skipped":    skipped,
		}).Info("syncing: métricas de campanhas ainda não reconciliadas foram ignoradas")
	}

	if err := ensureAccountExists(ctx, m.accounts, account.ID); err != nil {
		return result, err
	}

	for _, agg := range snapshots {
		if err := m.metrics.UpsertSnapshot(ctx, agg.snapshot); err != nil {
			result.AddFailure(rowKey(agg.externalID, agg.snapshot.Date, ""), err)
			continue
		}
		result.Updated++
	}

	for _, device := range devices {
		if err := m.metrics.UpsertDeviceSnapshot(ctx, device.snapshot); err != nil {
			result.AddFailure(rowKey(device.externalID, device.snapshot.Date, device.snapshot.Device), err)
			continue
		}
		result.Updated++
	}

	if result.AllFailed() {
		return result, ErrAllRowsFailed
	}

	return result, nil
}

type deviceAggregate struct {
	externalID string
	snapshot   *domain.DeviceMetricSnapshot
}

// foldMetricRows soma as linhas por (campanha, dia) e por (campanha, dia, dispositivo),
// preservando a ordem de chegada. Linhas de campanhas desconhecidas são contadas como ignoradas.
func foldMetricRows(accountID string, rows []*domain.MetricRow, campaignIDs map[string]string) ([]*campaignAggregate, []*deviceAggregate, int) {
	snapshots := make([]*campaignAggregate, 0)
	snapshotIndex := make(map[snapshotKey]*campaignAggregate)
	devices := make([]*deviceAggregate, 0)
	deviceIndex := make(map[deviceSnapshotKey]*deviceAggregate)
	skipped := 0

	for _, row := range rows {
		campaignID, ok := campaignIDs[row.CampaignExternalID]
		if !ok {
			skipped++
			continue
		}

		date := utils.TruncateToDay(row.Date)
		day := date.Format(time.DateOnly)

		key := snapshotKey{campaignID: campaignID, date: day}
		agg, ok := snapshotIndex[key]
		if !ok {
			agg = &campaignAggregate{
				externalID: row.CampaignExternalID,
				snapshot: &domain.MetricSnapshot{
					AccountID:  accountID,
					CampaignID: campaignID,
					Date:       date,
				},
			}
			snapshotIndex[key] = agg
			snapshots = append(snapshots, agg)
		}
		agg.add(row)

		// segmentos fora dos três buckets entram só no total da campanha
		if !row.Device.IsValid() {
			continue
		}

		dkey := deviceSnapshotKey{campaignID: campaignID, date: day, device: row.Device}
		device, ok := deviceIndex[dkey]
		if !ok {
			device = &deviceAggregate{
				externalID: row.CampaignExternalID,
				snapshot: &domain.DeviceMetricSnapshot{
					CampaignID: campaignID,
					Date:       date,
					Device:     row.Device,
				},
			}
			deviceIndex[dkey] = device
			devices = append(devices, device)
		}
		device.snapshot.Impressions += row.Impressions
		device.snapshot.Clicks += row.Clicks
		device.snapshot.Cost += row.Cost
		device.snapshot.Conversions += row.Conversions
		device.snapshot.ConversionValue += row.ConversionValue
	}

	return snapshots, devices, skipped
}

// add acumula a linha. Com uma única linha as taxas de referência são as da
// plataforma; com várias, são recalculadas sobre as somas na mesma unidade.
func (a *campaignAggregate) add(row *domain.MetricRow) {
	s := a.snapshot
	s.Impressions += row.Impressions
	s.Clicks += row.Clicks
	s.Cost += row.Cost
	s.Conversions += row.Conversions
	s.ConversionValue += row.ConversionValue
	a.rows++

	if a.rows == 1 {
		s.CTR, s.CPC, s.ROAS = row.CTR, row.CPC, row.ROAS
		return
	}

	s.CTR = safeDiv(float64(s.Clicks), float64(s.Impressions))
	s.CPC = safeDiv(s.Cost, float64(s.Clicks))
	s.ROAS = safeDiv(s.ConversionValue, s.Cost)
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func rowKey(externalID string, date time.Time, device domain.Device) string {
	if device == "" {
		return fmt.Sprintf("%s@%s", externalID, date.Format(time.DateOnly))
	}
	return fmt.Sprintf("%s@%s/%s", externalID, date.Format(time.DateOnly), device)
}
