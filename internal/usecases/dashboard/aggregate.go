package dashboard

import (
	"time"

	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/pkg/utils"
)

// Aggregate monta o overview a partir do estado persistido. É uma função pura:
// os mesmos dados e a mesma janela produzem sempre o mesmo resultado.
// snapshots pode conter a janela atual e a anterior; o que estiver fora das duas é ignorado.
func Aggregate(
	campaigns []*domain.Campaign,
	snapshots []*domain.MetricSnapshot,
	devices []*domain.DeviceMetricSnapshot,
	window domain.DateWindow,
	now time.Time,
) *domain.Overview {
	previousWindow := window.Previous()

	var current, previous domain.MetricTotals
	perCampaign := make(map[string]*domain.MetricTotals, len(campaigns))

	for _, s := range snapshots {
		switch {
		case window.Contains(s.Date):
			addSnapshot(&current, s)

			totals, ok := perCampaign[s.CampaignID]
			if !ok {
				totals = &domain.MetricTotals{}
				perCampaign[s.CampaignID] = totals
			}
			addSnapshot(totals, s)
		case previousWindow.Contains(s.Date):
			addSnapshot(&previous, s)
		}
	}

	currentRates := ratesOf(current)
	previousRates := ratesOf(previous)

	return &domain.Overview{
		Timestamp: now,
		Overview: domain.OverviewMetrics{
			CTR:         utils.RoundWithTwoDecimalPlace(currentRates.ctr),
			CPC:         utils.RoundWithTwoDecimalPlace(currentRates.cpc),
			Conversions: utils.RoundWithTwoDecimalPlace(current.Conversions),
			ROAS:        utils.RoundWithTwoDecimalPlace(currentRates.roas),
			Trends: domain.Trends{
				CTR:         utils.RoundWithTwoDecimalPlace(utils.PercentChange(currentRates.ctr, previousRates.ctr)),
				CPC:         utils.RoundWithTwoDecimalPlace(utils.PercentChange(currentRates.cpc, previousRates.cpc)),
				Conversions: utils.RoundWithTwoDecimalPlace(utils.PercentChange(current.Conversions, previous.Conversions)),
				ROAS:        utils.RoundWithTwoDecimalPlace(utils.PercentChange(currentRates.roas, previousRates.roas)),
			},
		},
		Campaigns:     campaignPerformance(campaigns, perCampaign),
		DeviceMetrics: devicePerformance(devices, window),
	}
}

type rates struct {
	ctr  float64
	cpc  float64
	roas float64
}

// ratesOf calcula as taxas sobre as somas; ctr em percentual
func ratesOf(t domain.MetricTotals) rates {
	return rates{
		ctr:  utils.Percentage(float64(t.Clicks), float64(t.Impressions)),
		cpc:  utils.SafeDivide(t.Cost, float64(t.Clicks)),
		roas: utils.SafeDivide(t.ConversionValue, t.Cost),
	}
}

func addSnapshot(t *domain.MetricTotals, s *domain.MetricSnapshot) {
	t.Impressions += s.Impressions
	t.Clicks += s.Clicks
	t.Cost += s.Cost
	t.Conversions += s.Conversions
	t.ConversionValue += s.ConversionValue
}

func campaignPerformance(campaigns []*domain.Campaign, perCampaign map[string]*domain.MetricTotals) []*domain.CampaignPerformance {
	performance := make([]*domain.CampaignPerformance, 0, len(campaigns))

	for _, c := range campaigns {
		totals := perCampaign[c.ID]
		if totals == nil {
			totals = &domain.MetricTotals{}
		}

		budget := 0.0
		if c.Budget != nil {
			budget = *c.Budget
		}

		performance = append(performance, &domain.CampaignPerformance{
			ID:          c.ID,
			Name:        c.Name,
			Status:      c.Status,
			Budget:      budget,
			Spent:       utils.RoundWithTwoDecimalPlace(totals.Cost),
			Impressions: totals.Impressions,
			Clicks:      totals.Clicks,
			Conversions: utils.RoundWithTwoDecimalPlace(totals.Conversions),
			CTR:         utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(totals.Clicks), float64(totals.Impressions))),
		})
	}

	return performance
}

// devicePerformance sempre devolve os três buckets, na ordem fixa
func devicePerformance(devices []*domain.DeviceMetricSnapshot, window domain.DateWindow) []*domain.DevicePerformance {
	totals := make(map[domain.Device]*domain.MetricTotals, len(domain.Devices))
	for _, device := range domain.Devices {
		totals[device] = &domain.MetricTotals{}
	}

	for _, d := range devices {
		t, ok := totals[d.Device]
		if !ok || !window.Contains(d.Date) {
			continue
		}
		t.Impressions += d.Impressions
		t.Clicks += d.Clicks
		t.Cost += d.Cost
		t.Conversions += d.Conversions
		t.ConversionValue += d.ConversionValue
	}

	performance := make([]*domain.DevicePerformance, 0, len(domain.Devices))
	for _, device := range domain.Devices {
		t := totals[device]
		performance = append(performance, &domain.DevicePerformance{
			Device:      device,
			Impressions: t.Impressions,
			Clicks:      t.Clicks,
			Conversions: utils.RoundWithTwoDecimalPlace(t.Conversions),
			Cost:        utils.RoundWithTwoDecimalPlace(t.Cost),
			CTR:         utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(t.Clicks), float64(t.Impressions))),
		})
	}

	return performance
}
