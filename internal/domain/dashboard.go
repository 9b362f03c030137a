package domain

import "time"

// DateWindow é o intervalo semiaberto [Start, End) em dias de calendário
type DateWindow struct {
	Start time.Time
	End   time.Time
}

func (w DateWindow) Length() time.Duration {
	return w.End.Sub(w.Start)
}

// Previous retorna a janela imediatamente anterior de mesmo tamanho
func (w DateWindow) Previous() DateWindow {
	length := w.Length()
	return DateWindow{Start: w.Start.Add(-length), End: w.End.Add(-length)}
}

func (w DateWindow) Contains(date time.Time) bool {
	return !date.Before(w.Start) && date.Before(w.End)
}

type Trends struct {
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	Conversions float64 `json:"conversions"`
	ROAS        float64 `json:"roas"`
}

type OverviewMetrics struct {
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	Conversions float64 `json:"conversions"`
	ROAS        float64 `json:"roas"`
	Trends      Trends  `json:"trends"`
}

type CampaignPerformance struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Budget      float64        `json:"budget"`
	Spent       float64        `json:"spent"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	Conversions float64        `json:"conversions"`
	CTR         float64        `json:"ctr"`
}

type DevicePerformance struct {
	Device      Device  `json:"device"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions float64 `json:"conversions"`
	Cost        float64 `json:"cost"`
	CTR         float64 `json:"ctr"`
}

type Overview struct {
	Timestamp     time.Time              `json:"timestamp"`
	Overview      OverviewMetrics        `json:"overview"`
	Campaigns     []*CampaignPerformance `json:"campaigns"`
	DeviceMetrics []*DevicePerformance   `json:"deviceMetrics"`
}

// CampaignMetrics é a campanha com seus snapshots já filtrados pela janela
type CampaignMetrics struct {
	Campaign        *Campaign
	Snapshots       []*MetricSnapshot
	DeviceSnapshots []*DeviceMetricSnapshot
}

// MetricTotals acumula numeradores e denominadores para as taxas
type MetricTotals struct {
	Impressions     int64
	Clicks          int64
	Cost            float64
	Conversions     float64
	ConversionValue float64
}
