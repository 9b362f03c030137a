package domain

import "time"

type Device string

const (
	DeviceDesktop Device = "DESKTOP"
	DeviceMobile  Device = "MOBILE"
	DeviceTablet  Device = "TABLET"
)

// Devices é a ordem fixa dos buckets do dashboard
var Devices = []Device{DeviceDesktop, DeviceMobile, DeviceTablet}

func (d Device) IsValid() bool {
	switch d {
	case DeviceDesktop, DeviceMobile, DeviceTablet:
		return true
	}
	return false
}

// MetricSnapshot é o fato diário no nível da campanha, único por (CampaignID, Date)
type MetricSnapshot struct {
	AccountID       string    `json:"account_id"`
	CampaignID      string    `json:"campaign_id"`
	Date            time.Time `json:"date"`
	Impressions     int64     `json:"impressions"`
	Clicks          int64     `json:"clicks"`
	Cost            float64   `json:"cost"`
	Conversions     float64   `json:"conversions"`
	ConversionValue float64   `json:"conversion_value"`
	CTR             float64   `json:"ctr"`
	CPC             float64   `json:"cpc"`
	ROAS            float64   `json:"roas"`
}

// DeviceMetricSnapshot é único por (CampaignID, Date, Device)
type DeviceMetricSnapshot struct {
	CampaignID      string    `json:"campaign_id"`
	Date            time.Time `json:"date"`
	Device          Device    `json:"device"`
	Impressions     int64     `json:"impressions"`
	Clicks          int64     `json:"clicks"`
	Cost            float64   `json:"cost"`
	Conversions     float64   `json:"conversions"`
	ConversionValue float64   `json:"conversion_value"`
}

// MetricRow é uma linha já convertida (custos em unidades decimais) vinda da plataforma
type MetricRow struct {
	CampaignExternalID string
	Date               time.Time
	Device             Device
	Impressions        int64
	Clicks             int64
	Cost               float64
	Conversions        float64
	ConversionValue    float64
	CTR                float64
	CPC                float64
	ROAS               float64
}
