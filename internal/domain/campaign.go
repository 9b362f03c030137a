package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
)

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusEnabled, CampaignStatusPaused, CampaignStatusRemoved:
		return true
	}
	return false
}

const BudgetTypeDaily = "DAILY"

// Campaign é o espelho local de uma campanha. (AccountID, ExternalID) é a
// chave de reconciliação e o ID local nunca muda entre sincronizações.
type Campaign struct {
	ID         string         `json:"id"`
	AccountID  string         `json:"account_id"`
	ExternalID string         `json:"external_id"`
	Name       string         `json:"name"`
	Status     CampaignStatus `json:"status"`
	Budget     *float64       `json:"budget"`
	BudgetType string         `json:"budget_type"`
	StartDate  *time.Time     `json:"start_date"`
	EndDate    *time.Time     `json:"end_date"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// CampaignSummary é a campanha com o snapshot diário mais recente
type CampaignSummary struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Budget      float64        `json:"budget"`
	Spent       float64        `json:"spent"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	Conversions float64        `json:"conversions"`
}
