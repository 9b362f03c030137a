package domain

import "time"

const ConversionActionStatusEnabled = "ENABLED"

type ConversionAction struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"account_id"`
	ExternalID string    `json:"external_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	Type       string    `json:"type"`
	IsPrimary  bool      `json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ConversionActionsResponse struct {
	ConversionActions []*ConversionAction `json:"conversionActions"`
}
