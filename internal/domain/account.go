package domain

import "time"

type Platform string

const (
	PlatformGoogleAds Platform = "GOOGLE_ADS"
)

type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "IDLE"
	SyncStatusSyncing SyncStatus = "SYNCING"
	SyncStatusSuccess SyncStatus = "SUCCESS"
	SyncStatusError   SyncStatus = "ERROR"
)

// Account espelha uma conta de anúncios externa pertencente a um workspace.
// RefreshToken fica selado no banco e só é aberto durante uma sincronização.
type Account struct {
	ID            string     `json:"id"`
	WorkspaceID   string     `json:"workspace_id"`
	Platform      Platform   `json:"platform"`
	ExternalID    string     `json:"external_id"`
	Name          string     `json:"name"`
	CustomerName  *string    `json:"customer_name"`
	CurrencyCode  *string    `json:"currency_code"`
	TimeZone      *string    `json:"time_zone"`
	RefreshToken  string     `json:"-"`
	SyncStatus    SyncStatus `json:"sync_status"`
	SyncStartedAt *time.Time `json:"sync_started_at"`
	LastSyncedAt  *time.Time `json:"last_synced_at"`
	SyncError     *string    `json:"sync_error"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (a *Account) HasCredential() bool {
	return a != nil && a.RefreshToken != ""
}

type AccountResponse struct {
	ID           string     `json:"id"`
	WorkspaceID  string     `json:"workspace_id"`
	Platform     Platform   `json:"platform"`
	ExternalID   string     `json:"external_id"`
	Name         string     `json:"name"`
	CustomerName *string    `json:"customer_name"`
	SyncStatus   SyncStatus `json:"sync_status"`
	LastSyncedAt *time.Time `json:"last_synced_at"`
	SyncError    *string    `json:"sync_error"`
	HasToken     bool       `json:"hasToken"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewAccountResponse(a *Account) *AccountResponse {
	return &AccountResponse{
		ID:           a.ID,
		WorkspaceID:  a.WorkspaceID,
		Platform:     a.Platform,
		ExternalID:   a.ExternalID,
		Name:         a.Name,
		CustomerName: a.CustomerName,
		SyncStatus:   a.SyncStatus,
		LastSyncedAt: a.LastSyncedAt,
		SyncError:    a.SyncError,
		HasToken:     a.HasCredential(),
		CreatedAt:    a.CreatedAt,
	}
}

type ConnectAccountRequest struct {
	Code string `json:"code"`
}

type ConnectAccountResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
}

// CustomerInfo são os metadados da conta na plataforma
type CustomerInfo struct {
	ID              string
	DescriptiveName string
	CurrencyCode    string
	TimeZone        string
}
