package domain

import "time"

type SyncPhase string

const (
	SyncPhaseCampaigns         SyncPhase = "campaigns"
	SyncPhaseMetrics           SyncPhase = "metrics"
	SyncPhaseConversionActions SyncPhase = "conversion_actions"
)

var AllSyncPhases = []SyncPhase{SyncPhaseCampaigns, SyncPhaseMetrics, SyncPhaseConversionActions}

// RowFailure registra uma linha que não pôde ser reconciliada
type RowFailure struct {
	ExternalID string `json:"external_id"`
	Error      string `json:"error"`
}

// ReconcileResult é o resultado parcial de uma fase: linhas gravadas e linhas com falha
type ReconcileResult struct {
	Updated int          `json:"updated"`
	Skipped int          `json:"skipped"`
	Failed  []RowFailure `json:"failed"`
}

func (r *ReconcileResult) AddFailure(externalID string, err error) {
	r.Failed = append(r.Failed, RowFailure{ExternalID: externalID, Error: err.Error()})
}

// AllFailed indica que havia linhas e nenhuma foi gravada
func (r *ReconcileResult) AllFailed() bool {
	return r.Updated == 0 && len(r.Failed) > 0
}

type SyncReport struct {
	AccountID  string                        `json:"account_id"`
	Status     SyncStatus                    `json:"status"`
	StartedAt  time.Time                     `json:"started_at"`
	FinishedAt time.Time                     `json:"finished_at"`
	Phases     map[SyncPhase]ReconcileResult `json:"phases"`
}

type SyncAccountResponse struct {
	Success bool        `json:"success"`
	Report  *SyncReport `json:"report,omitempty"`
}

// SyncFailure é o registro durável de uma sincronização despachada que falhou
type SyncFailure struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"account_id"`
	TaskID     string    `json:"task_id"`
	Trigger    string    `json:"trigger"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
