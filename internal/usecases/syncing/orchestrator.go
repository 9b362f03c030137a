package syncing

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads"
	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/adsclient"
	"github.com/Alphawga/insightFlow/infrastructure/repository"
	"github.com/Alphawga/insightFlow/internal/config"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/pkg/utils"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=orchestrator.go -destination=mocks/orchestrator.go -package=mocks

// Orchestrator conduz a máquina de estados IDLE → SYNCING → {SUCCESS, ERROR} de uma conta
type Orchestrator interface {
	Sync(ctx context.Context, accountID string) (*domain.SyncReport, error)
	SyncPhases(ctx context.Context, accountID string, phases []domain.SyncPhase) (*domain.SyncReport, error)
}

type Service struct {
	accounts    repository.AccountRepository
	integrator  googleads.Integrator
	campaigns   *CampaignReconciler
	metrics     *MetricsIngestor
	conversions *ConversionReconciler
	cfg         config.Sync
	now         func() time.Time
}

func NewService(
	accounts repository.AccountRepository,
	campaigns repository.CampaignRepository,
	metrics repository.MetricRepository,
	conversions repository.ConversionActionRepository,
	integrator googleads.Integrator,
	cfg config.Sync,
) *Service {
	return &Service{
		accounts:    accounts,
		integrator:  integrator,
		campaigns:   NewCampaignReconciler(integrator, accounts, campaigns),
		metrics:     NewMetricsIngestor(integrator, accounts, campaigns, metrics),
		conversions: NewConversionReconciler(integrator, accounts, conversions),
		cfg:         cfg,
		now:         time.Now,
	}
}

// Sync executa as três fases
func (s *Service) Sync(ctx context.Context, accountID string) (*domain.SyncReport, error) {
	return s.SyncPhases(ctx, accountID, domain.AllSyncPhases)
}

// SyncPhases executa apenas as fases pedidas. Campanhas rodam primeiro para que as
// métricas encontrem as campanhas novas; métricas e conversões rodam em paralelo.
func (s *Service) SyncPhases(ctx context.Context, accountID string, phases []domain.SyncPhase) (report *domain.SyncReport, err error) {
	logger := logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"phases":     phases,
	})

	account, err := s.accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, NewSyncError(err, accountID, "")
	}
	if account == nil {
		return nil, NewSyncError(ErrAccountNotFound, accountID, "")
	}
	if !account.HasCredential() {
		return nil, NewSyncError(ErrMissingCredential, accountID, "")
	}

	startedAt := s.now()
	acquired, err := s.accounts.TryStartSync(ctx, accountID, startedAt.Add(-s.cfg.StaleAfter))
	if err != nil {
		return nil, NewSyncError(err, accountID, "")
	}
	if !acquired {
		logger.Info("syncing: sincronização já em andamento, gatilho ignorado")
		return nil, NewSyncError(ErrSyncInProgress, accountID, "")
	}

	logger.Info("syncing: sincronização iniciada")

	report = &domain.SyncReport{
		AccountID: accountID,
		Status:    domain.SyncStatusSyncing,
		StartedAt: startedAt,
		Phases:    make(map[domain.SyncPhase]domain.ReconcileResult),
	}

	// a conta já está em SYNCING: qualquer panic daqui em diante precisa virar ERROR
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("stack", string(debug.Stack())).Error("syncing: panic durante a sincronização")
			err = s.fail(ctx, report, NewSyncError(fmt.Errorf("%w: %v", ErrSyncPanic, r), accountID, ""))
		}
	}()

	client, deriveErr := s.deriveClient(ctx, account.RefreshToken)
	if deriveErr != nil {
		return report, s.fail(ctx, report, NewSyncError(deriveErr, accountID, ""))
	}

	if syncErr := s.runPhases(ctx, client, account, phases, report); syncErr != nil {
		return report, s.fail(ctx, report, syncErr)
	}

	finishedAt := s.now()
	if markErr := s.accounts.MarkSyncSuccess(context.WithoutCancel(ctx), accountID, finishedAt); markErr != nil {
		if errors.Is(markErr, repository.ErrNotFound) {
			return report, NewSyncError(ErrAccountRemoved, accountID, "")
		}
		return report, NewSyncError(markErr, accountID, "")
	}

	report.Status = domain.SyncStatusSuccess
	report.FinishedAt = finishedAt

	logger.WithField("duration", finishedAt.Sub(startedAt).String()).Info("syncing: sincronização concluída")

	return report, nil
}

// deriveClient resolve o token sob o mesmo prazo de uma fase
func (s *Service) deriveClient(ctx context.Context, refreshToken string) (adsclient.Client, error) {
	deriveCtx, cancel := s.phaseContext(ctx)
	defer cancel()

	client, err := s.integrator.DeriveClient(deriveCtx, refreshToken)
	if err != nil {
		return nil, classifyPhaseError(deriveCtx, err)
	}

	return client, nil
}

func (s *Service) phaseContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.PhaseTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.PhaseTimeout)
	}
	return context.WithCancel(ctx)
}

type phaseOutcome struct {
	phase  domain.SyncPhase
	result domain.ReconcileResult
	err    error
}

func (s *Service) runPhases(ctx context.Context, client adsclient.Client, account *domain.Account, phases []domain.SyncPhase, report *domain.SyncReport) *SyncError {
	requested := make(map[domain.SyncPhase]bool, len(phases))
	for _, phase := range phases {
		requested[phase] = true
	}

	if requested[domain.SyncPhaseCampaigns] {
		outcome := s.runPhase(ctx, client, account, domain.SyncPhaseCampaigns)
		report.Phases[outcome.phase] = outcome.result
		if outcome.err != nil {
			return NewSyncError(outcome.err, account.ID, outcome.phase)
		}
	}

	concurrent := make([]domain.SyncPhase, 0, 2)
	for _, phase := range []domain.SyncPhase{domain.SyncPhaseMetrics, domain.SyncPhaseConversionActions} {
		if requested[phase] {
			concurrent = append(concurrent, phase)
		}
	}

	outcomes := make([]phaseOutcome, len(concurrent))
	var wg sync.WaitGroup
	for i, phase := range concurrent {
		wg.Add(1)
		go func(i int, phase domain.SyncPhase) {
			defer wg.Done()
			outcomes[i] = s.runPhase(ctx, client, account, phase)
		}(i, phase)
	}
	wg.Wait()

	var firstErr *SyncError
	for _, outcome := range outcomes {
		report.Phases[outcome.phase] = outcome.result
		if outcome.err != nil && firstErr == nil {
			firstErr = NewSyncError(outcome.err, account.ID, outcome.phase)
		}
	}

	return firstErr
}

func (s *Service) runPhase(ctx context.Context, client adsclient.Client, account *domain.Account, phase domain.SyncPhase) (outcome phaseOutcome) {
	phaseCtx, cancel := s.phaseContext(ctx)
	defer cancel()

	outcome.phase = phase
	start := time.Now()

	// fases de métricas e conversões rodam em goroutines próprias
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"phase":      phase,
				"stack":      string(debug.Stack()),
			}).Error("syncing: panic na fase")
			outcome.err = fmt.Errorf("%w: %v", ErrSyncPanic, r)
		}
	}()

	switch phase {
	case domain.SyncPhaseCampaigns:
		outcome.result, outcome.err = s.campaigns.Reconcile(phaseCtx, client, account)
	case domain.SyncPhaseMetrics:
		outcome.result, outcome.err = s.metrics.Ingest(phaseCtx, client, account, s.metricsWindow())
	case domain.SyncPhaseConversionActions:
		outcome.result, outcome.err = s.conversions.Reconcile(phaseCtx, client, account)
	}

	if outcome.err != nil {
		outcome.err = classifyPhaseError(phaseCtx, outcome.err)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"phase":      phase,
		"updated":    outcome.result.Updated,
		"skipped":    outcome.result.Skipped,
		"failed":     len(outcome.result.Failed),
		"duration":   time.Since(start).String(),
	}).Debug("syncing: fase finalizada")

	return outcome
}

// fail grava ERROR com a mensagem da causa. Se a conta sumiu no meio do caminho
// não há onde registrar o erro e a falha vira ErrAccountRemoved.
func (s *Service) fail(ctx context.Context, report *domain.SyncReport, syncErr *SyncError) error {
	report.Status = domain.SyncStatusError
	report.FinishedAt = s.now()

	logger := logrus.WithFields(logrus.Fields{
		"account_id": syncErr.AccountID,
		"phase":      syncErr.Phase,
		"error":      syncErr.Error(),
	})

	if errors.Is(syncErr, ErrAccountRemoved) {
		logger.Warn("syncing: conta removida durante a sincronização")
		return syncErr
	}

	if err := s.accounts.MarkSyncError(context.WithoutCancel(ctx), syncErr.AccountID, syncErrorMessage(syncErr)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("syncing: conta removida antes de registrar o erro")
			return NewSyncError(ErrAccountRemoved, syncErr.AccountID, syncErr.Phase)
		}
		logger.WithField("mark_error", err.Error()).Error("syncing: falha ao registrar erro da sincronização")
	}

	logger.Error("syncing: sincronização falhou")

	return syncErr
}

// metricsWindow é a janela padrão [hoje - LookbackDays + 1, amanhã)
func (s *Service) metricsWindow() domain.DateWindow {
	days := s.cfg.LookbackDays
	if days <= 0 {
		days = 30
	}

	end := utils.TruncateToDay(s.now()).AddDate(0, 0, 1)
	return domain.DateWindow{
		Start: end.AddDate(0, 0, -days),
		End:   end,
	}
}
