package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Alphawga/insightFlow/infrastructure/repository"
	"github.com/Alphawga/insightFlow/internal/config"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/internal/usecases/syncing"
)

// JobAll roda as três fases juntas para cada conta
const JobAll = "all"

var ErrUnknownJob = errors.New("tipo de job desconhecido")

// GoogleAdsSyncConfig representa a configuração do agendador de sincronização
type GoogleAdsSyncConfig struct {
	CampaignsInterval         time.Duration
	MetricsInterval           time.Duration
	ConversionActionsInterval time.Duration
	MaxConcurrentJobs         int
	SyncEnabled               bool
}

type jobStatus struct {
	running     bool
	startedAt   time.Time
	completedAt time.Time
	accounts    int
	failed      int
}

// GoogleAdsSyncService agenda um job por fase. Cada job percorre as contas com
// credencial e chama o orquestrador, que continua garantindo uma sincronização por conta.
type GoogleAdsSyncService struct {
	scheduler    *gocron.Scheduler
	config       GoogleAdsSyncConfig
	accountRepo  repository.AccountRepository
	orchestrator syncing.Orchestrator

	mu      sync.Mutex
	jobs    map[string]*jobStatus
	baseCtx context.Context
}

func NewGoogleAdsSyncService(
	accountRepo repository.AccountRepository,
	orchestrator syncing.Orchestrator,
	appConfig *config.Config,
) *GoogleAdsSyncService {
	syncConfig := GoogleAdsSyncConfig{
		CampaignsInterval:         appConfig.GoogleAdsSync.CampaignsInterval,
		MetricsInterval:           appConfig.GoogleAdsSync.MetricsInterval,
		ConversionActionsInterval: appConfig.GoogleAdsSync.ConversionActionsInterval,
		MaxConcurrentJobs:         appConfig.GoogleAdsSync.MaxConcurrentJobs,
		SyncEnabled:               appConfig.GoogleAdsSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"campaigns_interval":          syncConfig.CampaignsInterval.String(),
		"metrics_interval":            syncConfig.MetricsInterval.String(),
		"conversion_actions_interval": syncConfig.ConversionActionsInterval.String(),
		"max_concurrent_jobs":         syncConfig.MaxConcurrentJobs,
		"sync_enabled":                syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do Google Ads carregada")

	return &GoogleAdsSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       syncConfig,
		accountRepo:  accountRepo,
		orchestrator: orchestrator,
		jobs:         make(map[string]*jobStatus),
		baseCtx:      context.Background(),
	}
}

// Start agenda os jobs e para o agendador quando o contexto for cancelado
func (s *GoogleAdsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada do Google Ads desabilitada por configuração")
		return nil
	}

	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()

	intervals := map[domain.SyncPhase]time.Duration{
		domain.SyncPhaseCampaigns:         s.config.CampaignsInterval,
		domain.SyncPhaseMetrics:           s.config.MetricsInterval,
		domain.SyncPhaseConversionActions: s.config.ConversionActionsInterval,
	}

	for _, phase := range domain.AllSyncPhases {
		interval := intervals[phase]
		if interval <= 0 {
			logrus.WithField("phase", phase).Warn("Intervalo não configurado, job não agendado")
			continue
		}

		phase := phase
		_, err := s.scheduler.Every(interval).WaitForSchedule().Do(func() {
			s.runJob(string(phase), []domain.SyncPhase{phase})
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar sincronização da fase %s: %w", phase, err)
		}
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do Google Ads")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara um job fora do agendamento sem esperar o resultado
func (s *GoogleAdsSyncService) TriggerManualSync(job string) error {
	phases, err := phasesForJob(job)
	if err != nil {
		return err
	}

	logrus.WithField("job", job).Info("Iniciando sincronização manual do Google Ads")
	go s.runJob(job, phases)

	return nil
}

func phasesForJob(job string) ([]domain.SyncPhase, error) {
	if job == JobAll {
		return domain.AllSyncPhases, nil
	}

	for _, phase := range domain.AllSyncPhases {
		if string(phase) == job {
			return []domain.SyncPhase{phase}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownJob, job)
}

// runJob sincroniza as fases pedidas em todas as contas com credencial
func (s *GoogleAdsSyncService) runJob(job string, phases []domain.SyncPhase) {
	status, ok := s.begin(job)
	if !ok {
		logrus.WithField("job", job).Info("Job do Google Ads já em andamento, ignorando")
		return
	}

	ctx := s.context()
	accounts, err := s.accountRepo.ListSyncable(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"job":   job,
			"error": err.Error(),
		}).Error("Erro ao buscar contas para sincronização do Google Ads")
		s.finish(job, status, 0, 0)
		return
	}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg     sync.WaitGroup
		failMu sync.Mutex
		failed int
	)

	for _, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.Account) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.syncAccount(ctx, job, acc, phases); err != nil {
				failMu.Lock()
				failed++
				failMu.Unlock()
			}
		}(account)
	}

	wg.Wait()
	s.finish(job, status, len(accounts), failed)
}

func (s *GoogleAdsSyncService) syncAccount(ctx context.Context, job string, acc *domain.Account, phases []domain.SyncPhase) error {
	logger := logrus.WithFields(logrus.Fields{
		"job":         job,
		"account_id":  acc.ID,
		"external_id": acc.ExternalID,
	})

	_, err := s.orchestrator.SyncPhases(ctx, acc.ID, phases)
	if errors.Is(err, syncing.ErrSyncInProgress) {
		logger.Info("Conta já em sincronização, pulando")
		return nil
	}
	if err != nil {
		logger.WithField("error", err.Error()).Warn("Sincronização agendada falhou")
		return err
	}

	logger.Debug("Sincronização agendada concluída")
	return nil
}

func (s *GoogleAdsSyncService) begin(job string) (*jobStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, ok := s.jobs[job]
	if !ok {
		status = &jobStatus{}
		s.jobs[job] = status
	}
	if status.running {
		return status, false
	}

	status.running = true
	status.startedAt = time.Now()
	return status, true
}

func (s *GoogleAdsSyncService) finish(job string, status *jobStatus, accounts, failed int) {
	s.mu.Lock()
	status.running = false
	status.completedAt = time.Now()
	status.accounts = accounts
	status.failed = failed
	duration := status.completedAt.Sub(status.startedAt)
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"job":      job,
		"accounts": accounts,
		"failed":   failed,
		"duration": duration.String(),
	}).Info("Job do Google Ads concluído")
}

func (s *GoogleAdsSyncService) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseCtx
}

// GetStatus retorna o status atual do agendador
func (s *GoogleAdsSyncService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make(map[string]any, len(s.jobs))
	for name, status := range s.jobs {
		jobs[name] = map[string]any{
			"running":           status.running,
			"last_started_at":   status.startedAt,
			"last_completed_at": status.completedAt,
			"accounts":          status.accounts,
			"failed":            status.failed,
		}
	}

	return map[string]any{
		"sync_enabled":                s.config.SyncEnabled,
		"campaigns_interval":          s.config.CampaignsInterval.String(),
		"metrics_interval":            s.config.MetricsInterval.String(),
		"conversion_actions_interval": s.config.ConversionActionsInterval.String(),
		"max_concurrent_jobs":         s.config.MaxConcurrentJobs,
		"jobs":                        jobs,
	}
}
