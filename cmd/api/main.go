package main

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Alphawga/insightFlow/infrastructure/database/postgres"
	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads"
	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/adsclient"
	"github.com/Alphawga/insightFlow/infrastructure/repository"
	"github.com/Alphawga/insightFlow/internal/api"
	"github.com/Alphawga/insightFlow/internal/config"
	"github.com/Alphawga/insightFlow/internal/scheduler"
	"github.com/Alphawga/insightFlow/internal/usecases/account"
	"github.com/Alphawga/insightFlow/internal/usecases/authenticating"
	"github.com/Alphawga/insightFlow/internal/usecases/connecting"
	"github.com/Alphawga/insightFlow/internal/usecases/dashboard"
	"github.com/Alphawga/insightFlow/internal/usecases/syncing"
	"github.com/Alphawga/insightFlow/pkg/log"
	"github.com/Alphawga/insightFlow/pkg/secret"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	level := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := pgConn.Migrate(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.Info("Migrações aplicadas")
	}

	sealer, err := secret.NewSealer(cfg.Credentials.EncryptionKey)
	if err != nil {
		logrus.WithError(err).Fatal("Chave de criptografia das credenciais inválida")
	}
	if cfg.Credentials.EncryptionKey == "" {
		logrus.Warn("CREDENTIALS_ENCRYPTION_KEY vazia: refresh tokens serão gravados sem criptografia")
	}

	accountRepo := repository.NewAccountRepository(pgConn, sealer)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	conversionRepo := repository.NewConversionActionRepository(pgConn)
	failureRepo := repository.NewSyncFailureRepository(pgConn)

	broker := adsclient.NewTokenBroker(cfg.GoogleAds,
		adsclient.WithHTTPClient(&http.Client{Timeout: cfg.GoogleAds.RequestTimeout}),
	)
	integrator := googleads.New(broker)

	orchestrator := syncing.NewService(accountRepo, campaignRepo, metricRepo, conversionRepo, integrator, cfg.Sync)

	// campanhas e depois métricas/conversões em paralelo: duas fases no pior caso, com folga
	taskTimeout := cfg.Sync.PhaseTimeout * 3
	dispatcher := syncing.NewDispatcher(orchestrator, accountRepo, failureRepo, cfg.Sync.DispatchWorkers, cfg.Sync.DispatchQueueSize, taskTimeout)

	connector := connecting.NewService(integrator, accountRepo, dispatcher)
	accountService := account.NewService(accountRepo, campaignRepo, conversionRepo, failureRepo)
	dashboardService := dashboard.NewService(campaignRepo, metricRepo)
	authenticator := authenticating.NewService(cfg.Auth)

	syncService := scheduler.NewGoogleAdsSyncService(accountRepo, orchestrator, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do Google Ads")
	} else {
		logrus.Info("Agendador de sincronização do Google Ads iniciado")
	}

	server := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Connector:     connector,
		Accounts:      accountService,
		Dashboard:     dashboardService,
		Orchestrator:  orchestrator,
		Scheduler:     syncService,
	})
	server.OnShutdown(dispatcher.Close)

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
