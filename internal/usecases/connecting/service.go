package connecting

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads"
	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/domain"
	"github.com/Alphawga/insightFlow/infrastructure/repository"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/internal/usecases/syncing"
	"github.com/Alphawga/insightFlow/pkg/apiErrors"
	"github.com/Alphawga/insightFlow/pkg/utils"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=service.go -destination=mocks/service.go -package=mocks

type Connector interface {
	GetAuthURL(workspaceID string) (string, error)
	ConnectAccount(ctx context.Context, workspaceID, code string) ([]*domain.Account, error)
}

type Service struct {
	integrator googleads.Integrator
	accounts   repository.AccountRepository
	dispatcher syncing.SyncDispatcher
}

func NewService(integrator googleads.Integrator, accounts repository.AccountRepository, dispatcher syncing.SyncDispatcher) *Service {
	return &Service{
		integrator: integrator,
		accounts:   accounts,
		dispatcher: dispatcher,
	}
}

// GetAuthURL monta a URL de consentimento; o workspace volta no parâmetro state
func (s *Service) GetAuthURL(workspaceID string) (string, error) {
	if workspaceID == "" {
		return "", NewConnectError(ErrWorkspaceRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	return s.integrator.AuthURL(workspaceID), nil
}

// ConnectAccount troca o código, materializa cada conta acessível e dispara a
// primeira sincronização de cada uma sem esperar o resultado. O disparo acontece
// logo após salvar cada conta, então uma falha no meio não deixa as anteriores sem sincronizar.
func (s *Service) ConnectAccount(ctx context.Context, workspaceID, code string) ([]*domain.Account, error) {
	if workspaceID == "" {
		return nil, NewConnectError(ErrWorkspaceRequired, apiErrors.ErrMissingRequiredData, "", "")
	}
	if code == "" {
		return nil, NewConnectError(ErrCodeRequired, apiErrors.ErrMissingRequiredData, workspaceID, "")
	}

	logger := logrus.WithField("workspace_id", workspaceID)

	credentials, err := s.integrator.ExchangeCode(ctx, code)
	if err != nil {
		logger.WithField("error", err.Error()).Warn("connecting: falha na troca do código de autorização")
		return nil, NewConnectError(err, apiErrors.ErrPlatformCredential, workspaceID, "")
	}

	client, err := s.integrator.DeriveClient(ctx, credentials.RefreshToken)
	if err != nil {
		return nil, NewConnectError(err, apiErrors.ErrPlatformCredential, workspaceID, "")
	}

	customerIDs, err := s.integrator.ListAccessibleCustomerIDs(ctx, client)
	if err != nil {
		errCode := apiErrors.ErrExternalService
		if errors.Is(err, adsdomain.ErrNoAccessibleAccounts) || errors.Is(err, adsdomain.ErrCredentialExpired) {
			errCode = apiErrors.ErrPlatformCredential
		}
		return nil, NewConnectError(err, errCode, workspaceID, "")
	}

	accounts := make([]*domain.Account, 0, len(customerIDs))
	for _, customerID := range customerIDs {
		account, err := s.materializeAccount(ctx, workspaceID, client, customerID, credentials.RefreshToken)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
		s.dispatchInitialSync(ctx, account)
	}

	logger.WithField("accounts", len(accounts)).Info("connecting: contas conectadas")

	return accounts, nil
}

// materializeAccount cria a conta ou atualiza a existente com a credencial nova
func (s *Service) materializeAccount(ctx context.Context, workspaceID string, client adsclient.Client, customerID, refreshToken string) (*domain.Account, error) {
	account := &domain.Account{
		ID:           utils.NewEntityID(),
		WorkspaceID:  workspaceID,
		Platform:     domain.PlatformGoogleAds,
		ExternalID:   customerID,
		Name:         defaultAccountName(customerID),
		RefreshToken: refreshToken,
		SyncStatus:   domain.SyncStatusIdle,
	}

	info, err := s.integrator.GetCustomer(ctx, client, customerID)
	switch {
	case errors.Is(err, adsdomain.ErrCredentialExpired):
		return nil, NewConnectError(err, apiErrors.ErrPlatformCredential, workspaceID, customerID)
	case err != nil:
		// contas gerenciadoras costumam recusar a consulta direta; seguimos com o nome padrão
		logrus.WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"external_id":  customerID,
			"error":        err.Error(),
		}).Warn("connecting: não foi possível obter os dados da conta")
	case info != nil:
		applyCustomerInfo(account, info)
	}

	stored, err := s.accounts.CreateIfAbsent(ctx, account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"external_id":  customerID,
			"error":        err.Error(),
		}).Error("connecting: falha ao salvar conta")
		return nil, NewConnectError(ErrPersistAccount, apiErrors.ErrDatabaseOperation, workspaceID, err.Error())
	}

	return stored, nil
}

// dispatchInitialSync nunca falha o connect. Se a fila recusar a tarefa a conta
// fica em ERROR com o motivo, já que o agendador pode estar desligado.
func (s *Service) dispatchInitialSync(ctx context.Context, account *domain.Account) {
	taskID, err := s.dispatcher.Dispatch(account.ID, syncing.TriggerConnect, nil)
	logger := logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"workspace_id": account.WorkspaceID,
	})
	if err == nil {
		logger.WithField("task_id", taskID).Debug("connecting: sincronização inicial enfileirada")
		return
	}

	logger.WithField("error", err.Error()).Warn("connecting: sincronização inicial não enfileirada")

	// uma sincronização em andamento já cobre a conta
	if account.SyncStatus == domain.SyncStatusSyncing {
		return
	}

	message := fmt.Sprintf("%s: %s", ErrInitialSyncNotQueued.Error(), err.Error())
	if markErr := s.accounts.MarkSyncError(context.WithoutCancel(ctx), account.ID, message); markErr != nil {
		logger.WithField("error", markErr.Error()).Error("connecting: falha ao registrar erro da sincronização inicial")
		return
	}

	account.SyncStatus = domain.SyncStatusError
	account.SyncError = &message
}

func applyCustomerInfo(account *domain.Account, info *domain.CustomerInfo) {
	if info.DescriptiveName != "" {
		name := info.DescriptiveName
		account.Name = name
		account.CustomerName = &name
	}
	if info.CurrencyCode != "" {
		currency := info.CurrencyCode
		account.CurrencyCode = &currency
	}
	if info.TimeZone != "" {
		tz := info.TimeZone
		account.TimeZone = &tz
	}
}

func defaultAccountName(customerID string) string {
	return fmt.Sprintf("Account %s", customerID)
}
