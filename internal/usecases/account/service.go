package account

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Alphawga/insightFlow/infrastructure/repository"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/pkg/apiErrors"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=service.go -destination=mocks/service.go -package=mocks

const DefaultFailuresLimit = 20

type AccountService interface {
	GetConnectedAccount(ctx context.Context, workspaceID string) (*domain.AccountResponse, error)
	ListAccounts(ctx context.Context, workspaceID string) ([]*domain.AccountResponse, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetConversionActions(ctx context.Context, accountID string) ([]*domain.ConversionAction, error)
	SetPrimaryConversion(ctx context.Context, accountID, conversionActionID string) error
	ListCampaigns(ctx context.Context, workspaceID string) ([]*domain.CampaignSummary, error)
	ListSyncFailures(ctx context.Context, accountID string, limit uint64) ([]*domain.SyncFailure, error)
}

type Service struct {
	accounts    repository.AccountRepository
	campaigns   repository.CampaignRepository
	conversions repository.ConversionActionRepository
	failures    repository.SyncFailureRepository
}

func NewService(
	accounts repository.AccountRepository,
	campaigns repository.CampaignRepository,
	conversions repository.ConversionActionRepository,
	failures repository.SyncFailureRepository,
) *Service {
	return &Service{
		accounts:    accounts,
		campaigns:   campaigns,
		conversions: conversions,
		failures:    failures,
	}
}

// GetConnectedAccount retorna a conta Google Ads conectada mais recentemente no workspace
func (s *Service) GetConnectedAccount(ctx context.Context, workspaceID string) (*domain.AccountResponse, error) {
	if workspaceID == "" {
		return nil, NewAccountError(ErrWorkspaceRequired, apiErrors.ErrMissingRequiredData, "")
	}

	acc, err := s.accounts.GetLatestByWorkspace(ctx, workspaceID, domain.PlatformGoogleAds)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"error":        err.Error(),
		}).Error("account: erro ao buscar conta conectada")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if acc == nil {
		return nil, NewAccountError(ErrAccountNotFound, apiErrors.ErrResourceNotFound, "Nenhuma conta conectada")
	}

	return domain.NewAccountResponse(acc), nil
}

func (s *Service) ListAccounts(ctx context.Context, workspaceID string) ([]*domain.AccountResponse, error) {
	if workspaceID == "" {
		return nil, NewAccountError(ErrWorkspaceRequired, apiErrors.ErrMissingRequiredData, "")
	}

	accounts, err := s.accounts.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	response := make([]*domain.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		response = append(response, domain.NewAccountResponse(acc))
	}

	return response, nil
}

// GetAccount é usado pelos handlers para checar o workspace dono da conta
func (s *Service) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	acc, err := s.accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar conta no banco de dados")
	}

	if acc == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, accountID, "")
	}

	return acc, nil
}

// GetConversionActions lista apenas as ações habilitadas, ordenadas por nome
func (s *Service) GetConversionActions(ctx context.Context, accountID string) ([]*domain.ConversionAction, error) {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}

	actions, err := s.conversions.ListEnabledByAccount(ctx, accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao listar ações de conversão")
	}

	return actions, nil
}

// SetPrimaryConversion garante que exatamente uma ação da conta fique como primária
func (s *Service) SetPrimaryConversion(ctx context.Context, accountID, conversionActionID string) error {
	if accountID == "" {
		return NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if conversionActionID == "" {
		return NewAccountErrorWithID(ErrConversionIDMissing, apiErrors.ErrMissingRequiredData, accountID, "")
	}

	err := s.conversions.SetPrimary(ctx, accountID, conversionActionID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewAccountErrorWithID(ErrConversionActionNotFound, apiErrors.ErrResourceNotFound, accountID, conversionActionID)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":           accountID,
			"conversion_action_id": conversionActionID,
			"error":                err.Error(),
		}).Error("account: falha ao definir conversão primária")
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao definir conversão primária")
	}

	logrus.WithFields(logrus.Fields{
		"account_id":           accountID,
		"conversion_action_id": conversionActionID,
	}).Info("account: conversão primária atualizada")

	return nil
}

// ListCampaigns traz as campanhas do workspace com os números do dia mais recente
func (s *Service) ListCampaigns(ctx context.Context, workspaceID string) ([]*domain.CampaignSummary, error) {
	if workspaceID == "" {
		return nil, NewAccountError(ErrWorkspaceRequired, apiErrors.ErrMissingRequiredData, "")
	}

	summaries, err := s.campaigns.ListSummariesByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas")
	}

	return summaries, nil
}

func (s *Service) ListSyncFailures(ctx context.Context, accountID string, limit uint64) ([]*domain.SyncFailure, error) {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = DefaultFailuresLimit
	}

	failures, err := s.failures.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao listar falhas de sincronização")
	}

	return failures, nil
}
