package syncing

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads"
	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/adsclient"
	"github.com/Alphawga/insightFlow/infrastructure/repository"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/pkg/utils"
)

// ConversionReconciler espelha as ações de conversão. A escolha da ação primária
// é local e nunca é sobrescrita pela sincronização.
type ConversionReconciler struct {
	integrator  googleads.Integrator
	accounts    repository.AccountRepository
	conversions repository.ConversionActionRepository
}

func NewConversionReconciler(
	integrator googleads.Integrator,
	accounts repository.AccountRepository,
	conversions repository.ConversionActionRepository,
) *ConversionReconciler {
	return &ConversionReconciler{
		integrator:  integrator,
		accounts:    accounts,
		conversions: conversions,
	}
}

func (r *ConversionReconciler) Reconcile(ctx context.Context, client adsclient.Client, account *domain.Account) (domain.ReconcileResult, error) {
	result := domain.ReconcileResult{}

	actions, failures, err := r.integrator.FetchConversionActions(ctx, client, account.ExternalID)
	if err != nil {
		return result, err
	}
	result.Failed = append(result.Failed, failures...)

	if err := ensureAccountExists(ctx, r.accounts, account.ID); err != nil {
		return result, err
	}

	for _, action := range actions {
		action.ID = utils.NewEntityID()
		action.AccountID = account.ID

		if err := r.conversions.Upsert(ctx, action); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"external_id": action.ExternalID,
				"error":       err.Error(),
			}).Warn("syncing: falha ao gravar ação de conversão")
			result.AddFailure(action.ExternalID, err)
			continue
		}

		result.Updated++
	}

	if result.AllFailed() {
		return result, ErrAllRowsFailed
	}

	return result, nil
}
