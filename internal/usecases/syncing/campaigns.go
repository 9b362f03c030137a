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

// CampaignReconciler espelha as campanhas não removidas da plataforma
type CampaignReconciler struct {
	integrator googleads.Integrator
	accounts   repository.AccountRepository
	campaigns  repository.CampaignRepository
}

func NewCampaignReconciler(
	integrator googleads.Integrator,
	accounts repository.AccountRepository,
	campaigns repository.CampaignRepository,
) *CampaignReconciler {
	return &CampaignReconciler{
		integrator: integrator,
		accounts:   accounts,
		campaigns:  campaigns,
	}
}

func (r *CampaignReconciler) Reconcile(ctx context.Context, client adsclient.Client, account *domain.Account) (domain.ReconcileResult, error) {
	result := domain.ReconcileResult{}

	campaigns, failures, err := r.integrator.FetchCampaigns(ctx, client, account.ExternalID)
	if err != nil {
		return result, err
	}
	result.Failed = append(result.Failed, failures...)

	if err := ensureAccountExists(ctx, r.accounts, account.ID); err != nil {
		return result, err
	}

	for _, campaign := range campaigns {
		campaign.ID = utils.NewEntityID()
		campaign.AccountID = account.ID

		id, err := r.campaigns.Upsert(ctx, campaign)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"external_id": campaign.ExternalID,
				"error":       err.Error(),
			}).Warn("syncing: falha ao gravar campanha")
			result.AddFailure(campaign.ExternalID, err)
			continue
		}

		campaign.ID = id
		result.Updated++
	}

	if result.AllFailed() {
		return result, ErrAllRowsFailed
	}

	return result, nil
}

// ensureAccountExists é a verificação antes de gravar de cada fase
func ensureAccountExists(ctx context.Context, accounts repository.AccountRepository, accountID string) error {
	exists, err := accounts.Exists(ctx, accountID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAccountRemoved
	}
	return nil
}
