package repository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=campaign.go -destination=mocks/campaign.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Alphawga/insightFlow/infrastructure/database/postgres"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Masterminds/squirrel"
)

const (
	campaignsTable   = "campaigns c"
	campaignsColumns = "c.id, c.ad_account_id, c.external_id, c.name, c.status, c.budget, c.budget_type, c.start_date, c.end_date, c.created_at, c.updated_at"
)

type CampaignRepository interface {
	Upsert(ctx context.Context, campaign *domain.Campaign) (string, error)
	MapExternalIDs(ctx context.Context, accountID string) (map[string]string, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Campaign, error)
	ListSummariesByWorkspace(ctx context.Context, workspaceID string) ([]*domain.CampaignSummary, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// Upsert grava a campanha pela chave (ad_account_id, external_id) e retorna o
// ID local, que é preservado quando a campanha já existe.
func (r *campaignRepository) Upsert(ctx context.Context, campaign *domain.Campaign) (string, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "ad_account_id", "external_id", "name", "status", "budget", "budget_type", "start_date", "end_date").
		Values(
			campaign.ID,
			campaign.AccountID,
			campaign.ExternalID,
			campaign.Name,
			campaign.Status,
			campaign.Budget,
			campaign.BudgetType,
			formatDatePtr(campaign.StartDate),
			formatDatePtr(campaign.EndDate),
		).
		Suffix(`
			ON CONFLICT (ad_account_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				budget = EXCLUDED.budget,
				budget_type = EXCLUDED.budget_type,
				start_date = EXCLUDED.start_date,
				end_date = EXCLUDED.end_date,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id string
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return "", wrapExecError(err)
	}

	return id, nil
}

// MapExternalIDs retorna external_id -> id local das campanhas da conta
func (r *campaignRepository) MapExternalIDs(ctx context.Context, accountID string) (map[string]string, error) {
	query, args, err := squirrel.
		Select("c.external_id, c.id").
		From(campaignsTable).
		Where(squirrel.Eq{"c.ad_account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]string)
	for rows.Next() {
		var externalID, id string
		if err := rows.Scan(&externalID, &id); err != nil {
			return nil, fmt.Errorf("erro ao ler campanha: %w", err)
		}
		ids[externalID] = id
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração dos resultados: %w", err)
	}

	return ids, nil
}

func (r *campaignRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		Join("ad_accounts a ON a.id = c.ad_account_id").
		Where(squirrel.Eq{"a.workspace_id": workspaceID}).
		OrderBy("c.name ASC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// ListSummariesByWorkspace traz cada campanha com o snapshot diário mais recente
func (r *campaignRepository) ListSummariesByWorkspace(ctx context.Context, workspaceID string) ([]*domain.CampaignSummary, error) {
	query, args, err := squirrel.
		Select(
			"c.id, c.name, c.status, COALESCE(c.budget, 0)",
			"COALESCE(m.cost, 0), COALESCE(m.impressions, 0), COALESCE(m.clicks, 0), COALESCE(m.conversions, 0)",
		).
		From(campaignsTable).
		Join("ad_accounts a ON a.id = c.ad_account_id").
		JoinClause(`LEFT JOIN LATERAL (
			SELECT am.cost, am.impressions, am.clicks, am.conversions
			FROM ad_metrics am
			WHERE am.campaign_id = c.id
			ORDER BY am.date DESC
			LIMIT 1
		) m ON TRUE`).
		Where(squirrel.Eq{"a.workspace_id": workspaceID}).
		OrderBy("c.name ASC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.CampaignSummary, 0)
	for rows.Next() {
		s := &domain.CampaignSummary{}
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Status,
			&s.Budget,
			&s.Spent,
			&s.Impressions,
			&s.Clicks,
			&s.Conversions,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de campanha: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	c := &domain.Campaign{}

	if err := row.Scan(
		&c.ID,
		&c.AccountID,
		&c.ExternalID,
		&c.Name,
		&c.Status,
		&c.Budget,
		&c.BudgetType,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return c, nil
}
