package repository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=conversion_action.go -destination=mocks/conversion_action.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Alphawga/insightFlow/infrastructure/database/postgres"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Masterminds/squirrel"
)

type ConversionActionRepository interface {
	Upsert(ctx context.Context, action *domain.ConversionAction) error
	ListEnabledByAccount(ctx context.Context, accountID string) ([]*domain.ConversionAction, error)
	SetPrimary(ctx context.Context, accountID, conversionActionID string) error
}

type conversionActionRepository struct {
	conn *postgres.Connection
}

func NewConversionActionRepository(conn *postgres.Connection) ConversionActionRepository {
	return &conversionActionRepository{
		conn: conn,
	}
}

// Upsert sincroniza nome, categoria, status e tipo. is_primary nunca é alterado aqui.
func (r *conversionActionRepository) Upsert(ctx context.Context, action *domain.ConversionAction) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("conversion_actions").
		Columns("id", "ad_account_id", "external_id", "name", "category", "status", "type").
		Values(
			action.ID,
			action.AccountID,
			action.ExternalID,
			action.Name,
			action.Category,
			action.Status,
			action.Type,
		).
		Suffix(`
			ON CONFLICT (ad_account_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				category = EXCLUDED.category,
				status = EXCLUDED.status,
				type = EXCLUDED.type,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *conversionActionRepository) ListEnabledByAccount(ctx context.Context, accountID string) ([]*domain.ConversionAction, error) {
	query, args, err := squirrel.
		Select("ca.id, ca.ad_account_id, ca.external_id, ca.name, ca.category, ca.status, ca.type, ca.is_primary, ca.created_at, ca.updated_at").
		From("conversion_actions ca").
		Where(squirrel.Eq{"ca.ad_account_id": accountID, "ca.status": domain.ConversionActionStatusEnabled}).
		OrderBy("ca.name ASC").
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

	actions := make([]*domain.ConversionAction, 0)
	for rows.Next() {
		a := &domain.ConversionAction{}
		if err := rows.Scan(
			&a.ID,
			&a.AccountID,
			&a.ExternalID,
			&a.Name,
			&a.Category,
			&a.Status,
			&a.Type,
			&a.IsPrimary,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear ação de conversão: %w", err)
		}
		actions = append(actions, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return actions, nil
}

// SetPrimary limpa is_primary de todas as ações da conta e marca a escolhida,
// tudo na mesma transação. Retorna ErrNotFound se a ação não pertence à conta.
func (r *conversionActionRepository) SetPrimary(ctx context.Context, accountID, conversionActionID string) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// trava a conta para serializar trocas concorrentes de ações diferentes
		accountSQL, accountArgs, err := squirrel.
			Select("id").
			From("ad_accounts").
			Where(squirrel.Eq{"id": accountID}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		var lockedAccount string
		if err := tx.QueryRowContext(ctx, accountSQL, accountArgs...).Scan(&lockedAccount); err != nil {
			if err == sql.ErrNoRows {
				return ErrNotFound
			}
			return wrapExecError(err)
		}

		lockSQL, lockArgs, err := squirrel.
			Select("id").
			From("conversion_actions").
			Where(squirrel.Eq{"id": conversionActionID, "ad_account_id": accountID}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		var id string
		if err := tx.QueryRowContext(ctx, lockSQL, lockArgs...).Scan(&id); err != nil {
			if err == sql.ErrNoRows {
				return ErrNotFound
			}
			return wrapExecError(err)
		}

		resetSQL, resetArgs, err := squirrel.
			Update("conversion_actions").
			Set("is_primary", false).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"ad_account_id": accountID, "is_primary": true}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, resetSQL, resetArgs...); err != nil {
			return wrapExecError(err)
		}

		setSQL, setArgs, err := squirrel.
			Update("conversion_actions").
			Set("is_primary", true).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, setSQL, setArgs...); err != nil {
			return wrapExecError(err)
		}

		return nil
	})
}
