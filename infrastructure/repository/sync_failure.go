package repository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=sync_failure.go -destination=mocks/sync_failure.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Alphawga/insightFlow/infrastructure/database/postgres"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Masterminds/squirrel"
)

type SyncFailureRepository interface {
	Save(ctx context.Context, failure *domain.SyncFailure) error
	ListByAccount(ctx context.Context, accountID string, limit uint64) ([]*domain.SyncFailure, error)
}

type syncFailureRepository struct {
	conn *postgres.Connection
}

func NewSyncFailureRepository(conn *postgres.Connection) SyncFailureRepository {
	return &syncFailureRepository{
		conn: conn,
	}
}

func (r *syncFailureRepository) Save(ctx context.Context, f *domain.SyncFailure) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("sync_failures").
		Columns("id", "ad_account_id", "task_id", "trigger", "message", "occurred_at").
		Values(f.ID, f.AccountID, f.TaskID, f.Trigger, f.Message, f.OccurredAt).
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

func (r *syncFailureRepository) ListByAccount(ctx context.Context, accountID string, limit uint64) ([]*domain.SyncFailure, error) {
	query, args, err := squirrel.
		Select("f.id, f.ad_account_id, f.task_id, f.trigger, f.message, f.occurred_at").
		From("sync_failures f").
		Where(squirrel.Eq{"f.ad_account_id": accountID}).
		OrderBy("f.occurred_at DESC").
		Limit(limit).
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

	failures := make([]*domain.SyncFailure, 0)
	for rows.Next() {
		f := &domain.SyncFailure{}
		if err := rows.Scan(&f.ID, &f.AccountID, &f.TaskID, &f.Trigger, &f.Message, &f.OccurredAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear falha de sincronização: %w", err)
		}
		failures = append(failures, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return failures, nil
}
