package repository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=account.go -destination=mocks/account.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Alphawga/insightFlow/infrastructure/database/postgres"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/pkg/secret"
	"github.com/Masterminds/squirrel"
)

const (
	accountsTable   = "ad_accounts a"
	accountsColumns = "a.id, a.workspace_id, a.platform, a.external_id, a.name, a.customer_name, a.currency_code, a.time_zone, " +
		"a.refresh_token, a.sync_status, a.sync_started_at, a.last_synced_at, a.sync_error, a.created_at, a.updated_at"
)

type AccountRepository interface {
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetLatestByWorkspace(ctx context.Context, workspaceID string, platform domain.Platform) (*domain.Account, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Account, error)
	ListSyncable(ctx context.Context) ([]*domain.Account, error)
	Exists(ctx context.Context, accountID string) (bool, error)
	CreateIfAbsent(ctx context.Context, account *domain.Account) (*domain.Account, error)
	TryStartSync(ctx context.Context, accountID string, staleBefore time.Time) (bool, error)
	MarkSyncSuccess(ctx context.Context, accountID string, syncedAt time.Time) error
	MarkSyncError(ctx context.Context, accountID string, message string) error
}

type accountRepository struct {
	conn   *postgres.Connection
	sealer secret.Sealer
}

func NewAccountRepository(conn *postgres.Connection, sealer secret.Sealer) AccountRepository {
	return &accountRepository{
		conn:   conn,
		sealer: sealer,
	}
}

func (r *accountRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.getAccount(ctx, squirrel.Select(accountsColumns).
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}))
}

// GetLatestByWorkspace retorna a conta conectada mais recentemente
func (r *accountRepository) GetLatestByWorkspace(ctx context.Context, workspaceID string, platform domain.Platform) (*domain.Account, error) {
	return r.getAccount(ctx, squirrel.Select(accountsColumns).
		From(accountsTable).
		Where(squirrel.Eq{"a.workspace_id": workspaceID, "a.platform": platform}).
		OrderBy("a.created_at DESC").
		Limit(1))
}

func (r *accountRepository) getAccount(ctx context.Context, builder squirrel.SelectBuilder) (*domain.Account, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	acc, err := r.scanAccount(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return acc, nil
}

func (r *accountRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Account, error) {
	return r.listAccounts(ctx, squirrel.Select(accountsColumns).
		From(accountsTable).
		Where(squirrel.Eq{"a.workspace_id": workspaceID}).
		OrderBy("a.created_at DESC"))
}

// ListSyncable lista as contas que possuem credencial para sincronizar
func (r *accountRepository) ListSyncable(ctx context.Context) ([]*domain.Account, error) {
	return r.listAccounts(ctx, squirrel.Select(accountsColumns).
		From(accountsTable).
		Where(squirrel.NotEq{"a.refresh_token": ""}).
		OrderBy("a.created_at ASC"))
}

func (r *accountRepository) listAccounts(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Account, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		acc, err := r.scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) Exists(ctx context.Context, accountID string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao verificar conta: %w", err)
	}

	return true, nil
}

// CreateIfAbsent insere a conta ou, se (workspace, platform, external_id) já
// existir, atualiza os dados descritivos e a credencial mantendo o ID original.
func (r *accountRepository) CreateIfAbsent(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	sealed, err := r.sealer.Seal(account.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("erro ao selar credencial: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ad_accounts").
		Columns("id", "workspace_id", "platform", "external_id", "name", "customer_name", "currency_code", "time_zone", "refresh_token", "sync_status").
		Values(
			account.ID,
			account.WorkspaceID,
			account.Platform,
			account.ExternalID,
			account.Name,
			account.CustomerName,
			account.CurrencyCode,
			account.TimeZone,
			sealed,
			domain.SyncStatusIdle,
		).
		Suffix(`
			ON CONFLICT (workspace_id, platform, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				customer_name = EXCLUDED.customer_name,
				currency_code = EXCLUDED.currency_code,
				time_zone = EXCLUDED.time_zone,
				refresh_token = EXCLUDED.refresh_token,
				updated_at = NOW()
			RETURNING id, workspace_id, platform, external_id, name, customer_name, currency_code, time_zone,
				refresh_token, sync_status, sync_started_at, last_synced_at, sync_error, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	stored, err := r.scanAccount(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapExecError(err)
	}

	return stored, nil
}

// TryStartSync faz o compare-and-swap para SYNCING. Retorna false quando outra
// sincronização da mesma conta está em andamento e ainda não ficou obsoleta.
func (r *accountRepository) TryStartSync(ctx context.Context, accountID string, staleBefore time.Time) (bool, error) {
	query, args, err := squirrel.
		Update("ad_accounts").
		Set("sync_status", domain.SyncStatusSyncing).
		Set("sync_started_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		Where(squirrel.Or{
			squirrel.NotEq{"sync_status": domain.SyncStatusSyncing},
			squirrel.Eq{"sync_started_at": nil},
			squirrel.Lt{"sync_started_at": staleBefore},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected == 1, nil
}

func (r *accountRepository) MarkSyncSuccess(ctx context.Context, accountID string, syncedAt time.Time) error {
	return r.updateSyncStatus(ctx, squirrel.
		Update("ad_accounts").
		Set("sync_status", domain.SyncStatusSuccess).
		Set("last_synced_at", syncedAt).
		Set("sync_error", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}))
}

func (r *accountRepository) MarkSyncError(ctx context.Context, accountID string, message string) error {
	return r.updateSyncStatus(ctx, squirrel.
		Update("ad_accounts").
		Set("sync_status", domain.SyncStatusError).
		Set("sync_error", message).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}))
}

func (r *accountRepository) updateSyncStatus(ctx context.Context, builder squirrel.UpdateBuilder) error {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *accountRepository) scanAccount(row rowScanner) (*domain.Account, error) {
	acc := &domain.Account{}
	var sealed string

	if err := row.Scan(
		&acc.ID,
		&acc.WorkspaceID,
		&acc.Platform,
		&acc.ExternalID,
		&acc.Name,
		&acc.CustomerName,
		&acc.CurrencyCode,
		&acc.TimeZone,
		&sealed,
		&acc.SyncStatus,
		&acc.SyncStartedAt,
		&acc.LastSyncedAt,
		&acc.SyncError,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	refreshToken, err := r.sealer.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir credencial da conta %s: %w", acc.ID, err)
	}
	acc.RefreshToken = refreshToken

	return acc, nil
}
