package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/pkg/secret"
)

var accountRowColumns = []string{
	"id", "workspace_id", "platform", "external_id", "name", "customer_name", "currency_code", "time_zone",
	"refresh_token", "sync_status", "sync_started_at", "last_synced_at", "sync_error", "created_at", "updated_at",
}

func newSealer(t *testing.T) secret.Sealer {
	t.Helper()
	sealer, err := secret.NewSealer("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	require.NoError(t, err)
	return sealer
}

func TestAccountRepository_CreateIfAbsent(t *testing.T) {
	conn, mock := newMockConnection(t)
	sealer := newSealer(t)
	repo := NewAccountRepository(conn, sealer)

	now := time.Now()
	var storedToken string

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ad_accounts")).
		WithArgs("acc-1", "ws-1", domain.PlatformGoogleAds, "123", "Loja", nil, nil, nil, sqlmock.AnyArg(), domain.SyncStatusIdle).
		WillReturnRows(sqlmock.NewRows(accountRowColumns).AddRow(
			"acc-1", "ws-1", "GOOGLE_ADS", "123", "Loja", nil, nil, nil,
			mustSeal(t, sealer, "refresh", &storedToken), "IDLE", nil, nil, nil, now, now,
		))

	acc, err := repo.CreateIfAbsent(context.Background(), &domain.Account{
		ID:           "acc-1",
		WorkspaceID:  "ws-1",
		Platform:     domain.PlatformGoogleAds,
		ExternalID:   "123",
		Name:         "Loja",
		RefreshToken: "refresh",
	})

	require.NoError(t, err)
	assert.Equal(t, "refresh", acc.RefreshToken)
	assert.NotEqual(t, "refresh", storedToken)
	assert.Equal(t, domain.SyncStatusIdle, acc.SyncStatus)
	assert.True(t, acc.HasCredential())
}

func mustSeal(t *testing.T, sealer secret.Sealer, value string, out *string) string {
	t.Helper()
	sealed, err := sealer.Seal(value)
	require.NoError(t, err)
	*out = sealed
	return sealed
}

func TestAccountRepository_CreateIfAbsent_DatabaseError(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAccountRepository(conn, newSealer(t))

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ad_accounts")).
		WillReturnError(&pq.Error{Code: "23503", Message: "violação de chave"})

	_, err := repo.CreateIfAbsent(context.Background(), &domain.Account{ID: "acc-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "código: 23503")
}

func TestAccountRepository_GetAccountByID(t *testing.T) {
	t.Run("Deve retornar nil quando a conta não existe", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAccountRepository(conn, newSealer(t))

		mock.ExpectQuery(regexp.QuoteMeta("FROM ad_accounts a WHERE a.id = $1")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(accountRowColumns))

		acc, err := repo.GetAccountByID(context.Background(), "missing")

		assert.NoError(t, err)
		assert.Nil(t, acc)
	})

	t.Run("Deve aceitar credencial legada em texto puro", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAccountRepository(conn, newSealer(t))

		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("FROM ad_accounts a WHERE a.id = $1")).
			WithArgs("acc-1").
			WillReturnRows(sqlmock.NewRows(accountRowColumns).AddRow(
				"acc-1", "ws-1", "GOOGLE_ADS", "123", "Loja", "Loja Centro", "BRL", "America/Sao_Paulo",
				"plain-refresh", "SUCCESS", now, now, nil, now, now,
			))

		acc, err := repo.GetAccountByID(context.Background(), "acc-1")

		require.NoError(t, err)
		assert.Equal(t, "plain-refresh", acc.RefreshToken)
		assert.Equal(t, "Loja Centro", *acc.CustomerName)
		assert.Equal(t, domain.SyncStatusSuccess, acc.SyncStatus)
	})
}

func TestAccountRepository_TryStartSync(t *testing.T) {
	staleBefore := time.Now().Add(-30 * time.Minute)

	tests := []struct {
		name         string
		rowsAffected int64
		want         bool
	}{
		{name: "Deve adquirir a sincronização", rowsAffected: 1, want: true},
		{name: "Deve recusar quando outra sincronização está em andamento", rowsAffected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			repo := NewAccountRepository(conn, newSealer(t))

			mock.ExpectExec(regexp.QuoteMeta("UPDATE ad_accounts SET sync_status = $1")).
				WithArgs(domain.SyncStatusSyncing, "acc-1", domain.SyncStatusSyncing, staleBefore).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			got, err := repo.TryStartSync(context.Background(), "acc-1", staleBefore)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountRepository_MarkSync(t *testing.T) {
	t.Run("Deve gravar sucesso", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAccountRepository(conn, newSealer(t))
		syncedAt := time.Now()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE ad_accounts SET sync_status = $1, last_synced_at = $2, sync_error = $3")).
			WithArgs(domain.SyncStatusSuccess, syncedAt, nil, "acc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkSyncSuccess(context.Background(), "acc-1", syncedAt))
	})

	t.Run("Deve retornar ErrNotFound quando a conta foi removida", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAccountRepository(conn, newSealer(t))

		mock.ExpectExec(regexp.QuoteMeta("UPDATE ad_accounts SET sync_status = $1, sync_error = $2")).
			WithArgs(domain.SyncStatusError, "falhou", "acc-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkSyncError(context.Background(), "acc-1", "falhou")

		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestAccountRepository_ListSyncable(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAccountRepository(conn, newSealer(t))
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.refresh_token <> $1 ORDER BY a.created_at ASC")).
		WithArgs("").
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow("acc-1", "ws-1", "GOOGLE_ADS", "123", "A", nil, nil, nil, "r1", "IDLE", nil, nil, nil, now, now).
			AddRow("acc-2", "ws-2", "GOOGLE_ADS", "456", "B", nil, nil, nil, "r2", "ERROR", nil, nil, "timeout", now, now))

	accounts, err := repo.ListSyncable(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "r2", accounts[1].RefreshToken)
	assert.Equal(t, "timeout", *accounts[1].SyncError)
}
