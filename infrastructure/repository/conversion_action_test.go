package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alphawga/insightFlow/internal/domain"
)

func TestConversionActionRepository_SetPrimary(t *testing.T) {
	t.Run("Deve limpar a ação primária anterior e marcar a nova na mesma transação", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewConversionActionRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM ad_accounts WHERE id = $1 FOR UPDATE")).
			WithArgs("acc-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("acc-1"))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM conversion_actions WHERE ad_account_id = $1 AND id = $2 FOR UPDATE")).
			WithArgs("acc-1", "ca-2").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ca-2"))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE conversion_actions SET is_primary = $1, updated_at = NOW() WHERE ad_account_id = $2 AND is_primary = $3")).
			WithArgs(false, "acc-1", true).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE conversion_actions SET is_primary = $1, updated_at = NOW() WHERE id = $2")).
			WithArgs(true, "ca-2").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.SetPrimary(context.Background(), "acc-1", "ca-2"))
	})

	t.Run("Deve retornar ErrNotFound e desfazer a transação quando a ação não pertence à conta", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewConversionActionRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM ad_accounts WHERE id = $1 FOR UPDATE")).
			WithArgs("acc-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("acc-1"))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM conversion_actions WHERE ad_account_id = $1 AND id = $2 FOR UPDATE")).
			WithArgs("acc-1", "outra").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := repo.SetPrimary(context.Background(), "acc-1", "outra")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Deve travar a conta antes de mexer nas ações", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewConversionActionRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM ad_accounts WHERE id = $1 FOR UPDATE")).
			WithArgs("sumiu").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := repo.SetPrimary(context.Background(), "sumiu", "ca-2")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConversionActionRepository_ListEnabledByAccount(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewConversionActionRepository(conn)
	now := time.Now()

	columns := []string{"id", "ad_account_id", "external_id", "name", "category", "status", "type", "is_primary", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE ca.ad_account_id = $1 AND ca.status = $2 ORDER BY ca.name ASC")).
		WithArgs("acc-1", domain.ConversionActionStatusEnabled).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("ca-1", "acc-1", "9", "Compra", "PURCHASE", "ENABLED", "WEBPAGE", true, now, now).
			AddRow("ca-2", "acc-1", "10", "Lead", "LEAD", "ENABLED", "WEBPAGE", false, now, now))

	actions, err := repo.ListEnabledByAccount(context.Background(), "acc-1")

	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.True(t, actions[0].IsPrimary)
	assert.Equal(t, "Lead", actions[1].Name)
}

func TestConversionActionRepository_Upsert(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewConversionActionRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (ad_account_id, external_id) DO UPDATE SET")).
		WithArgs("ca-1", "acc-1", "9", "Compra", "PURCHASE", "ENABLED", "WEBPAGE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &domain.ConversionAction{
		ID: "ca-1", AccountID: "acc-1", ExternalID: "9", Name: "Compra", Category: "PURCHASE", Status: "ENABLED", Type: "WEBPAGE",
	})

	assert.NoError(t, err)
}
