package connecting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/domain"
	adsmocks "github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/mocks"
	repomocks "github.com/Alphawga/insightFlow/infrastructure/repository/mocks"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/internal/usecases/syncing"
	syncmocks "github.com/Alphawga/insightFlow/internal/usecases/syncing/mocks"
	"github.com/Alphawga/insightFlow/pkg/apiErrors"
)

type connectFixture struct {
	integrator *adsmocks.MockIntegrator
	client     *adsmocks.MockClient
	accounts   *repomocks.MockAccountRepository
	dispatcher *syncmocks.MockSyncDispatcher
	service    *Service
}

func newConnectFixture(t *testing.T) *connectFixture {
	ctrl := gomock.NewController(t)
	f := &connectFixture{
		integrator: adsmocks.NewMockIntegrator(ctrl),
		client:     adsmocks.NewMockClient(ctrl),
		accounts:   repomocks.NewMockAccountRepository(ctrl),
		dispatcher: syncmocks.NewMockSyncDispatcher(ctrl),
	}
	f.service = NewService(f.integrator, f.accounts, f.dispatcher)
	return f
}

// storeByExternalID simula o create-if-absent pela chave (workspace, plataforma, external_id)
func storeByExternalID(existing map[string]string) func(context.Context, *domain.Account) (*domain.Account, error) {
	return func(_ context.Context, a *domain.Account) (*domain.Account, error) {
		stored := *a
		if id, ok := existing[a.ExternalID]; ok {
			stored.ID = id
		} else {
			existing[a.ExternalID] = a.ID
		}
		return &stored, nil
	}
}

func TestService_GetAuthURL(t *testing.T) {
	f := newConnectFixture(t)
	f.integrator.EXPECT().AuthURL("ws-1").Return("https://accounts.google.com/o/oauth2/auth?state=ws-1")

	url, err := f.service.GetAuthURL("ws-1")
	require.NoError(t, err)
	assert.Contains(t, url, "state=ws-1")

	_, err = f.service.GetAuthURL("")
	assert.ErrorIs(t, err, ErrWorkspaceRequired)
}

func TestService_ConnectAccount(t *testing.T) {
	f := newConnectFixture(t)

	f.integrator.EXPECT().ExchangeCode(gomock.Any(), "code-1").Return(&adsclient.Credentials{AccessToken: "access", RefreshToken: "refresh"}, nil)
	f.integrator.EXPECT().DeriveClient(gomock.Any(), "refresh").Return(f.client, nil)
	f.integrator.EXPECT().ListAccessibleCustomerIDs(gomock.Any(), f.client).Return([]string{"111", "222"}, nil)
	f.integrator.EXPECT().GetCustomer(gomock.Any(), f.client, "111").Return(&domain.CustomerInfo{
		ID: "111", DescriptiveName: "Loja Centro", CurrencyCode: "BRL", TimeZone: "America/Sao_Paulo",
	}, nil)
	f.integrator.EXPECT().GetCustomer(gomock.Any(), f.client, "222").Return(&domain.CustomerInfo{ID: "222"}, nil)

	f.accounts.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(storeByExternalID(map[string]string{})).Times(2)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), syncing.TriggerConnect, nil).Return("task01", nil).Times(2)

	accounts, err := f.service.ConnectAccount(context.Background(), "ws-1", "code-1")

	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "Loja Centro", accounts[0].Name)
	require.NotNil(t, accounts[0].CustomerName)
	assert.Equal(t, "Loja Centro", *accounts[0].CustomerName)
	assert.Equal(t, "BRL", *accounts[0].CurrencyCode)
	assert.Equal(t, "refresh", accounts[0].RefreshToken)
	assert.Equal(t, domain.PlatformGoogleAds, accounts[0].Platform)

	assert.Equal(t, "Account 222", accounts[1].Name)
	assert.Nil(t, accounts[1].CustomerName)
}

func TestService_ConnectAccount_NoDuplicates(t *testing.T) {
	f := newConnectFixture(t)
	store := storeByExternalID(map[string]string{})

	f.integrator.EXPECT().ExchangeCode(gomock.Any(), gomock.Any()).Return(&adsclient.Credentials{AccessToken: "a", RefreshToken: "r"}, nil).Times(2)
	f.integrator.EXPECT().DeriveClient(gomock.Any(), "r").Return(f.client, nil).Times(2)
	f.integrator.EXPECT().ListAccessibleCustomerIDs(gomock.Any(), f.client).Return([]string{"111"}, nil).Times(2)
	f.integrator.EXPECT().GetCustomer(gomock.Any(), f.client, "111").Return(&domain.CustomerInfo{ID: "111"}, nil).Times(2)
	f.accounts.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(store).Times(2)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), syncing.TriggerConnect, nil).Return("task01", nil).Times(2)

	first, err := f.service.ConnectAccount(context.Background(), "ws-1", "code-1")
	require.NoError(t, err)
	second, err := f.service.ConnectAccount(context.Background(), "ws-1", "code-2")
	require.NoError(t, err)

	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestService_ConnectAccount_Failures(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		setup    func(f *connectFixture)
		wantErr  error
		wantCode string
	}{
		{
			name:     "Deve exigir o código",
			code:     "",
			setup:    func(f *connectFixture) {},
			wantErr:  ErrCodeRequired,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Deve falhar quando a troca do código é rejeitada",
			code: "code-1",
			setup: func(f *connectFixture) {
				f.integrator.EXPECT().ExchangeCode(gomock.Any(), "code-1").Return(nil, adsdomain.ErrAuthExchange)
			},
			wantErr:  adsdomain.ErrAuthExchange,
			wantCode: apiErrors.ErrPlatformCredential,
		},
		{
			name: "Deve falhar sem contas acessíveis e sem gravar nada",
			code: "code-1",
			setup: func(f *connectFixture) {
				f.integrator.EXPECT().ExchangeCode(gomock.Any(), "code-1").Return(&adsclient.Credentials{AccessToken: "a", RefreshToken: "r"}, nil)
				f.integrator.EXPECT().DeriveClient(gomock.Any(), "r").Return(f.client, nil)
				f.integrator.EXPECT().ListAccessibleCustomerIDs(gomock.Any(), f.client).Return(nil, adsdomain.ErrNoAccessibleAccounts)
			},
			wantErr:  adsdomain.ErrNoAccessibleAccounts,
			wantCode: apiErrors.ErrPlatformCredential,
		},
		{
			name: "Deve falhar quando o banco recusa a conta",
			code: "code-1",
			setup: func(f *connectFixture) {
				f.integrator.EXPECT().ExchangeCode(gomock.Any(), "code-1").Return(&adsclient.Credentials{AccessToken: "a", RefreshToken: "r"}, nil)
				f.integrator.EXPECT().DeriveClient(gomock.Any(), "r").Return(f.client, nil)
				f.integrator.EXPECT().ListAccessibleCustomerIDs(gomock.Any(), f.client).Return([]string{"111"}, nil)
				f.integrator.EXPECT().GetCustomer(gomock.Any(), f.client, "111").Return(nil, errors.New("erro remoto"))
				f.accounts.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(nil, errors.New("erro no banco de dados"))
			},
			wantErr:  ErrPersistAccount,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newConnectFixture(t)
			tt.setup(f)

			accounts, err := f.service.ConnectAccount(context.Background(), "ws-1", tt.code)

			assert.Nil(t, accounts)
			assert.ErrorIs(t, err, tt.wantErr)

			var connectErr *ConnectError
			require.ErrorAs(t, err, &connectErr)
			assert.Equal(t, tt.wantCode, connectErr.Code)
		})
	}
}

func TestService_ConnectAccount_QueueFullMarksAccountError(t *testing.T) {
	f := newConnectFixture(t)

	f.integrator.EXPECT().ExchangeCode(gomock.Any(), "code-1").Return(&adsclient.Credentials{AccessToken: "a", RefreshToken: "r"}, nil)
	f.integrator.EXPECT().DeriveClient(gomock.Any(), "r").Return(f.client, nil)
	f.integrator.EXPECT().ListAccessibleCustomerIDs(gomock.Any(), f.client).Return([]string{"111"}, nil)
	f.integrator.EXPECT().GetCustomer(gomock.Any(), f.client, "111").Return(nil, errors.New("conta gerenciadora"))
	f.accounts.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(storeByExternalID(map[string]string{}))
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), syncing.TriggerConnect, nil).Return("", syncing.ErrQueueFull)

	var recorded string
	f.accounts.EXPECT().MarkSyncError(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, msg string) error {
		recorded = msg
		return nil
	})

	accounts, err := f.service.ConnectAccount(context.Background(), "ws-1", "code-1")

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Account 111", accounts[0].Name)
	assert.Equal(t, domain.SyncStatusError, accounts[0].SyncStatus)
	assert.Contains(t, recorded, ErrInitialSyncNotQueued.Error())
	assert.Contains(t, recorded, syncing.ErrQueueFull.Error())
	require.NotNil(t, accounts[0].SyncError)
	assert.Equal(t, recorded, *accounts[0].SyncError)
}

func TestService_ConnectAccount_QueueFullKeepsRunningSync(t *testing.T) {
	f := newConnectFixture(t)

	f.integrator.EXPECT().ExchangeCode(gomock.Any(), "code-1").Return(&adsclient.Credentials{AccessToken: "a", RefreshToken: "r"}, nil)
	f.integrator.EXPECT().DeriveClient(gomock.Any(), "r").Return(f.client, nil)
	f.integrator.EXPECT().ListAccessibleCustomerIDs(gomock.Any(), f.client).Return([]string{"111"}, nil)
	f.integrator.EXPECT().GetCustomer(gomock.Any(), f.client, "111").Return(nil, errors.New("conta gerenciadora"))
	f.accounts.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Account) (*domain.Account, error) {
		stored := *a
		stored.SyncStatus = domain.SyncStatusSyncing
		return &stored, nil
	})
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), syncing.TriggerConnect, nil).Return("", syncing.ErrQueueFull)

	accounts, err := f.service.ConnectAccount(context.Background(), "ws-1", "code-1")

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, domain.SyncStatusSyncing, accounts[0].SyncStatus)
}

func TestService_ConnectAccount_DispatchesBeforeLaterFailure(t *testing.T) {
	f := newConnectFixture(t)

	f.integrator.EXPECT().ExchangeCode(gomock.Any(), "code-1").Return(&adsclient.Credentials{AccessToken: "a", RefreshToken: "r"}, nil)
	f.integrator.EXPECT().DeriveClient(gomock.Any(), "r").Return(f.client, nil)
	f.integrator.EXPECT().ListAccessibleCustomerIDs(gomock.Any(), f.client).Return([]string{"111", "222"}, nil)
	f.integrator.EXPECT().GetCustomer(gomock.Any(), f.client, gomock.Any()).Return(nil, errors.New("conta gerenciadora")).Times(2)

	gomock.InOrder(
		f.accounts.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(storeByExternalID(map[string]string{})),
		f.dispatcher.EXPECT().Dispatch(gomock.Any(), syncing.TriggerConnect, nil).Return("task01", nil),
		f.accounts.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(nil, errors.New("erro no banco de dados")),
	)

	accounts, err := f.service.ConnectAccount(context.Background(), "ws-1", "code-1")

	assert.Nil(t, accounts)
	assert.ErrorIs(t, err, ErrPersistAccount)
}
