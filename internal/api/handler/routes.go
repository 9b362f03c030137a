package handler

import (
	"net/http"

	"github.com/Alphawga/insightFlow/internal/api/handler/router"
	"github.com/Alphawga/insightFlow/internal/usecases/account"
	"github.com/Alphawga/insightFlow/internal/usecases/connecting"
	"github.com/Alphawga/insightFlow/internal/usecases/dashboard"
	"github.com/Alphawga/insightFlow/internal/usecases/syncing"
	"github.com/Alphawga/insightFlow/pkg/middleware"
)

func workspaceScoped() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.WorkspaceAccess("workspace_id")}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func GoogleAds(connector connecting.Connector, appURL string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/google-ads/auth-url",
			Method:      http.MethodGet,
			Handler:     GetAuthURL(connector),
			Middlewares: workspaceScoped(),
		},
		{
			// público: chega do redirecionamento do Google, sem token
			Path:    "/api/auth/google-ads/callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(connector, appURL),
		},
		{
			Path:        "/v1/workspaces/:workspace_id/google-ads/connect",
			Method:      http.MethodPost,
			Handler:     ConnectAccount(connector),
			Middlewares: workspaceScoped(),
		},
	}
}

func Workspaces(accounts account.AccountService, overview dashboard.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/workspaces/:workspace_id/google-ads/account",
			Method:      http.MethodGet,
			Handler:     GetConnectedAccount(accounts),
			Middlewares: workspaceScoped(),
		},
		{
			Path:        "/v1/workspaces/:workspace_id/accounts",
			Method:      http.MethodGet,
			Handler:     ListAccounts(accounts),
			Middlewares: workspaceScoped(),
		},
		{
			Path:        "/v1/workspaces/:workspace_id/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(accounts),
			Middlewares: workspaceScoped(),
		},
		{
			Path:        "/v1/workspaces/:workspace_id/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(overview),
			Middlewares: workspaceScoped(),
		},
	}
}

// Accounts são as rotas por conta; o workspace é conferido dentro do handler
func Accounts(accounts account.AccountService, orchestrator syncing.Orchestrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/sync",
			Method:  http.MethodPost,
			Handler: SyncAccount(accounts, orchestrator),
		},
		{
			Path:    "/v1/accounts/:id/conversion-actions",
			Method:  http.MethodGet,
			Handler: GetConversionActions(accounts),
		},
		{
			Path:    "/v1/accounts/:id/conversion-actions/:conversion_id/primary",
			Method:  http.MethodPut,
			Handler: SetPrimaryConversion(accounts),
		},
		{
			Path:    "/v1/accounts/:id/sync-failures",
			Method:  http.MethodGet,
			Handler: ListSyncFailures(accounts),
		},
	}
}

func CronJobs(sync SyncScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(sync),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(sync),
		},
	}
}
