package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/Alphawga/insightFlow/internal/usecases/dashboard"
	"github.com/Alphawga/insightFlow/pkg/apiErrors"
	"github.com/Alphawga/insightFlow/pkg/log"
	"github.com/Alphawga/insightFlow/pkg/utils"
)

// GetDashboard aceita start_date e end_date (AAAA-MM-DD, inclusivas); sem elas usa os últimos 30 dias
func GetDashboard(service dashboard.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("workspace_id")
		query := r.URL.Query()

		start, err := utils.ParseDate(query.Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato AAAA-MM-DD", nil)
			return
		}
		end, err := utils.ParseDate(query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato AAAA-MM-DD", nil)
			return
		}
		if (start == nil) != (end == nil) {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date e end_date devem ser informadas juntas", nil)
			return
		}

		window, err := dashboard.WindowFromDates(start, end, time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		overview, err := service.ComputeOverview(r.Context(), workspaceID, &window)
		if err != nil {
			if errors.Is(err, dashboard.ErrWorkspaceRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			log.ForContext(r.Context()).WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Error("Erro ao calcular o dashboard")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular métricas do dashboard", nil)
			return
		}

		writeJSON(w, http.StatusOK, overview)
	})
}
