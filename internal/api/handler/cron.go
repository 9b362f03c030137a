package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Alphawga/insightFlow/internal/scheduler"
	"github.com/Alphawga/insightFlow/pkg/apiErrors"
	"github.com/Alphawga/insightFlow/pkg/log"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=cron.go -destination=mocks/cron.go -package=mocks

// SyncScheduler é a parte do agendador exposta para operação manual
type SyncScheduler interface {
	TriggerManualSync(job string) error
	GetStatus() map[string]any
}

// RunCronJob dispara um job do agendador: campaigns, metrics, conversion_actions ou all
func RunCronJob(sync SyncScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		job := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if job == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if err := sync.TriggerManualSync(job); err != nil {
			if errors.Is(err, scheduler.ErrUnknownJob) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de cron job inválido. Valores aceitos: campaigns, metrics, conversion_actions, all", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
			return
		}

		log.ForContext(r.Context()).WithField("job", job).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    job,
		})
	})
}

func GetCronStatus(sync SyncScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sync.GetStatus())
	})
}
