package syncing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	adsdomain "github.com/Alphawga/insightFlow/infrastructure/integrator/googleads/domain"
	"github.com/Alphawga/insightFlow/infrastructure/repository"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/pkg/apiErrors"
)

var (
	// ErrMissingCredential é terminal: a conta precisa ser reconectada
	ErrMissingCredential = errors.New("conta sem credencial de acesso")
	ErrAccountNotFound   = errors.New("conta não encontrada")
	// ErrSyncInProgress indica que o gatilho foi absorvido por uma sincronização em andamento
	ErrSyncInProgress = errors.New("sincronização já em andamento para a conta")
	// ErrAccountRemoved indica que a conta sumiu durante a sincronização
	ErrAccountRemoved = errors.New("conta removida durante a sincronização")
	ErrAllRowsFailed  = errors.New("todas as linhas da fase falharam")
	ErrSyncPanic      = errors.New("panic na sincronização")
	ErrQueueFull      = errors.New("fila de sincronização cheia")
	ErrDispatcherDown = errors.New("fila de sincronização encerrada")
)

// SyncError carrega a conta, a fase e o código de API de uma falha de sincronização
type SyncError struct {
	Err       error
	Code      string
	AccountID string
	Phase     domain.SyncPhase
	Details   string
}

func (e *SyncError) Error() string {
	msg := e.Err.Error()
	if e.Phase != "" {
		msg = fmt.Sprintf("%s: %s", e.Phase, msg)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, accountID string, phase domain.SyncPhase) *SyncError {
	return &SyncError{
		Err:       err,
		Code:      ErrorCode(err),
		AccountID: accountID,
		Phase:     phase,
	}
}

// ErrorCode traduz a taxonomia de erros para os códigos da API
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrAccountRemoved), errors.Is(err, repository.ErrNotFound):
		return apiErrors.ErrResourceNotFound
	case errors.Is(err, ErrSyncInProgress):
		return apiErrors.ErrSyncInProgress
	case errors.Is(err, ErrMissingCredential), errors.Is(err, adsdomain.ErrCredentialExpired), errors.Is(err, adsdomain.ErrAuthExchange):
		return apiErrors.ErrPlatformCredential
	case errors.Is(err, adsdomain.ErrRemoteTimeout), errors.Is(err, context.DeadlineExceeded):
		return apiErrors.ErrExternalTimeout
	case errors.Is(err, adsdomain.ErrRemoteAPI), errors.Is(err, adsdomain.ErrRateLimited), errors.Is(err, ErrAllRowsFailed):
		return apiErrors.ErrExternalService
	default:
		return apiErrors.ErrInternalServer
	}
}

// classifyPhaseError converte o estouro do prazo da fase em timeout remoto
func classifyPhaseError(ctx context.Context, err error) error {
	if errors.Is(err, adsdomain.ErrRemoteTimeout) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", adsdomain.ErrRemoteTimeout, err)
	}
	return err
}

// syncErrorMessage é o texto gravado em sync_error
func syncErrorMessage(err error) string {
	msg := err.Error()
	if errors.Is(err, adsdomain.ErrRemoteTimeout) && !strings.HasPrefix(msg, "timeout:") {
		return "timeout: " + msg
	}
	return msg
}
