package connecting

import (
	"errors"
	"fmt"
)

var (
	ErrWorkspaceRequired = errors.New("workspace é obrigatório")
	ErrCodeRequired      = errors.New("código de autorização é obrigatório")
	ErrPersistAccount    = errors.New("erro ao salvar conta")
	// ErrInitialSyncNotQueued fica gravado em sync_error quando a fila recusa a primeira sincronização
	ErrInitialSyncNotQueued = errors.New("sincronização inicial não enfileirada")
)

// ConnectError é um erro do fluxo de conexão com o código da API
type ConnectError struct {
	Err         error  // Erro base
	Code        string // Código de erro para API
	WorkspaceID string
	Details     string
}

func (e *ConnectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func NewConnectError(err error, code string, workspaceID string, details string) *ConnectError {
	return &ConnectError{
		Err:         err,
		Code:        code,
		WorkspaceID: workspaceID,
		Details:     details,
	}
}
