package syncing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Alphawga/insightFlow/infrastructure/repository"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/pkg/utils"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=dispatcher.go -destination=mocks/dispatcher.go -package=mocks

const (
	TriggerConnect  = "connect"
	TriggerManual   = "manual"
	TriggerSchedule = "schedule"
)

// SyncDispatcher entrega sincronizações para execução em segundo plano
type SyncDispatcher interface {
	Dispatch(accountID string, trigger string, phases []domain.SyncPhase) (string, error)
}

type task struct {
	id        string
	accountID string
	trigger   string
	phases    []domain.SyncPhase
}

// Dispatcher é uma fila limitada com um pool fixo de workers. Toda falha de uma
// tarefa é registrada em sync_failures; o status da conta fica com o orquestrador,
// exceto em panic, quando o próprio dispatcher marca a conta com ERROR.
type Dispatcher struct {
	orchestrator Orchestrator
	accounts     repository.AccountRepository
	failures     repository.SyncFailureRepository
	queue        chan task
	taskTimeout  time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(
	orchestrator Orchestrator,
	accounts repository.AccountRepository,
	failures repository.SyncFailureRepository,
	workers, queueSize int,
	taskTimeout time.Duration,
) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}

	d := &Dispatcher{
		orchestrator: orchestrator,
		accounts:     accounts,
		failures:     failures,
		queue:        make(chan task, queueSize),
		taskTimeout:  taskTimeout,
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	logrus.WithFields(logrus.Fields{
		"workers":    workers,
		"queue_size": queueSize,
	}).Info("syncing: fila de sincronização iniciada")

	return d
}

// Dispatch enfileira a sincronização sem bloquear e retorna o ID da tarefa
func (d *Dispatcher) Dispatch(accountID string, trigger string, phases []domain.SyncPhase) (string, error) {
	if len(phases) == 0 {
		phases = domain.AllSyncPhases
	}

	taskID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return "", ErrDispatcherDown
	}

	select {
	case d.queue <- task{id: taskID, accountID: accountID, trigger: trigger, phases: phases}:
	default:
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"trigger":    trigger,
		}).Warn("syncing: fila cheia, sincronização descartada")
		return "", ErrQueueFull
	}

	logrus.WithFields(logrus.Fields{
		"task_id":    taskID,
		"account_id": accountID,
		"trigger":    trigger,
	}).Debug("syncing: sincronização enfileirada")

	return taskID, nil
}

// Close para de aceitar tarefas e espera as que já estão na fila
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	logrus.Info("syncing: fila de sincronização encerrada")
}

func (d *Dispatcher) worker(n int) {
	defer d.wg.Done()

	for t := range d.queue {
		d.run(n, t)
	}
}

func (d *Dispatcher) run(worker int, t task) {
	logger := logrus.WithFields(logrus.Fields{
		"worker":     worker,
		"task_id":    t.id,
		"account_id": t.accountID,
		"trigger":    t.trigger,
	})

	defer func() {
		if r := recover(); r != nil {
			message := fmt.Sprintf("%s: %v", ErrSyncPanic.Error(), r)
			logger.WithField("panic", r).Error("syncing: panic na tarefa de sincronização")
			d.markError(t, message)
			d.recordFailure(t, message)
		}
	}()

	ctx := context.Background()
	if d.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.taskTimeout)
		defer cancel()
	}

	report, err := d.orchestrator.SyncPhases(ctx, t.accountID, t.phases)
	if err != nil {
		if errors.Is(err, ErrSyncInProgress) {
			logger.Info("syncing: tarefa absorvida por sincronização em andamento")
			return
		}

		// sem conta não há onde registrar a falha
		if errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrAccountRemoved) {
			logger.WithField("error", err.Error()).Warn("syncing: conta não existe mais, tarefa descartada")
			return
		}

		logger.WithField("error", err.Error()).Warn("syncing: tarefa de sincronização falhou")
		d.recordFailure(t, err.Error())
		return
	}

	logger.WithField("status", report.Status).Info("syncing: tarefa de sincronização concluída")
}

func (d *Dispatcher) markError(t task, message string) {
	if err := d.accounts.MarkSyncError(context.Background(), t.accountID, message); err != nil {
		logrus.WithFields(logrus.Fields{
			"task_id":    t.id,
			"account_id": t.accountID,
			"error":      err.Error(),
		}).Error("syncing: falha ao marcar erro da conta")
	}
}

func (d *Dispatcher) recordFailure(t task, message string) {
	failure := &domain.SyncFailure{
		ID:         utils.NewEntityID(),
		AccountID:  t.accountID,
		TaskID:     t.id,
		Trigger:    t.trigger,
		Message:    message,
		OccurredAt: time.Now(),
	}

	if err := d.failures.Save(context.Background(), failure); err != nil {
		logrus.WithFields(logrus.Fields{
			"task_id":    t.id,
			"account_id": t.accountID,
			"error":      err.Error(),
		}).Error("syncing: falha ao registrar falha de sincronização")
	}
}
