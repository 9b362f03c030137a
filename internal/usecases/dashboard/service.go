package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Alphawga/insightFlow/infrastructure/repository"
	"github.com/Alphawga/insightFlow/internal/domain"
	"github.com/Alphawga/insightFlow/pkg/utils"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=service.go -destination=mocks/service.go -package=mocks

const DefaultWindowDays = 30

var (
	ErrWorkspaceRequired = errors.New("workspace é obrigatório")
	ErrInvalidWindow     = errors.New("a data de início não pode ser posterior à data de fim")
)

type Dashboard interface {
	ComputeOverview(ctx context.Context, workspaceID string, window *domain.DateWindow) (*domain.Overview, error)
}

type Service struct {
	campaigns repository.CampaignRepository
	metrics   repository.MetricRepository
	now       func() time.Time
}

func NewService(campaigns repository.CampaignRepository, metrics repository.MetricRepository) *Service {
	return &Service{
		campaigns: campaigns,
		metrics:   metrics,
		now:       time.Now,
	}
}

// DefaultWindow são os últimos 30 dias incluindo hoje
func DefaultWindow(now time.Time) domain.DateWindow {
	end := utils.TruncateToDay(now).AddDate(0, 0, 1)
	return domain.DateWindow{
		Start: end.AddDate(0, 0, -DefaultWindowDays),
		End:   end,
	}
}

// WindowFromDates converte datas inclusivas para a janela semiaberta
func WindowFromDates(start, end *time.Time, now time.Time) (domain.DateWindow, error) {
	if start == nil || end == nil {
		return DefaultWindow(now), nil
	}

	window := domain.DateWindow{
		Start: utils.TruncateToDay(*start),
		End:   utils.TruncateToDay(*end).AddDate(0, 0, 1),
	}
	if !window.Start.Before(window.End) {
		return domain.DateWindow{}, ErrInvalidWindow
	}

	return window, nil
}

// ComputeOverview lê a janela atual e a anterior de uma vez e agrega em memória.
// Dados ausentes resultam em métricas zeradas, nunca em erro.
func (s *Service) ComputeOverview(ctx context.Context, workspaceID string, window *domain.DateWindow) (*domain.Overview, error) {
	if workspaceID == "" {
		return nil, ErrWorkspaceRequired
	}

	now := s.now()
	current := DefaultWindow(now)
	if window != nil {
		current = *window
	}

	campaigns, err := s.campaigns.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	span := domain.DateWindow{Start: current.Previous().Start, End: current.End}
	snapshots, err := s.metrics.ListSnapshotsByWorkspace(ctx, workspaceID, span)
	if err != nil {
		return nil, err
	}

	devices, err := s.metrics.ListDeviceSnapshotsByWorkspace(ctx, workspaceID, current)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"campaigns":    len(campaigns),
		"snapshots":    len(snapshots),
		"start":        current.Start.Format(time.DateOnly),
		"end":          current.End.Format(time.DateOnly),
	}).Debug("dashboard: agregando métricas")

	return Aggregate(campaigns, snapshots, devices, current, now), nil
}
