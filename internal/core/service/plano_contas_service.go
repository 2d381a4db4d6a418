package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetledger/fleetledger/internal/api/metrics"
	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// PlanoContasService implements chart-of-accounts use cases.
type PlanoContasService struct {
	repo   ports.PlanoContasRepository
	logger zerolog.Logger
}

func NewPlanoContasService(repo ports.PlanoContasRepository, logger zerolog.Logger) *PlanoContasService {
	return &PlanoContasService{repo: repo, logger: logger}
}

func (s *PlanoContasService) Create(ctx context.Context, input ports.CreatePlanoContaInput) (*domain.PlanoConta, error) {
	if input.Codigo == "" || input.Descricao == "" || !input.Tipo.Valid() || !input.Natureza.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByCodigo(ctx, input.Codigo); err == nil {
		return nil, domain.ErrCodigoTaken
	} else if !errors.Is(err, domain.ErrPlanoContaNotFound) {
		return nil, err
	}

	nivel := input.Nivel
	if nivel <= 0 {
		// derive from the code: "3.1.02" → level 3
		nivel = strings.Count(input.Codigo, ".") + 1
	}

	if input.ContaPaiID != "" {
		if _, err := s.repo.FindByID(ctx, input.ContaPaiID); err != nil {
			return nil, err
		}
	}

	conta := &domain.PlanoConta{
		Codigo:           input.Codigo,
		Descricao:        input.Descricao,
		Tipo:             input.Tipo,
		Natureza:         input.Natureza,
		Nivel:            nivel,
		ContaPaiID:       input.ContaPaiID,
		AceitaLancamento: input.AceitaLancamento,
		Ativo:            true,
		CreatedAt:        time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, conta)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("plano_contas", "create").Inc()
	s.logger.Info().Str("codigo", created.Codigo).Msg("conta created")
	return created, nil
}

func (s *PlanoContasService) Get(ctx context.Context, id string) (*domain.PlanoConta, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PlanoContasService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.PlanoConta, error) {
	return s.repo.List(ctx, clampFilter(filter))
}

func (s *PlanoContasService) Update(ctx context.Context, id string, upd ports.PlanoContaUpdate) (*domain.PlanoConta, error) {
	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	metrics.EntityWritesTotal.WithLabelValues("plano_contas", "update").Inc()
	return updated, nil
}

func (s *PlanoContasService) Deactivate(ctx context.Context, id string) error {
	inativo := false
	if _, err := s.repo.Update(ctx, id, ports.PlanoContaUpdate{Ativo: &inativo}); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("plano_contas", "deactivate").Inc()
	return nil
}
