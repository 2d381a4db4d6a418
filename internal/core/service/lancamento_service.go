package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetledger/fleetledger/internal/api/metrics"
	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// LancamentoService implements ledger posting use cases. Postings may only
// target leaf accounts that accept entries.
type LancamentoService struct {
	repo   ports.LancamentoRepository
	contas ports.PlanoContasRepository
	logger zerolog.Logger
}

func NewLancamentoService(repo ports.LancamentoRepository, contas ports.PlanoContasRepository, logger zerolog.Logger) *LancamentoService {
	return &LancamentoService{repo: repo, contas: contas, logger: logger}
}

func (s *LancamentoService) Create(ctx context.Context, input ports.CreateLancamentoInput) (*domain.Lancamento, error) {
	if input.Descricao == "" || input.Valor <= 0 || !input.Tipo.Valid() || input.Data.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	conta, err := s.contas.FindByID(ctx, input.ContaID)
	if err != nil {
		return nil, err
	}
	if !conta.AceitaLancamento || !conta.Ativo {
		return nil, domain.ErrInvalidInput
	}

	lancamento := &domain.Lancamento{
		Data:        input.Data,
		Descricao:   input.Descricao,
		Valor:       input.Valor,
		Tipo:        input.Tipo,
		ContaID:     input.ContaID,
		Observacoes: input.Observacoes,
		UsuarioID:   input.UsuarioID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, lancamento)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("lancamentos", "create").Inc()
	s.logger.Info().Str("lancamento_id", created.ID).Str("conta_id", created.ContaID).Msg("lancamento created")
	return created, nil
}

func (s *LancamentoService) Get(ctx context.Context, id string) (*domain.Lancamento, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LancamentoService) List(ctx context.Context, filter ports.ListLancamentosFilter) ([]*domain.Lancamento, error) {
	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *LancamentoService) Update(ctx context.Context, id string, upd ports.LancamentoUpdate) (*domain.Lancamento, error) {
	if upd.Valor != nil && *upd.Valor <= 0 {
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	metrics.EntityWritesTotal.WithLabelValues("lancamentos", "update").Inc()
	return updated, nil
}

func (s *LancamentoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("lancamentos", "delete").Inc()
	s.logger.Info().Str("lancamento_id", id).Msg("lancamento deleted")
	return nil
}
