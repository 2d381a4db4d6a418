package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetledger/fleetledger/internal/api/metrics"
	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// EquipamentoService implements fleet machine registry use cases.
type EquipamentoService struct {
	repo   ports.EquipamentoRepository
	logger zerolog.Logger
}

func NewEquipamentoService(repo ports.EquipamentoRepository, logger zerolog.Logger) *EquipamentoService {
	return &EquipamentoService{repo: repo, logger: logger}
}

func (s *EquipamentoService) Create(ctx context.Context, input ports.CreateEquipamentoInput) (*domain.Equipamento, error) {
	if input.Identificador == "" || input.Modelo == "" || input.Marca == "" || !input.Tipo.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByIdentificador(ctx, input.Identificador); err == nil {
		return nil, domain.ErrIdentificadorTaken
	} else if !errors.Is(err, domain.ErrEquipamentoNotFound) {
		return nil, err
	}

	equipamento := &domain.Equipamento{
		Tipo:             input.Tipo,
		Placa:            input.Placa,
		Identificador:    input.Identificador,
		Modelo:           input.Modelo,
		Marca:            input.Marca,
		AnoFabricacao:    input.AnoFabricacao,
		NumeroSerie:      input.NumeroSerie,
		ValorAquisicao:   input.ValorAquisicao,
		HodometroInicial: input.HodometroInicial,
		HodometroAtual:   input.HodometroInicial,
		Observacoes:      input.Observacoes,
		Ativo:            true,
		CreatedAt:        time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, equipamento)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("equipamentos", "create").Inc()
	s.logger.Info().Str("equipamento_id", created.ID).Str("identificador", created.Identificador).Msg("equipamento created")
	return created, nil
}

func (s *EquipamentoService) Get(ctx context.Context, id string) (*domain.Equipamento, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EquipamentoService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Equipamento, error) {
	return s.repo.List(ctx, clampFilter(filter))
}

// Update applies a partial update. The odometer may only move forward.
func (s *EquipamentoService) Update(ctx context.Context, id string, upd ports.EquipamentoUpdate) (*domain.Equipamento, error) {
	if upd.HodometroAtual != nil {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if *upd.HodometroAtual < current.HodometroAtual {
			return nil, domain.ErrInvalidInput
		}
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("equipamentos", "update").Inc()
	return updated, nil
}

func (s *EquipamentoService) Deactivate(ctx context.Context, id string) error {
	inativo := false
	if _, err := s.repo.Update(ctx, id, ports.EquipamentoUpdate{Ativo: &inativo}); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("equipamentos", "deactivate").Inc()
	return nil
}
