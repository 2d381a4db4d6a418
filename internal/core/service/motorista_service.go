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

// MotoristaService implements driver registry use cases.
type MotoristaService struct {
	repo   ports.MotoristaRepository
	logger zerolog.Logger
}

func NewMotoristaService(repo ports.MotoristaRepository, logger zerolog.Logger) *MotoristaService {
	return &MotoristaService{repo: repo, logger: logger}
}

func (s *MotoristaService) Create(ctx context.Context, input ports.CreateMotoristaInput) (*domain.Motorista, error) {
	if input.Nome == "" || input.CPF == "" || input.CNH == "" || input.CategoriaCNH == "" || input.ValidadeCNH.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByCPF(ctx, input.CPF); err == nil {
		return nil, domain.ErrCPFTaken
	} else if !errors.Is(err, domain.ErrMotoristaNotFound) {
		return nil, err
	}

	motorista := &domain.Motorista{
		Nome:           input.Nome,
		CPF:            input.CPF,
		CNH:            input.CNH,
		CategoriaCNH:   input.CategoriaCNH,
		ValidadeCNH:    input.ValidadeCNH,
		Telefone:       input.Telefone,
		Endereco:       input.Endereco,
		DataNascimento: input.DataNascimento,
		DataAdmissao:   input.DataAdmissao,
		Ativo:          true,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, motorista)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("motoristas", "create").Inc()
	s.logger.Info().Str("motorista_id", created.ID).Msg("motorista created")
	return created, nil
}

func (s *MotoristaService) Get(ctx context.Context, id string) (*domain.Motorista, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MotoristaService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Motorista, error) {
	return s.repo.List(ctx, clampFilter(filter))
}

func (s *MotoristaService) Update(ctx context.Context, id string, upd ports.MotoristaUpdate) (*domain.Motorista, error) {
	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	metrics.EntityWritesTotal.WithLabelValues("motoristas", "update").Inc()
	return updated, nil
}

func (s *MotoristaService) Deactivate(ctx context.Context, id string) error {
	inativo := false
	if _, err := s.repo.Update(ctx, id, ports.MotoristaUpdate{Ativo: &inativo}); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("motoristas", "deactivate").Inc()
	return nil
}
