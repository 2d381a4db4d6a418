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

const maxListLimit = 100

// clampFilter applies the shared skip/limit bounds.
func clampFilter(f ports.ListFilter) ports.ListFilter {
	if f.Limit <= 0 || f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	return f
}

// ClienteService implements customer registry use cases.
type ClienteService struct {
	repo   ports.ClienteRepository
	logger zerolog.Logger
}

func NewClienteService(repo ports.ClienteRepository, logger zerolog.Logger) *ClienteService {
	return &ClienteService{repo: repo, logger: logger}
}

func (s *ClienteService) Create(ctx context.Context, input ports.CreateClienteInput) (*domain.Cliente, error) {
	if input.Nome == "" || input.CPFCNPJ == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.TipoPessoa != domain.PessoaFisica && input.TipoPessoa != domain.PessoaJuridica {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByCPFCNPJ(ctx, input.CPFCNPJ); err == nil {
		return nil, domain.ErrCPFCNPJTaken
	} else if !errors.Is(err, domain.ErrClienteNotFound) {
		return nil, err
	}

	cliente := &domain.Cliente{
		Nome:       input.Nome,
		TipoPessoa: input.TipoPessoa,
		CPFCNPJ:    input.CPFCNPJ,
		Telefone:   input.Telefone,
		Email:      input.Email,
		Endereco:   input.Endereco,
		Cidade:     input.Cidade,
		Estado:     strings.ToUpper(input.Estado),
		CEP:        input.CEP,
		Ativo:      true,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, cliente)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("clientes", "create").Inc()
	s.logger.Info().Str("cliente_id", created.ID).Msg("cliente created")
	return created, nil
}

func (s *ClienteService) Get(ctx context.Context, id string) (*domain.Cliente, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClienteService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Cliente, error) {
	return s.repo.List(ctx, clampFilter(filter))
}

func (s *ClienteService) Update(ctx context.Context, id string, upd ports.ClienteUpdate) (*domain.Cliente, error) {
	if upd.Estado != nil {
		uf := strings.ToUpper(*upd.Estado)
		upd.Estado = &uf
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("clientes", "update").Inc()
	return updated, nil
}

func (s *ClienteService) Deactivate(ctx context.Context, id string) error {
	inativo := false
	if _, err := s.repo.Update(ctx, id, ports.ClienteUpdate{Ativo: &inativo}); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("clientes", "deactivate").Inc()
	return nil
}
