package ports

import (
	"context"

	"github.com/fleetledger/fleetledger/internal/core/domain"
)

// ListFilter carries the common list query parameters shared by the simple
// registry entities (clientes, equipamentos, motoristas, plano de contas).
type ListFilter struct {
	Ativo *bool // nil = no filter
	Skip  int
	Limit int // capped by the service
}

// ClienteRepository defines persistence operations for clientes.
type ClienteRepository interface {
	Create(ctx context.Context, c *domain.Cliente) (*domain.Cliente, error)
	FindByID(ctx context.Context, id string) (*domain.Cliente, error)
	FindByCPFCNPJ(ctx context.Context, cpfCNPJ string) (*domain.Cliente, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Cliente, error)
	Update(ctx context.Context, id string, upd ClienteUpdate) (*domain.Cliente, error)
}

// CreateClienteInput carries the data for registering a cliente.
type CreateClienteInput struct {
	Nome       string
	TipoPessoa string
	CPFCNPJ    string
	Telefone   string
	Email      string
	Endereco   string
	Cidade     string
	Estado     string
	CEP        string
}

// ClienteUpdate is a partial update: nil means "leave unchanged".
type ClienteUpdate struct {
	Nome     *string
	Telefone *string
	Email    *string
	Endereco *string
	Cidade   *string
	Estado   *string
	CEP      *string
	Ativo    *bool
}

// ClienteService defines cliente use cases.
type ClienteService interface {
	Create(ctx context.Context, input CreateClienteInput) (*domain.Cliente, error)
	Get(ctx context.Context, id string) (*domain.Cliente, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Cliente, error)
	Update(ctx context.Context, id string, upd ClienteUpdate) (*domain.Cliente, error)
	// Deactivate soft-deletes the cliente (ativo=false).
	Deactivate(ctx context.Context, id string) error
}
