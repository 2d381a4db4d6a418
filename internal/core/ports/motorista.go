package ports

import (
	"context"
	"time"

	"github.com/fleetledger/fleetledger/internal/core/domain"
)

// MotoristaRepository defines persistence operations for motoristas.
type MotoristaRepository interface {
	Create(ctx context.Context, m *domain.Motorista) (*domain.Motorista, error)
	FindByID(ctx context.Context, id string) (*domain.Motorista, error)
	FindByCPF(ctx context.Context, cpf string) (*domain.Motorista, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Motorista, error)
	Update(ctx context.Context, id string, upd MotoristaUpdate) (*domain.Motorista, error)
}

// CreateMotoristaInput carries the data for registering a driver.
type CreateMotoristaInput struct {
	Nome           string
	CPF            string
	CNH            string
	CategoriaCNH   string
	ValidadeCNH    time.Time
	Telefone       string
	Endereco       string
	DataNascimento *time.Time
	DataAdmissao   *time.Time
}

// MotoristaUpdate is a partial update: nil means "leave unchanged".
type MotoristaUpdate struct {
	Nome         *string
	CNH          *string
	CategoriaCNH *string
	ValidadeCNH  *time.Time
	Telefone     *string
	Endereco     *string
	DataAdmissao *time.Time
	Ativo        *bool
}

// MotoristaService defines motorista use cases.
type MotoristaService interface {
	Create(ctx context.Context, input CreateMotoristaInput) (*domain.Motorista, error)
	Get(ctx context.Context, id string) (*domain.Motorista, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Motorista, error)
	Update(ctx context.Context, id string, upd MotoristaUpdate) (*domain.Motorista, error)
	Deactivate(ctx context.Context, id string) error
}
