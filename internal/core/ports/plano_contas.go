package ports

import (
	"context"

	"github.com/fleetledger/fleetledger/internal/core/domain"
)

// PlanoContasRepository defines persistence operations for the chart of accounts.
type PlanoContasRepository interface {
	Create(ctx context.Context, c *domain.PlanoConta) (*domain.PlanoConta, error)
	FindByID(ctx context.Context, id string) (*domain.PlanoConta, error)
	FindByCodigo(ctx context.Context, codigo string) (*domain.PlanoConta, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.PlanoConta, error)
	Update(ctx context.Context, id string, upd PlanoContaUpdate) (*domain.PlanoConta, error)
}

// CreatePlanoContaInput carries the data for creating a chart-of-accounts entry.
type CreatePlanoContaInput struct {
	Codigo           string
	Descricao        string
	Tipo             domain.TipoConta
	Natureza         domain.NaturezaConta
	Nivel            int
	ContaPaiID       string
	AceitaLancamento bool
}

// PlanoContaUpdate is a partial update: nil means "leave unchanged".
type PlanoContaUpdate struct {
	Descricao        *string
	AceitaLancamento *bool
	Ativo            *bool
}

// PlanoContasService defines chart-of-accounts use cases.
type PlanoContasService interface {
	Create(ctx context.Context, input CreatePlanoContaInput) (*domain.PlanoConta, error)
	Get(ctx context.Context, id string) (*domain.PlanoConta, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.PlanoConta, error)
	Update(ctx context.Context, id string, upd PlanoContaUpdate) (*domain.PlanoConta, error)
	Deactivate(ctx context.Context, id string) error
}
