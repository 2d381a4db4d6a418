package ports

import (
	"context"

	"github.com/fleetledger/fleetledger/internal/core/domain"
)

// EquipamentoRepository defines persistence operations for equipamentos.
type EquipamentoRepository interface {
	Create(ctx context.Context, e *domain.Equipamento) (*domain.Equipamento, error)
	FindByID(ctx context.Context, id string) (*domain.Equipamento, error)
	FindByIdentificador(ctx context.Context, identificador string) (*domain.Equipamento, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Equipamento, error)
	Update(ctx context.Context, id string, upd EquipamentoUpdate) (*domain.Equipamento, error)
}

// CreateEquipamentoInput carries the data for registering a machine.
type CreateEquipamentoInput struct {
	Tipo             domain.TipoEquipamento
	Placa            string
	Identificador    string
	Modelo           string
	Marca            string
	AnoFabricacao    int
	NumeroSerie      string
	ValorAquisicao   float64
	HodometroInicial float64
	Observacoes      string
}

// EquipamentoUpdate is a partial update: nil means "leave unchanged".
type EquipamentoUpdate struct {
	Placa          *string
	Modelo         *string
	Marca          *string
	AnoFabricacao  *int
	NumeroSerie    *string
	ValorAquisicao *float64
	HodometroAtual *float64
	Observacoes    *string
	Ativo          *bool
}

// EquipamentoService defines equipamento use cases.
type EquipamentoService interface {
	Create(ctx context.Context, input CreateEquipamentoInput) (*domain.Equipamento, error)
	Get(ctx context.Context, id string) (*domain.Equipamento, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Equipamento, error)
	Update(ctx context.Context, id string, upd EquipamentoUpdate) (*domain.Equipamento, error)
	Deactivate(ctx context.Context, id string) error
}
