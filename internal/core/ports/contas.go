package ports

import (
	"context"
	"time"

	"github.com/fleetledger/fleetledger/internal/core/domain"
)

// ListContasFilter carries the payable/receivable list query parameters.
type ListContasFilter struct {
	Status    string
	Categoria string
	DateFrom  time.Time // data_vencimento >= DateFrom
	DateTo    time.Time // data_vencimento <= DateTo
	Vencidas  *bool     // true = past due and unsettled only; false = the rest
	ClienteID string    // receivables only
	Skip      int
	Limit     int
}

// ContaPagarRepository defines persistence operations for payables.
type ContaPagarRepository interface {
	// CreateMany inserts a batch atomically ordered; used for instalment series.
	CreateMany(ctx context.Context, contas []*domain.ContaPagar) ([]*domain.ContaPagar, error)
	FindByID(ctx context.Context, id string) (*domain.ContaPagar, error)
	List(ctx context.Context, filter ListContasFilter) ([]*domain.ContaPagar, error)
	Update(ctx context.Context, id string, upd ContaPagarUpdate) (*domain.ContaPagar, error)
}

// ContaReceberRepository defines persistence operations for receivables.
type ContaReceberRepository interface {
	CreateMany(ctx context.Context, contas []*domain.ContaReceber) ([]*domain.ContaReceber, error)
	FindByID(ctx context.Context, id string) (*domain.ContaReceber, error)
	List(ctx context.Context, filter ListContasFilter) ([]*domain.ContaReceber, error)
	Update(ctx context.Context, id string, upd ContaReceberUpdate) (*domain.ContaReceber, error)
}

// CreateContaPagarInput carries the data for one payable. When ParcelaTotal is
// greater than 1 the service expands it into an instalment series with monthly
// due dates and Valor split per instalment.
type CreateContaPagarInput struct {
	Descricao      string
	Valor          float64
	DataVencimento time.Time
	Categoria      string
	FornecedorNome string
	ParcelaTotal   int
	Recorrente     bool
	Observacoes    string
	UsuarioID      string
}

// ContaPagarUpdate is a partial update: nil means "leave unchanged".
type ContaPagarUpdate struct {
	Descricao      *string
	Valor          *float64
	DataVencimento *time.Time
	DataPagamento  *time.Time
	Status         *domain.StatusContaPagar
	Categoria      *string
	FornecedorNome *string
	Observacoes    *string
}

// ContaPagarService defines payable use cases.
type ContaPagarService interface {
	Create(ctx context.Context, input CreateContaPagarInput) ([]*domain.ContaPagar, error)
	Get(ctx context.Context, id string) (*domain.ContaPagar, error)
	List(ctx context.Context, filter ListContasFilter) ([]*domain.ContaPagar, error)
	Update(ctx context.Context, id string, upd ContaPagarUpdate) (*domain.ContaPagar, error)
	// MarkPago settles the payable on the given date.
	MarkPago(ctx context.Context, id string, data time.Time) (*domain.ContaPagar, error)
	// Cancel sets status CANCELADO; bills are never hard-deleted.
	Cancel(ctx context.Context, id string) error
}

// CreateContaReceberInput carries the data for one receivable.
type CreateContaReceberInput struct {
	Descricao       string
	Valor           float64
	DataVencimento  time.Time
	Categoria       string
	ClienteID       string
	ClienteNome     string
	NumeroDocumento string
	ParcelaTotal    int
	Observacoes     string
	UsuarioID       string
}

// ContaReceberUpdate is a partial update: nil means "leave unchanged".
type ContaReceberUpdate struct {
	Descricao       *string
	Valor           *float64
	DataVencimento  *time.Time
	DataRecebimento *time.Time
	Status          *domain.StatusContaReceber
	Categoria       *string
	ClienteNome     *string
	NumeroDocumento *string
	Observacoes     *string
}

// ContaReceberService defines receivable use cases.
type ContaReceberService interface {
	Create(ctx context.Context, input CreateContaReceberInput) ([]*domain.ContaReceber, error)
	Get(ctx context.Context, id string) (*domain.ContaReceber, error)
	List(ctx context.Context, filter ListContasFilter) ([]*domain.ContaReceber, error)
	Update(ctx context.Context, id string, upd ContaReceberUpdate) (*domain.ContaReceber, error)
	MarkRecebido(ctx context.Context, id string, data time.Time) (*domain.ContaReceber, error)
	Cancel(ctx context.Context, id string) error
}
