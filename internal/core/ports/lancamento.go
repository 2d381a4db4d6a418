package ports

import (
	"context"
	"time"

	"github.com/fleetledger/fleetledger/internal/core/domain"
)

// ListLancamentosFilter carries the ledger list query parameters.
type ListLancamentosFilter struct {
	ContaID  string
	Tipo     string
	DateFrom time.Time
	DateTo   time.Time
	Skip     int
	Limit    int
}

// LancamentoRepository defines persistence operations for ledger postings.
type LancamentoRepository interface {
	Create(ctx context.Context, l *domain.Lancamento) (*domain.Lancamento, error)
	FindByID(ctx context.Context, id string) (*domain.Lancamento, error)
	List(ctx context.Context, filter ListLancamentosFilter) ([]*domain.Lancamento, error)
	Update(ctx context.Context, id string, upd LancamentoUpdate) (*domain.Lancamento, error)
	Delete(ctx context.Context, id string) error
}

// CreateLancamentoInput carries the data for a ledger posting.
type CreateLancamentoInput struct {
	Data        time.Time
	Descricao   string
	Valor       float64
	Tipo        domain.TipoPartida
	ContaID     string
	Observacoes string
	UsuarioID   string
}

// LancamentoUpdate is a partial update: nil means "leave unchanged".
type LancamentoUpdate struct {
	Data        *time.Time
	Descricao   *string
	Valor       *float64
	Observacoes *string
}

// LancamentoService defines ledger use cases. Postings are hard-deleted:
// unlike registry entities they have no ativo flag, a wrong posting is
// removed or corrected, never hidden.
type LancamentoService interface {
	Create(ctx context.Context, input CreateLancamentoInput) (*domain.Lancamento, error)
	Get(ctx context.Context, id string) (*domain.Lancamento, error)
	List(ctx context.Context, filter ListLancamentosFilter) ([]*domain.Lancamento, error)
	Update(ctx context.Context, id string, upd LancamentoUpdate) (*domain.Lancamento, error)
	Delete(ctx context.Context, id string) error
}
