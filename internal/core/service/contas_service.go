package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fleetledger/fleetledger/internal/api/metrics"
	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// splitValor divides a total into n instalment values in cents. The remainder
// goes to the first instalment so the series always sums to the total.
func splitValor(total float64, n int) []float64 {
	cents := int64(math.Round(total * 100))
	base := cents / int64(n)
	rest := cents % int64(n)

	values := make([]float64, n)
	for i := range values {
		v := base
		if i == 0 {
			v += rest
		}
		values[i] = float64(v) / 100
	}
	return values
}

// ContaPagarService implements payable use cases.
type ContaPagarService struct {
	repo   ports.ContaPagarRepository
	logger zerolog.Logger
}

func NewContaPagarService(repo ports.ContaPagarRepository, logger zerolog.Logger) *ContaPagarService {
	return &ContaPagarService{repo: repo, logger: logger}
}

// Create registers a payable. ParcelaTotal > 1 expands into an instalment
// series sharing a generated group id, with due dates one month apart.
func (s *ContaPagarService) Create(ctx context.Context, input ports.CreateContaPagarInput) ([]*domain.ContaPagar, error) {
	if input.Descricao == "" || input.Valor <= 0 || input.DataVencimento.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	n := input.ParcelaTotal
	if n <= 1 {
		n = 1
	}

	now := time.Now().UTC()
	contas := make([]*domain.ContaPagar, n)

	values := []float64{input.Valor}
	grupo := ""
	if n > 1 {
		grupo = uuid.NewString()
		values = splitValor(input.Valor, n)
	}

	for i := 0; i < n; i++ {
		conta := &domain.ContaPagar{
			Descricao:      input.Descricao,
			Valor:          values[i],
			DataVencimento: input.DataVencimento.AddDate(0, i, 0),
			Status:         domain.PagarAVencer,
			Categoria:      input.Categoria,
			FornecedorNome: input.FornecedorNome,
			Recorrente:     input.Recorrente,
			Observacoes:    input.Observacoes,
			UsuarioID:      input.UsuarioID,
			CreatedAt:      now,
		}
		if n > 1 {
			conta.ParcelaNumero = i + 1
			conta.ParcelaTotal = n
			conta.GrupoParcelamento = grupo
		}
		contas[i] = conta
	}

	created, err := s.repo.CreateMany(ctx, contas)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("contas_pagar", "create").Inc()
	s.logger.Info().Int("parcelas", n).Str("descricao", input.Descricao).Msg("conta a pagar created")
	return created, nil
}

func (s *ContaPagarService) Get(ctx context.Context, id string) (*domain.ContaPagar, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContaPagarService) List(ctx context.Context, filter ports.ListContasFilter) ([]*domain.ContaPagar, error) {
	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *ContaPagarService) Update(ctx context.Context, id string, upd ports.ContaPagarUpdate) (*domain.ContaPagar, error) {
	if upd.Valor != nil && *upd.Valor <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	metrics.EntityWritesTotal.WithLabelValues("contas_pagar", "update").Inc()
	return updated, nil
}

// MarkPago settles the payable on the given date.
func (s *ContaPagarService) MarkPago(ctx context.Context, id string, data time.Time) (*domain.ContaPagar, error) {
	if data.IsZero() {
		data = time.Now().UTC()
	}
	pago := domain.PagarPago
	updated, err := s.repo.Update(ctx, id, ports.ContaPagarUpdate{Status: &pago, DataPagamento: &data})
	if err != nil {
		return nil, err
	}
	metrics.EntityWritesTotal.WithLabelValues("contas_pagar", "update").Inc()
	return updated, nil
}

// Cancel sets status CANCELADO; bills are never hard-deleted.
func (s *ContaPagarService) Cancel(ctx context.Context, id string) error {
	cancelado := domain.PagarCancelado
	if _, err := s.repo.Update(ctx, id, ports.ContaPagarUpdate{Status: &cancelado}); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("contas_pagar", "deactivate").Inc()
	return nil
}

// ContaReceberService implements receivable use cases.
type ContaReceberService struct {
	repo   ports.ContaReceberRepository
	logger zerolog.Logger
}

func NewContaReceberService(repo ports.ContaReceberRepository, logger zerolog.Logger) *ContaReceberService {
	return &ContaReceberService{repo: repo, logger: logger}
}

func (s *ContaReceberService) Create(ctx context.Context, input ports.CreateContaReceberInput) ([]*domain.ContaReceber, error) {
	if input.Descricao == "" || input.Valor <= 0 || input.DataVencimento.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	n := input.ParcelaTotal
	if n <= 1 {
		n = 1
	}

	now := time.Now().UTC()
	contas := make([]*domain.ContaReceber, n)

	values := []float64{input.Valor}
	grupo := ""
	if n > 1 {
		grupo = uuid.NewString()
		values = splitValor(input.Valor, n)
	}

	for i := 0; i < n; i++ {
		conta := &domain.ContaReceber{
			Descricao:       input.Descricao,
			Valor:           values[i],
			DataVencimento:  input.DataVencimento.AddDate(0, i, 0),
			Status:          domain.ReceberAReceber,
			Categoria:       input.Categoria,
			ClienteID:       input.ClienteID,
			ClienteNome:     input.ClienteNome,
			NumeroDocumento: input.NumeroDocumento,
			Observacoes:     input.Observacoes,
			UsuarioID:       input.UsuarioID,
			CreatedAt:       now,
		}
		if n > 1 {
			conta.ParcelaNumero = i + 1
			conta.ParcelaTotal = n
			conta.GrupoParcelamento = grupo
		}
		contas[i] = conta
	}

	created, err := s.repo.CreateMany(ctx, contas)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("contas_receber", "create").Inc()
	s.logger.Info().Int("parcelas", n).Str("descricao", input.Descricao).Msg("conta a receber created")
	return created, nil
}

func (s *ContaReceberService) Get(ctx context.Context, id string) (*domain.ContaReceber, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContaReceberService) List(ctx context.Context, filter ports.ListContasFilter) ([]*domain.ContaReceber, error) {
	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *ContaReceberService) Update(ctx context.Context, id string, upd ports.ContaReceberUpdate) (*domain.ContaReceber, error) {
	if upd.Valor != nil && *upd.Valor <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	metrics.EntityWritesTotal.WithLabelValues("contas_receber", "update").Inc()
	return updated, nil
}

// MarkRecebido settles the receivable on the given date.
func (s *ContaReceberService) MarkRecebido(ctx context.Context, id string, data time.Time) (*domain.ContaReceber, error) {
	if data.IsZero() {
		data = time.Now().UTC()
	}
	recebido := domain.ReceberRecebido
	updated, err := s.repo.Update(ctx, id, ports.ContaReceberUpdate{Status: &recebido, DataRecebimento: &data})
	if err != nil {
		return nil, err
	}
	metrics.EntityWritesTotal.WithLabelValues("contas_receber", "update").Inc()
	return updated, nil
}

func (s *ContaReceberService) Cancel(ctx context.Context, id string) error {
	cancelado := domain.ReceberCancelado
	if _, err := s.repo.Update(ctx, id, ports.ContaReceberUpdate{Status: &cancelado}); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("contas_receber", "deactivate").Inc()
	return nil
}
