package domain

import "time"

// StatusContaPagar is the lifecycle state of a payable.
type StatusContaPagar string

const (
	PagarAVencer   StatusContaPagar = "A_VENCER"
	PagarVencido   StatusContaPagar = "VENCIDO"
	PagarPago      StatusContaPagar = "PAGO"
	PagarCancelado StatusContaPagar = "CANCELADO"
)

// Valid reports whether s is a known payable status.
func (s StatusContaPagar) Valid() bool {
	switch s {
	case PagarAVencer, PagarVencido, PagarPago, PagarCancelado:
		return true
	}
	return false
}

// StatusContaReceber is the lifecycle state of a receivable.
type StatusContaReceber string

const (
	ReceberAReceber  StatusContaReceber = "A_RECEBER"
	ReceberRecebido  StatusContaReceber = "RECEBIDO"
	ReceberAtrasado  StatusContaReceber = "ATRASADO"
	ReceberCancelado StatusContaReceber = "CANCELADO"
)

// Valid reports whether s is a known receivable status.
func (s StatusContaReceber) Valid() bool {
	switch s {
	case ReceberAReceber, ReceberRecebido, ReceberAtrasado, ReceberCancelado:
		return true
	}
	return false
}

// ContaPagar is a bill the business owes. Instalments created together share
// GrupoParcelamento.
type ContaPagar struct {
	ID                string           `json:"id" bson:"_id,omitempty"`
	Descricao         string           `json:"descricao" bson:"descricao"`
	Valor             float64          `json:"valor" bson:"valor"`
	DataVencimento    time.Time        `json:"data_vencimento" bson:"data_vencimento"`
	DataPagamento     *time.Time       `json:"data_pagamento,omitempty" bson:"data_pagamento,omitempty"`
	Status            StatusContaPagar `json:"status" bson:"status"`
	Categoria         string           `json:"categoria,omitempty" bson:"categoria,omitempty"`
	FornecedorNome    string           `json:"fornecedor_nome,omitempty" bson:"fornecedor_nome,omitempty"`
	ParcelaNumero     int              `json:"parcela_numero,omitempty" bson:"parcela_numero,omitempty"`
	ParcelaTotal      int              `json:"parcela_total,omitempty" bson:"parcela_total,omitempty"`
	GrupoParcelamento string           `json:"grupo_parcelamento,omitempty" bson:"grupo_parcelamento,omitempty"`
	Recorrente        bool             `json:"recorrente" bson:"recorrente"`
	Observacoes       string           `json:"observacoes,omitempty" bson:"observacoes,omitempty"`
	UsuarioID         string           `json:"usuario_id,omitempty" bson:"usuario_id,omitempty"`
	CreatedAt         time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt         *time.Time       `json:"updated_at" bson:"updated_at,omitempty"`
}

// Vencida reports whether the payable is past due and still unpaid at ref.
func (c ContaPagar) Vencida(ref time.Time) bool {
	return c.Status != PagarPago && c.Status != PagarCancelado && c.DataVencimento.Before(ref)
}

// ContaReceber is an amount owed to the business.
type ContaReceber struct {
	ID                string             `json:"id" bson:"_id,omitempty"`
	Descricao         string             `json:"descricao" bson:"descricao"`
	Valor             float64            `json:"valor" bson:"valor"`
	DataVencimento    time.Time          `json:"data_vencimento" bson:"data_vencimento"`
	DataRecebimento   *time.Time         `json:"data_recebimento,omitempty" bson:"data_recebimento,omitempty"`
	Status            StatusContaReceber `json:"status" bson:"status"`
	Categoria         string             `json:"categoria,omitempty" bson:"categoria,omitempty"`
	ClienteID         string             `json:"cliente_id,omitempty" bson:"cliente_id,omitempty"`
	ClienteNome       string             `json:"cliente_nome,omitempty" bson:"cliente_nome,omitempty"`
	NumeroDocumento   string             `json:"numero_documento,omitempty" bson:"numero_documento,omitempty"`
	ParcelaNumero     int                `json:"parcela_numero,omitempty" bson:"parcela_numero,omitempty"`
	ParcelaTotal      int                `json:"parcela_total,omitempty" bson:"parcela_total,omitempty"`
	GrupoParcelamento string             `json:"grupo_parcelamento,omitempty" bson:"grupo_parcelamento,omitempty"`
	Observacoes       string             `json:"observacoes,omitempty" bson:"observacoes,omitempty"`
	UsuarioID         string             `json:"usuario_id,omitempty" bson:"usuario_id,omitempty"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         *time.Time         `json:"updated_at" bson:"updated_at,omitempty"`
}
