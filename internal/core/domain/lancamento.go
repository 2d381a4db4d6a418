package domain

import "time"

// TipoPartida is the side of a ledger posting.
type TipoPartida string

const (
	PartidaDebito  TipoPartida = "DEBITO"
	PartidaCredito TipoPartida = "CREDITO"
)

// Valid reports whether t is a known posting side.
func (t TipoPartida) Valid() bool {
	return t == PartidaDebito || t == PartidaCredito
}

// Lancamento is a single-entry ledger posting against a chart-of-accounts
// account. UsuarioID records the operator who entered it.
type Lancamento struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Data        time.Time   `json:"data" bson:"data"`
	Descricao   string      `json:"descricao" bson:"descricao"`
	Valor       float64     `json:"valor" bson:"valor"`
	Tipo        TipoPartida `json:"tipo" bson:"tipo"`
	ContaID     string      `json:"conta_id" bson:"conta_id"`
	Observacoes string      `json:"observacoes,omitempty" bson:"observacoes,omitempty"`
	UsuarioID   string      `json:"usuario_id,omitempty" bson:"usuario_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at" bson:"updated_at,omitempty"`
}
