package domain

import "time"

// TipoConta classifies an account in the chart of accounts.
type TipoConta string

const (
	ContaAtivo             TipoConta = "ATIVO"
	ContaPassivo           TipoConta = "PASSIVO"
	ContaPatrimonioLiquido TipoConta = "PATRIMONIO_LIQUIDO"
	ContaReceita           TipoConta = "RECEITA"
	ContaDespesa           TipoConta = "DESPESA"
)

// Valid reports whether t is a known account classification.
func (t TipoConta) Valid() bool {
	switch t {
	case ContaAtivo, ContaPassivo, ContaPatrimonioLiquido, ContaReceita, ContaDespesa:
		return true
	}
	return false
}

// NaturezaConta is the debit/credit nature of an account.
type NaturezaConta string

const (
	NaturezaDevedora NaturezaConta = "DEVEDORA"
	NaturezaCredora  NaturezaConta = "CREDORA"
)

// Valid reports whether n is a known account nature.
func (n NaturezaConta) Valid() bool {
	return n == NaturezaDevedora || n == NaturezaCredora
}

// PlanoConta is one entry of the chart of accounts. Codigo is the unique
// hierarchical code (e.g. "3.1.02"); AceitaLancamento marks leaf accounts
// that accept postings.
type PlanoConta struct {
	ID               string        `json:"id" bson:"_id,omitempty"`
	Codigo           string        `json:"codigo" bson:"codigo"`
	Descricao        string        `json:"descricao" bson:"descricao"`
	Tipo             TipoConta     `json:"tipo" bson:"tipo"`
	Natureza         NaturezaConta `json:"natureza" bson:"natureza"`
	Nivel            int           `json:"nivel" bson:"nivel"`
	ContaPaiID       string        `json:"conta_pai_id,omitempty" bson:"conta_pai_id,omitempty"`
	AceitaLancamento bool          `json:"aceita_lancamento" bson:"aceita_lancamento"`
	Ativo            bool          `json:"ativo" bson:"ativo"`
	CreatedAt        time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt        *time.Time    `json:"updated_at" bson:"updated_at,omitempty"`
}
