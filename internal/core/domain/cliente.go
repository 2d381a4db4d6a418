package domain

import "time"

const (
	PessoaFisica   = "F"
	PessoaJuridica = "J"
)

// Cliente is a customer of the fleet business, either an individual (F) or a
// company (J). CPFCNPJ is the unique tax identifier.
type Cliente struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	Nome       string     `json:"nome" bson:"nome"`
	TipoPessoa string     `json:"tipo_pessoa" bson:"tipo_pessoa"`
	CPFCNPJ    string     `json:"cpf_cnpj" bson:"cpf_cnpj"`
	Telefone   string     `json:"telefone,omitempty" bson:"telefone,omitempty"`
	Email      string     `json:"email,omitempty" bson:"email,omitempty"`
	Endereco   string     `json:"endereco,omitempty" bson:"endereco,omitempty"`
	Cidade     string     `json:"cidade,omitempty" bson:"cidade,omitempty"`
	Estado     string     `json:"estado,omitempty" bson:"estado,omitempty"`
	CEP        string     `json:"cep,omitempty" bson:"cep,omitempty"`
	Ativo      bool       `json:"ativo" bson:"ativo"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at" bson:"updated_at,omitempty"`
}
