package domain

import "time"

// Motorista is a driver employed by the business. CPF is the unique national
// identifier; CNH fields describe the driving licence.
type Motorista struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	Nome           string     `json:"nome" bson:"nome"`
	CPF            string     `json:"cpf" bson:"cpf"`
	CNH            string     `json:"cnh" bson:"cnh"`
	CategoriaCNH   string     `json:"categoria_cnh" bson:"categoria_cnh"`
	ValidadeCNH    time.Time  `json:"validade_cnh" bson:"validade_cnh"`
	Telefone       string     `json:"telefone,omitempty" bson:"telefone,omitempty"`
	Endereco       string     `json:"endereco,omitempty" bson:"endereco,omitempty"`
	DataNascimento *time.Time `json:"data_nascimento,omitempty" bson:"data_nascimento,omitempty"`
	DataAdmissao   *time.Time `json:"data_admissao,omitempty" bson:"data_admissao,omitempty"`
	Ativo          bool       `json:"ativo" bson:"ativo"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at" bson:"updated_at,omitempty"`
}
