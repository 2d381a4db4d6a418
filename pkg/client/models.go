package client

import "time"

// Wire models returned by the API. Field names follow the server's JSON
// contract; date-only fields travel as RFC 3339 timestamps.

type User struct {
	ID        string     `json:"id"`
	Nome      string     `json:"nome"`
	Email     string     `json:"email"`
	Ativo     bool       `json:"ativo"`
	IsAdmin   bool       `json:"is_admin"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type Cliente struct {
	ID         string     `json:"id"`
	Nome       string     `json:"nome"`
	TipoPessoa string     `json:"tipo_pessoa"`
	CPFCNPJ    string     `json:"cpf_cnpj"`
	Telefone   string     `json:"telefone"`
	Email      string     `json:"email"`
	Endereco   string     `json:"endereco"`
	Cidade     string     `json:"cidade"`
	Estado     string     `json:"estado"`
	CEP        string     `json:"cep"`
	Ativo      bool       `json:"ativo"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type Equipamento struct {
	ID               string     `json:"id"`
	Tipo             string     `json:"tipo"`
	Placa            string     `json:"placa"`
	Identificador    string     `json:"identificador"`
	Modelo           string     `json:"modelo"`
	Marca            string     `json:"marca"`
	AnoFabricacao    int        `json:"ano_fabricacao"`
	NumeroSerie      string     `json:"numero_serie"`
	ValorAquisicao   float64    `json:"valor_aquisicao"`
	HodometroInicial float64    `json:"hodometro_inicial"`
	HodometroAtual   float64    `json:"hodometro_atual"`
	Observacoes      string     `json:"observacoes"`
	Ativo            bool       `json:"ativo"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

type Motorista struct {
	ID             string     `json:"id"`
	Nome           string     `json:"nome"`
	CPF            string     `json:"cpf"`
	CNH            string     `json:"cnh"`
	CategoriaCNH   string     `json:"categoria_cnh"`
	ValidadeCNH    time.Time  `json:"validade_cnh"`
	Telefone       string     `json:"telefone"`
	Endereco       string     `json:"endereco"`
	DataNascimento *time.Time `json:"data_nascimento"`
	DataAdmissao   *time.Time `json:"data_admissao"`
	Ativo          bool       `json:"ativo"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type PlanoConta struct {
	ID               string     `json:"id"`
	Codigo           string     `json:"codigo"`
	Descricao        string     `json:"descricao"`
	Tipo             string     `json:"tipo"`
	Natureza         string     `json:"natureza"`
	Nivel            int        `json:"nivel"`
	ContaPaiID       string     `json:"conta_pai_id"`
	AceitaLancamento bool       `json:"aceita_lancamento"`
	Ativo            bool       `json:"ativo"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

type Lancamento struct {
	ID          string     `json:"id"`
	Data        time.Time  `json:"data"`
	Descricao   string     `json:"descricao"`
	Valor       float64    `json:"valor"`
	Tipo        string     `json:"tipo"`
	ContaID     string     `json:"conta_id"`
	Observacoes string     `json:"observacoes"`
	UsuarioID   string     `json:"usuario_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ContaPagar struct {
	ID                string     `json:"id"`
	Descricao         string     `json:"descricao"`
	Valor             float64    `json:"valor"`
	DataVencimento    time.Time  `json:"data_vencimento"`
	DataPagamento     *time.Time `json:"data_pagamento"`
	Status            string     `json:"status"`
	Categoria         string     `json:"categoria"`
	FornecedorNome    string     `json:"fornecedor_nome"`
	ParcelaNumero     int        `json:"parcela_numero"`
	ParcelaTotal      int        `json:"parcela_total"`
	GrupoParcelamento string     `json:"grupo_parcelamento"`
	Recorrente        bool       `json:"recorrente"`
	Observacoes       string     `json:"observacoes"`
	UsuarioID         string     `json:"usuario_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

type ContaReceber struct {
	ID                string     `json:"id"`
	Descricao         string     `json:"descricao"`
	Valor             float64    `json:"valor"`
	DataVencimento    time.Time  `json:"data_vencimento"`
	DataRecebimento   *time.Time `json:"data_recebimento"`
	Status            string     `json:"status"`
	Categoria         string     `json:"categoria"`
	ClienteID         string     `json:"cliente_id"`
	ClienteNome       string     `json:"cliente_nome"`
	NumeroDocumento   string     `json:"numero_documento"`
	ParcelaNumero     int        `json:"parcela_numero"`
	ParcelaTotal      int        `json:"parcela_total"`
	GrupoParcelamento string     `json:"grupo_parcelamento"`
	Observacoes       string     `json:"observacoes"`
	UsuarioID         string     `json:"usuario_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}
