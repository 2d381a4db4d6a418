package domain

import "errors"

// Sentinel errors shared across services. The HTTP layer maps each one to a
// status code and the user-facing detail message.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user inactive")
	ErrNotAdmin           = errors.New("admin permission required")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrSelfDelete         = errors.New("cannot delete own account")

	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")

	ErrClienteNotFound      = errors.New("cliente not found")
	ErrCPFCNPJTaken         = errors.New("cpf/cnpj already registered")
	ErrEquipamentoNotFound  = errors.New("equipamento not found")
	ErrIdentificadorTaken   = errors.New("identificador already registered")
	ErrMotoristaNotFound    = errors.New("motorista not found")
	ErrCPFTaken             = errors.New("cpf already registered")
	ErrPlanoContaNotFound   = errors.New("conta do plano de contas not found")
	ErrCodigoTaken          = errors.New("codigo already registered")
	ErrLancamentoNotFound   = errors.New("lancamento not found")
	ErrContaPagarNotFound   = errors.New("conta a pagar not found")
	ErrContaReceberNotFound = errors.New("conta a receber not found")

	ErrInvalidInput = errors.New("invalid input")
)
