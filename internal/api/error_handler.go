package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fleetledger/fleetledger/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// admin front end surfaces Detail verbatim in its notifications, so the
// messages here are the exact user-facing strings.
type errorResponse struct {
	Detail string `json:"detail"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"detail": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes and messages.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Email ou senha incorretos"
	case errors.Is(err, domain.ErrTokenRevoked):
		return http.StatusUnauthorized, "Não foi possível validar as credenciais"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "Usuário inativo"
	case errors.Is(err, domain.ErrNotAdmin):
		return http.StatusForbidden, "Sem permissão de administrador"
	case errors.Is(err, domain.ErrSelfDelete):
		return http.StatusBadRequest, "Você não pode deletar sua própria conta"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuário não encontrado"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "Email já cadastrado no sistema"
	case errors.Is(err, domain.ErrClienteNotFound):
		return http.StatusNotFound, "Cliente não encontrado"
	case errors.Is(err, domain.ErrCPFCNPJTaken):
		return http.StatusBadRequest, "CPF/CNPJ já cadastrado"
	case errors.Is(err, domain.ErrEquipamentoNotFound):
		return http.StatusNotFound, "Equipamento não encontrado"
	case errors.Is(err, domain.ErrIdentificadorTaken):
		return http.StatusBadRequest, "Identificador já cadastrado"
	case errors.Is(err, domain.ErrMotoristaNotFound):
		return http.StatusNotFound, "Motorista não encontrado"
	case errors.Is(err, domain.ErrCPFTaken):
		return http.StatusBadRequest, "CPF já cadastrado"
	case errors.Is(err, domain.ErrPlanoContaNotFound):
		return http.StatusNotFound, "Conta não encontrada"
	case errors.Is(err, domain.ErrCodigoTaken):
		return http.StatusBadRequest, "Código já cadastrado"
	case errors.Is(err, domain.ErrLancamentoNotFound):
		return http.StatusNotFound, "Lançamento não encontrado"
	case errors.Is(err, domain.ErrContaPagarNotFound):
		return http.StatusNotFound, "Conta a pagar não encontrada"
	case errors.Is(err, domain.ErrContaReceberNotFound):
		return http.StatusNotFound, "Conta a receber não encontrada"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "Dados inválidos"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Erro interno do servidor"
}
