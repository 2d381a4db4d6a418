package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fleetledger/fleetledger/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Detail
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantCode   int
		wantDetail string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Email ou senha incorretos"},
		{domain.ErrTokenRevoked, http.StatusUnauthorized, "Não foi possível validar as credenciais"},
		{domain.ErrUserInactive, http.StatusForbidden, "Usuário inativo"},
		{domain.ErrNotAdmin, http.StatusForbidden, "Sem permissão de administrador"},
		{domain.ErrSelfDelete, http.StatusBadRequest, "Você não pode deletar sua própria conta"},
		{domain.ErrUserNotFound, http.StatusNotFound, "Usuário não encontrado"},
		{domain.ErrEmailTaken, http.StatusBadRequest, "Email já cadastrado no sistema"},
		{domain.ErrClienteNotFound, http.StatusNotFound, "Cliente não encontrado"},
		{domain.ErrCPFCNPJTaken, http.StatusBadRequest, "CPF/CNPJ já cadastrado"},
		{domain.ErrLancamentoNotFound, http.StatusNotFound, "Lançamento não encontrado"},
		{domain.ErrInvalidInput, http.StatusBadRequest, "Dados inválidos"},
	}

	for _, tc := range cases {
		code, detail := render(t, tc.err)
		if code != tc.wantCode || detail != tc.wantDetail {
			t.Fatalf("%v → %d %q, want %d %q", tc.err, code, detail, tc.wantCode, tc.wantDetail)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrSelfDelete)
	code, detail := render(t, wrapped)
	if code != http.StatusBadRequest || detail != "Você não pode deletar sua própria conta" {
		t.Fatalf("wrapped errors must still map: %d %q", code, detail)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, detail := render(t, echo.NewHTTPError(http.StatusBadRequest, "skip deve ser um inteiro não negativo"))
	if code != http.StatusBadRequest || detail != "skip deve ser um inteiro não negativo" {
		t.Fatalf("echo errors keep their message: %d %q", code, detail)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	code, detail := render(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if detail != "Erro interno do servidor" {
		t.Fatalf("internal causes must not leak: %q", detail)
	}
}
