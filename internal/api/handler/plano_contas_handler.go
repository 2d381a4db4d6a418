package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// PlanoContasHandler handles HTTP requests for the chart of accounts.
type PlanoContasHandler struct {
	service ports.PlanoContasService
}

func NewPlanoContasHandler(service ports.PlanoContasService) *PlanoContasHandler {
	return &PlanoContasHandler{service: service}
}

type createPlanoContaRequest struct {
	Codigo           string `json:"codigo"            validate:"required"`
	Descricao        string `json:"descricao"         validate:"required"`
	Tipo             string `json:"tipo"              validate:"required,oneof=ATIVO PASSIVO PATRIMONIO_LIQUIDO RECEITA DESPESA"`
	Natureza         string `json:"natureza"          validate:"required,oneof=DEVEDORA CREDORA"`
	Nivel            int    `json:"nivel"`
	ContaPaiID       string `json:"conta_pai_id"`
	AceitaLancamento bool   `json:"aceita_lancamento"`
}

type updatePlanoContaRequest struct {
	Descricao        *string `json:"descricao"`
	AceitaLancamento *bool   `json:"aceita_lancamento"`
	Ativo            *bool   `json:"ativo"`
}

// Create adds an account to the chart.
//
// @Summary      Create a chart-of-accounts entry
// @Tags         plano-contas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlanoContaRequest  true  "Account details"
// @Success      201   {object}  domain.PlanoConta
// @Failure      400   {object}  errorResponse
// @Router       /api/plano-contas [post]
func (h *PlanoContasHandler) Create(c echo.Context) error {
	var req createPlanoContaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conta, err := h.service.Create(c.Request().Context(), ports.CreatePlanoContaInput{
		Codigo:           req.Codigo,
		Descricao:        req.Descricao,
		Tipo:             domain.TipoConta(req.Tipo),
		Natureza:         domain.NaturezaConta(req.Natureza),
		Nivel:            req.Nivel,
		ContaPaiID:       req.ContaPaiID,
		AceitaLancamento: req.AceitaLancamento,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, conta)
}

// List returns chart-of-accounts entries, optionally filtered by ativo.
//
// @Summary      List chart-of-accounts entries
// @Tags         plano-contas
// @Produce      json
// @Security     BearerAuth
// @Param        ativo  query     bool  false  "Filter by active flag"
// @Param        skip   query     int   false  "Items to skip"
// @Param        limit  query     int   false  "Max items (capped at 100)"
// @Success      200    {array}   domain.PlanoConta
// @Router       /api/plano-contas [get]
func (h *PlanoContasHandler) List(c echo.Context) error {
	filter, err := listFilterFromQuery(c)
	if err != nil {
		return err
	}

	contas, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if contas == nil {
		contas = []*domain.PlanoConta{}
	}

	return c.JSON(http.StatusOK, contas)
}

// Get returns one account by id.
//
// @Summary      Get a chart-of-accounts entry
// @Tags         plano-contas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Account ID"
// @Success      200  {object}  domain.PlanoConta
// @Failure      404  {object}  errorResponse
// @Router       /api/plano-contas/{id} [get]
func (h *PlanoContasHandler) Get(c echo.Context) error {
	conta, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conta)
}

// Update applies a partial update to an account. Codigo, tipo and natureza
// are immutable once created; postings may already reference them.
//
// @Summary      Update a chart-of-accounts entry
// @Tags         plano-contas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Account ID"
// @Param        body  body      updatePlanoContaRequest  true  "Fields to change"
// @Success      200   {object}  domain.PlanoConta
// @Failure      404   {object}  errorResponse
// @Router       /api/plano-contas/{id} [patch]
func (h *PlanoContasHandler) Update(c echo.Context) error {
	var req updatePlanoContaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}

	conta, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.PlanoContaUpdate{
		Descricao:        req.Descricao,
		AceitaLancamento: req.AceitaLancamento,
		Ativo:            req.Ativo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, conta)
}

// Delete deactivates an account.
//
// @Summary      Deactivate a chart-of-accounts entry
// @Tags         plano-contas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Account ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/plano-contas/{id} [delete]
func (h *PlanoContasHandler) Delete(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Conta desativada com sucesso"})
}
