package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// ContaReceberHandler handles HTTP requests for receivables.
type ContaReceberHandler struct {
	service ports.ContaReceberService
}

func NewContaReceberHandler(service ports.ContaReceberService) *ContaReceberHandler {
	return &ContaReceberHandler{service: service}
}

type createContaReceberRequest struct {
	Descricao       string  `json:"descricao"        validate:"required"`
	Valor           float64 `json:"valor"            validate:"required,gt=0"`
	DataVencimento  string  `json:"data_vencimento"  validate:"required"`
	Categoria       string  `json:"categoria"        validate:"required"`
	ClienteID       string  `json:"cliente_id"`
	ClienteNome     string  `json:"cliente_nome"`
	NumeroDocumento string  `json:"numero_documento"`
	ParcelaTotal    int     `json:"parcela_total"`
	Observacoes     string  `json:"observacoes"`
}

type updateContaReceberRequest struct {
	Descricao       *string  `json:"descricao"`
	Valor           *float64 `json:"valor" validate:"omitempty,gt=0"`
	DataVencimento  *string  `json:"data_vencimento"`
	Categoria       *string  `json:"categoria"`
	ClienteNome     *string  `json:"cliente_nome"`
	NumeroDocumento *string  `json:"numero_documento"`
	Observacoes     *string  `json:"observacoes"`
}

// Create registers a receivable. A parcela_total greater than 1 expands into
// a monthly instalment series sharing a grupo_parcelamento id.
//
// @Summary      Create a conta a receber
// @Tags         contas-receber
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContaReceberRequest  true  "Receivable details"
// @Success      201   {array}   domain.ContaReceber
// @Failure      400   {object}  errorResponse
// @Router       /api/contas-receber [post]
func (h *ContaReceberHandler) Create(c echo.Context) error {
	var req createContaReceberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vencimento, err := parseDate(req.DataVencimento)
	if err != nil {
		return err
	}

	user, err := currentUser(c)
	if err != nil {
		return err
	}

	contas, err := h.service.Create(c.Request().Context(), ports.CreateContaReceberInput{
		Descricao:       req.Descricao,
		Valor:           req.Valor,
		DataVencimento:  vencimento,
		Categoria:       req.Categoria,
		ClienteID:       req.ClienteID,
		ClienteNome:     req.ClienteNome,
		NumeroDocumento: req.NumeroDocumento,
		ParcelaTotal:    req.ParcelaTotal,
		Observacoes:     req.Observacoes,
		UsuarioID:       user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, contas)
}

// List returns receivables filtered by status, category, client, due-date
// range and the vencidas (past due, unsettled) flag.
//
// @Summary      List contas a receber
// @Tags         contas-receber
// @Produce      json
// @Security     BearerAuth
// @Param        status      query     string  false  "A_RECEBER, RECEBIDO, ATRASADO or CANCELADO"
// @Param        categoria   query     string  false  "Filter by category"
// @Param        cliente_id  query     string  false  "Filter by cliente"
// @Param        data_de     query     string  false  "Due date from (AAAA-MM-DD)"
// @Param        data_ate    query     string  false  "Due date to (AAAA-MM-DD)"
// @Param        vencidas    query     bool    false  "Past due and unsettled only"
// @Param        skip        query     int     false  "Items to skip"
// @Param        limit       query     int     false  "Max items (capped at 100)"
// @Success      200         {array}   domain.ContaReceber
// @Router       /api/contas-receber [get]
func (h *ContaReceberHandler) List(c echo.Context) error {
	filter, err := contasFilterFromQuery(c)
	if err != nil {
		return err
	}

	contas, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if contas == nil {
		contas = []*domain.ContaReceber{}
	}

	return c.JSON(http.StatusOK, contas)
}

// Get returns one receivable by id.
//
// @Summary      Get a conta a receber
// @Tags         contas-receber
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Conta ID"
// @Success      200  {object}  domain.ContaReceber
// @Failure      404  {object}  errorResponse
// @Router       /api/contas-receber/{id} [get]
func (h *ContaReceberHandler) Get(c echo.Context) error {
	conta, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conta)
}

// Update applies a partial update to a receivable.
//
// @Summary      Update a conta a receber
// @Tags         contas-receber
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Conta ID"
// @Param        body  body      updateContaReceberRequest  true  "Fields to change"
// @Success      200   {object}  domain.ContaReceber
// @Failure      404   {object}  errorResponse
// @Router       /api/contas-receber/{id} [patch]
func (h *ContaReceberHandler) Update(c echo.Context) error {
	var req updateContaReceberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := ports.ContaReceberUpdate{
		Descricao:       req.Descricao,
		Valor:           req.Valor,
		Categoria:       req.Categoria,
		ClienteNome:     req.ClienteNome,
		NumeroDocumento: req.NumeroDocumento,
		Observacoes:     req.Observacoes,
	}
	if req.DataVencimento != nil {
		vencimento, err := parseDate(*req.DataVencimento)
		if err != nil {
			return err
		}
		upd.DataVencimento = &vencimento
	}

	conta, err := h.service.Update(c.Request().Context(), c.Param("id"), upd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, conta)
}

// Receber settles a receivable on the given date (today when the body is empty).
//
// @Summary      Mark a conta a receber as received
// @Tags         contas-receber
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true   "Conta ID"
// @Param        body  body      settleRequest  false  "Receipt date (AAAA-MM-DD)"
// @Success      200   {object}  domain.ContaReceber
// @Failure      404   {object}  errorResponse
// @Router       /api/contas-receber/{id}/receber [post]
func (h *ContaReceberHandler) Receber(c echo.Context) error {
	data, err := settleDate(c)
	if err != nil {
		return err
	}

	conta, err := h.service.MarkRecebido(c.Request().Context(), c.Param("id"), data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, conta)
}

// Delete cancels a receivable. Bills are never removed from history.
//
// @Summary      Cancel a conta a receber
// @Tags         contas-receber
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Conta ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/contas-receber/{id} [delete]
func (h *ContaReceberHandler) Delete(c echo.Context) error {
	if err := h.service.Cancel(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Conta cancelada com sucesso"})
}
