package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// LancamentoHandler handles HTTP requests for ledger postings.
type LancamentoHandler struct {
	service ports.LancamentoService
}

func NewLancamentoHandler(service ports.LancamentoService) *LancamentoHandler {
	return &LancamentoHandler{service: service}
}

type createLancamentoRequest struct {
	Data        string  `json:"data"        validate:"required"`
	Descricao   string  `json:"descricao"   validate:"required"`
	Valor       float64 `json:"valor"       validate:"required,gt=0"`
	Tipo        string  `json:"tipo"        validate:"required,oneof=DEBITO CREDITO"`
	ContaID     string  `json:"conta_id"    validate:"required"`
	Observacoes string  `json:"observacoes"`
}

type updateLancamentoRequest struct {
	Data        *string  `json:"data"`
	Descricao   *string  `json:"descricao"`
	Valor       *float64 `json:"valor" validate:"omitempty,gt=0"`
	Observacoes *string  `json:"observacoes"`
}

// Create records a ledger posting against an account that accepts postings.
//
// @Summary      Create a lancamento
// @Tags         lancamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLancamentoRequest  true  "Posting details"
// @Success      201   {object}  domain.Lancamento
// @Failure      400   {object}  errorResponse
// @Router       /api/lancamentos [post]
func (h *LancamentoHandler) Create(c echo.Context) error {
	var req createLancamentoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	data, err := parseDate(req.Data)
	if err != nil {
		return err
	}

	user, err := currentUser(c)
	if err != nil {
		return err
	}

	lancamento, err := h.service.Create(c.Request().Context(), ports.CreateLancamentoInput{
		Data:        data,
		Descricao:   req.Descricao,
		Valor:       req.Valor,
		Tipo:        domain.TipoPartida(req.Tipo),
		ContaID:     req.ContaID,
		Observacoes: req.Observacoes,
		UsuarioID:   user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, lancamento)
}

// List returns ledger postings filtered by account, type and date range.
//
// @Summary      List lancamentos
// @Tags         lancamentos
// @Produce      json
// @Security     BearerAuth
// @Param        conta_id   query     string  false  "Filter by account"
// @Param        tipo       query     string  false  "DEBITO or CREDITO"
// @Param        data_de    query     string  false  "Start date (AAAA-MM-DD)"
// @Param        data_ate   query     string  false  "End date (AAAA-MM-DD)"
// @Param        skip       query     int     false  "Items to skip"
// @Param        limit      query     int     false  "Max items (capped at 100)"
// @Success      200        {array}   domain.Lancamento
// @Router       /api/lancamentos [get]
func (h *LancamentoHandler) List(c echo.Context) error {
	skip, limit, err := paginationFromQuery(c)
	if err != nil {
		return err
	}

	filter := ports.ListLancamentosFilter{
		ContaID: c.QueryParam("conta_id"),
		Tipo:    c.QueryParam("tipo"),
		Skip:    skip,
		Limit:   limit,
	}
	if from, err := parseDateOpt(c.QueryParam("data_de")); err != nil {
		return err
	} else if from != nil {
		filter.DateFrom = *from
	}
	if to, err := parseDateOpt(c.QueryParam("data_ate")); err != nil {
		return err
	} else if to != nil {
		filter.DateTo = *to
	}

	lancamentos, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if lancamentos == nil {
		lancamentos = []*domain.Lancamento{}
	}

	return c.JSON(http.StatusOK, lancamentos)
}

// Get returns one posting by id.
//
// @Summary      Get a lancamento
// @Tags         lancamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Lancamento ID"
// @Success      200  {object}  domain.Lancamento
// @Failure      404  {object}  errorResponse
// @Router       /api/lancamentos/{id} [get]
func (h *LancamentoHandler) Get(c echo.Context) error {
	lancamento, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lancamento)
}

// Update applies a partial update to a posting. Tipo and conta are immutable;
// a posting against the wrong account is deleted and re-entered.
//
// @Summary      Update a lancamento
// @Tags         lancamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Lancamento ID"
// @Param        body  body      updateLancamentoRequest  true  "Fields to change"
// @Success      200   {object}  domain.Lancamento
// @Failure      404   {object}  errorResponse
// @Router       /api/lancamentos/{id} [patch]
func (h *LancamentoHandler) Update(c echo.Context) error {
	var req updateLancamentoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := ports.LancamentoUpdate{
		Descricao:   req.Descricao,
		Valor:       req.Valor,
		Observacoes: req.Observacoes,
	}
	if req.Data != nil {
		data, err := parseDate(*req.Data)
		if err != nil {
			return err
		}
		upd.Data = &data
	}

	lancamento, err := h.service.Update(c.Request().Context(), c.Param("id"), upd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, lancamento)
}

// Delete removes a posting permanently.
//
// @Summary      Delete a lancamento
// @Tags         lancamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Lancamento ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/lancamentos/{id} [delete]
func (h *LancamentoHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Lançamento removido com sucesso"})
}
