package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// ContaPagarHandler handles HTTP requests for payables.
type ContaPagarHandler struct {
	service ports.ContaPagarService
}

func NewContaPagarHandler(service ports.ContaPagarService) *ContaPagarHandler {
	return &ContaPagarHandler{service: service}
}

type createContaPagarRequest struct {
	Descricao      string  `json:"descricao"       validate:"required"`
	Valor          float64 `json:"valor"           validate:"required,gt=0"`
	DataVencimento string  `json:"data_vencimento" validate:"required"`
	Categoria      string  `json:"categoria"       validate:"required"`
	FornecedorNome string  `json:"fornecedor_nome"`
	ParcelaTotal   int     `json:"parcela_total"`
	Recorrente     bool    `json:"recorrente"`
	Observacoes    string  `json:"observacoes"`
}

type updateContaPagarRequest struct {
	Descricao      *string  `json:"descricao"`
	Valor          *float64 `json:"valor" validate:"omitempty,gt=0"`
	DataVencimento *string  `json:"data_vencimento"`
	Categoria      *string  `json:"categoria"`
	FornecedorNome *string  `json:"fornecedor_nome"`
	Observacoes    *string  `json:"observacoes"`
}

type settleRequest struct {
	Data string `json:"data"`
}

// contasFilterFromQuery reads the list filters shared by payables and
// receivables (?status=&categoria=&data_de=&data_ate=&vencidas=&cliente_id=).
func contasFilterFromQuery(c echo.Context) (ports.ListContasFilter, error) {
	skip, limit, err := paginationFromQuery(c)
	if err != nil {
		return ports.ListContasFilter{}, err
	}

	filter := ports.ListContasFilter{
		Status:    c.QueryParam("status"),
		Categoria: c.QueryParam("categoria"),
		ClienteID: c.QueryParam("cliente_id"),
		Skip:      skip,
		Limit:     limit,
	}
	if from, err := parseDateOpt(c.QueryParam("data_de")); err != nil {
		return filter, err
	} else if from != nil {
		filter.DateFrom = *from
	}
	if to, err := parseDateOpt(c.QueryParam("data_ate")); err != nil {
		return filter, err
	} else if to != nil {
		filter.DateTo = *to
	}
	if raw := c.QueryParam("vencidas"); raw != "" {
		vencidas, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "vencidas deve ser true ou false")
		}
		filter.Vencidas = &vencidas
	}

	return filter, nil
}

// settleDate parses the optional settlement date; empty body means today.
func settleDate(c echo.Context) (time.Time, error) {
	var req settleRequest
	if err := c.Bind(&req); err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if req.Data == "" {
		return time.Now().UTC(), nil
	}
	return parseDate(req.Data)
}

// Create registers a payable. A parcela_total greater than 1 expands into a
// monthly instalment series sharing a grupo_parcelamento id.
//
// @Summary      Create a conta a pagar
// @Tags         contas-pagar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContaPagarRequest  true  "Payable details"
// @Success      201   {array}   domain.ContaPagar
// @Failure      400   {object}  errorResponse
// @Router       /api/contas-pagar [post]
func (h *ContaPagarHandler) Create(c echo.Context) error {
	var req createContaPagarRequest
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

	contas, err := h.service.Create(c.Request().Context(), ports.CreateContaPagarInput{
		Descricao:      req.Descricao,
		Valor:          req.Valor,
		DataVencimento: vencimento,
		Categoria:      req.Categoria,
		FornecedorNome: req.FornecedorNome,
		ParcelaTotal:   req.ParcelaTotal,
		Recorrente:     req.Recorrente,
		Observacoes:    req.Observacoes,
		UsuarioID:      user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, contas)
}

// List returns payables filtered by status, category, due-date range and the
// vencidas (past due, unsettled) flag.
//
// @Summary      List contas a pagar
// @Tags         contas-pagar
// @Produce      json
// @Security     BearerAuth
// @Param        status     query     string  false  "A_VENCER, VENCIDO, PAGO or CANCELADO"
// @Param        categoria  query     string  false  "Filter by category"
// @Param        data_de    query     string  false  "Due date from (AAAA-MM-DD)"
// @Param        data_ate   query     string  false  "Due date to (AAAA-MM-DD)"
// @Param        vencidas   query     bool    false  "Past due and unsettled only"
// @Param        skip       query     int     false  "Items to skip"
// @Param        limit      query     int     false  "Max items (capped at 100)"
// @Success      200        {array}   domain.ContaPagar
// @Router       /api/contas-pagar [get]
func (h *ContaPagarHandler) List(c echo.Context) error {
	filter, err := contasFilterFromQuery(c)
	if err != nil {
		return err
	}

	contas, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if contas == nil {
		contas = []*domain.ContaPagar{}
	}

	return c.JSON(http.StatusOK, contas)
}

// Get returns one payable by id.
//
// @Summary      Get a conta a pagar
// @Tags         contas-pagar
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Conta ID"
// @Success      200  {object}  domain.ContaPagar
// @Failure      404  {object}  errorResponse
// @Router       /api/contas-pagar/{id} [get]
func (h *ContaPagarHandler) Get(c echo.Context) error {
	conta, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conta)
}

// Update applies a partial update to a payable.
//
// @Summary      Update a conta a pagar
// @Tags         contas-pagar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Conta ID"
// @Param        body  body      updateContaPagarRequest  true  "Fields to change"
// @Success      200   {object}  domain.ContaPagar
// @Failure      404   {object}  errorResponse
// @Router       /api/contas-pagar/{id} [patch]
func (h *ContaPagarHandler) Update(c echo.Context) error {
	var req updateContaPagarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := ports.ContaPagarUpdate{
		Descricao:      req.Descricao,
		Valor:          req.Valor,
		Categoria:      req.Categoria,
		FornecedorNome: req.FornecedorNome,
		Observacoes:    req.Observacoes,
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

// Pagar settles a payable on the given date (today when the body is empty).
//
// @Summary      Mark a conta a pagar as paid
// @Tags         contas-pagar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true   "Conta ID"
// @Param        body  body      settleRequest  false  "Payment date (AAAA-MM-DD)"
// @Success      200   {object}  domain.ContaPagar
// @Failure      404   {object}  errorResponse
// @Router       /api/contas-pagar/{id}/pagar [post]
func (h *ContaPagarHandler) Pagar(c echo.Context) error {
	data, err := settleDate(c)
	if err != nil {
		return err
	}

	conta, err := h.service.MarkPago(c.Request().Context(), c.Param("id"), data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, conta)
}

// Delete cancels a payable. Bills are never removed from history.
//
// @Summary      Cancel a conta a pagar
// @Tags         contas-pagar
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Conta ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/contas-pagar/{id} [delete]
func (h *ContaPagarHandler) Delete(c echo.Context) error {
	if err := h.service.Cancel(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Conta cancelada com sucesso"})
}
