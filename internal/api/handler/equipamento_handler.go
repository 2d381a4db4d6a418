package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// EquipamentoHandler handles HTTP requests for the fleet registry.
type EquipamentoHandler struct {
	service ports.EquipamentoService
}

func NewEquipamentoHandler(service ports.EquipamentoService) *EquipamentoHandler {
	return &EquipamentoHandler{service: service}
}

type createEquipamentoRequest struct {
	Tipo             string  `json:"tipo"              validate:"required"`
	Placa            string  `json:"placa"`
	Identificador    string  `json:"identificador"     validate:"required"`
	Modelo           string  `json:"modelo"            validate:"required"`
	Marca            string  `json:"marca"`
	AnoFabricacao    int     `json:"ano_fabricacao"`
	NumeroSerie      string  `json:"numero_serie"`
	ValorAquisicao   float64 `json:"valor_aquisicao"`
	HodometroInicial float64 `json:"hodometro_inicial"`
	Observacoes      string  `json:"observacoes"`
}

type updateEquipamentoRequest struct {
	Placa          *string  `json:"placa"`
	Modelo         *string  `json:"modelo"`
	Marca          *string  `json:"marca"`
	AnoFabricacao  *int     `json:"ano_fabricacao"`
	NumeroSerie    *string  `json:"numero_serie"`
	ValorAquisicao *float64 `json:"valor_aquisicao"`
	HodometroAtual *float64 `json:"hodometro_atual"`
	Observacoes    *string  `json:"observacoes"`
	Ativo          *bool    `json:"ativo"`
}

// Create registers a new equipamento.
//
// @Summary      Create an equipamento
// @Tags         equipamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEquipamentoRequest  true  "Equipamento details"
// @Success      201   {object}  domain.Equipamento
// @Failure      400   {object}  errorResponse
// @Router       /api/equipamentos [post]
func (h *EquipamentoHandler) Create(c echo.Context) error {
	var req createEquipamentoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	equipamento, err := h.service.Create(c.Request().Context(), ports.CreateEquipamentoInput{
		Tipo:             domain.TipoEquipamento(req.Tipo),
		Placa:            req.Placa,
		Identificador:    req.Identificador,
		Modelo:           req.Modelo,
		Marca:            req.Marca,
		AnoFabricacao:    req.AnoFabricacao,
		NumeroSerie:      req.NumeroSerie,
		ValorAquisicao:   req.ValorAquisicao,
		HodometroInicial: req.HodometroInicial,
		Observacoes:      req.Observacoes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, equipamento)
}

// List returns equipamentos, optionally filtered by ativo.
//
// @Summary      List equipamentos
// @Tags         equipamentos
// @Produce      json
// @Security     BearerAuth
// @Param        ativo  query     bool  false  "Filter by active flag"
// @Param        skip   query     int   false  "Items to skip"
// @Param        limit  query     int   false  "Max items (capped at 100)"
// @Success      200    {array}   domain.Equipamento
// @Router       /api/equipamentos [get]
func (h *EquipamentoHandler) List(c echo.Context) error {
	filter, err := listFilterFromQuery(c)
	if err != nil {
		return err
	}

	equipamentos, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if equipamentos == nil {
		equipamentos = []*domain.Equipamento{}
	}

	return c.JSON(http.StatusOK, equipamentos)
}

// Get returns one equipamento by id.
//
// @Summary      Get an equipamento
// @Tags         equipamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Equipamento ID"
// @Success      200  {object}  domain.Equipamento
// @Failure      404  {object}  errorResponse
// @Router       /api/equipamentos/{id} [get]
func (h *EquipamentoHandler) Get(c echo.Context) error {
	equipamento, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, equipamento)
}

// Update applies a partial update to an equipamento.
//
// @Summary      Update an equipamento
// @Tags         equipamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Equipamento ID"
// @Param        body  body      updateEquipamentoRequest  true  "Fields to change"
// @Success      200   {object}  domain.Equipamento
// @Failure      404   {object}  errorResponse
// @Router       /api/equipamentos/{id} [patch]
func (h *EquipamentoHandler) Update(c echo.Context) error {
	var req updateEquipamentoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	equipamento, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.EquipamentoUpdate{
		Placa:          req.Placa,
		Modelo:         req.Modelo,
		Marca:          req.Marca,
		AnoFabricacao:  req.AnoFabricacao,
		NumeroSerie:    req.NumeroSerie,
		ValorAquisicao: req.ValorAquisicao,
		HodometroAtual: req.HodometroAtual,
		Observacoes:    req.Observacoes,
		Ativo:          req.Ativo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, equipamento)
}

// Delete deactivates an equipamento.
//
// @Summary      Deactivate an equipamento
// @Tags         equipamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Equipamento ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/equipamentos/{id} [delete]
func (h *EquipamentoHandler) Delete(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Equipamento desativado com sucesso"})
}
