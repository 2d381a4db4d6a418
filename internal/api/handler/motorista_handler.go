package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// MotoristaHandler handles HTTP requests for the driver registry.
type MotoristaHandler struct {
	service ports.MotoristaService
}

func NewMotoristaHandler(service ports.MotoristaService) *MotoristaHandler {
	return &MotoristaHandler{service: service}
}

type createMotoristaRequest struct {
	Nome           string `json:"nome"            validate:"required"`
	CPF            string `json:"cpf"             validate:"required"`
	CNH            string `json:"cnh"             validate:"required"`
	CategoriaCNH   string `json:"categoria_cnh"   validate:"required"`
	ValidadeCNH    string `json:"validade_cnh"    validate:"required"`
	Telefone       string `json:"telefone"`
	Endereco       string `json:"endereco"`
	DataNascimento string `json:"data_nascimento"`
	DataAdmissao   string `json:"data_admissao"`
}

type updateMotoristaRequest struct {
	Nome         *string `json:"nome"`
	CNH          *string `json:"cnh"`
	CategoriaCNH *string `json:"categoria_cnh"`
	ValidadeCNH  *string `json:"validade_cnh"`
	Telefone     *string `json:"telefone"`
	Endereco     *string `json:"endereco"`
	DataAdmissao *string `json:"data_admissao"`
	Ativo        *bool   `json:"ativo"`
}

// Create registers a new motorista.
//
// @Summary      Create a motorista
// @Tags         motoristas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMotoristaRequest  true  "Motorista details"
// @Success      201   {object}  domain.Motorista
// @Failure      400   {object}  errorResponse
// @Router       /api/motoristas [post]
func (h *MotoristaHandler) Create(c echo.Context) error {
	var req createMotoristaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	validade, err := parseDate(req.ValidadeCNH)
	if err != nil {
		return err
	}
	nascimento, err := parseDateOpt(req.DataNascimento)
	if err != nil {
		return err
	}
	admissao, err := parseDateOpt(req.DataAdmissao)
	if err != nil {
		return err
	}

	motorista, err := h.service.Create(c.Request().Context(), ports.CreateMotoristaInput{
		Nome:           req.Nome,
		CPF:            req.CPF,
		CNH:            req.CNH,
		CategoriaCNH:   req.CategoriaCNH,
		ValidadeCNH:    validade,
		Telefone:       req.Telefone,
		Endereco:       req.Endereco,
		DataNascimento: nascimento,
		DataAdmissao:   admissao,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, motorista)
}

// List returns motoristas, optionally filtered by ativo.
//
// @Summary      List motoristas
// @Tags         motoristas
// @Produce      json
// @Security     BearerAuth
// @Param        ativo  query     bool  false  "Filter by active flag"
// @Param        skip   query     int   false  "Items to skip"
// @Param        limit  query     int   false  "Max items (capped at 100)"
// @Success      200    {array}   domain.Motorista
// @Router       /api/motoristas [get]
func (h *MotoristaHandler) List(c echo.Context) error {
	filter, err := listFilterFromQuery(c)
	if err != nil {
		return err
	}

	motoristas, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if motoristas == nil {
		motoristas = []*domain.Motorista{}
	}

	return c.JSON(http.StatusOK, motoristas)
}

// Get returns one motorista by id.
//
// @Summary      Get a motorista
// @Tags         motoristas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Motorista ID"
// @Success      200  {object}  domain.Motorista
// @Failure      404  {object}  errorResponse
// @Router       /api/motoristas/{id} [get]
func (h *MotoristaHandler) Get(c echo.Context) error {
	motorista, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, motorista)
}

// Update applies a partial update to a motorista.
//
// @Summary      Update a motorista
// @Tags         motoristas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Motorista ID"
// @Param        body  body      updateMotoristaRequest  true  "Fields to change"
// @Success      200   {object}  domain.Motorista
// @Failure      404   {object}  errorResponse
// @Router       /api/motoristas/{id} [patch]
func (h *MotoristaHandler) Update(c echo.Context) error {
	var req updateMotoristaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := ports.MotoristaUpdate{
		Nome:         req.Nome,
		CNH:          req.CNH,
		CategoriaCNH: req.CategoriaCNH,
		Telefone:     req.Telefone,
		Endereco:     req.Endereco,
		Ativo:        req.Ativo,
	}
	if req.ValidadeCNH != nil {
		validade, err := parseDate(*req.ValidadeCNH)
		if err != nil {
			return err
		}
		upd.ValidadeCNH = &validade
	}
	if req.DataAdmissao != nil {
		admissao, err := parseDate(*req.DataAdmissao)
		if err != nil {
			return err
		}
		upd.DataAdmissao = &admissao
	}

	motorista, err := h.service.Update(c.Request().Context(), c.Param("id"), upd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, motorista)
}

// Delete deactivates a motorista.
//
// @Summary      Deactivate a motorista
// @Tags         motoristas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Motorista ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/motoristas/{id} [delete]
func (h *MotoristaHandler) Delete(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Motorista desativado com sucesso"})
}
