package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// ClienteHandler handles HTTP requests for the cliente registry.
type ClienteHandler struct {
	service ports.ClienteService
}

func NewClienteHandler(service ports.ClienteService) *ClienteHandler {
	return &ClienteHandler{service: service}
}

type createClienteRequest struct {
	Nome       string `json:"nome"        validate:"required"`
	TipoPessoa string `json:"tipo_pessoa" validate:"required,oneof=F J"`
	CPFCNPJ    string `json:"cpf_cnpj"    validate:"required"`
	Telefone   string `json:"telefone"`
	Email      string `json:"email"       validate:"omitempty,email"`
	Endereco   string `json:"endereco"`
	Cidade     string `json:"cidade"`
	Estado     string `json:"estado"      validate:"omitempty,len=2"`
	CEP        string `json:"cep"`
}

type updateClienteRequest struct {
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Endereco *string `json:"endereco"`
	Cidade   *string `json:"cidade"`
	Estado   *string `json:"estado" validate:"omitempty,len=2"`
	CEP      *string `json:"cep"`
	Ativo    *bool   `json:"ativo"`
}

// Create registers a new cliente.
//
// @Summary      Create a cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClienteRequest  true  "Cliente details"
// @Success      201   {object}  domain.Cliente
// @Failure      400   {object}  errorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c echo.Context) error {
	var req createClienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cliente, err := h.service.Create(c.Request().Context(), ports.CreateClienteInput{
		Nome:       req.Nome,
		TipoPessoa: req.TipoPessoa,
		CPFCNPJ:    req.CPFCNPJ,
		Telefone:   req.Telefone,
		Email:      req.Email,
		Endereco:   req.Endereco,
		Cidade:     req.Cidade,
		Estado:     req.Estado,
		CEP:        req.CEP,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, cliente)
}

// List returns clientes, optionally filtered by ativo.
//
// @Summary      List clientes
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        ativo  query     bool  false  "Filter by active flag"
// @Param        skip   query     int   false  "Items to skip"
// @Param        limit  query     int   false  "Max items (capped at 100)"
// @Success      200    {array}   domain.Cliente
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c echo.Context) error {
	filter, err := listFilterFromQuery(c)
	if err != nil {
		return err
	}

	clientes, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if clientes == nil {
		clientes = []*domain.Cliente{}
	}

	return c.JSON(http.StatusOK, clientes)
}

// Get returns one cliente by id.
//
// @Summary      Get a cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Cliente ID"
// @Success      200  {object}  domain.Cliente
// @Failure      404  {object}  errorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) Get(c echo.Context) error {
	cliente, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cliente)
}

// Update applies a partial update to a cliente.
//
// @Summary      Update a cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Cliente ID"
// @Param        body  body      updateClienteRequest  true  "Fields to change"
// @Success      200   {object}  domain.Cliente
// @Failure      404   {object}  errorResponse
// @Router       /api/clientes/{id} [patch]
func (h *ClienteHandler) Update(c echo.Context) error {
	var req updateClienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cliente, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ClienteUpdate{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Email:    req.Email,
		Endereco: req.Endereco,
		Cidade:   req.Cidade,
		Estado:   req.Estado,
		CEP:      req.CEP,
		Ativo:    req.Ativo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cliente)
}

// Delete deactivates a cliente.
//
// @Summary      Deactivate a cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Cliente ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Cliente desativado com sucesso"})
}
