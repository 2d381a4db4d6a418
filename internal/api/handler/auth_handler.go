package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/api/middleware"
	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// AuthHandler handles authentication and user management endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerRequest struct {
	Nome    string `json:"nome"  validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Senha   string `json:"senha" validate:"required,min=6"`
	IsAdmin bool   `json:"is_admin"`
}

type updateUserRequest struct {
	Nome    *string `json:"nome"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Senha   *string `json:"senha" validate:"omitempty,min=6"`
	Ativo   *bool   `json:"ativo"`
	IsAdmin *bool   `json:"is_admin"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Senha)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Logout revokes the current bearer token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	jti, _ := c.Get(middleware.CtxTokenJTI).(string)
	exp, _ := c.Get(middleware.CtxTokenExp).(time.Time)

	if jti != "" {
		if err := h.authService.Logout(c.Request().Context(), jti, exp); err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Logout realizado com sucesso"})
}

// Me returns the profile of the authenticated user.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Register creates a new back-office user. Admin only.
//
// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "New user"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Nome:    req.Nome,
		Email:   req.Email,
		Senha:   req.Senha,
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// ListUsers returns all back-office users. Admin only.
//
// @Summary      List users
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Items to skip"
// @Param        limit  query     int  false  "Max items (capped at 100)"
// @Success      200    {array}   domain.User
// @Failure      403    {object}  errorResponse
// @Router       /api/auth/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	skip, limit, err := paginationFromQuery(c)
	if err != nil {
		return err
	}

	users, err := h.authService.ListUsers(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}

	return c.JSON(http.StatusOK, users)
}

// UpdateUser applies a partial update to a user. Admin only. An omitted or
// null senha leaves the stored password untouched.
//
// @Summary      Update a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/auth/users/{id} [patch]
func (h *AuthHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.UpdateUser(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Nome:    req.Nome,
		Email:   req.Email,
		Senha:   req.Senha,
		Ativo:   req.Ativo,
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// DeleteUser deactivates a user account. Admin only; self-deactivation is
// rejected so an admin cannot lock themselves out.
//
// @Summary      Deactivate a user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/auth/users/{id} [delete]
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.authService.DeactivateUser(c.Request().Context(), c.Param("id"), caller.ID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Usuário desativado com sucesso"})
}
