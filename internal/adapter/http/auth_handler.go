package http

import (
	"errors"
	"net/http"

	"staff-leave-portal/internal/adapter/middleware"
	"staff-leave-portal/internal/domain/user"
	"staff-leave-portal/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type registerReq struct {
	FullName   string `json:"fullName"   validate:"required,min=2,max=120"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required,min=8"`
	Department string `json:"department" validate:"required,max=120"`
	Role       string `json:"role"       validate:"required,oneof=staff hod"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Register(c.Request().Context(), auth.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		Department: req.Department,
		Role:       user.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
		case errors.Is(err, user.ErrRoleNotAllowed):
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "role not allowed"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, dto)
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	Token string        `json:"token"`
	User  *auth.UserDTO `json:"user"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	token, dto, err := h.uc.Login(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, loginResp{Token: token, User: dto})
}

func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}
	dto, err := h.uc.Me(c.Request().Context(), claims.Sub)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, dto)
}
