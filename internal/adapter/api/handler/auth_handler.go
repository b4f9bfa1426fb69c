package handler

import (
	"github.com/labstack/echo/v4"

	"autohost/internal/domain/entity"
	"autohost/internal/usecase"
	"autohost/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type addressRequest struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type registerRequest struct {
	Email        string         `json:"email" validate:"required,email"`
	Password     string         `json:"password" validate:"required,min=6"`
	FullName     string         `json:"full_name" validate:"required"`
	Phone        string         `json:"phone"`
	Role         string         `json:"role" validate:"required,oneof=buyer seller"`
	BusinessName string         `json:"business_name"`
	RFC          string         `json:"rfc"`
	Clabe        string         `json:"clabe"`
	Address      addressRequest `json:"address"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         req.Role,
		BusinessName: req.BusinessName,
		RFC:          req.RFC,
		Clabe:        req.Clabe,
		Address: entity.Address{
			Street: req.Address.Street,
			City:   req.Address.City,
			State:  req.Address.State,
			Zip:    req.Address.Zip,
		},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
