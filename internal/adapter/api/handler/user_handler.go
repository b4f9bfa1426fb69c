package handler

import (
	"github.com/labstack/echo/v4"

	"autohost/internal/domain/entity"
	"autohost/internal/usecase"
	"autohost/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updateProfileRequest struct {
	FullName     string          `json:"full_name"`
	Phone        string          `json:"phone"`
	BusinessName string          `json:"business_name"`
	RFC          string          `json:"rfc"`
	Clabe        string          `json:"clabe"`
	Address      *addressRequest `json:"address"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	input := usecase.UpdateProfileInput{
		FullName:     req.FullName,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
		RFC:          req.RFC,
		Clabe:        req.Clabe,
	}
	if req.Address != nil {
		input.Address = &entity.Address{
			Street: req.Address.Street,
			City:   req.Address.City,
			State:  req.Address.State,
			Zip:    req.Address.Zip,
		}
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
