package handler

import (
	"github.com/labstack/echo/v4"

	"autohost/internal/usecase"
	"autohost/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	buyerID := c.Get("uid").(string)

	order, err := h.orderUseCase.Checkout(c.Request().Context(), buyerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	buyerID := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListMyOrders(c.Request().Context(), buyerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) ListMySales(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	sales, err := h.orderUseCase.ListMySales(c.Request().Context(), sellerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, sales)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID := c.Get("uid").(string)

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
