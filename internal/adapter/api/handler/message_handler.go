package handler

import (
	"github.com/labstack/echo/v4"

	"autohost/internal/usecase"
	"autohost/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type sendMessageRequest struct {
	ReceiverID    string `json:"receiver_id" validate:"required"`
	ReceiverEmail string `json:"receiver_email"`
	ProductID     string `json:"product_id" validate:"required"`
	ProductName   string `json:"product_name"`
	Content       string `json:"content" validate:"required"`
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	senderID := c.Get("uid").(string)

	message, err := h.messageUseCase.SendMessage(c.Request().Context(), senderID, usecase.SendMessageInput{
		ReceiverID:    req.ReceiverID,
		ReceiverEmail: req.ReceiverEmail,
		ProductID:     req.ProductID,
		ProductName:   req.ProductName,
		Content:       req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *MessageHandler) ListConversations(c echo.Context) error {
	userID := c.Get("uid").(string)

	conversations, err := h.messageUseCase.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversations)
}

func (h *MessageHandler) GetThread(c echo.Context) error {
	userID := c.Get("uid").(string)

	messages, err := h.messageUseCase.GetThread(
		c.Request().Context(),
		userID,
		c.Param("productId"),
		c.Param("otherUserId"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}
