package handler

import (
	ws "autohost/internal/infrastructure/websocket"
	"autohost/internal/usecase"
)

var (
	authHandler      *AuthHandler
	userHandler      *UserHandler
	productHandler   *ProductHandler
	messageHandler   *MessageHandler
	cartHandler      *CartHandler
	orderHandler     *OrderHandler
	webSocketHandler *WebSocketHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	messageUseCase *usecase.MessageUseCase,
	cartUseCase *usecase.CartUseCase,
	orderUseCase *usecase.OrderUseCase,
	firebaseAuth usecase.FirebaseAuthClient,
	wsManager *ws.Manager,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	webSocketHandler = NewWebSocketHandler(wsManager, firebaseAuth)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}
