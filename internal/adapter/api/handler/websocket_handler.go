package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "autohost/internal/infrastructure/websocket"
	"autohost/internal/usecase"
	"autohost/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	manager      *ws.Manager
	firebaseAuth usecase.FirebaseAuthClient
}

func NewWebSocketHandler(manager *ws.Manager, firebaseAuth usecase.FirebaseAuthClient) *WebSocketHandler {
	return &WebSocketHandler{
		manager:      manager,
		firebaseAuth: firebaseAuth,
	}
}

// Handle upgrades the connection after verifying the ID token passed as a
// query parameter. Browsers cannot set headers on WebSocket handshakes.
func (h *WebSocketHandler) Handle(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "token query parameter is required")
	}

	uid, err := h.firebaseAuth.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("websocket upgrade failed for %s: %v", uid, err)
		return err
	}

	client := &ws.Client{
		UserID: uid,
		Conn:   conn,
		Send:   make(chan []byte, 64),
	}

	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
