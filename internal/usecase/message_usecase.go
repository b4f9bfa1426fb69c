package usecase

import (
	"context"
	"encoding/json"
	"sort"

	"autohost/internal/domain/entity"
	"autohost/internal/domain/repository"
	ws "autohost/internal/infrastructure/websocket"
	"autohost/pkg/errors"
	"autohost/pkg/logger"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	wsManager   *ws.Manager
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	wsManager *ws.Manager,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		wsManager:   wsManager,
	}
}

type SendMessageInput struct {
	ReceiverID    string
	ReceiverEmail string
	ProductID     string
	ProductName   string
	Content       string
}

func (uc *MessageUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	if senderID == input.ReceiverID {
		return nil, errors.BadRequest("You cannot send a message to yourself", nil)
	}

	sender, err := uc.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	receiverEmail := input.ReceiverEmail
	if receiverEmail == "" {
		receiver, err := uc.userRepo.GetByID(ctx, input.ReceiverID)
		if err != nil {
			return nil, errors.NotFound("Receiver", err)
		}
		receiverEmail = receiver.Email
	}

	message := &entity.Message{
		SenderID:      senderID,
		SenderEmail:   sender.Email,
		ReceiverID:    input.ReceiverID,
		ReceiverEmail: receiverEmail,
		ProductID:     input.ProductID,
		ProductName:   input.ProductName,
		Content:       input.Content,
		Read:          false,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	uc.notifyReceiver(message)

	return message, nil
}

// notifyReceiver pushes the new message to the receiver's open WebSocket
// connection, best-effort.
func (uc *MessageUseCase) notifyReceiver(message *entity.Message) {
	if uc.wsManager == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":    "message",
		"message": message,
	})
	if err != nil {
		logger.Warn("failed to marshal message notification: %v", err)
		return
	}

	uc.wsManager.SendToUser(message.ReceiverID, payload)
}

// ListConversations derives the user's conversation summaries from the full
// set of messages they sent or received. Conversations are never stored; the
// list always reflects the message set at read time.
func (uc *MessageUseCase) ListConversations(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	sent, err := uc.messageRepo.ListBySender(ctx, userID)
	if err != nil {
		return nil, err
	}

	received, err := uc.messageRepo.ListByReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The two sets are disjoint: a message has exactly one sender and one
	// receiver, and self-messages are rejected on send.
	return DeriveConversations(append(sent, received...), userID), nil
}

// DeriveConversations groups messages by (product, participant pair) and
// keeps the newest message of each group as the conversation summary,
// regardless of input order. A message with a zero timestamp sorts as oldest
// instead of failing the request. On an exact timestamp tie the summary seen
// first is kept; no secondary sort key exists.
func DeriveConversations(messages []*entity.Message, userID string) []*entity.Conversation {
	byKey := make(map[string]*entity.Conversation, len(messages))

	for _, msg := range messages {
		key := msg.ConversationKey()

		conv, ok := byKey[key]
		if !ok {
			otherID, otherEmail := msg.ReceiverID, msg.ReceiverEmail
			if msg.SenderID != userID {
				otherID, otherEmail = msg.SenderID, msg.SenderEmail
			}

			byKey[key] = &entity.Conversation{
				ProductID:             msg.ProductID,
				ProductName:           msg.ProductName,
				LastMessage:           msg.Content,
				LastMessageAt:         msg.CreatedAt,
				OtherParticipantID:    otherID,
				OtherParticipantEmail: otherEmail,
				UnreadCount:           0,
			}
			continue
		}

		if msg.CreatedAt.After(conv.LastMessageAt) {
			conv.LastMessage = msg.Content
			conv.LastMessageAt = msg.CreatedAt
		}
	}

	conversations := make([]*entity.Conversation, 0, len(byKey))
	for _, conv := range byKey {
		conversations = append(conversations, conv)
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessageAt.After(conversations[j].LastMessageAt)
	})

	return conversations
}

// GetThread returns the chronological exchange between the user and one other
// participant about one product.
func (uc *MessageUseCase) GetThread(ctx context.Context, userID, productID, otherUserID string) ([]*entity.Message, error) {
	if productID == "" || otherUserID == "" {
		return nil, errors.BadRequest("Product and participant are required", nil)
	}

	return uc.messageRepo.ListThread(ctx, productID, userID, otherUserID)
}
