package entity

import (
	"sort"
	"time"
)

type Message struct {
	ID            string    `json:"id" firestore:"id"`
	SenderID      string    `json:"sender_id" firestore:"senderId"`
	SenderEmail   string    `json:"sender_email" firestore:"senderEmail"`
	ReceiverID    string    `json:"receiver_id" firestore:"receiverId"`
	ReceiverEmail string    `json:"receiver_email" firestore:"receiverEmail"`
	ProductID     string    `json:"product_id" firestore:"productId"`
	ProductName   string    `json:"product_name" firestore:"productName"`
	Content       string    `json:"content" firestore:"content"`
	Read          bool      `json:"read" firestore:"read"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}

// ConversationKey identifies the conversation this message belongs to:
// the product plus the participant pair, independent of who sent to whom.
func (m *Message) ConversationKey() string {
	pair := []string{m.SenderID, m.ReceiverID}
	sort.Strings(pair)
	return m.ProductID + "-" + pair[0] + "-" + pair[1]
}

// Conversation is derived from the message set on every read; it is never
// stored.
type Conversation struct {
	ProductID             string    `json:"product_id"`
	ProductName           string    `json:"product_name"`
	LastMessage           string    `json:"last_message"`
	LastMessageAt         time.Time `json:"last_message_at"`
	OtherParticipantID    string    `json:"other_participant_id"`
	OtherParticipantEmail string    `json:"other_participant_email"`
	// UnreadCount is always zero; read receipts are not tracked yet.
	UnreadCount int `json:"unread_count"`
}
