package models

// MessageRequest is the payload for POST /api/messages.
type MessageRequest struct {
	SenderID   int64  `json:"senderId" validate:"required"`
	ReceiverID int64  `json:"receiverId" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

func NewMessageRequest(senderID, receiverID int64, content string) (MessageRequest, error) {
	req := MessageRequest{SenderID: senderID, ReceiverID: receiverID, Content: content}
	if err := Validate(req); err != nil {
		return MessageRequest{}, err
	}
	return req, nil
}

// Message is a user-to-user message as returned by the backend.
type Message struct {
	ID         int64  `json:"id"`
	SenderID   int64  `json:"senderId"`
	ReceiverID int64  `json:"receiverId"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt,omitempty"`
}
