package chat

import "time"

// SendMessageCommand is a message sending intent from one user to another.
type SendMessageCommand struct {
	SenderID    string `validate:"required,excludesall=0x3A"`
	RecipientID string `validate:"required,excludesall=0x3A"`
	Body        string `validate:"required"`
	CreatedAt   time.Time
}

// GetHistoryCommand asks for the messages of a pair conversation with
// sequence number strictly greater than SinceSeq.
type GetHistoryCommand struct {
	UserID   string `validate:"required,excludesall=0x3A"`
	OtherID  string `validate:"required,excludesall=0x3A"`
	SinceSeq uint64
}

// SearchHistoryCommand runs a full-text query scoped to a pair conversation.
type SearchHistoryCommand struct {
	UserID  string `validate:"required,excludesall=0x3A"`
	OtherID string `validate:"required,excludesall=0x3A"`
	Query   string `validate:"required"`
}
