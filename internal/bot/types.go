package bot

import (
	"context"

	"github.com/go-telegram/bot/models"
)

// Kind is the shape of an inbound message, and decides which handler runs.
type Kind int

const (
	KindOther Kind = iota
	KindCommand
	KindText
	KindPhoto
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindText:
		return "text"
	case KindPhoto:
		return "photo"
	default:
		return "other"
	}
}

// Sender identifies the user who sent a message.
type Sender struct {
	ID        int64
	FirstName string
	LastName  string
}

// FullName is the first name followed by the last name, if there is one.
func (s Sender) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// Inbound is one message delivered by the gateway, reduced to what the handlers read.
type Inbound struct {
	Kind      Kind
	ChatID    int64
	ChatType  models.ChatType
	MessageID int
	Sender    *Sender

	// Text is the message text, or the caption for photos.
	Text string

	// Command is the lower-cased command name without the slash. It is empty
	// when the command was addressed to another bot.
	Command string

	// PhotoFileID is the file id of the largest available photo size.
	PhotoFileID string
}

// Reply is one outbound message.
type Reply struct {
	ChatID     int64
	Text       string
	ParseMode  models.ParseMode
	ForceReply bool

	// QuoteMessageID, when non-zero, sends the reply as a reply to that message.
	QuoteMessageID int
}

// Gateway is the part of the messaging platform client the handlers use.
type Gateway interface {
	Send(ctx context.Context, reply Reply) error
	PhotoURL(ctx context.Context, fileID string) (string, error)
}
