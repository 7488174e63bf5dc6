package bot

import (
	"strings"

	"github.com/go-telegram/bot/models"
)

// FromUpdate classifies a Telegram update. botUsername is used to reject
// commands of the form /cmd@otherbot; an empty username accepts any suffix.
func FromUpdate(update *models.Update, botUsername string) Inbound {
	if update == nil || update.Message == nil {
		return Inbound{Kind: KindOther}
	}
	m := update.Message

	in := Inbound{
		ChatID:    m.Chat.ID,
		ChatType:  m.Chat.Type,
		MessageID: m.ID,
	}
	if m.From != nil {
		in.Sender = &Sender{
			ID:        m.From.ID,
			FirstName: m.From.FirstName,
			LastName:  m.From.LastName,
		}
	}

	switch {
	case len(m.Photo) > 0:
		in.Kind = KindPhoto
		in.Text = m.Caption
		in.PhotoFileID = m.Photo[len(m.Photo)-1].FileID
	case isCommand(m):
		in.Kind = KindCommand
		in.Text = m.Text
		in.Command = commandName(m, botUsername)
	case m.Text != "":
		in.Kind = KindText
		in.Text = m.Text
	default:
		in.Kind = KindOther
	}

	return in
}

// isCommand reports whether the message starts with a bot_command entity.
func isCommand(m *models.Message) bool {
	if len(m.Entities) == 0 {
		return false
	}
	e := m.Entities[0]
	return e.Type == models.MessageEntityTypeBotCommand && e.Offset == 0
}

func commandName(m *models.Message, botUsername string) string {
	end := m.Entities[0].Length
	if end > len(m.Text) || end <= 0 {
		end = len(m.Text)
	}
	name := strings.TrimPrefix(m.Text[:end], "/")

	if cmd, target, ok := strings.Cut(name, "@"); ok {
		if botUsername != "" && !strings.EqualFold(target, botUsername) {
			return ""
		}
		name = cmd
	}

	return strings.ToLower(name)
}
