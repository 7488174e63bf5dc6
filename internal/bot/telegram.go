package bot

import (
	"context"
	"fmt"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// TelegramGateway implements Gateway on top of the Telegram Bot API client.
type TelegramGateway struct {
	tg *tbot.Bot
}

func NewTelegramGateway(tg *tbot.Bot) *TelegramGateway {
	return &TelegramGateway{tg: tg}
}

// Send delivers r with sendMessage.
func (g *TelegramGateway) Send(ctx context.Context, r Reply) error {
	params := &tbot.SendMessageParams{
		ChatID:    r.ChatID,
		Text:      r.Text,
		ParseMode: r.ParseMode,
	}
	if r.ForceReply {
		params.ReplyMarkup = &models.ForceReply{
			ForceReply: true,
			Selective:  true,
		}
	}
	if r.QuoteMessageID != 0 {
		params.ReplyParameters = &models.ReplyParameters{
			MessageID: r.QuoteMessageID,
		}
	}

	if _, err := g.tg.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("unable to send message to chat %d: %w", r.ChatID, err)
	}
	return nil
}

// PhotoURL resolves a file id to its download link.
func (g *TelegramGateway) PhotoURL(ctx context.Context, fileID string) (string, error) {
	file, err := g.tg.GetFile(ctx, &tbot.GetFileParams{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("unable to get file %s: %w", fileID, err)
	}
	return g.tg.FileDownloadLink(file), nil
}
