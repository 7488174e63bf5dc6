package bot

import (
	"context"
	"fmt"
	"html"

	"github.com/go-telegram/bot/models"

	"github.com/j0lvera/boatbot/internal/ai"
)

const helpText = "Help!"

// replyTo builds a reply to msg's chat. Outside private chats the reply
// quotes the triggering message.
func replyTo(msg Inbound, text string) Reply {
	r := Reply{
		ChatID: msg.ChatID,
		Text:   text,
	}
	if msg.ChatType != models.ChatTypePrivate {
		r.QuoteMessageID = msg.MessageID
	}
	return r
}

// mentionHTML links to the user by id, labelled with their full name.
func mentionHTML(s Sender) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, s.ID, html.EscapeString(s.FullName()))
}

func greet(ctx context.Context, gw Gateway, msg Inbound) error {
	if msg.Sender == nil {
		return nil
	}

	r := replyTo(msg, fmt.Sprintf("Hi %s!", mentionHTML(*msg.Sender)))
	r.ParseMode = models.ParseModeHTML
	r.ForceReply = true

	if err := gw.Send(ctx, r); err != nil {
		return fmt.Errorf("greet: %w", err)
	}
	return nil
}

func help(ctx context.Context, gw Gateway, msg Inbound) error {
	if err := gw.Send(ctx, replyTo(msg, helpText)); err != nil {
		return fmt.Errorf("help: %w", err)
	}
	return nil
}

func echo(ctx context.Context, gw Gateway, msg Inbound) error {
	if err := gw.Send(ctx, replyTo(msg, msg.Text)); err != nil {
		return fmt.Errorf("echo: %w", err)
	}
	return nil
}

func (d *Dispatcher) describePhoto(ctx context.Context, gw Gateway, msg Inbound) error {
	url, err := gw.PhotoURL(ctx, msg.PhotoFileID)
	if err != nil {
		return fmt.Errorf("describe photo: %w", err)
	}

	req := ai.Request{
		Model:     d.model,
		Parts:     []ai.Part{ai.Text(d.prompt), ai.ImageURL(url)},
		MaxTokens: ai.MaxTokens,
	}

	d.log.Info().Int64("chat_id", msg.ChatID).Str("model", d.model).Msg("ai request sending")
	resp, err := d.client.Complete(ctx, req)
	if err != nil {
		return fmt.Errorf("describe photo: %w", err)
	}

	completion, err := resp.First()
	if err != nil {
		return fmt.Errorf("describe photo: %w", err)
	}
	d.log.Info().
		Int64("chat_id", msg.ChatID).
		Int("completions", len(resp.Completions)).
		Msg("ai response received")

	if err := gw.Send(ctx, replyTo(msg, quoteJSON(completion))); err != nil {
		return fmt.Errorf("describe photo: %w", err)
	}
	return nil
}
