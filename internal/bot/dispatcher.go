package bot

import (
	"context"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/j0lvera/boatbot/internal/ai"
)

// Dispatcher routes each inbound message to exactly one handler.
type Dispatcher struct {
	client   ai.Client
	model    string
	prompt   string
	username string
	log      *zerolog.Logger
}

// NewDispatcher creates a Dispatcher that describes photos with client, using
// model and the describe prompt.
func NewDispatcher(client ai.Client, model, prompt string, log *zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		client: client,
		model:  model,
		prompt: prompt,
		log:    log,
	}
}

// SetUsername records the bot's own username for /cmd@username matching.
// It must be called before the poll loop starts.
func (d *Dispatcher) SetUsername(username string) {
	d.username = username
}

// HandleUpdate is the Telegram client's default handler. Handler errors are
// logged and never reported back to the chat.
func (d *Dispatcher) HandleUpdate(ctx context.Context, tg *tbot.Bot, update *models.Update) {
	msg := FromUpdate(update, d.username)

	if err := d.Dispatch(ctx, NewTelegramGateway(tg), msg); err != nil {
		d.log.Error().
			Err(err).
			Int64("chat_id", msg.ChatID).
			Stringer("kind", msg.Kind).
			Str("command", msg.Command).
			Msg("unable to handle message")
	}
}

// Dispatch runs the handler for msg.Kind. Unhandled shapes are a no-op.
func (d *Dispatcher) Dispatch(ctx context.Context, gw Gateway, msg Inbound) error {
	d.log.Debug().
		Int64("chat_id", msg.ChatID).
		Stringer("kind", msg.Kind).
		Str("command", msg.Command).
		Msg("message received")

	switch msg.Kind {
	case KindPhoto:
		return d.describePhoto(ctx, gw, msg)
	case KindCommand:
		switch msg.Command {
		case "start":
			return greet(ctx, gw, msg)
		case "help":
			return help(ctx, gw, msg)
		}
		return nil
	case KindText:
		return echo(ctx, gw, msg)
	case KindOther:
		return nil
	}
	return nil
}
