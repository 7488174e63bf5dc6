package bot

import (
	"context"
	"fmt"

	tbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/j0lvera/boatbot/internal/ai"
	"github.com/j0lvera/boatbot/internal/config"
)

type Params struct {
	fx.In

	Config *config.Config
	Client ai.Client
	Logger zerolog.Logger
}

type Result struct {
	fx.Out

	Bot *tbot.Bot
}

func New(lc fx.Lifecycle, p Params) (Result, error) {
	log := p.Logger
	dispatcher := NewDispatcher(p.Client, p.Config.Model, p.Config.Prompts.Describe, &log)

	opts := []tbot.Option{
		tbot.WithDefaultHandler(dispatcher.HandleUpdate),
		tbot.WithErrorsHandler(func(err error) {
			log.Error().Err(err).Msg("telegram polling error")
		}),
		tbot.WithSkipGetMe(),
	}
	if p.Config.TelegramServerURL != "" {
		opts = append(opts, tbot.WithServerURL(p.Config.TelegramServerURL))
	}

	tg, err := tbot.New(p.Config.Token, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("unable to create telegram bot: %w", err)
	}

	var cancel context.CancelFunc
	done := make(chan struct{})

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				me, err := tg.GetMe(ctx)
				if err != nil {
					return fmt.Errorf("unable to reach telegram: %w", err)
				}
				dispatcher.SetUsername(me.Username)

				log.Info().Str("username", me.Username).Msg("starting telegram bot...")
				var runCtx context.Context
				runCtx, cancel = context.WithCancel(context.Background())
				go func() {
					defer close(done)
					tg.Start(runCtx)
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				log.Info().Msg("stopping telegram bot...")
				if cancel == nil {
					return nil
				}
				cancel()

				// wait for the poll loop to exit
				select {
				case <-done:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			},
		},
	)

	return Result{
		Bot: tg,
	}, nil
}

func Module() fx.Option {
	return fx.Module(
		"bot",
		fx.Provide(
			New,
		),
		fx.Invoke(
			func(bot *tbot.Bot) {},
		),
	)
}
