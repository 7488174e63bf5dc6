package main

import (
	"github.com/j0lvera/boatbot/internal/ai"
	"github.com/j0lvera/boatbot/internal/bot"
	"github.com/j0lvera/boatbot/internal/config"
	"github.com/j0lvera/boatbot/internal/log"
	"go.uber.org/fx"
)

func main() {

	fx.New(
		config.Module(),
		ai.Module(),
		bot.Module(),
		log.Module(),
	).Run()
}
