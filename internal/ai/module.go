package ai

import (
	"github.com/j0lvera/boatbot/internal/config"
	"go.uber.org/fx"
)

// Params for creating an inference client
type Params struct {
	fx.In

	Config *config.Config
}

// Result of creating an inference client
type Result struct {
	fx.Out

	Client Client
}

// New creates the inference client once for the whole process.
func New(p Params) (Result, error) {
	client, err := NewOpenAIClient(p.Config.APIKey, p.Config.BaseURL, p.Config.Model)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Client: client,
	}, nil
}

// Module provides the inference client
func Module() fx.Option {
	return fx.Module(
		"ai",
		fx.Provide(
			New,
		),
	)
}
