package config

import (
	"log/slog"

	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/infra/gemini"
	"github.com/urfave/cli/v3"
)

type Gemini struct {
	apiKey string
	model  string
}

func (x *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key. If empty, AI summarization is disabled",
			Category:    "Gemini",
			Destination: &x.apiKey,
			Sources:     cli.EnvVars("JAEMIN_GEMINI_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini model name",
			Category:    "Gemini",
			Destination: &x.model,
			Sources:     cli.EnvVars("JAEMIN_GEMINI_MODEL"),
			Value:       gemini.DefaultModel,
		},
	}
}

// New returns a Gemini client, or nil when no API key is configured.
func (x *Gemini) New() *gemini.Client {
	if x.apiKey == "" {
		return nil
	}

	return gemini.New(types.GeminiAPIKey(x.apiKey), gemini.WithModel(x.model))
}

func (x *Gemini) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("APIKey", types.GeminiAPIKey(x.apiKey)),
		slog.Any("Model", x.model),
	)
}
