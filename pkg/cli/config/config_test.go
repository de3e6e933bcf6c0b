package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/octagram/jaemin/pkg/cli/config"
)

func TestDiscordFlags(t *testing.T) {
	discordConfig := &config.Discord{}
	flags := discordConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}

	gt.True(t, names["discord-token"])
	gt.True(t, names["discord-app-id"])
	gt.True(t, names["discord-guild-id"])
}

func TestDiscordNew(t *testing.T) {
	t.Run("fails without token", func(t *testing.T) {
		discordConfig := &config.Discord{}
		_, err := discordConfig.New()
		gt.Error(t, err)
	})
}

func TestGeminiFlags(t *testing.T) {
	geminiConfig := &config.Gemini{}
	flags := geminiConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}

	gt.True(t, names["gemini-api-key"])
	gt.True(t, names["gemini-model"])
}

func TestGeminiNew(t *testing.T) {
	t.Run("returns nil without api key", func(t *testing.T) {
		geminiConfig := &config.Gemini{}
		gt.V(t, geminiConfig.New() == nil).Equal(true)
	})
}

func TestSQLiteFlags(t *testing.T) {
	sqliteConfig := &config.SQLite{}
	flags := sqliteConfig.Flags()

	gt.V(t, len(flags)).Equal(1)
	gt.V(t, flags[0].Names()[0]).Equal("db-path")
}
