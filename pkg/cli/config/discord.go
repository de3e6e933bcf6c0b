package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/infra/discord"
	"github.com/urfave/cli/v3"
)

type Discord struct {
	token   string
	appID   string
	guildID string
}

func (x *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-token",
			Usage:       "Discord bot token",
			Category:    "Discord",
			Destination: &x.token,
			Sources:     cli.EnvVars("JAEMIN_DISCORD_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "discord-app-id",
			Usage:       "Discord application ID",
			Category:    "Discord",
			Destination: &x.appID,
			Sources:     cli.EnvVars("JAEMIN_DISCORD_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "discord-guild-id",
			Usage:       "Discord guild (server) ID the bot is restricted to",
			Category:    "Discord",
			Destination: &x.guildID,
			Sources:     cli.EnvVars("JAEMIN_DISCORD_GUILD_ID"),
		},
	}
}

func (x *Discord) New() (*discord.Client, error) {
	if x.token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "discord-token is required")
	}
	if x.appID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "discord-app-id is required")
	}

	return discord.New(
		types.DiscordToken(x.token),
		types.DiscordAppID(x.appID),
		types.DiscordGuildID(x.guildID),
	)
}

func (x *Discord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Token", types.DiscordToken(x.token)),
		slog.Any("AppID", x.appID),
		slog.Any("GuildID", x.guildID),
	)
}
