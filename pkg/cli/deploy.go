package cli

import (
	"context"

	"github.com/octagram/jaemin/pkg/cli/config"
	"github.com/octagram/jaemin/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func deployCommandsCommand() *cli.Command {
	var discordCfg config.Discord

	return &cli.Command{
		Name:  "deploy-commands",
		Usage: "Register the bot's slash commands with Discord",
		Flags: discordCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("deploying commands", "Discord", discordCfg)

			disc, err := discordCfg.New()
			if err != nil {
				return err
			}

			return disc.DeployCommands(ctx)
		},
	}
}
