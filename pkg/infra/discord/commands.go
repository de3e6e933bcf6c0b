package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/repository"
	"github.com/octagram/jaemin/pkg/utils/logging"
)

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ghnoti",
			Description: "Manage GitHub webhook notification channels",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "command",
					Description: "Subcommand (set, unset, list)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "repo",
					Description: "Repository name",
					Required:    false,
				},
			},
		},
		{
			Name:        "aireset",
			Description: "Reset the Gemini chat session",
		},
		{
			Name:        "aistatus",
			Description: "Show information about the current Gemini session",
		},
		{
			Name:        "date",
			Description: "Debug: show the server's current local time",
		},
	}
}

// DeployCommands registers the slash commands against the configured guild,
// replacing whatever was registered before.
func (x *Client) DeployCommands(ctx context.Context) error {
	commands, err := x.session.ApplicationCommandBulkOverwrite(string(x.appID), string(x.guildID), commandDefinitions())
	if err != nil {
		return goerr.Wrap(err, "registering application commands", goerr.V("guildID", x.guildID))
	}

	logging.From(ctx).Info("registered application commands", slog.Int("count", len(commands)))
	return nil
}

func (x *Client) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if string(x.guildID) != "" && i.GuildID != string(x.guildID) {
		return
	}

	ctx := context.Background()
	data := i.ApplicationCommandData()

	switch data.Name {
	case "ghnoti":
		x.handleGhNoti(ctx, i, data)
	case "aireset":
		x.handleAIReset(ctx, i)
	case "aistatus":
		x.handleAIStatus(ctx, i)
	case "date":
		now := time.Now()
		x.reply(i, fmt.Sprintf("%s (%d)", now.Format("2006-01-02 15:04:05 MST"), now.Hour()), false)
	default:
		logging.From(ctx).Warn("unknown command", slog.String("name", data.Name))
	}
}

func (x *Client) handleGhNoti(ctx context.Context, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	channelID := types.ChannelID(i.ChannelID)
	if channelID == "" {
		x.reply(i, "Could not determine the current channel.", true)
		return
	}

	subCommand := stringOption(data, "command")
	repoName := types.RepoName(stringOption(data, "repo"))

	switch subCommand {
	case "set":
		if repoName == "" {
			x.reply(i, "Please provide a repository name.", true)
			return
		}
		if _, err := x.uc.SetChannel(ctx, repoName, channelID); err != nil {
			logging.From(ctx).Error("fail to set notification channel", slog.Any("error", err))
			if errors.Is(err, repository.ErrAlreadyExists) {
				x.reply(i, fmt.Sprintf("Notifications for `%s` are already configured.", repoName), true)
			} else {
				x.reply(i, "Failed to configure notifications.", true)
			}
			return
		}
		x.reply(i, fmt.Sprintf("Notifications for `%s` will be sent to this channel.", repoName), false)

	case "unset":
		if repoName == "" {
			x.reply(i, "Please provide a repository name.", true)
			return
		}
		if _, err := x.uc.UnsetChannel(ctx, repoName); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				x.reply(i, fmt.Sprintf("No notifications are configured for `%s`.", repoName), true)
			} else {
				logging.From(ctx).Error("fail to unset notification channel", slog.Any("error", err))
				x.reply(i, "Failed to remove notifications.", true)
			}
			return
		}
		x.reply(i, fmt.Sprintf("Notifications for `%s` have been removed.", repoName), false)

	case "list":
		mappings, err := x.uc.ListChannels(ctx, channelID)
		if err != nil {
			logging.From(ctx).Error("fail to list notification channels", slog.Any("error", err))
			x.reply(i, "Failed to list repositories.", true)
			return
		}
		if len(mappings) == 0 {
			x.reply(i, "No repositories notify this channel.", true)
			return
		}
		lines := make([]string, 0, len(mappings))
		for idx, mapping := range mappings {
			lines = append(lines, fmt.Sprintf("%d. `%s`", idx+1, mapping.RepoName))
		}
		x.reply(i, "Repositories notifying this channel:\n"+strings.Join(lines, "\n"), false)

	default:
		x.reply(i, "Unknown subcommand. Use set, unset or list.", true)
	}
}

func (x *Client) handleAIReset(ctx context.Context, i *discordgo.InteractionCreate) {
	if err := x.uc.ResetAISession(ctx); err != nil {
		logging.From(ctx).Error("fail to reset AI session", slog.Any("error", err))
		x.reply(i, "Failed to reset the AI session.", true)
		return
	}
	x.reply(i, "AI session reset.", false)
}

func (x *Client) handleAIStatus(ctx context.Context, i *discordgo.InteractionCreate) {
	createdAt, err := x.uc.AISessionCreatedAt(ctx)
	if err != nil || createdAt.IsZero() {
		x.reply(i, "Gemini session: no information.", true)
		return
	}
	x.reply(i, fmt.Sprintf("Gemini session created at: %s", createdAt.Format("2006-01-02 15:04:05 MST")), false)
}

func (x *Client) reply(i *discordgo.InteractionCreate, content string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	if err := x.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}); err != nil {
		logging.Default().Error("fail to respond to interaction", slog.Any("error", err))
	}
}

func stringOption(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, opt := range data.Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}
