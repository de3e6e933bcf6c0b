// Package discord is the chat-gateway adapter. It is a thin layer over the
// discordgo SDK: it delivers rendered notifications as embeds and maps the
// slash-command surface onto usecases. No pipeline logic lives here.
package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/octagram/jaemin/pkg/domain/interfaces"
	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/utils/logging"
)

type Client struct {
	session *discordgo.Session
	appID   types.DiscordAppID
	guildID types.DiscordGuildID
	uc      interfaces.UseCase
}

var _ interfaces.ChatGateway = &Client{}

func New(token types.DiscordToken, appID types.DiscordAppID, guildID types.DiscordGuildID) (*Client, error) {
	session, err := discordgo.New("Bot " + string(token))
	if err != nil {
		return nil, goerr.Wrap(err, "creating discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	return &Client{
		session: session,
		appID:   appID,
		guildID: guildID,
	}, nil
}

// BindUseCase attaches the usecase layer the slash commands dispatch into.
// It must be called before Start.
func (x *Client) BindUseCase(uc interfaces.UseCase) {
	x.uc = uc
}

// Start opens the gateway connection and installs the interaction handler.
func (x *Client) Start(ctx context.Context) error {
	x.session.AddHandler(x.handleInteraction)
	x.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logging.From(ctx).Info("discord gateway ready",
			"user", r.User.String(),
		)
	})

	if err := x.session.Open(); err != nil {
		return goerr.Wrap(err, "opening discord gateway")
	}

	return nil
}

func (x *Client) Close() error {
	return x.session.Close()
}

// SendNotification delivers a rendered notification as an embed. The target
// must exist and be a guild text channel; anything else is an error for the
// caller to log and drop.
func (x *Client) SendNotification(ctx context.Context, channelID types.ChannelID, notify *model.Notification) error {
	channel, err := x.session.Channel(string(channelID))
	if err != nil {
		return goerr.Wrap(err, "fetching channel", goerr.V("channelID", channelID))
	}
	if channel.Type != discordgo.ChannelTypeGuildText {
		return goerr.New("channel is not a guild text channel",
			goerr.V("channelID", channelID),
			goerr.V("type", channel.Type),
		)
	}

	if _, err := x.session.ChannelMessageSendEmbed(string(channelID), toEmbed(notify)); err != nil {
		return goerr.Wrap(err, "sending embed", goerr.V("channelID", channelID))
	}

	return nil
}

func toEmbed(notify *model.Notification) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       notify.Title,
		URL:         notify.URL,
		Description: notify.Description,
		Color:       notify.Color,
	}

	if notify.AuthorName != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    notify.AuthorName,
			IconURL: notify.AuthorIconURL,
			URL:     notify.AuthorURL,
		}
	}
	if notify.FooterText != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: notify.FooterText,
		}
	}
	if !notify.Timestamp.IsZero() {
		embed.Timestamp = notify.Timestamp.Format("2006-01-02T15:04:05Z07:00")
	}

	for _, field := range notify.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}

	return embed
}
