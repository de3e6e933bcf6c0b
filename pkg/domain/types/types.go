package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	WebhookSecret  string
	GeminiAPIKey   string
	DiscordToken   string
	DiscordAppID   string
	DiscordGuildID string
	ChannelID      string
	RepoName       string
	RequestID      string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}

func (x GeminiAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GeminiAPIKey) String() string {
	return "***********"
}

func (x DiscordToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DiscordToken) String() string {
	return "***********"
}
