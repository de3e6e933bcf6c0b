package interfaces

import (
	"context"
	"time"

	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
)

type UseCase interface {
	HandleWebhook(ctx context.Context, input *model.WebhookInput) error

	SetChannel(ctx context.Context, repoName types.RepoName, channelID types.ChannelID) (*model.ChannelMapping, error)
	UnsetChannel(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error)
	ListChannels(ctx context.Context, channelID types.ChannelID) ([]*model.ChannelMapping, error)

	ResetAISession(ctx context.Context) error
	AISessionCreatedAt(ctx context.Context) (time.Time, error)
}
