package mock

import (
	"context"
	"sync"
	"time"

	"github.com/octagram/jaemin/pkg/domain/interfaces"
	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
)

// UseCaseMock implements interfaces.UseCase for tests.
type UseCaseMock struct {
	HandleWebhookFunc      func(ctx context.Context, input *model.WebhookInput) error
	SetChannelFunc         func(ctx context.Context, repoName types.RepoName, channelID types.ChannelID) (*model.ChannelMapping, error)
	UnsetChannelFunc       func(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error)
	ListChannelsFunc       func(ctx context.Context, channelID types.ChannelID) ([]*model.ChannelMapping, error)
	ResetAISessionFunc     func(ctx context.Context) error
	AISessionCreatedAtFunc func(ctx context.Context) (time.Time, error)

	mu                 sync.Mutex
	HandleWebhookCalls []*model.WebhookInput
}

var _ interfaces.UseCase = &UseCaseMock{}

func (x *UseCaseMock) HandleWebhook(ctx context.Context, input *model.WebhookInput) error {
	x.mu.Lock()
	x.HandleWebhookCalls = append(x.HandleWebhookCalls, input)
	x.mu.Unlock()

	if x.HandleWebhookFunc == nil {
		return nil
	}
	return x.HandleWebhookFunc(ctx, input)
}

func (x *UseCaseMock) SetChannel(ctx context.Context, repoName types.RepoName, channelID types.ChannelID) (*model.ChannelMapping, error) {
	if x.SetChannelFunc == nil {
		return nil, nil
	}
	return x.SetChannelFunc(ctx, repoName, channelID)
}

func (x *UseCaseMock) UnsetChannel(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error) {
	if x.UnsetChannelFunc == nil {
		return nil, nil
	}
	return x.UnsetChannelFunc(ctx, repoName)
}

func (x *UseCaseMock) ListChannels(ctx context.Context, channelID types.ChannelID) ([]*model.ChannelMapping, error) {
	if x.ListChannelsFunc == nil {
		return nil, nil
	}
	return x.ListChannelsFunc(ctx, channelID)
}

func (x *UseCaseMock) ResetAISession(ctx context.Context) error {
	if x.ResetAISessionFunc == nil {
		return nil
	}
	return x.ResetAISessionFunc(ctx)
}

func (x *UseCaseMock) AISessionCreatedAt(ctx context.Context) (time.Time, error) {
	if x.AISessionCreatedAtFunc == nil {
		return time.Time{}, nil
	}
	return x.AISessionCreatedAtFunc(ctx)
}
