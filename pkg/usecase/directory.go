package usecase

import (
	"context"

	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
)

// Channel directory operations behind the /ghnoti command family. Errors are
// passed through untranslated; the gateway decides how to phrase
// repository.ErrAlreadyExists and repository.ErrNotFound for the user.

func (x *UseCase) SetChannel(ctx context.Context, repoName types.RepoName, channelID types.ChannelID) (*model.ChannelMapping, error) {
	return x.clients.Directory().Set(ctx, repoName, channelID)
}

func (x *UseCase) UnsetChannel(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error) {
	return x.clients.Directory().Unset(ctx, repoName)
}

func (x *UseCase) ListChannels(ctx context.Context, channelID types.ChannelID) ([]*model.ChannelMapping, error) {
	return x.clients.Directory().ListByChannel(ctx, channelID)
}
