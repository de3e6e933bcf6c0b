package mock

import (
	"context"

	"github.com/octagram/jaemin/pkg/domain/interfaces"
	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
)

// ChannelDirectoryMock implements interfaces.ChannelDirectory for tests.
type ChannelDirectoryMock struct {
	SetFunc           func(ctx context.Context, repoName types.RepoName, channelID types.ChannelID) (*model.ChannelMapping, error)
	UnsetFunc         func(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error)
	ListByChannelFunc func(ctx context.Context, channelID types.ChannelID) ([]*model.ChannelMapping, error)
	LookupByRepoFunc  func(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error)
}

var _ interfaces.ChannelDirectory = &ChannelDirectoryMock{}

func (x *ChannelDirectoryMock) Set(ctx context.Context, repoName types.RepoName, channelID types.ChannelID) (*model.ChannelMapping, error) {
	return x.SetFunc(ctx, repoName, channelID)
}

func (x *ChannelDirectoryMock) Unset(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error) {
	return x.UnsetFunc(ctx, repoName)
}

func (x *ChannelDirectoryMock) ListByChannel(ctx context.Context, channelID types.ChannelID) ([]*model.ChannelMapping, error) {
	return x.ListByChannelFunc(ctx, channelID)
}

func (x *ChannelDirectoryMock) LookupByRepo(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error) {
	return x.LookupByRepoFunc(ctx, repoName)
}
