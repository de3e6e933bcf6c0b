package interfaces

import (
	"context"

	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
)

// ChannelDirectory is the persisted mapping from repository name to
// notification channel. Set fails with repository.ErrAlreadyExists when the
// repository already has a mapping; the uniqueness invariant is enforced by
// the storage layer, not by callers.
type ChannelDirectory interface {
	Set(ctx context.Context, repoName types.RepoName, channelID types.ChannelID) (*model.ChannelMapping, error)
	Unset(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error)
	ListByChannel(ctx context.Context, channelID types.ChannelID) ([]*model.ChannelMapping, error)
	LookupByRepo(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error)
}
