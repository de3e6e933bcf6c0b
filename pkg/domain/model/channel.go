package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/octagram/jaemin/pkg/domain/types"
)

// ChannelMapping binds one repository name to the Discord channel that
// receives its notifications. RepoName is unique across mappings; a channel
// may host mappings for many repositories. Mappings are created by "set" and
// destroyed by "unset", never mutated in place.
type ChannelMapping struct {
	ID        int64
	RepoName  types.RepoName
	ChannelID types.ChannelID
}

func (x *ChannelMapping) Validate() error {
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo name is empty")
	}
	if x.ChannelID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "channel ID is empty")
	}
	return nil
}
