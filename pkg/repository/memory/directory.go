// Package memory provides an in-memory ChannelDirectory. It backs tests and
// local runs without a database file; the SQLite backend is the durable one.
package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/octagram/jaemin/pkg/domain/interfaces"
	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/repository"
)

type directory struct {
	mu     sync.RWMutex
	nextID int64
	byRepo map[types.RepoName]*model.ChannelMapping
	order  []types.RepoName
}

// New creates a new in-memory channel directory
func New() interfaces.ChannelDirectory {
	return &directory{
		byRepo: make(map[types.RepoName]*model.ChannelMapping),
	}
}

func (x *directory) Set(ctx context.Context, repoName types.RepoName, channelID types.ChannelID) (*model.ChannelMapping, error) {
	mapping := &model.ChannelMapping{
		RepoName:  repoName,
		ChannelID: channelID,
	}
	if err := mapping.Validate(); err != nil {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "invalid channel mapping", goerr.V("repoName", repoName))
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if _, exists := x.byRepo[repoName]; exists {
		return nil, goerr.Wrap(repository.ErrAlreadyExists, "mapping already exists",
			goerr.V("repoName", repoName),
		)
	}

	x.nextID++
	mapping.ID = x.nextID
	x.byRepo[repoName] = mapping
	x.order = append(x.order, repoName)

	return copyMapping(mapping), nil
}

func (x *directory) Unset(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	mapping, exists := x.byRepo[repoName]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "mapping not found",
			goerr.V("repoName", repoName),
		)
	}

	delete(x.byRepo, repoName)
	for i, name := range x.order {
		if name == repoName {
			x.order = append(x.order[:i], x.order[i+1:]...)
			break
		}
	}

	return copyMapping(mapping), nil
}

func (x *directory) ListByChannel(ctx context.Context, channelID types.ChannelID) ([]*model.ChannelMapping, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var mappings []*model.ChannelMapping
	for _, name := range x.order {
		if m := x.byRepo[name]; m != nil && m.ChannelID == channelID {
			mappings = append(mappings, copyMapping(m))
		}
	}

	return mappings, nil
}

func (x *directory) LookupByRepo(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	mapping, exists := x.byRepo[repoName]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "mapping not found",
			goerr.V("repoName", repoName),
		)
	}

	return copyMapping(mapping), nil
}

func copyMapping(src *model.ChannelMapping) *model.ChannelMapping {
	dst := *src
	return &dst
}
