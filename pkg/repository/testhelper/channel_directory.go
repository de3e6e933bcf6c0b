package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/octagram/jaemin/pkg/domain/interfaces"
	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/repository"
)

// TestAll runs the shared test cases against any ChannelDirectory
// implementation. Backend packages call this from their own tests.
func TestAll(t *testing.T, dir interfaces.ChannelDirectory) {
	t.Run("SetAndLookup", func(t *testing.T) {
		TestSetAndLookup(t, dir)
	})
	t.Run("DuplicateSet", func(t *testing.T) {
		TestDuplicateSet(t, dir)
	})
	t.Run("Unset", func(t *testing.T) {
		TestUnset(t, dir)
	})
	t.Run("ListByChannel", func(t *testing.T) {
		TestListByChannel(t, dir)
	})
}

func newRepoName() types.RepoName {
	return types.RepoName(fmt.Sprintf("repo-%s", uuid.New().String()[:8]))
}

func newChannelID() types.ChannelID {
	return types.ChannelID(fmt.Sprintf("channel-%s", uuid.New().String()[:8]))
}

func TestSetAndLookup(t *testing.T, dir interfaces.ChannelDirectory) {
	ctx := context.Background()
	repoName := newRepoName()
	channelID := newChannelID()

	created := gt.R1(dir.Set(ctx, repoName, channelID)).NoError(t)
	gt.V(t, created.RepoName).Equal(repoName)
	gt.V(t, created.ChannelID).Equal(channelID)

	found := gt.R1(dir.LookupByRepo(ctx, repoName)).NoError(t)
	gt.V(t, found.ChannelID).Equal(channelID)
	gt.V(t, found.ID).Equal(created.ID)

	t.Run("lookup of unknown repo returns ErrNotFound", func(t *testing.T) {
		_, err := dir.LookupByRepo(ctx, newRepoName())
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestDuplicateSet(t *testing.T, dir interfaces.ChannelDirectory) {
	ctx := context.Background()
	repoName := newRepoName()
	channelID := newChannelID()

	gt.R1(dir.Set(ctx, repoName, channelID)).NoError(t)

	_, err := dir.Set(ctx, repoName, newChannelID())
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	// The original mapping must be unchanged by the failed Set
	found := gt.R1(dir.LookupByRepo(ctx, repoName)).NoError(t)
	gt.V(t, found.ChannelID).Equal(channelID)
}

func TestUnset(t *testing.T, dir interfaces.ChannelDirectory) {
	ctx := context.Background()
	repoName := newRepoName()
	channelID := newChannelID()

	gt.R1(dir.Set(ctx, repoName, channelID)).NoError(t)

	deleted := gt.R1(dir.Unset(ctx, repoName)).NoError(t)
	gt.V(t, deleted.RepoName).Equal(repoName)
	gt.V(t, deleted.ChannelID).Equal(channelID)

	_, err := dir.LookupByRepo(ctx, repoName)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	t.Run("unset of unknown repo returns ErrNotFound", func(t *testing.T) {
		_, err := dir.Unset(ctx, repoName)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("repo can be mapped again after unset", func(t *testing.T) {
		newChannel := newChannelID()
		gt.R1(dir.Set(ctx, repoName, newChannel)).NoError(t)
		found := gt.R1(dir.LookupByRepo(ctx, repoName)).NoError(t)
		gt.V(t, found.ChannelID).Equal(newChannel)
	})
}

func TestListByChannel(t *testing.T, dir interfaces.ChannelDirectory) {
	ctx := context.Background()
	channelID := newChannelID()

	first := newRepoName()
	second := newRepoName()
	gt.R1(dir.Set(ctx, first, channelID)).NoError(t)
	gt.R1(dir.Set(ctx, second, channelID)).NoError(t)
	gt.R1(dir.Set(ctx, newRepoName(), newChannelID())).NoError(t)

	mappings := gt.R1(dir.ListByChannel(ctx, channelID)).NoError(t)
	gt.A(t, mappings).Length(2)
	gt.V(t, mappings[0].RepoName).Equal(first)
	gt.V(t, mappings[1].RepoName).Equal(second)

	t.Run("unknown channel yields empty list", func(t *testing.T) {
		mappings := gt.R1(dir.ListByChannel(ctx, newChannelID())).NoError(t)
		gt.A(t, mappings).Length(0)
	})
}
