// Package sqlite provides the durable ChannelDirectory backed by a SQLite
// database file via bun. The repo_name UNIQUE constraint is what enforces the
// one-mapping-per-repository invariant; concurrent Set calls race and the
// constraint rejects the loser.
package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/octagram/jaemin/pkg/domain/interfaces"
	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/repository"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

type channelRecord struct {
	bun.BaseModel `bun:"table:github_webhook_channel,alias:c"`

	ID        int64  `bun:"id,pk,autoincrement"`
	RepoName  string `bun:"repo_name,notnull,unique"`
	ChannelID string `bun:"channel_id,notnull"`
}

func (x *channelRecord) toModel() *model.ChannelMapping {
	return &model.ChannelMapping{
		ID:        x.ID,
		RepoName:  types.RepoName(x.RepoName),
		ChannelID: types.ChannelID(x.ChannelID),
	}
}

// Directory implements interfaces.ChannelDirectory on a SQLite file.
type Directory struct {
	db *bun.DB
}

var _ interfaces.ChannelDirectory = &Directory{}

// New opens (creating if necessary) the SQLite database at path and ensures
// the mapping table exists. The caller owns the returned Directory and must
// Close it on shutdown.
func New(ctx context.Context, path string) (*Directory, error) {
	if path == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "database path is empty")
	}

	sqldb, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, goerr.Wrap(err, "opening sqlite database", goerr.V("path", path))
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if _, err := db.NewCreateTable().
		Model((*channelRecord)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return nil, goerr.Wrap(err, "creating channel mapping table")
	}

	return &Directory{db: db}, nil
}

func (x *Directory) Close() error {
	return x.db.Close()
}

func (x *Directory) Set(ctx context.Context, repoName types.RepoName, channelID types.ChannelID) (*model.ChannelMapping, error) {
	record := &channelRecord{
		RepoName:  string(repoName),
		ChannelID: string(channelID),
	}
	if err := record.toModel().Validate(); err != nil {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "invalid channel mapping", goerr.V("repoName", repoName))
	}

	if _, err := x.db.NewInsert().Model(record).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, goerr.Wrap(repository.ErrAlreadyExists, "mapping already exists",
				goerr.V("repoName", repoName),
			)
		}
		return nil, goerr.Wrap(err, "inserting channel mapping", goerr.V("repoName", repoName))
	}

	return record.toModel(), nil
}

func (x *Directory) Unset(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error) {
	var deleted *model.ChannelMapping

	err := x.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var record channelRecord
		if err := tx.NewSelect().
			Model(&record).
			Where("repo_name = ?", string(repoName)).
			Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return goerr.Wrap(repository.ErrNotFound, "mapping not found",
					goerr.V("repoName", repoName),
				)
			}
			return goerr.Wrap(err, "looking up channel mapping", goerr.V("repoName", repoName))
		}

		if _, err := tx.NewDelete().
			Model((*channelRecord)(nil)).
			Where("repo_name = ?", string(repoName)).
			Exec(ctx); err != nil {
			return goerr.Wrap(err, "deleting channel mapping", goerr.V("repoName", repoName))
		}

		deleted = record.toModel()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

func (x *Directory) ListByChannel(ctx context.Context, channelID types.ChannelID) ([]*model.ChannelMapping, error) {
	var records []channelRecord
	if err := x.db.NewSelect().
		Model(&records).
		Where("channel_id = ?", string(channelID)).
		Order("id ASC").
		Scan(ctx); err != nil {
		return nil, goerr.Wrap(err, "listing channel mappings", goerr.V("channelID", channelID))
	}

	mappings := make([]*model.ChannelMapping, 0, len(records))
	for i := range records {
		mappings = append(mappings, records[i].toModel())
	}

	return mappings, nil
}

func (x *Directory) LookupByRepo(ctx context.Context, repoName types.RepoName) (*model.ChannelMapping, error) {
	var record channelRecord
	if err := x.db.NewSelect().
		Model(&record).
		Where("repo_name = ?", string(repoName)).
		Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "mapping not found",
				goerr.V("repoName", repoName),
			)
		}
		return nil, goerr.Wrap(err, "looking up channel mapping", goerr.V("repoName", repoName))
	}

	return record.toModel(), nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
