package config

import (
	"context"
	"log/slog"

	"github.com/octagram/jaemin/pkg/repository/sqlite"
	"github.com/urfave/cli/v3"
)

type SQLite struct {
	dbPath string
}

func (x *SQLite) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db-path",
			Usage:       "Path to SQLite database file",
			Category:    "Database",
			Destination: &x.dbPath,
			Sources:     cli.EnvVars("JAEMIN_DB_PATH"),
			Value:       "jaemin.db",
		},
	}
}

func (x *SQLite) NewDirectory(ctx context.Context) (*sqlite.Directory, error) {
	return sqlite.New(ctx, x.dbPath)
}

func (x *SQLite) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("DBPath", x.dbPath),
	)
}
