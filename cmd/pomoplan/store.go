package main

import (
	"errors"
	"fmt"

	"github.com/julianstephens/pomoplan/internal/constants"
	errs "github.com/julianstephens/pomoplan/internal/errors"
	"github.com/julianstephens/pomoplan/internal/keyring"
	"github.com/julianstephens/pomoplan/internal/storage"
	"github.com/julianstephens/pomoplan/internal/storage/postgres"
	"github.com/julianstephens/pomoplan/internal/storage/sqlite"
	"github.com/julianstephens/pomoplan/internal/utils"
)

func isPostgres(config string) bool {
	return postgres.IsConnString(config)
}

// openStore picks the storage backend for config. A PostgreSQL connection
// string given on the command line must not carry a password. When config is
// left at its default, a connection string from the environment or keyring
// takes precedence over the default sqlite file.
func openStore(config string) (storage.Provider, error) {
	if isPostgres(config) {
		if ok, err := postgres.ValidateConnString(config); !ok {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, errs.WithHint(err, fmt.Sprintf(
					"store the full connection string with '%s config set-connection', set %s, or use .pgpass",
					constants.AppName, constants.ConnectionEnvVar,
				))
			}
			return nil, err
		}
		return postgres.New(config), nil
	}

	if config == constants.DefaultConfigPath {
		connStr, err := keyring.ResolveConnectionString()
		if err != nil {
			return nil, fmt.Errorf("failed to read connection string: %w", err)
		}
		if connStr != "" {
			if !isPostgres(connStr) {
				return nil, fmt.Errorf("%w: stored connection string is not a PostgreSQL URL or DSN", postgres.ErrInvalidConnectionString)
			}
			return postgres.New(connStr), nil
		}
	}

	path, err := utils.ExpandHome(config)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}
	return sqlite.NewStore(path), nil
}
