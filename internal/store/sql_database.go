// SPDX-License-Identifier: Apache-2.0

// Package store implements the metadata persistence layer of the document
// registry. The database is a convenience cache next to the ledger: it
// holds descriptive fields and cached status projections, never the
// authoritative registration facts.
package store

import (
	"database/sql"

	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/migrations"
)

// DB wraps the raw database handle together with the driver name (needed
// to pick the migration dialect) and the retry classifier for the backend.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
