package store

import "github.com/veridoc/veridoc/internal/logger"

// Storages bundles all repository implementations behind their interfaces.
type Storages struct {
	DocumentRepository DocumentRepository
	AdminRepository    AdminRepository
}

// NewStorages constructs every repository on top of the shared database
// handle.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DocumentRepository: NewDocumentRepository(db, log),
		AdminRepository:    NewAdminRepository(db, log),
	}
}
