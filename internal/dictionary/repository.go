package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// EntryRepository defines operations for managing dictionary entries in
// an external store.
type EntryRepository interface {
	FindAll(ctx context.Context) ([]Entry, error)
	FindByEnglish(ctx context.Context, english string) (*Entry, error)
	Upsert(ctx context.Context, entry Entry) error
}

// DBEntryRepository implements EntryRepository using MySQL.
type DBEntryRepository struct {
	db *sqlx.DB
}

// NewDBEntryRepository creates a new DBEntryRepository.
func NewDBEntryRepository(db *sqlx.DB) *DBEntryRepository {
	return &DBEntryRepository{db: db}
}

// FindAll returns all dictionary entries ordered by the English key.
func (r *DBEntryRepository) FindAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := r.db.SelectContext(ctx, &entries,
		"SELECT english, kannada FROM dictionary_entries ORDER BY english"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(dictionary_entries) > %w", err)
	}
	return entries, nil
}

// FindByEnglish returns a dictionary entry by its English key, or nil if not found.
func (r *DBEntryRepository) FindByEnglish(ctx context.Context, english string) (*Entry, error) {
	var entry Entry
	err := r.db.GetContext(ctx, &entry,
		"SELECT english, kannada FROM dictionary_entries WHERE english = ?", english)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(dictionary_entry) > %w", err)
	}
	return &entry, nil
}

// Upsert inserts or updates a dictionary entry.
func (r *DBEntryRepository) Upsert(ctx context.Context, entry Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dictionary_entries (english, kannada)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE kannada = VALUES(kannada)`,
		entry.English, entry.Kannada)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert dictionary_entry) > %w", err)
	}
	return nil
}
