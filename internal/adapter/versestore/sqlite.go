package versestore

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go sqlite driver

	"scriptureref/internal/domain"
	"scriptureref/internal/port"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS verses (
	version_id TEXT    NOT NULL,
	book_id    INTEGER NOT NULL,
	chapter    INTEGER NOT NULL,
	verse      INTEGER NOT NULL,
	text       TEXT    NOT NULL,
	PRIMARY KEY (version_id, book_id, chapter, verse)
);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) GetVerses(ctx context.Context, versionID string, bookID, chapter int) ([]domain.Verse, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT verse, text FROM verses
		 WHERE version_id = ? AND book_id = ? AND chapter = ?
		 ORDER BY verse`,
		versionID, bookID, chapter)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %d:%d: %w", versionID, bookID, chapter, err)
	}
	defer rows.Close()

	var verses []domain.Verse
	for rows.Next() {
		var v domain.Verse
		if err := rows.Scan(&v.Number, &v.Text); err != nil {
			return nil, err
		}
		verses = append(verses, v)
	}
	return verses, rows.Err()
}

func (s *SQLiteStore) PutVerses(ctx context.Context, versionID string, bookID, chapter int, verses []domain.Verse) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM verses WHERE version_id = ? AND book_id = ? AND chapter = ?`,
		versionID, bookID, chapter); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO verses (version_id, book_id, chapter, verse, text) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, v := range verses {
		if _, err := stmt.ExecContext(ctx, versionID, bookID, chapter, v.Number, v.Text); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) ListVersions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT version_id FROM verses ORDER BY version_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func (s *SQLiteStore) DeleteVersion(ctx context.Context, versionID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM verses WHERE version_id = ?`, versionID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", port.ErrVersionNotFound, versionID)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
