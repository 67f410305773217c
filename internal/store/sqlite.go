package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/seuhd/campus-coffee/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS pos (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT NOT NULL UNIQUE,
	description  TEXT,
	type         TEXT NOT NULL,
	campus       TEXT NOT NULL,
	street       TEXT,
	house_number TEXT,
	postal_code  INTEGER,
	city         TEXT NOT NULL,
	created_at   DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_pos_campus ON pos(campus);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.db.PingContext(ctx), "sqlite: ping")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM pos`)
	return eris.Wrap(err, "sqlite: clear pos")
}

func (s *SQLiteStore) GetAll(ctx context.Context) ([]model.Pos, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+posColumns+` FROM pos ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list pos")
	}
	defer rows.Close()

	var out []model.Pos
	for rows.Next() {
		p, err := scanPos(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan pos")
		}
		out = append(out, *p)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate pos")
}

func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (*model.Pos, error) {
	p, err := scanPos(s.db.QueryRowContext(ctx, `SELECT `+posColumns+` FROM pos WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &model.PosNotFoundError{ID: id}
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get pos %d", id)
	}
	return p, nil
}

func (s *SQLiteStore) Upsert(ctx context.Context, p model.Pos) (*model.Pos, error) {
	now := time.Now().UTC()

	if p.ID == nil {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO pos (name, description, type, campus, street, house_number, postal_code, city, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.Description, string(p.Type), string(p.Campus), p.Street, p.HouseNumber, p.PostalCode, p.City, now, now,
		)
		if err != nil {
			return nil, writeErrorSQLite(err, p, "sqlite: insert pos")
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: last insert id")
		}
		p.ID = &id
		p.CreatedAt = now
		p.UpdatedAt = now
		return &p, nil
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE pos SET name = ?, description = ?, type = ?, campus = ?, street = ?, house_number = ?,
		 postal_code = ?, city = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Description, string(p.Type), string(p.Campus), p.Street, p.HouseNumber, p.PostalCode, p.City, now, *p.ID,
	)
	if err != nil {
		return nil, writeErrorSQLite(err, p, "sqlite: update pos")
	}
	if err := checkRowsAffected(res, *p.ID); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, *p.ID)
}

func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pos WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete pos %d", id)
	}
	return checkRowsAffected(res, id)
}

func writeErrorSQLite(err error, p model.Pos, msg string) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed: pos.name") {
		return &model.DuplicateNameError{Name: p.Name}
	}
	return eris.Wrap(err, msg)
}

func checkRowsAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return &model.PosNotFoundError{ID: id}
	}
	return nil
}
