package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/db"
	"github.com/seuhd/campus-coffee/internal/model"
)

// posNameConstraint is the UNIQUE(name) constraint created by the migration.
const posNameConstraint = "pos_name_key"

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	zap.L().Debug("postgres pool ready", zap.Int32("max_conns", maxConns), zap.Int32("min_conns", minConns))
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS pos (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL CONSTRAINT pos_name_key UNIQUE,
	description  TEXT,
	type         TEXT NOT NULL,
	campus       TEXT NOT NULL,
	street       TEXT,
	house_number TEXT,
	postal_code  INTEGER,
	city         TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_pos_campus ON pos(campus);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.pool.Ping(ctx), "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

// Clear deletes every POS and restarts the id sequence.
func (s *PostgresStore) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `TRUNCATE TABLE pos RESTART IDENTITY`)
	return eris.Wrap(err, "postgres: clear pos")
}

func (s *PostgresStore) GetAll(ctx context.Context) ([]model.Pos, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+posColumns+` FROM pos ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list pos")
	}
	defer rows.Close()

	var out []model.Pos
	for rows.Next() {
		p, err := scanPos(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan pos")
		}
		out = append(out, *p)
	}
	return out, eris.Wrap(rows.Err(), "postgres: iterate pos")
}

func (s *PostgresStore) GetByID(ctx context.Context, id int64) (*model.Pos, error) {
	p, err := scanPos(s.pool.QueryRow(ctx, `SELECT `+posColumns+` FROM pos WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &model.PosNotFoundError{ID: id}
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get pos %d", id)
	}
	return p, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, p model.Pos) (*model.Pos, error) {
	now := time.Now().UTC()

	if p.ID == nil {
		var id int64
		err := s.pool.QueryRow(ctx,
			`INSERT INTO pos (name, description, type, campus, street, house_number, postal_code, city, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
			p.Name, p.Description, string(p.Type), string(p.Campus), p.Street, p.HouseNumber, p.PostalCode, p.City, now, now,
		).Scan(&id)
		if err != nil {
			return nil, s.writeError(err, p, "postgres: insert pos")
		}
		p.ID = &id
		p.CreatedAt = now
		p.UpdatedAt = now
		return &p, nil
	}

	var createdAt time.Time
	err := s.pool.QueryRow(ctx,
		`UPDATE pos SET name = $1, description = $2, type = $3, campus = $4, street = $5, house_number = $6,
		 postal_code = $7, city = $8, updated_at = $9 WHERE id = $10 RETURNING created_at`,
		p.Name, p.Description, string(p.Type), string(p.Campus), p.Street, p.HouseNumber, p.PostalCode, p.City, now, *p.ID,
	).Scan(&createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &model.PosNotFoundError{ID: *p.ID}
	}
	if err != nil {
		return nil, s.writeError(err, p, "postgres: update pos")
	}
	p.CreatedAt = createdAt
	p.UpdatedAt = now
	return &p, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM pos WHERE id = $1`, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete pos %d", id)
	}
	if tag.RowsAffected() == 0 {
		return &model.PosNotFoundError{ID: id}
	}
	return nil
}

func (s *PostgresStore) writeError(err error, p model.Pos, msg string) error {
	if db.IsUniqueViolation(err, posNameConstraint) {
		return &model.DuplicateNameError{Name: p.Name}
	}
	return eris.Wrap(err, msg)
}

func scanPos(row scannable) (*model.Pos, error) {
	var (
		p      model.Pos
		id     int64
		typ    string
		campus string
	)
	if err := row.Scan(&id, &p.Name, &p.Description, &typ, &campus, &p.Street, &p.HouseNumber,
		&p.PostalCode, &p.City, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.ID = &id
	p.Type = model.PosType(typ)
	p.Campus = model.CampusType(campus)
	return &p, nil
}
