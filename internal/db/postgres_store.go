package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/spellcore/internal/data"
)

// PostgresStore хранит спеллы в PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL. Migrations are applied separately (RunMigrations).
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the database connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// LoadSpells загружает все спеллы с эффектами и уровнями классов.
func (s *PostgresStore) LoadSpells(ctx context.Context) ([]*data.Spell, error) {
	set := newSpellSet()

	if err := s.each(ctx, selectSpells, set.scanSpell); err != nil {
		return nil, fmt.Errorf("loading spells: %w", err)
	}
	if err := s.each(ctx, selectEffects, set.scanEffect); err != nil {
		return nil, fmt.Errorf("loading spell effects: %w", err)
	}
	if err := s.each(ctx, selectClasses, set.scanClass); err != nil {
		return nil, fmt.Errorf("loading spell classes: %w", err)
	}

	return set.spells(), nil
}

func (s *PostgresStore) each(ctx context.Context, query string, fn func(scanner) error) error {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("querying: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}
	return nil
}

// SaveSpells сохраняет все спеллы (полная перезапись).
// Удаляет старые, вставляет новые через COPY в одной транзакции.
func (s *PostgresStore) SaveSpells(ctx context.Context, spells []*data.Spell, fingerprint string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// Rollback after commit is expected to fail
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM spells`); err != nil {
		return fmt.Errorf("deleting existing spells: %w", err)
	}

	spellRows := make([][]any, 0, len(spells))
	var effects, classes [][]any
	for _, sp := range spells {
		spellRows = append(spellRows, spellValues(sp))
		effects = append(effects, effectRows(sp)...)
		classes = append(classes, classRows(sp)...)
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"spells"}, spellColumns, pgx.CopyFromRows(spellRows)); err != nil {
		return fmt.Errorf("inserting spells: %w", err)
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"spell_effects"}, effectColumns, pgx.CopyFromRows(effects)); err != nil {
		return fmt.Errorf("inserting spell effects: %w", err)
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"spell_classes"}, classColumns, pgx.CopyFromRows(classes)); err != nil {
		return fmt.Errorf("inserting spell classes: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO spell_metadata (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`,
		metaFingerprint, fingerprint,
	); err != nil {
		return fmt.Errorf("saving fingerprint: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing spells save: %w", err)
	}

	slog.Debug("saved spells", "store", DriverPostgres, "count", len(spells), "effects", len(effects))
	return nil
}

// Fingerprint returns "" if nothing was saved yet.
func (s *PostgresStore) Fingerprint(ctx context.Context) (string, error) {
	var fp string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM spell_metadata WHERE name = $1`, metaFingerprint,
	).Scan(&fp)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying fingerprint: %w", err)
	}
	return fp, nil
}
