package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/udisondev/spellcore/internal/data"
)

// SQLiteStore хранит спеллы в файле SQLite (modernc.org/sqlite, без cgo).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database file at path.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	// Одно соединение: PRAGMA действуют на соединение, а запись в SQLite всё равно последовательная.
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("executing %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: sqlDB}, nil
}

// Migrate applies the embedded migrations over the open connection.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	return migrate(ctx, s.db, "sqlite3")
}

// Close closes the database file.
func (s *SQLiteStore) Close() {
	if err := s.db.Close(); err != nil {
		slog.Warn("closing sqlite store", "error", err)
	}
}

// LoadSpells загружает все спеллы с эффектами и уровнями классов.
func (s *SQLiteStore) LoadSpells(ctx context.Context) ([]*data.Spell, error) {
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

func (s *SQLiteStore) each(ctx context.Context, query string, fn func(scanner) error) error {
	rows, err := s.db.QueryContext(ctx, query)
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

// SaveSpells сохраняет все спеллы (полная перезапись) в одной транзакции.
// Вставка через подготовленные выражения: COPY в SQLite нет.
func (s *SQLiteStore) SaveSpells(ctx context.Context, spells []*data.Spell, fingerprint string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM spells`); err != nil {
		return fmt.Errorf("deleting existing spells: %w", err)
	}

	insSpell, err := tx.PrepareContext(ctx, insertSQL("spells", spellColumns))
	if err != nil {
		return fmt.Errorf("preparing spell insert: %w", err)
	}
	defer insSpell.Close()
	insEffect, err := tx.PrepareContext(ctx, insertSQL("spell_effects", effectColumns))
	if err != nil {
		return fmt.Errorf("preparing effect insert: %w", err)
	}
	defer insEffect.Close()
	insClass, err := tx.PrepareContext(ctx, insertSQL("spell_classes", classColumns))
	if err != nil {
		return fmt.Errorf("preparing class insert: %w", err)
	}
	defer insClass.Close()

	for _, sp := range spells {
		if _, err := insSpell.ExecContext(ctx, spellValues(sp)...); err != nil {
			return fmt.Errorf("inserting spell %d: %w", sp.ID, err)
		}
		for _, row := range effectRows(sp) {
			if _, err := insEffect.ExecContext(ctx, row...); err != nil {
				return fmt.Errorf("inserting effect for spell %d: %w", sp.ID, err)
			}
		}
		for _, row := range classRows(sp) {
			if _, err := insClass.ExecContext(ctx, row...); err != nil {
				return fmt.Errorf("inserting class level for spell %d: %w", sp.ID, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO spell_metadata (name, value) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value`,
		metaFingerprint, fingerprint,
	); err != nil {
		return fmt.Errorf("saving fingerprint: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing spells save: %w", err)
	}

	slog.Debug("saved spells", "store", DriverSQLite, "count", len(spells))
	return nil
}

// Fingerprint returns "" if nothing was saved yet.
func (s *SQLiteStore) Fingerprint(ctx context.Context) (string, error) {
	var fp string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM spell_metadata WHERE name = ?`, metaFingerprint,
	).Scan(&fp)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying fingerprint: %w", err)
	}
	return fp, nil
}

// insertSQL builds a positional INSERT for columns.
func insertSQL(table string, columns []string) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), marks)
}
