// Package db persists spell definitions in PostgreSQL or SQLite.
package db

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/udisondev/spellcore/internal/data"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrUnsupportedDriver is returned for a driver other than postgres or sqlite.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// metaFingerprint is the spell_metadata row holding the digest of the stored spell set.
const metaFingerprint = "fingerprint"

// Store loads and saves the full spell set.
type Store interface {
	// LoadSpells returns every stored spell sorted by ID.
	LoadSpells(ctx context.Context) ([]*data.Spell, error)
	// SaveSpells replaces the stored spell set (полная перезапись в одной транзакции).
	SaveSpells(ctx context.Context, spells []*data.Spell, fingerprint string) error
	// Fingerprint returns the digest recorded by the last SaveSpells, "" if none.
	Fingerprint(ctx context.Context) (string, error)
	Close()
}

// Open connects to the store for driver and applies migrations.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case DriverPostgres:
		if err := RunMigrations(ctx, driver, dsn); err != nil {
			return nil, err
		}
		return NewPostgresStore(ctx, dsn)
	case DriverSQLite:
		s, err := NewSQLiteStore(ctx, dsn)
		if err != nil {
			return nil, err
		}
		if err := s.Migrate(ctx); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("driver %q: %w", driver, ErrUnsupportedDriver)
}

const (
	selectSpells = `
		SELECT id, name, spell_group, spell_type, duration_window, target_type,
		       cannot_be_scribed, category, subcategory, resist_type,
		       duration_calc, duration_max, teleport_zone, skill
		FROM spells
		ORDER BY id`
	selectEffects = `SELECT spell_id, slot, attrib, base, base2, max_value, calc FROM spell_effects`
	selectClasses = `SELECT spell_id, class, level FROM spell_classes`
)

var (
	spellColumns = []string{
		"id", "name", "spell_group", "spell_type", "duration_window", "target_type",
		"cannot_be_scribed", "category", "subcategory", "resist_type",
		"duration_calc", "duration_max", "teleport_zone", "skill",
	}
	effectColumns = []string{"spell_id", "slot", "attrib", "base", "base2", "max_value", "calc"}
	classColumns  = []string{"spell_id", "class", "level"}
)

// scanner is satisfied by both pgx.Rows and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// spellSet assembles spells from the three tables.
type spellSet struct {
	byID    map[int]*data.Spell
	ordered []*data.Spell
}

func newSpellSet() *spellSet {
	return &spellSet{byID: make(map[int]*data.Spell)}
}

func (b *spellSet) scanSpell(row scanner) error {
	var (
		id, group, spellType, target, category, subcategory int
		resist, durCalc, durMax, skill                      int
		name, zone                                          string
		window, noScribe                                    bool
	)
	if err := row.Scan(&id, &name, &group, &spellType, &window, &target,
		&noScribe, &category, &subcategory, &resist,
		&durCalc, &durMax, &zone, &skill); err != nil {
		return fmt.Errorf("scanning spell row: %w", err)
	}

	s := data.NewSpell(id, name)
	s.SpellGroup = group
	s.SpellType = data.SpellType(spellType)
	s.DurationWindow = window
	s.TargetType = data.TargetType(target)
	s.CannotBeScribed = noScribe
	s.Category = category
	s.Subcategory = subcategory
	s.ResistType = resist
	s.DurationCalc = durCalc
	s.DurationMax = durMax
	s.TeleportZone = zone
	s.Skill = skill

	b.byID[id] = s
	b.ordered = append(b.ordered, s)
	return nil
}

func (b *spellSet) scanEffect(row scanner) error {
	var spellID, slot int
	var e data.EffectSlot
	if err := row.Scan(&spellID, &slot, &e.Attrib, &e.Base, &e.Base2, &e.Max, &e.Calc); err != nil {
		return fmt.Errorf("scanning effect row: %w", err)
	}
	s, ok := b.byID[spellID]
	if !ok {
		return nil
	}
	if slot < 0 || slot >= data.MaxEffectSlots {
		return fmt.Errorf("spell %d slot %d: %w", spellID, slot, data.ErrTooManyEffects)
	}
	s.Effects[slot] = e
	return nil
}

func (b *spellSet) scanClass(row scanner) error {
	var spellID, class, level int
	if err := row.Scan(&spellID, &class, &level); err != nil {
		return fmt.Errorf("scanning class row: %w", err)
	}
	if s, ok := b.byID[spellID]; ok && class >= 1 && class <= data.NumClasses {
		s.ClassLevels[class-1] = level
	}
	return nil
}

func (b *spellSet) spells() []*data.Spell {
	slices.SortFunc(b.ordered, func(a, c *data.Spell) int { return a.ID - c.ID })
	return b.ordered
}

func spellValues(s *data.Spell) []any {
	return []any{
		s.ID, s.Name, s.SpellGroup, int(s.SpellType), s.DurationWindow, int(s.TargetType),
		s.CannotBeScribed, s.Category, s.Subcategory, s.ResistType,
		s.DurationCalc, s.DurationMax, s.TeleportZone, s.Skill,
	}
}

// effectRows returns the non-placeholder slots of s.
func effectRows(s *data.Spell) [][]any {
	rows := make([][]any, 0, data.MaxEffectSlots)
	for i, e := range s.Effects {
		if e.IsPlaceholder() {
			continue
		}
		rows = append(rows, []any{s.ID, i, e.Attrib, e.Base, e.Base2, e.Max, e.Calc})
	}
	return rows
}

// classRows returns the classes that can scribe s.
func classRows(s *data.Spell) [][]any {
	var rows [][]any
	for i, lvl := range s.ClassLevels {
		if lvl == data.UnusableClassLevel {
			continue
		}
		rows = append(rows, []any{s.ID, i + 1, lvl})
	}
	return rows
}
