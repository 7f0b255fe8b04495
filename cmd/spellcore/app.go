package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/udisondev/spellcore/internal/config"
	"github.com/udisondev/spellcore/internal/data"
	"github.com/udisondev/spellcore/internal/db"
	"github.com/udisondev/spellcore/internal/game/spell"
	"github.com/udisondev/spellcore/internal/game/spell/describe"
	"github.com/udisondev/spellcore/internal/logger"
)

// app wires the spell table and everything that reads it.
type app struct {
	cfg   config.Config
	table *data.SpellTable
	index *spell.Index
}

func newApp(ctx context.Context, c config.Config) (*app, error) {
	a := &app{
		cfg:   c,
		table: data.NewSpellTable(),
	}
	a.index = spell.NewIndex(a.table)

	if err := a.reload(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// reload reads the configured source and replaces the table when its contents changed.
func (a *app) reload(ctx context.Context) error {
	spells, err := loadSpells(ctx, a.cfg)
	if err != nil {
		return err
	}
	if a.table.Loaded() && data.Fingerprint(spells) == a.table.Fingerprint() {
		slog.Debug("spells unchanged")
		return nil
	}
	if err := a.table.Replace(spells); err != nil {
		return fmt.Errorf("replacing spell table: %w", err)
	}
	return nil
}

// loadSpells reads spell definitions from YAML files or the configured store.
func loadSpells(ctx context.Context, c config.Config) ([]*data.Spell, error) {
	if c.Spells.Source == config.SourceDatabase {
		store, err := db.Open(ctx, c.Database.Driver, c.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("opening spell store: %w", err)
		}
		defer store.Close()

		spells, err := store.LoadSpells(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading spells from %s: %w", c.Database.Driver, err)
		}
		return spells, nil
	}

	spells, err := data.LoadSpellFiles(ctx, c.Spells.Files...)
	if err != nil {
		return nil, fmt.Errorf("loading spell files: %w", err)
	}
	return spells, nil
}

// resolve finds a spell by numeric ID or, failing that, by name.
func (a *app) resolve(ctx context.Context, ref string) (*data.Spell, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		if s := a.table.Spell(id); s != nil {
			return s, nil
		}
		return nil, fmt.Errorf("spell %d not found", id)
	}

	if err := a.index.Populate(ctx); err != nil {
		return nil, fmt.Errorf("building spell index: %w", err)
	}
	if s := a.index.SpellByName(ref); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("spell %q not found", ref)
}

func (a *app) describer(session spell.Session) *describe.Describer {
	return describe.New(lookups{table: a.table}, describe.WithSession(session), describe.WithDefaultLevel(a.cfg.Describe.DefaultLevel))
}

// resolver builds a stacking resolver; decision traces go to w when echo is on.
func (a *app) resolver(session spell.Session, verbosity logger.Verbosity, w io.Writer) *spell.Resolver {
	user := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tracer := logger.NewTracer(slog.Default(), user, verbosity)
	return spell.NewResolver(a.table, session,
		spell.WithTracer(tracer),
		spell.WithMaxTriggerDepth(a.cfg.Stacking.MaxTriggerDepth))
}

// lookups adapts the spell table for the describer. There is no string table in
// spell files, so names of factions and zones fall back to IDs.
type lookups struct {
	table *data.SpellTable
}

func (l lookups) Spell(id int) *data.Spell { return l.table.Spell(id) }

func (l lookups) StringResource(int, int) (string, bool) { return "", false }
