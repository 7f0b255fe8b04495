package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/spellcore/internal/data"
	"github.com/udisondev/spellcore/internal/testutil"
)

func storedSpells() []*data.Spell {
	port := testutil.NewSpell(10, "Gate to Nexus", testutil.Slot(data.SPATeleport, 152))
	port.TeleportZone = "The Nexus"
	port.TargetType = data.TargetSelf
	port.DurationWindow = true
	port.CannotBeScribed = true

	shield := testutil.NewSpell(3, "Shield of Words",
		testutil.FullSlot(data.SPAArmorClass, 10, 0, 49, 102),
		data.PlaceholderSlot(),
		testutil.FullSlot(data.SPATotalHP, 100, 0, 0, 0))
	shield.SpellGroup = 42
	shield.Category = 125
	shield.Subcategory = 46
	shield.DurationCalc = 3
	shield.DurationMax = 270
	for i := range shield.ClassLevels {
		shield.ClassLevels[i] = data.UnusableClassLevel
	}
	shield.ClassLevels[1] = 49

	dot := testutil.NewSpell(7, "Burn", testutil.Slot(data.SPACurrentHP, -20))
	dot.SpellType = data.SpellTypeDetrimental
	dot.ResistType = 2
	dot.Skill = 24

	return []*data.Spell{port, shield, dot}
}

// testStore проверяет общий контракт Store.
func testStore(ctx context.Context, t *testing.T, store Store) {
	t.Helper()

	fp, err := store.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Empty(t, fp)

	spells, err := store.LoadSpells(ctx)
	require.NoError(t, err)
	assert.Empty(t, spells)

	want := storedSpells()
	require.NoError(t, store.SaveSpells(ctx, want, "abc"))

	got, err := store.LoadSpells(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{3, 7, 10}, []int{got[0].ID, got[1].ID, got[2].ID})
	byID := testutil.NewSpellMap(got...)
	for _, s := range want {
		assert.Equal(t, s, byID.Spell(s.ID), "spell %d", s.ID)
	}
	assert.Equal(t, testutil.NewSpellTable(t, want...).Fingerprint(), data.Fingerprint(got))

	fp, err = store.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", fp)

	// Полная перезапись
	require.NoError(t, store.SaveSpells(ctx, want[:1], "def"))
	got, err = store.LoadSpells(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].ID)

	fp, err = store.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "def", fp)
}

// goose держит dialect и FS в глобальных переменных, поэтому тесты миграций не параллельные.

func TestSQLiteStore(t *testing.T) {
	ctx := testutil.ContextWithTimeout(t, 30*time.Second)

	store, err := Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "spells.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	testStore(ctx, t, store)
}

func TestSQLiteStore_MigrateTwice(t *testing.T) {
	ctx := testutil.ContextWithTimeout(t, 30*time.Second)
	path := filepath.Join(t.TempDir(), "spells.db")

	require.NoError(t, RunMigrations(ctx, DriverSQLite, path))

	store, err := Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	fp, err := store.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Empty(t, fp)
}

func TestPostgresStore(t *testing.T) {
	dsn := testutil.PostgresDSN(t)
	ctx := testutil.ContextWithTimeout(t, 2*time.Minute)

	store, err := Open(ctx, DriverPostgres, dsn)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	testStore(ctx, t, store)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "mysql", "whatever")
	require.ErrorIs(t, err, ErrUnsupportedDriver)

	err = RunMigrations(context.Background(), "mysql", "whatever")
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}
