package spell

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/spellcore/internal/data"
	"github.com/udisondev/spellcore/internal/testutil"
)

// indexSpells builds a small database with every recursive code.
func indexSpells() []*data.Spell {
	parent := testutil.NewSpell(500, "Focus of the Seventh",
		testutil.FullSlot(data.SPASpellTrigger, 100, 600, 0, 0))
	parent.Category = 7
	parent.Subcategory = 45

	child := testutil.NewSpell(600, "Focus Effect", testutil.Slot(data.SPATotalHP, 100))
	child.CannotBeScribed = true

	groupParent := testutil.NewSpell(501, "Best in Group",
		testutil.FullSlot(data.SPATriggerBestInSpellGrp, 100, 77, 0, 0))
	rank1 := testutil.NewSpell(700, "Rank I", testutil.Slot(data.SPAArmorClass, 10))
	rank1.SpellGroup = 77
	rank2 := testutil.NewSpell(701, "Rank II", testutil.Slot(data.SPAArmorClass, 20))
	rank2.SpellGroup = 77

	nonItem := testutil.NewSpell(502, "Non-item Trigger",
		testutil.FullSlot(data.SPATriggerSpellNonItem, 100, 800, 0, 0))
	target := testutil.NewSpell(800, "Triggered", testutil.Slot(data.SPAArmorClass, 1))

	orphan := testutil.NewSpell(900, "Orphan", testutil.Slot(data.SPAArmorClass, 1))
	orphan.CannotBeScribed = true
	orphan.Category = 3

	return []*data.Spell{parent, child, groupParent, rank1, rank2, nonItem, target, orphan}
}

func TestIndex_NotLoaded(t *testing.T) {
	t.Parallel()

	idx := NewIndex(data.NewSpellTable())
	assert.ErrorIs(t, idx.Populate(context.Background()), ErrSpellsNotLoaded)
	assert.False(t, idx.IsPopulated())

	_, ok := idx.TriggerParent(600)
	assert.False(t, ok)
	assert.Nil(t, idx.SpellByName("anything"))
}

func TestIndex_TriggerParents(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testutil.NewSpellTable(t, indexSpells()...))
	require.NoError(t, idx.Populate(context.Background()))
	assert.True(t, idx.IsPopulated())

	tests := []struct {
		child, parent int
	}{
		{600, 500},
		{700, 501},
		{701, 501},
		{800, 502},
	}
	for _, tt := range tests {
		got, ok := idx.TriggerParent(tt.child)
		assert.True(t, ok, "child %d", tt.child)
		assert.Equal(t, tt.parent, got, "child %d", tt.child)
	}

	_, ok := idx.TriggerParent(500)
	assert.False(t, ok)
	assert.Equal(t, []int{700, 701}, idx.GroupMembers(77))
	assert.Nil(t, idx.GroupMembers(0))
}

func TestIndex_CategoryRedirect(t *testing.T) {
	t.Parallel()

	table := testutil.NewSpellTable(t, indexSpells()...)
	idx := NewIndex(table)

	// Lookups populate on demand.
	assert.Equal(t, 7, idx.Category(table.Spell(600)))
	assert.Equal(t, 45, idx.Subcategory(table.Spell(600)))
	assert.Equal(t, 7, idx.Category(table.Spell(500)))
	assert.Equal(t, 3, idx.Category(table.Spell(900)), "no parent keeps own category")
	assert.Equal(t, 0, idx.Category(nil))
}

func TestIndex_SpellByName(t *testing.T) {
	t.Parallel()

	dup := testutil.NewSpell(950, "rank i", testutil.Slot(data.SPAArmorClass, 1))
	idx := NewIndex(testutil.NewSpellTable(t, append(indexSpells(), dup)...))

	s := idx.SpellByName("RANK I")
	require.NotNil(t, s)
	assert.Equal(t, 700, s.ID, "lowest ID wins")
	assert.Nil(t, idx.SpellByName("Unknown"))
}

func TestIndex_RebuildsOnReload(t *testing.T) {
	t.Parallel()

	table := testutil.NewSpellTable(t, indexSpells()...)
	idx := NewIndex(table)
	require.NoError(t, idx.Populate(context.Background()))

	replacement := testutil.NewSpell(510, "New Parent",
		testutil.FullSlot(data.SPASpellTrigger, 100, 800, 0, 0))
	require.NoError(t, table.Replace([]*data.Spell{replacement, testutil.NewSpell(800, "Triggered")}))
	assert.False(t, idx.IsPopulated(), "new generation")

	parent, ok := idx.TriggerParent(800)
	require.True(t, ok)
	assert.Equal(t, 510, parent)
	_, ok = idx.TriggerParent(600)
	assert.False(t, ok)

	idx.Invalidate()
	assert.False(t, idx.IsPopulated())
}

func TestIndex_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testutil.NewSpellTable(t, indexSpells()...))

	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = idx.TriggerParent(600)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, 500, got)
	}
}

// gatedSource задерживает первый Range до закрытия release.
type gatedSource struct {
	*data.SpellTable
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedSource) Range(fn func(s *data.Spell) bool) {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	g.SpellTable.Range(fn)
}

func TestIndex_CanceledCallerDoesNotFailSharedRebuild(t *testing.T) {
	t.Parallel()

	src := &gatedSource{
		SpellTable: testutil.NewSpellTable(t, indexSpells()...),
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	idx := NewIndex(src)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() { first <- idx.Populate(ctx) }()

	select {
	case <-src.entered:
	case <-time.After(time.Second):
		t.Fatal("rebuild did not start")
	}

	second := make(chan *data.Spell, 1)
	go func() { second <- idx.SpellByName("Focus Effect") }()
	// Даём второму читателю присоединиться к идущей перестройке.
	time.Sleep(20 * time.Millisecond)

	cancel()
	select {
	case err := <-first:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("canceled caller kept waiting")
	}
	close(src.release)

	select {
	case s := <-second:
		require.NotNil(t, s)
		assert.Equal(t, 600, s.ID)
	case <-time.After(time.Second):
		t.Fatal("reader did not get the rebuilt index")
	}
	assert.True(t, idx.IsPopulated())
}

func TestIndex_Watch(t *testing.T) {
	t.Parallel()

	table := data.NewSpellTable()
	idx := NewIndex(table)
	ctx, cancel := testutil.ContextWithCancel(t)

	done := make(chan error, 1)
	go func() { done <- idx.Watch(ctx, 5*time.Millisecond) }()

	require.NoError(t, table.Replace(indexSpells()))
	require.Eventually(t, idx.IsPopulated, time.Second, 5*time.Millisecond)

	require.NoError(t, table.Replace(indexSpells()))
	require.Eventually(t, idx.IsPopulated, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
