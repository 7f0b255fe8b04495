package spell

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/spellcore/internal/data"
	"github.com/udisondev/spellcore/internal/logger"
	"github.com/udisondev/spellcore/internal/testutil"
)

func newTestResolver(spells ...*data.Spell) *Resolver {
	return NewResolver(testutil.NewSpellMap(spells...), NewStaticSession(60))
}

func TestStacks_SameSpell(t *testing.T) {
	t.Parallel()
	r := newTestResolver()

	blocker := testutil.NewSpell(50, "blocker",
		testutil.FullSlot(data.SPAStackingBlock, data.SPATotalHP, 1, 0, 0),
		testutil.Slot(data.SPATotalHP, 50))

	for _, s := range []*data.Spell{testutil.Fixtures.ArmorBuff, testutil.Fixtures.HPBuffA, testutil.Fixtures.Empty, blocker} {
		assert.True(t, r.Stacks(s, s, false, false), "spell %d", s.ID)
		assert.True(t, r.Stacks(s, s, true, true), "spell %d", s.ID)
	}
}

func TestStacks_SameEffectConflicts(t *testing.T) {
	t.Parallel()
	r := newTestResolver()

	assert.False(t, r.Stacks(testutil.Fixtures.HPBuffA, testutil.Fixtures.HPBuffB, false, false))
	assert.False(t, r.Stacks(testutil.Fixtures.HPBuffB, testutil.Fixtures.HPBuffA, false, false))
}

func TestStacks_BlockDirectiveIsAsymmetric(t *testing.T) {
	t.Parallel()
	r := newTestResolver()

	a := testutil.NewSpell(100, "Shield", testutil.Slot(data.SPAArmorClass, 5))
	b := testutil.NewSpell(101, "Shield Blocker",
		testutil.FullSlot(data.SPAStackingBlock, data.SPAArmorClass, 1, 0, 0))

	assert.False(t, r.Stacks(a, b, false, false), "b blocks a's slot 1 unconditionally")
	assert.True(t, r.Stacks(b, a, false, false), "a carries no directive")
}

func TestStacks_BlockThreshold(t *testing.T) {
	t.Parallel()
	r := newTestResolver()

	b := testutil.NewSpell(201, "Blocks small AC",
		testutil.FullSlot(data.SPAStackingBlock, data.SPAArmorClass, 1, 20, 0))

	small := testutil.NewSpell(202, "small", testutil.Slot(data.SPAArmorClass, 10))
	big := testutil.NewSpell(203, "big", testutil.Slot(data.SPAArmorClass, 30))
	other := testutil.NewSpell(204, "other attrib", testutil.Slot(data.SPATotalHP, 10))

	assert.False(t, r.Stacks(small, b, false, false))
	assert.True(t, r.Stacks(big, b, false, false))
	assert.True(t, r.Stacks(other, b, false, false))
}

func TestStacks_OverwriteSlotFromCalc(t *testing.T) {
	t.Parallel()
	r := newTestResolver()

	a := testutil.NewSpell(210, "a", testutil.Slot(data.SPAArmorClass, 10))
	b := testutil.NewSpell(211, "b",
		testutil.FullSlot(data.SPAStackingOverwrite, data.SPAArmorClass, 0, 0, 201))

	assert.False(t, r.Stacks(a, b, false, false))
}

func TestStacks_EmptySpell(t *testing.T) {
	t.Parallel()
	r := newTestResolver()

	empty := testutil.Fixtures.Empty
	other := testutil.NewSpell(1100, "also empty")
	assert.True(t, r.Stacks(empty, testutil.Fixtures.HPBuffA, false, false))
	assert.True(t, r.Stacks(testutil.Fixtures.HPBuffA, empty, false, false))
	assert.True(t, r.Stacks(empty, other, false, false))
}

func TestStacks_NilSpells(t *testing.T) {
	t.Parallel()
	r := newTestResolver()

	assert.False(t, r.Stacks(nil, testutil.Fixtures.HPBuffA, false, false))
	assert.False(t, r.Stacks(testutil.Fixtures.HPBuffA, nil, false, false))
	assert.False(t, r.Stacks(nil, nil, false, false))
}

func TestStacks_FailsOpenWithoutCharacter(t *testing.T) {
	t.Parallel()

	a, b := testutil.Fixtures.HPBuffA, testutil.Fixtures.HPBuffB
	sess := testutil.NewMockSession(60)
	r := NewResolver(testutil.NewSpellMap(), sess)
	assert.False(t, r.Stacks(a, b, false, false))

	sess.SetZoning(true)
	assert.True(t, r.Stacks(a, b, false, false), "zoning")
	sess.SetZoning(false)

	sess.SetInGame(false)
	assert.True(t, r.Stacks(a, b, false, false), "not in game")

	assert.True(t, NewResolver(nil, StaticSession{Playing: true}).Stacks(a, b, false, false), "no character")
	assert.True(t, NewResolver(nil, nil).Stacks(a, b, false, false), "no session")
}

func TestStacks_SameEffectExceptions(t *testing.T) {
	t.Parallel()
	r := newTestResolver()

	tests := []struct {
		name string
		a, b *data.Spell
	}{
		{
			"dot next to heal",
			testutil.NewSpell(300, "heal", testutil.Slot(data.SPACurrentHP, 100)),
			testutil.NewSpell(301, "dot", testutil.Slot(data.SPACurrentHP, -20)),
		},
		{
			"self-only hp once",
			selfTarget(testutil.NewSpell(302, "self hp", testutil.Slot(data.SPACurrentHPOnce, 10))),
			testutil.NewSpell(303, "hp", testutil.Slot(data.SPACurrentHPOnce, 10)),
		},
		{
			"charisma placeholder",
			testutil.NewSpell(304, "cha zero", testutil.Slot(data.SPACharisma, 0)),
			testutil.NewSpell(305, "cha", testutil.Slot(data.SPACharisma, 15)),
		},
		{
			"levitate ignored",
			testutil.NewSpell(306, "lev a", testutil.Slot(data.SPALevitate, 1)),
			testutil.NewSpell(307, "lev b", testutil.Slot(data.SPALevitate, 1)),
		},
		{
			"limit ignored",
			testutil.NewSpell(308, "limit a", testutil.Slot(data.SPALimitEffect, 0)),
			testutil.NewSpell(309, "limit b", testutil.Slot(data.SPALimitEffect, 0)),
		},
		{
			"different duration windows",
			testutil.NewSpell(310, "short", testutil.Slot(data.SPATotalHP, 10)),
			durationWindow(testutil.NewSpell(311, "long", testutil.Slot(data.SPATotalHP, 10))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, r.Stacks(tt.a, tt.b, false, false))
		})
	}
}

func TestStacks_DetrimentalIgnoresDurationWindow(t *testing.T) {
	t.Parallel()
	r := newTestResolver()

	a := testutil.NewSpell(320, "snare a", testutil.Slot(data.SPAMovementSpeed, -30))
	b := durationWindow(testutil.NewSpell(321, "snare b", testutil.Slot(data.SPAMovementSpeed, -30)))
	a.SpellType = data.SpellTypeDetrimental
	b.SpellType = data.SpellTypeDetrimental

	assert.False(t, r.Stacks(a, b, false, false))
}

func TestStacks_TriggerChain(t *testing.T) {
	t.Parallel()

	procA := testutil.NewSpell(2001, "proc a", testutil.Slot(data.SPATotalHP, 50))
	blocker := testutil.NewSpell(2002, "proc b",
		testutil.FullSlot(data.SPAStackingBlock, data.SPATotalHP, 1, 0, 0))
	harmless := testutil.NewSpell(2003, "proc c", testutil.Slot(data.SPAArmorClass, 5))

	a := testutil.NewSpell(400, "a", testutil.Slot(data.SPAAddProc, procA.ID))
	b := testutil.NewSpell(401, "b", testutil.FullSlot(data.SPAApplyEffect, 0, blocker.ID, 0, 0))
	c := testutil.NewSpell(402, "c", testutil.FullSlot(data.SPAApplyEffect, 0, harmless.ID, 0, 0))

	r := newTestResolver(procA, blocker, harmless)

	assert.False(t, r.Stacks(a, b, false, false), "triggered spells conflict")
	assert.True(t, r.Stacks(a, b, true, false), "triggers ignored")
	assert.True(t, r.Stacks(a, c, false, false))
}

func TestStacks_TriggerToSelfIsSkipped(t *testing.T) {
	t.Parallel()

	a := testutil.NewSpell(410, "self proc", testutil.Slot(data.SPAAddProc, 410))
	b := testutil.NewSpell(411, "plain", testutil.Slot(data.SPAArmorClass, 5))
	r := newTestResolver(a, b)

	assert.True(t, r.Stacks(a, b, false, false))
}

func TestStacks_UnknownTriggerTarget(t *testing.T) {
	t.Parallel()

	a := testutil.NewSpell(415, "missing proc", testutil.Slot(data.SPAAddMeleeProc, 99999))
	b := testutil.NewSpell(416, "plain", testutil.Slot(data.SPAArmorClass, 5))
	r := newTestResolver(a, b)

	assert.True(t, r.Stacks(a, b, false, false))
}

func TestStacks_TriggerCycle(t *testing.T) {
	t.Parallel()

	a := testutil.NewSpell(420, "a", testutil.Slot(data.SPAAddProc, 421))
	b := testutil.NewSpell(421, "b", testutil.FullSlot(data.SPAApplyEffect, 0, 420, 0, 0))
	r := newTestResolver(a, b)

	assert.False(t, r.Stacks(a, b, false, false))
}

func TestStacks_TriggerDepth(t *testing.T) {
	t.Parallel()

	procA := testutil.NewSpell(2101, "proc a", testutil.Slot(data.SPATotalHP, 5))
	procB := testutil.NewSpell(2102, "proc b", testutil.Slot(data.SPAArmorClass, 5))
	a := testutil.NewSpell(430, "a", testutil.Slot(data.SPAAddProc, procA.ID))
	b := testutil.NewSpell(431, "b", testutil.FullSlot(data.SPAApplyEffect, 0, procB.ID, 0, 0))
	spells := testutil.NewSpellMap(procA, procB, a, b)

	assert.True(t, NewResolver(spells, NewStaticSession(60)).Stacks(a, b, false, false))
	assert.False(t, NewResolver(spells, NewStaticSession(60), WithMaxTriggerDepth(1)).Stacks(a, b, false, false))
}

func TestLargerEffectTest(t *testing.T) {
	t.Parallel()

	small := testutil.NewSpell(500, "small", testutil.Slot(data.SPATotalHP, 10))
	big := testutil.NewSpell(501, "big", testutil.Slot(data.SPATotalHP, -20))
	other := testutil.NewSpell(502, "other", testutil.Slot(data.SPAArmorClass, 99))

	assert.True(t, LargerEffectTest(big, small, 0, false))
	assert.False(t, LargerEffectTest(small, big, 0, false))
	assert.False(t, LargerEffectTest(other, small, 0, false), "different attrib")

	small.SpellGroup = 7
	big.SpellGroup = 7
	assert.False(t, LargerEffectTest(small, big, 0, false))
	assert.True(t, LargerEffectTest(small, big, 0, true), "same group inside a trigger chain")
}

func TestSpellEffectTest(t *testing.T) {
	t.Parallel()
	r := newTestResolver()

	procA := testutil.NewSpell(600, "a", testutil.Slot(data.SPAAddProc, 1))
	procB := testutil.NewSpell(601, "b", testutil.Slot(data.SPAAddProc, 2))
	assert.False(t, r.SpellEffectTest(procA, procB, 0, false, false))
	assert.True(t, r.SpellEffectTest(procA, procB, 0, true, false))

	hpA := testutil.Fixtures.HPBuffA
	hpB := testutil.Fixtures.HPBuffB
	assert.False(t, r.SpellEffectTest(hpA, hpB, 0, false, false))
	assert.True(t, r.SpellEffectTest(hpA, hpB, 0, false, true), "larger effect wins inside a trigger chain")

	assert.True(t, r.SpellEffectTest(hpA, hpB, 3, false, false), "placeholder slots")
}

func TestStacks_Trace(t *testing.T) {
	t.Parallel()

	var traceBuf, userBuf bytes.Buffer
	tr := logger.NewTracer(
		slog.New(slog.NewTextHandler(&traceBuf, nil)),
		slog.New(slog.NewTextHandler(&userBuf, nil)),
		logger.VerbosityTrace,
	)
	r := NewResolver(testutil.NewSpellMap(), NewStaticSession(60), WithTracer(tr))

	assert.False(t, r.Stacks(testutil.Fixtures.HPBuffA, testutil.Fixtures.HPBuffB, false, false))
	assert.Contains(t, traceBuf.String(), "stacking: same effect conflicts")
	assert.Contains(t, traceBuf.String(), "a.id=1002")
	assert.Empty(t, userBuf.String())
}

func selfTarget(s *data.Spell) *data.Spell {
	s.TargetType = data.TargetSelf
	return s
}

func durationWindow(s *data.Spell) *data.Spell {
	s.DurationWindow = true
	return s
}
