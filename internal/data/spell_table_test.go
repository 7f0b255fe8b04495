package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpellTable_ReplaceAndLookup(t *testing.T) {
	table := NewSpellTable()
	assert.False(t, table.Loaded())
	assert.Nil(t, table.Spell(1))

	require.NoError(t, table.Replace([]*Spell{NewSpell(2, "Second"), NewSpell(1, "First"), nil}))

	assert.True(t, table.Loaded())
	assert.Equal(t, uint64(1), table.Generation())
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "First", table.Spell(1).Name)
	assert.Equal(t, 2, table.SpellByName("second").ID)
	assert.Nil(t, table.SpellByName("third"))

	var ids []int
	table.Range(func(s *Spell) bool {
		ids = append(ids, s.ID)
		return true
	})
	assert.Equal(t, []int{1, 2}, ids)
}

func TestSpellTable_ReplaceDuplicateKeepsOldContents(t *testing.T) {
	table := NewSpellTable()
	require.NoError(t, table.Replace([]*Spell{NewSpell(1, "First")}))

	err := table.Replace([]*Spell{NewSpell(5, "A"), NewSpell(5, "B")})
	require.ErrorIs(t, err, ErrDuplicateSpell)

	assert.Equal(t, uint64(1), table.Generation())
	assert.NotNil(t, table.Spell(1))
	assert.Nil(t, table.Spell(5))
}

func TestSpellTable_UnloadKeepsSnapshot(t *testing.T) {
	table := NewSpellTable()
	require.NoError(t, table.Replace([]*Spell{NewSpell(1, "First")}))

	table.Unload()
	assert.False(t, table.Loaded())
	assert.NotNil(t, table.Spell(1))

	require.NoError(t, table.Replace([]*Spell{NewSpell(1, "First")}))
	assert.True(t, table.Loaded())
	assert.Equal(t, uint64(2), table.Generation())
}

func TestFingerprint_ChangesWithEffects(t *testing.T) {
	a := NewSpell(1, "A")
	a.SetEffects(EffectSlot{Attrib: 1, Base: 10})
	b := NewSpell(1, "A")
	b.SetEffects(EffectSlot{Attrib: 1, Base: 11})

	fa := Fingerprint([]*Spell{a})
	assert.Len(t, fa, 64)
	assert.Equal(t, fa, Fingerprint([]*Spell{a}))
	assert.NotEqual(t, fa, Fingerprint([]*Spell{b}))
}

func TestClassMaskNames(t *testing.T) {
	assert.Equal(t, []string{"WAR", "CLR"}, ClassMaskNames(0b11))
	assert.Equal(t, []string{"BER"}, ClassMaskNames(1<<15))
	assert.Empty(t, ClassMaskNames(0))
}

func TestSkillName(t *testing.T) {
	assert.Equal(t, "1H Blunt", SkillName(0))
	assert.Equal(t, "2H Piercing", SkillName(77))
	assert.Equal(t, "All Skills", SkillName(-1))
	assert.Equal(t, "Unknown Skill", SkillName(500))
}
