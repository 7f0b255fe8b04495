package testutil

import (
	"testing"

	"github.com/udisondev/spellcore/internal/data"
)

// Slot builds an effect slot with only attrib and base set.
func Slot(attrib, base int) data.EffectSlot {
	return data.EffectSlot{Attrib: attrib, Base: base}
}

// FullSlot builds an effect slot with every field set.
func FullSlot(attrib, base, base2, max, calc int) data.EffectSlot {
	return data.EffectSlot{Attrib: attrib, Base: base, Base2: base2, Max: max, Calc: calc}
}

// NewSpell создаёт спелл с заданными эффектами (остальные слоты — placeholder).
// Тип — beneficial, цель — single, все классы могут использовать с 1 уровня.
func NewSpell(id int, name string, effects ...data.EffectSlot) *data.Spell {
	s := data.NewSpell(id, name)
	s.SpellType = data.SpellTypeBeneficial
	s.TargetType = data.TargetSingle
	for i := range s.ClassLevels {
		s.ClassLevels[i] = 1
	}
	s.SetEffects(effects...)
	return s
}

// Fixtures — заранее подготовленные спеллы для сценариев стекинга и описаний.
var Fixtures = struct {
	// AC buff: {1, 10, max 10, calc 100}
	ArmorBuff *data.Spell
	// Две разные версии max HP buff с одинаковым значением
	HPBuffA *data.Spell
	HPBuffB *data.Spell
	// Спелл без эффектов
	Empty *data.Spell
}{
	ArmorBuff: NewSpell(1001, "Skin like Wood", FullSlot(data.SPAArmorClass, 10, 0, 10, 100)),
	HPBuffA:   NewSpell(1002, "Talisman of Tnarg", Slot(data.SPATotalHP, 50)),
	HPBuffB:   NewSpell(1003, "Talisman of Altuna", Slot(data.SPATotalHP, 50)),
	Empty:     NewSpell(1004, "Nothing"),
}

// SpellMap — in-memory имплементация поиска спеллов по ID.
type SpellMap map[int]*data.Spell

// NewSpellMap indexes spells by ID.
func NewSpellMap(spells ...*data.Spell) SpellMap {
	m := make(SpellMap, len(spells))
	for _, s := range spells {
		m[s.ID] = s
	}
	return m
}

// Spell returns nil if id is unknown.
func (m SpellMap) Spell(id int) *data.Spell {
	return m[id]
}

// NewSpellTable создаёт загруженную SpellTable из spells.
func NewSpellTable(tb testing.TB, spells ...*data.Spell) *data.SpellTable {
	tb.Helper()

	t := data.NewSpellTable()
	if err := t.Replace(spells); err != nil {
		tb.Fatalf("loading spell table: %v", err)
	}
	return t
}
