// Package spell evaluates spell effect slots: raw field access, level/tick scaling,
// the triggered-spell index and buff stacking.
package spell

import (
	"log/slog"

	"github.com/udisondev/spellcore/internal/data"
)

// EffectCount returns the number of effect slots in use: one past the last slot whose
// attribute is not the placeholder. Interior placeholders still count.
func EffectCount(s *data.Spell) int {
	if s == nil {
		return 0
	}
	for i := data.MaxEffectSlots - 1; i >= 0; i-- {
		if s.Effects[i].Attrib != data.SPAPlaceholder {
			return i + 1
		}
	}
	return 0
}

// slot returns the effect at i, or false when i is outside [0, EffectCount).
// Negative i is treated as 0.
func slot(s *data.Spell, i int) (data.EffectSlot, bool) {
	i = max(i, 0)
	if i >= EffectCount(s) {
		return data.EffectSlot{}, false
	}
	return s.Effects[i], true
}

// Attrib returns the attribute code (SPA) of slot i.
// A slot past EffectCount is a caller bug: it is logged and 0 is returned.
// A spell with no effects returns 0 for every slot without logging.
func Attrib(s *data.Spell, i int) int {
	e, ok := slot(s, i)
	if !ok {
		if n := EffectCount(s); n > 0 {
			slog.Warn("bad usage of spell attrib: index out of range",
				"spell", s.ID, "index", i, "effects", n)
		}
		return 0
	}
	return e.Attrib
}

// AttribOrPlaceholder returns the attribute of slot i, or the placeholder code for a
// slot the spell does not have. Used when walking two spells of different length.
func AttribOrPlaceholder(s *data.Spell, i int) int {
	e, ok := slot(s, i)
	if !ok {
		return data.SPAPlaceholder
	}
	return e.Attrib
}

// Base returns the base value of slot i, 0 when out of range.
func Base(s *data.Spell, i int) int {
	e, _ := slot(s, i)
	return e.Base
}

// Base2 returns the second base value of slot i, 0 when out of range.
func Base2(s *data.Spell, i int) int {
	e, _ := slot(s, i)
	return e.Base2
}

// Max returns the max value of slot i, 0 when out of range.
func Max(s *data.Spell, i int) int {
	e, _ := slot(s, i)
	return e.Max
}

// Calc returns the formula code of slot i, 0 when out of range.
func Calc(s *data.Spell, i int) int {
	e, _ := slot(s, i)
	return e.Calc
}
