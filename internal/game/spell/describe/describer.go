// Package describe renders spell effect slots as human-readable text.
//
// Each attribute code maps to a rendering strategy in effectTable. Slots are first
// normalized (normalize.go) so formatters only see already-decoded fields. Rendering
// never fails: unknown codes and odd values fall back to a raw field dump.
package describe

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/udisondev/spellcore/internal/data"
	"github.com/udisondev/spellcore/internal/game/spell"
)

// EffectSeparator joins slot descriptions in DescribeAllEffects.
const EffectSeparator = "\n"

// String resource categories.
const (
	StringFaction = 1
	StringZone    = 2
	StringRace    = 3
	StringResist  = 4
)

// Lookups resolves names referenced by effect slots.
type Lookups interface {
	// Spell returns nil if id is unknown.
	Spell(id int) *data.Spell
	// StringResource returns a localized string, false if missing.
	StringResource(id, category int) (string, bool)
}

// Option configures a Describer.
type Option func(*Describer)

// WithSession sets where DescribeAllEffects takes the character level from.
func WithSession(s spell.Session) Option {
	return func(d *Describer) { d.session = s }
}

// WithDefaultLevel sets the level used when no character is active.
func WithDefaultLevel(level int) Option {
	return func(d *Describer) { d.defaultLevel = level }
}

// Describer renders effect slots. Safe for concurrent use.
type Describer struct {
	lookups      Lookups
	session      spell.Session
	defaultLevel int
}

// New creates a Describer. lookups may be nil; names then render as IDs.
func New(lookups Lookups, opts ...Option) *Describer {
	d := &Describer{lookups: lookups}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DescribeEffect renders slot i of s at level. Returns "" for placeholder and no-op slots.
func (d *Describer) DescribeEffect(s *data.Spell, i, level int) string {
	if s == nil || i < 0 || i >= spell.EffectCount(s) {
		return ""
	}
	raw := fields{
		attrib: spell.Attrib(s, i),
		base:   spell.Base(s, i),
		base2:  spell.Base2(s, i),
		max:    spell.Max(s, i),
		calc:   spell.Calc(s, i),
	}
	return d.describe(s, i, raw, level)
}

func (d *Describer) describe(s *data.Spell, i int, raw fields, level int) string {
	f := normalize(raw)

	if f.attrib == data.SPAPlaceholder {
		return ""
	}
	if f.attrib == data.SPACharisma && (f.base <= 1 || f.base > 255) {
		return ""
	}

	if level <= 0 {
		level = 1
	}
	minLevel := spell.CalcMinSpellLevel(s)
	maxLevel := min(spell.CalcMaxSpellLevel(f.calc, f.base, f.max, 0, minLevel, level), level)

	c := &effectCtx{
		spell:    s,
		slot:     i,
		fields:   f,
		level:    level,
		minLevel: minLevel,
		maxLevel: maxLevel,
		value:    spell.CalcValue(f.calc, f.base, f.max, 0, minLevel, minLevel),
		finish:   spell.CalcValue(f.calc, f.base, f.max, 0, minLevel, level),
	}

	def, ok := lookupEffect(f.attrib)
	if !ok {
		c.name = effectName(f.attrib)
		return formatRaw(d, c)
	}
	c.name = def.name
	if int(def.tmpl) >= len(formatters) || formatters[def.tmpl] == nil {
		return formatRaw(d, c)
	}
	return formatters[def.tmpl](d, c)
}

// DescribeAllEffects renders every slot of s at the active character's level,
// falling back to the configured default level and then to the player level cap.
func (d *Describer) DescribeAllEffects(s *data.Spell, capacity int) string {
	return d.DescribeAllAtLevel(s, d.level(), capacity)
}

// DescribeAllAtLevel renders every non-empty slot as "Slot N: text", joined by
// EffectSeparator and cut to at most capacity bytes.
func (d *Describer) DescribeAllAtLevel(s *data.Spell, level, capacity int) string {
	if capacity <= 0 {
		return ""
	}
	var b strings.Builder
	for i := range spell.EffectCount(s) {
		text := d.DescribeEffect(s, i, level)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(EffectSeparator)
		}
		fmt.Fprintf(&b, "Slot %d: %s", i+1, text)
		if b.Len() >= capacity {
			break
		}
	}
	return truncate(b.String(), capacity)
}

func (d *Describer) level() int {
	if d.session != nil {
		if lvl, ok := d.session.CharacterLevel(); ok {
			return lvl
		}
	}
	if d.defaultLevel > 0 {
		return d.defaultLevel
	}
	return spell.MaxPCLevel()
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (d *Describer) spellName(id int) string {
	if d.lookups != nil {
		if s := d.lookups.Spell(id); s != nil {
			return s.Name
		}
	}
	return fmt.Sprintf("Spell #%d", id)
}

func (d *Describer) stringResource(id, category int) (string, bool) {
	if d.lookups == nil {
		return "", false
	}
	return d.lookups.StringResource(id, category)
}
