package describe

import (
	"fmt"
	"strings"

	"github.com/udisondev/spellcore/internal/data"
)

// template selects how a slot is rendered.
type template uint8

const (
	tmplRaw            template = iota // generic field dump
	tmplName                           // effect name only
	tmplBase                           // Increase/Decrease <name> by N
	tmplBasePct                        // Increase/Decrease <name> by N%
	tmplPerTick                        // like tmplBase, "per tick" for buffs
	tmplChance                         // <name> (N% chance)
	tmplPctRange                       // Increase <name> by N% to M%
	tmplMaxLevel                       // <name> up to level N
	tmplSeconds                        // <name> (N sec), base in seconds
	tmplMillis                         // <name> (N.NN sec), base in ms
	tmplTicks                          // Increase <name> by N ticks
	tmplCounter                        // <name> x N
	tmplSkill                          // Increase <name> with <skill> by N%
	tmplSkillAttack                    // <skill> attack for N damage
	tmplSpellTrigger                   // base chance, base2 spell
	tmplProc                           // base spell, base2 rate mod
	tmplCastSpell                      // base spell
	tmplGroupTrigger                   // base chance, base2 spell group
	tmplSummonItem                     // base item, max count
	tmplSummonPet                      // pet name from the spell
	tmplTeleport                       // zone from the spell or string table
	tmplFaction                        // base faction, max/base2 amount
	tmplStacking                       // 148/149 directive
	tmplStatsCap                       // base2 stat, base amount
	tmplLimit                          // Limit: <name> (N)
	tmplLimitSpell                     // Limit: Spell (<name>)
	tmplLimitResist                    // Limit: Resist (<resist>)
	tmplLimitTarget                    // Limit: Target (<target type>)
	tmplLimitEffect                    // Limit: Effect (<effect>)
	tmplLimitSpellType                 // Limit: SpellType (Beneficial)
	tmplLimitClass                     // Limit: PlayerClass (WAR CLR ...)
	tmplLimitSkill                     // Limit: Skill (<skill>)
	tmplLimitDuration                  // Limit: Min Duration (N sec)
	tmplLimitCastTime                  // Limit: Cast Time (N.N sec)
	tmplRateMod                        // <name> by N% (rate mod M)
	tmplRefreshTimer                   // <name> timer N
	tmplIllusion                       // Illusion: race N
	tmplBodyType                       // <name>: <body type>
	tmplRune                           // Absorb N damage
	tmplCorpse                         // Summon Corpse up to level N
	tmplHeight                         // Change Height to N%
	tmplResurrect                      // Resurrect with N% experience
	tmplThreshold                      // cast spell after N damage
)

type formatter func(d *Describer, c *effectCtx) string

var formatters = [...]formatter{
	tmplRaw:            formatRaw,
	tmplName:           formatName,
	tmplBase:           formatBase,
	tmplBasePct:        formatBasePct,
	tmplPerTick:        formatPerTick,
	tmplChance:         formatChance,
	tmplPctRange:       formatPctRange,
	tmplMaxLevel:       formatMaxLevel,
	tmplSeconds:        formatSeconds,
	tmplMillis:         formatMillis,
	tmplTicks:          formatTicks,
	tmplCounter:        formatCounter,
	tmplSkill:          formatSkill,
	tmplSkillAttack:    formatSkillAttack,
	tmplSpellTrigger:   formatSpellTrigger,
	tmplProc:           formatProc,
	tmplCastSpell:      formatCastSpell,
	tmplGroupTrigger:   formatGroupTrigger,
	tmplSummonItem:     formatSummonItem,
	tmplSummonPet:      formatSummonPet,
	tmplTeleport:       formatTeleport,
	tmplFaction:        formatFaction,
	tmplStacking:       formatStacking,
	tmplStatsCap:       formatStatsCap,
	tmplLimit:          formatLimit,
	tmplLimitSpell:     formatLimitSpell,
	tmplLimitResist:    formatLimitResist,
	tmplLimitTarget:    formatLimitTarget,
	tmplLimitEffect:    formatLimitEffect,
	tmplLimitSpellType: formatLimitSpellType,
	tmplLimitClass:     formatLimitClass,
	tmplLimitSkill:     formatLimitSkill,
	tmplLimitDuration:  formatLimitDuration,
	tmplLimitCastTime:  formatLimitCastTime,
	tmplRateMod:        formatRateMod,
	tmplRefreshTimer:   formatRefreshTimer,
	tmplIllusion:       formatIllusion,
	tmplBodyType:       formatBodyType,
	tmplRune:           formatRune,
	tmplCorpse:         formatCorpse,
	tmplHeight:         formatHeight,
	tmplResurrect:      formatResurrect,
	tmplThreshold:      formatThreshold,
}

// effectCtx is everything a formatter may read.
type effectCtx struct {
	spell *data.Spell
	slot  int
	name  string
	fields

	level    int
	minLevel int
	maxLevel int
	value    int // at minLevel
	finish   int // at level
}

// verb picks Increase/Decrease from the sign of the scaled value.
func (c *effectCtx) verb() string {
	if c.finish < 0 || (c.finish == 0 && c.base < 0) {
		return "Decrease"
	}
	return "Increase"
}

// amount renders the magnitude, as a level range when it scales.
func (c *effectCtx) amount(suffix string) string {
	v, f := abs(c.value), abs(c.finish)
	if v == f || c.minLevel >= c.maxLevel {
		return fmt.Sprintf("%d%s", f, suffix)
	}
	return fmt.Sprintf("%d%s (L%d) to %d%s (L%d)", v, suffix, c.minLevel, f, suffix, c.maxLevel)
}

func formatRaw(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s (base=%d, base2=%d, max=%d, calc=%d, value=%d)",
		c.name, c.base, c.base2, c.max, c.calc, c.finish)
}

func formatName(_ *Describer, c *effectCtx) string {
	return c.name
}

func formatBase(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s %s by %s", c.verb(), c.name, c.amount(""))
}

func formatBasePct(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s %s by %s", c.verb(), c.name, c.amount("%"))
}

func formatPerTick(_ *Describer, c *effectCtx) string {
	s := fmt.Sprintf("%s %s by %s", c.verb(), c.name, c.amount(""))
	if c.spell.DurationCalc != 0 || c.spell.DurationMax != 0 {
		s += " per tick"
	}
	return s
}

func formatChance(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s (%d%% chance)", c.name, abs(c.finish))
}

func formatPctRange(_ *Describer, c *effectCtx) string {
	lo, hi := abs(c.base), abs(c.max)
	if hi == 0 || hi == lo {
		return fmt.Sprintf("%s %s by %d%%", c.verb(), c.name, lo)
	}
	return fmt.Sprintf("%s %s by %d%% to %d%%", c.verb(), c.name, lo, hi)
}

func formatMaxLevel(_ *Describer, c *effectCtx) string {
	if c.max <= 0 {
		return c.name
	}
	return fmt.Sprintf("%s up to level %d", c.name, c.max)
}

func formatSeconds(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s (%d sec)", c.name, abs(c.base))
}

func formatMillis(_ *Describer, c *effectCtx) string {
	s := fmt.Sprintf("%s (%.2f sec)", c.name, float64(abs(c.base))/1000)
	if c.max > 0 {
		s += fmt.Sprintf(" up to level %d", c.max)
	}
	return s
}

func formatTicks(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s %s by %s ticks", c.verb(), c.name, c.amount(""))
}

func formatCounter(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s x %d", c.name, abs(c.finish))
}

func formatSkill(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s %s with %s by %s", c.verb(), c.name, data.SkillName(c.base2), c.amount("%"))
}

func formatSkillAttack(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s attack for %d damage", data.SkillName(c.spell.Skill), abs(c.finish))
}

func formatSpellTrigger(d *Describer, c *effectCtx) string {
	chance := c.base
	if chance <= 0 || chance > 100 {
		chance = 100
	}
	return fmt.Sprintf("%s: %s (%d%% chance)", c.name, d.spellName(c.base2), chance)
}

func formatProc(d *Describer, c *effectCtx) string {
	s := fmt.Sprintf("%s: %s", c.name, d.spellName(c.base))
	if c.base2 != 0 {
		s += fmt.Sprintf(" with %d%% rate mod", c.base2)
	}
	return s
}

func formatCastSpell(d *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s: %s", c.name, d.spellName(c.base))
}

func formatGroupTrigger(_ *Describer, c *effectCtx) string {
	chance := c.base
	if chance <= 0 || chance > 100 {
		chance = 100
	}
	return fmt.Sprintf("%s: best spell of group %d (%d%% chance)", c.name, c.base2, chance)
}

func formatSummonItem(_ *Describer, c *effectCtx) string {
	count := max(c.finish, 1)
	if c.attrib == data.SPASummonItem && c.max > 0 {
		count = c.max
	}
	return fmt.Sprintf("%s: item %d x %d", c.name, c.ref, count)
}

func formatSummonPet(_ *Describer, c *effectCtx) string {
	if c.spell.Name == "" {
		return c.name
	}
	return fmt.Sprintf("%s: %s", c.name, c.spell.Name)
}

func formatTeleport(d *Describer, c *effectCtx) string {
	zone := c.spell.TeleportZone
	if zone == "" {
		if name, ok := d.stringResource(c.base, StringZone); ok {
			zone = name
		}
	}
	if zone == "" {
		return c.name
	}
	return fmt.Sprintf("%s to %s", c.name, zone)
}

func formatFaction(d *Describer, c *effectCtx) string {
	name, ok := d.stringResource(c.base, StringFaction)
	if !ok {
		name = fmt.Sprintf("Faction %d", c.base)
	}
	amount := c.max
	if amount == 0 {
		amount = c.base2
	}
	verb := "Increase"
	if amount < 0 {
		verb = "Decrease"
	}
	return fmt.Sprintf("%s %s with %s by %d", verb, c.name, name, abs(amount))
}

func formatStacking(_ *Describer, c *effectCtx) string {
	slot := c.base2
	if slot <= 0 {
		slot = c.calc - 200
	}
	action := "Block new spell"
	if c.attrib == data.SPAStackingOverwrite {
		action = "Overwrite existing spell"
	}
	s := fmt.Sprintf("Stacking: %s if slot %d is '%s'", action, slot, effectName(c.base))
	if c.max > 0 {
		s += fmt.Sprintf(" and < %d", c.max)
	}
	return s
}

var statNames = map[int]string{
	0: "STR", 1: "STA", 2: "AGI", 3: "DEX", 4: "WIS", 5: "INT", 6: "CHA",
	7: "Magic", 8: "Cold", 9: "Fire", 10: "Poison", 11: "Disease",
}

func formatStatsCap(_ *Describer, c *effectCtx) string {
	stat, ok := statNames[c.base2]
	if !ok {
		stat = fmt.Sprintf("stat %d", c.base2)
	}
	return fmt.Sprintf("%s %s Cap by %s", c.verb(), stat, c.amount(""))
}

// limitName strips the "Limit: " prefix from the effect name.
func (c *effectCtx) limitName() string {
	return strings.TrimPrefix(c.name, "Limit: ")
}

// exclude is true for limits whose negative base means "everything except".
func (c *effectCtx) exclude() string {
	if c.base < 0 {
		return "Exclude "
	}
	return ""
}

func formatLimit(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("Limit: %s (%s%d)", c.limitName(), c.exclude(), abs(c.base))
}

func formatLimitSpell(d *Describer, c *effectCtx) string {
	return fmt.Sprintf("Limit: %s (%s%s)", c.limitName(), c.exclude(), d.spellName(abs(c.base)))
}

func formatLimitResist(d *Describer, c *effectCtx) string {
	id := abs(c.base)
	name, ok := d.stringResource(id, StringResist)
	if !ok {
		name, ok = data.ResistNames[id]
	}
	if !ok {
		name = fmt.Sprintf("Resist %d", id)
	}
	return fmt.Sprintf("Limit: %s (%s%s)", c.limitName(), c.exclude(), name)
}

func formatLimitTarget(_ *Describer, c *effectCtx) string {
	name, ok := data.TargetTypeNames[data.TargetType(abs(c.base))]
	if !ok {
		name = fmt.Sprintf("Target %d", abs(c.base))
	}
	return fmt.Sprintf("Limit: %s (%s%s)", c.limitName(), c.exclude(), name)
}

func formatLimitEffect(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("Limit: %s (%s%s)", c.limitName(), c.exclude(), effectName(abs(c.base)))
}

func formatLimitSpellType(_ *Describer, c *effectCtx) string {
	kind := "Detrimental"
	if c.base != 0 {
		kind = "Beneficial"
	}
	return fmt.Sprintf("Limit: %s (%s only)", c.limitName(), kind)
}

func formatLimitClass(_ *Describer, c *effectCtx) string {
	names := data.ClassMaskNames(abs(c.base))
	if len(names) == 0 {
		return fmt.Sprintf("Limit: %s (none)", c.limitName())
	}
	return fmt.Sprintf("Limit: %s (%s%s)", c.limitName(), c.exclude(), strings.Join(names, " "))
}

func formatLimitSkill(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("Limit: %s (%s%s)", c.limitName(), c.exclude(), data.SkillName(abs(c.base)))
}

func formatLimitDuration(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("Limit: %s (%d sec)", c.limitName(), abs(c.base)*6)
}

func formatLimitCastTime(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("Limit: %s (%.1f sec)", c.limitName(), float64(abs(c.base))/1000)
}

func formatRateMod(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s %s by %s (rate mod %d)", c.verb(), c.name, c.amount("%"), c.base2)
}

func formatRefreshTimer(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s: timer %d", c.name, c.base)
}

func formatIllusion(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s: race %d", c.name, c.base)
}

func formatBodyType(_ *Describer, c *effectCtx) string {
	name, ok := data.BodyTypeNames[c.base]
	if !ok {
		name = fmt.Sprintf("body type %d", c.base)
	}
	return fmt.Sprintf("%s: %s", c.name, name)
}

func formatRune(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("Absorb %s damage", c.amount(""))
}

func formatCorpse(_ *Describer, c *effectCtx) string {
	if c.base <= 0 {
		return c.name
	}
	return fmt.Sprintf("%s up to level %d", c.name, c.base)
}

func formatHeight(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s to %d%%", c.name, abs(c.base))
}

func formatResurrect(_ *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s and restore %d%% experience", c.name, abs(c.base))
}

func formatThreshold(d *Describer, c *effectCtx) string {
	return fmt.Sprintf("%s: cast %s after %d damage", c.name, d.spellName(c.ref), abs(c.base))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
