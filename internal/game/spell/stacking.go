package spell

import (
	"log/slog"

	"github.com/udisondev/spellcore/internal/data"
	"github.com/udisondev/spellcore/internal/logger"
)

// DefaultMaxTriggerDepth bounds recursion through trigger chains.
const DefaultMaxTriggerDepth = 8

// triggeringEffects cast another spell when they fire.
var triggeringEffects = map[int]bool{
	data.SPAAddProc:      true,
	data.SPAApplyEffect:  true,
	data.SPAAddMeleeProc: true,
}

// stackingIgnored lists codes that never conflict with the same code on another spell.
var stackingIgnored = map[int]bool{
	data.SPALevitate:           true,
	data.SPAPlaceholder:        true,
	data.SPALimitCombatSkills:  true,
	data.SPALimitToSkill:       true,
	data.SPALimitManaMin:       true,
	data.SPALimitSpellGroup:    true,
	data.SPALimitManaMax:       true,
	data.SPALimitSpellClass:    true,
	data.SPALimitSpellSubclass: true,
	data.SPALimitClass:         true,
	data.SPALimitRace:          true,
	data.SPALimitCastingSkill:  true,
	data.SPALimitUseMin:        true,
	data.SPALimitUseType:       true,
}

func init() {
	for code := data.SPALimitMaxLevel; code <= data.SPALimitCastTimeMax; code++ {
		stackingIgnored[code] = true
	}
}

// SpellLookup resolves spells referenced by trigger effects.
type SpellLookup interface {
	Spell(id int) *data.Spell
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithTracer routes decision traces to t.
func WithTracer(t *logger.Tracer) ResolverOption {
	return func(r *Resolver) { r.tracer = t }
}

// WithMaxTriggerDepth bounds trigger-chain recursion. Values <= 0 are ignored.
func WithMaxTriggerDepth(depth int) ResolverOption {
	return func(r *Resolver) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// Resolver decides whether two spells can be active on the character at once.
//
// Правила асимметричны: директивы block/overwrite (148/149) читаются только у B,
// поэтому Stacks(a, b) и Stacks(b, a) могут различаться.
//
// Resolver holds no mutable state and is safe for concurrent use.
type Resolver struct {
	spells   SpellLookup
	session  Session
	tracer   *logger.Tracer
	maxDepth int
}

// NewResolver creates a Resolver. spells resolves trigger targets; session gates
// evaluation (no character, not in game or zoning means everything stacks).
func NewResolver(spells SpellLookup, session Session, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		spells:   spells,
		session:  session,
		maxDepth: DefaultMaxTriggerDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type spellPair struct{ a, b int }

// Stacks reports whether a and b can be active together.
// ignoreTriggering skips trigger-chain resolution and treats triggering slots as
// non-conflicting; isRecursive marks a check made on behalf of a trigger chain.
func (r *Resolver) Stacks(a, b *data.Spell, ignoreTriggering, isRecursive bool) bool {
	if !canEvaluate(r.session) {
		r.trace("stacking not evaluated: no active character", a, b)
		return true
	}
	return r.stacks(a, b, ignoreTriggering, isRecursive, nil)
}

func (r *Resolver) stacks(a, b *data.Spell, ignoreTriggering, isRecursive bool, path []spellPair) bool {
	if a != nil && b != nil && a.ID == b.ID {
		r.trace("same spell", a, b)
		return true
	}
	if a == nil || b == nil {
		r.trace("missing spell", a, b)
		return false
	}
	path = append(path, spellPair{a.ID, b.ID})

	n := max(EffectCount(a), EffectCount(b))
	for i := range n {
		attrA := AttribOrPlaceholder(a, i)
		attrB := AttribOrPlaceholder(b, i)

		if !ignoreTriggering && (triggeringEffects[attrA] || triggeringEffects[attrB]) {
			ta := r.triggered(a, i)
			tb := r.triggered(b, i)
			if ta.ID != a.ID || tb.ID != b.ID {
				next := spellPair{ta.ID, tb.ID}
				if containsPair(path, next) || len(path) >= r.maxDepth {
					slog.Warn("trigger chain cycle or depth exceeded, treating as not stacking",
						"a", a.ID, "b", b.ID, "slot", i,
						"triggered_a", ta.ID, "triggered_b", tb.ID, "depth", len(path))
					return false
				}
				r.trace("checking triggered spells", ta, tb, "slot", i)
				if !r.stacks(ta, tb, ignoreTriggering, true, path) {
					r.trace("triggered spells conflict", a, b, "slot", i)
					return false
				}
			}
		}

		if attrA == attrB && !r.SpellEffectTest(a, b, i, ignoreTriggering, isRecursive) {
			if !sameEffectAllowed(a, b, i, attrA) {
				r.trace("same effect conflicts", a, b, "slot", i, "attrib", attrA)
				return false
			}
		}

		if attrB == data.SPAStackingBlock || attrB == data.SPAStackingOverwrite {
			if blocks(a, b, i) {
				r.trace("blocked by stacking directive", a, b, "slot", i, "attrib", attrB)
				return false
			}
		}
	}

	r.trace("spells stack", a, b)
	return true
}

// triggered returns the spell slot i of s casts, or s itself when the slot does
// not trigger or the target is unknown.
func (r *Resolver) triggered(s *data.Spell, i int) *data.Spell {
	attr := AttribOrPlaceholder(s, i)
	if !triggeringEffects[attr] {
		return s
	}
	id := Base(s, i)
	if attr == data.SPAApplyEffect {
		id = Base2(s, i)
	}
	if r.spells == nil {
		return s
	}
	if t := r.spells.Spell(id); t != nil {
		return t
	}
	return s
}

// sameEffectAllowed lists the cases where the same code in the same slot is not a conflict.
func sameEffectAllowed(a, b *data.Spell, i, attrib int) bool {
	either := func(fn func(s *data.Spell) bool) bool { return fn(a) || fn(b) }
	switch attrib {
	case data.SPACharisma:
		return either(func(s *data.Spell) bool {
			base := Base(s, i)
			return base == -6 || base == 0
		})
	case data.SPACurrentHPOnce:
		return either(func(s *data.Spell) bool {
			return Base(s, i) > 0 && s.TargetType == data.TargetSelf
		})
	case data.SPACurrentHP:
		return either(func(s *data.Spell) bool { return Base(s, i) < 0 })
	case data.SPAStackingBlock, data.SPAStackingOverwrite:
		return true
	}
	return false
}

// blocks evaluates the block/overwrite directive in slot i of b against a.
// The directive names a 1-based slot in base2 (or calc-201 when base2 is unset),
// the attribute expected there in base, and a threshold in max.
func blocks(a, b *data.Spell, i int) bool {
	target := Base2(b, i) - 1
	if Base2(b, i) <= 0 {
		target = Calc(b, i) - 201
	}
	if target < 0 || target >= EffectCount(a) {
		return false
	}
	if Attrib(a, target) != Base(b, i) {
		return false
	}
	limit := Max(b, i)
	if limit <= 0 {
		return true
	}
	return abs(Base(a, target)) < abs(limit)
}

// SpellEffectTest reports whether slot i should be ignored when comparing a with b.
func (r *Resolver) SpellEffectTest(a, b *data.Spell, i int, ignoreTriggering, isRecursive bool) bool {
	attrA := AttribOrPlaceholder(a, i)
	attrB := AttribOrPlaceholder(b, i)

	if stackingIgnored[attrA] || stackingIgnored[attrB] {
		return true
	}
	if isRecursive && LargerEffectTest(a, b, i, isRecursive) {
		return true
	}
	if ignoreTriggering && (triggeringEffects[attrA] || triggeringEffects[attrB]) {
		return true
	}
	if a.SpellType.IsBeneficial() && b.SpellType.IsBeneficial() && a.DurationWindow != b.DurationWindow {
		return true
	}
	return false
}

// LargerEffectTest reports whether a's effect in slot i dominates b's: same code and
// at least as large, or (inside a trigger chain) the spells are ranks of one group.
func LargerEffectTest(a, b *data.Spell, i int, isRecursive bool) bool {
	attrA := AttribOrPlaceholder(a, i)
	if attrA != AttribOrPlaceholder(b, i) {
		return false
	}
	if abs(Base(a, i)) >= abs(Base(b, i)) {
		return true
	}
	return isRecursive && a.SpellGroup != 0 && a.SpellGroup == b.SpellGroup
}

func containsPair(path []spellPair, p spellPair) bool {
	for _, q := range path {
		if q == p {
			return true
		}
	}
	return false
}

func (r *Resolver) trace(msg string, a, b *data.Spell, args ...any) {
	if !r.tracer.Enabled() {
		return
	}
	r.tracer.Trace("stacking: "+msg, append([]any{"a", spellRef(a), "b", spellRef(b)}, args...)...)
}

func spellRef(s *data.Spell) any {
	if s == nil {
		return "<nil>"
	}
	return slog.GroupValue(slog.Int("id", s.ID), slog.String("name", s.Name))
}
