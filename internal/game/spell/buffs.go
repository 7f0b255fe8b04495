package spell

import (
	"log/slog"
	"sync"

	"github.com/udisondev/spellcore/internal/data"
)

// DefaultMaxBuffs is the buff window size.
const DefaultMaxBuffs = 42

// Buff is a spell active on the character.
type Buff struct {
	Spell          *data.Spell
	RemainingTicks int // < 0 = permanent
	CasterLevel    int
}

// Permanent reports whether the buff never times out.
func (b *Buff) Permanent() bool {
	return b.RemainingTicks < 0
}

// NewBuff creates a buff for s cast at level, with its duration from the spell's
// duration formula.
func NewBuff(s *data.Spell, level int) *Buff {
	return &Buff{
		Spell:          s,
		RemainingTicks: CalcDuration(s.DurationCalc, s.DurationMax, level),
		CasterLevel:    level,
	}
}

// BuffSet tracks the buffs active on the local character.
// Stacking is decided by a Resolver; the oldest buff is dropped when the window is full.
//
// Thread-safe: all methods are protected by sync.RWMutex.
type BuffSet struct {
	mu    sync.RWMutex
	buffs []*Buff
	limit int
}

// NewBuffSet creates an empty set holding at most limit buffs (DefaultMaxBuffs if limit <= 0).
func NewBuffSet(limit int) *BuffSet {
	if limit <= 0 {
		limit = DefaultMaxBuffs
	}
	return &BuffSet{
		buffs: make([]*Buff, 0, limit),
		limit: limit,
	}
}

// WillStack reports whether s can be added to the set.
// A buff of the same spell with more than minTicks left means the cast is not needed,
// so it counts as not stacking; permanent buffs always do.
func (m *BuffSet) WillStack(r *Resolver, s *data.Spell, minTicks int) bool {
	if s == nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.willStackLocked(r, s, minTicks)
}

// Must be called with mu held.
func (m *BuffSet) willStackLocked(r *Resolver, s *data.Spell, minTicks int) bool {
	for _, b := range m.buffs {
		if b.Spell.ID == s.ID {
			if b.Permanent() || b.RemainingTicks > minTicks {
				return false
			}
			continue
		}
		if !r.Stacks(s, b.Spell, false, false) {
			return false
		}
	}
	return true
}

// Add adds a buff.
// Returns true if the buff was added or refreshed, false if it conflicts with an active buff.
//
// A buff of the same spell refreshes the remaining duration. When the set is full the
// oldest buff is removed.
func (m *BuffSet) Add(r *Resolver, b *Buff) bool {
	if b == nil || b.Spell == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.buffs {
		if existing.Spell.ID == b.Spell.ID {
			existing.RemainingTicks = b.RemainingTicks
			existing.CasterLevel = b.CasterLevel
			return true
		}
	}

	if !m.willStackLocked(r, b.Spell, 0) {
		return false
	}

	if len(m.buffs) >= m.limit {
		oldest := m.buffs[0]
		m.buffs = m.buffs[1:]

		slog.Debug("buff limit reached, removed oldest",
			"removedSpell", oldest.Spell.ID,
			"added", b.Spell.ID)
	}

	m.buffs = append(m.buffs, b)
	return true
}

// Remove removes the buff of spellID. Returns false if it was not active.
func (m *BuffSet) Remove(spellID int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, b := range m.buffs {
		if b.Spell.ID == spellID {
			m.buffs = append(m.buffs[:i], m.buffs[i+1:]...)
			return true
		}
	}
	return false
}

// Tick advances all timed buffs by ticks and removes those that ran out.
// Returns the removed buffs.
func (m *BuffSet) Tick(ticks int) []*Buff {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []*Buff
	n := 0
	for _, b := range m.buffs {
		if !b.Permanent() {
			b.RemainingTicks -= ticks
			if b.RemainingTicks <= 0 {
				expired = append(expired, b)
				continue
			}
		}
		m.buffs[n] = b
		n++
	}
	clear(m.buffs[n:])
	m.buffs = m.buffs[:n]
	return expired
}

// Has reports whether spellID is active.
func (m *BuffSet) Has(spellID int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.buffs {
		if b.Spell.ID == spellID {
			return true
		}
	}
	return false
}

// Active returns a copy of the active buffs, oldest first.
func (m *BuffSet) Active() []*Buff {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Buff, len(m.buffs))
	copy(result, m.buffs)
	return result
}

// Count returns the number of active buffs.
func (m *BuffSet) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.buffs)
}
