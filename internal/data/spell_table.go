package data

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrDuplicateSpell is returned when two definitions share an ID.
	ErrDuplicateSpell = errors.New("duplicate spell id")
	// ErrTooManyEffects is returned when a definition has more than MaxEffectSlots effects.
	ErrTooManyEffects = errors.New("too many effect slots")
)

// SpellTable — registry всех определений спеллов.
// В отличие от глобального SkillTable, это владеемый объект: хост заменяет его
// содержимое целиком при перезагрузке базы (Replace), читатели получают
// согласованный снимок.
//
// Thread-safe: all methods are protected by sync.RWMutex.
type SpellTable struct {
	mu          sync.RWMutex
	byID        map[int]*Spell
	ordered     []*Spell // sorted by ID
	loaded      bool
	generation  uint64
	fingerprint string
}

// NewSpellTable creates an empty, unloaded table.
func NewSpellTable() *SpellTable {
	return &SpellTable{byID: make(map[int]*Spell)}
}

// Replace swaps the table contents for spells.
// The previous contents stay visible until the new set is fully validated.
func (t *SpellTable) Replace(spells []*Spell) error {
	byID := make(map[int]*Spell, len(spells))
	ordered := make([]*Spell, 0, len(spells))
	for _, s := range spells {
		if s == nil {
			continue
		}
		if _, dup := byID[s.ID]; dup {
			return fmt.Errorf("spell %d (%s): %w", s.ID, s.Name, ErrDuplicateSpell)
		}
		byID[s.ID] = s
		ordered = append(ordered, s)
	}
	slices.SortFunc(ordered, func(a, b *Spell) int { return a.ID - b.ID })
	fp := Fingerprint(ordered)

	t.mu.Lock()
	t.byID = byID
	t.ordered = ordered
	t.loaded = true
	t.generation++
	t.fingerprint = fp
	gen := t.generation
	t.mu.Unlock()

	slog.Info("loaded spells", "count", len(ordered), "generation", gen, "fingerprint", fp[:12])
	return nil
}

// Unload marks the table as not ready (e.g. while the host swaps databases).
// Lookups keep answering from the last snapshot.
func (t *SpellTable) Unload() {
	t.mu.Lock()
	t.loaded = false
	t.mu.Unlock()
}

// Loaded reports whether Replace has completed and the table has not been unloaded since.
func (t *SpellTable) Loaded() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.loaded
}

// Generation increases on every successful Replace.
func (t *SpellTable) Generation() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.generation
}

// Fingerprint returns the blake2b digest of the current contents.
func (t *SpellTable) Fingerprint() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.fingerprint
}

// Spell возвращает спелл по ID.
// Returns nil если спелл не найден.
func (t *SpellTable) Spell(id int) *Spell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.byID[id]
}

// SpellByName scans for a spell by exact (case-insensitive) name. Lowest ID wins.
// Prefer the name index in game/spell for repeated lookups.
func (t *SpellTable) SpellByName(name string) *Spell {
	t.mu.RLock()
	ordered := t.ordered
	t.mu.RUnlock()

	for _, s := range ordered {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return nil
}

// Len returns the number of spells.
func (t *SpellTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ordered)
}

// Range calls fn for every spell in ID order until fn returns false.
// It iterates a snapshot, so fn may call back into the table.
func (t *SpellTable) Range(fn func(s *Spell) bool) {
	t.mu.RLock()
	ordered := t.ordered
	t.mu.RUnlock()

	for _, s := range ordered {
		if !fn(s) {
			return
		}
	}
}
