package spell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/udisondev/spellcore/internal/data"
)

// ErrSpellsNotLoaded is returned by Populate while the spell source is not ready.
var ErrSpellsNotLoaded = errors.New("spell database not loaded")

// SpellSource is the spell database the index is derived from.
// *data.SpellTable implements it.
type SpellSource interface {
	Loaded() bool
	Generation() uint64
	Spell(id int) *data.Spell
	Range(fn func(s *data.Spell) bool)
}

// recursiveEffects point at another spell (or spell group) through base2.
var recursiveEffects = map[int]bool{
	data.SPASpellTrigger:           true,
	data.SPAChanceBestInSpellGroup: true,
	data.SPATriggerBestInSpellGrp:  true,
	data.SPATriggerSpellNonItem:    true,
}

// Index — производный кэш поверх базы спеллов:
// triggered spell ID → parent spell ID, имя → спелл, spell group → члены группы.
//
// Перестраивается целиком (никогда инкрементально) при каждой новой генерации
// источника. Не более одной перестройки одновременно; читатели, заставшие индекс
// непостроенным, сами запускают Populate и ждут её завершения.
//
// Thread-safe.
type Index struct {
	src   SpellSource
	build singleflight.Group

	mu         sync.RWMutex
	populated  bool
	generation uint64
	parents    map[int]int
	byName     map[string]*data.Spell
	groups     map[int][]int
}

// NewIndex creates an unpopulated index over src.
func NewIndex(src SpellSource) *Index {
	return &Index{src: src}
}

// IsPopulated reports whether the index matches the current source generation.
func (x *Index) IsPopulated() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.populated && x.generation == x.src.Generation()
}

// Invalidate drops the populated flag; the next lookup rebuilds.
func (x *Index) Invalidate() {
	x.mu.Lock()
	x.populated = false
	x.mu.Unlock()
}

// Populate rebuilds the index from the source. Concurrent callers share one rebuild.
// Отмена ctx прекращает ожидание только этого вызова: общая перестройка идёт до конца.
// Returns ErrSpellsNotLoaded if the source is not ready.
func (x *Index) Populate(ctx context.Context) error {
	shared := context.WithoutCancel(ctx)
	ch := x.build.DoChan("populate", func() (any, error) {
		return nil, x.rebuild(shared)
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (x *Index) rebuild(ctx context.Context) error {
	if !x.src.Loaded() {
		return ErrSpellsNotLoaded
	}
	start := time.Now()
	gen := x.src.Generation()

	byName := make(map[string]*data.Spell)
	groups := make(map[int][]int)
	var scanned int
	x.src.Range(func(s *data.Spell) bool {
		scanned++
		key := strings.ToLower(s.Name)
		if _, ok := byName[key]; !ok {
			byName[key] = s
		}
		if s.SpellGroup != 0 {
			groups[s.SpellGroup] = append(groups[s.SpellGroup], s.ID)
		}
		return scanned%4096 != 0 || ctx.Err() == nil
	})
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("populating spell index: %w", err)
	}

	// Второй проход: группы уже известны, 469/470 раскрываются в членов группы.
	parents := make(map[int]int)
	record := func(child, parent int) {
		if child <= 0 || child == parent {
			return
		}
		if _, ok := parents[child]; !ok {
			parents[child] = parent
		}
	}
	x.src.Range(func(s *data.Spell) bool {
		for i := range EffectCount(s) {
			e := s.Effects[i]
			if !recursiveEffects[e.Attrib] {
				continue
			}
			switch e.Attrib {
			case data.SPAChanceBestInSpellGroup, data.SPATriggerBestInSpellGrp:
				for _, id := range groups[e.Base2] {
					record(id, s.ID)
				}
			default:
				record(e.Base2, s.ID)
			}
		}
		return true
	})

	x.mu.Lock()
	x.parents = parents
	x.byName = byName
	x.groups = groups
	x.generation = gen
	x.populated = true
	x.mu.Unlock()

	slog.Info("spell index populated",
		"spells", scanned,
		"triggered", len(parents),
		"generation", gen,
		"took", time.Since(start))
	return nil
}

// ensure populates the index if needed. Returns false when it cannot be built.
func (x *Index) ensure() bool {
	if x.IsPopulated() {
		return true
	}
	if err := x.Populate(context.Background()); err != nil {
		if !errors.Is(err, ErrSpellsNotLoaded) {
			slog.Error("populating spell index", "error", err)
		}
		return false
	}
	return true
}

// TriggerParent returns the ID of a spell that triggers id.
func (x *Index) TriggerParent(id int) (int, bool) {
	if !x.ensure() {
		return 0, false
	}
	x.mu.RLock()
	defer x.mu.RUnlock()
	p, ok := x.parents[id]
	return p, ok
}

// SpellByName returns the lowest-ID spell named name (case-insensitive).
// Returns nil if not found or the database is not loaded.
func (x *Index) SpellByName(name string) *data.Spell {
	if !x.ensure() {
		return nil
	}
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.byName[strings.ToLower(name)]
}

// GroupMembers returns the IDs of spells in group, in ID order.
func (x *Index) GroupMembers(group int) []int {
	if group == 0 || !x.ensure() {
		return nil
	}
	x.mu.RLock()
	defer x.mu.RUnlock()
	members := x.groups[group]
	out := make([]int, len(members))
	copy(out, members)
	return out
}

// Category returns the spell category, taken from the trigger parent for spells
// that cannot be scribed.
func (x *Index) Category(s *data.Spell) int {
	if p := x.categorySource(s); p != nil {
		return p.Category
	}
	return 0
}

// Subcategory is like Category for the subcategory field.
func (x *Index) Subcategory(s *data.Spell) int {
	if p := x.categorySource(s); p != nil {
		return p.Subcategory
	}
	return 0
}

func (x *Index) categorySource(s *data.Spell) *data.Spell {
	if s == nil {
		return nil
	}
	if !s.CannotBeScribed {
		return s
	}
	if parentID, ok := x.TriggerParent(s.ID); ok {
		if p := x.src.Spell(parentID); p != nil {
			return p
		}
	}
	return s
}

// Watch polls the source every interval, populating once it is loaded and
// rebuilding after every reload. Blocks until ctx is done.
func (x *Index) Watch(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if x.src.Loaded() && !x.IsPopulated() {
			if err := x.Populate(ctx); err != nil && ctx.Err() == nil && !errors.Is(err, ErrSpellsNotLoaded) {
				slog.Error("spell index watcher", "error", err)
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
