package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrUnknownClass is returned for a class key that is neither a short name nor 1..16.
var ErrUnknownClass = errors.New("unknown class")

// SpellFile — корневой элемент YAML-файла спеллов.
type SpellFile struct {
	Spells []SpellEntry `yaml:"spells" json:"spells"`
}

// SpellEntry описывает один спелл в YAML.
// Незаполненные слоты эффектов дополняются placeholder (254).
type SpellEntry struct {
	ID              int            `yaml:"id" json:"id"`
	Name            string         `yaml:"name" json:"name"`
	SpellGroup      int            `yaml:"spell_group,omitempty" json:"spell_group,omitempty"`
	SpellType       string         `yaml:"spell_type,omitempty" json:"spell_type,omitempty" jsonschema:"enum=detrimental,enum=beneficial,enum=beneficial_group"`
	DurationWindow  bool           `yaml:"duration_window,omitempty" json:"duration_window,omitempty"`
	TargetType      int            `yaml:"target_type,omitempty" json:"target_type,omitempty"`
	CannotBeScribed bool           `yaml:"cannot_be_scribed,omitempty" json:"cannot_be_scribed,omitempty"`
	Category        int            `yaml:"category,omitempty" json:"category,omitempty"`
	Subcategory     int            `yaml:"subcategory,omitempty" json:"subcategory,omitempty"`
	Classes         map[string]int `yaml:"classes,omitempty" json:"classes,omitempty"`
	ResistType      int            `yaml:"resist_type,omitempty" json:"resist_type,omitempty"`
	Duration        DurationEntry  `yaml:"duration,omitempty" json:"duration,omitempty"`
	TeleportZone    string         `yaml:"teleport_zone,omitempty" json:"teleport_zone,omitempty"`
	Skill           int            `yaml:"skill,omitempty" json:"skill,omitempty"`
	Effects         []EffectSlot   `yaml:"effects" json:"effects"`
}

// DurationEntry — формула длительности баффа.
type DurationEntry struct {
	Calc int `yaml:"calc,omitempty" json:"calc,omitempty"`
	Max  int `yaml:"max,omitempty" json:"max,omitempty"`
}

// LoadSpellFiles парсит YAML-файлы спеллов параллельно и возвращает
// объединённый список, отсортированный по ID.
func LoadSpellFiles(ctx context.Context, paths ...string) ([]*Spell, error) {
	results := make([][]*Spell, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			spells, err := loadSpellFile(path)
			if err != nil {
				return err
			}
			results[i] = spells
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[int]string)
	var all []*Spell
	for i, spells := range results {
		for _, s := range spells {
			if prev, dup := seen[s.ID]; dup {
				return nil, fmt.Errorf("spell %d in %s (already in %s): %w", s.ID, paths[i], prev, ErrDuplicateSpell)
			}
			seen[s.ID] = paths[i]
			all = append(all, s)
		}
	}
	slices.SortFunc(all, func(a, b *Spell) int { return a.ID - b.ID })

	slog.Debug("parsed spell files", "files", len(paths), "spells", len(all))
	return all, nil
}

func loadSpellFile(path string) ([]*Spell, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spell file %s: %w", path, err)
	}
	spells, err := ParseSpellYAML(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing spell file %s: %w", path, err)
	}
	return spells, nil
}

// ParseSpellYAML decodes one spell file.
func ParseSpellYAML(raw []byte) ([]*Spell, error) {
	var f SpellFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	spells := make([]*Spell, 0, len(f.Spells))
	for i := range f.Spells {
		s, err := f.Spells[i].Build()
		if err != nil {
			return nil, err
		}
		spells = append(spells, s)
	}
	return spells, nil
}

// Build converts the YAML entry into an immutable Spell.
func (e *SpellEntry) Build() (*Spell, error) {
	if len(e.Effects) > MaxEffectSlots {
		return nil, fmt.Errorf("spell %d has %d effects: %w", e.ID, len(e.Effects), ErrTooManyEffects)
	}

	s := NewSpell(e.ID, e.Name)
	s.SetEffects(e.Effects...)
	s.SpellGroup = e.SpellGroup
	s.SpellType = ParseSpellType(e.SpellType)
	s.DurationWindow = e.DurationWindow
	s.TargetType = TargetType(e.TargetType)
	s.CannotBeScribed = e.CannotBeScribed
	s.Category = e.Category
	s.Subcategory = e.Subcategory
	s.ResistType = e.ResistType
	s.DurationCalc = e.Duration.Calc
	s.DurationMax = e.Duration.Max
	s.TeleportZone = e.TeleportZone
	s.Skill = e.Skill

	for key, lvl := range e.Classes {
		class, ok := ParseClass(key)
		if !ok {
			return nil, fmt.Errorf("spell %d class %q: %w", e.ID, key, ErrUnknownClass)
		}
		s.ClassLevels[class-1] = lvl
	}
	return s, nil
}

// ParseSpellType converts a YAML spell type to SpellType. Unknown values are detrimental.
func ParseSpellType(v string) SpellType {
	switch strings.ToLower(v) {
	case "beneficial", "1":
		return SpellTypeBeneficial
	case "beneficial_group", "beneficial_group_only", "2":
		return SpellTypeBeneficialGroupOnly
	default:
		return SpellTypeDetrimental
	}
}

// ParseClass resolves a short class name ("CLR") or a 1-based class number ("2").
func ParseClass(v string) (int, bool) {
	for i, short := range ClassShortNames {
		if strings.EqualFold(short, v) || strings.EqualFold(ClassNames[i], v) {
			return i + 1, true
		}
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= NumClasses {
		return n, true
	}
	return 0, false
}
