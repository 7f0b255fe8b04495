package data

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const courageYAML = `
spells:
  - id: 202
    name: Courage
    spell_type: beneficial
    target_type: 5
    classes: {CLR: 1, PAL: 8, "Druid": 12}
    duration: {calc: 11, max: 270}
    effects:
      - {attrib: 1, base: 10, max: 10, calc: 100}
      - {attrib: 69, base: 10, max: 10, calc: 100}
  - id: 203
    name: Cure Poison
    effects:
      - {attrib: 36, base: -4}
`

func writeSpellFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseSpellYAML_Courage(t *testing.T) {
	spells, err := ParseSpellYAML([]byte(courageYAML))
	require.NoError(t, err)
	require.Len(t, spells, 2)

	s := spells[0]
	assert.Equal(t, 202, s.ID)
	assert.Equal(t, "Courage", s.Name)
	assert.Equal(t, SpellTypeBeneficial, s.SpellType)
	assert.Equal(t, TargetSingle, s.TargetType)
	assert.Equal(t, 1, s.ClassLevel(2))
	assert.Equal(t, 8, s.ClassLevel(3))
	assert.Equal(t, 12, s.ClassLevel(6))
	assert.Equal(t, UnusableClassLevel, s.ClassLevel(1))
	assert.Equal(t, 11, s.DurationCalc)
	assert.Equal(t, 270, s.DurationMax)

	assert.Equal(t, EffectSlot{Attrib: 1, Base: 10, Max: 10, Calc: 100}, s.Effects[0])
	assert.Equal(t, 69, s.Effects[1].Attrib)
	for i := 2; i < MaxEffectSlots; i++ {
		assert.True(t, s.Effects[i].IsPlaceholder(), "slot %d should be placeholder", i)
	}

	assert.Equal(t, SpellTypeDetrimental, spells[1].SpellType)
	assert.Equal(t, -4, spells[1].Effects[0].Base)
}

func TestParseSpellYAML_TooManyEffects(t *testing.T) {
	body := "spells:\n  - id: 1\n    name: Overfull\n    effects:\n"
	for range MaxEffectSlots + 1 {
		body += "      - {attrib: 0, base: 1}\n"
	}

	_, err := ParseSpellYAML([]byte(body))
	require.ErrorIs(t, err, ErrTooManyEffects)
}

func TestParseSpellYAML_UnknownClass(t *testing.T) {
	body := "spells:\n  - id: 1\n    name: Bad\n    classes: {XYZ: 1}\n    effects: []\n"

	_, err := ParseSpellYAML([]byte(body))
	require.ErrorIs(t, err, ErrUnknownClass)
}

func TestLoadSpellFiles_MergesAndSorts(t *testing.T) {
	a := writeSpellFile(t, "a.yaml", "spells:\n  - {id: 30, name: C, effects: []}\n  - {id: 10, name: A, effects: []}\n")
	b := writeSpellFile(t, "b.yaml", "spells:\n  - {id: 20, name: B, effects: []}\n")

	spells, err := LoadSpellFiles(context.Background(), a, b)
	require.NoError(t, err)
	require.Len(t, spells, 3)
	assert.Equal(t, []int{10, 20, 30}, []int{spells[0].ID, spells[1].ID, spells[2].ID})
}

func TestLoadSpellFiles_DuplicateAcrossFiles(t *testing.T) {
	a := writeSpellFile(t, "a.yaml", "spells:\n  - {id: 10, name: A, effects: []}\n")
	b := writeSpellFile(t, "b.yaml", "spells:\n  - {id: 10, name: A2, effects: []}\n")

	_, err := LoadSpellFiles(context.Background(), a, b)
	require.ErrorIs(t, err, ErrDuplicateSpell)
}

func TestLoadSpellFiles_MissingFile(t *testing.T) {
	_, err := LoadSpellFiles(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"WAR", 1, true},
		{"ber", 16, true},
		{"Shadow Knight", 5, true},
		{"13", 13, true},
		{"0", 0, false},
		{"17", 0, false},
		{"nope", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseClass(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
