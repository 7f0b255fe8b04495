package spell

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/spellcore/internal/data"
	"github.com/udisondev/spellcore/internal/testutil"
)

// captureDefaultLog redirects slog.Default to a buffer for the duration of the test.
func captureDefaultLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestEffectCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		spell *data.Spell
		want  int
	}{
		{"nil", nil, 0},
		{"empty", testutil.NewSpell(1, "empty"), 0},
		{"one", testutil.NewSpell(2, "one", testutil.Slot(data.SPAArmorClass, 5)), 1},
		{
			"interior placeholder counts",
			testutil.NewSpell(3, "gap",
				testutil.Slot(data.SPAArmorClass, 5),
				data.PlaceholderSlot(),
				testutil.Slot(data.SPATotalHP, 10)),
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectCount(tt.spell))
		})
	}
}

func TestAccessors_InRange(t *testing.T) {
	t.Parallel()

	s := testutil.NewSpell(10, "s",
		testutil.FullSlot(data.SPAArmorClass, 10, 2, 30, 102),
		testutil.FullSlot(data.SPATotalHP, -5, 7, 40, 100))

	assert.Equal(t, data.SPAArmorClass, Attrib(s, 0))
	assert.Equal(t, 10, Base(s, 0))
	assert.Equal(t, 2, Base2(s, 0))
	assert.Equal(t, 30, Max(s, 0))
	assert.Equal(t, 102, Calc(s, 0))

	assert.Equal(t, data.SPATotalHP, Attrib(s, 1))
	assert.Equal(t, -5, Base(s, 1))

	// Negative index clamps to 0.
	assert.Equal(t, data.SPAArmorClass, Attrib(s, -3))
	assert.Equal(t, 10, Base(s, -1))
}

func TestAttrib_OutOfRangeLogs(t *testing.T) {
	buf := captureDefaultLog(t)
	s := testutil.NewSpell(11, "short", testutil.Slot(data.SPAArmorClass, 10))

	assert.Equal(t, 0, Attrib(s, 5))
	assert.Contains(t, buf.String(), "bad usage of spell attrib")

	buf.Reset()
	assert.Equal(t, 0, Base(s, 5))
	assert.Equal(t, 0, Base2(s, 5))
	assert.Equal(t, 0, Max(s, 5))
	assert.Equal(t, 0, Calc(s, 5))
	assert.Empty(t, buf.String(), "only Attrib reports bad usage")
}

func TestAccessors_EmptySpell(t *testing.T) {
	buf := captureDefaultLog(t)
	s := testutil.Fixtures.Empty

	for i := range data.MaxEffectSlots {
		assert.Equal(t, 0, Attrib(s, i))
		assert.Equal(t, 0, Base(s, i))
		assert.Equal(t, 0, Max(s, i))
		assert.Equal(t, data.SPAPlaceholder, AttribOrPlaceholder(s, i))
	}
	assert.Empty(t, buf.String())
}

func TestAttribOrPlaceholder(t *testing.T) {
	t.Parallel()

	s := testutil.NewSpell(12, "s", testutil.Slot(data.SPATotalHP, 1))
	assert.Equal(t, data.SPATotalHP, AttribOrPlaceholder(s, 0))
	assert.Equal(t, data.SPAPlaceholder, AttribOrPlaceholder(s, 1))
	assert.Equal(t, data.SPAPlaceholder, AttribOrPlaceholder(nil, 0))
}
