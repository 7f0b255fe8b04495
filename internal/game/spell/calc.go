package spell

import (
	"sync/atomic"

	"github.com/udisondev/spellcore/internal/data"
)

// Duration sentinels returned by CalcDuration.
const (
	DurationPermanent     = -1 // cancelled by game events, never times out
	DurationAuraPermanent = -4 // lasts while in range of the aura caster
)

// Formula codes with fixed meaning.
const (
	CalcBase       = 0   // base as-is
	CalcBaseCapped = 100 // base capped at max
	CalcRandom     = 123 // random between base and max
)

var maxPCLevel atomic.Int32

func init() {
	maxPCLevel.Store(data.DefaultMaxPCLevel)
}

// SetMaxPCLevel sets the player level cap. Must be called during initialization.
func SetMaxPCLevel(level int) {
	if level > 0 {
		maxPCLevel.Store(int32(level))
	}
}

// MaxPCLevel returns the player level cap.
func MaxPCLevel() int {
	return int(maxPCLevel.Load())
}

// CalcValue returns the scaled magnitude of an effect at level after tick ticks.
//
// The magnitude is computed from abs(base), clamped to abs(max) when max != 0, and only
// then given the sign of base. Decaying formulas floor at zero.
func CalcValue(calc, base, max, tick, minLevel, level int) int {
	if level < minLevel {
		level = minLevel
	}

	ubase := abs(base)
	value := ubase + formulaChange(calc, ubase, abs(max), tick, level)
	if value < 0 {
		value = 0
	}
	if max != 0 && value > abs(max) {
		value = abs(max)
	}
	if base < 0 {
		value = -value
	}
	return value
}

// formulaChange returns what formula calc adds to the unsigned base.
func formulaChange(calc, ubase, umax, tick, level int) int {
	switch calc {
	case CalcBase, CalcBaseCapped:
		return 0
	case 101:
		return level / 2
	case 102:
		return level
	case 103:
		return level * 2
	case 104:
		return level * 3
	case 105:
		return level * 4
	case 106:
		return level * 5
	case 107:
		return -tick
	case 108:
		return -2 * tick
	case 109:
		return level / 4
	case 110:
		return level / 6
	case 111:
		return aboveLevel(level, 16) * 6
	case 112:
		return aboveLevel(level, 24) * 8
	case 113:
		return aboveLevel(level, 34) * 10
	case 114:
		return aboveLevel(level, 44) * 15
	case 115:
		return aboveLevel(level, 15) * 7
	case 116:
		return aboveLevel(level, 24) * 10
	case 117:
		return aboveLevel(level, 34) * 13
	case 118:
		return aboveLevel(level, 44) * 20
	case 119:
		return level / 8
	case 120:
		return -5 * tick
	case 121:
		return level / 3
	case 122:
		return -12 * tick
	case CalcRandom:
		// Upper bound of the roll; descriptions render the range separately.
		if umax > ubase {
			return umax - ubase
		}
		return 0
	case 124:
		return aboveLevel(level, 50)
	case 125:
		return aboveLevel(level, 50) * 2
	case 126:
		return aboveLevel(level, 50) * 3
	case 127:
		return aboveLevel(level, 50) * 4
	case 128:
		return aboveLevel(level, 50) * 5
	case 129:
		return aboveLevel(level, 50) * 10
	case 130:
		return aboveLevel(level, 50) * 15
	case 131:
		return aboveLevel(level, 50) * 20
	case 132:
		return aboveLevel(level, 50) * 25
	case 139:
		return aboveLevel(level, 30) / 2
	case 140:
		return aboveLevel(level, 30)
	case 141:
		return 3 * aboveLevel(level, 30) / 2
	case 142:
		return 2 * aboveLevel(level, 30)
	case 143:
		return 3 * level / 4
	case 201, 202, 203, 204, 205:
		// Grows to max over the duration; the steady state is max.
		if umax > ubase {
			return umax - ubase
		}
		return 0
	}

	switch {
	case calc > 0 && calc < 100:
		return level * calc
	case calc >= 1000 && calc < 2000:
		return -(calc - 1000) * tick
	case calc >= 2000 && calc < 3000:
		return level * (calc - 2000)
	}
	return 0
}

// IsDecayFormula reports whether calc shrinks the value as ticks pass.
func IsDecayFormula(calc int) bool {
	switch calc {
	case 107, 108, 120, 122:
		return true
	}
	return calc >= 1000 && calc < 2000
}

// CalcDuration returns the buff duration in ticks for formula calc.
// Unrecognized formulas return max; results are capped by max when max > 0.
func CalcDuration(calc, max, level int) int {
	var value int
	switch calc {
	case 0:
		return 0
	case 1:
		value = level / 2
		if value < 1 {
			value = 1
		}
	case 2:
		value = level/2 + 5
		if value < 6 {
			value = 6
		}
	case 3:
		value = level * 30
	case 4:
		value = 50
	case 5:
		value = 2
	case 6:
		value = level/2 + 2
	case 7:
		value = level
	case 8:
		value = level + 10
	case 9:
		value = level*2 + 10
	case 10:
		value = level*3 + 10
	case 11:
		value = (level + 3) * 30
	case 12:
		value = level / 4
		if value < 1 {
			value = 1
		}
	case 13:
		value = level*4 + 10
	case 14:
		value = (level + 2) * 5
	case 15:
		value = (level + 10) * 10
	case 50:
		return DurationPermanent
	case 51:
		return DurationAuraPermanent
	case 3600:
		value = 3600
	default:
		return max
	}

	if max > 0 && value > max {
		value = max
	}
	return value
}

// CalcMinSpellLevel returns the lowest class level that can use the spell.
// Spells nobody can scribe report level 1.
func CalcMinSpellLevel(s *data.Spell) int {
	if s == nil {
		return 1
	}
	capLevel := MaxPCLevel()
	minLevel := capLevel + 1
	for class := 1; class <= data.NumClasses; class++ {
		if lvl := s.ClassLevel(class); lvl < minLevel {
			minLevel = lvl
		}
	}
	if minLevel > capLevel || minLevel < 1 {
		return 1
	}
	return minLevel
}

// CalcMaxSpellLevel returns the first level in [minLevel, level] at which the scaled
// value reaches abs(max), level when it never does, and MaxPCLevel when max is 0.
// Поиск не выходит за MaxPCLevel.
func CalcMaxSpellLevel(calc, base, max, tick, minLevel, level int) int {
	if max == 0 {
		return MaxPCLevel()
	}
	level = min(level, MaxPCLevel())
	target := abs(max)
	for lvl := maxInt(minLevel, 1); lvl <= level; lvl++ {
		if abs(CalcValue(calc, base, max, tick, minLevel, lvl)) >= target {
			return lvl
		}
	}
	return level
}

func aboveLevel(level, threshold int) int {
	if level > threshold {
		return level - threshold
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
