package describe

import "github.com/udisondev/spellcore/internal/data"

// Codes encoded as a percentage above 100 (haste, overhaste, size).
var offsetHundred = map[int]bool{
	data.SPAAttackSpeed:  true,
	data.SPAModelSize:    true,
	data.SPAAttackSpeed2: true,
	data.SPAAttackSpeed3: true,
	371:                  true,
}

// Codes that carry their upper bound in base2 (focus ranges).
var base2AsMax = map[int]bool{
	124: true, 125: true, 127: true, 128: true, 129: true, 130: true,
	131: true, 132: true, 296: true, 297: true, 302: true, 393: true,
	399: true, 461: true, 483: true, 507: true,
}

// Codes that carry their magnitude in base2; base keeps the spell reference.
var base2AsBase = map[int]bool{
	453: true, // Doom Melee Threshold
	454: true, // Doom Spell Threshold
}

// fields holds one slot's values after reinterpretation.
type fields struct {
	attrib, base, base2, max, calc int
	ref                            int // original base when it was replaced
}

// normalize rewrites the raw slot so formatters never see encoding quirks.
func normalize(f fields) fields {
	f.ref = f.base
	switch {
	case offsetHundred[f.attrib]:
		f.base -= 100
		if f.max != 0 {
			f.max -= 100
		}
	case f.attrib == data.SPASummonCorpse:
		f.base, f.max = f.max, f.base
	case base2AsMax[f.attrib]:
		if f.base2 != 0 {
			f.max = f.base2
		}
	case base2AsBase[f.attrib]:
		f.base = f.base2
	}
	return f
}
