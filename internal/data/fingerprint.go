package data

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex blake2b-256 digest over every field that matters to
// effect description and stacking. Input must be sorted by ID for a stable result.
func Fingerprint(spells []*Spell) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only fails for keys longer than 64 bytes.
		panic(err)
	}

	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	writeBool := func(v bool) {
		if v {
			writeInt(1)
		} else {
			writeInt(0)
		}
	}

	for _, s := range spells {
		writeInt(s.ID)
		writeInt(len(s.Name))
		h.Write([]byte(s.Name))
		for _, e := range s.Effects {
			writeInt(e.Attrib)
			writeInt(e.Base)
			writeInt(e.Base2)
			writeInt(e.Max)
			writeInt(e.Calc)
		}
		writeInt(s.SpellGroup)
		writeInt(int(s.SpellType))
		writeBool(s.DurationWindow)
		writeInt(int(s.TargetType))
		writeBool(s.CannotBeScribed)
		writeInt(s.Category)
		writeInt(s.Subcategory)
		for _, lvl := range s.ClassLevels {
			writeInt(lvl)
		}
		writeInt(s.ResistType)
		writeInt(s.DurationCalc)
		writeInt(s.DurationMax)
		writeInt(len(s.TeleportZone))
		h.Write([]byte(s.TeleportZone))
		writeInt(s.Skill)
	}

	return hex.EncodeToString(h.Sum(nil))
}
