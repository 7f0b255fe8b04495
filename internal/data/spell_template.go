package data

// MaxEffectSlots — фиксированное число effect-слотов в определении спелла.
const MaxEffectSlots = 12

// NumClasses is the number of playable classes carried in ClassLevels.
const NumClasses = 16

// DefaultMaxPCLevel is the player level cap used when nothing else is configured.
const DefaultMaxPCLevel = 125

// UnusableClassLevel marks a class that cannot scribe the spell.
const UnusableClassLevel = 255

// SpellType определяет характер спелла для стакинга.
type SpellType int8

const (
	SpellTypeDetrimental          SpellType = iota // 0
	SpellTypeBeneficial                            // 1
	SpellTypeBeneficialGroupOnly                   // 2
)

// String returns the display name of the spell type.
func (t SpellType) String() string {
	switch t {
	case SpellTypeDetrimental:
		return "Detrimental"
	case SpellTypeBeneficial:
		return "Beneficial"
	case SpellTypeBeneficialGroupOnly:
		return "Beneficial(Group)"
	default:
		return "Unknown"
	}
}

// IsBeneficial returns true for both beneficial flavours.
func (t SpellType) IsBeneficial() bool {
	return t == SpellTypeBeneficial || t == SpellTypeBeneficialGroupOnly
}

// TargetType — тип цели спелла (значения совпадают с клиентскими).
type TargetType int16

const (
	TargetLineOfSight       TargetType = 1
	TargetGroupV1           TargetType = 3
	TargetPointBlankAE      TargetType = 4
	TargetSingle            TargetType = 5
	TargetSelf              TargetType = 6
	TargetTargetedAE        TargetType = 8
	TargetAnimal            TargetType = 9
	TargetUndead            TargetType = 10
	TargetSummoned          TargetType = 11
	TargetLifetap           TargetType = 13
	TargetPet               TargetType = 14
	TargetCorpse            TargetType = 15
	TargetPlant             TargetType = 16
	TargetUberGiants        TargetType = 17
	TargetUberDragons       TargetType = 18
	TargetTargetedAETap     TargetType = 20
	TargetUndeadAE          TargetType = 24
	TargetSummonedAE        TargetType = 25
	TargetHatelist          TargetType = 32
	TargetHatelist2         TargetType = 33
	TargetChest             TargetType = 34
	TargetSpecialMuramites  TargetType = 35
	TargetCasterPB          TargetType = 36
	TargetCasterPBNPC       TargetType = 37
	TargetCasterPBPlayer    TargetType = 38
	TargetSelect            TargetType = 39
	TargetGroupV2           TargetType = 41
	TargetDirectional       TargetType = 42
	TargetGroupedClients    TargetType = 43
	TargetBeam              TargetType = 44
	TargetRing              TargetType = 45
	TargetTargetsTarget     TargetType = 46
	TargetPetMaster         TargetType = 47
	TargetNoPets            TargetType = 50
)

// EffectSlot — один слот эффекта: код атрибута (SPA) и четыре числовых поля.
// Смысл Base/Base2/Max зависит от Attrib.
type EffectSlot struct {
	Attrib int `yaml:"attrib" json:"attrib"`
	Base   int `yaml:"base" json:"base"`
	Base2  int `yaml:"base2,omitempty" json:"base2,omitempty"`
	Max    int `yaml:"max,omitempty" json:"max,omitempty"`
	Calc   int `yaml:"calc,omitempty" json:"calc,omitempty"`
}

// PlaceholderSlot returns an unused effect slot.
func PlaceholderSlot() EffectSlot {
	return EffectSlot{Attrib: SPAPlaceholder}
}

// IsPlaceholder returns true if the slot carries no effect.
func (s EffectSlot) IsPlaceholder() bool {
	return s.Attrib == SPAPlaceholder
}

// Spell — immutable определение спелла.
// Принадлежит SpellTable; после загрузки НЕ модифицировать.
type Spell struct {
	ID              int
	Name            string
	Effects         [MaxEffectSlots]EffectSlot
	SpellGroup      int
	SpellType       SpellType
	DurationWindow  bool
	TargetType      TargetType
	CannotBeScribed bool
	Category        int
	Subcategory     int
	ClassLevels     [NumClasses]int // index = class-1
	ResistType      int
	DurationCalc    int
	DurationMax     int
	TeleportZone    string
	Skill           int
}

// NewSpell returns a spell with every effect slot set to placeholder and every
// class level set to unusable.
func NewSpell(id int, name string) *Spell {
	s := &Spell{ID: id, Name: name}
	for i := range s.Effects {
		s.Effects[i] = PlaceholderSlot()
	}
	for i := range s.ClassLevels {
		s.ClassLevels[i] = UnusableClassLevel
	}
	return s
}

// SetEffects copies slots into the spell starting at slot 0; remaining slots become
// placeholders. Slots past MaxEffectSlots are dropped.
func (s *Spell) SetEffects(slots ...EffectSlot) {
	for i := range s.Effects {
		if i < len(slots) {
			s.Effects[i] = slots[i]
		} else {
			s.Effects[i] = PlaceholderSlot()
		}
	}
}

// ClassLevel returns the level at which class (1-based) can use the spell.
func (s *Spell) ClassLevel(class int) int {
	if class < 1 || class > NumClasses {
		return UnusableClassLevel
	}
	return s.ClassLevels[class-1]
}
