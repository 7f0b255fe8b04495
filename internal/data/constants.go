package data

// Spell effect attribute codes (SPA) referenced by logic outside the describer table.
// Полный список отображаемых имён живёт в describe/effects.go.
const (
	SPACurrentHP              = 0
	SPAArmorClass             = 1
	SPAMovementSpeed          = 3
	SPACharisma               = 10
	SPAAttackSpeed            = 11
	SPAAddFaction             = 19
	SPABindAffinity           = 25
	SPAGate                   = 26
	SPASummonItem             = 32
	SPASummonPet              = 33
	SPALevitate               = 57
	SPAIllusion               = 58
	SPATotalHP                = 69
	SPACurrentHPOnce          = 79
	SPATeleport               = 83
	SPAAddProc                = 85
	SPAModelSize              = 89
	SPASummonCorpse           = 91
	SPAAttackSpeed2           = 98
	SPAHealOverTime           = 100
	SPAAttackSpeed3           = 119
	SPALimitMaxLevel          = 134
	SPALimitResist            = 135
	SPALimitTarget            = 136
	SPALimitEffect            = 137
	SPALimitSpellType         = 138
	SPALimitSpell             = 139
	SPALimitMinDuration       = 140
	SPALimitInstant           = 141
	SPALimitMinLevel          = 142
	SPALimitCastTimeMin       = 143
	SPALimitCastTimeMax       = 144
	SPATeleport2              = 145
	SPAStackingBlock          = 148
	SPAStackingOverwrite      = 149
	SPATemporaryPets          = 152
	SPASkillAttack            = 193
	SPARangedProc             = 201
	SPAAttackSpeed4           = 371
	SPALimitCombatSkills      = 311
	SPATranslocate            = 104
	SPASpellTrigger           = 340
	SPALimitManaMin           = 348
	SPAApplyEffect            = 374
	SPALimitSpellGroup        = 385
	SPALimitManaMax           = 391
	SPALimitSpellClass        = 403
	SPALimitSpellSubclass     = 404
	SPALimitClass             = 411
	SPALimitRace              = 412
	SPALimitCastingSkill      = 414
	SPAAddMeleeProc           = 419
	SPALimitUseMin            = 422
	SPALimitUseType           = 423
	SPALimitToSkill           = 428
	SPAChanceBestInSpellGroup = 469
	SPATriggerBestInSpellGrp  = 470
	SPATriggerSpellNonItem    = 475
	SPAPlaceholder            = 254
)

// Resist types.
const (
	ResistUnresistable = 0
	ResistMagic        = 1
	ResistFire         = 2
	ResistCold         = 3
	ResistPoison       = 4
	ResistDisease      = 5
	ResistChromatic    = 6
	ResistPrismatic    = 7
	ResistPhysical     = 8
	ResistCorruption   = 9
)

// ResistNames — отображаемые имена типов резиста.
var ResistNames = map[int]string{
	ResistUnresistable: "Unresistable",
	ResistMagic:        "Magic",
	ResistFire:         "Fire",
	ResistCold:         "Cold",
	ResistPoison:       "Poison",
	ResistDisease:      "Disease",
	ResistChromatic:    "Chromatic",
	ResistPrismatic:    "Prismatic",
	ResistPhysical:     "Physical",
	ResistCorruption:   "Corruption",
}

// ClassNames — имена 16 игровых классов, index = class-1.
var ClassNames = [NumClasses]string{
	"Warrior", "Cleric", "Paladin", "Ranger", "Shadow Knight", "Druid", "Monk", "Bard",
	"Rogue", "Shaman", "Necromancer", "Wizard", "Magician", "Enchanter", "Beastlord", "Berserker",
}

// ClassShortNames — трёхбуквенные сокращения классов, index = class-1.
var ClassShortNames = [NumClasses]string{
	"WAR", "CLR", "PAL", "RNG", "SHD", "DRU", "MNK", "BRD",
	"ROG", "SHM", "NEC", "WIZ", "MAG", "ENC", "BST", "BER",
}

// ClassMaskNames returns the short names of every class bit set in mask.
// Bit 0 is Warrior.
func ClassMaskNames(mask int) []string {
	names := make([]string, 0, NumClasses)
	for i := range NumClasses {
		if mask&(1<<i) != 0 {
			names = append(names, ClassShortNames[i])
		}
	}
	return names
}

// SkillNames — имена навыков по ID (клиентская нумерация).
var SkillNames = []string{
	"1H Blunt", "1H Slashing", "2H Blunt", "2H Slashing", "Abjuration", "Alteration",
	"Apply Poison", "Archery", "Backstab", "Bind Wound", "Bash", "Block", "Brass Instruments",
	"Channeling", "Conjuration", "Defense", "Disarm", "Disarm Traps", "Divination", "Dodge",
	"Double Attack", "Dragon Punch", "Dual Wield", "Eagle Strike", "Evocation", "Feign Death",
	"Flying Kick", "Forage", "Hand to Hand", "Hide", "Kick", "Meditate", "Mend", "Offense",
	"Parry", "Pick Lock", "1H Piercing", "Riposte", "Round Kick", "Safe Fall", "Sense Heading",
	"Singing", "Sneak", "Specialize Abjure", "Specialize Alteration", "Specialize Conjuration",
	"Specialize Divination", "Specialize Evocation", "Pick Pockets", "Stringed Instruments",
	"Swimming", "Throwing", "Tiger Claw", "Tracking", "Wind Instruments", "Fishing",
	"Make Poison", "Tinkering", "Research", "Alchemy", "Baking", "Tailoring", "Sense Traps",
	"Blacksmithing", "Fletching", "Brewing", "Alcohol Tolerance", "Begging", "Jewelry Making",
	"Pottery", "Percussion Instruments", "Intimidation", "Berserking", "Taunt", "Frenzy",
	"Remove Traps", "Triple Attack", "2H Piercing",
}

// SkillName returns the skill name for id; -1 means every skill.
func SkillName(id int) string {
	if id == -1 {
		return "All Skills"
	}
	if id < 0 || id >= len(SkillNames) {
		return "Unknown Skill"
	}
	return SkillNames[id]
}

// TargetTypeNames — отображаемые имена типов цели.
var TargetTypeNames = map[TargetType]string{
	TargetLineOfSight:      "Line of Sight",
	TargetGroupV1:          "Group v1",
	TargetPointBlankAE:     "Point Blank AE",
	TargetSingle:           "Single",
	TargetSelf:             "Self",
	TargetTargetedAE:       "Targeted AE",
	TargetAnimal:           "Animal",
	TargetUndead:           "Undead",
	TargetSummoned:         "Summoned",
	TargetLifetap:          "Lifetap",
	TargetPet:              "Pet",
	TargetCorpse:           "Corpse",
	TargetPlant:            "Plant",
	TargetUberGiants:       "Uber Giants",
	TargetUberDragons:      "Uber Dragons",
	TargetTargetedAETap:    "Targeted AE Tap",
	TargetUndeadAE:         "Undead AE",
	TargetSummonedAE:       "Summoned AE",
	TargetHatelist:         "Hatelist",
	TargetHatelist2:        "Hatelist 2",
	TargetChest:            "Chest",
	TargetSpecialMuramites: "Special Muramites",
	TargetCasterPB:         "Caster PB",
	TargetCasterPBNPC:      "Caster PB NPC",
	TargetCasterPBPlayer:   "Caster PB Player",
	TargetSelect:           "Select",
	TargetGroupV2:          "Group v2",
	TargetDirectional:      "Directional AE",
	TargetGroupedClients:   "Grouped Clients",
	TargetBeam:             "Beam",
	TargetRing:             "Ring",
	TargetTargetsTarget:    "Target's Target",
	TargetPetMaster:        "Pet's Master",
	TargetNoPets:           "No Pets",
}

// BodyTypeNames — тела целей для Limit: Target / Set Body Type.
var BodyTypeNames = map[int]string{
	1:  "Humanoid",
	2:  "Lycanthrope",
	3:  "Undead",
	4:  "Giant",
	5:  "Construct",
	6:  "Extraplanar",
	7:  "Magical",
	8:  "Summoned Undead",
	9:  "Bane Giant",
	10: "Dain",
	11: "No Target",
	12: "Vampire",
	13: "Atenha Ra",
	14: "Greater Akheva",
	15: "Khati Sha",
	16: "Seru",
	18: "Draz Nurakk",
	19: "Zek",
	20: "Luggald",
	21: "Animal",
	22: "Insect",
	23: "Monster",
	24: "Summoned",
	25: "Plant",
	26: "Dragon",
	27: "Summoned 2",
	28: "Summoned 3",
	30: "Velious Dragon",
	32: "Muramite",
	33: "No Target 2",
	34: "Swarm Pet",
	67: "Invisible Man",
}
