package describe

import "fmt"

// effectDef is the rendering strategy of one attribute code.
type effectDef struct {
	name string
	tmpl template
}

// effectTable maps every known attribute code (SPA) to its name and template.
// Codes past the end, or entries with no name, render with the generic field dump.
var effectTable = [...]effectDef{
	0:   {"Current HP", tmplPerTick},
	1:   {"Armor Class", tmplBase},
	2:   {"Attack", tmplBase},
	3:   {"Movement Speed", tmplBasePct},
	4:   {"Strength", tmplBase},
	5:   {"Dexterity", tmplBase},
	6:   {"Agility", tmplBase},
	7:   {"Stamina", tmplBase},
	8:   {"Intelligence", tmplBase},
	9:   {"Wisdom", tmplBase},
	10:  {"Charisma", tmplBase},
	11:  {"Attack Speed", tmplBasePct},
	12:  {"Invisibility", tmplName},
	13:  {"See Invisible", tmplName},
	14:  {"Water Breathing", tmplName},
	15:  {"Current Mana", tmplPerTick},
	16:  {"NPC Frenzy", tmplRaw},
	17:  {"NPC Awareness", tmplRaw},
	18:  {"Lull", tmplMaxLevel},
	19:  {"NPC Faction", tmplBase},
	20:  {"Blindness", tmplName},
	21:  {"Stun", tmplMillis},
	22:  {"Charm", tmplMaxLevel},
	23:  {"Fear", tmplMaxLevel},
	24:  {"Fatigue", tmplBase},
	25:  {"Bind Affinity", tmplName},
	26:  {"Gate", tmplName},
	27:  {"Cancel Magic", tmplCounter},
	28:  {"Invisibility versus Undead", tmplName},
	29:  {"Invisibility versus Animals", tmplName},
	30:  {"Aggro Radius", tmplBase},
	31:  {"Mesmerize", tmplMaxLevel},
	32:  {"Summon Item", tmplSummonItem},
	33:  {"Summon Pet", tmplSummonPet},
	34:  {"Confuse", tmplName},
	35:  {"Disease Counter", tmplBase},
	36:  {"Poison Counter", tmplBase},
	37:  {"Detect Hostile", tmplName},
	38:  {"Detect Magic", tmplName},
	39:  {"Twincast Blocker", tmplName},
	40:  {"Invulnerability", tmplName},
	41:  {"Banish", tmplName},
	42:  {"Shadow Step", tmplName},
	43:  {"Berserk", tmplName},
	44:  {"Lycanthropy", tmplName},
	45:  {"Vampirism", tmplName},
	46:  {"Fire Resist", tmplBase},
	47:  {"Cold Resist", tmplBase},
	48:  {"Poison Resist", tmplBase},
	49:  {"Disease Resist", tmplBase},
	50:  {"Magic Resist", tmplBase},
	51:  {"Detect Traps", tmplName},
	52:  {"Sense Undead", tmplName},
	53:  {"Sense Summoned", tmplName},
	54:  {"Sense Animals", tmplName},
	55:  {"Rune", tmplRune},
	56:  {"True North", tmplName},
	57:  {"Levitate", tmplName},
	58:  {"Illusion", tmplIllusion},
	59:  {"Damage Shield", tmplBase},
	60:  {"Transfer Item", tmplName},
	61:  {"Identify", tmplName},
	62:  {"Item ID", tmplRaw},
	63:  {"Wipe Hate List", tmplChance},
	64:  {"Spin Stun", tmplMillis},
	65:  {"Infravision", tmplName},
	66:  {"Ultravision", tmplName},
	67:  {"Eye of Zomm", tmplName},
	68:  {"Reclaim Energy", tmplName},
	69:  {"Max HP", tmplBase},
	70:  {"Corpse Bomb", tmplRaw},
	71:  {"Create Undead", tmplSummonPet},
	72:  {"Preserve Corpse", tmplName},
	73:  {"Bind Sight", tmplName},
	74:  {"Feign Death", tmplChance},
	75:  {"Voice Graft", tmplName},
	76:  {"Sentinel", tmplName},
	77:  {"Locate Corpse", tmplName},
	78:  {"Spell Shield", tmplBase},
	79:  {"Current HP Once", tmplBase},
	80:  {"Enchant Light", tmplName},
	81:  {"Resurrect", tmplResurrect},
	82:  {"Summon Target", tmplName},
	83:  {"Teleport", tmplTeleport},
	84:  {"Toss Up", tmplBase},
	85:  {"Add Proc", tmplProc},
	86:  {"Reaction Radius", tmplBase},
	87:  {"Magnification", tmplBasePct},
	88:  {"Evacuate", tmplTeleport},
	89:  {"Player Size", tmplBasePct},
	90:  {"Cloak", tmplName},
	91:  {"Summon Corpse", tmplCorpse},
	92:  {"Hate", tmplBase},
	93:  {"Stop Rain", tmplName},
	94:  {"Make Fragile", tmplName},
	95:  {"Sacrifice", tmplName},
	96:  {"Silence", tmplName},
	97:  {"Mana Pool", tmplBase},
	98:  {"Attack Speed 2", tmplBasePct},
	99:  {"Root", tmplName},
	100: {"Heal Over Time", tmplPerTick},
	101: {"Complete Heal", tmplName},
	102: {"Fearless", tmplName},
	103: {"Call Pet", tmplName},
	104: {"Translocate", tmplTeleport},
	105: {"Anti-Gate", tmplName},
	106: {"Summon Warder", tmplSummonPet},
	107: {"Alter NPC Level", tmplBase},
	108: {"Summon Familiar", tmplSummonPet},
	109: {"Summon Item Into Bag", tmplSummonItem},
	110: {"Archery", tmplBasePct},
	111: {"All Resists", tmplBase},
	112: {"Casting Level", tmplBase},
	113: {"Summon Horse", tmplName},
	114: {"Hate Generation", tmplBasePct},
	115: {"Hunger", tmplName},
	116: {"Curse Counter", tmplBase},
	117: {"Magic Weapon", tmplName},
	118: {"Amplification", tmplBasePct},
	119: {"Attack Speed 3", tmplBasePct},
	120: {"Healing Taken", tmplBasePct},
	121: {"Reverse Damage Shield", tmplBase},
	122: {"Reduce Skill", tmplRaw},
	123: {"Immunity", tmplName},
	124: {"Spell Damage", tmplPctRange},
	125: {"Healing", tmplPctRange},
	126: {"Spell Resist Rate", tmplBasePct},
	127: {"Spell Haste", tmplPctRange},
	128: {"Spell Duration", tmplPctRange},
	129: {"Spell Range", tmplPctRange},
	130: {"Spell and Bash Hate", tmplPctRange},
	131: {"Chance of Using Reagent", tmplPctRange},
	132: {"Spell Mana Cost", tmplPctRange},
	133: {"Stun Time", tmplBasePct},
	134: {"Limit: Max Level", tmplLimit},
	135: {"Limit: Resist", tmplLimitResist},
	136: {"Limit: Target", tmplLimitTarget},
	137: {"Limit: Effect", tmplLimitEffect},
	138: {"Limit: SpellType", tmplLimitSpellType},
	139: {"Limit: Spell", tmplLimitSpell},
	140: {"Limit: Min Duration", tmplLimitDuration},
	141: {"Limit: Instant", tmplLimit},
	142: {"Limit: Min Level", tmplLimit},
	143: {"Limit: Min Cast Time", tmplLimitCastTime},
	144: {"Limit: Max Cast Time", tmplLimitCastTime},
	145: {"Teleport v2", tmplTeleport},
	146: {"Electricity Resist", tmplBase},
	147: {"Percent Heal", tmplBasePct},
	148: {"Stacking: Block", tmplStacking},
	149: {"Stacking: Overwrite", tmplStacking},
	150: {"Death Save", tmplChance},
	151: {"Suspend Pet", tmplName},
	152: {"Temporary Pets", tmplSummonPet},
	153: {"Balance Health", tmplBasePct},
	154: {"Cancel Detrimental", tmplCounter},
	155: {"Spell Critical Damage", tmplBasePct},
	156: {"Illusion: Target", tmplName},
	157: {"Spell Damage Shield", tmplBase},
	158: {"Reflect Spell", tmplChance},
	159: {"All Stats", tmplBase},
	160: {"Drunk", tmplName},
	161: {"Mitigate Spell Damage", tmplBasePct},
	162: {"Mitigate Melee Damage", tmplBasePct},
	163: {"Negate Attacks", tmplCounter},
	164: {"Appraise LDoN Chest", tmplName},
	165: {"Disarm LDoN Trap", tmplName},
	166: {"Unlock LDoN Chest", tmplName},
	167: {"Pet Power", tmplBase},
	168: {"Melee Mitigation", tmplBasePct},
	169: {"Critical Hit Chance", tmplSkill},
	170: {"Spell Critical Chance", tmplBasePct},
	171: {"Crippling Blow Chance", tmplBasePct},
	172: {"Avoid Melee Chance", tmplBasePct},
	173: {"Riposte Chance", tmplBasePct},
	174: {"Dodge Chance", tmplBasePct},
	175: {"Parry Chance", tmplBasePct},
	176: {"Dual Wield Chance", tmplBasePct},
	177: {"Double Attack Chance", tmplBasePct},
	178: {"Lifetap from Weapon Damage", tmplBasePct},
	179: {"Instrument Modifier", tmplBasePct},
	180: {"Resist Spell Chance", tmplBasePct},
	181: {"Resist Fear Spell Chance", tmplBasePct},
	182: {"Hundred Hands", tmplBase},
	183: {"Skill Check Chance", tmplBasePct},
	184: {"Hit Chance", tmplSkill},
	185: {"Damage Modifier", tmplSkill},
	186: {"Min Damage Modifier", tmplSkill},
	187: {"Balance Mana", tmplBasePct},
	188: {"Block Chance", tmplBasePct},
	189: {"Current Endurance", tmplPerTick},
	190: {"Max Endurance", tmplBase},
	191: {"Amnesia", tmplName},
	192: {"Hate Over Time", tmplBase},
	193: {"Skill Attack", tmplSkillAttack},
	194: {"Fade", tmplChance},
	195: {"Stun Resist", tmplBasePct},
	196: {"Strikethrough", tmplBasePct},
	197: {"Skill Damage Taken", tmplSkill},
	198: {"Current Endurance Once", tmplBase},
	199: {"Taunt", tmplBase},
	200: {"Proc Chance", tmplBasePct},
	201: {"Ranged Proc", tmplProc},
	202: {"Illusion Other", tmplName},
	203: {"Mass Group Buff", tmplName},
	204: {"Group Fear Immunity", tmplSeconds},
	205: {"Rampage", tmplBase},
	206: {"AE Taunt", tmplBase},
	207: {"Flesh to Bone", tmplName},
	208: {"Purge Poison", tmplName},
	209: {"Cancel Beneficial", tmplCounter},
	210: {"Pet Shield", tmplSeconds},
	211: {"AE Melee", tmplBasePct},
	212: {"Frenzied Devastation", tmplBasePct},
	213: {"Pet Max HP", tmplBasePct},
	214: {"Change Max HP", tmplBasePct},
	215: {"Pet Avoidance", tmplBasePct},
	216: {"Accuracy", tmplSkill},
	217: {"Headshot", tmplName},
	218: {"Pet Critical Melee", tmplBasePct},
	219: {"Slay Undead", tmplChance},
	220: {"Skill Damage Amount", tmplSkill},
	221: {"Reduce Weight", tmplBasePct},
	222: {"Block Behind", tmplBasePct},
	223: {"Double Riposte", tmplBasePct},
	224: {"Add Riposte", tmplBasePct},
	225: {"Give Double Attack", tmplBasePct},
	226: {"Two-Handed Bash", tmplName},
	227: {"Reduce Skill Timer", tmplSeconds},
	228: {"Reduce Fall Damage", tmplBasePct},
	229: {"Persistent Casting", tmplBasePct},
	230: {"Extended Shielding", tmplBase},
	231: {"Stun Bash Chance", tmplBasePct},
	232: {"Divine Save", tmplChance},
	233: {"Metabolism", tmplBasePct},
	234: {"Poison Mastery", tmplName},
	235: {"Focus Channeling", tmplBasePct},
	236: {"Free Pet", tmplName},
	237: {"Pet Affinity", tmplName},
	238: {"Permanent Illusion", tmplName},
	239: {"Stonewall", tmplName},
	240: {"String Unbreakable", tmplName},
	241: {"Improve Reclaim Energy", tmplBasePct},
	242: {"Increase Chance Memwipe", tmplBasePct},
	243: {"No Break Charm Chance", tmplBasePct},
	244: {"Root Break Chance", tmplBasePct},
	245: {"Trap Circumvention", tmplBasePct},
	246: {"Lung Capacity", tmplBase},
	247: {"Increase Skill Cap", tmplSkill},
	248: {"Extra Specialization", tmplName},
	249: {"Offhand Min Weapon Damage", tmplBase},
	250: {"Increase Proc Chance", tmplBasePct},
	251: {"Endless Quiver", tmplName},
	252: {"Backstab from Front", tmplName},
	253: {"Chaotic Stab", tmplName},
	254: {"Placeholder", tmplName},
	255: {"Shielding Duration", tmplSeconds},
	256: {"Shroud of Stealth", tmplName},
	257: {"Give Pet Hold", tmplName},
	258: {"Triple Backstab", tmplChance},
	259: {"AC Limit", tmplBase},
	260: {"Add Instrument Modifier", tmplBasePct},
	261: {"Song Modifier Cap", tmplBasePct},
	262: {"Stats Cap", tmplStatsCap},
	263: {"Tradeskill Masteries", tmplBase},
	264: {"Reduce AA Timer", tmplSeconds},
	265: {"No Fizzle", tmplBase},
	266: {"Extra Attack Chance", tmplBasePct},
	267: {"Add Pet Commands", tmplName},
	268: {"Tradeskill Fail Chance", tmplBasePct},
	269: {"Max Bind Wound", tmplBasePct},
	270: {"Bard Song Range", tmplBasePct},
	271: {"Base Run Speed", tmplBasePct},
	272: {"Casting Level 2", tmplBase},
	273: {"Critical DoT Chance", tmplBasePct},
	274: {"Critical Heal Chance", tmplBasePct},
	275: {"Critical Mend Chance", tmplBasePct},
	276: {"Dual Wield Amount", tmplBasePct},
	277: {"Extra Divine Intervention Chance", tmplBasePct},
	278: {"Finishing Blow", tmplChance},
	279: {"Flurry Chance", tmplBasePct},
	280: {"Pet Flurry Chance", tmplBasePct},
	281: {"Pet Feign Death", tmplChance},
	282: {"Bandage Heal", tmplBasePct},
	283: {"Special Attack Chain", tmplBasePct},
	284: {"Lay on Hands Heal", tmplBase},
	285: {"Allow Hide Evade", tmplName},
	286: {"Spell Damage Amount", tmplBase},
	287: {"Spell Duration Ticks", tmplTicks},
	288: {"Skill Attack Proc", tmplProc},
	289: {"Cast on Fade", tmplCastSpell},
	290: {"Movement Speed Cap", tmplBasePct},
	291: {"Purify", tmplCounter},
	292: {"Strikethrough 2", tmplBasePct},
	293: {"Stun Resist 2", tmplBasePct},
	294: {"Spell Critical Chance 2", tmplBasePct},
	295: {"Reduce Special Timer", tmplSeconds},
	296: {"Spell Vulnerability", tmplPctRange},
	297: {"Incoming Damage Amount", tmplPctRange},
	298: {"Change Height", tmplHeight},
	299: {"Wake the Dead", tmplSummonPet},
	300: {"Doppelganger", tmplSummonPet},
	301: {"Ranged Damage", tmplBasePct},
	302: {"Spell Damage 2", tmplPctRange},
	303: {"Spell Damage Amount 2", tmplBase},
	304: {"Secondary Riposte Chance", tmplBasePct},
	305: {"Damage Shield Mitigation", tmplBase},
	306: {"Army of the Dead", tmplSummonPet},
	307: {"Appraisal", tmplName},
	308: {"Suspend Minion", tmplName},
	309: {"Gate to Caster's Bind", tmplName},
	310: {"Reduce Reuse Timer", tmplSeconds},
	311: {"Limit: Combat Skills", tmplLimit},
	312: {"Sanctuary", tmplName},
	313: {"Forage Master", tmplChance},
	314: {"Improved Invisibility", tmplName},
	315: {"Improved Invisibility vs Undead", tmplName},
	316: {"Improved Invisibility vs Animals", tmplName},
	317: {"Worn HP Regen Cap", tmplBase},
	318: {"Worn Mana Regen Cap", tmplBase},
	319: {"Critical HP Regen", tmplBasePct},
	320: {"Shield Block Chance", tmplBasePct},
	321: {"Reduce Target Hate", tmplBase},
	322: {"Gate to Starting City", tmplName},
	323: {"Defensive Proc", tmplProc},
	324: {"HP for Mana", tmplBasePct},
	325: {"No Break AE Sneak", tmplName},
	326: {"Spell Slots", tmplBase},
	327: {"Buff Slots", tmplBase},
	328: {"Negative HP Limit", tmplBase},
	329: {"Mana Absorb Damage", tmplBasePct},
	330: {"Critical Damage", tmplSkill},
	331: {"Salvage", tmplBasePct},
	332: {"Summon to Corpse", tmplName},
	333: {"Cast on Rune Fade", tmplCastSpell},
	334: {"Bard AE DoT", tmplPerTick},
	335: {"Block Next Spell", tmplChance},
	336: {"Illusionary Target", tmplName},
	337: {"Experience Gain", tmplBasePct},
	338: {"Summon and Resurrect", tmplName},
	339: {"Trigger on Cast", tmplSpellTrigger},
	340: {"Spell Trigger", tmplSpellTrigger},
	341: {"Item Attack Cap", tmplBase},
	342: {"Immune Fleeing", tmplName},
	343: {"Interrupt Casting", tmplChance},
	344: {"Channel Chance Items", tmplBasePct},
	345: {"Assassinate Level", tmplBase},
	346: {"Headshot Level", tmplBase},
	347: {"Double Ranged Attack", tmplChance},
	348: {"Limit: Min Mana", tmplLimit},
	349: {"Shield Equip Damage", tmplBasePct},
	350: {"Mana Burn", tmplBase},
	351: {"Persistent Effect", tmplCastSpell},
	352: {"Trap Count", tmplBase},
	353: {"Additional Aura", tmplBase},
	354: {"Deactivate All Traps", tmplName},
	355: {"Learn Trap", tmplName},
	356: {"Change Trigger Type", tmplName},
	357: {"Inhibit Spell Casting", tmplName},
	358: {"Current Mana Once", tmplBase},
	359: {"Passive Sense Trap", tmplName},
	360: {"Proc on Kill Shot", tmplSpellTrigger},
	361: {"Cast on Death", tmplSpellTrigger},
	362: {"Potion Belt Slots", tmplBase},
	363: {"Bandolier Slots", tmplBase},
	364: {"Triple Attack Chance", tmplBasePct},
	365: {"Proc on Spell Kill Shot", tmplSpellTrigger},
	366: {"Group Shielding", tmplName},
	367: {"Change Body Type", tmplBodyType},
	368: {"Faction Modifier", tmplFaction},
	369: {"Corruption Counter", tmplBase},
	370: {"Corruption Resist", tmplBase},
	371: {"Inhibit Melee", tmplBasePct},
	372: {"Forage Skill", tmplBase},
	373: {"Cast on Fade 2", tmplCastSpell},
	374: {"Apply Effect", tmplSpellTrigger},
	375: {"Critical DoT Damage", tmplBasePct},
	376: {"Fling", tmplName},
	377: {"Cast on Fade 3", tmplCastSpell},
	378: {"Spell Effect Resist Chance", tmplBasePct},
	379: {"Directional Shadowstep", tmplName},
	380: {"Knockback", tmplBase},
	381: {"Fling to Self", tmplName},
	382: {"Inhibit Effect", tmplLimitEffect},
	383: {"Sympathetic Proc", tmplSpellTrigger},
	384: {"Fling to Target", tmplName},
	385: {"Limit: SpellGroup", tmplLimit},
	386: {"Cast on Curer", tmplCastSpell},
	387: {"Cast on Cure", tmplCastSpell},
	388: {"Summon Corpse Zone", tmplName},
	389: {"Refresh Spell Timer", tmplRefreshTimer},
	390: {"Lockout Spell Timer", tmplRefreshTimer},
	391: {"Limit: Max Mana", tmplLimit},
	392: {"Heal Amount", tmplBase},
	393: {"Incoming Healing", tmplPctRange},
	394: {"Incoming Heal Amount", tmplBase},
	395: {"Critical Heal Chance 2", tmplBasePct},
	396: {"Critical Heal Amount", tmplBase},
	397: {"Pet Melee Mitigation", tmplBase},
	398: {"Swarm Pet Duration", tmplSeconds},
	399: {"Twincast Chance", tmplPctRange},
	400: {"Healburn", tmplBase},
	401: {"Mana Ignite", tmplBase},
	402: {"Endurance Ignite", tmplBase},
	403: {"Limit: SpellClass", tmplLimit},
	404: {"Limit: SpellSubclass", tmplLimit},
	405: {"Staff Block Chance", tmplBasePct},
	406: {"Cast on Numhits Fade", tmplCastSpell},
	407: {"Cast on Focus Effect", tmplCastSpell},
	408: {"Limit HP Percent", tmplBasePct},
	409: {"Limit Mana Percent", tmplBasePct},
	410: {"Limit Endurance Percent", tmplBasePct},
	411: {"Limit: PlayerClass", tmplLimitClass},
	412: {"Limit: Race", tmplLimit},
	413: {"Base Effects", tmplBasePct},
	414: {"Limit: CastingSkill", tmplLimitSkill},
	415: {"Limit: Item Class", tmplLimit},
	416: {"Armor Class 2", tmplBase},
	417: {"Mana Regen 2", tmplPerTick},
	418: {"Skill Damage Amount 2", tmplSkill},
	419: {"Add Melee Proc", tmplProc},
	420: {"Limit: Use Count", tmplLimit},
	421: {"Increase Hits", tmplCounter},
	422: {"Limit: Use Min", tmplLimit},
	423: {"Limit: Use Type", tmplLimit},
	424: {"Gravitate", tmplBase},
	425: {"Fly", tmplName},
	426: {"Extended Target Slots", tmplBase},
	427: {"Skill Proc", tmplProc},
	428: {"Limit: Skill", tmplLimitSkill},
	429: {"Skill Proc on Success", tmplProc},
	430: {"Post Effect", tmplRaw},
	431: {"Post Effect Data", tmplRaw},
	432: {"Trophy Slots", tmplBase},
	433: {"Skill Min Damage", tmplSkill},
	434: {"Skill Min Damage 2", tmplSkill},
	435: {"Fragile Defense", tmplBase},
	436: {"Freeze Buff Timer", tmplName},
	437: {"Teleport to Anchor", tmplTeleport},
	438: {"Translocate to Anchor", tmplTeleport},
	439: {"Assassinate Chance", tmplChance},
	440: {"Finishing Blow Max", tmplBase},
	441: {"Distance Removal", tmplBase},
	442: {"Doom on Target Condition", tmplCastSpell},
	443: {"Doom on Caster Condition", tmplCastSpell},
	444: {"Improved Taunt", tmplBase},
	445: {"Mercenary Slots", tmplBase},
	446: {"A Stacker", tmplBase},
	447: {"B Stacker", tmplBase},
	448: {"C Stacker", tmplBase},
	449: {"D Stacker", tmplBase},
	450: {"DoT Guard", tmplBasePct},
	451: {"Melee Threshold Guard", tmplBasePct},
	452: {"Spell Threshold Guard", tmplBasePct},
	453: {"Doom Melee Threshold", tmplThreshold},
	454: {"Doom Spell Threshold", tmplThreshold},
	455: {"Hate Percent", tmplBasePct},
	456: {"Hate Over Time Percent", tmplBasePct},
	457: {"Resource Tap", tmplBasePct},
	458: {"Faction Gain", tmplBasePct},
	459: {"Damage Modifier 2", tmplSkill},
	460: {"Include Non-Focusable", tmplName},
	461: {"Spell Damage 3", tmplPctRange},
	462: {"Spell Damage Amount 3", tmplBase},
	463: {"Shield Target", tmplBase},
	464: {"Pet Rampage", tmplBasePct},
	465: {"Pet AE Rampage", tmplBasePct},
	466: {"Pet Flurry", tmplBasePct},
	467: {"Damage Shield Mitigation Amount", tmplBase},
	468: {"Damage Shield Mitigation Percent", tmplBasePct},
	469: {"Chance Best in Spell Group", tmplGroupTrigger},
	470: {"Trigger Best in Spell Group", tmplGroupTrigger},
	471: {"Extra Melee Round", tmplBasePct},
	472: {"Buy AA Rank", tmplName},
	473: {"Double Backstab from Front", tmplChance},
	474: {"Pet Critical Melee Damage", tmplBasePct},
	475: {"Trigger Spell Non-Item", tmplSpellTrigger},
	476: {"Weapon Stance", tmplCastSpell},
	477: {"Move to Top of Hatelist", tmplChance},
	478: {"Move to Bottom of Hatelist", tmplChance},
	479: {"Limit: Value Min", tmplLimit},
	480: {"Limit: Value Max", tmplLimit},
	481: {"Cast Spell on Land", tmplSpellTrigger},
	482: {"Skill Base Damage", tmplSkill},
	483: {"Incoming Spell Damage", tmplPctRange},
	484: {"Incoming Spell Damage Amount", tmplBase},
	485: {"Limit: Caster Class", tmplLimitClass},
	486: {"Limit: Same Caster", tmplLimit},
	487: {"Tradeskill Cap", tmplSkill},
	488: {"Push Resistance", tmplBasePct},
	489: {"Worn Endurance Regen Cap", tmplBase},
	490: {"Limit: Reuse Min", tmplLimit},
	491: {"Limit: Reuse Max", tmplLimit},
	492: {"Limit: Endurance Min", tmplLimit},
	493: {"Limit: Endurance Max", tmplLimit},
	494: {"Pet Add Attack", tmplBasePct},
	495: {"Limit: Duration Max", tmplLimit},
	496: {"Critical Melee Damage Cap", tmplSkill},
	497: {"No Proc", tmplName},
	498: {"Extra Primary Attack Chance", tmplBasePct},
	499: {"Extra Secondary Attack Chance", tmplBasePct},
	500: {"Cast Time", tmplBasePct},
	501: {"Cast Time Amount", tmplMillis},
	502: {"Fearstun", tmplMillis},
	503: {"Rear Melee Damage", tmplBasePct},
	504: {"Rear Melee Damage Amount", tmplBase},
	505: {"Rear Damage Taken", tmplBasePct},
	506: {"Rear Damage Taken Amount", tmplBase},
	507: {"Amplify", tmplPctRange},
	508: {"Amplify Amount", tmplBase},
	509: {"Health Transfer", tmplBasePct},
	510: {"Incoming Resist Modifier", tmplBase},
	511: {"Limit: Focus Reuse", tmplLimit},
	512: {"Proc Timer", tmplMillis},
	513: {"Max Mana Percent", tmplBasePct},
	514: {"Max Endurance Percent", tmplBasePct},
	515: {"AC Avoidance Cap", tmplBasePct},
	516: {"AC Mitigation Cap", tmplBasePct},
	517: {"Attack Offense Cap", tmplBasePct},
	518: {"Attack Accuracy Cap", tmplBasePct},
	519: {"Luck", tmplBase},
	520: {"Luck Percent", tmplBasePct},
	521: {"Endurance Absorb Damage", tmplBasePct},
	522: {"Instant Mana Percent", tmplBasePct},
	523: {"Instant Endurance Percent", tmplBasePct},
	524: {"HP Percent per Tick", tmplBasePct},
	525: {"Mana Percent per Tick", tmplBasePct},
	526: {"Endurance Percent per Tick", tmplBasePct},
}

// lookupEffect returns the definition of code, false for unknown codes.
func lookupEffect(code int) (effectDef, bool) {
	if code < 0 || code >= len(effectTable) || effectTable[code].name == "" {
		return effectDef{}, false
	}
	return effectTable[code], true
}

// effectName returns the display name of code.
func effectName(code int) string {
	if def, ok := lookupEffect(code); ok {
		return def.name
	}
	return fmt.Sprintf("Unknown Effect %d", code)
}
