package dungeon

import (
	"dusk-rpg/internal/core/types/enums"
	"dusk-rpg/internal/domain"
)

// --- ВРАГИ ---

var Slime = domain.EnemyTemplate{
	Kind:       enums.EnemySlime,
	Name:       "Slime",
	BaseHP:     30,
	BaseDamage: 5,
	ExpValue:   15,
	GoldValue:  8,
	Abilities: []domain.Ability{
		{Name: "bounce", Modifier: 0.6},
		{Name: "split", Modifier: 0.7},
	},
	Tag:        enums.TagNormal,
	Difficulty: 1,
}

var Goblin = domain.EnemyTemplate{
	Kind:       enums.EnemyGoblin,
	Name:       "Goblin",
	BaseHP:     45,
	BaseDamage: 7,
	ExpValue:   25,
	GoldValue:  12,
	Abilities: []domain.Ability{
		{Name: "bite", Modifier: 0.8},
		{Name: "scratch", Modifier: 0.9},
	},
	Tag:        enums.TagNormal,
	Difficulty: 2,
}

var Skeleton = domain.EnemyTemplate{
	Kind:       enums.EnemySkeleton,
	Name:       "Skeleton",
	BaseHP:     60,
	BaseDamage: 9,
	ExpValue:   35,
	GoldValue:  15,
	Abilities: []domain.Ability{
		{Name: "boneCrush", Modifier: 1.2},
		{Name: "undeadStrike", Modifier: 1.1},
	},
	Tag:        enums.TagUndead,
	Difficulty: 3,
}

var Orc = domain.EnemyTemplate{
	Kind:       enums.EnemyOrc,
	Name:       "Orc",
	BaseHP:     80,
	BaseDamage: 11,
	ExpValue:   45,
	GoldValue:  20,
	Abilities: []domain.Ability{
		{Name: "rage", Modifier: 1.3},
		{Name: "cleave", Modifier: 1.1},
	},
	Tag:        enums.TagBrute,
	Difficulty: 4,
}

var DarkMage = domain.EnemyTemplate{
	Kind:       enums.EnemyDarkMage,
	Name:       "Dark Mage",
	BaseHP:     70,
	BaseDamage: 13,
	ExpValue:   55,
	GoldValue:  25,
	Abilities: []domain.Ability{
		{Name: "darkBolt", Modifier: 1.2},
		{Name: "curse", Modifier: 0.9},
	},
	Tag:        enums.TagMagic,
	Difficulty: 5,
}

var Dragon = domain.EnemyTemplate{
	Kind:       enums.EnemyDragon,
	Name:       "Dragon",
	BaseHP:     150,
	BaseDamage: 20,
	ExpValue:   100,
	GoldValue:  50,
	Abilities: []domain.Ability{
		{Name: "fireBreath", Modifier: 1.5},
		{Name: "tailSwipe", Modifier: 1.2},
	},
	Tag:        enums.TagBoss,
	Difficulty: 6,
}

// EnemyTemplates - карта всех доступных врагов
var EnemyTemplates = map[enums.EnemyKind]domain.EnemyTemplate{
	enums.EnemySlime:    Slime,
	enums.EnemyGoblin:   Goblin,
	enums.EnemySkeleton: Skeleton,
	enums.EnemyOrc:      Orc,
	enums.EnemyDarkMage: DarkMage,
	enums.EnemyDragon:   Dragon,
}

// --- ПРЕДМЕТЫ ЛАВКИ ---

var (
	warriorRogue = []enums.ClassType{enums.ClassWarrior, enums.ClassRogue}
	mageOnly     = []enums.ClassType{enums.ClassMage}
	rogueOnly    = []enums.ClassType{enums.ClassRogue}
)

// Оружие
var (
	IronSword = domain.Item{
		Name: "Iron Sword", Slot: enums.SlotWeapon, Cost: 100,
		Stats:       domain.StatBonus{Str: 5},
		Requirement: domain.Requirement{Level: 1, Classes: warriorRogue},
	}
	WoodenStaff = domain.Item{
		Name: "Wooden Staff", Slot: enums.SlotWeapon, Cost: 100,
		Stats:       domain.StatBonus{Int: 5},
		Requirement: domain.Requirement{Level: 1, Classes: mageOnly},
	}
	SteelDagger = domain.Item{
		Name: "Steel Dagger", Slot: enums.SlotWeapon, Cost: 100,
		Stats:       domain.StatBonus{Dex: 5},
		Requirement: domain.Requirement{Level: 1, Classes: rogueOnly},
	}
	SteelSword = domain.Item{
		Name: "Steel Sword", Slot: enums.SlotWeapon, Cost: 250,
		Stats:       domain.StatBonus{Str: 10},
		Requirement: domain.Requirement{Level: 5, Classes: warriorRogue},
	}
	CrystalStaff = domain.Item{
		Name: "Crystal Staff", Slot: enums.SlotWeapon, Cost: 250,
		Stats:       domain.StatBonus{Int: 10, MP: 20},
		Requirement: domain.Requirement{Level: 5, Classes: mageOnly},
	}
)

// Броня
var (
	LeatherArmor = domain.Item{
		Name: "Leather Armor", Slot: enums.SlotArmor, Cost: 80,
		Stats:       domain.StatBonus{Def: 3, HP: 10},
		Requirement: domain.Requirement{Level: 1},
	}
	ChainMail = domain.Item{
		Name: "Chain Mail", Slot: enums.SlotArmor, Cost: 200,
		Stats:       domain.StatBonus{Def: 8, HP: 25},
		Requirement: domain.Requirement{Level: 5},
	}
)

// Аксессуары
var (
	RingOfHealth = domain.Item{
		Name: "Ring of Health", Slot: enums.SlotAccessory, Cost: 150,
		Stats:       domain.StatBonus{HP: 20},
		Requirement: domain.Requirement{Level: 1},
	}
	MagicAmulet = domain.Item{
		Name: "Magic Amulet", Slot: enums.SlotAccessory, Cost: 150,
		Stats:       domain.StatBonus{MP: 20},
		Requirement: domain.Requirement{Level: 1},
	}
)

// shopCatalog - ассортимент лавки в порядке витрины: оружие, броня, аксессуары.
var shopCatalog = []domain.Item{
	IronSword, WoodenStaff, SteelDagger, SteelSword, CrystalStaff,
	LeatherArmor, ChainMail,
	RingOfHealth, MagicAmulet,
}
