package domain

import "dusk-rpg/internal/core/types/enums"

// Стартовые параметры персонажа
const (
	StartingLevel = 1
	StartingGold  = 100
	// MaxLevel - потолок уровня. Дальше порог опыта не помещается в int.
	MaxLevel = 90
)

// Параметры прогрессии
const (
	// BaseLevelExp - опыт, нужный для перехода с 1 на 2 уровень.
	BaseLevelExp = 100
	// LevelExpGrowth - во сколько раз растёт порог с каждым уровнем.
	LevelExpGrowth = 1.5
	// EarlyExpLevelCap - до этого уровня включительно опыт умножается на EarlyExpMultiplier.
	EarlyExpLevelCap   = 10
	EarlyExpMultiplier = 1.5
	// RespawnKeepRatio - какая доля опыта и золота остаётся после гибели.
	RespawnKeepRatio = 0.9
)

// baseStats - характеристики 1 уровня по классам.
var baseStats = map[enums.ClassType]Stats{
	enums.ClassWarrior: {HP: 100, MP: 50, Str: 15, Dex: 10, Int: 5, Def: 12},
	enums.ClassMage:    {HP: 70, MP: 100, Str: 5, Dex: 10, Int: 15, Def: 8},
	enums.ClassRogue:   {HP: 85, MP: 70, Str: 10, Dex: 15, Int: 8, Def: 10},
}

// statGains - прирост за каждый уровень.
var statGains = map[enums.ClassType]Stats{
	enums.ClassWarrior: {HP: 15, MP: 5, Str: 3, Dex: 2, Int: 1, Def: 2},
	enums.ClassMage:    {HP: 8, MP: 15, Str: 1, Dex: 2, Int: 3, Def: 1},
	enums.ClassRogue:   {HP: 10, MP: 8, Str: 2, Dex: 3, Int: 1, Def: 1},
}

// BaseStats возвращает характеристики класса на 1 уровне.
func BaseStats(class enums.ClassType) Stats {
	return baseStats[class]
}

// StatGains возвращает прирост характеристик класса за уровень.
func StatGains(class enums.ClassType) Stats {
	return statGains[class]
}

// StatsForLevel - "голые" характеристики класса на уровне level, без экипировки.
func StatsForLevel(class enums.ClassType, level int) Stats {
	if level < 1 {
		level = 1
	}
	return BaseStats(class).Add(StatGains(class).Scale(level - 1))
}
