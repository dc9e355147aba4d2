package systems

import (
	"dusk-rpg/internal/core/types/enums"
	"dusk-rpg/internal/domain"
	"math"
)

// ScaledStats - характеристики врага после масштабирования по уровню.
type ScaledStats struct {
	HP        int
	Damage    int
	ExpValue  int
	GoldValue int
}

// Награды за врагов до этого уровня включительно получают бонус.
const (
	earlyRewardLevelCap = 5
	earlyRewardBonus    = 1.2
)

// typeMultipliers - множитель статов по типу существа.
var typeMultipliers = map[enums.CreatureTag]float64{
	enums.TagNormal: 1.0,
	enums.TagUndead: 1.1,
	enums.TagBrute:  1.2,
	enums.TagMagic:  1.15,
	enums.TagBoss:   1.5,
}

// LevelMultiplier - кусочно-линейный рост: пологий до 5 уровня, средний до 10, крутой дальше.
func LevelMultiplier(level int) float64 {
	switch {
	case level <= 5:
		return 1 + float64(level-1)*0.08
	case level <= 10:
		return 1.4 + float64(level-5)*0.1
	default:
		return 1.9 + float64(level-10)*0.12
	}
}

// TypeMultiplier - множитель по типу существа (1.0 для неизвестного).
func TypeMultiplier(tag enums.CreatureTag) float64 {
	if m, ok := typeMultipliers[tag]; ok {
		return m
	}
	return 1.0
}

// ScaleStats считает характеристики и награду архетипа на уровне level.
// Чистая функция: одинаковый вход - одинаковый выход.
func ScaleStats(t domain.EnemyTemplate, level int) ScaledStats {
	if level < 1 {
		level = 1
	}
	multiplier := LevelMultiplier(level) * TypeMultiplier(t.Tag)

	rewardMultiplier := 1.0
	if level <= earlyRewardLevelCap {
		rewardMultiplier = earlyRewardBonus
	}
	reward := func(base int) int {
		return int(math.Floor(float64(base) * multiplier * rewardMultiplier))
	}

	return ScaledStats{
		HP:        int(math.Floor(float64(t.BaseHP) * multiplier)),
		Damage:    int(math.Floor(float64(t.BaseDamage) * multiplier)),
		ExpValue:  reward(t.ExpValue),
		GoldValue: reward(t.GoldValue),
	}
}
