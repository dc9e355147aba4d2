package dungeon

import (
	"dusk-rpg/internal/core/types/enums"
	"dusk-rpg/internal/domain"
	"dusk-rpg/internal/systems"
	"dusk-rpg/pkg/logger"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Размер стычки: от 1 до 2 врагов.
const (
	minEncounterSize = 1
	maxEncounterSize = 2
)

// Template возвращает шаблон архетипа.
// Набор архетипов закрыт, поэтому неизвестный вид - ошибка программиста, а не игрока.
func Template(kind enums.EnemyKind) domain.EnemyTemplate {
	t, ok := EnemyTemplates[kind]
	if !ok {
		panic(fmt.Sprintf("dungeon: missing enemy archetype %v", kind))
	}
	return t
}

// SpawnEnemy создаёт врага архетипа kind на уровне level.
func SpawnEnemy(kind enums.EnemyKind, level int) *domain.Enemy {
	t := Template(kind)
	if level < 1 {
		level = 1
	}
	stats := systems.ScaleStats(t, level)

	return &domain.Enemy{
		Kind:       t.Kind,
		Name:       t.Name,
		Tag:        t.Tag,
		Level:      level,
		Difficulty: t.Difficulty,
		Abilities:  append([]domain.Ability(nil), t.Abilities...),
		HP:         stats.HP,
		Damage:     stats.Damage,
		ExpValue:   stats.ExpValue,
		GoldValue:  stats.GoldValue,
		CurrentHP:  stats.HP,
	}
}

// RollEncounter собирает группу врагов из пула текущей фазы.
// Уровень каждого врага - уровень игрока ±1, но не меньше 1.
func RollEncounter(pool []enums.EnemyKind, playerLevel int, rng domain.RNG) []*domain.Enemy {
	if len(pool) == 0 {
		return nil
	}

	count := minEncounterSize + rng.Intn(maxEncounterSize-minEncounterSize+1)
	enemies := make([]*domain.Enemy, 0, count)
	for i := 0; i < count; i++ {
		kind := pool[rng.Intn(len(pool))]
		level := max(1, playerLevel+rng.Intn(3)-1)
		enemies = append(enemies, SpawnEnemy(kind, level))
	}

	logger.Log.WithFields(logrus.Fields{
		"component":    "dungeon_factory",
		"player_level": playerLevel,
		"count":        len(enemies),
	}).Debug("Encounter rolled.")

	return enemies
}

// ShopCatalog возвращает копию ассортимента лавки.
func ShopCatalog() []domain.Item {
	return append([]domain.Item(nil), shopCatalog...)
}
