package dungeon

import (
	"dusk-rpg/internal/core/types/enums"
	"dusk-rpg/internal/systems"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyTemplates_Complete(t *testing.T) {
	for _, kind := range enums.AllEnemyKinds {
		tmpl, ok := EnemyTemplates[kind]
		require.True(t, ok, "missing template for %v", kind)
		assert.Equal(t, kind, tmpl.Kind)
		assert.Len(t, tmpl.Abilities, 2)
		assert.Positive(t, tmpl.BaseHP)
	}
}

func TestTemplate_PanicsOnMissingArchetype(t *testing.T) {
	assert.Panics(t, func() { Template(enums.EnemyUnknown) })
}

func TestSpawnEnemy(t *testing.T) {
	e := SpawnEnemy(enums.EnemySkeleton, 3)
	want := systems.ScaleStats(Skeleton, 3)

	assert.Equal(t, "Skeleton", e.Name)
	assert.Equal(t, enums.TagUndead, e.Tag)
	assert.Equal(t, 3, e.Level)
	assert.Equal(t, 3, e.Difficulty)
	assert.Equal(t, want.HP, e.HP)
	assert.Equal(t, want.HP, e.CurrentHP)
	assert.Equal(t, want.Damage, e.Damage)
	assert.Equal(t, want.ExpValue, e.ExpValue)
	assert.Equal(t, want.GoldValue, e.GoldValue)

	// Способности копируются: правка у врага не трогает шаблон
	e.Abilities[0].Modifier = 99
	assert.InDelta(t, 1.2, Skeleton.Abilities[0].Modifier, 1e-9)
}

func TestRollEncounter(t *testing.T) {
	pool := []enums.EnemyKind{enums.EnemySlime, enums.EnemyGoblin}
	rng := seeded(42)

	for i := 0; i < 200; i++ {
		enemies := RollEncounter(pool, 1, rng)
		require.NotEmpty(t, enemies)
		require.LessOrEqual(t, len(enemies), 2)
		for _, e := range enemies {
			assert.Contains(t, pool, e.Kind)
			assert.GreaterOrEqual(t, e.Level, 1)
			assert.LessOrEqual(t, e.Level, 2)
		}
	}

	for i := 0; i < 200; i++ {
		for _, e := range RollEncounter(pool, 7, rng) {
			assert.GreaterOrEqual(t, e.Level, 6)
			assert.LessOrEqual(t, e.Level, 8)
		}
	}
}

func TestRollEncounter_Deterministic(t *testing.T) {
	pool := []enums.EnemyKind{enums.EnemyDarkMage, enums.EnemyDragon}

	a := RollEncounter(pool, 4, seeded(7))
	b := RollEncounter(pool, 4, seeded(7))

	assert.Equal(t, a, b)
}

func TestRollEncounter_EmptyPool(t *testing.T) {
	assert.Nil(t, RollEncounter(nil, 3, seeded(1)))
}

func TestShopCatalog(t *testing.T) {
	catalog := ShopCatalog()
	require.Len(t, catalog, 9)
	assert.Equal(t, "Iron Sword", catalog[0].Name)
	assert.Equal(t, "Magic Amulet", catalog[8].Name)

	catalog[0].Cost = 1
	assert.Equal(t, 100, ShopCatalog()[0].Cost)
}
