package domain

import (
	"dusk-rpg/internal/core/types/enums"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRNG отдаёт заранее заданные значения по кругу и считает вызовы.
type scriptedRNG struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRNG) Float64() float64 {
	defer func() { r.fi++ }()
	if len(r.floats) == 0 {
		return 0
	}
	return r.floats[r.fi%len(r.floats)]
}

func (r *scriptedRNG) Intn(n int) int {
	defer func() { r.ii++ }()
	if len(r.ints) == 0 {
		return 0
	}
	return r.ints[r.ii%len(r.ints)] % n
}

// dummyTarget - цель умения, которая только считает урон.
type dummyTarget struct {
	hp    int
	taken []int
}

func (d *dummyTarget) TakeDamage(amount int) bool {
	d.taken = append(d.taken, amount)
	d.hp = max(0, d.hp-amount)
	return d.hp == 0
}

func newHero(t *testing.T, class enums.ClassType) *Character {
	t.Helper()
	c, err := NewCharacter("Hero", class)
	require.NoError(t, err)
	return c
}

var (
	testSword = Item{
		Name: "Test Sword", Slot: enums.SlotWeapon, Cost: 50,
		Stats: StatBonus{Str: 5},
	}
	testBlade = Item{
		Name: "Test Blade", Slot: enums.SlotWeapon, Cost: 150,
		Stats: StatBonus{Str: 10, Dex: 2},
	}
	testMail = Item{
		Name: "Test Mail", Slot: enums.SlotArmor, Cost: 120,
		Stats: StatBonus{HP: 20, Def: 8},
	}
	testRing = Item{
		Name: "Test Ring", Slot: enums.SlotAccessory, Cost: 100,
		Stats: StatBonus{HP: 30},
	}
)
