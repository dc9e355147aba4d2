package domain

import (
	"dusk-rpg/internal/core/types/enums"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCharacter(t *testing.T) {
	tests := []struct {
		class enums.ClassType
		stats Stats
	}{
		{enums.ClassWarrior, Stats{HP: 100, MP: 50, Str: 15, Dex: 10, Int: 5, Def: 12}},
		{enums.ClassMage, Stats{HP: 70, MP: 100, Str: 5, Dex: 10, Int: 15, Def: 8}},
		{enums.ClassRogue, Stats{HP: 85, MP: 70, Str: 10, Dex: 15, Int: 8, Def: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			c := newHero(t, tt.class)

			assert.Equal(t, tt.stats, c.Stats)
			assert.Equal(t, 1, c.Level)
			assert.Equal(t, 0, c.Experience)
			assert.Equal(t, 100, c.Gold)
			assert.Equal(t, tt.stats.HP, c.CurrentHP)
			assert.Equal(t, tt.stats.MP, c.CurrentMP)
			assert.NotEmpty(t, c.ID)
			assert.Len(t, c.Skills(), 2)
			assert.Empty(t, c.Inventory)
		})
	}
}

func TestNewCharacter_Invalid(t *testing.T) {
	_, err := NewCharacter("   ", enums.ClassWarrior)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewCharacter("Hero", enums.ClassUnknown)
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestNewCharacter_UniqueIDs(t *testing.T) {
	a := newHero(t, enums.ClassMage)
	b := newHero(t, enums.ClassMage)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUseSkill_DamageSkill(t *testing.T) {
	mage := newHero(t, enums.ClassMage)
	target := &dummyTarget{hp: 25}

	res, err := mage.UseSkill(0, target)
	require.NoError(t, err)

	assert.Equal(t, "Fireball", res.Skill)
	assert.Equal(t, 30, res.Damage)
	assert.True(t, res.Killed)
	assert.Equal(t, []int{30}, target.taken)
	assert.Equal(t, 80, mage.CurrentMP)
}

func TestUseSkill_EffectSkillReturnsMagnitude(t *testing.T) {
	warrior := newHero(t, enums.ClassWarrior)
	target := &dummyTarget{hp: 50}

	res, err := warrior.UseSkill(1, target)
	require.NoError(t, err)

	assert.Equal(t, "Shield Block", res.Skill)
	assert.Equal(t, 24, res.Effect)
	assert.Zero(t, res.Damage)
	assert.Empty(t, target.taken, "effect skills never touch the target")
	assert.Equal(t, 35, warrior.CurrentMP)
}

func TestUseSkill_Failures(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		mp      int
		wantErr error
	}{
		{"negative index", -1, 100, ErrInvalidSkill},
		{"index past end", 2, 100, ErrInvalidSkill},
		{"not enough mp", 0, 19, ErrInsufficientMP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mage := newHero(t, enums.ClassMage)
			mage.CurrentMP = tt.mp
			target := &dummyTarget{hp: 100}

			_, err := mage.UseSkill(tt.index, target)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.mp, mage.CurrentMP, "mp must not change on failure")
			assert.Empty(t, target.taken)
		})
	}
}

func TestEquipItem(t *testing.T) {
	c := newHero(t, enums.ClassWarrior)
	base := c.Stats

	replaced, ok := c.EquipItem(testSword)
	require.True(t, ok)
	assert.Nil(t, replaced)
	assert.Equal(t, base.Str+5, c.Stats.Str)

	// Замена: бонусы старого предмета снимаются ровно один раз
	replaced, ok = c.EquipItem(testBlade)
	require.True(t, ok)
	require.NotNil(t, replaced)
	assert.Equal(t, "Test Sword", replaced.Name)
	assert.Equal(t, base.Str+10, c.Stats.Str)
	assert.Equal(t, base.Dex+2, c.Stats.Dex)
	assert.Equal(t, c.ExpectedStats(), c.Stats)
}

func TestEquipItem_UnknownSlot(t *testing.T) {
	c := newHero(t, enums.ClassWarrior)
	before := c.Stats

	_, ok := c.EquipItem(Item{Name: "Odd", Slot: enums.SlotUnknown, Stats: StatBonus{Str: 100}})

	assert.False(t, ok)
	assert.Equal(t, before, c.Stats)
}

func TestUnequipItem(t *testing.T) {
	c := newHero(t, enums.ClassWarrior)
	base := c.Stats

	_, ok := c.UnequipItem(enums.SlotArmor)
	assert.False(t, ok, "empty slot")

	c.EquipItem(testMail)
	assert.Equal(t, base.HP+20, c.Stats.HP)

	item, ok := c.UnequipItem(enums.SlotArmor)
	require.True(t, ok)
	assert.Equal(t, "Test Mail", item.Name)
	assert.Equal(t, base, c.Stats)
	assert.Nil(t, c.Equipment.Armor)
}

func TestUnequip_ClampsCurrentHP(t *testing.T) {
	c := newHero(t, enums.ClassWarrior)
	c.EquipItem(testRing)
	c.Rest()
	require.Equal(t, 130, c.CurrentHP)

	c.UnequipItem(enums.SlotAccessory)

	assert.Equal(t, 100, c.CurrentHP)
}

func TestNextLevelExp(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 150},
		{3, 225},
		{4, 337},
		{5, 506},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextLevelExp(tt.level), "level %d", tt.level)
	}
}

func TestNextLevelExp_Saturates(t *testing.T) {
	for _, level := range []int{MaxLevel, 96, 100, 1000} {
		assert.Equal(t, math.MaxInt, NextLevelExp(level), "level %d", level)
	}
	assert.Positive(t, NextLevelExp(MaxLevel-1))
	assert.Less(t, NextLevelExp(MaxLevel-1), math.MaxInt)
}

func TestGainExperience(t *testing.T) {
	t.Run("below threshold", func(t *testing.T) {
		c := newHero(t, enums.ClassWarrior)
		levels := c.GainExperience(50)
		assert.Zero(t, levels)
		assert.Equal(t, 75, c.Experience, "early levels get x1.5")
		assert.Equal(t, 1, c.Level)
	})

	t.Run("multiple level ups in one call", func(t *testing.T) {
		c := newHero(t, enums.ClassWarrior)
		c.TakeDamage(40)

		levels := c.GainExperience(100)

		assert.Equal(t, 2, levels)
		assert.Equal(t, 3, c.Level)
		assert.Equal(t, 150, c.Experience)
		assert.Equal(t, StatsForLevel(enums.ClassWarrior, 3), c.Stats)
		assert.Equal(t, c.Stats.HP, c.CurrentHP, "level up heals")
	})

	t.Run("no bonus after level ten", func(t *testing.T) {
		c := newHero(t, enums.ClassRogue)
		c.Level = 11
		c.Experience = 0
		c.GainExperience(10)
		assert.Equal(t, 10, c.Experience)
	})

	t.Run("stops at level cap", func(t *testing.T) {
		c := newHero(t, enums.ClassWarrior)
		c.Level = MaxLevel - 1
		c.Experience = math.MaxInt - 5

		assert.Equal(t, 1, c.GainExperience(100))
		assert.Equal(t, MaxLevel, c.Level)
		assert.Equal(t, math.MaxInt, c.Experience, "experience saturates instead of wrapping")
		assert.Zero(t, c.GainExperience(100))
	})

	t.Run("non positive amount", func(t *testing.T) {
		c := newHero(t, enums.ClassRogue)
		assert.Zero(t, c.GainExperience(-5))
		assert.Zero(t, c.Experience)
	})
}

func TestTakeDamage(t *testing.T) {
	c := newHero(t, enums.ClassMage)

	assert.False(t, c.TakeDamage(30))
	assert.Equal(t, 40, c.CurrentHP)

	assert.False(t, c.TakeDamage(-10), "negative damage heals nothing")
	assert.Equal(t, 40, c.CurrentHP)

	assert.True(t, c.TakeDamage(500))
	assert.Equal(t, 0, c.CurrentHP)
	assert.True(t, c.IsDefeated())
}

func TestRestAndRespawn(t *testing.T) {
	c := newHero(t, enums.ClassRogue)
	c.Experience = 155
	c.Gold = 99
	c.TakeDamage(1000)
	c.CurrentMP = 3

	c.Respawn()

	assert.Equal(t, c.Stats.HP, c.CurrentHP)
	assert.Equal(t, c.Stats.MP, c.CurrentMP)
	assert.Equal(t, 139, c.Experience)
	assert.Equal(t, 89, c.Gold)

	c.Experience = 0
	c.Gold = 0
	c.Respawn()
	assert.Zero(t, c.Experience)
	assert.Zero(t, c.Gold)
}

func TestAddGold_NeverNegative(t *testing.T) {
	c := newHero(t, enums.ClassRogue)
	c.AddGold(-500)
	assert.Zero(t, c.Gold)
}

func TestInventoryEquipCycle(t *testing.T) {
	c := newHero(t, enums.ClassWarrior)
	c.AddItem(testSword)
	c.AddItem(testBlade)

	equipped, replaced, err := c.EquipFromInventory(0)
	require.NoError(t, err)
	assert.Equal(t, "Test Sword", equipped.Name)
	assert.Nil(t, replaced)
	require.Len(t, c.Inventory, 1)

	// Меч возвращается в сумку, клинок уходит в слот
	_, replaced, err = c.EquipFromInventory(0)
	require.NoError(t, err)
	require.NotNil(t, replaced)
	require.Len(t, c.Inventory, 1)
	assert.Equal(t, "Test Sword", c.Inventory[0].Name)
	assert.Equal(t, "Test Blade", c.Equipment.Weapon.Name)

	item, err := c.UnequipToInventory(enums.SlotWeapon)
	require.NoError(t, err)
	assert.Equal(t, "Test Blade", item.Name)
	assert.Len(t, c.Inventory, 2)
	assert.Equal(t, StatsForLevel(enums.ClassWarrior, 1), c.Stats)

	_, err = c.UnequipToInventory(enums.SlotWeapon)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, _, err = c.EquipFromInventory(5)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestEquipFromInventory_BadSlotKeepsItem(t *testing.T) {
	c := newHero(t, enums.ClassWarrior)
	c.AddItem(Item{Name: "Junk"})

	_, _, err := c.EquipFromInventory(0)

	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.Len(t, c.Inventory, 1)
}

func TestStatsInvariant_ThroughProgression(t *testing.T) {
	c := newHero(t, enums.ClassMage)
	c.EquipItem(testRing)
	c.GainExperience(400)
	c.EquipItem(testMail)
	c.UnequipItem(enums.SlotAccessory)
	c.GainExperience(300)

	assert.Equal(t, c.ExpectedStats(), c.Stats)
}
