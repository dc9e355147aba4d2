package domain

import (
	"dusk-rpg/internal/core/types/enums"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Character - персонаж игрока.
type Character struct {
	// Идентификация
	ID    string
	Name  string
	Class enums.ClassType

	// Прогрессия
	Level      int
	Experience int
	Gold       int

	// Stats = StatsForLevel(Class, Level) + Equipment.Bonus(). Поддерживается инкрементально.
	Stats     Stats
	CurrentHP int
	CurrentMP int

	Equipment Equipment
	Inventory []Item

	skills []Skill
}

// NewCharacter создаёт персонажа 1 уровня с полным здоровьем и стартовым золотом.
func NewCharacter(name string, class enums.ClassType) (*Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if _, ok := baseStats[class]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownClass, class)
	}

	c := &Character{
		ID:        uuid.NewString(),
		Name:      name,
		Class:     class,
		Level:     StartingLevel,
		Gold:      StartingGold,
		Stats:     BaseStats(class),
		Inventory: []Item{},
		skills:    SkillsFor(class),
	}
	c.CurrentHP = c.Stats.HP
	c.CurrentMP = c.Stats.MP
	return c, nil
}

// Skills возвращает умения персонажа.
func (c *Character) Skills() []Skill {
	return append([]Skill(nil), c.skills...)
}

// BaseDamage - сила обычной атаки (STR).
func (c *Character) BaseDamage() int {
	return c.Stats.Str
}

// ExpectedStats выводит характеристики заново из класса, уровня и экипировки.
func (c *Character) ExpectedStats() Stats {
	return StatsForLevel(c.Class, c.Level).Add(c.Equipment.Bonus())
}

// UseSkill применяет умение с номером index к цели.
// При ошибке ничего не меняется.
func (c *Character) UseSkill(index int, target Target) (SkillResult, error) {
	if index < 0 || index >= len(c.skills) {
		return SkillResult{Message: "Нет такого умения!"}, ErrInvalidSkill
	}
	skill := c.skills[index]
	if c.CurrentMP < skill.Cost() {
		return SkillResult{Skill: skill.Name(), Message: "Недостаточно MP!"}, ErrInsufficientMP
	}

	c.CurrentMP -= skill.Cost()

	switch s := skill.(type) {
	case DamageSkill:
		dmg := s.Magnitude(c.Stats)
		killed := false
		if target != nil {
			killed = target.TakeDamage(dmg)
		}
		return SkillResult{
			Skill:   s.Name(),
			Damage:  dmg,
			Killed:  killed,
			Message: fmt.Sprintf("%s: %d урона!", s.Name(), dmg),
		}, nil
	case EffectSkill:
		effect := s.Magnitude(c.Stats)
		return SkillResult{
			Skill:   s.Name(),
			Effect:  effect,
			Message: fmt.Sprintf("%s (%d)!", s.Name(), effect),
		}, nil
	}
	// Других реализаций Skill нет (isSkill не экспортирован).
	panic(fmt.Sprintf("unexpected skill type %T", skill))
}

// EquipItem надевает предмет. Если слот занят, бонусы старого предмета сначала вычитаются,
// а сам он возвращается вызывающему. ok=false для неизвестного слота, состояние не меняется.
func (c *Character) EquipItem(item Item) (replaced *Item, ok bool) {
	if !item.Slot.IsValid() {
		return nil, false
	}
	ref := c.Equipment.slotRef(item.Slot)

	stats := c.Stats
	if old := *ref; old != nil {
		stats = stats.Sub(old.Stats.AsStats())
		replaced = old
	}
	stats = stats.Add(item.Stats.AsStats())

	equipped := item.clone()
	c.Stats = stats
	*ref = &equipped
	c.clampResources()
	return replaced, true
}

// UnequipItem снимает предмет из слота и возвращает его.
// Класть его в инвентарь - забота вызывающего.
func (c *Character) UnequipItem(slot enums.SlotType) (*Item, bool) {
	ref := c.Equipment.slotRef(slot)
	if ref == nil || *ref == nil {
		return nil, false
	}

	item := *ref
	c.Stats = c.Stats.Sub(item.Stats.AsStats())
	*ref = nil
	c.clampResources()
	return item, true
}

// NextLevelExp - порог опыта для следующего уровня: floor(100 * 1.5^(level-1)).
func (c *Character) NextLevelExp() int {
	return NextLevelExp(c.Level)
}

// NextLevelExp - порог опыта для перехода с уровня level.
// На потолке и за ним порог насыщается в math.MaxInt: следующий уровень недостижим.
func NextLevelExp(level int) int {
	if level >= MaxLevel {
		return math.MaxInt
	}
	exp := math.Floor(BaseLevelExp * math.Pow(LevelExpGrowth, float64(level-1)))
	if math.IsInf(exp, 1) || exp >= math.MaxInt {
		return math.MaxInt
	}
	return int(exp)
}

// GainExperience начисляет опыт и повышает уровень, пока хватает на порог.
// Возвращает число полученных уровней.
func (c *Character) GainExperience(amount int) int {
	if amount <= 0 {
		return 0
	}

	mult := 1.0
	if c.Level <= EarlyExpLevelCap {
		mult = EarlyExpMultiplier
	}
	gain := int(math.Floor(float64(amount) * mult))
	if gain > math.MaxInt-c.Experience {
		c.Experience = math.MaxInt
	} else {
		c.Experience += gain
	}

	gained := 0
	for c.Level < MaxLevel && c.Experience >= c.NextLevelExp() {
		c.LevelUp()
		gained++
	}
	return gained
}

// LevelUp повышает уровень, добавляет прирост класса и полностью лечит.
func (c *Character) LevelUp() {
	c.Level++
	c.Stats = c.Stats.Add(StatGains(c.Class))
	c.CurrentHP = c.Stats.HP
	c.CurrentMP = c.Stats.MP
}

// AddGold начисляет (или списывает при отрицательном amount) золото, не уходя ниже нуля.
func (c *Character) AddGold(amount int) {
	c.Gold += amount
	if c.Gold < 0 {
		c.Gold = 0
	}
}

// TakeDamage наносит урон. Возвращает true, если здоровье кончилось.
func (c *Character) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	c.CurrentHP -= amount
	if c.CurrentHP <= 0 {
		c.CurrentHP = 0
		return true
	}
	return false
}

// IsDefeated - здоровье на нуле.
func (c *Character) IsDefeated() bool {
	return c.CurrentHP <= 0
}

// Rest полностью восстанавливает HP и MP. Опыт и золото не трогает.
func (c *Character) Rest() {
	c.CurrentHP = c.Stats.HP
	c.CurrentMP = c.Stats.MP
}

// Respawn поднимает персонажа после поражения: полное лечение,
// но опыт и золото урезаются до 90% (вниз).
func (c *Character) Respawn() {
	c.Rest()
	c.Experience = keepRatio(c.Experience)
	c.Gold = keepRatio(c.Gold)
}

func keepRatio(v int) int {
	if v <= 0 {
		return 0
	}
	return int(math.Floor(float64(v) * RespawnKeepRatio))
}

// clampResources держит текущие HP/MP в пределах максимума (после снятия предметов).
func (c *Character) clampResources() {
	c.CurrentHP = min(max(c.CurrentHP, 0), c.Stats.HP)
	c.CurrentMP = min(max(c.CurrentMP, 0), c.Stats.MP)
}

// --- ИНВЕНТАРЬ ---

// AddItem кладёт предмет в конец инвентаря.
func (c *Character) AddItem(item Item) {
	c.Inventory = append(c.Inventory, item.clone())
}

// RemoveItem вынимает предмет из инвентаря по индексу.
func (c *Character) RemoveItem(index int) (Item, error) {
	if index < 0 || index >= len(c.Inventory) {
		return Item{}, ErrInvalidIndex
	}
	item := c.Inventory[index]
	c.Inventory = append(c.Inventory[:index], c.Inventory[index+1:]...)
	return item, nil
}

// EquipFromInventory надевает предмет из инвентаря; снятый предмет уходит в инвентарь.
// Предмет не дублируется и не теряется.
func (c *Character) EquipFromInventory(index int) (equipped Item, replaced *Item, err error) {
	if index < 0 || index >= len(c.Inventory) {
		return Item{}, nil, ErrInvalidIndex
	}
	item := c.Inventory[index]
	replaced, ok := c.EquipItem(item)
	if !ok {
		return Item{}, nil, fmt.Errorf("%w: %q", ErrInvalidSlot, item.Slot)
	}
	if _, err := c.RemoveItem(index); err != nil {
		return Item{}, nil, err
	}
	if replaced != nil {
		c.AddItem(*replaced)
	}
	return item, replaced, nil
}

// UnequipToInventory снимает предмет из слота и кладёт его в инвентарь.
func (c *Character) UnequipToInventory(slot enums.SlotType) (Item, error) {
	item, ok := c.UnequipItem(slot)
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	c.AddItem(*item)
	return *item, nil
}
