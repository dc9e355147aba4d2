package domain

import (
	"dusk-rpg/internal/core/types/enums"
	"fmt"
	"slices"
	"strings"
)

// CharacterSnapshot - плоский снимок персонажа для сохранения.
// Умения не сохраняются: они однозначно выводятся из класса.
type CharacterSnapshot struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Class      enums.ClassType `json:"className"`
	Level      int             `json:"level"`
	Experience int             `json:"experience"`
	Gold       int             `json:"gold"`
	Stats      Stats           `json:"stats"`
	CurrentHP  int             `json:"currentHp"`
	CurrentMP  int             `json:"currentMp"`
	Inventory  []Item          `json:"inventory"`
	Equipment  Equipment       `json:"equipment"`
}

// ClockSnapshot - сохранённое состояние часов.
type ClockSnapshot struct {
	CurrentPhaseIndex int `json:"currentPhaseIndex"`
}

// Snapshot снимает копию состояния персонажа. Предметы копируются по значению.
func (c *Character) Snapshot() CharacterSnapshot {
	inv := make([]Item, 0, len(c.Inventory))
	for _, it := range c.Inventory {
		inv = append(inv, it.clone())
	}
	return CharacterSnapshot{
		ID:         c.ID,
		Name:       c.Name,
		Class:      c.Class,
		Level:      c.Level,
		Experience: c.Experience,
		Gold:       c.Gold,
		Stats:      c.Stats,
		CurrentHP:  c.CurrentHP,
		CurrentMP:  c.CurrentMP,
		Inventory:  inv,
		Equipment:  c.Equipment.clone(),
	}
}

// RestoreCharacter собирает персонажа из снимка.
// Характеристики пересчитываются из класса, уровня и экипировки, а не берутся из файла.
func RestoreCharacter(s CharacterSnapshot) (*Character, error) {
	if strings.TrimSpace(s.Name) == "" {
		return nil, ErrInvalidName
	}
	if _, ok := baseStats[s.Class]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownClass, s.Class)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("snapshot has no character id")
	}

	c := &Character{
		ID:         s.ID,
		Name:       s.Name,
		Class:      s.Class,
		Level:      min(max(s.Level, 1), MaxLevel),
		Experience: max(s.Experience, 0),
		Gold:       max(s.Gold, 0),
		Equipment:  s.Equipment.clone(),
		Inventory:  make([]Item, 0, len(s.Inventory)),
		skills:     SkillsFor(s.Class),
	}
	for _, it := range s.Inventory {
		c.Inventory = append(c.Inventory, it.clone())
	}
	c.Stats = c.ExpectedStats()

	// Вне боя персонаж с нулём HP не бывает: старые сохранения без currentHp считаем отдохнувшими.
	c.CurrentHP = s.CurrentHP
	c.CurrentMP = s.CurrentMP
	if c.CurrentHP <= 0 {
		c.Rest()
	}
	c.clampResources()
	return c, nil
}

// StatsMatch сообщает, совпадают ли сохранённые характеристики с пересчитанными.
func (s CharacterSnapshot) StatsMatch(c *Character) bool {
	return s.Stats == c.Stats
}

// Snapshot снимает состояние часов.
func (c *Clock) Snapshot() ClockSnapshot {
	return ClockSnapshot{CurrentPhaseIndex: c.PhaseIndex()}
}

// Equal сравнивает снимки (для тестов и проверки сохранений).
func (s CharacterSnapshot) Equal(o CharacterSnapshot) bool {
	if s.ID != o.ID || s.Name != o.Name || s.Class != o.Class || s.Level != o.Level ||
		s.Experience != o.Experience || s.Gold != o.Gold || s.Stats != o.Stats ||
		s.CurrentHP != o.CurrentHP || s.CurrentMP != o.CurrentMP {
		return false
	}
	if !slices.EqualFunc(s.Inventory, o.Inventory, itemsEqual) {
		return false
	}
	for _, slot := range enums.AllSlots {
		a, b := s.Equipment.Get(slot), o.Equipment.Get(slot)
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && !itemsEqual(*a, *b) {
			return false
		}
	}
	return true
}

func itemsEqual(a, b Item) bool {
	return a.Name == b.Name && a.Slot == b.Slot && a.Stats == b.Stats && a.Cost == b.Cost &&
		a.Requirement.Level == b.Requirement.Level &&
		slices.Equal(a.Requirement.Classes, b.Requirement.Classes)
}
