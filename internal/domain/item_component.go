package domain

import (
	"dusk-rpg/internal/core/types/enums"
	"slices"
)

// Requirement - условия покупки предмета.
type Requirement struct {
	Level int `json:"level"`
	// Classes - кому можно покупать. Пустой список - всем классам.
	Classes []enums.ClassType `json:"class,omitempty"`
}

// Item - предмет экипировки. Неизменяем после создания и передаётся по значению:
// в каждый момент он лежит ровно в одном месте (каталог, инвентарь или слот).
type Item struct {
	Name        string         `json:"name"`
	Slot        enums.SlotType `json:"type"`
	Stats       StatBonus      `json:"stats"`
	Cost        int            `json:"cost"`
	Requirement Requirement    `json:"requirement"`
}

// AllowsClass проверяет классовое ограничение.
func (r Requirement) AllowsClass(class enums.ClassType) bool {
	return len(r.Classes) == 0 || slices.Contains(r.Classes, class)
}

// Allows проверяет, может ли персонаж получить предмет.
func (i Item) Allows(c *Character) bool {
	return i.Requirement.Level <= c.Level && i.Requirement.AllowsClass(c.Class)
}

// SellPrice - сколько даёт лавка при продаже (половина цены, вниз).
func (i Item) SellPrice() int {
	return i.Cost / 2
}

// clone копирует предмет вместе со срезом классов.
func (i Item) clone() Item {
	i.Requirement.Classes = slices.Clone(i.Requirement.Classes)
	return i
}

// Equipment хранит экипированные предметы, по одному на слот.
type Equipment struct {
	Weapon    *Item `json:"weapon"`
	Armor     *Item `json:"armor"`
	Accessory *Item `json:"accessory"`
}

// slotRef возвращает ячейку слота или nil для неизвестного слота.
func (e *Equipment) slotRef(slot enums.SlotType) **Item {
	switch slot {
	case enums.SlotWeapon:
		return &e.Weapon
	case enums.SlotArmor:
		return &e.Armor
	case enums.SlotAccessory:
		return &e.Accessory
	}
	return nil
}

// Get возвращает предмет в слоте (nil, если пусто или слот неизвестен).
func (e *Equipment) Get(slot enums.SlotType) *Item {
	ref := e.slotRef(slot)
	if ref == nil {
		return nil
	}
	return *ref
}

// Bonus - суммарная прибавка от всей надетой экипировки.
func (e *Equipment) Bonus() Stats {
	var total Stats
	for _, slot := range enums.AllSlots {
		if it := e.Get(slot); it != nil {
			total = total.Add(it.Stats.AsStats())
		}
	}
	return total
}

func (e Equipment) clone() Equipment {
	out := Equipment{}
	for _, slot := range enums.AllSlots {
		if it := e.Get(slot); it != nil {
			c := it.clone()
			*out.slotRef(slot) = &c
		}
	}
	return out
}
