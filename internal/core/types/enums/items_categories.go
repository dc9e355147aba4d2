package enums

import (
	"fmt"
	"strings"
)

// SlotType - слот экипировки. Каждый предмет надевается ровно в один слот.
type SlotType uint8

const (
	SlotUnknown   SlotType = iota // 0
	SlotWeapon                    // 1
	SlotArmor                     // 2
	SlotAccessory                 // 3
)

// AllSlots - слоты в порядке отображения.
var AllSlots = []SlotType{SlotWeapon, SlotArmor, SlotAccessory}

var slotToString = map[SlotType]string{
	SlotWeapon:    "weapon",
	SlotArmor:     "armor",
	SlotAccessory: "accessory",
}

var slotStringToType = map[string]SlotType{
	"weapon":    SlotWeapon,
	"armor":     SlotArmor,
	"accessory": SlotAccessory,
}

func (s SlotType) String() string {
	if val, ok := slotToString[s]; ok {
		return val
	}
	return "unknown"
}

// IsValid сообщает, существует ли такой слот у персонажа.
func (s SlotType) IsValid() bool {
	_, ok := slotToString[s]
	return ok
}

func ParseSlot(s string) SlotType {
	if val, ok := slotStringToType[strings.ToLower(strings.TrimSpace(s))]; ok {
		return val
	}
	return SlotUnknown
}

// MarshalText пишет слот строкой ("weapon"), как в файлах сохранений.
func (s SlotType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText не падает на неизвестном слоте: такой предмет просто нельзя надеть.
func (s *SlotType) UnmarshalText(data []byte) error {
	*s = ParseSlot(string(data))
	return nil
}

// StatName - ключ характеристики (hp, mp, str, dex, int, def).
type StatName uint8

const (
	StatUnknown StatName = iota
	StatHP
	StatMP
	StatStr
	StatDex
	StatInt
	StatDef
)

var statToString = map[StatName]string{
	StatHP:  "hp",
	StatMP:  "mp",
	StatStr: "str",
	StatDex: "dex",
	StatInt: "int",
	StatDef: "def",
}

func (s StatName) String() string {
	if val, ok := statToString[s]; ok {
		return val
	}
	return fmt.Sprintf("stat(%d)", uint8(s))
}
