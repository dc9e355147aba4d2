package enums

import (
	"fmt"
	"strings"
)

// ClassType - класс персонажа игрока.
type ClassType uint8

const (
	ClassUnknown ClassType = iota
	ClassWarrior
	ClassMage
	ClassRogue
)

// AllClasses - классы в порядке меню создания персонажа.
var AllClasses = []ClassType{ClassWarrior, ClassMage, ClassRogue}

var classToString = map[ClassType]string{
	ClassWarrior: "Warrior",
	ClassMage:    "Mage",
	ClassRogue:   "Rogue",
}

var classStringToType = map[string]ClassType{
	"WARRIOR": ClassWarrior,
	"MAGE":    ClassMage,
	"ROGUE":   ClassRogue,
}

func (c ClassType) String() string {
	if val, ok := classToString[c]; ok {
		return val
	}
	return "Unknown"
}

func ParseClass(s string) ClassType {
	if val, ok := classStringToType[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return val
	}
	return ClassUnknown
}

func (c ClassType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText, в отличие от слота, ругается: сохранение без класса не восстановить.
func (c *ClassType) UnmarshalText(data []byte) error {
	parsed := ParseClass(string(data))
	if parsed == ClassUnknown {
		return fmt.Errorf("unknown class %q", string(data))
	}
	*c = parsed
	return nil
}
