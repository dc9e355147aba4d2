package api

import (
	"dusk-rpg/internal/core/types/enums"
	"errors"
	"strings"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p NewGamePayload) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if enums.ParseClass(p.Class) == enums.ClassUnknown {
		return errors.New("class must be one of Warrior, Mage, Rogue")
	}
	return nil
}

func (p LoadPayload) Validate() error {
	if p.SaveID == "" {
		return errors.New("saveId is required")
	}
	return nil
}

func (p IndexPayload) Validate() error {
	if p.Index < 0 {
		return errors.New("index must not be negative")
	}
	return nil
}

func (p SlotPayload) Validate() error {
	if !enums.ParseSlot(p.Slot).IsValid() {
		return errors.New("slot must be one of weapon, armor, accessory")
	}
	return nil
}
