package domain

import "errors"

var (
	// ErrInsufficientMP - не хватает маны на умение. Состояние не меняется.
	ErrInsufficientMP = errors.New("not enough MP")

	// ErrInvalidSkill - у персонажа нет умения с таким номером.
	ErrInvalidSkill = errors.New("invalid skill index")

	// ErrInvalidSlot - такого слота экипировки нет или он пуст.
	ErrInvalidSlot = errors.New("invalid equipment slot")

	// ErrInvalidIndex - индекс за пределами инвентаря или каталога.
	ErrInvalidIndex = errors.New("index out of range")

	// ErrNotEnoughGold - не хватает золота на покупку.
	ErrNotEnoughGold = errors.New("not enough gold")

	ErrInvalidName  = errors.New("character name must not be empty")
	ErrUnknownClass = errors.New("unknown character class")
)
