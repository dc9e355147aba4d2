package domain

import "strings"

// ActionType - Внутренний числовой идентификатор команды сессии
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionNew
	ActionLoad
	ActionBattle
	ActionAttack
	ActionSkill
	ActionRest
	ActionEquip
	ActionUnequip
	ActionShop
	ActionBuy
	ActionSell
	ActionStatus
	ActionSave
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"NEW":     ActionNew,
	"LOAD":    ActionLoad,
	"BATTLE":  ActionBattle,
	"ATTACK":  ActionAttack,
	"SKILL":   ActionSkill,
	"REST":    ActionRest,
	"EQUIP":   ActionEquip,
	"UNEQUIP": ActionUnequip,
	"SHOP":    ActionShop,
	"BUY":     ActionBuy,
	"SELL":    ActionSell,
	"STATUS":  ActionStatus,
	"SAVE":    ActionSave,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionNew:     "NEW",
	ActionLoad:    "LOAD",
	ActionBattle:  "BATTLE",
	ActionAttack:  "ATTACK",
	ActionSkill:   "SKILL",
	ActionRest:    "REST",
	ActionEquip:   "EQUIP",
	ActionUnequip: "UNEQUIP",
	ActionShop:    "SHOP",
	ActionBuy:     "BUY",
	ActionSell:    "SELL",
	ActionStatus:  "STATUS",
	ActionSave:    "SAVE",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру: в терминале команды набирают как угодно
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// NeedsGame - команда требует созданного или загруженного персонажа.
func (a ActionType) NeedsGame() bool {
	return a != ActionNew && a != ActionLoad && a != ActionUnknown
}
