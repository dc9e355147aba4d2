package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Это полный снимок состояния сессии после обработки команды.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "ERROR".
	Type string `json:"type"`

	// MyEntityID ID персонажа сессии (он же ID сохранения).
	MyEntityID string `json:"myEntityId,omitempty"`

	// Phase текущее время суток и его множитель сложности.
	Phase      string  `json:"phase,omitempty"`
	Difficulty float64 `json:"difficulty,omitempty"`

	// Player полное состояние персонажа. Пусто до NEW/LOAD.
	Player *PlayerView `json:"player,omitempty"`

	// Combat состояние текущей (или только что закончившейся) стычки.
	Combat *CombatView `json:"combat,omitempty"`

	// Shop ассортимент, доступный персонажу. Заполняется по команде SHOP.
	Shop []ItemView `json:"shop,omitempty"`

	// Logs новые сообщения, накопленные с прошлого ответа.
	Logs []LogEntry `json:"logs,omitempty"`

	// Error текст ошибки для Type == "ERROR".
	Error string `json:"error,omitempty"`
}

// PlayerView это DTO персонажа игрока.
type PlayerView struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Class        string        `json:"className"`
	Level        int           `json:"level"`
	Experience   int           `json:"experience"`
	NextLevelExp int           `json:"nextLevelExp"`
	Gold         int           `json:"gold"`
	HP           int           `json:"hp"`
	MaxHP        int           `json:"maxHp"`
	MP           int           `json:"mp"`
	MaxMP        int           `json:"maxMp"`
	Stats        StatsView     `json:"stats"`
	Equipment    EquipmentView `json:"equipment"`
	Inventory    []ItemView    `json:"inventory"`
	Skills       []SkillView   `json:"skills"`
}

// StatsView это DTO для характеристик.
type StatsView struct {
	HP  int `json:"hp"`
	MP  int `json:"mp"`
	Str int `json:"str"`
	Dex int `json:"dex"`
	Int int `json:"int"`
	Def int `json:"def"`
}

// ItemView представляет предмет для клиента
type ItemView struct {
	Name          string         `json:"name"`
	Slot          string         `json:"type"`
	Cost          int            `json:"cost"`
	SellPrice     int            `json:"sellPrice"`
	Bonuses       map[string]int `json:"stats"`
	RequiredLevel int            `json:"requiredLevel,omitempty"`
	Classes       []string       `json:"classes,omitempty"`
}

// EquipmentView представляет экипированные предметы
type EquipmentView struct {
	Weapon    *ItemView `json:"weapon,omitempty"`
	Armor     *ItemView `json:"armor,omitempty"`
	Accessory *ItemView `json:"accessory,omitempty"`
}

// SkillView описывает умение. Kind - "damage" или "effect".
type SkillView struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	MPCost      int    `json:"mpCost"`
	Description string `json:"description"`
}

// CombatView состояние стычки.
type CombatView struct {
	Enemies []EnemyView `json:"enemies"`
	Streak  int         `json:"streak"`
	Ward    int         `json:"ward,omitempty"`
	Outcome string      `json:"outcome"` // ONGOING, VICTORY, DEFEAT
	Exp     int         `json:"exp,omitempty"`
	Gold    int         `json:"gold,omitempty"`
}

// EnemyView это DTO врага.
type EnemyView struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Tag        string `json:"tag"`
	Level      int    `json:"level"`
	Difficulty int    `json:"difficulty"`
	HP         int    `json:"hp"`
	MaxHP      int    `json:"maxHp"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия: NEW, LOAD, BATTLE, ATTACK, SKILL, REST,
	// EQUIP, UNEQUIP, SHOP, BUY, SELL, STATUS, SAVE.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// NewGamePayload используется для NEW.
type NewGamePayload struct {
	Name  string `json:"name"`
	Class string `json:"class"` // Warrior, Mage, Rogue
}

// LoadPayload используется для LOAD.
type LoadPayload struct {
	SaveID string `json:"saveId"`
}

// IndexPayload используется для действий с номером: SKILL, EQUIP, BUY, SELL.
type IndexPayload struct {
	Index int `json:"index"`
}

// SlotPayload используется для UNEQUIP.
type SlotPayload struct {
	Slot string `json:"slot"` // weapon, armor, accessory
}

// NewCommand собирает команду с payload (nil - без данных).
func NewCommand(action string, payload any) (ClientCommand, error) {
	cmd := ClientCommand{Action: action}
	if payload == nil {
		return cmd, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return ClientCommand{}, err
	}
	cmd.Payload = raw
	return cmd, nil
}
