package handlers

import (
	"dusk-rpg/internal/core/types/enums"
	"dusk-rpg/internal/domain"
	"dusk-rpg/internal/systems"
	"encoding/json"
)

// GameSession описывает сессию, над которой работают хендлеры.
// engine.Session неявно реализует этот интерфейс.
type GameSession interface {
	NewGame(name string, class enums.ClassType) error
	LoadGame(id string) error
	Save() error

	StartBattle() ([]*domain.Enemy, error)
	Attack() (systems.Outcome, error)
	UseSkill(index int) (systems.Outcome, error)

	Rest() (domain.Phase, error)
	Equip(index int) error
	Unequip(slot enums.SlotType) error

	ShopItems() ([]domain.Item, error)
	Buy(index int) error
	Sell(index int) error
}

// Context передает хендлеру сессию.
// Хендлер мутирует сессию только через её методы.
type Context struct {
	Session GameSession
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сессии напрямую, он возвращает данные.
type Result struct {
	Msg      string // Текст лога
	MsgType  string // Тип лога (INFO, COMBAT, ERROR)
	ShowShop bool   // Приложить к ответу ассортимент лавки
}

// HandlerFunc - это контракт для любой команды (ATTACK, REST, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
