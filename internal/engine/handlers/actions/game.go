package actions

import (
	"dusk-rpg/internal/core/types/enums"
	"dusk-rpg/internal/engine/handlers"
	"dusk-rpg/pkg/api"
)

// HandleNew создаёт персонажа. Класс уже проверен валидатором payload.
func HandleNew(ctx handlers.Context, p api.NewGamePayload) (handlers.Result, error) {
	if err := ctx.Session.NewGame(p.Name, enums.ParseClass(p.Class)); err != nil {
		return handlers.Result{}, err
	}
	return handlers.EmptyResult(), nil
}

func HandleLoad(ctx handlers.Context, p api.LoadPayload) (handlers.Result, error) {
	if err := ctx.Session.LoadGame(p.SaveID); err != nil {
		return handlers.Result{}, err
	}
	return handlers.EmptyResult(), nil
}

func HandleSave(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Session.Save(); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: "Игра сохранена.", MsgType: "INFO"}, nil
}

// HandleStatus ничего не меняет: ответ и так несёт полный снимок состояния.
func HandleStatus(_ handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
