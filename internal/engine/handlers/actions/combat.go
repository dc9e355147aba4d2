package actions

import (
	"dusk-rpg/internal/engine/handlers"
	"dusk-rpg/pkg/api"
)

func HandleBattle(ctx handlers.Context) (handlers.Result, error) {
	if _, err := ctx.Session.StartBattle(); err != nil {
		return handlers.Result{}, err
	}
	return handlers.EmptyResult(), nil
}

// HandleAttack - раунд с обычной атакой. Сообщения раунда сессия берёт из лога боя.
func HandleAttack(ctx handlers.Context) (handlers.Result, error) {
	if _, err := ctx.Session.Attack(); err != nil {
		return handlers.Result{}, err
	}
	return handlers.EmptyResult(), nil
}

func HandleSkill(ctx handlers.Context, p api.IndexPayload) (handlers.Result, error) {
	if _, err := ctx.Session.UseSkill(p.Index); err != nil {
		return handlers.Result{}, err
	}
	return handlers.EmptyResult(), nil
}
