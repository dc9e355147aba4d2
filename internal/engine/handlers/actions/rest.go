package actions

import (
	"dusk-rpg/internal/engine/handlers"
)

// HandleRest лечит персонажа и двигает часы.
func HandleRest(ctx handlers.Context) (handlers.Result, error) {
	if _, err := ctx.Session.Rest(); err != nil {
		return handlers.Result{}, err
	}
	return handlers.EmptyResult(), nil
}
