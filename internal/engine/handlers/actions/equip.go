package actions

import (
	"dusk-rpg/internal/core/types/enums"
	"dusk-rpg/internal/engine/handlers"
	"dusk-rpg/pkg/api"
)

// HandleEquip обрабатывает команду EQUIP - надевает предмет из инвентаря
func HandleEquip(ctx handlers.Context, p api.IndexPayload) (handlers.Result, error) {
	if err := ctx.Session.Equip(p.Index); err != nil {
		return handlers.Result{}, err
	}
	return handlers.EmptyResult(), nil
}

// HandleUnequip обрабатывает команду UNEQUIP - снимает предмет в инвентарь
func HandleUnequip(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	if err := ctx.Session.Unequip(enums.ParseSlot(p.Slot)); err != nil {
		return handlers.Result{}, err
	}
	return handlers.EmptyResult(), nil
}
