package actions

import (
	"dusk-rpg/internal/engine/handlers"
	"dusk-rpg/pkg/api"
	"fmt"
)

func HandleShop(ctx handlers.Context) (handlers.Result, error) {
	items, err := ctx.Session.ShopItems()
	if err != nil {
		return handlers.Result{}, err
	}
	if len(items) == 0 {
		return handlers.Result{Msg: "Лавка пуста для вашего уровня.", MsgType: "INFO"}, nil
	}
	return handlers.Result{
		Msg:      fmt.Sprintf("В лавке %d товар(ов).", len(items)),
		MsgType:  "INFO",
		ShowShop: true,
	}, nil
}

// HandleBuy - индекс указывает в список, который показала команда SHOP.
func HandleBuy(ctx handlers.Context, p api.IndexPayload) (handlers.Result, error) {
	if err := ctx.Session.Buy(p.Index); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{ShowShop: true}, nil
}

func HandleSell(ctx handlers.Context, p api.IndexPayload) (handlers.Result, error) {
	if err := ctx.Session.Sell(p.Index); err != nil {
		return handlers.Result{}, err
	}
	return handlers.EmptyResult(), nil
}
