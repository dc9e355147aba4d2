package agent

import (
	"context"
	"dusk-rpg/internal/domain"
	"dusk-rpg/pkg/api"
	"dusk-rpg/pkg/logger"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Driver - то, чем бот управляет. engine.Session неявно реализует этот интерфейс.
type Driver interface {
	ProcessCommand(cmd api.ClientCommand) api.ServerResponse
}

// Bot - "игрок-компьютер". Видит только снимки состояния, как обычный клиент,
// и отвечает командами протокола.
//
// Жизненный цикл:
//  1. NewBot - привязка к уже начатой сессии.
//  2. Run - цикл: решение по последнему снимку, команда, новый снимок.
//  3. Run заканчивается после заданного числа стычек или по отмене контекста.
type Bot struct {
	Session Driver

	// RestBelow - доля HP/MP, ниже которой бот отдыхает между стычками.
	RestBelow float64
	// ShieldBelow - доля HP, ниже которой бот в бою ставит щит.
	ShieldBelow float64
	// MaxSteps - предохранитель от бесконечного цикла.
	MaxSteps int

	log *logrus.Entry
}

// Report - итоги прогона бота.
type Report struct {
	Battles   int
	Victories int
	Defeats   int
	Rounds    int
	Purchases int
	Level     int
	Gold      int
	Phase     string
}

// ErrStuck - бот исчерпал MaxSteps, не доиграв.
var ErrStuck = errors.New("bot exceeded step limit")

func NewBot(session Driver) *Bot {
	return &Bot{
		Session:     session,
		RestBelow:   0.6,
		ShieldBelow: 0.35,
		MaxSteps:    10000,
		log:         logger.Component("bot"),
	}
}

// Run играет battles стычек подряд.
func (b *Bot) Run(ctx context.Context, battles int) (Report, error) {
	var report Report

	state, err := b.send(domain.ActionStatus, nil)
	if err != nil {
		return report, err
	}

	for step := 0; report.Battles < battles || inCombat(state); step++ {
		if step >= b.MaxSteps {
			return report, ErrStuck
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		action, payload := b.decide(state)
		next, err := b.send(action, payload)
		if err != nil {
			return report, err
		}

		switch action {
		case domain.ActionBattle:
			report.Battles++
		case domain.ActionAttack, domain.ActionSkill:
			report.Rounds++
			if next.Combat != nil {
				switch next.Combat.Outcome {
				case "VICTORY":
					report.Victories++
				case "DEFEAT":
					report.Defeats++
				}
			}
		case domain.ActionBuy:
			report.Purchases++
		}
		state = next
	}

	if state.Player != nil {
		report.Level = state.Player.Level
		report.Gold = state.Player.Gold
	}
	report.Phase = state.Phase

	b.log.WithFields(logrus.Fields{
		"battles":   report.Battles,
		"victories": report.Victories,
		"defeats":   report.Defeats,
		"level":     report.Level,
	}).Info("Bot run finished.")
	return report, nil
}

// decide - мозг бота: выбирает следующую команду по снимку состояния.
func (b *Bot) decide(state api.ServerResponse) (domain.ActionType, any) {
	p := state.Player
	if p == nil {
		return domain.ActionStatus, nil
	}

	if inCombat(state) {
		return b.decideCombat(p)
	}

	// Между стычками: надеть лучшее из сумки, докупиться, отдохнуть
	if idx := upgradeFromInventory(p); idx >= 0 {
		return domain.ActionEquip, api.IndexPayload{Index: idx}
	}
	if state.Shop != nil {
		if idx := affordableUpgrade(p, state.Shop); idx >= 0 {
			return domain.ActionBuy, api.IndexPayload{Index: idx}
		}
	}
	if ratio(p.HP, p.MaxHP) < b.RestBelow || ratio(p.MP, p.MaxMP) < b.RestBelow {
		return domain.ActionRest, nil
	}
	if state.Shop == nil {
		return domain.ActionShop, nil
	}
	return domain.ActionBattle, nil
}

func (b *Bot) decideCombat(p *api.PlayerView) (domain.ActionType, any) {
	wantShield := ratio(p.HP, p.MaxHP) < b.ShieldBelow
	for i, sk := range p.Skills {
		if sk.MPCost > p.MP {
			continue
		}
		if wantShield && sk.Kind == "effect" {
			return domain.ActionSkill, api.IndexPayload{Index: i}
		}
		if !wantShield && sk.Kind == "damage" {
			return domain.ActionSkill, api.IndexPayload{Index: i}
		}
	}
	return domain.ActionAttack, nil
}

func (b *Bot) send(action domain.ActionType, payload any) (api.ServerResponse, error) {
	cmd, err := api.NewCommand(action.String(), payload)
	if err != nil {
		return api.ServerResponse{}, fmt.Errorf("bot: encoding %s: %w", action, err)
	}
	resp := b.Session.ProcessCommand(cmd)
	if resp.Type == "ERROR" {
		return resp, fmt.Errorf("bot: %s rejected: %s", action, resp.Error)
	}
	return resp, nil
}

func inCombat(state api.ServerResponse) bool {
	return state.Combat != nil && state.Combat.Outcome == "ONGOING"
}

func ratio(cur, limit int) float64 {
	if limit <= 0 {
		return 1
	}
	return float64(cur) / float64(limit)
}

// itemScore - простая оценка предмета: сумма бонусов.
func itemScore(item *api.ItemView) int {
	if item == nil {
		return 0
	}
	total := 0
	for _, v := range item.Bonuses {
		total += v
	}
	return total
}

func equippedIn(p *api.PlayerView, slot string) *api.ItemView {
	switch slot {
	case "weapon":
		return p.Equipment.Weapon
	case "armor":
		return p.Equipment.Armor
	case "accessory":
		return p.Equipment.Accessory
	}
	return nil
}

// upgradeFromInventory - индекс предмета в сумке, который лучше надетого.
func upgradeFromInventory(p *api.PlayerView) int {
	for i := range p.Inventory {
		item := &p.Inventory[i]
		if itemScore(item) > itemScore(equippedIn(p, item.Slot)) {
			return i
		}
	}
	return -1
}

// affordableUpgrade - индекс товара, который по карману и лучше надетого.
func affordableUpgrade(p *api.PlayerView, shop []api.ItemView) int {
	for i := range shop {
		item := &shop[i]
		if item.Cost <= p.Gold && itemScore(item) > itemScore(equippedIn(p, item.Slot)) {
			return i
		}
	}
	return -1
}
