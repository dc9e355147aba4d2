package engine

import (
	"dusk-rpg/internal/domain"
	"dusk-rpg/internal/engine/handlers"
	"dusk-rpg/internal/engine/handlers/actions"
	"dusk-rpg/pkg/api"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrUnknownAction - команда не из протокола.
var ErrUnknownAction = errors.New("unknown action")

var registry = map[domain.ActionType]handlers.HandlerFunc{
	domain.ActionNew:     handlers.WithPayload(actions.HandleNew),
	domain.ActionLoad:    handlers.WithPayload(actions.HandleLoad),
	domain.ActionSave:    handlers.WithEmptyPayload(actions.HandleSave),
	domain.ActionStatus:  handlers.WithEmptyPayload(actions.HandleStatus),
	domain.ActionBattle:  handlers.WithEmptyPayload(actions.HandleBattle),
	domain.ActionAttack:  handlers.WithEmptyPayload(actions.HandleAttack),
	domain.ActionSkill:   handlers.WithPayload(actions.HandleSkill),
	domain.ActionRest:    handlers.WithEmptyPayload(actions.HandleRest),
	domain.ActionEquip:   handlers.WithPayload(actions.HandleEquip),
	domain.ActionUnequip: handlers.WithPayload(actions.HandleUnequip),
	domain.ActionShop:    handlers.WithEmptyPayload(actions.HandleShop),
	domain.ActionBuy:     handlers.WithPayload(actions.HandleBuy),
	domain.ActionSell:    handlers.WithPayload(actions.HandleSell),
}

// ProcessCommand выполняет команду клиента и возвращает полный снимок состояния.
// Ошибка команды не ломает сессию: ответ получает Type "ERROR" и текст ошибки.
func (s *Session) ProcessCommand(cmd api.ClientCommand) api.ServerResponse {
	action := domain.ParseAction(cmd.Action)
	log := s.logger.WithField("action", action.String())

	handler, ok := registry[action]
	if !ok {
		log.WithField("raw_action", cmd.Action).Warn("Unknown action.")
		return s.errorResponse(fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action))
	}
	if action.NeedsGame() && !s.Started() {
		return s.errorResponse(ErrNoGame)
	}

	result, err := handler(handlers.Context{Session: s}, cmd.Payload)
	if err != nil {
		log.WithError(err).Debug("Command rejected.")
		return s.errorResponse(err)
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = LogInfo
		}
		s.AddLog(result.Msg, msgType)
	}

	log.WithFields(logrus.Fields{
		"in_combat": s.InCombat(),
		"phase":     s.Clock.Phase().String(),
	}).Debug("Command processed.")
	return *s.BuildState(result.ShowShop)
}

func (s *Session) errorResponse(err error) api.ServerResponse {
	s.AddLog(err.Error(), LogError)
	resp := s.BuildState(false)
	resp.Type = "ERROR"
	resp.Error = err.Error()
	return *resp
}
