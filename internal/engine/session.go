package engine

import (
	"dusk-rpg/internal/core/types/enums"
	"dusk-rpg/internal/domain"
	"dusk-rpg/internal/infrastructure/storage"
	"dusk-rpg/internal/systems"
	"dusk-rpg/pkg/api"
	"dusk-rpg/pkg/dungeon"
	"dusk-rpg/pkg/logger"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNoGame - команда пришла до NEW/LOAD.
	ErrNoGame = errors.New("no game in progress")

	// ErrInCombat - действие недоступно во время стычки.
	ErrInCombat = errors.New("not available during combat")

	// ErrNotInCombat - боевое действие вне стычки.
	ErrNotInCombat = errors.New("not in combat")
)

// SaveStore - хранилище сохранений (storage.SaveService).
type SaveStore interface {
	Save(player domain.CharacterSnapshot, clock domain.ClockSnapshot) (string, error)
	Load(id string) (*storage.SaveData, error)
}

// Session - одна игровая сессия: персонаж, часы и текущая стычка.
// Сессией владеет ровно одна горутина (терминал или WebSocket-клиент).
type Session struct {
	Player *domain.Character
	Clock  *domain.Clock

	combat *systems.Combat
	shop   *systems.Shop
	store  SaveStore
	rng    domain.RNG

	logs   []api.LogEntry
	logSeq int
	logger *logrus.Entry
}

// NewSession создаёт пустую сессию. Игра начинается командой NewGame или LoadGame.
func NewSession(store SaveStore, rng domain.RNG) *Session {
	return &Session{
		Clock:  domain.NewClock(),
		shop:   systems.NewShop(dungeon.ShopCatalog()),
		store:  store,
		rng:    rng,
		logger: logger.Log.WithField("component", "session"),
	}
}

// Started - персонаж создан или загружен.
func (s *Session) Started() bool {
	return s.Player != nil
}

// InCombat - идёт незаконченная стычка.
func (s *Session) InCombat() bool {
	return s.combat != nil && !s.combat.Outcome().IsOver()
}

// Combat - текущая или последняя стычка (nil, если боёв ещё не было).
func (s *Session) Combat() *systems.Combat {
	return s.combat
}

func (s *Session) requireGame() error {
	if s.Player == nil {
		return ErrNoGame
	}
	return nil
}

func (s *Session) requirePeace() error {
	if err := s.requireGame(); err != nil {
		return err
	}
	if s.InCombat() {
		return ErrInCombat
	}
	return nil
}

// NewGame создаёт персонажа, сбрасывает часы на утро и сразу сохраняет игру.
func (s *Session) NewGame(name string, class enums.ClassType) error {
	if s.InCombat() {
		return ErrInCombat
	}
	player, err := domain.NewCharacter(name, class)
	if err != nil {
		return err
	}
	s.Player = player
	s.Clock = domain.NewClock()
	s.combat = nil
	s.logger = logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"player_id": player.ID,
	})

	s.logger.WithFields(logrus.Fields{
		"name":  player.Name,
		"class": player.Class.String(),
	}).Info("New game started.")
	s.AddLog(fmt.Sprintf("Персонаж %s (%s) создан!", player.Name, player.Class), LogInfo)

	return s.Save()
}

// LoadGame восстанавливает персонажа и часы из сохранения.
func (s *Session) LoadGame(id string) error {
	if s.InCombat() {
		return ErrInCombat
	}
	data, err := s.store.Load(id)
	if err != nil {
		return err
	}
	player, err := domain.RestoreCharacter(data.Player)
	if err != nil {
		return fmt.Errorf("restoring character: %w", err)
	}

	s.Player = player
	s.Clock = domain.RestoreClock(data.TimeSystem.CurrentPhaseIndex)
	s.combat = nil
	s.logger = logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"player_id": player.ID,
	})

	if !data.Player.StatsMatch(player) {
		s.logger.WithFields(logrus.Fields{
			"saved":   data.Player.Stats,
			"derived": player.Stats,
		}).Warn("Saved stats differ from derived stats, using derived.")
	} else if !data.Player.Equal(player.Snapshot()) {
		s.logger.WithFields(logrus.Fields{
			"saved_hp": data.Player.CurrentHP,
			"hp":       player.CurrentHP,
			"level":    player.Level,
		}).Info("Save normalized on load.")
	}
	s.logger.WithField("level", player.Level).Info("Game loaded.")
	s.AddLog(fmt.Sprintf("Игра загружена: %s, уровень %d.", player.Name, player.Level), LogInfo)
	return nil
}

// Save записывает текущее состояние.
func (s *Session) Save() error {
	if err := s.requireGame(); err != nil {
		return err
	}
	if _, err := s.store.Save(s.Player.Snapshot(), s.Clock.Snapshot()); err != nil {
		s.logger.WithError(err).Error("Failed to save game.")
		return fmt.Errorf("saving game: %w", err)
	}
	return nil
}

// Close завершает сессию: незаконченная стычка засчитывается поражением, игра сохраняется.
func (s *Session) Close() error {
	if !s.Started() {
		return nil
	}
	if s.InCombat() {
		s.logger.Info("Session closed mid-combat, forfeiting.")
		_, err := s.finishRound(s.combat.Forfeit())
		return err
	}
	return s.Save()
}

// StartBattle собирает врагов из пула текущей фазы и начинает стычку.
func (s *Session) StartBattle() ([]*domain.Enemy, error) {
	if err := s.requirePeace(); err != nil {
		return nil, err
	}

	enemies := dungeon.RollEncounter(s.Clock.EnemyPool(), s.Player.Level, s.rng)
	s.combat = systems.NewCombat(s.Player, enemies, s.rng)

	s.AddLog(fmt.Sprintf("%d враг(а) появляется в фазе %s!", len(enemies), s.Clock.Phase()), LogCombat)
	for _, e := range enemies {
		s.AddLog(fmt.Sprintf("%s %d уровня вступает в бой!", e.Name, e.Level), LogCombat)
	}

	s.logger.WithFields(logrus.Fields{
		"phase":   s.Clock.Phase().String(),
		"enemies": len(enemies),
	}).Info("Battle started.")
	return enemies, nil
}

// Attack - раунд с обычной атакой.
func (s *Session) Attack() (systems.Outcome, error) {
	if err := s.requireGame(); err != nil {
		return systems.OutcomeOngoing, err
	}
	if !s.InCombat() {
		return systems.OutcomeOngoing, ErrNotInCombat
	}
	outcome, err := s.combat.ExecuteTurn()
	return s.finishRound(outcome, err)
}

// UseSkill - раунд с умением. Без стычки умения не применяются.
func (s *Session) UseSkill(index int) (systems.Outcome, error) {
	if err := s.requireGame(); err != nil {
		return systems.OutcomeOngoing, err
	}
	if !s.InCombat() {
		return systems.OutcomeOngoing, ErrNotInCombat
	}
	outcome, err := s.combat.ExecuteSkillTurn(index)
	return s.finishRound(outcome, err)
}

// finishRound переносит лог боя в лог сессии и сохраняет игру по окончании стычки.
func (s *Session) finishRound(outcome systems.Outcome, err error) (systems.Outcome, error) {
	logType := LogCombat
	if err != nil {
		logType = LogError
	}
	for _, line := range s.combat.Log() {
		s.AddLog(line, logType)
	}
	s.combat.ClearLog()

	if err != nil {
		return outcome, err
	}
	if outcome.IsOver() {
		if saveErr := s.Save(); saveErr != nil {
			return outcome, saveErr
		}
	}
	return outcome, nil
}

// Rest восстанавливает персонажа и переводит часы. Игра сохраняется.
func (s *Session) Rest() (domain.Phase, error) {
	if err := s.requirePeace(); err != nil {
		return s.Clock.Phase(), err
	}

	s.Player.Rest()
	phase := s.Clock.Advance()
	s.AddLog("Вы отдыхаете и полностью восстанавливаете HP и MP.", LogInfo)
	s.AddLog(fmt.Sprintf("Наступает %s.", phase), LogInfo)

	s.logger.WithField("phase", phase.String()).Info("Player rested.")
	return phase, s.Save()
}

// Equip надевает предмет из инвентаря.
func (s *Session) Equip(index int) error {
	if err := s.requirePeace(); err != nil {
		return err
	}
	item, replaced, err := s.Player.EquipFromInventory(index)
	if err != nil {
		return err
	}
	if replaced != nil {
		s.AddLog(fmt.Sprintf("Сняли %s, надели %s.", replaced.Name, item.Name), LogInfo)
	} else {
		s.AddLog(fmt.Sprintf("Надели %s.", item.Name), LogInfo)
	}
	return nil
}

// Unequip снимает предмет в инвентарь.
func (s *Session) Unequip(slot enums.SlotType) error {
	if err := s.requirePeace(); err != nil {
		return err
	}
	item, err := s.Player.UnequipToInventory(slot)
	if err != nil {
		return err
	}
	s.AddLog(fmt.Sprintf("Сняли %s.", item.Name), LogInfo)
	return nil
}

// ShopItems - что персонаж может купить сейчас.
func (s *Session) ShopItems() ([]domain.Item, error) {
	if err := s.requirePeace(); err != nil {
		return nil, err
	}
	return s.shop.Available(s.Player), nil
}

// Buy покупает предмет по индексу из ShopItems.
func (s *Session) Buy(index int) error {
	if err := s.requirePeace(); err != nil {
		return err
	}
	item, err := s.shop.Buy(s.Player, index)
	if err != nil {
		return err
	}
	s.AddLog(fmt.Sprintf("Куплено: %s.", item.Name), LogInfo)
	return nil
}

// Sell продаёт предмет из инвентаря.
func (s *Session) Sell(index int) error {
	if err := s.requirePeace(); err != nil {
		return err
	}
	item, price, err := s.shop.Sell(s.Player, index)
	if err != nil {
		return err
	}
	s.AddLog(fmt.Sprintf("Продано: %s за %d золота.", item.Name, price), LogInfo)
	return nil
}
