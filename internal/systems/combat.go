package systems

import (
	"dusk-rpg/internal/domain"
	"dusk-rpg/pkg/logger"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

var (
	// ErrCombatOver - стычка уже закончилась победой или поражением.
	ErrCombatOver = errors.New("combat is already over")

	// ErrNoEnemies - стычка без врагов.
	ErrNoEnemies = errors.New("combat has no enemies")
)

// Outcome - состояние стычки после раунда.
type Outcome uint8

const (
	OutcomeOngoing Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "VICTORY"
	case OutcomeDefeat:
		return "DEFEAT"
	default:
		return "ONGOING"
	}
}

// IsOver - стычка закончилась.
func (o Outcome) IsOver() bool {
	return o != OutcomeOngoing
}

// Reward - награда за победу.
type Reward struct {
	Exp  int
	Gold int
}

// Attacker - всё, у кого есть базовый урон (персонаж по STR, враг по Damage).
type Attacker interface {
	BaseDamage() int
}

// Параметры баланса боя
const (
	playerDamageVariance = 0.15

	// Поблажка новичку: урон слабых врагов режется, пока игрок низкого уровня.
	leniencyPlayerLevel = 3
	leniencyDifficulty  = 2
	leniencyMultiplier  = 0.8

	maxStreakBonus  = 1.5
	streakBonusStep = 0.1
)

// Combat проводит раунды между персонажем и группой врагов.
// Первый враг в списке - текущая цель. Один Combat - одна стычка.
type Combat struct {
	player  *domain.Character
	enemies []*domain.Enemy
	killed  []*domain.Enemy
	rng     domain.RNG

	streak  int
	ward    int
	outcome Outcome
	reward  Reward
	log     []string

	logger *logrus.Entry
}

// NewCombat начинает стычку. Серия убийств начинается с нуля.
func NewCombat(player *domain.Character, enemies []*domain.Enemy, rng domain.RNG) *Combat {
	return &Combat{
		player:  player,
		enemies: append([]*domain.Enemy(nil), enemies...),
		rng:     rng,
		logger: logger.Log.WithFields(logrus.Fields{
			"component":   "combat_system",
			"player_id":   player.ID,
			"player_name": player.Name,
		}),
	}
}

// Enemies - живые враги, первый - текущая цель.
func (c *Combat) Enemies() []*domain.Enemy {
	return append([]*domain.Enemy(nil), c.enemies...)
}

// Target - текущая цель или nil, если врагов не осталось.
func (c *Combat) Target() *domain.Enemy {
	if len(c.enemies) == 0 {
		return nil
	}
	return c.enemies[0]
}

func (c *Combat) Streak() int      { return c.streak }
func (c *Combat) Outcome() Outcome { return c.outcome }

// Ward - остаток щита от умения-эффекта в текущем раунде.
func (c *Combat) Ward() int { return c.ward }

// Reward - выданная награда (нулевая, пока нет победы).
func (c *Combat) Reward() Reward { return c.reward }

// Log возвращает сообщения, накопленные с последней очистки.
func (c *Combat) Log() []string {
	return append([]string(nil), c.log...)
}

// ClearLog очищает лог между раундами.
func (c *Combat) ClearLog() {
	c.log = c.log[:0]
}

func (c *Combat) addToLog(format string, args ...any) {
	c.log = append(c.log, fmt.Sprintf(format, args...))
}

// CalculateDamage - базовый урон атакующего с разбросом ±15%, вниз.
func (c *Combat) CalculateDamage(attacker Attacker) int {
	base := float64(attacker.BaseDamage())
	factor := 1 - playerDamageVariance + c.rng.Float64()*playerDamageVariance*2
	return int(math.Floor(base * factor))
}

// AdjustEnemyDamage режет урон слабых врагов на 20%, пока игрок не выше 3 уровня.
func (c *Combat) AdjustEnemyDamage(damage int, enemy *domain.Enemy) int {
	if c.player.Level <= leniencyPlayerLevel && enemy.Difficulty <= leniencyDifficulty {
		return int(math.Floor(float64(damage) * leniencyMultiplier))
	}
	return damage
}

func (c *Combat) checkActive() error {
	if c.outcome.IsOver() {
		return ErrCombatOver
	}
	if len(c.enemies) == 0 {
		return ErrNoEnemies
	}
	return nil
}

// Forfeit засчитывает поражение в незаконченной стычке (игрок ушёл посреди боя).
func (c *Combat) Forfeit() (Outcome, error) {
	if err := c.checkActive(); err != nil {
		return c.outcome, err
	}
	c.addToLog("Вы покидаете бой.")
	return c.handleDefeat(), nil
}

// ExecuteTurn проводит раунд с обычной атакой игрока.
func (c *Combat) ExecuteTurn() (Outcome, error) {
	if err := c.checkActive(); err != nil {
		return c.outcome, err
	}

	target := c.enemies[0]
	damage := c.CalculateDamage(c.player)
	killed := target.TakeDamage(damage)
	c.addToLog("Вы атакуете %s: %d урона!", target.Name, damage)

	c.logger.WithFields(logrus.Fields{
		"target":    target.Name,
		"damage":    damage,
		"target_hp": target.CurrentHP,
		"killed":    killed,
	}).Debug("Player attack resolved.")

	return c.afterPlayerAction(target, killed), nil
}

// ExecuteSkillTurn проводит раунд, в котором игрок применяет умение.
// Неудачное умение (нет маны, нет умения) не тратит ход: враги не атакуют.
func (c *Combat) ExecuteSkillTurn(index int) (Outcome, error) {
	if err := c.checkActive(); err != nil {
		return c.outcome, err
	}

	target := c.enemies[0]
	res, err := c.player.UseSkill(index, target)
	if err != nil {
		c.addToLog("%s", res.Message)
		return c.outcome, err
	}
	c.addToLog("%s", res.Message)

	if res.Effect > 0 {
		c.ward = res.Effect
		c.addToLog("Щит поглотит до %d урона в этом раунде.", res.Effect)
	}

	c.logger.WithFields(logrus.Fields{
		"skill":  res.Skill,
		"damage": res.Damage,
		"effect": res.Effect,
		"mp":     c.player.CurrentMP,
	}).Debug("Player skill resolved.")

	return c.afterPlayerAction(target, target.IsDead()), nil
}

// afterPlayerAction убирает убитую цель и отдаёт ход врагам.
func (c *Combat) afterPlayerAction(target *domain.Enemy, killed bool) Outcome {
	if killed {
		c.enemies = c.enemies[1:]
		c.handleEnemyDeath(target)

		if len(c.enemies) == 0 {
			c.ward = 0
			return c.handleVictory()
		}
	}
	return c.enemyPhase()
}

// enemyPhase - все живые враги по очереди бьют игрока.
// Поражение прерывает раунд сразу.
func (c *Combat) enemyPhase() Outcome {
	defer func() { c.ward = 0 }()

	for _, enemy := range c.enemies {
		attack := enemy.Attack(c.rng)
		damage := c.AdjustEnemyDamage(attack.Damage, enemy)

		if c.ward > 0 && damage > 0 {
			absorbed := min(c.ward, damage)
			c.ward -= absorbed
			damage -= absorbed
			c.addToLog("Щит поглощает %d урона.", absorbed)
		}

		c.player.TakeDamage(damage)
		c.addToLog("%s использует %s: %d урона!", enemy.Name, attack.Ability, damage)

		if c.player.IsDefeated() {
			return c.handleDefeat()
		}
	}
	return OutcomeOngoing
}

func (c *Combat) handleEnemyDeath(enemy *domain.Enemy) {
	c.streak++
	c.killed = append(c.killed, enemy)
	c.addToLog("%s повержен!", enemy.Name)
}

// CalculateRewards суммирует награду за убитых врагов с поправкой на разницу уровней
// и бонусом за серию.
func (c *Combat) CalculateRewards() Reward {
	var total Reward
	for _, enemy := range c.killed {
		total.Exp += AdjustReward(enemy.ExpValue, c.player.Level, enemy.Level)
		total.Gold += AdjustReward(enemy.GoldValue, c.player.Level, enemy.Level)
	}

	if c.streak > 1 {
		bonus := StreakBonus(c.streak)
		total.Exp = int(math.Floor(float64(total.Exp) * bonus))
		total.Gold = int(math.Floor(float64(total.Gold) * bonus))
		c.addToLog("Серия x%d! Бонус к награде!", c.streak)
	}
	return total
}

// AdjustReward поправляет награду одного врага на разницу уровней.
func AdjustReward(value, playerLevel, enemyLevel int) int {
	v := float64(value)
	switch {
	case enemyLevel > playerLevel:
		v *= 1 + float64(enemyLevel-playerLevel)*0.15
	case enemyLevel < playerLevel-4:
		v *= 0.5
	case enemyLevel < playerLevel:
		v *= 1 - float64(playerLevel-enemyLevel)*0.1
	case playerLevel <= 5:
		v *= 1.2
	}
	return int(math.Floor(v))
}

// StreakBonus - множитель награды за серию: +10% за каждое убийство после первого, максимум 1.5.
func StreakBonus(streak int) float64 {
	if streak <= 1 {
		return 1
	}
	return math.Min(maxStreakBonus, 1+float64(streak-1)*streakBonusStep)
}

func (c *Combat) handleVictory() Outcome {
	reward := c.CalculateRewards()
	levels := c.player.GainExperience(reward.Exp)
	c.player.AddGold(reward.Gold)

	c.reward = reward
	c.outcome = OutcomeVictory
	c.addToLog("Победа! Получено %d опыта и %d золота!", reward.Exp, reward.Gold)
	if levels > 0 {
		c.addToLog("Новый уровень: %d!", c.player.Level)
	}

	c.logger.WithFields(logrus.Fields{
		"exp":    reward.Exp,
		"gold":   reward.Gold,
		"streak": c.streak,
		"levels": levels,
		"level":  c.player.Level,
		"killed": len(c.killed),
	}).Info("Combat won.")
	return c.outcome
}

func (c *Combat) handleDefeat() Outcome {
	c.streak = 0
	c.addToLog("Вы повержены!")
	c.player.Respawn()
	c.addToLog("Вы возрождаетесь с полным здоровьем.")
	c.outcome = OutcomeDefeat

	c.logger.WithFields(logrus.Fields{
		"exp":  c.player.Experience,
		"gold": c.player.Gold,
	}).Info("Combat lost, player respawned.")
	return c.outcome
}
