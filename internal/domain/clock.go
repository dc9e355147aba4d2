package domain

import "dusk-rpg/internal/core/types/enums"

// Phase - часть суток. Циклически: Morning -> Afternoon -> Evening -> Night -> Morning.
type Phase int

const (
	PhaseMorning Phase = iota
	PhaseAfternoon
	PhaseEvening
	PhaseNight

	phaseCount = 4
)

var phaseNames = [phaseCount]string{"Morning", "Afternoon", "Evening", "Night"}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return "Unknown"
	}
	return phaseNames[p]
}

// phaseEnemies - кто водится в какое время суток.
var phaseEnemies = [phaseCount][]enums.EnemyKind{
	PhaseMorning:   {enums.EnemySlime, enums.EnemyGoblin},
	PhaseAfternoon: {enums.EnemyGoblin, enums.EnemySkeleton},
	PhaseEvening:   {enums.EnemySkeleton, enums.EnemyOrc, enums.EnemyDarkMage},
	PhaseNight:     {enums.EnemyDarkMage, enums.EnemyDragon},
}

// phaseDifficulty растёт к ночи.
var phaseDifficulty = [phaseCount]float64{1.0, 1.1, 1.2, 1.3}

// Clock - игровые сутки. Сдвигается только отдыхом.
type Clock struct {
	phase Phase
}

// NewClock создаёт часы на утро.
func NewClock() *Clock {
	return &Clock{phase: PhaseMorning}
}

// RestoreClock восстанавливает часы из сохранённого индекса (по модулю 4).
func RestoreClock(index int) *Clock {
	index %= phaseCount
	if index < 0 {
		index += phaseCount
	}
	return &Clock{phase: Phase(index)}
}

// Phase возвращает текущую часть суток.
func (c *Clock) Phase() Phase {
	return c.phase
}

// PhaseIndex - индекс фазы для сохранения.
func (c *Clock) PhaseIndex() int {
	return int(c.phase)
}

// Advance переводит часы на следующую фазу и возвращает её.
func (c *Clock) Advance() Phase {
	c.phase = (c.phase + 1) % phaseCount
	return c.phase
}

// EnemyPool - архетипы врагов, доступные в текущей фазе.
func (c *Clock) EnemyPool() []enums.EnemyKind {
	return append([]enums.EnemyKind(nil), phaseEnemies[c.phase]...)
}

// DifficultyMultiplier - множитель сложности фазы.
// Пока только для отображения: на урон он не влияет.
func (c *Clock) DifficultyMultiplier() float64 {
	return phaseDifficulty[c.phase]
}
