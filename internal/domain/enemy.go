package domain

import (
	"dusk-rpg/internal/core/types/enums"
	"math"
)

// Ability - приём врага и множитель его урона.
type Ability struct {
	Name     string
	Modifier float64
}

// EnemyTemplate - архетип врага до масштабирования по уровню.
type EnemyTemplate struct {
	Kind       enums.EnemyKind
	Name       string
	BaseHP     int
	BaseDamage int
	ExpValue   int
	GoldValue  int
	Abilities  []Ability
	Tag        enums.CreatureTag
	Difficulty int
}

// Enemy - враг одной стычки. Не сохраняется.
type Enemy struct {
	Kind       enums.EnemyKind
	Name       string
	Tag        enums.CreatureTag
	Level      int
	Difficulty int
	Abilities  []Ability

	HP        int
	Damage    int
	ExpValue  int
	GoldValue int
	CurrentHP int
}

// AttackResult - итог одной атаки врага.
type AttackResult struct {
	Damage  int
	Ability string
}

// BaseDamage - урон врага без разброса.
func (e *Enemy) BaseDamage() int {
	return e.Damage
}

// Attack выбирает случайный приём и считает его урон. Состояние врага не меняется.
func (e *Enemy) Attack(rng RNG) AttackResult {
	if len(e.Abilities) == 0 {
		return AttackResult{}
	}
	ability := e.Abilities[rng.Intn(len(e.Abilities))]
	// Разброс 80-100% от базового урона
	base := math.Floor(float64(e.Damage) * (0.8 + rng.Float64()*0.2))
	return AttackResult{
		Damage:  int(math.Floor(base * ability.Modifier)),
		Ability: ability.Name,
	}
}

// TakeDamage наносит урон. Возвращает true, если здоровье стало нулевым.
func (e *Enemy) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	e.CurrentHP = max(0, e.CurrentHP-amount)
	return e.CurrentHP == 0
}

// IsDead - враг повержен.
func (e *Enemy) IsDead() bool {
	return e.CurrentHP <= 0
}
