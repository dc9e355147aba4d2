package domain

import (
	"dusk-rpg/internal/core/types/enums"
	"math"
)

// Skill - умение персонажа. Реализации: DamageSkill и EffectSkill, других нет.
type Skill interface {
	Name() string
	Cost() int
	Description() string
	// Magnitude - сила умения при текущих характеристиках (урон или величина эффекта).
	Magnitude(s Stats) int
	isSkill()
}

// DamageSkill наносит цели урон floor(stat * Multiplier).
type DamageSkill struct {
	Title      string
	MPCost     int
	Source     enums.StatName
	Multiplier float64
	Desc       string
}

// EffectSkill ничего не наносит, а возвращает величину эффекта.
// Как её применить, решает вызывающий (в бою это щит, поглощающий урон раунда).
type EffectSkill struct {
	Title      string
	MPCost     int
	Source     enums.StatName
	Multiplier float64
	Desc       string
}

func (s DamageSkill) Name() string        { return s.Title }
func (s DamageSkill) Cost() int           { return s.MPCost }
func (s DamageSkill) Description() string { return s.Desc }
func (s DamageSkill) Magnitude(st Stats) int {
	return scaleStat(st, s.Source, s.Multiplier)
}
func (DamageSkill) isSkill() {}

func (s EffectSkill) Name() string        { return s.Title }
func (s EffectSkill) Cost() int           { return s.MPCost }
func (s EffectSkill) Description() string { return s.Desc }
func (s EffectSkill) Magnitude(st Stats) int {
	return scaleStat(st, s.Source, s.Multiplier)
}
func (EffectSkill) isSkill() {}

func scaleStat(st Stats, name enums.StatName, mult float64) int {
	return int(math.Floor(float64(st.Get(name)) * mult))
}

// skillSets - по два умения на класс, порядок фиксирован (номер умения = индекс).
var skillSets = map[enums.ClassType][]Skill{
	enums.ClassWarrior: {
		DamageSkill{Title: "Power Strike", MPCost: 10, Source: enums.StatStr, Multiplier: 1.5,
			Desc: "Мощный удар: 150% STR"},
		EffectSkill{Title: "Shield Block", MPCost: 15, Source: enums.StatDef, Multiplier: 2,
			Desc: "Щит на раунд: 200% DEF"},
	},
	enums.ClassMage: {
		DamageSkill{Title: "Fireball", MPCost: 20, Source: enums.StatInt, Multiplier: 2,
			Desc: "Огненный шар: 200% INT"},
		EffectSkill{Title: "Ice Shield", MPCost: 25, Source: enums.StatInt, Multiplier: 0.5,
			Desc: "Ледяной щит: 50% INT"},
	},
	enums.ClassRogue: {
		DamageSkill{Title: "Backstab", MPCost: 15, Source: enums.StatDex, Multiplier: 1.8,
			Desc: "Удар в спину: 180% DEX"},
		EffectSkill{Title: "Dodge", MPCost: 20, Source: enums.StatDex, Multiplier: 0.8,
			Desc: "Уклонение: 80% DEX"},
	},
}

// SkillsFor возвращает умения класса. Умения не сохраняются, а выводятся из класса.
func SkillsFor(class enums.ClassType) []Skill {
	return append([]Skill(nil), skillSets[class]...)
}

// SkillResult - итог применения умения.
type SkillResult struct {
	Skill string
	// Damage - нанесённый урон (только для DamageSkill).
	Damage int
	// Effect - величина эффекта (только для EffectSkill).
	Effect int
	// Killed - цель погибла от этого умения.
	Killed  bool
	Message string
}

// Target - всё, что может получить урон от умения.
type Target interface {
	TakeDamage(amount int) bool
}
