package domain

import "dusk-rpg/internal/core/types/enums"

// Stats - боевые характеристики персонажа. Все значения неотрицательные.
type Stats struct {
	HP  int `json:"hp"`
	MP  int `json:"mp"`
	Str int `json:"str"`
	Dex int `json:"dex"`
	Int int `json:"int"`
	Def int `json:"def"`
}

// StatBonus - прибавка к характеристикам от предмета.
// Отличается от Stats только сериализацией: нулевые поля не пишутся.
type StatBonus struct {
	HP  int `json:"hp,omitempty"`
	MP  int `json:"mp,omitempty"`
	Str int `json:"str,omitempty"`
	Dex int `json:"dex,omitempty"`
	Int int `json:"int,omitempty"`
	Def int `json:"def,omitempty"`
}

// Add возвращает покомпонентную сумму.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		HP:  s.HP + o.HP,
		MP:  s.MP + o.MP,
		Str: s.Str + o.Str,
		Dex: s.Dex + o.Dex,
		Int: s.Int + o.Int,
		Def: s.Def + o.Def,
	}
}

// Sub возвращает покомпонентную разность.
func (s Stats) Sub(o Stats) Stats {
	return Stats{
		HP:  s.HP - o.HP,
		MP:  s.MP - o.MP,
		Str: s.Str - o.Str,
		Dex: s.Dex - o.Dex,
		Int: s.Int - o.Int,
		Def: s.Def - o.Def,
	}
}

// Scale умножает вектор на целое (прирост за n уровней).
func (s Stats) Scale(n int) Stats {
	return Stats{
		HP:  s.HP * n,
		MP:  s.MP * n,
		Str: s.Str * n,
		Dex: s.Dex * n,
		Int: s.Int * n,
		Def: s.Def * n,
	}
}

// Get читает характеристику по имени.
func (s Stats) Get(name enums.StatName) int {
	switch name {
	case enums.StatHP:
		return s.HP
	case enums.StatMP:
		return s.MP
	case enums.StatStr:
		return s.Str
	case enums.StatDex:
		return s.Dex
	case enums.StatInt:
		return s.Int
	case enums.StatDef:
		return s.Def
	}
	return 0
}

// AsStats переводит бонус в обычный вектор характеристик.
func (b StatBonus) AsStats() Stats {
	return Stats(b)
}

// Entries - ненулевые бонусы в фиксированном порядке (для вывода "STR: +5").
func (b StatBonus) Entries() []StatEntry {
	s := b.AsStats()
	var out []StatEntry
	for _, name := range statOrder {
		if v := s.Get(name); v != 0 {
			out = append(out, StatEntry{Stat: name, Value: v})
		}
	}
	return out
}

// StatEntry - пара "характеристика: значение".
type StatEntry struct {
	Stat  enums.StatName
	Value int
}

var statOrder = []enums.StatName{
	enums.StatHP, enums.StatMP, enums.StatStr, enums.StatDex, enums.StatInt, enums.StatDef,
}
