package enums

import "strings"

// EnemyKind - архетип врага. Набор закрыт: шаблоны для каждого лежат в pkg/dungeon.
type EnemyKind uint8

const (
	EnemyUnknown EnemyKind = iota
	EnemySlime
	EnemyGoblin
	EnemySkeleton
	EnemyOrc
	EnemyDarkMage
	EnemyDragon
)

// AllEnemyKinds - все архетипы в порядке роста сложности.
var AllEnemyKinds = []EnemyKind{
	EnemySlime, EnemyGoblin, EnemySkeleton, EnemyOrc, EnemyDarkMage, EnemyDragon,
}

var enemyKindToString = map[EnemyKind]string{
	EnemySlime:    "Slime",
	EnemyGoblin:   "Goblin",
	EnemySkeleton: "Skeleton",
	EnemyOrc:      "Orc",
	EnemyDarkMage: "DarkMage",
	EnemyDragon:   "Dragon",
}

var enemyKindStringToType = map[string]EnemyKind{
	"SLIME":    EnemySlime,
	"GOBLIN":   EnemyGoblin,
	"SKELETON": EnemySkeleton,
	"ORC":      EnemyOrc,
	"DARKMAGE": EnemyDarkMage,
	"DRAGON":   EnemyDragon,
}

// String возвращает строковое представление (для логов и дебага)
func (e EnemyKind) String() string {
	if val, ok := enemyKindToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEnemyKind конвертирует строку в Enum
func ParseEnemyKind(s string) EnemyKind {
	upper := strings.ToUpper(s)
	if val, ok := enemyKindStringToType[upper]; ok {
		return val
	}
	return EnemyUnknown
}

// CreatureTag - тип существа, влияет на множитель статов.
type CreatureTag uint8

const (
	TagNormal CreatureTag = iota
	TagUndead
	TagBrute
	TagMagic
	TagBoss
)

var creatureTagToString = map[CreatureTag]string{
	TagNormal: "normal",
	TagUndead: "undead",
	TagBrute:  "brute",
	TagMagic:  "magic",
	TagBoss:   "boss",
}

func (t CreatureTag) String() string {
	if val, ok := creatureTagToString[t]; ok {
		return val
	}
	return "unknown"
}

func (t CreatureTag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
