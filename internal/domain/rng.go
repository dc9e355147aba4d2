package domain

// RNG - источник случайности для боя и генерации врагов.
// *math/rand.Rand подходит без обёрток; в тестах подставляется скриптованный генератор.
type RNG interface {
	// Float64 возвращает число в [0.0, 1.0).
	Float64() float64
	// Intn возвращает число в [0, n).
	Intn(n int) int
}
