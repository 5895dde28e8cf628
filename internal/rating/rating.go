// Package rating содержит чистые функции расчета ранга и рейтинга по
// проценту выполнения, а также генератор анти-чит токена PlaySpecial.
package rating

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// Ранги результата
const (
	RankD    = 0
	RankSSSp = 13 // SSS+
	MinRank  = 6  // нижняя граница каскада порогов
)

// Пороги каскада в порядке проверки; каждый непройденный порог снимает один ранг.
var rankThresholds = [...]float64{100.5, 100, 99, 98, 94, 90, 80}

// coef перемножает множители во время выполнения, чтобы результат совпадал
// с IEEE-произведением, а не с точной константной арифметикой компилятора.
func coef(achievement, factor float64) float64 {
	return achievement * factor
}

var rankCoefficients = [14]float64{
	0, 0, 0, 0, 0,
	coef(80, 0.136),
	coef(90, 0.152),
	coef(94, 0.168),
	coef(97, 0.2),
	coef(98, 0.203),
	coef(99, 0.208),
	coef(99.5, 0.211),
	coef(100, 0.216),
	coef(100.5, 0.224),
}

// Точные значения процента, для которых используется отдельный коэффициент.
var specialCoefficients = map[float64]float64{
	100.4999: coef(100.4999, 0.222),
	99.9999:  coef(99.9999, 0.214),
	98.9999:  coef(98.9999, 0.206),
}

// ScoreRank возвращает ранг 6..13 для процента выполнения.
func ScoreRank(achievement float64) int {
	rank := RankSSSp
	for _, threshold := range rankThresholds {
		if achievement < threshold {
			rank--
		}
	}
	return rank
}

var rankNames = [14]string{
	"D", "C", "B", "BB", "BBB", "A", "AA", "AAA",
	"S", "S+", "SS", "SS+", "SSS", "SSS+",
}

// RankName возвращает отображаемое имя ранга
func RankName(rank int) string {
	if rank < RankD || rank > RankSSSp {
		return "?"
	}
	return rankNames[rank]
}

// Rating возвращает рейтинг чарта по его константе сложности и проценту выполнения.
func Rating(difficulty, achievement float64) int {
	if c, ok := specialCoefficients[achievement]; ok {
		return int(math.Floor(difficulty * c))
	}
	return int(math.Floor(difficulty * rankCoefficients[ScoreRank(achievement)]))
}

// AchievementPercent переводит целочисленный процент (1010000) в проценты (101.0).
func AchievementPercent(raw int) float64 {
	return float64(raw) / 10000
}

// Диапазон случайного аргумента PlaySpecial
const (
	playSpecialMin = 1
	playSpecialMax = 1037933
)

// PlaySpecial вычисляет токен для аргумента n: int32(n*2069+1024) с
// развернутым порядком всех 32 бит.
func PlaySpecial(n int64) int32 {
	seed := uint32(int32(n*2069 + 1024))
	return int32(bits.Reverse32(seed))
}

// NewPlaySpecial выбирает n в [1, 1037933] через crypto/rand и возвращает PlaySpecial(n).
func NewPlaySpecial() (int32, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(playSpecialMax-playSpecialMin+1))
	if err != nil {
		return 0, fmt.Errorf("failed to draw play special seed: %w", err)
	}
	return PlaySpecial(n.Int64() + playSpecialMin), nil
}
