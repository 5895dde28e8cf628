package rating

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRank(t *testing.T) {
	tests := []struct {
		achievement float64
		want        int
	}{
		{101.0, 13},
		{100.6, 13},
		{100.5, 13},
		{100.4999, 12},
		{100.0, 12},
		{99.5, 11},
		{99.0, 11},
		{98.0, 10},
		{97.0, 9},
		{94.0, 9},
		{93.9, 8},
		{90.0, 8},
		{85.0, 7},
		{80.0, 7},
		{79.9, 6},
		{0, 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreRank(tt.achievement), "achievement %v", tt.achievement)
	}
}

func TestRating_SpecialCases(t *testing.T) {
	assert.Equal(t, 312, Rating(14.0, 100.4999))
	assert.Equal(t, 299, Rating(14.0, 99.9999))
	assert.Equal(t, 279, Rating(13.7, 98.9999))
}

func TestRating_RankTable(t *testing.T) {
	tests := []struct {
		name        string
		difficulty  float64
		achievement float64
		want        int
	}{
		{"sss+ 15.0", 15.0, 101.0, 337},
		{"sss+ 14.9", 14.9, 100.5, 335},
		{"sss 13.2", 13.2, 100.2, 285},
		{"ss+ 12.5", 12.5, 99.7, 262},
		{"below 80", 10.0, 79.0, 136},
		{"s 14.0", 14.0, 97.5, 278},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rating(tt.difficulty, tt.achievement))
		})
	}
}

func TestRating_CoefficientsAreIEEEProducts(t *testing.T) {
	// 94*0.168 в float64 не равно литералу 15.792
	assert.NotEqual(t, 15.792, rankCoefficients[7])
	assert.Equal(t, 10.88, rankCoefficients[5])
}

func TestRankName(t *testing.T) {
	assert.Equal(t, "SSS+", RankName(ScoreRank(100.5)))
	assert.Equal(t, "SS+", RankName(ScoreRank(99.6)))
	assert.Equal(t, "AA", RankName(ScoreRank(50)), "cascade floor")
	assert.Equal(t, "A", RankName(5))
	assert.Equal(t, "D", RankName(RankD))
	assert.Equal(t, "?", RankName(14))
	assert.Equal(t, "?", RankName(-1))
}

func TestAchievementPercent(t *testing.T) {
	assert.Equal(t, 101.0, AchievementPercent(1010000))
	assert.Equal(t, 100.5, AchievementPercent(1005000))
	assert.Equal(t, 0.0, AchievementPercent(0))
}

func TestPlaySpecial_KnownValues(t *testing.T) {
	assert.Equal(t, int32(-1473249280), PlaySpecial(1))
	assert.Equal(t, int32(98342332), PlaySpecial(500000))
	// 1037933*2069+1024 выходит за int32 и усекается
	assert.Equal(t, int32(-1891631103), PlaySpecial(1037933))
}

func TestPlaySpecial_ReReversal(t *testing.T) {
	for _, n := range []int64{1, 2, 777, 500000, 1037933} {
		token := PlaySpecial(n)
		truncated := int32(n*2069 + 1024)
		assert.Equal(t, truncated, int32(bits.Reverse32(uint32(token))), "n=%d", n)
	}
}

func TestNewPlaySpecial(t *testing.T) {
	token, err := NewPlaySpecial()
	require.NoError(t, err)

	// n*2069 < 2^32, поэтому усечение до int32 меняет только знак
	raw := bits.Reverse32(uint32(token)) - 1024
	require.Zero(t, raw%2069)
	n := int64(raw / 2069)
	assert.GreaterOrEqual(t, n, int64(playSpecialMin))
	assert.LessOrEqual(t, n, int64(playSpecialMax))
}
