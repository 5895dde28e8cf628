package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/iudanet/sdgb/internal/rating"
	"github.com/iudanet/sdgb/internal/validation"
)

// ratingSteps - проценты, для которых выводится таблица рейтинга
var ratingSteps = []float64{80, 90, 94, 97, 98, 98.9999, 99, 99.5, 99.9999, 100, 100.4999, 100.5}

// RunRating выводит ранг и рейтинг чарта. Пустой achievement выводит таблицу
// рейтинга по порогам.
func (c *Cli) RunRating(difficulty float64, achievement string) error {
	if difficulty <= 0 || difficulty > 15 {
		return fmt.Errorf("difficulty must be between 0 and 15, got %v", difficulty)
	}

	if achievement != "" {
		raw, err := validation.ParseAchievement(achievement)
		if err != nil {
			return err
		}
		percent := rating.AchievementPercent(raw)
		rank := rating.ScoreRank(percent)
		c.io.Printf("%.1f @ %.4f%%: %s, rating %d\n", difficulty, percent, rating.RankName(rank), rating.Rating(difficulty, percent))
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "ACHIEVEMENT\tRANK\tRATING\t\n")
	for _, step := range ratingSteps {
		fmt.Fprintf(w, "%.4f\t%s\t%d\t\n", step, rating.RankName(rating.ScoreRank(step)), rating.Rating(difficulty, step))
	}
	return w.Flush()
}
