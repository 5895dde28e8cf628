package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/sdgb/internal/client/userall"
	"github.com/iudanet/sdgb/internal/rating"
	"github.com/iudanet/sdgb/internal/validation"
	"github.com/iudanet/sdgb/pkg/api"
)

// UploadOptions описывает загружаемый результат
type UploadOptions struct {
	Score api.ChartScore
	// Replace перезаписывает сохраненный результат чарта вместо слияния
	Replace bool
}

// RunUpload загружает результат одного чарта
func (c *Cli) RunUpload(ctx context.Context, opts UploadOptions) error {
	if err := validation.ValidateChartScore(opts.Score); err != nil {
		return fmt.Errorf("invalid score: %w", err)
	}

	score := opts.Score
	percent := rating.AchievementPercent(score.Achievement)
	if score.ScoreRank == 0 {
		score.ScoreRank = rating.ScoreRank(percent)
	}

	c.io.Println("=== Upload Score ===")
	c.io.Printf("Music %d, level %d: %.4f%% (%s)\n", score.MusicID, score.Level, percent, rating.RankName(score.ScoreRank))

	err := c.withDocument(ctx, func(doc *userall.Document) {
		doc.Music(score).Replace(opts.Replace)
	})
	if err != nil {
		return err
	}

	c.io.Println("✓ Score uploaded")
	return nil
}

// RunUnlock выдает предметы ids каждого из типов kinds
func (c *Cli) RunUnlock(ctx context.Context, ids []int, kinds []api.ItemKind) error {
	if len(ids) == 0 || len(kinds) == 0 {
		return fmt.Errorf("nothing to unlock: ids and kinds are required")
	}

	c.io.Println("=== Unlock Items ===")
	for _, kind := range kinds {
		c.io.Printf("%s: %v\n", kind, ids)
	}

	if err := c.withDocument(ctx, func(doc *userall.Document) {
		doc.Unlock(ids, kinds)
	}); err != nil {
		return err
	}

	c.io.Printf("✓ %d item(s) unlocked\n", len(ids)*len(kinds))
	return nil
}

// RunPartner выдает партнеров
func (c *Cli) RunPartner(ctx context.Context, ids []int) error {
	return c.RunUnlock(ctx, ids, []api.ItemKind{api.ItemPartner})
}
