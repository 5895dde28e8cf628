package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iudanet/sdgb/internal/client/cli"
	"github.com/iudanet/sdgb/internal/client/iocli"
)

var ratingCmd = &cobra.Command{
	Use:   "rating <difficulty> [achievement]",
	Short: "Calculate chart rating",
	Long: `Calculate rank and rating of a chart. Without achievement prints the
rating for every rank threshold.`,
	Example: `  sdgb rating 14.7 100.5
  sdgb rating 13.2`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		difficulty, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("difficulty must be a number: %q", args[0])
		}

		var achievement string
		if len(args) == 2 {
			achievement = args[1]
		}
		return cli.New(iocli.NewStdio()).RunRating(difficulty, achievement)
	},
}

func init() {
	rootCmd.AddCommand(ratingCmd)
}
