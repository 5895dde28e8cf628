package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/sdgb/internal/client/cli"
	"github.com/iudanet/sdgb/internal/client/iocli"
	"github.com/iudanet/sdgb/internal/delivery"
)

var titleVer string

var updatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "List game updates from the delivery server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ver := titleVer
		if ver == "" {
			ver = cfg.Delivery.TitleVersion
		}

		source := delivery.NewClient(cfg.DeliveryClient(), nil)
		return cli.New(iocli.NewStdio(), cli.WithUpdates(source)).RunUpdates(cmd.Context(), ver)
	},
}

func init() {
	updatesCmd.Flags().StringVar(&titleVer, "title-ver", "", "title version (default delivery.title_version)")
	rootCmd.AddCommand(updatesCmd)
}
