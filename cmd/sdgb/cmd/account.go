package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/sdgb/internal/client/cli"
	"github.com/iudanet/sdgb/internal/validation"
	"github.com/iudanet/sdgb/pkg/api"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the account preview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWithAccount(cmd.Context(), func(c *cli.Cli) error {
			return c.RunPreview(cmd.Context())
		})
	},
}

var logoutTimestamp int64

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Force logout of a stuck session",
	Long: `Force logout using the login timestamp from --timestamp or, if it is not
given, the timestamp saved by the last login.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWithAccount(cmd.Context(), func(c *cli.Cli) error {
			return c.RunLogout(cmd.Context(), logoutTimestamp)
		})
	},
}

var uploadFlags struct {
	musicID     int
	level       int
	achievement string
	combo       int
	sync        int
	dx          int
	replace     bool
}

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a chart score",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		achievement, err := validation.ParseAchievement(uploadFlags.achievement)
		if err != nil {
			return err
		}

		opts := cli.UploadOptions{
			Score: api.ChartScore{
				MusicID:       uploadFlags.musicID,
				Level:         uploadFlags.level,
				PlayCount:     1,
				Achievement:   achievement,
				ComboStatus:   uploadFlags.combo,
				SyncStatus:    uploadFlags.sync,
				DeluxscoreMax: uploadFlags.dx,
			},
			Replace: uploadFlags.replace,
		}

		return runWithAccount(cmd.Context(), func(c *cli.Cli) error {
			return c.RunUpload(cmd.Context(), opts)
		})
	},
}

var unlockFlags struct {
	ids   string
	kinds []string
}

var unlockCmd = &cobra.Command{
	Use:     "unlock",
	Short:   "Unlock items of the given kinds",
	Example: `  sdgb unlock -u 10000001 --ids 11,12 --kinds plate,frame`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ids, err := validation.ParseIDList(unlockFlags.ids)
		if err != nil {
			return err
		}
		kinds, err := validation.ParseItemKinds(unlockFlags.kinds)
		if err != nil {
			return err
		}

		return runWithAccount(cmd.Context(), func(c *cli.Cli) error {
			return c.RunUnlock(cmd.Context(), ids, kinds)
		})
	},
}

var partnerIDs string

var partnerCmd = &cobra.Command{
	Use:   "partner",
	Short: "Unlock partners",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ids, err := validation.ParseIDList(partnerIDs)
		if err != nil {
			return err
		}

		return runWithAccount(cmd.Context(), func(c *cli.Cli) error {
			return c.RunPartner(cmd.Context(), ids)
		})
	},
}

var ticketFlags struct {
	chargeID int
	price    int
}

var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Issue a ticket valid for 90 days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if ticketFlags.chargeID <= 0 || ticketFlags.price < 0 {
			return fmt.Errorf("invalid ticket: charge id %d, price %d", ticketFlags.chargeID, ticketFlags.price)
		}

		return runWithAccount(cmd.Context(), func(c *cli.Cli) error {
			return c.RunTicket(cmd.Context(), ticketFlags.chargeID, ticketFlags.price)
		})
	},
}

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "List active tickets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWithAccount(cmd.Context(), func(c *cli.Cli) error {
			return c.RunTickets(cmd.Context())
		})
	},
}

func init() {
	logoutCmd.Flags().Int64Var(&logoutTimestamp, "timestamp", 0, "login timestamp (unix seconds)")

	f := uploadCmd.Flags()
	f.IntVar(&uploadFlags.musicID, "music-id", 0, "music id")
	f.IntVar(&uploadFlags.level, "level", 3, "chart level: 0 basic .. 4 re:master")
	f.StringVar(&uploadFlags.achievement, "achievement", "100.5", "achievement in percent")
	f.IntVar(&uploadFlags.combo, "combo", 0, "combo status: 0 none .. 4 AP+")
	f.IntVar(&uploadFlags.sync, "sync", 0, "sync status: 0 none .. 5 FDX+")
	f.IntVar(&uploadFlags.dx, "dx", 0, "deluxe score")
	f.BoolVar(&uploadFlags.replace, "replace", false, "overwrite the stored chart score")
	_ = uploadCmd.MarkFlagRequired("music-id")

	unlockCmd.Flags().StringVar(&unlockFlags.ids, "ids", "", "comma separated item ids")
	unlockCmd.Flags().StringSliceVar(&unlockFlags.kinds, "kinds", nil, "item kinds (plate, title, icon, music, frame, ...)")
	_ = unlockCmd.MarkFlagRequired("ids")
	_ = unlockCmd.MarkFlagRequired("kinds")

	partnerCmd.Flags().StringVar(&partnerIDs, "ids", "", "comma separated partner ids")
	_ = partnerCmd.MarkFlagRequired("ids")

	ticketCmd.Flags().IntVar(&ticketFlags.chargeID, "charge-id", 6, "charge id")
	ticketCmd.Flags().IntVar(&ticketFlags.price, "price", 4, "ticket price")

	rootCmd.AddCommand(previewCmd, logoutCmd, uploadCmd, unlockCmd, partnerCmd, ticketCmd, ticketsCmd)
}
