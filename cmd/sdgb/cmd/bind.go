package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/iudanet/sdgb/internal/client/cli"
	"github.com/iudanet/sdgb/internal/validation"
)

var bindCmd = &cobra.Command{
	Use:   "bind",
	Short: "Bind --owner to --user-id",
	Long: `Store an encrypted binding from an owner name to a game user id. Later
commands accept --owner instead of --user-id.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if ownerFlag == "" || userIDFlag == "" {
			return errors.New("bind requires both --owner and --user-id")
		}
		userID, err := validation.ParseUserID(userIDFlag)
		if err != nil {
			return err
		}

		return runWithBinder(cmd.Context(), func(c *cli.Cli) error {
			return c.RunBind(cmd.Context(), ownerFlag, userID)
		})
	},
}

var unbindCmd = &cobra.Command{
	Use:   "unbind",
	Short: "Remove the binding of --owner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if ownerFlag == "" {
			return errors.New("unbind requires --owner")
		}

		return runWithBinder(cmd.Context(), func(c *cli.Cli) error {
			return c.RunUnbind(cmd.Context(), ownerFlag)
		})
	},
}

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "List bound owners",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWithBinder(cmd.Context(), func(c *cli.Cli) error {
			return c.RunBindings(cmd.Context())
		})
	},
}

func init() {
	rootCmd.AddCommand(bindCmd, unbindCmd, bindingsCmd)
}
