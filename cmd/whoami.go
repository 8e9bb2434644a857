package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcgap/internal/ui"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the AWS identity in use",
	Long:  `Show the account, user and ARN behind the loaded AWS credentials.`,
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx, cancel := withTimeout()
	defer cancel()

	r, err := newReader(ctx, settings)
	if err != nil {
		return err
	}

	id, err := r.CallerIdentity(ctx)
	if err != nil {
		return fmt.Errorf("failed to get caller identity: %w", err)
	}

	return ui.RenderIdentity(cmd.OutOrStdout(), settings.Output, id, settings.Profile, r.Region())
}
