package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcgap/internal/config"
	"github.com/vietdv277/vpcgap/internal/logging"
	"github.com/vietdv277/vpcgap/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change persisted defaults",
	Long: `Inspect and change the defaults stored in the vpcgap config file.

Keys: profile, region, output, count, az_source, timeout

Examples:
  vpcgap config view
  vpcgap config set region eu-west-1
  vpcgap config set count 5`,
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the resolved settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigView,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a default",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigView(cmd *cobra.Command, args []string) error {
	format := settings.Output
	if format == config.OutputTable {
		format = config.OutputYAML
	}
	return ui.Encode(cmd.OutOrStdout(), format, settings)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	s, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	if err := s.Set(args[0], args[1]); err != nil {
		return err
	}

	if err := config.SaveFile(configPath, s); err != nil {
		return err
	}

	logging.UserSuccess("Set %s = %s in %s", args[0], args[1], configPath)
	return nil
}
