package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/vpcgap/internal/config"
	"github.com/vietdv277/vpcgap/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool
	logJSON    bool

	// settings is resolved before any subcommand runs
	settings *config.Settings

	viperCfg = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "vpcgap",
	Short: "Find free CIDR blocks inside an AWS VPC",
	Long: `vpcgap reads a VPC and its subnets and proposes unused, non-overlapping
CIDR blocks of the size you ask for, spread across availability zones.
It never modifies AWS resources.

Examples:
  vpcgap find vpc-0abc1234 27          # Next three free /27 blocks
  vpcgap find vpc-0abc1234 24 -c 0     # Every free /24 block
  vpcgap find 26                       # Pick the VPC interactively
  vpcgap gaps vpc-0abc1234             # Show unallocated address ranges
  vpcgap check vpc-0abc1234 10.0.8.0/22`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, logJSON, os.Stderr)

		s, err := config.Load(viperCfg, configPath)
		if err != nil {
			return err
		}
		settings = s

		logging.Debug("resolved settings",
			"profile", s.Profile, "region", s.Region, "output", s.Output,
			"count", s.Count, "az_source", s.AZSource, "timeout", s.Timeout)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", config.GetConfigPath(), "config file")
	flags.StringP("profile", "p", "", "AWS profile to use")
	flags.StringP("region", "r", "", "AWS region to use")
	flags.StringP("output", "o", config.OutputTable, "output format: table, json or yaml")
	flags.Duration("timeout", config.Defaults().Timeout, "timeout for AWS API calls")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&logJSON, "log-json", false, "write logs as JSON")

	// Bind flags to viper
	_ = viperCfg.BindPFlag(config.KeyProfile, flags.Lookup("profile"))
	_ = viperCfg.BindPFlag(config.KeyRegion, flags.Lookup("region"))
	_ = viperCfg.BindPFlag(config.KeyOutput, flags.Lookup("output"))
	_ = viperCfg.BindPFlag(config.KeyTimeout, flags.Lookup("timeout"))

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
