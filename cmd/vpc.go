package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcgap/internal/config"
	"github.com/vietdv277/vpcgap/internal/logging"
	"github.com/vietdv277/vpcgap/internal/ui"
)

var vpcCmd = &cobra.Command{
	Use:   "vpc",
	Short: "List VPCs and their subnets",
	Long:  `Inspect the VPCs and subnets that vpcgap plans against.`,
}

var vpcLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all VPCs",
	Long: `List all VPCs with their CIDR, state, name, and default flag.

Examples:
  vpcgap vpc ls              # List all VPCs
  vpcgap vpc ls -p prod      # List VPCs using production profile`,
	Args: cobra.NoArgs,
	RunE: runVPCList,
}

var vpcSubnetsCmd = &cobra.Command{
	Use:   "subnets [vpc-id]",
	Short: "List subnets in a VPC",
	Long: `List all subnets in a VPC with their CIDR, AZ, and availability.
If no VPC ID is provided, an interactive selector will be shown.

Examples:
  vpcgap vpc subnets                   # Interactive VPC selector
  vpcgap vpc subnets vpc-12345678      # List subnets in specific VPC`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVPCSubnets,
}

func init() {
	rootCmd.AddCommand(vpcCmd)

	vpcCmd.AddCommand(vpcLsCmd)
	vpcCmd.AddCommand(vpcSubnetsCmd)
}

func runVPCList(cmd *cobra.Command, args []string) error {
	ctx, cancel := withTimeout()
	defer cancel()

	r, err := newReader(ctx, settings)
	if err != nil {
		return err
	}

	vpcs, err := r.ListVPCs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list VPCs: %w", err)
	}

	if len(vpcs) == 0 && settings.Output == config.OutputTable {
		logging.UserInfo("No VPCs found")
		return nil
	}

	return ui.RenderVPCs(cmd.OutOrStdout(), settings.Output, vpcs)
}

func runVPCSubnets(cmd *cobra.Command, args []string) error {
	ctx, cancel := withTimeout()
	defer cancel()

	r, err := newReader(ctx, settings)
	if err != nil {
		return err
	}

	vpcID, err := resolveVPCID(ctx, r, args)
	if err != nil {
		return err
	}

	subnets, err := r.ListSubnets(ctx, vpcID)
	if err != nil {
		return fmt.Errorf("failed to list subnets: %w", err)
	}

	if len(subnets) == 0 && settings.Output == config.OutputTable {
		logging.UserInfo("No subnets found in this VPC")
		return nil
	}

	return ui.RenderSubnets(cmd.OutOrStdout(), settings.Output, subnets)
}
