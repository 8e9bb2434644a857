package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcgap/internal/planner"
	"github.com/vietdv277/vpcgap/internal/ui"
	"github.com/vietdv277/vpcgap/pkg/cidr"
)

var checkCmd = &cobra.Command{
	Use:   "check <vpc-id> <cidr>",
	Short: "Check whether a CIDR block is free in a VPC",
	Long: `Check whether a CIDR block lies inside a VPC and overlaps no existing
subnet. Conflicting subnets are listed.

Examples:
  vpcgap check vpc-0abc1234 10.0.8.0/22
  vpcgap check vpc-0abc1234 10.0.8.0/22 -o json`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	block, err := cidr.Parse(args[1])
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout()
	defer cancel()

	r, err := newReader(ctx, settings)
	if err != nil {
		return err
	}

	return check(ctx, cmd.OutOrStdout(), r, args[0], block, settings.Output)
}

func check(ctx context.Context, w io.Writer, r reader, vpcID string, block cidr.Block, output string) error {
	state, err := loadVPC(ctx, r, vpcID)
	if err != nil {
		return err
	}

	occ := planner.NewOccupancy(state.subnets)
	conflicts := occ.Conflicts(block)

	view := ui.CheckView{
		VPC:   state.view(),
		Block: ui.NewBlockView(block, ""),
		InVPC: cidr.Contains(state.block, block),
	}
	view.Free = view.InVPC && len(conflicts) == 0
	for _, s := range conflicts {
		view.Conflicts = append(view.Conflicts, ui.NewSubnetView(s))
	}
	if owner, ok := occ.Owner(block.First()); ok {
		sv := ui.NewSubnetView(owner)
		view.NetworkOwner = &sv
	}

	return ui.RenderCheck(w, output, view)
}
