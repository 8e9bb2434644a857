package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcgap/internal/planner"
	"github.com/vietdv277/vpcgap/internal/ui"
	"github.com/vietdv277/vpcgap/pkg/cidr"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps [vpc-id]",
	Short: "Show unallocated address ranges of a VPC",
	Long: `Show every free address range of a VPC together with the largest
aligned block that fits inside it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGaps,
}

func init() {
	rootCmd.AddCommand(gapsCmd)
}

func runGaps(cmd *cobra.Command, args []string) error {
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

	return gaps(ctx, cmd.OutOrStdout(), r, vpcID, settings.Output)
}

func gaps(ctx context.Context, w io.Writer, r reader, vpcID, output string) error {
	state, err := loadVPC(ctx, r, vpcID)
	if err != nil {
		return err
	}

	blocks := make([]cidr.Block, len(state.subnets))
	for i, s := range state.subnets {
		blocks[i] = s.Block
	}

	res := &planner.Result{
		VPC:       state.block,
		Allocated: planner.SortSubnets(state.subnets),
		Free:      planner.Gaps(state.block, blocks),
	}
	return ui.RenderGaps(w, output, ui.NewGapsView(state.view(), res))
}
