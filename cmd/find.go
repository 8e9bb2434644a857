package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcgap/internal/config"
	"github.com/vietdv277/vpcgap/internal/logging"
	"github.com/vietdv277/vpcgap/internal/planner"
	"github.com/vietdv277/vpcgap/internal/ui"
)

var (
	findZones     []string
	findAfterLast bool
)

var findCmd = &cobra.Command{
	Use:   "find [vpc-id] <prefix>",
	Short: "Find free subnet blocks of a given size",
	Long: `Find the lowest free blocks of the requested prefix length inside a VPC.

Candidates are aligned to their own size, never overlap an existing subnet,
and are assigned availability zones round-robin.

Examples:
  vpcgap find vpc-0abc1234 27
  vpcgap find vpc-0abc1234 /24 --count 0
  vpcgap find vpc-0abc1234 26 --az us-east-1a,us-east-1b
  vpcgap find vpc-0abc1234 28 --after-last
  vpcgap find 27                               # pick the VPC interactively`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFind,
}

// findOptions is one resolved find invocation
type findOptions struct {
	vpcID     string
	prefix    int
	count     int
	zones     []string
	azSource  string
	afterLast bool
	output    string
}

func init() {
	rootCmd.AddCommand(findCmd)

	flags := findCmd.Flags()
	flags.IntP("count", "c", config.Defaults().Count, "number of candidates to show (0 for all)")
	flags.String("az-source", config.AZFromSubnets, "where zones come from: subnets, region or none")
	flags.StringSliceVar(&findZones, "az", nil, "availability zones to assign, in order")
	flags.BoolVar(&findAfterLast, "after-last", false, "only consider space after the highest existing subnet")

	_ = viperCfg.BindPFlag(config.KeyCount, flags.Lookup("count"))
	_ = viperCfg.BindPFlag(config.KeyAZSource, flags.Lookup("az-source"))
}

func runFind(cmd *cobra.Command, args []string) error {
	prefix, err := parsePrefix(args[len(args)-1])
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout()
	defer cancel()

	r, err := newReader(ctx, settings)
	if err != nil {
		return err
	}

	vpcID, err := resolveVPCID(ctx, r, args[:len(args)-1])
	if err != nil {
		return err
	}

	return find(ctx, cmd.OutOrStdout(), r, findOptions{
		vpcID:     vpcID,
		prefix:    prefix,
		count:     settings.Count,
		zones:     findZones,
		azSource:  settings.AZSource,
		afterLast: findAfterLast,
		output:    settings.Output,
	})
}

func find(ctx context.Context, w io.Writer, r reader, opts findOptions) error {
	state, err := loadVPC(ctx, r, opts.vpcID)
	if err != nil {
		return err
	}

	zones := resolveZones(ctx, r, state.subnets, opts.zones, opts.azSource)
	logging.Debug("planning", "vpc", state.vpc.ID, "prefix", opts.prefix, "zones", zones, "limit", opts.count)

	res, err := planner.Plan(planner.Request{
		VPC:       state.block,
		Allocated: state.subnets,
		Prefix:    opts.prefix,
		Zones:     zones,
		Limit:     opts.count,
		AfterLast: opts.afterLast,
	})
	if err != nil {
		return fmt.Errorf("VPC %s: %w", state.vpc.ID, err)
	}

	return ui.RenderPlan(w, opts.output, ui.NewPlanView(state.view(), opts.prefix, res))
}
