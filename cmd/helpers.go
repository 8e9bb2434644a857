package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/vietdv277/vpcgap/internal/aws"
	"github.com/vietdv277/vpcgap/internal/config"
	"github.com/vietdv277/vpcgap/internal/logging"
	"github.com/vietdv277/vpcgap/internal/planner"
	"github.com/vietdv277/vpcgap/internal/ui"
	"github.com/vietdv277/vpcgap/pkg/cidr"
	"github.com/vietdv277/vpcgap/pkg/provider"
	pkgtypes "github.com/vietdv277/vpcgap/pkg/types"
)

// AWS accepts subnet prefix lengths from /16 to /28.
const (
	minSubnetPrefix = 16
	maxSubnetPrefix = 28
)

// reader is everything the commands need from a cloud provider
type reader interface {
	provider.VPCReader
	provider.IdentityReader
	Region() string
}

// newReader builds the provider client. Tests replace it with a fake.
var newReader = func(ctx context.Context, s *config.Settings) (reader, error) {
	client, err := aws.NewClient(ctx,
		aws.WithProfile(s.Profile),
		aws.WithRegion(s.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}
	return client, nil
}

// pickVPC shows the interactive selector
var pickVPC = ui.SelectVPC

// interactive reports whether the picker can run
var interactive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// vpcState is the address space of one VPC as fetched from the provider
type vpcState struct {
	vpc     pkgtypes.VPC
	block   cidr.Block
	subnets []planner.Subnet
	region  string
}

func (s *vpcState) view() ui.VPCView {
	return ui.NewVPCView(s.vpc, s.region)
}

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), settings.Timeout)
}

// loadVPC fetches a VPC and its subnets and parses their CIDRs
func loadVPC(ctx context.Context, r reader, vpcID string) (*vpcState, error) {
	vpc, err := r.GetVPC(ctx, vpcID)
	if err != nil {
		return nil, fmt.Errorf("failed to describe VPC %s: %w", vpcID, err)
	}

	block, err := cidr.Parse(vpc.CIDR)
	if err != nil {
		return nil, fmt.Errorf("VPC %s: %w", vpc.ID, err)
	}

	records, err := r.ListSubnets(ctx, vpc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subnets: %w", err)
	}

	ipv4 := make([]pkgtypes.Subnet, 0, len(records))
	for _, rec := range records {
		if rec.CIDR == "" {
			logging.Debug("skipping subnet without an IPv4 CIDR", "subnet", rec.ID)
			continue
		}
		ipv4 = append(ipv4, rec)
	}

	subnets, err := planner.ParseSubnets(ipv4)
	if err != nil {
		return nil, err
	}

	logging.Debug("loaded VPC", "vpc", vpc.ID, "cidr", block.String(), "subnets", len(subnets))

	return &vpcState{
		vpc:     *vpc,
		block:   block,
		subnets: subnets,
		region:  r.Region(),
	}, nil
}

// resolveVPCID returns args[0] or asks the user to pick a VPC
func resolveVPCID(ctx context.Context, r reader, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if !interactive() {
		return "", fmt.Errorf("a VPC ID is required when not running in a terminal")
	}

	vpcs, err := r.ListVPCs(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list VPCs: %w", err)
	}

	selected, err := pickVPC(vpcs)
	if err != nil {
		return "", err
	}
	return selected.ID, nil
}

// parsePrefix accepts "27" or "/27" within the range AWS allows for subnets
func parsePrefix(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "/"))
	if err != nil {
		return 0, fmt.Errorf("invalid subnet prefix %q: must be a number", s)
	}
	if n < minSubnetPrefix || n > maxSubnetPrefix {
		return 0, &planner.InvalidPrefixError{
			Prefix: n,
			Reason: fmt.Sprintf("AWS subnets must be between /%d and /%d", minSubnetPrefix, maxSubnetPrefix),
		}
	}
	return n, nil
}

// resolveZones decides which availability zones candidates are spread over
func resolveZones(ctx context.Context, r reader, subnets []planner.Subnet, explicit []string, source string) []string {
	if len(explicit) > 0 {
		return explicit
	}

	switch source {
	case config.AZNone:
		return nil
	case config.AZFromSubnets:
		if zones := planner.ZonesOf(subnets); len(zones) > 0 {
			return zones
		}
		logging.Debug("no zones in existing subnets, falling back to region zones")
	}

	azs, err := r.ListAvailabilityZones(ctx)
	if err != nil {
		logging.UserWarning("Could not list availability zones: %v", err)
		return nil
	}

	zones := make([]string, 0, len(azs))
	for _, az := range azs {
		zones = append(zones, az.Name)
	}
	return zones
}
