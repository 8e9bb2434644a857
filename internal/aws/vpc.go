package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/vietdv277/vpcgap/internal/logging"
	"github.com/vietdv277/vpcgap/pkg/provider"
	pkgtypes "github.com/vietdv277/vpcgap/pkg/types"
)

var _ provider.VPCReader = (*Client)(nil)

// ListVPCs returns all VPCs
func (c *Client) ListVPCs(ctx context.Context) ([]pkgtypes.VPC, error) {
	var vpcs []pkgtypes.VPC

	paginator := ec2.NewDescribeVpcsPaginator(c.ec2, &ec2.DescribeVpcsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, classify(err)
		}
		for _, v := range output.Vpcs {
			vpcs = append(vpcs, toVPC(v))
		}
	}

	logging.Debug("described VPCs", "count", len(vpcs))
	return vpcs, nil
}

// GetVPC returns a specific VPC, or provider.ErrNotFound
func (c *Client) GetVPC(ctx context.Context, vpcID string) (*pkgtypes.VPC, error) {
	output, err := c.ec2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		VpcIds: []string{vpcID},
	})
	if err != nil {
		return nil, classify(err)
	}

	if len(output.Vpcs) == 0 {
		return nil, fmt.Errorf("VPC %s: %w", vpcID, provider.ErrNotFound)
	}

	vpc := toVPC(output.Vpcs[0])
	logging.Debug("described VPC", "vpc", vpc.ID, "cidr", vpc.CIDR)
	return &vpc, nil
}

// ListSubnets returns all subnets of a VPC, following pagination
func (c *Client) ListSubnets(ctx context.Context, vpcID string) ([]pkgtypes.Subnet, error) {
	input := &ec2.DescribeSubnetsInput{}

	if vpcID != "" {
		input.Filters = []ec2types.Filter{
			{
				Name:   aws.String("vpc-id"),
				Values: []string{vpcID},
			},
		}
	}

	var subnets []pkgtypes.Subnet

	paginator := ec2.NewDescribeSubnetsPaginator(c.ec2, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, classify(err)
		}
		for _, s := range output.Subnets {
			subnets = append(subnets, toSubnet(s))
		}
	}

	logging.Debug("described subnets", "vpc", vpcID, "count", len(subnets))
	return subnets, nil
}

// ListAvailabilityZones returns the available zones of the client's region
func (c *Client) ListAvailabilityZones(ctx context.Context) ([]pkgtypes.AvailabilityZone, error) {
	output, err := c.ec2.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("state"),
				Values: []string{"available"},
			},
		},
	})
	if err != nil {
		return nil, classify(err)
	}

	var zones []pkgtypes.AvailabilityZone
	for _, z := range output.AvailabilityZones {
		zones = append(zones, pkgtypes.AvailabilityZone{
			Name:   deref(z.ZoneName),
			ID:     deref(z.ZoneId),
			State:  string(z.State),
			Region: deref(z.RegionName),
		})
	}

	logging.Debug("described availability zones", "count", len(zones))
	return zones, nil
}

// toVPC converts an EC2 VPC to our VPC type
func toVPC(v ec2types.Vpc) pkgtypes.VPC {
	return pkgtypes.VPC{
		ID:        deref(v.VpcId),
		Name:      nameTag(v.Tags),
		CIDR:      deref(v.CidrBlock),
		State:     string(v.State),
		IsDefault: derefBool(v.IsDefault),
		OwnerID:   deref(v.OwnerId),
	}
}

// toSubnet converts an EC2 Subnet to our Subnet type
func toSubnet(s ec2types.Subnet) pkgtypes.Subnet {
	return pkgtypes.Subnet{
		ID:           deref(s.SubnetId),
		Name:         nameTag(s.Tags),
		VPCID:        deref(s.VpcId),
		CIDR:         deref(s.CidrBlock),
		AZ:           deref(s.AvailabilityZone),
		AZID:         deref(s.AvailabilityZoneId),
		AvailableIPs: int(derefInt32(s.AvailableIpAddressCount)),
		State:        string(s.State),
		Public:       derefBool(s.MapPublicIpOnLaunch),
	}
}

// nameTag extracts the Name tag
func nameTag(tags []ec2types.Tag) string {
	for _, tag := range tags {
		if deref(tag.Key) == "Name" {
			return deref(tag.Value)
		}
	}
	return ""
}

// deref safely dereferences a string pointer
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// derefBool safely dereferences a bool pointer
func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// derefInt32 safely dereferences an int32 pointer
func derefInt32(i *int32) int32 {
	if i == nil {
		return 0
	}
	return *i
}
