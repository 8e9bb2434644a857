package cmd

import (
	"context"
	"fmt"

	"github.com/vietdv277/vpcgap/pkg/provider"
	pkgtypes "github.com/vietdv277/vpcgap/pkg/types"
)

type fakeReader struct {
	vpcs     []pkgtypes.VPC
	subnets  map[string][]pkgtypes.Subnet
	zones    []pkgtypes.AvailabilityZone
	zonesErr error
	identity *pkgtypes.Identity
	region   string
}

func (f *fakeReader) GetVPC(_ context.Context, vpcID string) (*pkgtypes.VPC, error) {
	for _, v := range f.vpcs {
		if v.ID == vpcID {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("VPC %s: %w", vpcID, provider.ErrNotFound)
}

func (f *fakeReader) ListVPCs(context.Context) ([]pkgtypes.VPC, error) {
	return f.vpcs, nil
}

func (f *fakeReader) ListSubnets(_ context.Context, vpcID string) ([]pkgtypes.Subnet, error) {
	return f.subnets[vpcID], nil
}

func (f *fakeReader) ListAvailabilityZones(context.Context) ([]pkgtypes.AvailabilityZone, error) {
	return f.zones, f.zonesErr
}

func (f *fakeReader) CallerIdentity(context.Context) (*pkgtypes.Identity, error) {
	if f.identity == nil {
		return nil, provider.ErrNotConfigured
	}
	return f.identity, nil
}

func (f *fakeReader) Region() string {
	return f.region
}

// newFakeReader serves a default VPC with one /24 taken, a full VPC, a malformed one and a dual-stack one
func newFakeReader() *fakeReader {
	return &fakeReader{
		vpcs: []pkgtypes.VPC{
			{ID: "vpc-default", Name: "default", CIDR: "172.31.0.0/16", State: "available", IsDefault: true},
			{ID: "vpc-full", Name: "full", CIDR: "10.0.0.0/24", State: "available"},
			{ID: "vpc-broken", Name: "broken", CIDR: "not-a-cidr", State: "available"},
			{ID: "vpc-dualstack", Name: "dualstack", CIDR: "10.1.0.0/16", State: "available"},
		},
		subnets: map[string][]pkgtypes.Subnet{
			"vpc-default": {
				{ID: "subnet-a", VPCID: "vpc-default", CIDR: "172.31.0.0/24", AZ: "us-east-1a"},
			},
			"vpc-full": {
				{ID: "subnet-lo", VPCID: "vpc-full", CIDR: "10.0.0.0/25", AZ: "us-east-1a"},
				{ID: "subnet-hi", VPCID: "vpc-full", CIDR: "10.0.0.128/25", AZ: "us-east-1b"},
			},
			"vpc-dualstack": {
				{ID: "subnet-v4", VPCID: "vpc-dualstack", CIDR: "10.1.0.0/24", AZ: "us-east-1b"},
				{ID: "subnet-v6only", VPCID: "vpc-dualstack", AZ: "us-east-1c"},
			},
		},
		zones: []pkgtypes.AvailabilityZone{
			{Name: "us-east-1a", ID: "use1-az1", State: "available", Region: "us-east-1"},
			{Name: "us-east-1b", ID: "use1-az2", State: "available", Region: "us-east-1"},
			{Name: "us-east-1c", ID: "use1-az4", State: "available", Region: "us-east-1"},
		},
		identity: &pkgtypes.Identity{Account: "123456789012", Arn: "arn:aws:iam::123456789012:user/ops", UserID: "AIDAEXAMPLE"},
		region:   "us-east-1",
	}
}
