package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/vpcgap/pkg/cidr"
	pkgtypes "github.com/vietdv277/vpcgap/pkg/types"
)

func subnet(id, block, zone string) Subnet {
	return Subnet{ID: id, Block: cidr.MustParse(block), Zone: zone}
}

func TestPlan_Scenarios(t *testing.T) {
	t.Run("first gap after a /24", func(t *testing.T) {
		res, err := Plan(Request{
			VPC:       cidr.MustParse("172.31.0.0/16"),
			Allocated: []Subnet{subnet("subnet-1", "172.31.0.0/24", "us-east-1a")},
			Prefix:    27,
		})
		require.NoError(t, err)
		require.NotEmpty(t, res.Candidates)
		assert.Equal(t, "172.31.1.0/27", res.Candidates[0].Block.String())
	})

	t.Run("empty vpc", func(t *testing.T) {
		res, err := Plan(Request{VPC: cidr.MustParse("172.31.0.0/16"), Prefix: 28})
		require.NoError(t, err)
		require.NotEmpty(t, res.Candidates)
		assert.Equal(t, "172.31.0.0/28", res.Candidates[0].Block.String())
	})

	t.Run("fully allocated", func(t *testing.T) {
		res, err := Plan(Request{
			VPC: cidr.MustParse("10.0.0.0/24"),
			Allocated: []Subnet{
				subnet("subnet-1", "10.0.0.0/25", "a"),
				subnet("subnet-2", "10.0.0.128/25", "b"),
			},
			Prefix: 26,
		})
		require.NoError(t, err)
		assert.Empty(t, res.Candidates)
		assert.Empty(t, res.Free)
	})

	t.Run("prefix larger than vpc", func(t *testing.T) {
		res, err := Plan(Request{VPC: cidr.MustParse("172.31.0.0/16"), Prefix: 8})
		assert.Nil(t, res)

		var perr *InvalidPrefixError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, 8, perr.Prefix)
		assert.Equal(t, 16, perr.VPCBits)
	})
}

func TestPlan_NoOverlap(t *testing.T) {
	allocated := []Subnet{
		subnet("subnet-a", "10.20.0.0/24", "eu-west-1a"),
		subnet("subnet-b", "10.20.1.0/26", "eu-west-1b"),
		subnet("subnet-c", "10.20.1.128/25", "eu-west-1c"),
		subnet("subnet-d", "10.20.8.0/21", "eu-west-1a"),
		subnet("subnet-e", "10.20.3.32/27", "eu-west-1b"),
	}

	for prefix := 18; prefix <= 28; prefix++ {
		res, err := Plan(Request{
			VPC:       cidr.MustParse("10.20.0.0/18"),
			Allocated: allocated,
			Prefix:    prefix,
			Zones:     ZonesOf(allocated),
		})
		require.NoError(t, err)

		occ := NewOccupancy(allocated)
		for i, c := range res.Candidates {
			assert.Equal(t, prefix, c.Block.Bits())
			assert.True(t, cidr.Contains(res.VPC, c.Block), "%s escapes the VPC", c.Block)
			assert.True(t, occ.Free(c.Block), "%s overlaps an allocated subnet", c.Block)
			for _, other := range res.Candidates[i+1:] {
				assert.False(t, cidr.Overlaps(c.Block, other.Block), "%s overlaps %s", c.Block, other.Block)
			}
		}
	}
}

func TestPlan_Deterministic(t *testing.T) {
	req := Request{
		VPC: cidr.MustParse("10.0.0.0/16"),
		Allocated: []Subnet{
			subnet("subnet-2", "10.0.4.0/22", "b"),
			subnet("subnet-1", "10.0.0.0/24", "a"),
		},
		Prefix: 24,
		Zones:  []string{"a", "b"},
		Limit:  10,
	}

	first, err := Plan(req)
	require.NoError(t, err)
	second, err := Plan(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first.Candidates, 10)
	assert.Equal(t, "subnet-1", first.Allocated[0].ID)
}

func TestPlan_AfterLast(t *testing.T) {
	req := Request{
		VPC: cidr.MustParse("10.0.0.0/24"),
		Allocated: []Subnet{
			subnet("subnet-1", "10.0.0.0/27", "a"),
			subnet("subnet-2", "10.0.0.64/27", "b"),
		},
		Prefix: 27,
	}

	res, err := Plan(req)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.32/27", res.Candidates[0].Block.String())

	req.AfterLast = true
	res, err = Plan(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.96/27", "10.0.0.128/27", "10.0.0.160/27", "10.0.0.192/27", "10.0.0.224/27"}, strs(res.Candidates))
	assert.Len(t, res.Free, 2, "free space report is not trimmed")
}

func TestZonesOf(t *testing.T) {
	subnets := []Subnet{
		subnet("s3", "10.0.3.0/24", "us-east-1a"),
		subnet("s1", "10.0.1.0/24", "us-east-1c"),
		subnet("s2", "10.0.2.0/24", "us-east-1b"),
		subnet("s0", "10.0.0.0/24", ""),
		subnet("s4", "10.0.4.0/24", "us-east-1c"),
	}

	assert.Equal(t, []string{"us-east-1c", "us-east-1b", "us-east-1a"}, ZonesOf(subnets))
	assert.Empty(t, ZonesOf(nil))
}

func TestParseSubnets(t *testing.T) {
	subnets, err := ParseSubnets([]pkgtypes.Subnet{
		{ID: "subnet-1", CIDR: "10.0.0.0/24", AZ: "us-west-2a"},
		{ID: "subnet-2", CIDR: "10.0.1.0/24", AZ: "us-west-2b"},
	})
	require.NoError(t, err)
	require.Len(t, subnets, 2)
	assert.Equal(t, "10.0.1.0/24", subnets[1].Block.String())
	assert.Equal(t, "us-west-2b", subnets[1].Zone)

	_, err = ParseSubnets([]pkgtypes.Subnet{{ID: "subnet-bad", CIDR: "10.0.0.300/24"}})
	var perr *cidr.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "subnet-bad")
}
