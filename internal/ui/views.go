package ui

import (
	"github.com/vietdv277/vpcgap/internal/planner"
	"github.com/vietdv277/vpcgap/pkg/cidr"
	pkgtypes "github.com/vietdv277/vpcgap/pkg/types"
)

// AWS keeps the first four addresses and the last address of every subnet.
const (
	reservedHead = 4
	reservedTail = 1
)

// VPCView is the serialized form of a VPC
type VPCView struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	CIDR   string `json:"cidr" yaml:"cidr"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// SubnetView is the serialized form of an allocated subnet
type SubnetView struct {
	ID               string `json:"id,omitempty" yaml:"id,omitempty"`
	CIDR             string `json:"cidr" yaml:"cidr"`
	AvailabilityZone string `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
	UsableIPs        uint64 `json:"usable_ips" yaml:"usable_ips"`
}

// BlockView describes the addresses of a block as AWS would hand them out
type BlockView struct {
	CIDR             string `json:"cidr" yaml:"cidr"`
	AvailabilityZone string `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
	Network          string `json:"network" yaml:"network"`
	Broadcast        string `json:"broadcast" yaml:"broadcast"`
	FirstUsable      string `json:"first_usable,omitempty" yaml:"first_usable,omitempty"`
	LastUsable       string `json:"last_usable,omitempty" yaml:"last_usable,omitempty"`
	UsableIPs        uint64 `json:"usable_ips" yaml:"usable_ips"`
}

// GapView is the serialized form of a free interval
type GapView struct {
	Start     string `json:"start" yaml:"start"`
	End       string `json:"end" yaml:"end"`
	Addresses uint64 `json:"addresses" yaml:"addresses"`
	Largest   string `json:"largest_block,omitempty" yaml:"largest_block,omitempty"`
}

// PlanView is the serialized form of a plan
type PlanView struct {
	VPC        VPCView      `json:"vpc" yaml:"vpc"`
	Prefix     int          `json:"prefix" yaml:"prefix"`
	Existing   []SubnetView `json:"existing_subnets" yaml:"existing_subnets"`
	Candidates []BlockView  `json:"candidates" yaml:"candidates"`
}

// GapsView is the serialized form of a free space report
type GapsView struct {
	VPC       VPCView   `json:"vpc" yaml:"vpc"`
	Free      []GapView `json:"free" yaml:"free"`
	FreeTotal uint64    `json:"free_addresses" yaml:"free_addresses"`
	Total     uint64    `json:"total_addresses" yaml:"total_addresses"`
}

// CheckView is the outcome of checking one block against a VPC
type CheckView struct {
	VPC       VPCView      `json:"vpc" yaml:"vpc"`
	Block     BlockView    `json:"block" yaml:"block"`
	InVPC     bool         `json:"in_vpc" yaml:"in_vpc"`
	Free      bool         `json:"free" yaml:"free"`
	Conflicts []SubnetView `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`

	// NetworkOwner is the subnet holding the block's network address, if any
	NetworkOwner *SubnetView `json:"network_owner,omitempty" yaml:"network_owner,omitempty"`
}

// UsableIPs returns the number of addresses AWS lets instances use in b
func UsableIPs(b cidr.Block) uint64 {
	if b.Size() <= reservedHead+reservedTail {
		return 0
	}
	return b.Size() - reservedHead - reservedTail
}

// NewVPCView builds a VPCView
func NewVPCView(vpc pkgtypes.VPC, region string) VPCView {
	return VPCView{ID: vpc.ID, Name: vpc.Name, CIDR: vpc.CIDR, Region: region}
}

// NewBlockView describes b
func NewBlockView(b cidr.Block, zone string) BlockView {
	v := BlockView{
		CIDR:             b.String(),
		AvailabilityZone: zone,
		Network:          cidr.FormatAddr(b.First()),
		Broadcast:        cidr.FormatAddr(b.Last()),
		UsableIPs:        UsableIPs(b),
	}
	if v.UsableIPs > 0 {
		v.FirstUsable = cidr.FormatAddr(b.First() + reservedHead)
		v.LastUsable = cidr.FormatAddr(b.Last() - reservedTail)
	}
	return v
}

// NewSubnetView builds a SubnetView
func NewSubnetView(s planner.Subnet) SubnetView {
	return SubnetView{
		ID:               s.ID,
		CIDR:             s.Block.String(),
		AvailabilityZone: s.Zone,
		UsableIPs:        UsableIPs(s.Block),
	}
}

// NewPlanView builds the serialized form of a plan
func NewPlanView(vpc VPCView, prefix int, res *planner.Result) PlanView {
	v := PlanView{
		VPC:        vpc,
		Prefix:     prefix,
		Existing:   make([]SubnetView, 0, len(res.Allocated)),
		Candidates: make([]BlockView, 0, len(res.Candidates)),
	}
	for _, s := range res.Allocated {
		v.Existing = append(v.Existing, NewSubnetView(s))
	}
	for _, c := range res.Candidates {
		v.Candidates = append(v.Candidates, NewBlockView(c.Block, c.Zone))
	}
	return v
}

// NewGapsView builds the serialized form of a free space report
func NewGapsView(vpc VPCView, res *planner.Result) GapsView {
	v := GapsView{
		VPC:   vpc,
		Free:  make([]GapView, 0, len(res.Free)),
		Total: res.VPC.Size(),
	}
	for _, iv := range res.Free {
		g := GapView{
			Start:     cidr.FormatAddr(iv.Start),
			End:       cidr.FormatAddr(iv.End),
			Addresses: iv.Size(),
		}
		if b, ok := iv.Largest(); ok {
			g.Largest = b.String()
		}
		v.Free = append(v.Free, g)
		v.FreeTotal += iv.Size()
	}
	return v
}
