package planner

import (
	"github.com/gaissmai/bart"

	"github.com/vietdv277/vpcgap/pkg/cidr"
)

// Occupancy indexes allocated subnets by prefix for collision checks.
type Occupancy struct {
	table   *bart.Table[Subnet]
	subnets []Subnet
}

// NewOccupancy builds an index over subnets.
func NewOccupancy(subnets []Subnet) *Occupancy {
	o := &Occupancy{
		table:   new(bart.Table[Subnet]),
		subnets: SortSubnets(subnets),
	}
	for _, s := range o.subnets {
		o.table.Insert(s.Block.Prefix(), s)
	}
	return o
}

// Free reports whether block shares no address with any allocated subnet.
func (o *Occupancy) Free(block cidr.Block) bool {
	return !o.table.OverlapsPrefix(block.Prefix())
}

// Conflicts returns the allocated subnets that overlap block, in address order.
func (o *Occupancy) Conflicts(block cidr.Block) []Subnet {
	if o.Free(block) {
		return nil
	}

	var out []Subnet
	for _, s := range o.subnets {
		if cidr.Overlaps(s.Block, block) {
			out = append(out, s)
		}
	}
	return out
}

// Owner returns the most specific allocated subnet holding addr.
func (o *Occupancy) Owner(addr uint32) (Subnet, bool) {
	b, err := cidr.New(addr, cidr.MaxBits)
	if err != nil {
		return Subnet{}, false
	}
	return o.table.Lookup(b.Addr())
}
