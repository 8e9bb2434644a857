// Package planner computes free address space inside a VPC and proposes
// aligned subnet blocks from it. It performs no I/O.
package planner

import (
	"fmt"
	"sort"

	"github.com/vietdv277/vpcgap/pkg/cidr"
	pkgtypes "github.com/vietdv277/vpcgap/pkg/types"
)

// Subnet is an allocated block inside the VPC.
type Subnet struct {
	ID    string
	Block cidr.Block
	Zone  string
}

// Request describes one planning run.
type Request struct {
	VPC       cidr.Block
	Allocated []Subnet
	Prefix    int
	Zones     []string
	Limit     int

	// AfterLast restricts candidates to addresses past the highest allocated subnet.
	AfterLast bool
}

// Result is the outcome of Plan. Candidates is empty when the VPC has no room left.
type Result struct {
	VPC        cidr.Block
	Allocated  []Subnet
	Free       []Interval
	Candidates []Candidate
}

// Plan finds the free intervals of the VPC and collects candidates from them.
func Plan(req Request) (*Result, error) {
	if err := validatePrefix(req.Prefix, req.VPC.Bits()); err != nil {
		return nil, err
	}

	allocated := SortSubnets(req.Allocated)
	blocks := make([]cidr.Block, len(allocated))
	for i, s := range allocated {
		blocks[i] = s.Block
	}

	free := Gaps(req.VPC, blocks)
	search := free
	if req.AfterLast {
		search = afterLast(free, blocks)
	}

	seq, err := Candidates(search, req.VPC.Bits(), Options{
		Prefix: req.Prefix,
		Zones:  req.Zones,
		Limit:  req.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		VPC:        req.VPC,
		Allocated:  allocated,
		Free:       free,
		Candidates: Collect(seq),
	}, nil
}

// SortSubnets returns a copy of subnets ordered by address, then by prefix length.
func SortSubnets(subnets []Subnet) []Subnet {
	out := append([]Subnet(nil), subnets...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Block, out[j].Block
		if a.First() != b.First() {
			return a.First() < b.First()
		}
		return a.Bits() < b.Bits()
	})
	return out
}

// ZonesOf returns the distinct availability zones of subnets in first-seen
// order, walking the subnets by ascending address.
func ZonesOf(subnets []Subnet) []string {
	seen := make(map[string]bool)
	var zones []string
	for _, s := range SortSubnets(subnets) {
		if s.Zone == "" || seen[s.Zone] {
			continue
		}
		seen[s.Zone] = true
		zones = append(zones, s.Zone)
	}
	return zones
}

// ParseSubnets converts provider subnet records into planner subnets.
func ParseSubnets(records []pkgtypes.Subnet) ([]Subnet, error) {
	subnets := make([]Subnet, 0, len(records))
	for _, r := range records {
		block, err := cidr.Parse(r.CIDR)
		if err != nil {
			return nil, fmt.Errorf("subnet %s: %w", r.ID, err)
		}
		subnets = append(subnets, Subnet{ID: r.ID, Block: block, Zone: r.AZ})
	}
	return subnets, nil
}

// afterLast drops free space at or below the highest allocated address.
func afterLast(free []Interval, allocated []cidr.Block) []Interval {
	if len(allocated) == 0 {
		return free
	}

	var highest uint32
	for _, b := range allocated {
		if b.Last() > highest {
			highest = b.Last()
		}
	}

	var out []Interval
	for _, iv := range free {
		if iv.End <= highest {
			continue
		}
		if iv.Start <= highest {
			iv.Start = highest + 1
		}
		out = append(out, iv)
	}
	return out
}
