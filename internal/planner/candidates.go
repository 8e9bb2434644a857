package planner

import (
	"iter"
	"slices"

	"github.com/vietdv277/vpcgap/pkg/cidr"
)

// Candidate is a free block proposed for a new subnet.
type Candidate struct {
	Block cidr.Block
	Zone  string
}

// Options controls candidate generation.
type Options struct {
	// Prefix is the prefix length of every candidate.
	Prefix int
	// Zones are assigned round-robin to candidates in order. Empty leaves Zone unset.
	Zones []string
	// Limit stops generation after this many candidates. Zero means no limit.
	Limit int
}

// Candidates returns the aligned /opts.Prefix blocks that fit entirely inside
// the free intervals, in ascending address order. The sequence is lazy and
// can be ranged over any number of times with identical results.
func Candidates(free []Interval, vpcBits int, opts Options) (iter.Seq[Candidate], error) {
	if err := validatePrefix(opts.Prefix, vpcBits); err != nil {
		return nil, err
	}

	intervals := append([]Interval(nil), free...)
	zones := append([]string(nil), opts.Zones...)
	size := cidr.SizeOf(opts.Prefix)

	return func(yield func(Candidate) bool) {
		n := 0
		for _, iv := range intervals {
			end := uint64(iv.End)
			for start := alignUp(uint64(iv.Start), size); start+size-1 <= end; start += size {
				if opts.Limit > 0 && n >= opts.Limit {
					return
				}

				block, err := cidr.New(uint32(start), opts.Prefix)
				if err != nil {
					// unreachable: start is aligned to size by construction
					return
				}

				c := Candidate{Block: block}
				if len(zones) > 0 {
					c.Zone = zones[n%len(zones)]
				}
				if !yield(c) {
					return
				}
				n++
			}
		}
	}, nil
}

// Collect drains a candidate sequence into a slice.
func Collect(seq iter.Seq[Candidate]) []Candidate {
	return slices.Collect(seq)
}
