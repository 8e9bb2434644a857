package planner

import (
	"fmt"
	"sort"

	"github.com/vietdv277/vpcgap/pkg/cidr"
)

// Interval is an inclusive, unaligned range of free addresses.
type Interval struct {
	Start uint32
	End   uint32
}

// Size returns the number of addresses in the interval.
func (iv Interval) Size() uint64 {
	if iv.End < iv.Start {
		return 0
	}
	return uint64(iv.End) - uint64(iv.Start) + 1
}

// String renders the interval as "first - last".
func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", cidr.FormatAddr(iv.Start), cidr.FormatAddr(iv.End))
}

// Largest returns the biggest aligned block that fits inside the interval.
func (iv Interval) Largest() (cidr.Block, bool) {
	for bits := 0; bits <= cidr.MaxBits; bits++ {
		size := cidr.SizeOf(bits)
		start := alignUp(uint64(iv.Start), size)
		if start+size-1 <= uint64(iv.End) {
			b, err := cidr.New(uint32(start), bits)
			if err != nil {
				return cidr.Block{}, false
			}
			return b, true
		}
	}
	return cidr.Block{}, false
}

// span is an occupied range in 64-bit space so the end of 255.255.255.255 does not wrap.
type span struct {
	start, end uint64
}

// Gaps returns the addresses of vpc not covered by any allocated block, in
// ascending order. Allocations are clipped to the VPC; overlapping or
// adjacent allocations are merged into one occupied span.
func Gaps(vpc cidr.Block, allocated []cidr.Block) []Interval {
	occupied := mergeSpans(vpc, allocated)

	var free []Interval
	cursor := uint64(vpc.First())
	last := uint64(vpc.Last())

	for _, s := range occupied {
		if s.start > cursor {
			free = append(free, Interval{Start: uint32(cursor), End: uint32(s.start - 1)})
		}
		if s.end+1 > cursor {
			cursor = s.end + 1
		}
	}

	if cursor <= last {
		free = append(free, Interval{Start: uint32(cursor), End: uint32(last)})
	}

	return free
}

// mergeSpans clips blocks to vpc, sorts them and merges overlapping or adjacent ranges.
func mergeSpans(vpc cidr.Block, blocks []cidr.Block) []span {
	lo, hi := uint64(vpc.First()), uint64(vpc.Last())

	spans := make([]span, 0, len(blocks))
	for _, b := range blocks {
		if !cidr.Overlaps(vpc, b) {
			continue
		}
		s := span{start: uint64(b.First()), end: uint64(b.Last())}
		if s.start < lo {
			s.start = lo
		}
		if s.end > hi {
			s.end = hi
		}
		spans = append(spans, s)
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end < spans[j].end
	})

	var merged []span
	for _, s := range spans {
		n := len(merged)
		if n > 0 && s.start <= merged[n-1].end+1 {
			if s.end > merged[n-1].end {
				merged[n-1].end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}

	return merged
}

// alignUp rounds v up to the next multiple of size. size is a power of two.
func alignUp(v, size uint64) uint64 {
	return (v + size - 1) &^ (size - 1)
}
