package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/vpcgap/pkg/cidr"
)

func strs(cs []Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Block.String())
	}
	return out
}

func TestCandidates_Alignment(t *testing.T) {
	free := []Interval{
		{Start: cidr.MustParse("10.0.0.5/32").First(), End: cidr.MustParse("10.0.0.70/32").First()},
		{Start: cidr.MustParse("10.0.0.96/32").First(), End: cidr.MustParse("10.0.0.255/32").First()},
	}

	seq, err := Candidates(free, 24, Options{Prefix: 27})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"10.0.0.32/27",
		"10.0.0.96/27",
		"10.0.0.128/27",
		"10.0.0.160/27",
		"10.0.0.192/27",
		"10.0.0.224/27",
	}, strs(Collect(seq)))
}

func TestCandidates_ZonesRoundRobin(t *testing.T) {
	vpc := cidr.MustParse("10.0.0.0/24")
	seq, err := Candidates(Gaps(vpc, nil), vpc.Bits(), Options{
		Prefix: 26,
		Zones:  []string{"us-east-1a", "us-east-1b", "us-east-1c"},
	})
	require.NoError(t, err)

	got := Collect(seq)
	require.Len(t, got, 4)

	zones := make([]string, len(got))
	for i, c := range got {
		zones[i] = c.Zone
	}
	assert.Equal(t, []string{"us-east-1a", "us-east-1b", "us-east-1c", "us-east-1a"}, zones)
}

func TestCandidates_NoZones(t *testing.T) {
	vpc := cidr.MustParse("10.0.0.0/24")
	seq, err := Candidates(Gaps(vpc, nil), vpc.Bits(), Options{Prefix: 25})
	require.NoError(t, err)

	for c := range seq {
		assert.Empty(t, c.Zone)
	}
}

func TestCandidates_Limit(t *testing.T) {
	vpc := cidr.MustParse("172.31.0.0/16")
	seq, err := Candidates(Gaps(vpc, nil), vpc.Bits(), Options{Prefix: 28, Limit: 3})
	require.NoError(t, err)

	assert.Equal(t, []string{"172.31.0.0/28", "172.31.0.16/28", "172.31.0.32/28"}, strs(Collect(seq)))
}

func TestCandidates_EarlyBreak(t *testing.T) {
	vpc := cidr.MustParse("10.0.0.0/8")
	seq, err := Candidates(Gaps(vpc, nil), vpc.Bits(), Options{Prefix: 32})
	require.NoError(t, err)

	n := 0
	for range seq {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
}

func TestCandidates_Restartable(t *testing.T) {
	vpc := cidr.MustParse("10.0.0.0/20")
	allocated := blocks(t, "10.0.1.0/24", "10.0.4.0/22")
	seq, err := Candidates(Gaps(vpc, allocated), vpc.Bits(), Options{
		Prefix: 24,
		Zones:  []string{"a", "b"},
	})
	require.NoError(t, err)

	first := Collect(seq)
	second := Collect(seq)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestCandidates_InputNotRetained(t *testing.T) {
	vpc := cidr.MustParse("10.0.0.0/24")
	free := Gaps(vpc, nil)
	zones := []string{"a"}

	seq, err := Candidates(free, vpc.Bits(), Options{Prefix: 25, Zones: zones})
	require.NoError(t, err)

	free[0].End = free[0].Start
	zones[0] = "changed"

	got := Collect(seq)
	assert.Equal(t, []string{"10.0.0.0/25", "10.0.0.128/25"}, strs(got))
	assert.Equal(t, "a", got[0].Zone)
}

func TestCandidates_InvalidPrefix(t *testing.T) {
	tests := []struct {
		name    string
		prefix  int
		vpcBits int
	}{
		{"larger than vpc", 8, 16},
		{"negative", -1, 16},
		{"too long", 33, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Candidates(nil, tt.vpcBits, Options{Prefix: tt.prefix})
			assert.Nil(t, seq)

			var perr *InvalidPrefixError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.prefix, perr.Prefix)
			assert.Equal(t, tt.vpcBits, perr.VPCBits)
		})
	}
}

func TestCandidates_SameSizeAsVPC(t *testing.T) {
	vpc := cidr.MustParse("10.0.0.0/24")
	seq, err := Candidates(Gaps(vpc, nil), vpc.Bits(), Options{Prefix: 24})
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/24"}, strs(Collect(seq)))
}
