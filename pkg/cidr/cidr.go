// Package cidr implements IPv4 CIDR block arithmetic on 32-bit integers.
//
// A Block can only be obtained through Parse or New, so every Block in the
// program is aligned: the host bits of its network address are zero.
package cidr

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strings"
)

// MaxBits is the prefix length of a single-address IPv4 block.
const MaxBits = 32

// ParseError reports a malformed or unaligned CIDR.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid CIDR %q: %s", e.Input, e.Reason)
}

// Block is an aligned IPv4 network.
type Block struct {
	network uint32
	bits    int
}

// New returns the block network/bits. The network must have its host bits zeroed.
func New(network uint32, bits int) (Block, error) {
	if bits < 0 || bits > MaxBits {
		return Block{}, &ParseError{
			Input:  fmt.Sprintf("%s/%d", FormatAddr(network), bits),
			Reason: "prefix length must be between 0 and 32",
		}
	}
	if network&^mask(bits) != 0 {
		return Block{}, &ParseError{
			Input:  fmt.Sprintf("%s/%d", FormatAddr(network), bits),
			Reason: "host bits must be zero",
		}
	}
	return Block{network: network, bits: bits}, nil
}

// Parse parses s in A.B.C.D/N form. Host bits are masked off, so
// "10.0.0.7/24" parses to 10.0.0.0/24.
func Parse(s string) (Block, error) {
	if !strings.Contains(s, "/") {
		return Block{}, &ParseError{Input: s, Reason: "missing prefix length"}
	}

	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return Block{}, &ParseError{Input: s, Reason: reason(err)}
	}
	if !prefix.Addr().Is4() {
		return Block{}, &ParseError{Input: s, Reason: "not an IPv4 network"}
	}

	prefix = prefix.Masked()
	return Block{
		network: toUint32(prefix.Addr()),
		bits:    prefix.Bits(),
	}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Block {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Bits returns the prefix length.
func (b Block) Bits() int { return b.bits }

// Network returns the first address as an integer.
func (b Block) Network() uint32 { return b.network }

// Size returns the number of addresses in the block. It is a uint64 so /0 fits.
func (b Block) Size() uint64 { return SizeOf(b.bits) }

// First returns the network address.
func (b Block) First() uint32 { return b.network }

// Last returns the broadcast address.
func (b Block) Last() uint32 { return b.network | ^mask(b.bits) }

// Range returns the first and last address, both inclusive.
func (b Block) Range() (first, last uint32) {
	return b.First(), b.Last()
}

// Addr returns the network address.
func (b Block) Addr() netip.Addr { return toAddr(b.network) }

// Prefix returns the block as a netip.Prefix.
func (b Block) Prefix() netip.Prefix {
	return netip.PrefixFrom(b.Addr(), b.bits)
}

// String renders the block in dotted-quad/prefix form.
func (b Block) String() string {
	return fmt.Sprintf("%s/%d", FormatAddr(b.network), b.bits)
}

// MarshalText implements encoding.TextMarshaler.
func (b Block) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Overlaps reports whether a and b share at least one address.
func Overlaps(a, b Block) bool {
	return a.First() <= b.Last() && b.First() <= a.Last()
}

// Contains reports whether every address of inner lies in outer.
func Contains(outer, inner Block) bool {
	return outer.First() <= inner.First() && inner.Last() <= outer.Last()
}

// SizeOf returns the number of addresses in a block of the given prefix length.
func SizeOf(bits int) uint64 {
	return uint64(1) << uint(MaxBits-bits)
}

// FormatAddr renders an integer address in dotted-quad form.
func FormatAddr(addr uint32) string {
	return toAddr(addr).String()
}

// mask returns the netmask for bits as an integer.
func mask(bits int) uint32 {
	if bits == 0 {
		return 0
	}
	return ^uint32(0) << uint(MaxBits-bits)
}

func toUint32(a netip.Addr) uint32 {
	b := a.As4()
	return binary.BigEndian.Uint32(b[:])
}

func toAddr(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// reason strips the repeated input from netip errors.
func reason(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, "): "); i >= 0 {
		return msg[i+3:]
	}
	return msg
}
