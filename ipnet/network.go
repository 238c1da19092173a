// Package ipnet models IPv4 and IPv6 networks as immutable values: a
// canonical base address plus a prefix length, with mask arithmetic,
// ordering, containment and address indexing built on top.
package ipnet

import (
	"fmt"
	"iter"
	"math/big"
	"net/netip"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

// Network is an IP network of one family. The base address always has its
// host bits cleared; constructing from 10.0.0.5/24 stores 10.0.0.0. Values
// are immutable and safe to share.
type Network[T hostint[T]] struct {
	base T
	bits uint8
}

// IPv4Net is a network of 32-bit addresses.
type IPv4Net = Network[v4]

// IPv6Net is a network of 128-bit addresses.
type IPv6Net = Network[v6]

// Net is an IPv4Net or an IPv6Net. It exists for mixed-family collections
// and for parsing text whose family is not known up front.
type Net interface {
	Family() Family
	Addr() netip.Addr
	Bits() int
	Mask() netip.Addr
	Size() *big.Int
	First() netip.Addr
	Last() netip.Addr
	Contains(netip.Addr) (bool, error)
	Usable(netip.Addr) (bool, error)
	Prefix() netip.Prefix
	Addresses() iter.Seq[netip.Addr]
	String() string

	sealed()
}

func (Network[T]) sealed() {}

// newNetwork is the sole normalizing constructor; every other constructor
// reduces to it.
func newNetwork[T hostint[T]](addr netip.Addr, bits int) (Network[T], error) {
	var zero T
	host, ok := zero.fromAddr(addr)
	if !ok {
		return Network[T]{}, fmt.Errorf("%w: %s is not an %s address", ErrFamilyMismatch, addr, familyOf[T]())
	}
	mask, err := maskOf[T](bits)
	if err != nil {
		return Network[T]{}, err
	}
	return Network[T]{base: host.and(mask), bits: uint8(bits)}, nil
}

func parseNetwork[T hostint[T]](s string) (Network[T], error) {
	addrText, bitsText, slash := strings.Cut(s, "/")
	addr, err := netip.ParseAddr(addrText)
	if err != nil {
		return Network[T]{}, fmt.Errorf("%w: %q", ErrParse, addrText)
	}

	var zero T
	bits := zero.width() // no prefix means a host route
	if slash {
		bits, err = strconv.Atoi(bitsText)
		if err != nil {
			return Network[T]{}, fmt.Errorf("%w: prefix length %q", ErrParse, bitsText)
		}
	}
	return newNetwork[T](addr, bits)
}

func parseNetworkMask[T hostint[T]](addrText, maskText string) (Network[T], error) {
	addr, err := netip.ParseAddr(addrText)
	if err != nil {
		return Network[T]{}, fmt.Errorf("%w: %q", ErrParse, addrText)
	}
	maskAddr, err := netip.ParseAddr(maskText)
	if err != nil {
		return Network[T]{}, fmt.Errorf("%w: %q", ErrParse, maskText)
	}

	var zero T
	mask, ok := zero.fromAddr(maskAddr)
	if !ok {
		return Network[T]{}, fmt.Errorf("%w: mask %s is not an %s address", ErrFamilyMismatch, maskAddr, familyOf[T]())
	}
	bits, err := maskBits(mask)
	if err != nil {
		return Network[T]{}, err
	}
	return newNetwork[T](addr, bits)
}

// NewIPv4Net builds a network from an address and a prefix length, clearing
// the host bits of the address.
func NewIPv4Net(addr netip.Addr, bits int) (IPv4Net, error) { return newNetwork[v4](addr, bits) }

// NewIPv6Net builds a network from an address and a prefix length, clearing
// the host bits of the address.
func NewIPv6Net(addr netip.Addr, bits int) (IPv6Net, error) { return newNetwork[v6](addr, bits) }

// ParseIPv4Net reads an IPv4 network in CIDR notation. Text without a slash
// is a host route: "10.0.0.1" means 10.0.0.1/32.
func ParseIPv4Net(s string) (IPv4Net, error) { return parseNetwork[v4](s) }

// ParseIPv6Net reads an IPv6 network in CIDR notation. Text without a slash
// is a host route: "::1" means ::1/128.
func ParseIPv6Net(s string) (IPv6Net, error) { return parseNetwork[v6](s) }

// ParseIPv4NetMask reads an IPv4 network from an address and a traditional
// netmask, e.g. ("10.0.0.0", "255.255.255.0").
func ParseIPv4NetMask(addrText, maskText string) (IPv4Net, error) {
	return parseNetworkMask[v4](addrText, maskText)
}

// ParseIPv6NetMask reads an IPv6 network from an address and a traditional
// netmask, e.g. ("2001:db8::", "ffff:ffff::").
func ParseIPv6NetMask(addrText, maskText string) (IPv6Net, error) {
	return parseNetworkMask[v6](addrText, maskText)
}

// IPv4NetOf builds a network from the numeric form of its base address.
func IPv4NetOf(host uint32, bits int) (IPv4Net, error) {
	mask, err := maskOf[v4](bits)
	if err != nil {
		return IPv4Net{}, err
	}
	return IPv4Net{base: v4(host).and(mask), bits: uint8(bits)}, nil
}

// IPv6NetOf builds a network from the numeric form of its base address.
func IPv6NetOf(host uint128.Uint128, bits int) (IPv6Net, error) {
	mask, err := maskOf[v6](bits)
	if err != nil {
		return IPv6Net{}, err
	}
	return IPv6Net{base: v6{host}.and(mask), bits: uint8(bits)}, nil
}

// MustParseIPv4Net is ParseIPv4Net for inputs known to be valid. It panics
// on error.
func MustParseIPv4Net(s string) IPv4Net {
	n, err := ParseIPv4Net(s)
	if err != nil {
		panic(err)
	}
	return n
}

// MustParseIPv6Net is ParseIPv6Net for inputs known to be valid. It panics
// on error.
func MustParseIPv6Net(s string) IPv6Net {
	n, err := ParseIPv6Net(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Parse reads a network in CIDR notation of either family.
func Parse(s string) (Net, error) {
	addrText, _, _ := strings.Cut(s, "/")
	addr, err := netip.ParseAddr(addrText)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrParse, addrText)
	}
	if addr.Is4() {
		return parseNetwork[v4](s)
	}
	return parseNetwork[v6](s)
}

// Family returns the address family of the network.
func (n Network[T]) Family() Family { return familyOf[T]() }

// Addr returns the canonical base address.
func (n Network[T]) Addr() netip.Addr { return n.base.addr() }

// Bits returns the prefix length.
func (n Network[T]) Bits() int { return int(n.bits) }

// Mask returns the netmask as an address value.
func (n Network[T]) Mask() netip.Addr { return rawMask[T](int(n.bits)).addr() }

// Size returns the number of addresses the network covers,
// 2^(width−prefix). The count is exact even at /0, where it exceeds the
// family's native integer width.
func (n Network[T]) Size() *big.Int {
	var zero T
	return new(big.Int).Lsh(big.NewInt(1), uint(zero.width()-int(n.bits)))
}

// Len is an alias of Size, kept for symmetry with range-like containers.
func (n Network[T]) Len() *big.Int { return n.Size() }

// First returns the first address of the network, which is its base address.
func (n Network[T]) First() netip.Addr { return n.base.addr() }

// Last returns the last address of the network.
func (n Network[T]) Last() netip.Addr { return n.lastHost().addr() }

// Bounds returns the first and last address of the network.
func (n Network[T]) Bounds() (netip.Addr, netip.Addr) { return n.First(), n.Last() }

func (n Network[T]) lastHost() T {
	return n.base.or(rawMask[T](int(n.bits)).not())
}

// String renders the network in canonical CIDR notation, base/bits. The
// result parses back to an equal network.
func (n Network[T]) String() string {
	return n.base.addr().String() + "/" + strconv.Itoa(int(n.bits))
}
