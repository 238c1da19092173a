package ipnet

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Compare orders networks by base address. Networks sharing a base address
// order from longest prefix (smallest range) to shortest, so a covering
// network sorts immediately after the narrower networks nested at its start.
func (n Network[T]) Compare(o Network[T]) int {
	if c := n.base.cmp(o.base); c != 0 {
		return c
	}
	switch {
	case n.bits > o.bits:
		return -1
	case n.bits < o.bits:
		return 1
	}
	return 0
}

// Contains reports whether ip lies within the network. An address of the
// other family is rejected with ErrFamilyMismatch rather than reported as
// absent.
func (n Network[T]) Contains(ip netip.Addr) (bool, error) {
	var zero T
	host, ok := zero.fromAddr(ip)
	if !ok {
		return false, fmt.Errorf("%w: %s is not an %s address", ErrFamilyMismatch, ip, n.Family())
	}
	return n.containsHost(host), nil
}

func (n Network[T]) containsHost(host T) bool {
	return n.base.cmp(host) <= 0 && host.cmp(n.lastHost()) <= 0
}

// SubsetOf reports whether every address of n lies within o.
func (n Network[T]) SubsetOf(o Network[T]) bool {
	return o.base.cmp(n.base) <= 0 && n.lastHost().cmp(o.lastHost()) <= 0
}

// Usable reports whether ip is a usable host address of the network. For
// IPv4 the network and broadcast addresses are excluded, except on /31
// point-to-point links and /32 host routes where both roles collapse into
// ordinary addresses.
func (n Network[T]) Usable(ip netip.Addr) (bool, error) {
	in, err := n.Contains(ip)
	if err != nil || !in {
		return false, err
	}
	if n.Family() == IPv4 && n.Bits() < 31 {
		r := netipx.RangeOfPrefix(n.Prefix())
		if ip = ip.Unmap(); r.From() == ip || r.To() == ip {
			return false, nil
		}
	}
	return true, nil
}

// Compare orders two networks of the same family; mixing families is
// rejected with ErrFamilyMismatch.
func Compare(a, b Net) (int, error) {
	switch x := a.(type) {
	case IPv4Net:
		if y, ok := b.(IPv4Net); ok {
			return x.Compare(y), nil
		}
	case IPv6Net:
		if y, ok := b.(IPv6Net); ok {
			return x.Compare(y), nil
		}
	}
	return 0, fmt.Errorf("%w: cannot compare %s and %s networks", ErrFamilyMismatch, a.Family(), b.Family())
}

// Subset reports whether a lies entirely within b; mixing families is
// rejected with ErrFamilyMismatch.
func Subset(a, b Net) (bool, error) {
	switch x := a.(type) {
	case IPv4Net:
		if y, ok := b.(IPv4Net); ok {
			return x.SubsetOf(y), nil
		}
	case IPv6Net:
		if y, ok := b.(IPv6Net); ok {
			return x.SubsetOf(y), nil
		}
	}
	return false, fmt.Errorf("%w: cannot compare %s and %s networks", ErrFamilyMismatch, a.Family(), b.Family())
}
