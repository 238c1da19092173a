package ipnet

import (
	"fmt"
	"net"
	"net/netip"

	"go4.org/netipx"
)

// Prefix converts the network to a netip.Prefix.
func (n Network[T]) Prefix() netip.Prefix {
	return netip.PrefixFrom(n.base.addr(), int(n.bits))
}

// IPNet converts the network to the older net.IPNet form, for code that
// still speaks the net package.
func (n Network[T]) IPNet() *net.IPNet {
	addr := n.base.addr()
	return &net.IPNet{
		IP:   addr.AsSlice(),
		Mask: net.CIDRMask(int(n.bits), addr.BitLen()),
	}
}

// IPRange converts the network to the address range it covers.
func (n Network[T]) IPRange() netipx.IPRange {
	return netipx.IPRangeFrom(n.First(), n.Last())
}

// FromPrefix builds a network of the matching family from a netip.Prefix.
func FromPrefix(p netip.Prefix) (Net, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: invalid prefix", ErrParse)
	}
	if p.Addr().Is4() {
		return newNetwork[v4](p.Addr(), p.Bits())
	}
	return newNetwork[v6](p.Addr(), p.Bits())
}
