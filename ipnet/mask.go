package ipnet

import (
	"fmt"
	"net/netip"
)

// rawMask returns the host integer with the top bits set. Callers must have
// validated bits against the family width.
func rawMask[T hostint[T]](bits int) T {
	var zero T
	return zero.maxVal().shiftLeft(uint(zero.width() - bits))
}

func maskOf[T hostint[T]](bits int) (T, error) {
	var zero T
	if bits < 0 || bits > zero.width() {
		return zero, fmt.Errorf("%w: /%d on a %d-bit family", ErrInvalidPrefix, bits, zero.width())
	}
	return rawMask[T](bits), nil
}

// maskBits recovers the prefix length from a traditional netmask. The set
// bits must form a single run starting at the most significant bit.
func maskBits[T hostint[T]](mask T) (int, error) {
	ones := mask.ones()
	if rawMask[T](ones) != mask {
		return 0, fmt.Errorf("%w: %s", ErrNoncontiguousMask, mask.addr())
	}
	return ones, nil
}

// PrefixMask returns the netmask of the family for the given prefix length,
// rendered as an address value.
func PrefixMask(f Family, bits int) (netip.Addr, error) {
	switch f {
	case IPv4:
		m, err := maskOf[v4](bits)
		if err != nil {
			return netip.Addr{}, err
		}
		return m.addr(), nil
	case IPv6:
		m, err := maskOf[v6](bits)
		if err != nil {
			return netip.Addr{}, err
		}
		return m.addr(), nil
	}
	return netip.Addr{}, fmt.Errorf("%w: unknown family", ErrFamilyMismatch)
}

// MaskBits returns the prefix length encoded by a traditional netmask
// address, e.g. 24 for 255.255.255.0. Masks whose bits are not one leading
// run are rejected with ErrNoncontiguousMask.
func MaskBits(mask netip.Addr) (int, error) {
	if m, ok := v4(0).fromAddr(mask); ok {
		return maskBits(m)
	}
	if m, ok := (v6{}).fromAddr(mask); ok {
		return maskBits(m)
	}
	return 0, fmt.Errorf("%w: %s", ErrParse, mask)
}
