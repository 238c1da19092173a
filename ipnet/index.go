package ipnet

import (
	"fmt"
	"iter"
	"net/netip"
)

// At returns the i'th address of the network, counting from 1. The computed
// address is re-tested for membership, which also rejects indexes whose
// offset wraps the host integer. Indexes past 2^64−1 are not addressable
// this way; use Last for the upper end of a wide IPv6 network.
func (n Network[T]) At(i uint64) (netip.Addr, error) {
	if i == 0 {
		return netip.Addr{}, fmt.Errorf("%w: index %d", ErrOutOfRange, i)
	}
	var zero T
	off, ok := zero.from64(i - 1)
	if !ok {
		return netip.Addr{}, fmt.Errorf("%w: index %d", ErrOutOfRange, i)
	}
	host := n.base.addWrap(off)
	if !n.containsHost(host) {
		return netip.Addr{}, fmt.Errorf("%w: index %d", ErrOutOfRange, i)
	}
	return host.addr(), nil
}

// Slice returns the addresses at indexes from..to inclusive, applying the
// same per-index validity check as At. An inverted range is empty.
func (n Network[T]) Slice(from, to uint64) ([]netip.Addr, error) {
	if from > to {
		return nil, nil
	}
	// Check the far end before allocating for it.
	if _, err := n.At(to); err != nil {
		return nil, err
	}
	out := make([]netip.Addr, 0, to-from+1)
	for i := from; i <= to; i++ {
		a, err := n.At(i)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Addresses yields every address of the network in order, from First to
// Last. The sequence is finite and restartable. A wide IPv6 prefix covers
// more addresses than any caller can walk; bounding the walk is the
// caller's job, the iterator never caps it.
func (n Network[T]) Addresses() iter.Seq[netip.Addr] {
	return func(yield func(netip.Addr) bool) {
		var zero T
		one, _ := zero.from64(1)
		last := n.lastHost()
		for host := n.base; ; host = host.addWrap(one) {
			if !yield(host.addr()) {
				return
			}
			if host == last {
				return
			}
		}
	}
}
