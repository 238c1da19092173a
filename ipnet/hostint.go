package ipnet

import (
	"encoding/binary"
	"math"
	"math/bits"
	"net/netip"

	"lukechampine.com/uint128"
)

// hostint is the fixed-width unsigned integer behind one address family.
// Every method must be callable on the zero value, so constructors can reach
// width, max and the addr conversions before any value exists.
type hostint[T any] interface {
	comparable
	width() int
	maxVal() T
	and(T) T
	or(T) T
	not() T
	addWrap(T) T
	cmp(T) int
	ones() int
	shiftLeft(uint) T
	from64(uint64) (T, bool)
	fromAddr(netip.Addr) (T, bool)
	addr() netip.Addr
}

func familyOf[T hostint[T]]() Family {
	var zero T
	if zero.width() == 32 {
		return IPv4
	}
	return IPv6
}

// v4 is the 32-bit host integer of an IPv4 address.
type v4 uint32

func (v4) width() int        { return 32 }
func (v4) maxVal() v4        { return ^v4(0) }
func (u v4) and(m v4) v4     { return u & m }
func (u v4) or(m v4) v4      { return u | m }
func (u v4) not() v4         { return ^u }
func (u v4) addWrap(m v4) v4 { return u + m }

func (u v4) cmp(m v4) int {
	switch {
	case u < m:
		return -1
	case u > m:
		return 1
	}
	return 0
}

func (u v4) ones() int { return bits.OnesCount32(uint32(u)) }

func (u v4) shiftLeft(s uint) v4 {
	if s >= 32 {
		return 0
	}
	return u << s
}

func (v4) from64(i uint64) (v4, bool) {
	if i > math.MaxUint32 {
		return 0, false
	}
	return v4(i), true
}

func (v4) fromAddr(a netip.Addr) (v4, bool) {
	a = a.Unmap()
	if !a.Is4() {
		return 0, false
	}
	b := a.As4()
	return v4(binary.BigEndian.Uint32(b[:])), true
}

func (u v4) addr() netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(u))
	return netip.AddrFrom4(b)
}

// v6 is the 128-bit host integer of an IPv6 address.
type v6 struct {
	u uint128.Uint128
}

func (v6) width() int        { return 128 }
func (v6) maxVal() v6        { return v6{uint128.Max} }
func (u v6) and(m v6) v6     { return v6{u.u.And(m.u)} }
func (u v6) or(m v6) v6      { return v6{u.u.Or(m.u)} }
func (u v6) not() v6         { return v6{u.u.Xor(uint128.Max)} }
func (u v6) addWrap(m v6) v6 { return v6{u.u.AddWrap(m.u)} }
func (u v6) cmp(m v6) int    { return u.u.Cmp(m.u) }
func (u v6) ones() int       { return u.u.OnesCount() }

func (u v6) shiftLeft(s uint) v6 {
	if s >= 128 {
		return v6{}
	}
	return v6{u.u.Lsh(s)}
}

func (v6) from64(i uint64) (v6, bool) { return v6{uint128.From64(i)}, true }

func (v6) fromAddr(a netip.Addr) (v6, bool) {
	if !a.Is6() {
		return v6{}, false
	}
	b := a.As16()
	hi := binary.BigEndian.Uint64(b[:8])
	lo := binary.BigEndian.Uint64(b[8:])
	return v6{uint128.New(lo, hi)}, true
}

func (u v6) addr() netip.Addr {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.u.Lo)
	return netip.AddrFrom16(b)
}
