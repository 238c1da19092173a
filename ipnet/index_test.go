package ipnet

import (
	"errors"
	"net/netip"
	"testing"
)

func TestAtBoundaries(t *testing.T) {
	n := MustParseIPv4Net("10.0.0.0/30") // 4 addresses

	first, err := n.At(1)
	if err != nil {
		t.Fatalf("At(1): %v", err)
	}
	if first != netip.MustParseAddr("10.0.0.0") {
		t.Fatalf("At(1) = %s, want 10.0.0.0", first)
	}

	last, err := n.At(4)
	if err != nil {
		t.Fatalf("At(4): %v", err)
	}
	if last != netip.MustParseAddr("10.0.0.3") {
		t.Fatalf("At(4) = %s, want 10.0.0.3", last)
	}

	for _, i := range []uint64{0, 5} {
		if _, err := n.At(i); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("At(%d): expected ErrOutOfRange, got %v", i, err)
		}
	}
}

func TestAtCatchesHostIntegerWrap(t *testing.T) {
	// The last /30 of the IPv4 space: index 5 wraps past 255.255.255.255.
	n := MustParseIPv4Net("255.255.255.252/30")
	if _, err := n.At(5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}

	// An offset wider than the family's host integer.
	small := MustParseIPv4Net("10.0.0.0/24")
	if _, err := small.At(1 << 33); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestAtIPv6(t *testing.T) {
	n := MustParseIPv6Net("2001:db8::/126")
	got, err := n.At(4)
	if err != nil {
		t.Fatalf("At(4): %v", err)
	}
	if got != netip.MustParseAddr("2001:db8::3") {
		t.Fatalf("At(4) = %s, want 2001:db8::3", got)
	}
	if _, err := n.At(5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}

	wide := MustParseIPv6Net("2001:db8::/64")
	deep, err := wide.At(1 << 62) // well past any 32-bit offset
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if deep != netip.MustParseAddr("2001:db8::3fff:ffff:ffff:ffff") {
		t.Fatalf("At = %s", deep)
	}
}

func TestSlice(t *testing.T) {
	n := MustParseIPv4Net("10.0.0.0/30")

	addrs, err := n.Slice(1, 4)
	if err != nil {
		t.Fatalf("Slice(1, 4): %v", err)
	}
	want := []string{"10.0.0.0", "10.0.0.1", "10.0.0.2", "10.0.0.3"}
	if len(addrs) != len(want) {
		t.Fatalf("Slice(1, 4) returned %d addresses, want %d", len(addrs), len(want))
	}
	for i, a := range addrs {
		if a.String() != want[i] {
			t.Fatalf("addrs[%d] = %s, want %s", i, a, want[i])
		}
	}

	if _, err := n.Slice(3, 5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Slice(3, 5): expected ErrOutOfRange, got %v", err)
	}

	empty, err := n.Slice(4, 1)
	if err != nil {
		t.Fatalf("Slice(4, 1): %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("Slice(4, 1) returned %d addresses, want none", len(empty))
	}
}

func TestAddressesYieldsWholeNetwork(t *testing.T) {
	n := MustParseIPv4Net("10.0.0.0/30")

	var got []string
	for a := range n.Addresses() {
		got = append(got, a.String())
	}
	want := []string{"10.0.0.0", "10.0.0.1", "10.0.0.2", "10.0.0.3"}
	if len(got) != len(want) {
		t.Fatalf("iterated %d addresses, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("address[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestAddressesIsRestartable(t *testing.T) {
	n := MustParseIPv6Net("2001:db8::/126")
	seq := n.Addresses()

	count := 0
	for range seq {
		count++
	}
	for range seq {
		count++
	}
	if count != 8 {
		t.Fatalf("two passes yielded %d addresses, want 8", count)
	}
}

func TestAddressesStopsOnBreak(t *testing.T) {
	n := MustParseIPv4Net("0.0.0.0/0") // far too large to walk

	count := 0
	for range n.Addresses() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("yielded %d addresses before break, want 3", count)
	}
}

func TestAddressesCoversFullWidthNetworkEnd(t *testing.T) {
	// A network ending at the top of the address space must terminate
	// instead of wrapping around to 0.0.0.0.
	n := MustParseIPv4Net("255.255.255.252/30")

	count := 0
	var last netip.Addr
	for a := range n.Addresses() {
		count++
		last = a
	}
	if count != 4 {
		t.Fatalf("iterated %d addresses, want 4", count)
	}
	if last != netip.MustParseAddr("255.255.255.255") {
		t.Fatalf("last address = %s, want 255.255.255.255", last)
	}
}
