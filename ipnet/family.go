package ipnet

// Family identifies an IP address family.
type Family uint8

const (
	IPv4 Family = iota + 1
	IPv6
)

// Width returns the address width of the family in bits.
func (f Family) Width() int {
	switch f {
	case IPv4:
		return 32
	case IPv6:
		return 128
	}
	return 0
}

func (f Family) String() string {
	switch f {
	case IPv4:
		return "ipv4"
	case IPv6:
		return "ipv6"
	default:
		return "unknown"
	}
}
