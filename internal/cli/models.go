package cli

import "github.com/Flarenzy/ipnets/ipnet"

// NetworkView is the JSON shape printed for a single network.
type NetworkView struct {
	Network string `json:"network"`
	Family  string `json:"family"`
	Bits    int    `json:"bits"`
	Netmask string `json:"netmask"`
	Size    string `json:"size"`
	First   string `json:"first"`
	Last    string `json:"last"`
}

// MembershipView reports one address checked against a network.
type MembershipView struct {
	Network  string `json:"network"`
	IP       string `json:"ip"`
	Contains bool   `json:"contains"`
	Usable   bool   `json:"usable"`
}

// SubsetView reports whether one network nests inside another.
type SubsetView struct {
	Network string `json:"network"`
	Of      string `json:"of"`
	Subset  bool   `json:"subset"`
}

func networkToView(n ipnet.Net) NetworkView {
	return NetworkView{
		Network: n.String(),
		Family:  n.Family().String(),
		Bits:    n.Bits(),
		Netmask: n.Mask().String(),
		Size:    n.Size().String(),
		First:   n.First().String(),
		Last:    n.Last().String(),
	}
}
