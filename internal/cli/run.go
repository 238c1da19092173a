package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/netip"
	"slices"

	"github.com/Flarenzy/ipnets/ipnet"
)

// warnListSize is the network size above which list logs a warning when no
// limit is set.
var warnListSize = big.NewInt(1 << 16)

type runner struct {
	logger *slog.Logger
	out    io.Writer
	cfg    Config
}

// Run executes one command against the library and writes the result to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	r := &runner{
		logger: slog.Default(),
		out:    out,
		cfg:    cfg,
	}

	switch cfg.Command {
	case "info":
		return r.runInfo()
	case "contains":
		return r.runContains()
	case "subnet":
		return r.runSubnet()
	case "mask":
		return r.runMask()
	case "sort":
		return r.runSort()
	case "list":
		return r.runList(ctx)
	}
	return fmt.Errorf("unknown command %q", cfg.Command)
}

func (r *runner) encode(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *runner) runInfo() error {
	if len(r.cfg.Args) == 0 {
		return errors.New("info: expected at least one network")
	}
	views := make([]NetworkView, 0, len(r.cfg.Args))
	for _, arg := range r.cfg.Args {
		n, err := ipnet.Parse(arg)
		if err != nil {
			return err
		}
		views = append(views, networkToView(n))
	}
	if r.cfg.Output == "json" {
		return r.encode(views)
	}
	for _, v := range views {
		fmt.Fprintf(r.out, "%s\tfamily=%s netmask=%s size=%s first=%s last=%s\n",
			v.Network, v.Family, v.Netmask, v.Size, v.First, v.Last)
	}
	return nil
}

func (r *runner) runContains() error {
	if len(r.cfg.Args) < 2 {
		return errors.New("contains: expected a network and at least one address")
	}
	n, err := ipnet.Parse(r.cfg.Args[0])
	if err != nil {
		return err
	}
	views := make([]MembershipView, 0, len(r.cfg.Args)-1)
	for _, arg := range r.cfg.Args[1:] {
		ip, err := netip.ParseAddr(arg)
		if err != nil {
			return fmt.Errorf("%w: %q", ipnet.ErrParse, arg)
		}
		in, err := n.Contains(ip)
		if err != nil {
			return err
		}
		usable, err := n.Usable(ip)
		if err != nil {
			return err
		}
		views = append(views, MembershipView{
			Network:  n.String(),
			IP:       ip.String(),
			Contains: in,
			Usable:   usable,
		})
	}
	if r.cfg.Output == "json" {
		return r.encode(views)
	}
	for _, v := range views {
		fmt.Fprintf(r.out, "%s in %s: %v (usable: %v)\n", v.IP, v.Network, v.Contains, v.Usable)
	}
	return nil
}

func (r *runner) runSubnet() error {
	if len(r.cfg.Args) != 2 {
		return errors.New("subnet: expected exactly two networks")
	}
	a, err := ipnet.Parse(r.cfg.Args[0])
	if err != nil {
		return err
	}
	b, err := ipnet.Parse(r.cfg.Args[1])
	if err != nil {
		return err
	}
	in, err := ipnet.Subset(a, b)
	if err != nil {
		return err
	}
	if r.cfg.Output == "json" {
		return r.encode(SubsetView{Network: a.String(), Of: b.String(), Subset: in})
	}
	fmt.Fprintf(r.out, "%s in %s: %v\n", a, b, in)
	return nil
}

func (r *runner) runMask() error {
	if len(r.cfg.Args) != 2 {
		return errors.New("mask: expected an address and a netmask")
	}
	addrText, maskText := r.cfg.Args[0], r.cfg.Args[1]
	addr, err := netip.ParseAddr(addrText)
	if err != nil {
		return fmt.Errorf("%w: %q", ipnet.ErrParse, addrText)
	}

	var n ipnet.Net
	if addr.Is4() {
		n4, err := ipnet.ParseIPv4NetMask(addrText, maskText)
		if err != nil {
			return err
		}
		n = n4
	} else {
		n6, err := ipnet.ParseIPv6NetMask(addrText, maskText)
		if err != nil {
			return err
		}
		n = n6
	}

	if r.cfg.Output == "json" {
		return r.encode(networkToView(n))
	}
	fmt.Fprintln(r.out, n)
	return nil
}

func (r *runner) runSort() error {
	if len(r.cfg.Args) == 0 {
		return errors.New("sort: expected at least one network")
	}
	nets := make([]ipnet.Net, 0, len(r.cfg.Args))
	for _, arg := range r.cfg.Args {
		n, err := ipnet.Parse(arg)
		if err != nil {
			return err
		}
		nets = append(nets, n)
	}
	for _, n := range nets[1:] {
		if n.Family() != nets[0].Family() {
			return fmt.Errorf("%w: sort wants a single family", ipnet.ErrFamilyMismatch)
		}
	}

	slices.SortFunc(nets, func(a, b ipnet.Net) int {
		c, _ := ipnet.Compare(a, b) // same family, checked above
		return c
	})

	if r.cfg.Output == "json" {
		out := make([]string, 0, len(nets))
		for _, n := range nets {
			out = append(out, n.String())
		}
		return r.encode(out)
	}
	for _, n := range nets {
		fmt.Fprintln(r.out, n)
	}
	return nil
}

func (r *runner) runList(ctx context.Context) error {
	if len(r.cfg.Args) != 1 {
		return errors.New("list: expected exactly one network")
	}
	n, err := ipnet.Parse(r.cfg.Args[0])
	if err != nil {
		return err
	}
	if r.cfg.Limit == 0 && n.Size().Cmp(warnListSize) > 0 {
		r.logger.WarnContext(ctx, "listing a large network without a limit",
			"network", n.String(), "size", n.Size().String())
	}

	var addrs []string
	count := uint64(0)
	for a := range n.Addresses() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.cfg.Output == "json" {
			addrs = append(addrs, a.String())
		} else {
			fmt.Fprintln(r.out, a)
		}
		count++
		if r.cfg.Limit > 0 && count == r.cfg.Limit {
			break
		}
	}
	if r.cfg.Output == "json" {
		return r.encode(addrs)
	}
	return nil
}
