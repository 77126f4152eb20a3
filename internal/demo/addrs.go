// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package demo

import (
	"fmt"
	"io"

	"github.com/DataDog/dllist-go/dllist"
	"github.com/pkg/errors"
	"inet.af/netaddr"
)

// Addrs parses every address, pushes them at the back of a list, and prints
// them forward then backward. It fails on the first address that cannot be
// parsed, before anything is printed.
func Addrs(w io.Writer, addrs []string) error {
	list := dllist.New[netaddr.IP]()
	for _, addr := range addrs {
		ip, err := netaddr.ParseIP(addr)
		if err != nil {
			return errors.Wrapf(err, "invalid address %q", addr)
		}
		list.PushBack(ip)
	}

	fmt.Fprintf(w, "size: %d\n", list.Size())
	for ip := range list.All() {
		fmt.Fprintf(w, "forward: %s (%s)\n", ip, family(ip))
	}
	for ip := range list.Backward() {
		fmt.Fprintf(w, "backward: %s\n", ip)
	}
	return nil
}

func family(ip netaddr.IP) string {
	if ip.Is4() || ip.Is4in6() {
		return "ipv4"
	}
	return "ipv6"
}
