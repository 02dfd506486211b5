package main

import (
	"github.com/coredns/coredns/core/dnsserver"
	"github.com/coredns/coredns/coremain"

	_ "github.com/coredns/coredns/core/plugin"
	_ "github.com/jpicht/scoutcode/lib/scoutdns"
)

// scout answers before the forwarding plugins get a chance
func init() {
	for i, d := range dnsserver.Directives {
		if d == "file" {
			dnsserver.Directives = append(dnsserver.Directives[:i], append([]string{"scout"}, dnsserver.Directives[i:]...)...)
			return
		}
	}
	dnsserver.Directives = append(dnsserver.Directives, "scout")
}

func main() {
	coremain.Run()
}
