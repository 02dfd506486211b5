package scoutdns

import (
	"context"
	"net"

	"github.com/miekg/dns"
)

// Client sends requests to a resolver that forwards the zone to the plugin
type Client struct {
	// Resolver is host:port, empty picks the first nameserver of resolv.conf
	Resolver string
	Zone     string
	DNS      *dns.Client
}

// SystemResolver returns the first nameserver configured in path
func SystemResolver(path string) (string, error) {
	conf, err := dns.ClientConfigFromFile(path)
	if err != nil {
		return "", err
	}
	if len(conf.Servers) == 0 {
		return "", ERR_QUERY_FAILED
	}
	return net.JoinHostPort(conf.Servers[0], conf.Port), nil
}

// Query ships a single request and returns the translated text. Truncated
// UDP answers are retried over TCP.
func (c *Client) Query(ctx context.Context, r Request) (string, error) {
	name, err := QueryName(r, c.Zone)
	if err != nil {
		return "", err
	}

	resolver := c.Resolver
	if resolver == "" {
		resolver, err = SystemResolver("/etc/resolv.conf")
		if err != nil {
			return "", err
		}
	}

	cl := c.DNS
	if cl == nil {
		cl = new(dns.Client)
	}

	m := new(dns.Msg)
	m.SetQuestion(name, dns.TypeTXT)
	m.SetEdns0(4096, false)

	resp, _, err := cl.ExchangeContext(ctx, m, resolver)
	if err != nil {
		return "", err
	}
	if resp.Truncated {
		tcp := &dns.Client{Net: "tcp", Timeout: cl.Timeout}
		resp, _, err = tcp.ExchangeContext(ctx, m, resolver)
		if err != nil {
			return "", err
		}
	}

	return ParseAnswer(resp)
}
