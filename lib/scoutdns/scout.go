package scoutdns

import (
	"context"
	"strconv"
	"strings"

	"github.com/coredns/caddy"
	"github.com/coredns/coredns/core/dnsserver"
	"github.com/coredns/coredns/plugin"
	clog "github.com/coredns/coredns/plugin/pkg/log"
	"github.com/coredns/coredns/request"
	"github.com/jpicht/scoutcode/lib/scout"
	"github.com/miekg/dns"
)

const pluginName = "scout"

var log = clog.NewWithPlugin(pluginName)

// Scout implements a coredns plugin that answers TXT queries below its zone
// with the translation of the request encoded in the query name
type Scout struct {
	Next  plugin.Handler
	zone  string
	cache *answerCache
}

// New creates the plugin for zone; a cacheSize of 0 disables the cache
func New(zone string, cacheSize int) (*Scout, error) {
	s := &Scout{zone: dns.Fqdn(strings.ToLower(zone))}
	if cacheSize > 0 {
		c, err := newAnswerCache(cacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = c
	}
	return s, nil
}

func (s Scout) Name() string {
	return pluginName
}

// Zone is the fully qualified zone served by the plugin
func (s Scout) Zone() string {
	return s.zone
}

func reply(w dns.ResponseWriter, r *dns.Msg, answer ...dns.RR) (int, error) {
	m := new(dns.Msg)
	m.SetReply(r)
	m.Authoritative = true
	m.Answer = answer

	w.WriteMsg(m)

	return dns.RcodeSuccess, nil
}

// negative answers are cached for a minute
const negativeTTL = 60

// soa is the synthetic start of authority sent with NODATA answers
func (s Scout) soa() *dns.SOA {
	return &dns.SOA{
		Hdr:     dns.RR_Header{Name: s.zone, Rrtype: dns.TypeSOA, Class: dns.ClassINET, Ttl: negativeTTL},
		Ns:      "ns." + s.zone,
		Mbox:    "hostmaster." + s.zone,
		Serial:  1,
		Refresh: 7200,
		Retry:   1800,
		Expire:  86400,
		Minttl:  negativeTTL,
	}
}

func (s Scout) noData(w dns.ResponseWriter, r *dns.Msg) (int, error) {
	m := new(dns.Msg)
	m.SetReply(r)
	m.Authoritative = true
	m.Ns = []dns.RR{s.soa()}

	w.WriteMsg(m)

	return dns.RcodeSuccess, nil
}

// ServeDNS decodes the request from the query name and answers with the
// translation. Everything outside the zone is passed on.
func (s Scout) ServeDNS(ctx context.Context, w dns.ResponseWriter, r *dns.Msg) (int, error) {
	state := request.Request{W: w, Req: r}

	payload, ok := s.payload(state.Name())
	if !ok {
		return plugin.NextOrFailure(s.Name(), s.Next, ctx, w, r)
	}

	// the apex and other types get NODATA
	if payload == "" || state.QType() != dns.TypeTXT {
		return s.noData(w, r)
	}

	ans, err := s.Answer(payload)
	if err != nil {
		log.Warningf("Invalid payload %q: %s", payload, err)
		return dns.RcodeFormatError, plugin.Error(s.Name(), err)
	}

	return reply(w, r, ans.RR(state.QName()))
}

// Answer decodes and translates a payload. Only undecodable payloads are
// errors; translation failures are reported inside the answer.
func (s Scout) Answer(payload string) (Answer, error) {
	if ans, ok := s.cache.get(payload); ok {
		return ans, nil
	}

	req, err := Decode(payload)
	if err != nil {
		return Answer{}, err
	}

	ans := answerFor(translate(req))
	log.Debugf("%s %s %q: ok=%t", req.Op, req.Cipher, req.Message, ans.OK)
	s.cache.add(payload, ans)
	return ans, nil
}

func translate(req *Request) (string, error) {
	c, err := scout.Configure(req.Cipher, req.Options)
	if err != nil {
		return "", err
	}
	return scout.Run(c, req.Op, req.Message)
}

func (s Scout) payload(name string) (string, bool) {
	if !dns.IsSubDomain(s.zone, name) {
		return "", false
	}
	if name == s.zone {
		return "", true
	}
	return strings.TrimSuffix(name[0:len(name)-len(s.zone)], "."), true
}

func init() { plugin.Register(pluginName, setup) }

func setup(c *caddy.Controller) error {
	var (
		s   *Scout
		err error
	)

	for c.Next() {
		// syntax: scout <zone> [cache size]
		if !c.NextArg() {
			return plugin.Error(pluginName, c.ArgErr())
		}
		zone := c.Val()

		size := defaultCacheSize
		if c.NextArg() {
			size, err = strconv.Atoi(c.Val())
			if err != nil || size < 0 {
				return plugin.Error(pluginName, c.Errf("invalid cache size %q", c.Val()))
			}
		}
		if c.NextArg() {
			return plugin.Error(pluginName, c.ArgErr())
		}

		s, err = New(zone, size)
		if err != nil {
			return plugin.Error(pluginName, err)
		}
		log.Infof("Serving %s (cache %d)", s.zone, size)
	}

	dnsserver.GetConfig(c).AddPlugin(func(next plugin.Handler) plugin.Handler {
		s.Next = next
		return s
	})

	return nil
}
