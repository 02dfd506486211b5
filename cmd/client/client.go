package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/jpicht/scoutcode/lib/cipher"
	"github.com/jpicht/scoutcode/lib/scout"
	"github.com/jpicht/scoutcode/lib/scoutdns"
	"github.com/miekg/dns"
)

const timeout = 5 * time.Second

type config struct {
	resolver string
	zone     string
	verbose  bool
	options  scout.Options
}

func check(err error) {
	if err != nil {
		failed(err)
	}
}

func failed(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(2)
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Syntax:")
	fmt.Fprintf(os.Stderr, "    %s [flags] <encode|decode> <cipher> <message...>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Ciphers: %s\n", strings.Join(scout.Names(), ", "))
	fs.PrintDefaults()
}

// loadConfig reads .env (if present) and the environment, flags win
func loadConfig(args []string) (*config, []string, error) {
	_ = godotenv.Load()

	cfg := &config{
		resolver: os.Getenv("SCOUT_RESOLVER"),
		zone:     os.Getenv("SCOUT_ZONE"),
	}

	var lower bool
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.Usage = func() { usage(fs) }
	fs.StringVar(&cfg.resolver, "resolver", cfg.resolver, "resolver host:port (default: first nameserver of /etc/resolv.conf, env SCOUT_RESOLVER)")
	fs.StringVar(&cfg.zone, "zone", cfg.zone, "zone served by the scout plugin (env SCOUT_ZONE)")
	fs.BoolVar(&cfg.verbose, "v", false, "print the query name")
	fs.BoolVar(&cfg.options.Strict, "strict", false, "fail on unknown symbols")
	fs.BoolVar(&cfg.options.Lenient, "lenient", false, "copy unknown symbols to the output")
	fs.BoolVar(&lower, "lower", false, "lower case convention for murcielago")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if lower {
		cfg.options.Case = cipher.Lower
	}

	if cfg.zone == "" {
		return nil, nil, errors.New("no zone configured")
	}
	if fs.NArg() < 3 {
		fs.Usage()
		return nil, nil, errors.New("missing arguments")
	}
	return cfg, fs.Args(), nil
}

func main() {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	op, err := scout.ParseOp(args[0])
	check(err)

	req := scoutdns.Request{
		Op:      op,
		Cipher:  args[1],
		Message: strings.Join(args[2:], " "),
		Options: cfg.options,
	}

	if cfg.verbose {
		name, err := scoutdns.QueryName(req, cfg.zone)
		check(err)
		fmt.Fprintln(os.Stderr, "\t"+name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c := &scoutdns.Client{
		Resolver: cfg.resolver,
		Zone:     cfg.zone,
		DNS:      &dns.Client{Timeout: timeout},
	}
	text, err := c.Query(ctx, req)
	check(err)

	fmt.Println(text)
}
