package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpicht/scoutcode/lib/cipher"
	"github.com/jpicht/scoutcode/lib/scout"
)

var errUsage = errors.New("invalid command")

func main() {
	err := runCLI(os.Args, os.Stdin, os.Stdout)
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	if errors.Is(err, errUsage) {
		os.Exit(1)
	}
	os.Exit(2)
}

func runCLI(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "encode", "decode":
		op, _ := scout.ParseOp(args[1])
		return translateCommand(op, args[2:], stdin, stdout)
	case "list":
		fmt.Fprintln(stdout, strings.Join(scout.Names(), "\n"))
		return nil
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func translateCommand(op scout.Op, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet(op.String(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var opts scout.Options
	fs.BoolVar(&opts.Strict, "strict", false, "fail on unknown symbols")
	fs.BoolVar(&opts.Lenient, "lenient", false, "copy unknown symbols to the output")
	lower := fs.Bool("lower", false, "lower case convention for murcielago")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}
	if *lower {
		opts.Case = cipher.Lower
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("%w: scout %s: cipher required", errUsage, op)
	}
	c, err := scout.Configure(rest[0], opts)
	if err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	var message string
	if len(rest) > 1 {
		message = strings.Join(rest[1:], " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}
		message = strings.TrimRight(string(data), "\r\n")
	}

	out, err := scout.Run(c, op, message)
	if err != nil {
		return fmt.Errorf("%s failed: %w", op, err)
	}
	fmt.Fprintln(stdout, out)
	return nil
}

func usageError() error {
	printUsage()
	return errUsage
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <encode|decode> [flags] <cipher> [message...]\n", prog)
	fmt.Fprintf(os.Stderr, "       %s list\n", prog)
	fmt.Fprintf(os.Stderr, "       %s repl\n", prog)
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -strict")
	fmt.Fprintln(os.Stderr, "    fail on unknown symbols")
	fmt.Fprintln(os.Stderr, "  -lenient")
	fmt.Fprintln(os.Stderr, "    copy unknown symbols to the output")
	fmt.Fprintln(os.Stderr, "  -lower")
	fmt.Fprintln(os.Stderr, "    lower case convention for murcielago")
	fmt.Fprintln(os.Stderr, "The message is read from stdin when omitted.")
}
