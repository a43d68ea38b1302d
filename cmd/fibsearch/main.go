// Command fibsearch runs Fibonacci searches and prints Fibonacci numbers.
//
// Usage:
//
//	fibsearch [-json] [-codec name] [-v] fib K
//	fibsearch [-json] [-codec name] [-v] search -target V v1 v2 ...
//	fibsearch [-json] [-codec name] [-v] explain -target V v1 v2 ...
//	fibsearch [-v] selftest
//
// Negative values must follow "--":
//
//	fibsearch search -target=-5 -- -10 -5 0 3
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/hupe1980/fibsearch"
	"github.com/hupe1980/fibsearch/codec"
	"github.com/hupe1980/fibsearch/fibonacci"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cli struct {
	stdout io.Writer
	stderr io.Writer
	codec  codec.Codec // nil for text output
	engine *fibsearch.Engine
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fibsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	asJSON := fs.Bool("json", false, "machine-readable output")
	codecName := fs.String("codec", codec.Default.Name(), "codec used with -json (json, go-json)")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	c := &cli{stdout: stdout, stderr: stderr}

	if *asJSON {
		cc, ok := codec.ByName(*codecName)
		if !ok {
			fmt.Fprintf(stderr, "unknown codec %q\n", *codecName)
			return 2
		}
		c.codec = cc
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := fibsearch.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	c.engine = fibsearch.NewEngine(fibsearch.WithLogger(logger))

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	var err error
	switch cmd, rest := fs.Arg(0), fs.Args()[1:]; cmd {
	case "fib":
		err = c.fib(rest)
	case "search":
		err = c.search(rest, false)
	case "explain":
		err = c.search(rest, true)
	case "selftest":
		err = c.selftest()
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, fibsearch.ErrNotFound):
		return 1
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
}

func (c *cli) fib(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: fib K")
	}

	k, err := fibonacci.ParseIndex(args[0])
	if err != nil {
		return err
	}

	v, err := c.engine.Generator().Big(k)
	if err != nil {
		return err
	}

	return c.print(struct {
		K     int    `json:"k"`
		Value string `json:"value"`
	}{k, v.String()}, v.String())
}

func (c *cli) search(args []string, explain bool) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	target := fs.Int("target", 0, "value to search for")

	if err := fs.Parse(args); err != nil {
		return err
	}

	values := make([]int, fs.NArg())
	for i, a := range fs.Args() {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
	}
	if !slices.IsSorted(values) {
		return errors.New("values must be sorted ascending")
	}

	x := c.engine.Explain(len(values), fibsearch.Comparator(values, *target))

	if explain {
		if err := c.explain(x); err != nil {
			return err
		}
	} else if err := c.print(struct {
		Index int `json:"index"`
	}{x.Index}, strconv.Itoa(x.Index)); err != nil {
		return err
	}

	if !x.Found() {
		return fmt.Errorf("%w: %d", fibsearch.ErrNotFound, *target)
	}
	return nil
}

func (c *cli) explain(x *fibsearch.Explanation) error {
	if c.codec != nil {
		return c.print(x, "")
	}

	fmt.Fprintf(c.stdout, "length=%d level=%d\n", x.Length, x.InitialLevel)
	for _, s := range x.Steps {
		fmt.Fprintf(c.stdout, "level=%d offset=%d probe=%d %s\n", s.Level, s.Offset, s.Probe, s.Outcome)
	}
	fmt.Fprintf(c.stdout, "index=%d\n", x.Index)
	return nil
}

func (c *cli) print(v any, text string) error {
	if c.codec == nil {
		_, err := fmt.Fprintln(c.stdout, text)
		return err
	}

	b, err := c.codec.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.stdout, string(b))
	return err
}
