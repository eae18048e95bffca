// Package main runs the atomicbits stress engine against every word width
// built for the current target and reports the results.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/hupe1980/atomicbits"
	"github.com/hupe1980/atomicbits/internal/stress"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	def := stress.NewConfig(stress.FromEnv())

	fs := flag.NewFlagSet("atomicbits", flag.ContinueOnError)
	workers := fs.Int("workers", def.Workers, "concurrent workers per word kind")
	iterations := fs.Int("iterations", def.Iterations, "bit operations per worker")
	seed := fs.Uint64("seed", def.Seed, "random seed")
	words := fs.Int("words", def.Words, "shared words per word kind")
	widths := fs.String("widths", "", "comma-separated widths (8,16,32,64,ptr); default all available")
	ordering := fs.String("ordering", def.Ordering.String(), "memory ordering (relaxed, acquire, release, acqrel, seqcst)")
	logFormat := fs.String("log-format", "text", "log format (text, json)")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(*logFormat, *logLevel)
	if err != nil {
		return err
	}

	ord, ok := atomicbits.ParseOrdering(*ordering)
	if !ok {
		return fmt.Errorf("unknown ordering %q", *ordering)
	}

	ws, err := parseWidths(*widths)
	if err != nil {
		return err
	}

	printPlatform(out)

	report, err := stress.Run(ctx, stress.NewConfig(
		stress.WithWorkers(*workers),
		stress.WithIterations(*iterations),
		stress.WithSeed(*seed),
		stress.WithWords(*words),
		stress.WithWidths(ws...),
		stress.WithOrdering(ord),
		stress.WithLogger(logger),
	))
	if report != nil {
		printReport(out, report)
	}
	return err
}

func newLogger(format, level string) (*atomicbits.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	switch format {
	case "text":
		return atomicbits.NewTextLogger(lvl), nil
	case "json":
		return atomicbits.NewJSONLogger(lvl), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func parseWidths(s string) ([]atomicbits.Width, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var ws []atomicbits.Width
	for _, part := range strings.Split(s, ",") {
		w, ok := atomicbits.ParseWidth(part)
		if !ok {
			return nil, fmt.Errorf("unknown width %q", part)
		}
		if !atomicbits.HasWidth(w) {
			return nil, fmt.Errorf("width %s: %w", w, atomicbits.ErrWidthUnavailable)
		}
		ws = append(ws, w)
	}
	return ws, nil
}

func printPlatform(out io.Writer) {
	names := make([]string, 0, len(atomicbits.Widths()))
	for _, w := range atomicbits.Widths() {
		names = append(names, fmt.Sprintf("%s(%d)", w, w.Bits()))
	}
	fmt.Fprintf(out, "=== atomicbits platform ===\n")
	fmt.Fprintf(out, "GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "Widths: %s\n", strings.Join(names, " "))
	fmt.Fprintf(out, "Cache line: %d bytes\n", atomicbits.CacheLineSize())
	fmt.Fprintf(out, "===========================\n\n")
}

func printReport(out io.Writer, r *stress.Report) {
	fmt.Fprintf(out, "%-8s %5s %12s %10s %12s\n", "KIND", "BITS", "OPS", "MISMATCH", "DURATION")
	for _, w := range r.Words {
		fmt.Fprintf(out, "%-8s %5d %12d %10d %12s\n", w.Kind, w.Bits, w.Ops, w.Mismatches, w.Duration)
	}
	status := "OK"
	if r.Mismatches() > 0 {
		status = "FAIL"
	}
	fmt.Fprintf(out, "\n%s: %d ops, %d mismatches in %s\n", status, r.Ops(), r.Mismatches(), r.Duration)
}
