package stress

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/atomicbits"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// progressInterval throttles per-worker progress logs.
const progressInterval = time.Second

type op uint8

const (
	opGet op = iota
	opSet
	opReset
	opToggle
	opSwap
	numOps
)

// WordReport summarizes the run of one word kind.
type WordReport struct {
	Kind       string
	Width      atomicbits.Width
	Bits       int
	Ops        uint64
	Mismatches uint64
	Duration   time.Duration
}

// Report summarizes a stress run.
type Report struct {
	Words    []WordReport
	Duration time.Duration
}

// Ops returns the total number of bit operations performed.
func (r *Report) Ops() uint64 {
	var n uint64
	for _, w := range r.Words {
		n += w.Ops
	}
	return n
}

// Mismatches returns the total number of disagreements with the model.
func (r *Report) Mismatches() uint64 {
	var n uint64
	for _, w := range r.Words {
		n += w.Mismatches
	}
	return n
}

// Run exercises every word kind of the configured widths.
//
// It returns an error wrapping ErrMismatch if any result disagrees with the
// reference model, and ctx.Err() if ctx is canceled. The report is returned
// in both cases.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	log := cfg.Logger.WithOrdering(cfg.Ordering)
	report := &Report{}
	start := time.Now()

	var err error
	for _, w := range cfg.Widths {
		for i, k := range kindsOf(w) {
			var wr WordReport
			wr, err = runKind(ctx, cfg, k, uint64(w)<<8|uint64(i), log.WithWidth(w))
			report.Words = append(report.Words, wr)
			if err != nil {
				err = fmt.Errorf("stress: %s: %w", k.name, err)
				break
			}
		}
		if err != nil {
			break
		}
	}
	report.Duration = time.Since(start)

	if err == nil {
		if m := report.Mismatches(); m > 0 {
			err = fmt.Errorf("%w: %d mismatches", ErrMismatch, m)
		}
	}
	log.LogRun(ctx, len(report.Words), report.Ops(), report.Mismatches(), report.Duration, err)
	return report, err
}

func runKind(ctx context.Context, cfg Config, k kind, stream uint64, log *atomicbits.Logger) (WordReport, error) {
	start := time.Now()
	ord := cfg.Ordering

	words := make([]bitWord, cfg.Words)
	for i := range words {
		words[i] = k.new()
	}
	n := words[0].BitLen()
	total := cfg.Words * n

	wr := WordReport{Kind: k.name, Width: k.width, Bits: n}

	// Random initial contents, written before any worker starts.
	rng := rand.New(rand.NewPCG(cfg.Seed, stream))
	for p := 0; p < total; p++ {
		words[p/n].SwapBit(p%n, rng.IntN(2) == 1, ord)
	}

	workers := make([]*worker, cfg.Workers)
	for id := range workers {
		wk := &worker{
			id:     id,
			words:  words,
			bitLen: n,
			rng:    rand.New(rand.NewPCG(cfg.Seed^uint64(id+1), stream)),
		}
		for p := id; p < total; p += cfg.Workers {
			wk.owned = append(wk.owned, p)
			wk.model = append(wk.model, words[p/n].GetBit(p%n, ord))
		}
		workers[id] = wk
	}

	progress := &rate.Sometimes{Interval: progressInterval}
	g, gctx := errgroup.WithContext(ctx)
	for _, wk := range workers {
		g.Go(func() error {
			return wk.run(gctx, cfg.Iterations, ord, progress, log)
		})
	}
	err := g.Wait()

	for _, wk := range workers {
		wr.Ops += wk.ops
		wr.Mismatches += wk.mismatches
	}
	if err != nil {
		wr.Duration = time.Since(start)
		return wr, err
	}

	// Reconcile the final words with the union of the workers' models.
	expected := make([]*roaring.Bitmap, len(workers))
	for i, wk := range workers {
		expected[i] = wk.expected()
	}
	observed := roaring.New()
	for p := 0; p < total; p++ {
		if words[p/n].GetBit(p%n, ord) {
			observed.Add(uint32(p))
		}
	}
	diff := roaring.Xor(observed, roaring.FastOr(expected...))
	wr.Mismatches += diff.GetCardinality()
	wr.Duration = time.Since(start)

	log.LogWord(ctx, k.name, wr.Ops, wr.Mismatches, wr.Duration)
	return wr, nil
}

type worker struct {
	id     int
	words  []bitWord
	bitLen int
	owned  []int  // global bit positions, word = p / bitLen
	model  []bool // expected value of owned[i]
	rng    *rand.Rand

	ops        uint64
	mismatches uint64
}

func (w *worker) run(ctx context.Context, iterations int, ord atomicbits.Ordering, progress *rate.Sometimes, log *atomicbits.Logger) error {
	if len(w.owned) == 0 {
		return nil
	}
	for range iterations {
		if err := ctx.Err(); err != nil {
			return err
		}

		i := w.rng.IntN(len(w.owned))
		word, bit := w.words[w.owned[i]/w.bitLen], w.owned[i]%w.bitLen
		want := w.model[i]

		var got bool
		switch op(w.rng.IntN(int(numOps))) {
		case opGet:
			got = word.GetBit(bit, ord)
		case opSet:
			got = word.SetBit(bit, ord)
			w.model[i] = true
		case opReset:
			got = word.ResetBit(bit, ord)
			w.model[i] = false
		case opToggle:
			got = word.ToggleBit(bit, ord)
			w.model[i] = !want
		case opSwap:
			v := w.rng.IntN(2) == 1
			got = word.SwapBit(bit, v, ord)
			w.model[i] = v
		}

		w.ops++
		if got != want {
			w.mismatches++
		}

		progress.Do(func() {
			log.WithWorker(w.id).DebugContext(ctx, "stress progress",
				"ops", w.ops,
				"mismatches", w.mismatches,
			)
		})
	}
	return nil
}

// expected returns the owned positions the model holds as set.
func (w *worker) expected() *roaring.Bitmap {
	bm := roaring.New()
	for i, set := range w.model {
		if set {
			bm.Add(uint32(w.owned[i]))
		}
	}
	return bm
}
