// Command bfpbench times the block floating-point FFT passes and checks
// their round-trip accuracy.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	algobfp "github.com/cwbudde/algo-bfp"
	"github.com/cwbudde/algo-bfp/internal/cpu"
	"github.com/cwbudde/algo-bfp/internal/fft"
	"github.com/cwbudde/algo-bfp/internal/fftypes"
	bm "github.com/cwbudde/algo-bfp/internal/math"
	"github.com/cwbudde/algo-bfp/internal/reference"
)

type benchResult struct {
	size     int
	mode     string
	strategy fftypes.PassStrategy
	nsPerOp  float64
}

func main() {
	var (
		sizeList     = flag.String("sizes", "64,1024,4096,32768", "comma-separated transform sizes")
		iters        = flag.Int("iters", 200, "benchmark iterations")
		warmup       = flag.Int("warmup", 5, "warmup iterations")
		seed         = flag.Int64("seed", 1, "rng seed")
		verbose      = flag.Bool("v", false, "debug logging")
		forceGeneric = flag.Bool("force-generic", false, "resolve the auto strategy to the generic passes")
		check        = flag.Bool("check", false, "verify round-trip error instead of timing")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *forceGeneric {
		f := cpu.DetectFeatures()
		f.ForceGeneric = true
		cpu.SetForcedFeatures(f)
	}

	features := cpu.DetectFeatures()
	logger.Debug("cpu features",
		"arch", features.Architecture,
		"simd", features.SIMDLevel(),
		"strategy", features.PassStrategy())

	sizes, err := parseSizes(*sizeList)
	if err != nil {
		logger.Error("bad -sizes", "err", err)
		os.Exit(2)
	}

	if *check {
		if err := checkSizes(context.Background(), logger, sizes, *seed); err != nil {
			logger.Error("accuracy check failed", "err", err)
			os.Exit(1)
		}

		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("iters=%d warmup=%d simd=%s\n", *iters, *warmup, features.SIMDLevel())
	fmt.Printf("%8s  %10s  %10s  %12s\n", "size", "mode", "passes", "ns/op")

	for _, n := range sizes {
		if err := algobfp.CheckFFTLength(n, false); err != nil {
			logger.Warn("skipping size", "size", n, "err", err)
			continue
		}

		results := benchmarkComplex(rnd, features, n, *iters, *warmup)
		if algobfp.CheckFFTLength(n, true) == nil {
			results = append(results, benchmarkReal(rnd, n, *iters, *warmup))
		}

		sort.Slice(results, func(i, j int) bool {
			return results[i].nsPerOp < results[j].nsPerOp
		})

		for _, res := range results {
			fmt.Printf("%8d  %10s  %10s  %12.1f\n", res.size, res.mode, res.strategy, res.nsPerOp)
		}
	}
}

func randomBlock(rnd *rand.Rand, n int) []fftypes.ComplexS32 {
	x := make([]fftypes.ComplexS32, n)
	for i := range x {
		x[i] = fftypes.ComplexS32{
			Re: int32(rnd.Int63n(1<<31) - 1<<30),
			Im: int32(rnd.Int63n(1<<31) - 1<<30),
		}
	}

	return x
}

func benchmarkComplex(rnd *rand.Rand, features cpu.Features, n, iters, warmup int) []benchResult {
	src := randomBlock(rnd, n)
	work := make([]fftypes.ComplexS32, n)

	strategies := []fftypes.PassStrategy{fftypes.PassGeneric, fftypes.PassTrivial}
	results := make([]benchResult, 0, len(strategies))

	for _, strategy := range strategies {
		passes := fft.SelectPassesWithStrategy(features, strategy)

		run := func() {
			copy(work, src)
			fft.Transform(work, 0, 1, false, passes)
		}

		for range warmup {
			run()
		}

		runtime.GC()

		start := time.Now()

		for range iters {
			run()
		}

		results = append(results, benchResult{
			size:     n,
			mode:     "complex",
			strategy: strategy,
			nsPerOp:  float64(time.Since(start).Nanoseconds()) / float64(iters),
		})
	}

	return results
}

func benchmarkReal(rnd *rand.Rand, n, iters, warmup int) benchResult {
	src := make([]int32, n)
	for i := range src {
		src[i] = int32(rnd.Int63n(1<<31) - 1<<30)
	}

	work := make([]int32, n)

	run := func() {
		copy(work, src)

		x := algobfp.NewVectorS32(work, 0)
		x.ForwardFFT()
	}

	for range warmup {
		run()
	}

	runtime.GC()

	start := time.Now()

	for range iters {
		run()
	}

	return benchResult{
		size:     n,
		mode:     "real",
		strategy: fftypes.PassAuto,
		nsPerOp:  float64(time.Since(start).Nanoseconds()) / float64(iters),
	}
}

// checkSizes runs a forward and inverse transform per size concurrently and
// fails when the round-trip error exceeds 2*log2(n)+4 LSB.
func checkSizes(ctx context.Context, logger *slog.Logger, sizes []int, seed int64) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, n := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := algobfp.CheckFFTLength(n, false); err != nil {
				return err
			}

			rnd := rand.New(rand.NewSource(seed + int64(n)))
			x := algobfp.NewComplexVectorS32(randomBlock(rnd, n), -30)
			want := reference.FromComplexS32(x.Data, x.Exp)

			x.ForwardFFT()
			x.InverseFFT()

			got := reference.FromComplexS32(x.Data, x.Exp)
			lsb := reference.MaxComplexError(got, want) / reference.LSB(x.Exp)
			tol := float64(2*bm.Log2(n) + 4)

			logger.Info("round trip", "size", n, "exp", x.Exp, "hr", x.HR, "err_lsb", lsb)

			if lsb > tol {
				return fmt.Errorf("size %d: error %.1f LSB exceeds %.0f", n, lsb, tol)
			}

			return nil
		})
	}

	return g.Wait()
}

func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", part)
		}

		out = append(out, n)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes in %q", list)
	}

	return out, nil
}
