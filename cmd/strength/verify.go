package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"strings"
	"time"

	"github.com/google/subcommands"
	strength "github.com/shabbyrobe/go-strength"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// verifyCmd implements subcommands.Command for the "verify" command.
type verifyCmd struct {
	bits       string
	exhaustive bool
	samples    int
	seed       int64
	workers    int
}

func (*verifyCmd) Name() string     { return "verify" }
func (*verifyCmd) Synopsis() string { return "compare reduced division against plain division" }
func (*verifyCmd) Usage() string {
	return `verify [flags]:
  Check that reduced division matches plain division. By default, random
  divisor and numerator pairs are sampled for every width. With -exhaustive,
  every pair is checked instead; that is only accepted for 8 and 16 bits.
`
}

func (c *verifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bits, "bits", strings.Join(widthNames(), ","), "comma separated list of widths to verify.")
	f.BoolVar(&c.exhaustive, "exhaustive", false, "check every divisor against every numerator (8 and 16 bits only).")
	f.IntVar(&c.samples, "n", 1000000, "number of random samples per width.")
	f.Int64Var(&c.seed, "seed", 0, "seed for the random sampler (0 == current nanotime).")
	f.IntVar(&c.workers, "workers", runtime.NumCPU(), "number of goroutines to check with.")
}

func (c *verifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 || c.workers < 1 || c.samples < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	var ws []width
	for _, name := range strings.Split(c.bits, ",") {
		w, err := lookupWidth(strings.TrimSpace(name))
		if err != nil {
			log.Error(err)
			return subcommands.ExitUsageError
		}
		if c.exhaustive && w.Bits() > 16 {
			log.Errorf("strength: -exhaustive is only supported for 8 and 16 bits, not %s", w.Name())
			return subcommands.ExitUsageError
		}
		ws = append(ws, w)
	}

	if c.seed == 0 {
		c.seed = time.Now().UnixNano()
	}

	for _, w := range ws {
		start := time.Now()
		logger := log.WithFields(log.Fields{"bits": w.Name(), "workers": c.workers})

		var checked uint64
		var err error
		if c.exhaustive {
			logger.Info("verifying exhaustively")
			checked, err = verifyExhaustive(ctx, w, c.workers)
		} else {
			logger.WithFields(log.Fields{"samples": c.samples, "seed": c.seed}).Info("verifying random samples")
			checked, err = verifyRandom(ctx, w, c.samples, c.workers, c.seed)
		}
		if err != nil {
			logger.Error(err)
			return subcommands.ExitFailure
		}
		logger.WithFields(log.Fields{"checked": checked, "elapsed": time.Since(start).String()}).Info("ok")
	}
	return subcommands.ExitSuccess
}

type mismatchError struct {
	width        string
	n, d         strength.U128
	q, r, nq, nr strength.U128
}

func (e *mismatchError) Error() string {
	return fmt.Sprintf("strength: %s %s / %s: reduced gave %s r %s, expected %s r %s",
		e.width, e.n, e.d, e.q, e.r, e.nq, e.nr)
}

func check(w width, rd reduced, n, d strength.U128) error {
	q, r := rd.DivRem(n)
	nq, nr := w.Naive(n, d)
	if !q.Equal(nq) || !r.Equal(nr) {
		return &mismatchError{width: w.Name(), n: n, d: d, q: q, r: r, nq: nq, nr: nr}
	}
	return nil
}

// verifyRandom splits samples across workers. Each worker has its own RNG
// seeded from seed, so a run can be repeated exactly with the same -seed and
// -workers.
func verifyRandom(ctx context.Context, w width, samples, workers int, seed int64) (checked uint64, err error) {
	g, ctx := errgroup.WithContext(ctx)
	counts := make([]uint64, workers)

	for i := 0; i < workers; i++ {
		i := i
		share := samples / workers
		if i < samples%workers {
			share++
		}

		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			if i == 0 {
				n, err := verifyEdges(w)
				counts[i] += n
				if err != nil {
					return err
				}
			}

			for j := 0; j < share; j++ {
				if j%4096 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				d := sample(rng, w.Bits())
				if d.IsZero() {
					d = strength.U128From64(1)
				}
				n := sample(rng, w.Bits())

				rd, err := w.Reduce(d)
				if err != nil {
					return err
				}
				if err := check(w, rd, n, d); err != nil {
					return err
				}
				counts[i]++
			}
			log.WithFields(log.Fields{"bits": w.Name(), "worker": i, "checked": counts[i]}).Debug("worker done")
			return nil
		})
	}

	err = g.Wait()
	for _, c := range counts {
		checked += c
	}
	return checked, err
}

// sample picks a bit length first, then a value of that length, so that small
// operands turn up as often as large ones.
func sample(rng *rand.Rand, bits int) strength.U128 {
	n := uint(rng.Intn(bits + 1))
	if n == 0 {
		return strength.U128{}
	}
	return strength.RandU128(rng).Rsh(128 - n)
}

func verifyEdges(w width) (checked uint64, err error) {
	max := w.Max()
	var vals []strength.U128
	for i := uint64(0); i <= 20; i++ {
		vals = append(vals, strength.U128From64(i))
	}
	vals = append(vals, max.Dec(), max)

	for _, d := range vals[1:] {
		rd, err := w.Reduce(d)
		if err != nil {
			return checked, err
		}
		for _, n := range vals {
			if err := check(w, rd, n, d); err != nil {
				return checked, err
			}
			checked++
		}
	}
	return checked, nil
}

// verifyExhaustive checks every divisor against every numerator. Divisors are
// dealt out to workers round robin. The 8 and 16 bit loops call the reduced
// types directly; going through the width adapters would make the 16 bit
// sweep take several minutes.
func verifyExhaustive(ctx context.Context, w width, workers int) (checked uint64, err error) {
	g, ctx := errgroup.WithContext(ctx)
	counts := make([]uint64, workers)

	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			var err error
			switch w.Bits() {
			case 8:
				counts[i], err = exhaustive8(ctx, i, workers)
			case 16:
				counts[i], err = exhaustive16(ctx, i, workers)
			default:
				err = fmt.Errorf("strength: exhaustive check not supported for %s", w.Name())
			}
			return err
		})
	}

	err = g.Wait()
	for _, c := range counts {
		checked += c
	}
	return checked, err
}

func exhaustive8(ctx context.Context, worker, workers int) (checked uint64, err error) {
	for d := 1 + worker; d <= 0xff; d += workers {
		if err := ctx.Err(); err != nil {
			return checked, err
		}
		dv := uint8(d)
		rd := strength.ReduceU8(dv)
		for n := 0; n <= 0xff; n++ {
			nv := uint8(n)
			if q, r := rd.DivRem(nv); q != nv/dv || r != nv%dv {
				// Re-run through the adapters to build the report.
				return checked, check(width8{}, reduced8{rd}, strength.U128From8(nv), strength.U128From8(dv))
			}
			checked++
		}
	}
	return checked, nil
}

func exhaustive16(ctx context.Context, worker, workers int) (checked uint64, err error) {
	for d := 1 + worker; d <= 0xffff; d += workers {
		if err := ctx.Err(); err != nil {
			return checked, err
		}
		dv := uint16(d)
		rd := strength.ReduceU16(dv)
		for n := 0; n <= 0xffff; n++ {
			nv := uint16(n)
			if q, r := rd.DivRem(nv); q != nv/dv || r != nv%dv {
				// Re-run through the adapters to build the report.
				return checked, check(width16{}, reduced16{rd}, strength.U128From16(nv), strength.U128From16(dv))
			}
			checked++
		}
	}
	return checked, nil
}
