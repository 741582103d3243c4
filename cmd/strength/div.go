package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// divCmd implements subcommands.Command for the "div" command.
type divCmd struct{}

func (*divCmd) Name() string     { return "div" }
func (*divCmd) Synopsis() string { return "divide using a reduced divisor and check the result" }
func (*divCmd) Usage() string {
	return `div <bits> <numerator> <divisor>:
  Print the quotient and remainder computed by the reduced divisor. The
  result is compared against a plain division and the command fails if they
  differ.
`
}

func (*divCmd) SetFlags(f *flag.FlagSet) {}

func (*divCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	w, err := lookupWidth(f.Arg(0))
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}
	n, err := parseOperand(w, f.Arg(1))
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}
	d, err := parseOperand(w, f.Arg(2))
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}

	rd, err := w.Reduce(d)
	if err != nil {
		log.WithField("bits", w.Name()).Error(err)
		return subcommands.ExitFailure
	}

	q, r := rd.DivRem(n)
	nq, nr := w.Naive(n, d)
	fmt.Printf("%s / %s == %s\n", n, d, q)
	fmt.Printf("%s %% %s == %s\n", n, d, r)

	if !q.Equal(nq) || !r.Equal(nr) {
		log.WithFields(log.Fields{
			"bits":      w.Name(),
			"numerator": n.String(),
			"divisor":   d.String(),
			"quotient":  nq.String(),
			"remainder": nr.String(),
		}).Error("reduced result differs from plain division")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
