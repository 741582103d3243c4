package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// magicCmd implements subcommands.Command for the "magic" command.
type magicCmd struct {
	dump bool
}

func (*magicCmd) Name() string     { return "magic" }
func (*magicCmd) Synopsis() string { return "print the multiplier and shift derived for a divisor" }
func (*magicCmd) Usage() string {
	return `magic [-dump] <bits> <divisor>:
  Print the numbers a reduced divisor uses in place of a hardware divide.
`
}

func (c *magicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dump, "dump", false, "dump the full magic record with spew.")
}

func (c *magicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	w, err := lookupWidth(f.Arg(0))
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}
	d, err := parseOperand(w, f.Arg(1))
	if err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}

	rd, err := w.Reduce(d)
	if err != nil {
		log.WithField("bits", w.Name()).Error(err)
		return subcommands.ExitFailure
	}

	m := rd.Magic()
	log.WithFields(log.Fields{"bits": m.Bits, "divisor": m.Divisor.String()}).Debug("reduced")

	if c.dump {
		spew.Fdump(os.Stdout, m)
		return subcommands.ExitSuccess
	}

	hi, lo := m.Multiplier.Raw()
	fmt.Printf("bits:       %d\n", m.Bits)
	fmt.Printf("divisor:    %s\n", m.Divisor)
	fmt.Printf("variant:    %s\n", m.Variant)
	fmt.Printf("multiplier: %s (%#x)\n", m.Multiplier, m.Multiplier)
	fmt.Printf("raw:        U128{hi: %#x, lo: %#x}\n", hi, lo)
	if m.Carry {
		fmt.Printf("carry:      1<<%d\n", m.Bits)
	}
	fmt.Printf("shift:      %d\n", m.Shift)
	return subcommands.ExitSuccess
}
