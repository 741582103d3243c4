// Command strength inspects and verifies reduced divisors.
//
//	strength magic <bits> <divisor>
//	strength div <bits> <numerator> <divisor>
//	strength verify [-bits 8,16,32,64,uint,128] [-exhaustive] [-n N] [-seed S] [-workers W]
//
// bits is one of 8, 16, 32, 64, uint or 128.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

var (
	debug     = flag.Bool("debug", false, "enable debug logging.")
	logFormat = flag.String("log-format", "text", "log format: text or json.")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&magicCmd{}, "")
	subcommands.Register(&divCmd{}, "")
	subcommands.Register(&verifyCmd{}, "")

	flag.Parse()

	if err := configureLogging(*debug, *logFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}

func configureLogging(debug bool, format string) error {
	log.SetOutput(os.Stderr)

	switch format {
	case "text":
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("strength: unknown log format %q", format)
	}

	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return nil
}
