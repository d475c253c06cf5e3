package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing failures for exit-code mapping.
var ErrUsage = errors.New("invalid usage")

// cliFlags holds all flags for the batch run.
type cliFlags struct {
	config      string
	invoicesDir string
	outputDir   string
	cssPath     string
	regenerate  bool
	debug       bool
	timeout     time.Duration
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses command-line arguments into cliFlags.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("invoice2pdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are wrapped and printed by main

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.invoicesDir, "invoices", "i", "", "directory of invoice YAML records")
	fs.StringVarP(&f.outputDir, "output", "o", "", "directory receiving generated PDFs")
	fs.StringVar(&f.cssPath, "css", "", "external stylesheet (unreadable = built-in fallback)")
	fs.BoolVarP(&f.regenerate, "regenerate", "f", false, "regenerate invoices even when an artifact exists")
	fs.BoolVar(&f.debug, "debug", false, "also write the intermediate markdown to a fixed debug path")
	fs.DurationVar(&f.timeout, "timeout", 30*time.Second, "per-invoice PDF rendering timeout")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if f.timeout <= 0 {
		return nil, fmt.Errorf("%w: --timeout must be positive", ErrUsage)
	}

	return f, nil
}
