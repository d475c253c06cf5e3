package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	invoice2pdf "github.com/alnah/go-invoice2pdf"
	"github.com/alnah/go-invoice2pdf/internal/assets"
	"github.com/alnah/go-invoice2pdf/internal/config"
	"github.com/alnah/go-invoice2pdf/internal/dateutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadInputDir    = errors.New("failed to read invoices directory")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrReadRecord      = errors.New("failed to read invoice record")
	ErrWriteArtifact   = errors.New("failed to write artifact")
	ErrWriteDebug      = errors.New("failed to write debug markdown")
	ErrRecordsFailed   = errors.New("record(s) failed")
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input invoice2pdf.Input) (*invoice2pdf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*invoice2pdf.Service)(nil)

// outcome is the terminal state of one record's pipeline pass.
type outcome int

const (
	outcomeGenerated outcome = iota
	outcomeSkipped
	outcomeFailed
)

// recordResult holds the outcome of a single record.
type recordResult struct {
	Path     string
	Number   string
	Outcome  outcome
	Artifact string
	Err      error
	Duration time.Duration
}

// runSummary counts terminal outcomes of one batch run.
type runSummary struct {
	Generated int
	Skipped   int
	Failed    int
}

// run executes one batch: discover records, convert each, report.
// Per-record failures never stop the batch; only run-level I/O problems
// (unreadable input directory, unwritable output directory) abort.
func run(ctx context.Context, flags *cliFlags, env *Environment, conv Converter) error {
	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	records, err := discoverRecords(cfg.Input.Dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInputDir, err)
	}

	if len(records) == 0 {
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "No invoice records found in %s.\n", cfg.Input.Dir)
			fmt.Fprintln(env.Stdout, "Create a YAML file based on _template.yaml in that directory.")
		}
		return nil
	}

	if err := os.MkdirAll(cfg.Output.Dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}

	// Stylesheet: an unreadable external file is a warning, never an error.
	css, styleErr := assets.LoadStyle(cfg.Style.Path)
	if styleErr != nil && !flags.quiet {
		fmt.Fprintf(env.Stderr, "warning: %v (using built-in styling)\n", styleErr)
	}

	// One generation date for the whole run.
	now := env.Now()
	stamp := dateutil.Stamp(now)
	footer := buildFooter(cfg, now)

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Found %d invoice(s) to process...\n", len(records))
	}

	results := make([]recordResult, 0, len(records))
	for _, path := range records {
		results = append(results, processRecord(ctx, conv, path, cfg, css, footer, stamp, flags))
	}

	summary := printResults(results, flags, env)
	if summary.Failed > 0 {
		return fmt.Errorf("%d %w", summary.Failed, ErrRecordsFailed)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.invoicesDir != "" {
		cfg.Input.Dir = flags.invoicesDir
	}
	if flags.outputDir != "" {
		cfg.Output.Dir = flags.outputDir
	}
	if flags.cssPath != "" {
		cfg.Style.Path = flags.cssPath
	}
}

// buildFooter creates the footer from config, resolving "auto" dates to
// the run's generation date.
func buildFooter(cfg *config.Config, now time.Time) *invoice2pdf.Footer {
	if !cfg.Footer.Enabled {
		return nil
	}
	return &invoice2pdf.Footer{
		Position:       cfg.Footer.Position,
		ShowPageNumber: cfg.Footer.ShowPageNumber,
		Date:           invoice2pdf.ResolveDate(cfg.Footer.Date, now),
		Text:           cfg.Footer.Text,
	}
}

// processRecord runs one record through load → idempotence check →
// render → write. Every failure is captured in the result; nothing
// here aborts the batch.
func processRecord(ctx context.Context, conv Converter, path string, cfg *config.Config, css string, footer *invoice2pdf.Footer, stamp string, flags *cliFlags) recordResult {
	start := time.Now()
	res := recordResult{Path: path}

	fail := func(err error) recordResult {
		res.Outcome = outcomeFailed
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	data, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadRecord, err))
	}

	inv, err := invoice2pdf.ParseInvoice(data)
	if err != nil {
		return fail(err)
	}
	res.Number = inv.Number

	// Idempotence check: skip when any prior artifact matches, unless
	// this run regenerates.
	if !flags.regenerate {
		exists, err := invoice2pdf.HasArtifact(cfg.Output.Dir, inv.Number)
		if err != nil {
			return fail(fmt.Errorf("checking existing artifacts: %w", err))
		}
		if exists {
			res.Outcome = outcomeSkipped
			res.Duration = time.Since(start)
			return res
		}
	}

	result, err := conv.Convert(ctx, invoice2pdf.Input{
		Invoice: inv,
		CSS:     css,
		Footer:  footer,
	})
	if err != nil {
		return fail(err)
	}

	// Debug side-channel: fixed path, always overwritten. Written only
	// for records that actually rendered; skipped records never reach
	// this point.
	if flags.debug {
		// #nosec G306 -- debug markdown is meant to be readable
		if err := os.WriteFile(cfg.Debug.Path, []byte(result.Markdown), filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteDebug, err))
		}
	}

	artifactPath := filepath.Join(cfg.Output.Dir, invoice2pdf.ArtifactName(inv.Number, stamp))
	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(artifactPath, result.PDF, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteArtifact, err))
	}

	res.Outcome = outcomeGenerated
	res.Artifact = artifactPath
	res.Duration = time.Since(start)
	return res
}

// printResults outputs per-record lines and the final summary, and
// returns the outcome counts.
func printResults(results []recordResult, flags *cliFlags, env *Environment) runSummary {
	var summary runSummary

	for _, r := range results {
		switch r.Outcome {
		case outcomeFailed:
			summary.Failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Path, r.Err)
		case outcomeSkipped:
			summary.Skipped++
			if !flags.quiet {
				fmt.Fprintf(env.Stdout, "Skipping invoice %s - artifact already exists\n", r.Number)
			}
		case outcomeGenerated:
			summary.Generated++
			if flags.quiet {
				continue
			}
			if flags.verbose {
				fmt.Fprintf(env.Stdout, "Generated %s (%v)\n", r.Artifact, r.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Generated %s\n", r.Artifact)
			}
		}
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "\nGenerated: %d invoice(s)\n", summary.Generated)
		fmt.Fprintf(env.Stdout, "Skipped: %d invoice(s)\n", summary.Skipped)
		fmt.Fprintf(env.Stdout, "Failed: %d invoice(s)\n", summary.Failed)
	}

	return summary
}
