// Package invoice2pdf turns structured invoice records into styled PDF
// documents using headless Chrome.
//
// # Quick Start
//
// Parse a record, create a service, convert, and close when done:
//
//	inv, err := invoice2pdf.ParseInvoice(yamlBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc := invoice2pdf.New()
//	defer svc.Close()
//
//	result, err := svc.Convert(ctx, invoice2pdf.Input{Invoice: inv})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("invoice.pdf", result.PDF, 0644)
//
// The result carries the PDF bytes (result.PDF) plus the intermediate
// markdown (result.Markdown) and HTML (result.HTML) for inspection.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Record fields are substituted into a fixed markdown template
//     (header, sender/recipient blocks, line-item table, totals, terms)
//  2. Markdown to HTML conversion via Goldmark (GFM tables, highlighting)
//  3. CSS injection (custom stylesheet or the built-in fallback)
//  4. PDF rendering via headless Chrome (go-rod)
//
// Stages 1-3 are pure: the same (invoice, stylesheet) pair always yields
// byte-identical markdown and HTML. Use Service.Render to run only those
// stages without touching a browser.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := invoice2pdf.New(invoice2pdf.WithTimeout(2 * time.Minute))
//
// Per-conversion options are passed via Input:
//
//	result, err := svc.Convert(ctx, invoice2pdf.Input{
//	    Invoice: inv,
//	    CSS:     "body { font-size: 14px; }",
//	    Footer:  &invoice2pdf.Footer{ShowPageNumber: true, Date: "2025-06-01"},
//	})
//
// # Artifact Naming
//
// Generated files follow the invoice_{number}_{YYYYMMDD}.pdf convention,
// where the date is the generation date of the batch run, not the
// invoice's own issue date. ArtifactName builds the name and
// MatchesArtifact implements the wildcard existence check that keeps
// repeated runs from producing duplicate artifacts.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable
// the Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom binary.
package invoice2pdf
