package invoice2pdf

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fakePDFConverter records its input and returns canned output so the
// pipeline can be exercised without a browser.
type fakePDFConverter struct {
	pdf      []byte
	err      error
	lastHTML string
	lastOpts *pdfOptions
	closed   bool
}

func (f *fakePDFConverter) ToPDF(_ context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	f.lastHTML = htmlContent
	f.lastOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func (f *fakePDFConverter) Close() error {
	f.closed = true
	return nil
}

// newTestService builds a Service whose PDF stage is the given fake.
func newTestService(fake *fakePDFConverter) *Service {
	s := New()
	s.pdfConverter = fake
	return s
}

func TestServiceRender(t *testing.T) {
	svc := newTestService(&fakePDFConverter{})
	ctx := context.Background()

	t.Run("produces markdown and styled HTML", func(t *testing.T) {
		result, err := svc.Render(ctx, Input{Invoice: sampleInvoice()})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if !strings.Contains(result.Markdown, "# INVOICE") {
			t.Error("Markdown missing template header")
		}
		if !strings.Contains(result.HTML, "<table>") {
			t.Error("HTML missing line-item table")
		}
		if !strings.Contains(result.HTML, "<style>") {
			t.Error("HTML missing injected stylesheet")
		}
	})

	t.Run("empty CSS falls back to built-in stylesheet", func(t *testing.T) {
		result, err := svc.Render(ctx, Input{Invoice: sampleInvoice()})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if !strings.Contains(result.HTML, "border-collapse") {
			t.Error("HTML missing fallback table styling")
		}
	})

	t.Run("custom CSS is injected instead of the fallback", func(t *testing.T) {
		result, err := svc.Render(ctx, Input{Invoice: sampleInvoice(), CSS: "body { color: teal; }"})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if !strings.Contains(result.HTML, "color: teal") {
			t.Error("HTML missing custom CSS")
		}
		if strings.Contains(result.HTML, "border-collapse") {
			t.Error("HTML contains fallback CSS alongside custom CSS")
		}
	})

	t.Run("identical input yields byte-identical output", func(t *testing.T) {
		first, err := svc.Render(ctx, Input{Invoice: sampleInvoice()})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		second, err := svc.Render(ctx, Input{Invoice: sampleInvoice()})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if first.Markdown != second.Markdown || first.HTML != second.HTML {
			t.Error("Render is not deterministic")
		}
	})

	t.Run("nil invoice fails", func(t *testing.T) {
		_, err := svc.Render(ctx, Input{})
		if !errors.Is(err, ErrNilInvoice) {
			t.Errorf("error = %v, want ErrNilInvoice", err)
		}
	})

	t.Run("invalid invoice fails", func(t *testing.T) {
		inv := sampleInvoice()
		inv.Number = ""
		_, err := svc.Render(ctx, Input{Invoice: inv})
		if !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("error = %v, want ErrMalformedRecord", err)
		}
	})

	t.Run("invalid footer position fails", func(t *testing.T) {
		_, err := svc.Render(ctx, Input{Invoice: sampleInvoice(), Footer: &Footer{Position: "top"}})
		if !errors.Is(err, ErrInvalidFooterPosition) {
			t.Errorf("error = %v, want ErrInvalidFooterPosition", err)
		}
	})
}

func TestServiceConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("returns PDF with intermediate representations", func(t *testing.T) {
		fake := &fakePDFConverter{pdf: []byte("%PDF-fake")}
		svc := newTestService(fake)

		result, err := svc.Convert(ctx, Input{Invoice: sampleInvoice()})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if string(result.PDF) != "%PDF-fake" {
			t.Errorf("PDF = %q, want fake bytes", result.PDF)
		}
		if result.Markdown == "" || result.HTML == "" {
			t.Error("intermediate representations missing from result")
		}
		if fake.lastHTML != result.HTML {
			t.Error("PDF stage did not receive the styled HTML")
		}
	})

	t.Run("footer is forwarded to the PDF stage", func(t *testing.T) {
		fake := &fakePDFConverter{pdf: []byte("x")}
		svc := newTestService(fake)

		footer := &Footer{ShowPageNumber: true, Date: "2025-06-01"}
		if _, err := svc.Convert(ctx, Input{Invoice: sampleInvoice(), Footer: footer}); err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if fake.lastOpts == nil || fake.lastOpts.Footer != footer {
			t.Error("footer not forwarded to PDF options")
		}
	})

	t.Run("PDF failure is wrapped", func(t *testing.T) {
		fake := &fakePDFConverter{err: fmt.Errorf("%w: boom", ErrPDFGeneration)}
		svc := newTestService(fake)

		_, err := svc.Convert(ctx, Input{Invoice: sampleInvoice()})
		if !errors.Is(err, ErrPDFGeneration) {
			t.Errorf("error = %v, want ErrPDFGeneration", err)
		}
	})

	t.Run("Close releases the PDF converter", func(t *testing.T) {
		fake := &fakePDFConverter{}
		svc := newTestService(fake)

		if err := svc.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if !fake.closed {
			t.Error("Close() did not reach the PDF converter")
		}
	})
}
