package invoice2pdf

import (
	"context"
	"fmt"

	"github.com/alnah/go-invoice2pdf/internal/assets"
)

// Service orchestrates the invoice-to-PDF pipeline.
type Service struct {
	cfg           serviceConfig
	htmlConverter htmlConverter
	cssInjector   cssInjector
	pdfConverter  pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:           serviceConfig{timeout: defaultTimeout},
		htmlConverter: newGoldmarkConverter(),
		cssInjector:   &cssInjection{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Render runs the pure stages of the pipeline: template substitution,
// markdown expansion, and stylesheet wrapping. No browser, clock, or
// network access happens here; identical input always yields
// byte-identical output.
func (s *Service) Render(ctx context.Context, input Input) (*RenderResult, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	mdContent := BuildMarkdown(input.Invoice)

	htmlContent, err := s.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// An empty stylesheet must never fail rendering: substitute the
	// built-in fallback so every invoice gets at least base typography
	// and table borders.
	cssContent := input.CSS
	if cssContent == "" {
		cssContent = assets.FallbackStyle()
	}
	htmlContent = s.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &RenderResult{Markdown: mdContent, HTML: htmlContent}, nil
}

// Convert runs the full pipeline and returns the PDF alongside the
// intermediate representations. The context is used for cancellation
// and timeout of the PDF stage.
func (s *Service) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	rendered, err := s.Render(ctx, input)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, rendered.HTML, &pdfOptions{Footer: input.Footer})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return &ConvertResult{
		Markdown: rendered.Markdown,
		HTML:     rendered.HTML,
		PDF:      pdfBytes,
	}, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Invoice == nil {
		return ErrNilInvoice
	}
	if err := input.Invoice.Validate(); err != nil {
		return err
	}
	if err := input.Footer.Validate(); err != nil {
		return err
	}
	return nil
}
