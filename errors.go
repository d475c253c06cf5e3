package invoice2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Record loading errors.
	ErrMalformedRecord = errors.New("malformed invoice record")

	// Rendering errors.
	ErrNilInvoice     = errors.New("invoice cannot be nil")
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// PDF encoding errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Footer validation errors.
	ErrInvalidFooterPosition = errors.New("invalid footer position")
)
