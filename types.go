package invoice2pdf

import (
	"fmt"
	"strings"
	"time"
)

// Invoice is one client bill as loaded from a YAML record. String dates
// are display values and are never parsed; the stated amounts are
// authoritative and never recomputed, which lets source records carry
// rounding adjustments directly.
type Invoice struct {
	Number              string     `yaml:"invoice_number"`
	Date                string     `yaml:"invoice_date"`
	DueDate             string     `yaml:"due_date"`
	FromName            string     `yaml:"from_name"`
	FromEmail           string     `yaml:"from_email"`
	ToName              string     `yaml:"to_name"`
	ToEmail             string     `yaml:"to_email"`
	Services            []LineItem `yaml:"services"`
	TotalAmount         float64    `yaml:"total_amount"`
	PaymentInstructions string     `yaml:"payment_instructions"`
	Terms               string     `yaml:"terms"`
}

// LineItem is one row of the itemized services table.
type LineItem struct {
	Description string  `yaml:"description"`
	Hours       float64 `yaml:"hours"`
	Rate        float64 `yaml:"rate"`
	Amount      float64 `yaml:"amount"`
}

// Validate checks that all required fields are present and that the
// invoice number is safe to embed in a filename. Every violation is
// reported as ErrMalformedRecord so batch callers can skip-and-report.
func (inv *Invoice) Validate() error {
	if inv == nil {
		return ErrNilInvoice
	}
	if inv.Number == "" {
		return missingField("invoice_number")
	}
	if strings.ContainsAny(inv.Number, "/\\\x00") {
		return fmt.Errorf("%w: invoice_number %q contains path separator or null byte", ErrMalformedRecord, inv.Number)
	}
	if inv.Date == "" {
		return missingField("invoice_date")
	}
	if inv.DueDate == "" {
		return missingField("due_date")
	}
	if inv.FromName == "" {
		return missingField("from_name")
	}
	if inv.FromEmail == "" {
		return missingField("from_email")
	}
	if inv.ToName == "" {
		return missingField("to_name")
	}
	if len(inv.Services) == 0 {
		return missingField("services")
	}
	for i, item := range inv.Services {
		if item.Description == "" {
			return fmt.Errorf("%w: services[%d] missing description", ErrMalformedRecord, i)
		}
	}
	if inv.TotalAmount <= 0 {
		return missingField("total_amount")
	}
	return nil
}

// missingField builds the standard ErrMalformedRecord wrap for an
// absent required field.
func missingField(name string) error {
	return fmt.Errorf("%w: missing required field %q", ErrMalformedRecord, name)
}

// TotalHours sums line-item hours. Display-only: unlike amounts, hours
// carry no authoritative total in the record.
func (inv *Invoice) TotalHours() float64 {
	var total float64
	for _, item := range inv.Services {
		total += item.Hours
	}
	return total
}

// Input contains conversion parameters.
type Input struct {
	Invoice *Invoice // Invoice record (required)
	CSS     string   // Stylesheet content (optional, "" = built-in fallback)
	Footer  *Footer  // Footer config (optional, nil = no footer)
}

// Footer configures the PDF footer rendered natively by Chrome.
type Footer struct {
	Position       string // "left", "center", "right" (default: "right")
	ShowPageNumber bool
	Date           string // Generation date of the batch run
	Text           string
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// RenderResult holds the pure rendering stages' output.
type RenderResult struct {
	Markdown string // Record fields substituted into the invoice template
	HTML     string // Styled HTML5 document ready for PDF encoding
}

// ConvertResult holds the full pipeline output.
type ConvertResult struct {
	Markdown string
	HTML     string
	PDF      []byte
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("invoice2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}
