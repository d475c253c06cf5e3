package invoice2pdf

import (
	"fmt"

	"github.com/alnah/go-invoice2pdf/internal/yamlutil"
)

// ParseInvoice parses one YAML invoice record into an Invoice.
//
// Parsing is lenient about unknown keys (records may carry extra fields
// for human bookkeeping) but strict about shape: input that is not a
// mapping, or that is missing a required field, fails with
// ErrMalformedRecord naming the problem. No lower-level YAML error
// escapes unwrapped.
func ParseInvoice(data []byte) (*Invoice, error) {
	var inv Invoice
	if err := yamlutil.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return &inv, nil
}
