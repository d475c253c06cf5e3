package invoice2pdf

import (
	"strings"
	"time"

	"github.com/alnah/go-invoice2pdf/internal/dateutil"
)

// ResolveDate handles the "auto" syntax for display date values
// (e.g. the footer date):
//   - "auto" → the given time in YYYY-MM-DD format
//   - any other value → returned unchanged (passthrough)
//
// The time parameter is injected by the caller so one batch run stamps
// a single consistent date everywhere.
func ResolveDate(value string, t time.Time) string {
	if strings.EqualFold(value, "auto") {
		return dateutil.Display(t)
	}
	return value
}
