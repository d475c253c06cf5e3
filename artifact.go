package invoice2pdf

import (
	"os"
	"sort"
	"strings"
)

// artifactPrefix starts every generated artifact filename.
const artifactPrefix = "invoice_"

// ArtifactName builds the output filename for an invoice generated on
// the given date stamp: invoice_{number}_{stamp}.pdf. The stamp is the
// batch run's generation date (YYYYMMDD), not the invoice's issue date.
func ArtifactName(number, stamp string) string {
	return artifactPrefix + number + "_" + stamp + ".pdf"
}

// MatchesArtifact reports whether filename is a prior artifact for the
// given invoice number. The match is the invoice_{number}_{anydate}.*
// wildcard shape rather than exact equality, because the date part
// varies run to run. A pure string predicate, independent of any
// filesystem API.
func MatchesArtifact(filename, number string) bool {
	if number == "" {
		return false
	}
	rest, ok := strings.CutPrefix(filename, artifactPrefix+number+"_")
	if !ok || rest == "" {
		return false
	}
	// Require a date-and-extension tail, e.g. "20250601.pdf".
	dot := strings.LastIndexByte(rest, '.')
	return dot > 0 && dot < len(rest)-1
}

// FindArtifacts lists existing artifacts for an invoice number in dir,
// sorted lexicographically. A missing directory means no artifacts.
func FindArtifacts(dir, number string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if MatchesArtifact(e.Name(), number) {
			matches = append(matches, e.Name())
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// HasArtifact reports whether at least one artifact already exists for
// the invoice number. This is the idempotence check: a default batch
// run skips invoices for which it returns true.
func HasArtifact(dir, number string) (bool, error) {
	matches, err := FindArtifacts(dir, number)
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}
