package invoice2pdf

import (
	"strings"
	"testing"
)

func TestBuildFooterTemplate(t *testing.T) {
	t.Run("nil footer yields empty span", func(t *testing.T) {
		if got := buildFooterTemplate(nil); got != "<span></span>" {
			t.Errorf("buildFooterTemplate(nil) = %q", got)
		}
	})

	t.Run("empty footer yields empty span", func(t *testing.T) {
		if got := buildFooterTemplate(&Footer{}); got != "<span></span>" {
			t.Errorf("buildFooterTemplate(&Footer{}) = %q", got)
		}
	})

	t.Run("page number placeholders", func(t *testing.T) {
		got := buildFooterTemplate(&Footer{ShowPageNumber: true})
		if !strings.Contains(got, `class="pageNumber"`) || !strings.Contains(got, `class="totalPages"`) {
			t.Errorf("missing page number placeholders: %q", got)
		}
	})

	t.Run("date and text joined with separator", func(t *testing.T) {
		got := buildFooterTemplate(&Footer{Date: "2025-06-01", Text: "Thank you"})
		if !strings.Contains(got, "2025-06-01 - Thank you") {
			t.Errorf("footer content not joined: %q", got)
		}
	})

	t.Run("text is HTML-escaped", func(t *testing.T) {
		got := buildFooterTemplate(&Footer{Text: "<script>"})
		if strings.Contains(got, "<script>") {
			t.Errorf("footer text not escaped: %q", got)
		}
	})

	t.Run("position controls alignment", func(t *testing.T) {
		tests := []struct {
			position string
			want     string
		}{
			{"", "text-align: right"},
			{"left", "text-align: left"},
			{"center", "text-align: center"},
			{"right", "text-align: right"},
		}
		for _, tt := range tests {
			got := buildFooterTemplate(&Footer{Text: "x", Position: tt.position})
			if !strings.Contains(got, tt.want) {
				t.Errorf("position %q: footer %q missing %q", tt.position, got, tt.want)
			}
		}
	})
}

func TestBuildPDFOptions(t *testing.T) {
	t.Run("no footer uses uniform margins", func(t *testing.T) {
		opts := buildPDFOptions(nil)
		if opts.DisplayHeaderFooter {
			t.Error("DisplayHeaderFooter = true, want false")
		}
		if *opts.MarginBottom != marginInches {
			t.Errorf("MarginBottom = %v, want %v", *opts.MarginBottom, marginInches)
		}
		if *opts.PaperWidth != paperWidthInches || *opts.PaperHeight != paperHeightInches {
			t.Errorf("paper size = %vx%v, want %vx%v", *opts.PaperWidth, *opts.PaperHeight, paperWidthInches, paperHeightInches)
		}
	})

	t.Run("footer reserves extra bottom margin", func(t *testing.T) {
		opts := buildPDFOptions(&pdfOptions{Footer: &Footer{ShowPageNumber: true}})
		if !opts.DisplayHeaderFooter {
			t.Error("DisplayHeaderFooter = false, want true")
		}
		if *opts.MarginBottom != marginBottomWithFooter {
			t.Errorf("MarginBottom = %v, want %v", *opts.MarginBottom, marginBottomWithFooter)
		}
		if opts.HeaderTemplate != "<span></span>" {
			t.Errorf("HeaderTemplate = %q, want empty span", opts.HeaderTemplate)
		}
	})
}
