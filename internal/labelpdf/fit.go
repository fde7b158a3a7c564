package labelpdf

import "github.com/jung-kurt/gofpdf"

const ellipsis = "…"

// fitText fits a single-line field into maxWidth by greedily dropping
// trailing characters and appending an ellipsis. No word-wrapping.
// Non-empty input never collapses to an empty string; the floor is the
// bare ellipsis even when that alone overflows the column.
func fitText(width func(string) float64, s string, maxWidth float64) string {
	if s == "" || width(s) <= maxWidth {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		if width(string(r)+ellipsis) <= maxWidth {
			return string(r) + ellipsis
		}
	}
	return ellipsis
}

// fitTranslated fits s and returns code-page bytes. The width function
// measures translated text and the appended ellipsis goes through the
// same descriptor, so the measured bytes are exactly the printed bytes.
func fitTranslated(pdf *gofpdf.Fpdf, tr func(string) string, s string, maxWidth float64) string {
	width := func(u string) float64 { return pdf.GetStringWidth(tr(u)) }
	return tr(fitText(width, s, maxWidth))
}
