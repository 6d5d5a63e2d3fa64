package export

import (
	"embed"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"
)

// DejaVu Sans Condensed as shipped with go-pdf/fpdf. It covers Latin,
// Greek and Cyrillic, so plan text is drawn as typed.
//
//go:embed fonts/*.ttf
var fontFiles embed.FS

const fontFamily = "DejaVu"

var fontFileByStyle = map[string]string{
	"":  "fonts/DejaVuSansCondensed.ttf",
	"B": "fonts/DejaVuSansCondensed-Bold.ttf",
	"I": "fonts/DejaVuSansCondensed-Oblique.ttf",
}

// registerFonts adds the UTF-8 font family to pdf in every style the
// renderer uses.
func registerFonts(pdf *fpdf.Fpdf) error {
	for style, name := range fontFileByStyle {
		data, err := fontFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("font %s: %w", name, err)
		}
		pdf.AddUTF8FontFromBytes(fontFamily, style, data)
	}
	return pdf.Error()
}

// newDocument returns an A4 document with the UTF-8 fonts registered.
func newDocument() (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	if err := registerFonts(pdf); err != nil {
		return nil, fmt.Errorf("pdf render error: %w", err)
	}
	return pdf, nil
}

// pdfText makes s safe for the font tables, which only cover the basic
// multilingual plane. Other runes become U+FFFD and control characters
// become spaces.
func pdfText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r > 0xFFFF:
			return unicode.ReplacementChar
		case unicode.IsControl(r):
			return ' '
		}
		return r
	}, s)
}

// wrapText greedily fills lines of at most width as measured by widthOf.
// Words are split at rune boundaries only when a single word is wider than
// a line. Joining the returned lines with single spaces yields the words of
// text unchanged.
func wrapText(text string, width float64, widthOf func(string) float64) []string {
	var lines []string
	cur := ""

	for _, word := range strings.Fields(text) {
		if cur != "" {
			if candidate := cur + " " + word; widthOf(candidate) <= width {
				cur = candidate
				continue
			}
			lines = append(lines, cur)
			cur = ""
		}

		for widthOf(word) > width {
			runes := []rune(word)
			n := 1
			for n < len(runes) && widthOf(string(runes[:n+1])) <= width {
				n++
			}
			lines = append(lines, string(runes[:n]))
			word = string(runes[n:])
		}
		cur = word
	}

	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
