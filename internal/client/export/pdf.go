package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/go-pdf/fpdf"
)

type fontSpec struct {
	style string
	size  float64
	line  float64
}

var fonts = map[BlockKind]fontSpec{
	BlockTitle:   {"B", 20, 10},
	BlockMeta:    {"", 10, 5.5},
	BlockHeading: {"B", 13, 7.5},
	BlockBullet:  {"", 11, 6},
	BlockText:    {"", 11, 6},
	BlockFooter:  {"I", 9, 5},
}

// fpdfMeasurer measures with the same fonts the renderer draws with.
type fpdfMeasurer struct {
	pdf *fpdf.Fpdf
}

func (m fpdfMeasurer) SplitLines(kind BlockKind, text string, width float64) []string {
	f := fonts[kind]
	m.pdf.SetFont(fontFamily, f.style, f.size)
	return wrapText(pdfText(text), width-2*m.pdf.GetCellMargin(), m.pdf.GetStringWidth)
}

func (m fpdfMeasurer) LineHeight(kind BlockKind) float64 {
	return fonts[kind].line
}

func renderPDF(blocks []Block, title string, created time.Time) (out []byte, err error) {
	// fpdf reports some failures by panicking.
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("pdf render error: %v", r)
		}
	}()

	g := A4
	pdf, err := newDocument()
	if err != nil {
		return nil, err
	}
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator("gophsafe", true)
	if !created.IsZero() {
		pdf.SetCreationDate(created.UTC())
	}

	m := fpdfMeasurer{pdf: pdf}
	pages := Layout(blocks, m, g)

	for n, page := range pages {
		pdf.AddPage()
		for _, l := range page.Lines {
			f := fonts[l.Kind]
			pdf.SetFont(fontFamily, f.style, f.size)
			x := g.Margin + l.X
			y := g.Margin + l.Y
			if l.Bullet {
				pdf.SetXY(x-g.BulletIndent+1, y)
				pdf.CellFormat(g.BulletIndent-1, f.line, "•", "", 0, "L", false, 0, "")
			}
			pdf.SetXY(x, y)
			pdf.CellFormat(g.ContentWidth()-l.X, f.line, l.Text, "", 0, "L", false, 0, "")
		}

		pdf.SetFont(fontFamily, "", 8)
		pdf.SetXY(g.Margin, g.PageHeight-g.Margin+4)
		pdf.CellFormat(g.ContentWidth(), 4, pdfText(fmt.Sprintf("%s - page %d of %d", title, n+1, len(pages))), "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render error: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPlanPDF renders p as an A4 PDF document.
func RenderPlanPDF(p *models.SafetyPlan) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("pdf render error: no plan")
	}
	return renderPDF(PlanBlocks(p), PlanTitle, p.UpdatedAt)
}

// RenderTriagePDF renders r as an A4 PDF document.
func RenderTriagePDF(r *models.TriageResult) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("pdf render error: no triage result")
	}
	return renderPDF(TriageBlocks(r), TriageTitle, r.Timestamp)
}
