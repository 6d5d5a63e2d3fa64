package export

// Geometry is the printable area of a page, in millimetres.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	// ContentHeight is the fixed threshold at which a new page starts.
	ContentHeight float64
	BulletIndent  float64
}

// A4 is the geometry used for every PDF.
var A4 = Geometry{
	PageWidth:     210,
	PageHeight:    297,
	Margin:        18,
	ContentHeight: 297 - 2*18 - 10,
	BulletIndent:  6,
}

func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// Measurer wraps text into lines for a block kind and reports the height
// of one such line.
type Measurer interface {
	SplitLines(kind BlockKind, text string, width float64) []string
	LineHeight(kind BlockKind) float64
}

// Line is one positioned line of output. Y is relative to the top of the
// content area.
type Line struct {
	Kind   BlockKind
	Text   string
	X      float64
	Y      float64
	Bullet bool
}

type Page struct {
	Lines []Line
}

func gapBefore(k BlockKind, m Measurer) float64 {
	if k == BlockHeading || k == BlockFooter {
		return m.LineHeight(BlockText) * 0.8
	}
	return 0
}

// Layout places blocks on pages. A block is moved whole to a fresh page
// when it does not fit in the remaining space but would fit on an empty
// page; longer blocks are split across pages line by line. A heading is
// never left as the last line of a page.
func Layout(blocks []Block, m Measurer, g Geometry) []Page {
	pages := []Page{{}}
	y := 0.0
	width := g.ContentWidth()

	newPage := func() {
		pages = append(pages, Page{})
		y = 0
	}

	for i, b := range blocks {
		indent := 0.0
		if b.Kind == BlockBullet {
			indent = g.BulletIndent
		}
		lines := m.SplitLines(b.Kind, b.Text, width-indent)
		if len(lines) == 0 {
			lines = []string{""}
		}
		h := m.LineHeight(b.Kind)

		gap := 0.0
		if y > 0 {
			gap = gapBefore(b.Kind, m)
		}

		need := gap + h*float64(len(lines))
		if b.Kind == BlockHeading && i+1 < len(blocks) {
			need += m.LineHeight(blocks[i+1].Kind)
		}
		if y > 0 && y+need > g.ContentHeight && need-gap <= g.ContentHeight {
			newPage()
			gap = 0
		}
		y += gap

		for j, text := range lines {
			if y+h > g.ContentHeight && y > 0 {
				newPage()
			}
			cur := &pages[len(pages)-1]
			cur.Lines = append(cur.Lines, Line{
				Kind:   b.Kind,
				Text:   text,
				X:      indent,
				Y:      y,
				Bullet: b.Kind == BlockBullet && j == 0,
			})
			y += h
		}
	}
	return pages
}
