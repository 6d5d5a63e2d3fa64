package export

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
)

var orderedListMarker = regexp.MustCompile(`^(\d+)([.)])`)

// escapeLine stops user text from opening a heading, list, quote or rule
// when it lands at the start of a markdown line.
func escapeLine(text string) string {
	text = strings.TrimLeft(text, " \t")
	if text == "" {
		return text
	}
	switch text[0] {
	case '#', '>', '-', '+', '*', '=', '_', '`', '|':
		return `\` + text
	}
	return orderedListMarker.ReplaceAllString(text, `$1\$2`)
}

func renderMarkdown(blocks []Block) string {
	var b strings.Builder
	prev := BlockKind(-1)

	for _, bl := range blocks {
		text := strings.ReplaceAll(bl.Text, "\n", " ")
		switch bl.Kind {
		case BlockTitle:
			b.WriteString("# " + text + "\n")
		case BlockMeta:
			if prev != BlockMeta {
				b.WriteString("\n")
			}
			b.WriteString(text + "  \n")
		case BlockHeading:
			b.WriteString("\n## " + text + "\n\n")
		case BlockBullet:
			b.WriteString("- " + escapeLine(text) + "\n")
		case BlockText:
			b.WriteString(escapeLine(text) + "\n")
		case BlockFooter:
			b.WriteString("\n_" + text + "_\n")
		}
		prev = bl.Kind
	}
	return b.String()
}

// RenderPlanMarkdown renders p as markdown. Every non-empty list becomes a
// "## " heading followed by one "- " bullet per item.
func RenderPlanMarkdown(p *models.SafetyPlan) string {
	return renderMarkdown(PlanBlocks(p))
}

func RenderTriageMarkdown(r *models.TriageResult) string {
	return renderMarkdown(TriageBlocks(r))
}
