// Package export renders safety plans and triage results as markdown and
// PDF documents.
//
// Both formats are produced from the same ordered list of blocks:
// title, metadata, one section per non-empty list, the check-in block when
// reminders are on, the fixed emergency numbers and a closing disclaimer.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/client/triage"
)

// BlockKind tells renderers how to present a block.
type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockMeta
	BlockHeading
	BlockBullet
	BlockText
	BlockFooter
)

// Block is one paragraph-level element of a document.
type Block struct {
	Kind BlockKind
	Text string
}

const (
	PlanTitle   = "My Safety Plan"
	TriageTitle = "Crisis Check-in Summary"

	CheckinHeading   = "Check-in"
	EmergencyHeading = "Emergency numbers"

	Disclaimer = "This plan is a personal tool and does not replace professional care. " +
		"If you are in immediate danger, call your local emergency number."

	timeLayout = "2006-01-02 15:04 UTC"
)

// EmergencyNumbers is printed on every document regardless of user data.
var EmergencyNumbers = []string{
	"United States and Canada: 911 (crisis line 988)",
	"United Kingdom: 999 (Samaritans 116 123)",
	"Ireland and the EU: 112",
	"Australia: 000 (Lifeline 13 11 14)",
	"New Zealand: 111 (Need to talk? 1737)",
	"Anywhere else: 112 or findahelpline.com",
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timeLayout)
}

// FormatContact renders "Name (phone, email)" with absent parts left out.
func FormatContact(c models.SafetyContact) string {
	var extra []string
	if c.Phone != "" {
		extra = append(extra, c.Phone)
	}
	if c.Email != "" {
		extra = append(extra, c.Email)
	}
	if len(extra) == 0 {
		return c.Name
	}
	return fmt.Sprintf("%s (%s)", c.Name, strings.Join(extra, ", "))
}

func sectionItems(p *models.SafetyPlan, s models.Section) []string {
	if !s.IsContactList() {
		return p.TextItems(s)
	}
	contacts := p.ContactItems(s)
	out := make([]string, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, FormatContact(c))
	}
	return out
}

func emergencyBlocks() []Block {
	blocks := []Block{{Kind: BlockHeading, Text: EmergencyHeading}}
	for _, n := range EmergencyNumbers {
		blocks = append(blocks, Block{Kind: BlockBullet, Text: n})
	}
	return blocks
}

// PlanBlocks lays out a plan in document order.
func PlanBlocks(p *models.SafetyPlan) []Block {
	blocks := []Block{
		{Kind: BlockTitle, Text: PlanTitle},
		{Kind: BlockMeta, Text: "Name: ____________________"},
		{Kind: BlockMeta, Text: "Created: " + formatTime(p.CreatedAt)},
		{Kind: BlockMeta, Text: "Updated: " + formatTime(p.UpdatedAt)},
	}

	for _, s := range models.Sections {
		items := sectionItems(p, s)
		if len(items) == 0 {
			continue
		}
		blocks = append(blocks, Block{Kind: BlockHeading, Text: s.Title()})
		for _, it := range items {
			blocks = append(blocks, Block{Kind: BlockBullet, Text: it})
		}
	}

	if p.RemindersOn {
		blocks = append(blocks,
			Block{Kind: BlockHeading, Text: CheckinHeading},
			Block{Kind: BlockText, Text: fmt.Sprintf("Check in every %d minutes. Reminders are on.", p.CheckinEveryMin)},
		)
	}

	blocks = append(blocks, emergencyBlocks()...)
	return append(blocks, Block{Kind: BlockFooter, Text: Disclaimer})
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// TriageBlocks lays out a triage result in document order.
func TriageBlocks(r *models.TriageResult) []Block {
	blocks := []Block{
		{Kind: BlockTitle, Text: TriageTitle},
		{Kind: BlockMeta, Text: "Completed: " + formatTime(r.Timestamp)},
		{Kind: BlockMeta, Text: "Level: " + strings.ToUpper(string(r.Level))},
		{Kind: BlockHeading, Text: "Answers"},
	}
	for _, q := range triage.Questions {
		blocks = append(blocks, Block{Kind: BlockBullet, Text: q.Prompt + " " + yesNo(q.Answer(r.Answers))})
	}
	blocks = append(blocks,
		Block{Kind: BlockHeading, Text: "What to do next"},
		Block{Kind: BlockText, Text: triage.Guidance(r.Level)},
	)
	blocks = append(blocks, emergencyBlocks()...)
	return append(blocks, Block{Kind: BlockFooter, Text: Disclaimer})
}
