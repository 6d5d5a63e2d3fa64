package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/server/models"
	"github.com/xuri/excelize/v2"
)

// TriageSheetName is the worksheet written by TriageWorkbook.
const TriageSheetName = "Triage"

var triageHeaders = []any{"Recorded at (UTC)", "Level", "Danger now", "Has a plan", "Access to means", "Under influence", "Alone"}

var triageColumnWidths = []float64{22, 10, 12, 12, 16, 16, 10}

// TriageWorkbook renders the triage log as an xlsx file, one row per result
// with a frozen bold header.
func TriageWorkbook(records []models.TriageRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TriageSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := f.SetSheetRow(TriageSheetName, "A1", &triageHeaders); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(triageHeaders), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(TriageSheetName, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for i, w := range triageColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(TriageSheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			r.RecordedAt.UTC().Format(time.RFC3339),
			r.Level,
			yesNo(r.DangerNow),
			yesNo(r.HavePlan),
			yesNo(r.AccessMeans),
			yesNo(r.UnderInfluence),
			yesNo(r.Alone),
		}
		if err := f.SetSheetRow(TriageSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(TriageSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
