package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExcelExporter writes the hours table of a period to an XLSX workbook,
// for people who want the numbers in a spreadsheet instead of the text
// report.
type ExcelExporter struct{}

// NewExcelExporter creates an XLSX exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export writes the hours table for the period to path. The sheet carries
// the same rows as the rendered table: one per user plus the independent
// "everyone" total row.
func (e *ExcelExporter) Export(p *PeriodOfWork, label Label, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := sanitizeSheetName(cases.Title(language.English).String(fmt.Sprintf("Week %d %d", label.Week, label.Year)))
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	dates := p.AllDates()

	header := []interface{}{label.Scope}
	for _, date := range dates {
		header = append(header, date.Format(columnDateFormat))
	}
	header = append(header, "Total")
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	rowIndex := 2
	users := p.Users()
	for i := range users {
		user := users[i]
		row := []interface{}{user.Login}
		for _, date := range dates {
			d := date
			row = append(row, FormatDuration(p.TimeWorked(TaskQuery{Date: &d, User: &user})))
		}
		row = append(row, FormatDuration(p.TimeWorked(TaskQuery{User: &user})))
		cell, _ := excelize.CoordinatesToCellName(1, rowIndex)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", user.Login, err)
		}
		rowIndex++
	}

	everyone := []interface{}{"everyone"}
	for _, date := range dates {
		d := date
		everyone = append(everyone, FormatDuration(p.TimeWorked(TaskQuery{Date: &d})))
	}
	everyone = append(everyone, FormatDuration(p.TimeWorked(TaskQuery{})))
	cell, _ := excelize.CoordinatesToCellName(1, rowIndex)
	if err := f.SetSheetRow(sheetName, cell, &everyone); err != nil {
		return fmt.Errorf("failed to write totals row: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save excel file: %w", err)
	}
	return nil
}

// sanitizeSheetName strips characters excelize rejects in sheet names
func sanitizeSheetName(name string) string {
	invalid := []rune{':', '\\', '/', '?', '*', '[', ']'}
	out := []rune(name)
	for i, r := range out {
		for _, bad := range invalid {
			if r == bad {
				out[i] = '-'
			}
		}
	}
	if len(out) > 31 {
		out = out[:31]
	}
	return string(out)
}
