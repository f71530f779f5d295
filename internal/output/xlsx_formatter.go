package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/xuri/excelize/v2"
)

// XLSXFormatter writes one worksheet per table: Summary, Yearly, Schedule and Projection.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

const moneyFormat = "#,##0.00"

type workbook struct {
	file        *excelize.File
	headerStyle int
	moneyStyle  int
}

func (x XLSXFormatter) Format(report *domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	wb := &workbook{file: f}
	var err error
	if wb.headerStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"003366"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	numFmt := moneyFormat
	if wb.moneyStyle, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt}); err != nil {
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return nil, err
	}
	if err := wb.writeSummary(report); err != nil {
		return nil, err
	}

	if loan := report.Loan; loan != nil {
		yearly := make([][]any, 0, len(loan.Yearly))
		for _, y := range loan.Yearly {
			yearly = append(yearly, []any{y.Year, y.Interest, y.Principal, y.ExtraPayment, y.TotalPayment, y.Balance})
		}
		if err := wb.writeSheet("Yearly", YearlyColumns, yearly); err != nil {
			return nil, err
		}
		schedule := make([][]any, 0, len(loan.Schedule))
		for _, p := range loan.Schedule {
			schedule = append(schedule, []any{p.Month, p.Interest, p.Principal, p.ExtraPayment, p.TotalPayment, p.Balance})
		}
		if err := wb.writeSheet("Schedule", ScheduleColumns, schedule); err != nil {
			return nil, err
		}
	}
	if projection := report.Projection; projection != nil {
		rows := make([][]any, 0, len(projection.Points))
		for _, p := range projection.Points {
			rows = append(rows, []any{p.Year, p.Scenario1, p.Scenario2, p.Scenario3, p.HouseValue})
		}
		columns := append([]string(nil), ProjectionColumns...)
		columns[2] = MortgageColumnLabel(projection.DownPayment)
		if err := wb.writeSheet("Projection", columns, rows); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (wb *workbook) writeSummary(report *domain.Report) error {
	var rows []ParameterRow
	if loan := report.Loan; loan != nil {
		rows = append(rows, LoanParameterRows(loan.Parameters)...)
		rows = append(rows,
			ParameterRow{Label: "Monthly installment", Value: FormatCurrency(loan.Summary.InitialInstallment)},
			ParameterRow{Label: "Total interest", Value: FormatCurrency(loan.Summary.TotalInterest)},
			ParameterRow{Label: "Payments", Value: intToString(loan.Summary.Payments)},
			ParameterRow{Label: "Interest saved", Value: FormatCurrency(loan.InterestSaved)},
		)
	}
	if projection := report.Projection; projection != nil {
		rows = append(rows, ProjectionParameterRows(projection.Parameters)...)
		rows = append(rows, ParameterRow{Label: "Monthly mortgage payment", Value: FormatCurrency(projection.MonthlyMortgagePayment)})
	}
	data := make([][]any, 0, len(rows))
	for _, r := range rows {
		data = append(data, []any{r.Label, r.Value})
	}
	return wb.fill("Summary", []string{"Parameter", "Value"}, data, false)
}

func (wb *workbook) writeSheet(name string, columns []string, rows [][]any) error {
	if _, err := wb.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", name, err)
	}
	return wb.fill(name, columns, rows, true)
}

// fill writes a header row, freezes it, and writes rows below. Numeric columns after the
// first get the money format when money is set.
func (wb *workbook) fill(sheet string, columns []string, rows [][]any, money bool) error {
	for i, c := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := wb.file.SetCellValue(sheet, cell, c); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := wb.file.SetCellStyle(sheet, "A1", last, wb.headerStyle); err != nil {
		return err
	}
	if err := wb.file.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := wb.file.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}
	if money && len(rows) > 0 && len(columns) > 1 {
		from, _ := excelize.CoordinatesToCellName(2, 2)
		to, _ := excelize.CoordinatesToCellName(len(columns), len(rows)+1)
		if err := wb.file.SetCellStyle(sheet, from, to, wb.moneyStyle); err != nil {
			return err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	return wb.file.SetColWidth(sheet, "A", lastCol, 18)
}
