package output

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/mortgage-explorer/internal/domain"
)

const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFFormatter renders the report as an A4 document.
type PDFFormatter struct {
	// Now stamps the document; nil means time.Now.
	Now func() time.Time
}

func (p PDFFormatter) Name() string { return "pdf" }

type pdfReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetCreationDate(now())
	r.pdf.SetTitle("Mortgage Explorer Report", true)
	r.pdf.AliasNbPages("")
	r.pdf.SetFooterFunc(func() {
		r.pdf.SetY(-15)
		r.pdf.SetFont("Arial", "I", 8)
		r.pdf.SetTextColor(128, 128, 128)
		r.pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", r.pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	r.addTitle(now())
	if report.Loan != nil {
		r.addLoan(report.Loan)
	}
	if report.Projection != nil {
		r.addProjection(report.Projection)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) heading(text string) {
	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, r.tr(text), "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *pdfReport) addTitle(generated time.Time) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Mortgage Explorer Report", "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", generated.Format("2 January 2006")), "", 1, "C", false, 0, "")
}

func (r *pdfReport) parameterTable(rows []ParameterRow) {
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	for i, row := range rows {
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.CellFormat(contentWidth*0.55, 6, r.tr(row.Label), "1", 0, "L", i%2 == 0, 0, "")
		r.pdf.SetFont("Arial", "", 10)
		r.pdf.CellFormat(contentWidth*0.45, 6, r.tr(row.Value), "1", 1, "R", i%2 == 0, 0, "")
	}
}

// table draws a header row and repeats it after every page break.
func (r *pdfReport) table(columns []string, rows [][]string) {
	width := contentWidth / float64(len(columns))
	header := func() {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(0, 51, 102)
		r.pdf.SetTextColor(255, 255, 255)
		for _, c := range columns {
			r.pdf.CellFormat(width, 7, r.tr(c), "1", 0, "C", true, 0, "")
		}
		r.pdf.Ln(-1)
		r.pdf.SetTextColor(50, 50, 50)
		r.pdf.SetFont("Arial", "", 9)
	}
	header()
	for i, row := range rows {
		if r.pdf.GetY()+6 > pageHeight-marginBottom {
			r.pdf.AddPage()
			header()
		}
		if i%2 == 0 {
			r.pdf.SetFillColor(245, 247, 250)
		} else {
			r.pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range row {
			align := "R"
			if j == 0 {
				align = "L"
			}
			r.pdf.CellFormat(width, 6, r.tr(cell), "1", 0, align, true, 0, "")
		}
		r.pdf.Ln(-1)
	}
}

func (r *pdfReport) addLoan(loan *domain.LoanReport) {
	r.heading("Loan")
	r.parameterTable(LoanParameterRows(loan.Parameters))

	s := loan.Summary
	summary := []ParameterRow{
		{Label: "Monthly installment", Value: FormatCurrency(s.InitialInstallment)},
		{Label: "Final installment", Value: FormatCurrency(s.FinalInstallment)},
		{Label: "Payments", Value: strconv.Itoa(s.Payments)},
		{Label: "Total interest", Value: FormatCurrency(s.TotalInterest)},
		{Label: "Total extra payments", Value: FormatCurrency(s.TotalExtraPayments)},
		{Label: "Total paid", Value: FormatCurrency(s.TotalPayments)},
	}
	if loan.Parameters.AnnualExtraPayment > 0 {
		summary = append(summary,
			ParameterRow{Label: "Interest saved", Value: FormatCurrency(loan.InterestSaved)},
			ParameterRow{Label: "Months saved", Value: strconv.Itoa(loan.MonthsSaved)},
		)
	}
	r.heading("Summary")
	r.parameterTable(summary)

	r.heading("Yearly Breakdown")
	rows := make([][]string, 0, len(loan.Yearly))
	for _, y := range loan.Yearly {
		rows = append(rows, []string{y.Label, FormatNumber(y.Interest), FormatNumber(y.Principal),
			FormatNumber(y.ExtraPayment), FormatNumber(y.TotalPayment), FormatNumber(y.Balance)})
	}
	r.table(YearlyColumns, rows)

	r.pdf.AddPage()
	r.heading("Monthly Schedule")
	rows = make([][]string, 0, len(loan.Schedule))
	for _, p := range loan.Schedule {
		label := fmt.Sprintf("%d %s", p.Month, p.MonthName)
		if d := paymentDate(loan, p.Month); d != "" {
			label = fmt.Sprintf("%d (%s)", p.Month, d)
		}
		rows = append(rows, []string{label, FormatNumber(p.Interest), FormatNumber(p.Principal),
			FormatNumber(p.ExtraPayment), FormatNumber(p.TotalPayment), FormatNumber(p.Balance)})
	}
	r.table(ScheduleColumns, rows)
}

func (r *pdfReport) addProjection(projection *domain.ProjectionReport) {
	r.pdf.AddPage()
	r.heading("Net Worth Projection")
	r.parameterTable(ProjectionParameterRows(projection.Parameters))

	r.heading("Checkpoints")
	rows := make([][]string, 0, len(projection.Points))
	for _, p := range projection.Points {
		rows = append(rows, []string{strconv.Itoa(p.Year), FormatWhole(p.Scenario1), FormatWhole(p.Scenario2),
			FormatWhole(p.Scenario3), FormatWhole(p.HouseValue)})
	}
	columns := append([]string(nil), ProjectionColumns...)
	columns[2] = "Mortgage"
	r.table(columns, rows)

	if len(projection.Crossovers) > 0 {
		r.heading("Lead Changes")
		r.pdf.SetFont("Arial", "", 10)
		for _, c := range projection.Crossovers {
			r.pdf.CellFormat(contentWidth, 6, r.tr("• "+describeCrossover(c)), "", 1, "L", false, 0, "")
		}
	}

	if rec := AnalyzeProjection(projection); len(projection.Points) > 0 {
		r.pdf.Ln(4)
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.MultiCell(contentWidth, 6, r.tr(fmt.Sprintf("Best after %d years: %s with %s, %s ahead of %s.",
			rec.Year, rec.Strategy, FormatWhole(rec.NetWorth), FormatWhole(rec.Margin), rec.RunnerUp)), "", "L", false)
	}
}
