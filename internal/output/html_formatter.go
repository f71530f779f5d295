package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"strconv"

	"github.com/rpgo/mortgage-explorer/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report with inline SVG charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":           FormatCurrency,
	"whole":          FormatWhole,
	"num":            FormatNumber,
	"pct":            FormatPercentage,
	"policy":         PolicyLabel,
	"crossover":      describeCrossover,
	"mortgageColumn": MortgageColumnLabel,
	"date":           paymentDate,
}).Parse(htmlTemplateSource))

// strategyColors follow the palette of the original charts.
var strategyColors = map[domain.Strategy]string{
	domain.StrategyCash:     "#8884d8",
	domain.StrategyMortgage: "#82ca9d",
	domain.StrategyRent:     "#ffc658",
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Report
		Assumptions    []string
		LoanRows       []ParameterRow
		ProjectionRows []ParameterRow
		Recommendation Recommendation
		BalanceChart   template.HTML
		NetWorthChart  template.HTML
	}{Report: report, Assumptions: assumptionsFor(report)}

	if loan := report.Loan; loan != nil {
		data.LoanRows = LoanParameterRows(loan.Parameters)
		labels := make([]string, len(loan.Yearly))
		interest := chartSeries{Name: "Interest", Color: "#8884d8"}
		balance := chartSeries{Name: "Balance", Color: "#82ca9d"}
		for i, y := range loan.Yearly {
			labels[i] = strconv.Itoa(y.Year)
			interest.Values = append(interest.Values, y.Interest)
			balance.Values = append(balance.Values, y.Balance)
		}
		data.BalanceChart = lineChart(labels, balance, interest)
	}
	if projection := report.Projection; projection != nil {
		data.ProjectionRows = ProjectionParameterRows(projection.Parameters)
		data.Recommendation = AnalyzeProjection(projection)
		labels := make([]string, len(projection.Points))
		series := make([]chartSeries, len(domain.Strategies))
		for si, s := range domain.Strategies {
			series[si] = chartSeries{Name: s.String(), Color: strategyColors[s]}
		}
		for i, p := range projection.Points {
			labels[i] = strconv.Itoa(p.Year)
			for si, s := range domain.Strategies {
				series[si].Values = append(series[si].Values, p.NetWorth(s))
			}
		}
		data.NetWorthChart = lineChart(labels, series...)
	}

	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
