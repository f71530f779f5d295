package output

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// chartSeries is one line of an inline SVG chart.
type chartSeries struct {
	Name   string
	Color  string
	Values []float64
}

const (
	chartWidth   = 720.0
	chartHeight  = 320.0
	chartPadLeft = 70.0
	chartPadBot  = 30.0
	chartPadTop  = 20.0
	chartTicks   = 4
)

// lineChart renders series that share the x labels as an SVG fragment.
// All series must have len(xLabels) values.
func lineChart(xLabels []string, series ...chartSeries) template.HTML {
	if len(xLabels) == 0 || len(series) == 0 {
		return ""
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	lo = math.Min(lo, 0)
	if hi <= lo {
		hi = lo + 1
	}

	plotW := chartWidth - chartPadLeft - 10
	plotH := chartHeight - chartPadTop - chartPadBot
	x := func(i int) float64 {
		if len(xLabels) == 1 {
			return chartPadLeft + plotW/2
		}
		return chartPadLeft + plotW*float64(i)/float64(len(xLabels)-1)
	}
	y := func(v float64) float64 { return chartPadTop + plotH*(1-(v-lo)/(hi-lo)) }

	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="chart" viewBox="0 0 %.0f %.0f" xmlns="http://www.w3.org/2000/svg">`, chartWidth, chartHeight)
	for t := 0; t <= chartTicks; t++ {
		v := lo + (hi-lo)*float64(t)/chartTicks
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e5e7eb"/>`, chartPadLeft, y(v), chartPadLeft+plotW, y(v))
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="11" text-anchor="end">%s</text>`, chartPadLeft-6, y(v)+4, template.HTMLEscapeString(FormatCompact(v)))
	}
	step := 1
	if len(xLabels) > 12 {
		step = (len(xLabels) + 11) / 12
	}
	for i := 0; i < len(xLabels); i += step {
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="11" text-anchor="middle">%s</text>`, x(i), chartHeight-8, template.HTMLEscapeString(xLabels[i]))
	}
	for si, s := range series {
		pts := make([]string, 0, len(s.Values))
		for i, v := range s.Values {
			pts = append(pts, fmt.Sprintf("%.1f,%.1f", x(i), y(v)))
		}
		fmt.Fprintf(&b, `<polyline fill="none" stroke="%s" stroke-width="2" points="%s"/>`, s.Color, strings.Join(pts, " "))
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="10" height="10" fill="%s"/>`, chartPadLeft+10+float64(si)*150, 4.0, s.Color)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="11">%s</text>`, chartPadLeft+24+float64(si)*150, 13.0, template.HTMLEscapeString(s.Name))
	}
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}
