package ui

import (
	"strings"
)

var barLevels = []rune(" ▁▂▃▄▅▆▇█")

// renderGraph draws per-word accuracy as a one-line bar chart with a title
// and an axis, using the [graph] colors.
func renderGraph(values []float64, styles Styles, width int) string {
	title := styles.GraphTitle.Render("accuracy per word")

	maxBars := width - 2
	if maxBars < 1 {
		maxBars = 1
	}
	if len(values) > maxBars {
		values = values[len(values)-maxBars:]
	}

	var bars strings.Builder
	for _, v := range values {
		bars.WriteRune(barFor(v))
	}

	axisLen := len(values)
	if axisLen < 10 {
		axisLen = 10
	}

	return strings.Join([]string{
		title,
		styles.GraphAxis.Render("│") + styles.GraphData.Render(bars.String()),
		styles.GraphAxis.Render("└" + strings.Repeat("─", axisLen)),
	}, "\n")
}

func barFor(v float64) rune {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	idx := int(v*float64(len(barLevels)-1) + 0.5)
	return barLevels[idx]
}
