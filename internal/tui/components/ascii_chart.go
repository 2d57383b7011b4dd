package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fireplan/fire-calculator/internal/tui/tuistyles"
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ReferenceLine is a horizontal marker drawn across the full chart width,
// used for fixed targets the plotted series is measured against
type ReferenceLine struct {
	Name  string
	Value float64
	Color lipgloss.Color
}

// ASCIIChart displays a simple line chart
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	References []*ReferenceLine
	Labels     []string // X-axis labels
	Width      int
	Height     int
	ShowLegend bool
}

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      60,
		Height:     15,
		ShowLegend: true,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// AddReferenceLine adds a horizontal target marker
func (c *ASCIIChart) AddReferenceLine(name string, value float64, color lipgloss.Color) *ASCIIChart {
	c.References = append(c.References, &ReferenceLine{Name: name, Value: value, Color: color})
	return c
}

// WithLabels sets the X-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(tuistyles.ColorPrimary)
		content.WriteString(titleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	globalMin, globalMax := c.getGlobalMinMax()
	content.WriteString(c.renderGrid(globalMin, globalMax))

	if c.ShowLegend {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

// getGlobalMinMax finds the value range across all series and reference lines
func (c *ASCIIChart) getGlobalMinMax() (float64, float64) {
	globalMin := math.Inf(1)
	globalMax := math.Inf(-1)

	for _, series := range c.Series {
		for _, point := range series.Points {
			globalMin = math.Min(globalMin, point)
			globalMax = math.Max(globalMax, point)
		}
	}
	for _, ref := range c.References {
		globalMin = math.Min(globalMin, ref.Value)
		globalMax = math.Max(globalMax, ref.Value)
	}

	if math.IsInf(globalMin, 1) {
		return 0, 1
	}
	if globalMax == globalMin {
		globalMax = globalMin + 1
	}

	// 10% headroom keeps the top series off the frame
	padding := (globalMax - globalMin) * 0.1
	return globalMin, globalMax + padding
}

// renderGrid renders the chart grid with reference lines under the data
func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 10
	chartWidth := c.Width - yAxisWidth

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	valueToRow := func(value float64) int {
		return c.Height - 1 - int((value-minVal)/(maxVal-minVal)*float64(c.Height-1))
	}

	refRows := map[int]*ReferenceLine{}
	for _, ref := range c.References {
		row := valueToRow(ref.Value)
		if row < 0 || row >= c.Height {
			continue
		}
		refRows[row] = ref
		for col := 0; col < chartWidth; col++ {
			grid[row][col] = '┄'
		}
	}

	for seriesIdx, series := range c.Series {
		if len(series.Points) == 0 {
			continue
		}
		pointChar := c.getSeriesChar(seriesIdx)

		for i, point := range series.Points {
			x := 0
			if len(series.Points) > 1 {
				x = int(float64(i) / float64(len(series.Points)-1) * float64(chartWidth-1))
			}
			y := valueToRow(point)

			if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
				grid[y][x] = pointChar
			}

			if i > 0 {
				prevX := int(float64(i-1) / float64(len(series.Points)-1) * float64(chartWidth-1))
				prevY := valueToRow(series.Points[i-1])
				c.drawLine(grid, prevX, prevY, x, y, pointChar)
			}
		}
	}

	var output strings.Builder
	valueRange := maxVal - minVal

	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueRange
		yAxisStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Width(yAxisWidth).
			Align(lipgloss.Right)
		if _, ok := refRows[i]; ok {
			yAxisStyle = yAxisStyle.Foreground(tuistyles.ColorAccent)
		}

		output.WriteString(yAxisStyle.Render(formatChartValue(yValue)))
		output.WriteString(" │ ")
		output.WriteString(string(row))
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth))
	output.WriteString("\n")

	if len(c.Labels) > 0 {
		output.WriteString(c.renderXAxisLabels(yAxisWidth, chartWidth))
	}

	return output.String()
}

// getSeriesChar returns the character to use for a series
func (c *ASCIIChart) getSeriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine draws a line between two points using Bresenham's algorithm,
// never overwriting previously plotted cells
func (c *ASCIIChart) drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		if x >= 0 && x < len(grid[0]) && y >= 0 && y < len(grid) {
			if grid[y][x] == ' ' || grid[y][x] == '┄' {
				grid[y][x] = char
			}
		}

		if x == x1 && y == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels renders a handful of evenly spaced X-axis labels
func (c *ASCIIChart) renderXAxisLabels(yAxisWidth, chartWidth int) string {
	maxLabels := 5
	step := len(c.Labels) / maxLabels
	if step == 0 {
		step = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	var output strings.Builder

	output.WriteString(strings.Repeat(" ", yAxisWidth+3))
	for i := 0; i < len(c.Labels); i += step {
		if i > 0 {
			spacing := chartWidth / maxLabels
			output.WriteString(strings.Repeat(" ", max(1, spacing-len(c.Labels[i-step]))))
		}
		output.WriteString(labelStyle.Render(c.Labels[i]))
	}

	return output.String()
}

// renderLegend renders the chart legend including reference lines
func (c *ASCIIChart) renderLegend() string {
	var items []string

	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(c.getSeriesChar(i)))
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(series.Name)
		items = append(items, fmt.Sprintf("%s %s", symbol, name))
	}
	for _, ref := range c.References {
		symbol := lipgloss.NewStyle().Foreground(ref.Color).Render("┄")
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(ref.Name)
		items = append(items, fmt.Sprintf("%s %s", symbol, name))
	}

	legendStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return legendStyle.Render("Legend: " + strings.Join(items, "  "))
}

// formatChartValue formats a value for display on the Y-axis
func formatChartValue(value float64) string {
	if math.Abs(value) >= 1000000 {
		return fmt.Sprintf("$%.1fM", value/1000000)
	} else if math.Abs(value) >= 1000 {
		return fmt.Sprintf("$%.0fK", value/1000)
	}
	return fmt.Sprintf("$%.0f", value)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
