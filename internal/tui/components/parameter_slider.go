package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fireplan/fire-calculator/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable plan input with a visual slider
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string // e.g. "%", "years", "$"
	Format    string // e.g. "%.2f", "%.0f"
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a new parameter slider
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Width:  30,
	}
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment increases the value by step
func (p *ParameterSlider) Increment() {
	if p.Value+p.Step <= p.Max {
		p.Value += p.Step
	}
}

// Decrement decreases the value by step
func (p *ParameterSlider) Decrement() {
	if p.Value-p.Step >= p.Min {
		p.Value -= p.Step
	}
}

// SetValue sets the value directly, clamping to min/max
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value as a fraction of the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Render returns the styled slider as a single row: label, value, bar
func (p *ParameterSlider) Render() string {
	valueStr := fmt.Sprintf(p.Format, p.Value)
	if p.Unit != "" {
		valueStr += p.Unit
	}

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	label := labelStyle.Width(26).Render(p.Label)
	value := valueStyle.Width(14).Align(lipgloss.Right).Render(valueStr)

	return fmt.Sprintf("%s %s  %s", label, value, p.renderBar())
}

// renderBar creates the visual slider bar
func (p *ParameterSlider) renderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}

	thumbStyle := tuistyles.SliderThumbStyle
	trackStyle := tuistyles.SliderTrackStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < p.Width; i++ {
		switch {
		case i == filled:
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(trackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}
