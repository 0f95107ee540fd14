package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title         lipgloss.Style
	Subtle        lipgloss.Style
	StatusRunning lipgloss.Style
	StatusPaused  lipgloss.Style
	StatusArmed   lipgloss.Style
	MetricValue   lipgloss.Style
	MetricLabel   lipgloss.Style
	KeyHint       lipgloss.Style
)

func init() { ApplyTheme(ThemeSpace) }

// ApplyTheme rebuilds the shared styles from t.
func ApplyTheme(t Theme) {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Title)

	Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	StatusRunning = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Running)

	StatusPaused = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Paused)

	StatusArmed = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Armed)

	MetricValue = lipgloss.NewStyle().
		Foreground(t.Value).
		Bold(true)

	MetricLabel = lipgloss.NewStyle().
		Foreground(t.Label)

	KeyHint = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)
}

// Metric renders "label value" with the metric styles.
func Metric(label, value string) string {
	return MetricLabel.Render(label) + " " + MetricValue.Render(value)
}

// Sparkline renders values as a row of block characters, resampled to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i, n := 0, 0; i < len(values) && n < width; i, n = i+step, n+1 {
		idx := int((values[i] - lo) * float64(len(chars)-1) / rng)
		b.WriteRune(chars[idx])
	}
	return b.String()
}
