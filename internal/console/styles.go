package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/audible-altimeter/internal/driver"
)

const volumeBarWidth = 24

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0af68"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	volumeQuiet = mustHex("#9ece6a")
	volumeLoud  = mustHex("#f7768e")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// filledCells returns how many bar cells a level fills.
func filledCells(level int16, width int) int {
	span := int(driver.MaxVolume) - int(driver.MinVolume)
	pos := int(driver.ClampVolume(level)) - int(driver.MinVolume)
	return pos * width / span
}

// renderVolume draws the volume bar. Filled cells blend from green to red in
// HCL space so the loud end stands out.
func renderVolume(level int16, muted bool) string {
	filled := filledCells(level, volumeBarWidth)

	var b strings.Builder
	b.WriteString("Volume ")
	for i := range volumeBarWidth {
		if i >= filled || muted {
			b.WriteString(dimStyle.Render("░"))
			continue
		}
		t := float64(i) / float64(volumeBarWidth-1)
		c := volumeQuiet.BlendHcl(volumeLoud, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█"))
	}

	label := fmt.Sprintf(" %+d dB", level)
	if muted {
		label += " (muted)"
	}
	b.WriteString(label)
	return b.String()
}
