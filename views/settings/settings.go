package settings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cryptoterm-tui/config"
	"cryptoterm-tui/styles"
)

// Nav returns the navigation bar for settings view
func Nav(width int, settingsMode string) string {
	var left string
	if settingsMode == "add" || settingsMode == "edit" {
		left = strings.Join([]string{
			styles.Key("l") + " debug log",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " select",
			styles.Key("Enter") + " activate",
			styles.Key("a") + " add",
			styles.Key("e") + " edit",
			styles.Key("d") + " delete",
			styles.Key("h") + " home",
			styles.Key("l") + " debug log",
			styles.Key("Esc") + " back",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}

// Render renders the backend settings view
func Render(backends []config.Backend, selectedIdx int) string {
	h := styles.TitleStyle.Render("Backend Settings")

	lines := []string{h, ""}

	if len(backends) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("No backends configured."))
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("Press ")+styles.Key("a")+lipgloss.NewStyle().Foreground(styles.CMuted).Render(" to add your first backend URL."))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("Configured API Endpoints:"))
		lines = append(lines, "")

		for i, b := range backends {
			var marker string
			if b.Active {
				marker = lipgloss.NewStyle().Foreground(styles.CAccent).Render("● ")
			} else {
				marker = lipgloss.NewStyle().Foreground(styles.CMuted).Render("○ ")
			}

			nameStyle := lipgloss.NewStyle().Foreground(styles.CText)
			urlStyle := lipgloss.NewStyle().Foreground(styles.CMuted)

			if i == selectedIdx {
				nameStyle = nameStyle.Background(styles.CPanel).Foreground(styles.CAccent2).Bold(true)
				urlStyle = urlStyle.Background(styles.CPanel)
				marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Render("▶ ")
			}

			line := marker + nameStyle.Render(b.Name)
			lines = append(lines, line)
			lines = append(lines, "  "+urlStyle.Render(b.URL))
			lines = append(lines, "")
		}

		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CWarn).Render("Switching backends restarts the session."))
	}

	return strings.Join(lines, "\n")
}
