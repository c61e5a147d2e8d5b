package home

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"cryptoterm-tui/styles"
)

// TempSelection stores the home menu selection
var TempSelection string

// CreateForm creates the home menu form
func CreateForm() *huh.Form {
	TempSelection = ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(
					huh.NewOption("Your Wallets", "wallets"),
					huh.NewOption("AI Chat", "chat"),
					huh.NewOption("Backend Settings", "settings"),
				).
				Title("Main Menu").
				Description("Select a view to navigate to").
				Value(&TempSelection),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// Render renders the home view
func Render(form *huh.Form) string {
	hero := styles.TitleStyle.Render("Manage Your Crypto with AI") + "\n" +
		lipgloss.NewStyle().Foreground(styles.CMuted).Render("Wallets on ETH, SOL and TRON, with an assistant that can suggest actions.") + "\n\n" +
		lipgloss.NewStyle().Foreground(styles.CWarn).Render("Demo app. Do not use for real funds.")

	if form != nil {
		return hero + "\n\n" + form.View()
	}
	return hero + "\n\nLoading menu..."
}

// Nav returns the navigation bar for home view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " select",
		styles.Key("Enter") + " go",
		styles.Key("l") + " logger",
		styles.Key("Esc") + " quit",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
