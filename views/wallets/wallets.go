package wallets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cryptoterm-tui/api"
	"cryptoterm-tui/helpers"
	"cryptoterm-tui/styles"
)

// Nav returns the navigation bar for the wallets view
func Nav(width int, creating bool) string {
	var left string
	if creating {
		left = strings.Join([]string{
			styles.Key("Tab") + " next field",
			styles.Key("Enter") + " submit",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " move",
			styles.Key("Enter") + " open",
			styles.Key("a") + " add",
			styles.Key("c") + " chat",
			styles.Key("r") + " refresh",
			styles.Key("h") + " home",
			styles.Key("s") + " settings",
			styles.Key("l") + " debug log",
			styles.Key("Esc") + " quit",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}

// RenderList renders the wallet list
func RenderList(wallets []api.Wallet, selectedIdx int) string {
	if len(wallets) == 0 {
		return lipgloss.NewStyle().Foreground(styles.CMuted).Render("You don't have any wallets yet. Press 'a' to create one.")
	}

	var listItems []string
	for i, w := range wallets {
		var itemStyle lipgloss.Style
		var marker string
		var addrLine string

		if i == selectedIdx {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ ")
			itemStyle = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true)
			addrLine = lipgloss.NewStyle().Foreground(styles.CText).Render(w.Address)
		} else {
			marker = "  "
			itemStyle = lipgloss.NewStyle().Foreground(styles.CText)
			addrLine = lipgloss.NewStyle().Foreground(styles.CMuted).Render(helpers.ShortenAddr(w.Address))
		}

		listItems = append(listItems, marker+itemStyle.Render(w.Name)+" "+styles.ChainBadge(string(w.ChainType))+"\n  "+addrLine)
	}

	return strings.Join(listItems, "\n\n")
}

// Render renders the full wallets view
func Render(wallets []api.Wallet, selectedIdx int, statusMsg string) string {
	header := styles.TitleStyle.Render("Your Wallets")
	subtitle := lipgloss.NewStyle().Foreground(styles.CMuted).Render("Browse wallets across ETH, SOL and TRON")

	listView := RenderList(wallets, selectedIdx)

	statusBar := lipgloss.NewStyle().Foreground(styles.CMuted).Render(
		fmt.Sprintf("%d wallets", len(wallets)),
	)
	if statusMsg != "" {
		statusBar += "   " + styles.ErrorStyle.Render(statusMsg)
	}

	return header + "\n" + subtitle + "\n\n" + listView + "\n\n" + statusBar
}
