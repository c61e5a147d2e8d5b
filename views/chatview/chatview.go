// Package chatview renders the AI assistant screen: the wallet-context
// sidebar and the conversation transcript.
package chatview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cryptoterm-tui/api"
	"cryptoterm-tui/chat"
	"cryptoterm-tui/helpers"
	"cryptoterm-tui/styles"
	"cryptoterm-tui/wallet"
)

// Nav returns the navigation bar for the chat view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("Enter") + " send",
		styles.Key("ctrl+w") + " wallet context",
		styles.Key("ctrl+n") + " new session",
		styles.Key("l") + " debug log",
		styles.Key("Esc") + " back",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}

// RenderTranscript renders the conversation for the transcript viewport.
func RenderTranscript(turns []chat.Turn, thinking bool, spinnerView string, width int) string {
	if len(turns) == 0 && !thinking {
		welcome := []string{
			styles.TitleStyle.Render("Welcome to the AI Wallet Assistant!"),
			lipgloss.NewStyle().Foreground(styles.CText).Render("Ask me anything about your wallets, crypto, or blockchain."),
			"",
			lipgloss.NewStyle().Foreground(styles.CMuted).Render("Example questions:"),
			lipgloss.NewStyle().Foreground(styles.CMuted).Render("  • How do I create a new Solana wallet?"),
			lipgloss.NewStyle().Foreground(styles.CMuted).Render("  • What's the current balance of my wallet?"),
			lipgloss.NewStyle().Foreground(styles.CMuted).Render("  • How do I send ETH to another address?"),
		}
		return strings.Join(welcome, "\n")
	}

	wrap := helpers.Max(20, width-10)
	userStyle := lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true)
	assistantStyle := lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(styles.CText).Width(wrap)

	var lines []string
	for _, turn := range turns {
		label := assistantStyle.Render("assistant")
		if turn.Role == chat.RoleUser {
			label = userStyle.Render("you")
		}
		lines = append(lines, label)
		lines = append(lines, bodyStyle.Render(turn.Content))
		lines = append(lines, "")
	}

	if thinking {
		lines = append(lines, assistantStyle.Render("assistant"))
		lines = append(lines, spinnerView+" thinking…")
	}

	return strings.Join(lines, "\n")
}

// RenderSidebar renders the wallet-context selector. selectedIdx 0 is the
// "general chat" entry; wallet i sits at selectedIdx i+1.
func RenderSidebar(wallets []api.Wallet, walletID string, detail *wallet.Detail, picking bool, selectedIdx int) string {
	lines := []string{styles.TitleStyle.Render("Select Wallet"), ""}

	mark := func(active, highlighted bool) string {
		bullet := "○ "
		if active {
			bullet = "● "
		}
		if picking && highlighted {
			return lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ " + bullet)
		}
		return "  " + bullet
	}

	generalStyle := lipgloss.NewStyle().Foreground(styles.CText)
	if picking && selectedIdx == 0 {
		generalStyle = generalStyle.Foreground(styles.CAccent2).Bold(true)
	}
	lines = append(lines, mark(walletID == "", selectedIdx == 0)+generalStyle.Render("No wallet (general chat)"))

	if len(wallets) == 0 {
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("No wallets available."))
	}

	for i, w := range wallets {
		nameStyle := lipgloss.NewStyle().Foreground(styles.CText)
		if picking && selectedIdx == i+1 {
			nameStyle = nameStyle.Foreground(styles.CAccent2).Bold(true)
		}
		lines = append(lines, mark(walletID == w.WalletID, selectedIdx == i+1)+nameStyle.Render(w.Name)+" "+styles.ChainBadge(string(w.ChainType)))
	}

	// enriched context of the scoped wallet, when loaded
	if detail != nil {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(styles.CMuted).Render("── context ──"))
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render(helpers.ShortenAddr(detail.Wallet.Address)))
		if detail.Balance != nil {
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.FormatAmount(detail.Balance.Balance, detail.Balance.TokenSymbol)))
		}
		for _, t := range detail.Tokens {
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("  "+t.Symbol+"  "+helpers.FormatAmount(t.Balance, "")))
		}
		if detail.Wallet.SponsorAddress != "" {
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.CWarn).Render("sponsor "+helpers.ShortenAddr(detail.Wallet.SponsorAddress)))
		}
	}

	return strings.Join(lines, "\n")
}
