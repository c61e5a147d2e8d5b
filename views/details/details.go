package details

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cryptoterm-tui/api"
	"cryptoterm-tui/helpers"
	"cryptoterm-tui/styles"
	"cryptoterm-tui/wallet"
)

// Nav returns the navigation bar for the details view
func Nav(width int, sending bool) string {
	var left string
	if sending {
		left = strings.Join([]string{
			styles.Key("Tab") + " next field",
			styles.Key("Enter") + " submit",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("t") + " send",
			styles.Key("q") + " receive QR",
			styles.Key("c") + " copy address",
			styles.Key("r") + " refresh",
			styles.Key("w") + " wallets",
			styles.Key("l") + " debug log",
			styles.Key("Esc") + " back",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}

// Render renders the wallet detail view
func Render(d wallet.Detail, loading bool, copiedMsg string, spinnerView string) string {
	name := d.Wallet.Name
	if name == "" {
		name = d.Wallet.WalletID
	}
	h := styles.TitleStyle.Render(name) + " " + styles.ChainBadge(string(d.Wallet.ChainType))

	addrStyle := lipgloss.NewStyle().Foreground(styles.CMuted)
	sub := addrStyle.Render(d.Wallet.Address)
	if copiedMsg != "" {
		sub += "  " + lipgloss.NewStyle().Foreground(styles.CAccent).Render(copiedMsg)
	}

	if loading {
		return h + "\n" + sub + "\n\n" + spinnerView + " fetching wallet…"
	}

	if d.ErrMessage != "" {
		msg := lipgloss.NewStyle().Foreground(styles.CWarn).Render("⚠ " + d.ErrMessage)
		hint := lipgloss.NewStyle().Foreground(styles.CMuted).Render("Press ") + styles.Key("r") +
			lipgloss.NewStyle().Foreground(styles.CMuted).Render(" to retry.")
		return h + "\n" + sub + "\n\n" + msg + "\n\n" + hint
	}

	lines := []string{h, sub, ""}

	// balance
	if d.Balance != nil {
		balLine := fmt.Sprintf("%s  %s",
			lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("Balance"),
			lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.FormatAmount(d.Balance.Balance, d.Balance.TokenSymbol)),
		)
		lines = append(lines, balLine)
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("Balance unavailable."))
	}
	lines = append(lines, "")

	// recovery phrase stays opaque; shown so the user can back it up elsewhere
	lines = append(lines, lipgloss.NewStyle().Foreground(styles.CWarn).Render("Encrypted mnemonic (keep secret)"))
	lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render(d.Wallet.EncryptedMnemonic))
	if d.Wallet.SponsorAddress != "" {
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CAccent).Render("Sponsor: ")+
			lipgloss.NewStyle().Foreground(styles.CText).Render(d.Wallet.SponsorAddress))
	}
	lines = append(lines, "")

	lines = append(lines, renderTokens(d.Tokens)...)
	lines = append(lines, "")
	lines = append(lines, renderTransactions(d.Transactions)...)

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("loaded "+helpers.LoadedAt(d.LoadedAt, loading)))

	return strings.Join(lines, "\n")
}

func renderTokens(tokens []api.TokenHolding) []string {
	if len(tokens) == 0 {
		return []string{lipgloss.NewStyle().Foreground(styles.CMuted).Render("No token holdings.")}
	}

	lines := []string{lipgloss.NewStyle().Foreground(styles.CMuted).Render("Tokens")}

	// table-ish rendering; backend order is display order
	for _, t := range tokens {
		row := fmt.Sprintf("%-8s  %s",
			lipgloss.NewStyle().Foreground(styles.CAccent).Render(t.Symbol),
			lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.FormatAmount(t.Balance, "")),
		)
		lines = append(lines, row)
	}
	return lines
}

func renderTransactions(txs []api.Transaction) []string {
	if len(txs) == 0 {
		return []string{lipgloss.NewStyle().Foreground(styles.CMuted).Render("No transactions found.")}
	}

	lines := []string{lipgloss.NewStyle().Foreground(styles.CMuted).Render("Transaction History")}
	for _, tx := range txs {
		row := fmt.Sprintf("%s  %s → %s  %s  %s",
			lipgloss.NewStyle().Foreground(styles.CMuted).Render(tx.Timestamp.Format("01-02 15:04")),
			lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.ShortenAddr(tx.FromAddress)),
			lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.ShortenAddr(tx.ToAddress)),
			lipgloss.NewStyle().Foreground(styles.CAccent2).Render(helpers.FormatAmount(tx.Amount, tx.TokenSymbol)),
			statusBadge(tx.Status),
		)
		lines = append(lines, row)
	}
	return lines
}

func statusBadge(status string) string {
	var c lipgloss.Color
	switch status {
	case api.TxConfirmed:
		c = styles.CAccent
	case api.TxPending:
		c = styles.CWarn
	default:
		c = styles.CError
	}
	return lipgloss.NewStyle().Foreground(c).Render(status)
}
