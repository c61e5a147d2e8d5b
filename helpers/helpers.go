package helpers

import (
	"fmt"
	"image/color"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
	"github.com/shopspring/decimal"

	"cryptoterm-tui/api"
)

// ShortenAddr shortens a wallet address for display
func ShortenAddr(addr string) string {
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

var (
	ethAddrRe  = regexp.MustCompile("^0x[0-9a-fA-F]{40}$")
	solAddrRe  = regexp.MustCompile("^[1-9A-HJ-NP-Za-km-z]{32,44}$")
	tronAddrRe = regexp.MustCompile("^T[1-9A-HJ-NP-Za-km-z]{33}$")
)

// IsValidAddress checks whether s looks like an address on the given chain.
// This is a shape check only; the backend is the authority on validity.
func IsValidAddress(chain api.ChainType, s string) bool {
	switch chain {
	case api.ChainETH:
		return ethAddrRe.MatchString(s)
	case api.ChainSOL:
		return solAddrRe.MatchString(s)
	case api.ChainTRON:
		return tronAddrRe.MatchString(s)
	}
	return false
}

// IsValidMnemonic checks for a 12 or 24 word recovery phrase.
func IsValidMnemonic(s string) bool {
	words := strings.Fields(strings.TrimSpace(s))
	return len(words) == 12 || len(words) == 24
}

// ParseAmount parses a user-entered amount and rejects zero and negative
// values. Amounts stay decimal strings end to end; nothing is converted to
// base units client-side.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount")
	}
	if d.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("amount must be greater than 0")
	}
	return d, nil
}

// FormatAmount normalizes a backend amount string for display. Unparseable
// strings are shown as-is rather than hidden.
func FormatAmount(amount, symbol string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		if symbol == "" {
			return amount
		}
		return amount + " " + symbol
	}
	out := d.String()
	if symbol != "" {
		out += " " + symbol
	}
	return out
}

// NativeSymbol returns the gas token symbol for a chain.
func NativeSymbol(chain api.ChainType) string {
	switch chain {
	case api.ChainSOL:
		return "SOL"
	case api.ChainTRON:
		return "TRX"
	default:
		return "ETH"
	}
}

// LoadedAt formats the loaded timestamp
func LoadedAt(t time.Time, loading bool) string {
	if loading {
		return "loading…"
	}
	if t.IsZero() {
		return "never"
	}
	return t.Format("15:04:05")
}

// FadeString creates a gradient colored string
func FadeString(s string, firstColor string, lastColor string) string {
	blends := gamut.Blends(lipgloss.Color(firstColor), lipgloss.Color(lastColor), len(s))
	return rainbow(lipgloss.NewStyle(), s, blends)
}

func rainbow(baseStyle lipgloss.Style, str string, colors []color.Color) string {
	var result string
	for i, c := range str {
		col, _ := colorful.MakeColor(colors[i%len(colors)])
		result += baseStyle.Foreground(lipgloss.Color(col.Hex())).Render(string(c))
	}
	return result
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
