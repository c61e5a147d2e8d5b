package helpers

import (
	"strings"
	"testing"

	"cryptoterm-tui/api"
)

func TestShortenAddr(t *testing.T) {
	t.Run("long address", func(t *testing.T) {
		got := ShortenAddr("0x71C7656EC7ab88b098defB751B7401B5f6d8976F")
		if !strings.HasPrefix(got, "0x71C7") || !strings.HasSuffix(got, "976F") {
			t.Errorf("Unexpected shortened address: %s", got)
		}
	})

	t.Run("short string unchanged", func(t *testing.T) {
		if got := ShortenAddr("0x1234"); got != "0x1234" {
			t.Errorf("Short input must pass through, got %s", got)
		}
	})
}

func TestIsValidAddress(t *testing.T) {
	cases := []struct {
		name  string
		chain api.ChainType
		addr  string
		want  bool
	}{
		{"eth valid", api.ChainETH, "0x71C7656EC7ab88b098defB751B7401B5f6d8976F", true},
		{"eth too short", api.ChainETH, "0x71C7656EC7ab88b098defB751B", false},
		{"eth no prefix", api.ChainETH, "71C7656EC7ab88b098defB751B7401B5f6d8976F", false},
		{"sol valid", api.ChainSOL, "4Nd1mY5a3SkRpKCtQWS1wUZFV3CCT1sKb6VVg1TRh1Pn", true},
		{"sol with zero digit", api.ChainSOL, "0Nd1mY5a3SkRpKCtQWS1wUZFV3CCT1sKb6VVg1TRh1Pn", false},
		{"tron valid", api.ChainTRON, "TJRabPrwbZy45sbavfcjinPJC18kjpRTv8", true},
		{"tron wrong prefix", api.ChainTRON, "XJRabPrwbZy45sbavfcjinPJC18kjpRTv8", false},
		{"eth address on sol chain", api.ChainSOL, "0x71C7656EC7ab88b098defB751B7401B5f6d8976F", false},
		{"unknown chain", api.ChainType("BTC"), "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", false},
		{"empty", api.ChainETH, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidAddress(tc.chain, tc.addr); got != tc.want {
				t.Errorf("IsValidAddress(%s, %q) = %v, want %v", tc.chain, tc.addr, got, tc.want)
			}
		})
	}
}

func TestIsValidMnemonic(t *testing.T) {
	twelve := strings.Repeat("abandon ", 11) + "about"
	twentyFour := strings.Repeat("abandon ", 23) + "about"

	if !IsValidMnemonic(twelve) {
		t.Error("12 words must be accepted")
	}
	if !IsValidMnemonic("  " + twentyFour + "  ") {
		t.Error("24 words with surrounding whitespace must be accepted")
	}
	if IsValidMnemonic(strings.Repeat("abandon ", 14) + "about") {
		t.Error("15 words must be rejected")
	}
	if IsValidMnemonic("") {
		t.Error("Empty phrase must be rejected")
	}
}

func TestParseAmount(t *testing.T) {
	t.Run("valid decimal", func(t *testing.T) {
		d, err := ParseAmount(" 0.25 ")
		if err != nil {
			t.Fatalf("ParseAmount failed: %v", err)
		}
		if d.String() != "0.25" {
			t.Errorf("Expected 0.25, got %s", d.String())
		}
	})

	t.Run("full precision survives", func(t *testing.T) {
		d, err := ParseAmount("1.000000000000000001")
		if err != nil {
			t.Fatalf("ParseAmount failed: %v", err)
		}
		if d.String() != "1.000000000000000001" {
			t.Errorf("Precision lost: %s", d.String())
		}
	})

	t.Run("rejects zero and negatives", func(t *testing.T) {
		if _, err := ParseAmount("0"); err == nil {
			t.Error("Zero must be rejected")
		}
		if _, err := ParseAmount("-1.5"); err == nil {
			t.Error("Negative must be rejected")
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := ParseAmount("1.2.3"); err == nil {
			t.Error("Malformed number must be rejected")
		}
		if _, err := ParseAmount("ten"); err == nil {
			t.Error("Words must be rejected")
		}
	})
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount("1.50", "ETH"); got != "1.5 ETH" {
		t.Errorf("Expected normalized amount, got %q", got)
	}
	if got := FormatAmount("n/a", "SOL"); got != "n/a SOL" {
		t.Errorf("Unparseable amount must pass through, got %q", got)
	}
}

func TestNativeSymbol(t *testing.T) {
	if s := NativeSymbol(api.ChainETH); s != "ETH" {
		t.Errorf("ETH chain symbol: %s", s)
	}
	if s := NativeSymbol(api.ChainSOL); s != "SOL" {
		t.Errorf("SOL chain symbol: %s", s)
	}
	if s := NativeSymbol(api.ChainTRON); s != "TRX" {
		t.Errorf("TRON chain symbol: %s", s)
	}
}
