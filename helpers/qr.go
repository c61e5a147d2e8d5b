package helpers

import (
	"strings"

	"github.com/mdp/qrterminal/v3"
)

// GenerateQRCode renders text as a terminal QR code. Used for the
// receive-address popup so another device can scan the wallet address.
func GenerateQRCode(text string) string {
	var sb strings.Builder
	qrterminal.GenerateWithConfig(text, qrterminal.Config{
		Level:      qrterminal.L,
		Writer:     &sb,
		HalfBlocks: true,
		QuietZone:  1,
	})
	return sb.String()
}
