// Package action interprets the structured follow-up instructions the AI
// backend may attach to a chat reply. Dispatch is a registration table, not a
// switch: new kinds are new entries, existing handlers stay untouched.
package action

import (
	"github.com/charmbracelet/log"

	"cryptoterm-tui/api"
)

// Kind discriminates the action variants the backend emits.
type Kind string

const (
	KindCreateWallet      Kind = "CREATE_WALLET"
	KindCheckBalance      Kind = "CHECK_BALANCE"
	KindSendTransaction   Kind = "SEND_TRANSACTION"
	KindUpdateOwner       Kind = "UPDATE_OWNER"
	KindSetSponsor        Kind = "SET_SPONSOR"
	KindBundleTransaction Kind = "BUNDLE_TRANSACTION"
)

// Handler performs the client-side effect of one action kind. The wallet id
// is empty for kinds that carry none (CREATE_WALLET).
type Handler func(walletID string)

// Dispatcher maps action kinds to handlers. Unrecognized kinds are logged and
// ignored, never fatal. The dispatcher performs no backend calls of its own;
// whatever a handler triggers (like a balance refresh) is the handler's
// business.
type Dispatcher struct {
	handlers map[Kind]Handler
	logger   *log.Logger
}

// NewDispatcher creates an empty dispatcher. logger may be nil.
func NewDispatcher(logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[Kind]Handler),
		logger:   logger,
	}
}

// Register installs the handler for kind, replacing any previous one.
func (d *Dispatcher) Register(kind Kind, h Handler) {
	d.handlers[kind] = h
}

// Dispatch runs the handler registered for the action's kind. It returns
// false when the kind is unknown.
func (d *Dispatcher) Dispatch(a api.Action) bool {
	h, ok := d.handlers[Kind(a.Type)]
	if !ok {
		if d.logger != nil {
			d.logger.Warn("ignoring unknown AI action", "type", a.Type, "wallet", a.WalletID)
		}
		return false
	}
	if d.logger != nil {
		d.logger.Info("AI action", "type", a.Type, "wallet", a.WalletID)
	}
	h(a.WalletID)
	return true
}
