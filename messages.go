package main

import (
	"cryptoterm-tui/api"
	"cryptoterm-tui/wallet"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct{}

// clearStatusMsg clears transient status/copied feedback
type clearStatusMsg struct{}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// walletsLoadedMsg contains the wallet list fetch result
type walletsLoadedMsg struct {
	wallets []api.Wallet
	err     error
}

// walletCreatedMsg contains the create/import result
type walletCreatedMsg struct {
	wallet api.Wallet
	err    error
}

// detailLoadedMsg contains a wallet enrichment result. gen ties the result
// to the selection that requested it; stale generations are discarded.
type detailLoadedMsg struct {
	gen      uint64
	walletID string
	detail   wallet.Detail
	notFound bool
	err      error

	// best-effort fetches that degraded; logged, never fatal
	tokensErr error
	txsErr    error
}

// txSentMsg contains the send-transaction result
type txSentMsg struct {
	walletID string
	tx       api.Transaction
	err      error
}

// chatTurnMsg contains the AI chat reply
type chatTurnMsg struct {
	resp api.ChatResponse
	err  error
}
