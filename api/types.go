package api

import "time"

// ChainType identifies the blockchain network a wallet belongs to.
type ChainType string

const (
	ChainETH  ChainType = "ETH"
	ChainSOL  ChainType = "SOL"
	ChainTRON ChainType = "TRON"
)

// KnownChain reports whether c is one of the supported chain types.
func KnownChain(c ChainType) bool {
	switch c {
	case ChainETH, ChainSOL, ChainTRON:
		return true
	}
	return false
}

// Wallet is the backend's wallet record. The mnemonic is stored and
// transmitted only in its opaque encrypted form; the client never decodes it.
type Wallet struct {
	WalletID          string    `json:"wallet_id"`
	Name              string    `json:"name"`
	ChainType         ChainType `json:"chain_type"`
	Address           string    `json:"address"`
	PublicKey         string    `json:"public_key,omitempty"`
	EncryptedMnemonic string    `json:"encrypted_mnemonic,omitempty"`
	SponsorAddress    string    `json:"sponsor_address,omitempty"`
	CreatedAt         time.Time `json:"created_at,omitempty"`
}

// Balance is the native balance of one wallet. The amount stays a string so
// large values survive the wire untouched.
type Balance struct {
	WalletID    string   `json:"wallet_id"`
	Address     string   `json:"address"`
	Balance     string   `json:"balance"`
	TokenSymbol string   `json:"token_symbol"`
	USDValue    *float64 `json:"usd_value,omitempty"`
}

// TokenHolding is a single token position of a wallet. Backend ordering is
// display ordering.
type TokenHolding struct {
	Symbol  string `json:"symbol"`
	Balance string `json:"balance"`
}

// Transaction statuses as reported by the backend.
const (
	TxPending   = "pending"
	TxConfirmed = "confirmed"
	TxFailed    = "failed"
)

// Transaction is a transfer record belonging to a wallet. Records are never
// mutated locally, only refetched.
type Transaction struct {
	TxID        string    `json:"tx_id"`
	WalletID    string    `json:"wallet_id"`
	FromAddress string    `json:"from_address"`
	ToAddress   string    `json:"to_address"`
	Amount      string    `json:"amount"`
	TokenSymbol string    `json:"token_symbol"`
	TxHash      string    `json:"tx_hash,omitempty"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

// CreateWalletRequest creates a wallet when Mnemonic is empty and imports an
// existing one when it is set. Both go to the same endpoint.
type CreateWalletRequest struct {
	Name      string    `json:"name"`
	ChainType ChainType `json:"chain_type"`
	Mnemonic  string    `json:"mnemonic,omitempty"`
}

// SendTransactionRequest submits a transfer from a wallet.
type SendTransactionRequest struct {
	WalletID    string `json:"wallet_id"`
	ToAddress   string `json:"to_address"`
	Amount      string `json:"amount"`
	TokenSymbol string `json:"token_symbol"`
}

// ChatRequest is one user turn. ChatID is empty on the first turn of a
// session; WalletID is empty for general, non-wallet-scoped chat.
type ChatRequest struct {
	Message  string `json:"message"`
	ChatID   string `json:"chat_id,omitempty"`
	WalletID string `json:"wallet_id,omitempty"`
}

// ChatResponse carries the assistant reply, the session id (assigned by the
// backend on the first turn) and an optional suggested follow-up action.
type ChatResponse struct {
	ChatID   string  `json:"chat_id"`
	Response string  `json:"response"`
	Action   *Action `json:"action,omitempty"`
}

// Action is a structured instruction the AI backend may attach to a reply.
// It is transient: dispatched once, never persisted.
type Action struct {
	Type     string `json:"type"`
	WalletID string `json:"wallet_id,omitempty"`
}
