// Package api wraps the backend REST surface: wallets, balances, tokens,
// transactions and AI chat turns. Every call is a single request with a
// success or error outcome; there is no retry, caching or batching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds each request when the caller's context carries no
// deadline of its own.
const DefaultTimeout = 12 * time.Second

// Client talks to one backend base URL, fixed at construction.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a client for baseURL (e.g. "http://localhost:8001/api").
func New(baseURL string) *Client {
	return NewWithTimeout(baseURL, DefaultTimeout)
}

// NewWithTimeout creates a client with a custom per-request timeout.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the base URL the client was constructed with.
func (c *Client) BaseURL() string { return c.baseURL }

// ListWallets fetches every wallet known to the backend.
func (c *Client) ListWallets(ctx context.Context) ([]Wallet, error) {
	var wallets []Wallet
	if err := c.get(ctx, "wallets", "/wallets", &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

// GetWallet fetches a single wallet record by id.
func (c *Client) GetWallet(ctx context.Context, walletID string) (Wallet, error) {
	var w Wallet
	err := c.get(ctx, "wallet", "/wallets/"+url.PathEscape(walletID), &w)
	return w, err
}

// GetBalance fetches the native balance of a wallet.
func (c *Client) GetBalance(ctx context.Context, walletID string) (Balance, error) {
	var b Balance
	err := c.get(ctx, "balance", "/wallets/"+url.PathEscape(walletID)+"/balance", &b)
	return b, err
}

// GetTokens fetches the token holdings of a wallet in backend order.
func (c *Client) GetTokens(ctx context.Context, walletID string) ([]TokenHolding, error) {
	var tokens []TokenHolding
	if err := c.get(ctx, "tokens", "/wallets/"+url.PathEscape(walletID)+"/tokens", &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// CreateWallet creates a new wallet, or imports one when req.Mnemonic is set.
// The returned record is the backend's verbatim; the client mutates nothing.
func (c *Client) CreateWallet(ctx context.Context, req CreateWalletRequest) (Wallet, error) {
	var w Wallet
	err := c.post(ctx, "wallet", "/wallets", req, &w)
	return w, err
}

// SendTransaction submits a transfer. Callers re-fetch wallet, balance and
// history afterwards; nothing refreshes automatically.
func (c *Client) SendTransaction(ctx context.Context, req SendTransactionRequest) (Transaction, error) {
	var tx Transaction
	err := c.post(ctx, "transaction", "/transactions", req, &tx)
	return tx, err
}

// ListTransactions fetches the transaction history of a wallet.
func (c *Client) ListTransactions(ctx context.Context, walletID string) ([]Transaction, error) {
	var txs []Transaction
	if err := c.get(ctx, "transactions", "/transactions/"+url.PathEscape(walletID), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// Chat posts one chat turn and returns the assistant reply.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	var resp ChatResponse
	err := c.post(ctx, "chat", "/ai/chat", req, &resp)
	return resp, err
}

func (c *Client) get(ctx context.Context, resource, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", resource, err)
	}
	return c.do(req, resource, out)
}

func (c *Client) post(ctx context.Context, resource, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", resource, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", resource, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, resource, out)
}

func (c *Client) do(req *http.Request, resource string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Resource: resource,
			Status:   resp.StatusCode,
			Message:  readDetail(resp.Body),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", resource, err)
	}
	return nil
}

// readDetail pulls a human-readable message out of an error body. The backend
// uses {"detail": "..."}; anything else is returned as trimmed raw text.
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return strings.TrimSpace(string(raw))
}
