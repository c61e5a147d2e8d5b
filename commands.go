package main

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"cryptoterm-tui/api"
	"cryptoterm-tui/wallet"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// loadWallets fetches the full wallet list from the backend
func loadWallets(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
		defer cancel()

		wallets, err := client.ListWallets(ctx)
		return walletsLoadedMsg{wallets: wallets, err: err}
	}
}

// createWallet creates a wallet, or imports one when the request carries a
// mnemonic. Both go to the same endpoint.
func createWallet(client *api.Client, req api.CreateWalletRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
		defer cancel()

		w, err := client.CreateWallet(ctx, req)
		return walletCreatedMsg{wallet: w, err: err}
	}
}

// loadDetail runs the enrichment for one selected wallet: wallet record and
// balance, plus best-effort tokens and transaction history. Token or history
// failure degrades to an empty list; it never fails the enrichment.
func loadDetail(client *api.Client, gen uint64, walletID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
		defer cancel()

		det := wallet.Detail{LoadedAt: time.Now()}

		w, err := client.GetWallet(ctx, walletID)
		if err != nil {
			return detailLoadedMsg{
				gen:      gen,
				walletID: walletID,
				notFound: api.IsNotFound(err),
				err:      err,
			}
		}
		det.Wallet = w

		bal, err := client.GetBalance(ctx, walletID)
		if err != nil {
			det.ErrMessage = "Failed to load balance."
			return detailLoadedMsg{gen: gen, walletID: walletID, detail: det, err: err}
		}
		det.Balance = &bal

		var tokensErr, txsErr error
		if tokens, err := client.GetTokens(ctx, walletID); err != nil {
			tokensErr = err
		} else {
			det.Tokens = tokens
		}
		if txs, err := client.ListTransactions(ctx, walletID); err != nil {
			txsErr = err
		} else {
			det.Transactions = txs
		}

		return detailLoadedMsg{
			gen:       gen,
			walletID:  walletID,
			detail:    det,
			tokensErr: tokensErr,
			txsErr:    txsErr,
		}
	}
}

// sendTransaction submits a transfer. The caller re-runs the enrichment on
// success; nothing refreshes automatically here.
func sendTransaction(client *api.Client, req api.SendTransactionRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
		defer cancel()

		tx, err := client.SendTransaction(ctx, req)
		return txSentMsg{walletID: req.WalletID, tx: tx, err: err}
	}
}

// sendChatTurn posts one chat turn. chatID is empty on the first turn;
// walletID is empty for general chat.
func sendChatTurn(client *api.Client, message, chatID, walletID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
		defer cancel()

		resp, err := client.Chat(ctx, api.ChatRequest{
			Message:  message,
			ChatID:   chatID,
			WalletID: walletID,
		})
		return chatTurnMsg{resp: resp, err: err}
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err == nil {
			return clipboardCopiedMsg{}
		}
		return nil
	}
}

// clearStatusAfter waits then clears transient feedback
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
