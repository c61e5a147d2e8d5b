package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestKnownChain(t *testing.T) {
	for _, c := range []ChainType{ChainETH, ChainSOL, ChainTRON} {
		if !KnownChain(c) {
			t.Errorf("KnownChain(%s) = false, want true", c)
		}
	}
	for _, c := range []ChainType{"", "BTC", "eth"} {
		if KnownChain(c) {
			t.Errorf("KnownChain(%q) = true, want false", c)
		}
	}
}

func TestListWallets(t *testing.T) {
	t.Run("returns wallet list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/wallets" {
				t.Errorf("Expected path /wallets, got %s", r.URL.Path)
			}
			if r.Method != http.MethodGet {
				t.Errorf("Expected GET, got %s", r.Method)
			}
			json.NewEncoder(w).Encode([]Wallet{
				{WalletID: "w1", Name: "Main", ChainType: ChainETH, Address: "0xabc"},
				{WalletID: "w2", Name: "Backup", ChainType: ChainSOL, Address: "So1abc"},
			})
		}))
		defer srv.Close()

		c := New(srv.URL)
		wallets, err := c.ListWallets(context.Background())
		if err != nil {
			t.Fatalf("ListWallets failed: %v", err)
		}
		if len(wallets) != 2 {
			t.Fatalf("Expected 2 wallets, got %d", len(wallets))
		}
		if wallets[0].WalletID != "w1" || wallets[1].ChainType != ChainSOL {
			t.Errorf("Unexpected wallet payload: %+v", wallets)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("[]"))
		}))
		defer srv.Close()

		c := New(srv.URL)
		wallets, err := c.ListWallets(context.Background())
		if err != nil {
			t.Fatalf("ListWallets failed: %v", err)
		}
		if len(wallets) != 0 {
			t.Errorf("Expected empty list, got %d wallets", len(wallets))
		}
	})

	t.Run("trailing slash in base URL", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/wallets" {
				t.Errorf("Expected path /wallets, got %s", r.URL.Path)
			}
			w.Write([]byte("[]"))
		}))
		defer srv.Close()

		c := New(srv.URL + "/")
		if _, err := c.ListWallets(context.Background()); err != nil {
			t.Fatalf("ListWallets failed: %v", err)
		}
	})
}

func TestGetWallet(t *testing.T) {
	t.Run("not found is typed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Wallet not found"}`))
		}))
		defer srv.Close()

		c := New(srv.URL)
		_, err := c.GetWallet(context.Background(), "missing")
		if err == nil {
			t.Fatal("Expected error for 404")
		}
		if !IsNotFound(err) {
			t.Errorf("Expected IsNotFound to report true for: %v", err)
		}
	})

	t.Run("other statuses are not not-found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail":"boom"}`))
		}))
		defer srv.Close()

		c := New(srv.URL)
		_, err := c.GetWallet(context.Background(), "w1")
		if err == nil {
			t.Fatal("Expected error for 500")
		}
		if IsNotFound(err) {
			t.Errorf("500 must not be reported as not-found: %v", err)
		}
	})
}

func TestGetBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wallets/w1/balance" {
			t.Errorf("Expected path /wallets/w1/balance, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"balance":"1.500000000000000001","token_symbol":"ETH","usd_value":4200.5}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	bal, err := c.GetBalance(context.Background(), "w1")
	if err != nil {
		t.Fatalf("GetBalance failed: %v", err)
	}
	// Amounts stay strings on the wire; no float rounding allowed
	if bal.Balance != "1.500000000000000001" {
		t.Errorf("Balance must keep full precision, got %s", bal.Balance)
	}
	if bal.USDValue == nil || *bal.USDValue != 4200.5 {
		t.Errorf("Unexpected usd_value: %v", bal.USDValue)
	}
}

func TestCreateWallet(t *testing.T) {
	t.Run("create omits mnemonic", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/wallets" || r.Method != http.MethodPost {
				t.Errorf("Expected POST /wallets, got %s %s", r.Method, r.URL.Path)
			}
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if _, ok := body["mnemonic"]; ok {
				t.Error("Empty mnemonic must be omitted from the request body")
			}
			if body["name"] != "Main" || body["chain_type"] != "ETH" {
				t.Errorf("Unexpected body: %v", body)
			}
			json.NewEncoder(w).Encode(Wallet{WalletID: "w9", Name: "Main", ChainType: ChainETH, Address: "0xdef"})
		}))
		defer srv.Close()

		c := New(srv.URL)
		wlt, err := c.CreateWallet(context.Background(), CreateWalletRequest{Name: "Main", ChainType: ChainETH})
		if err != nil {
			t.Fatalf("CreateWallet failed: %v", err)
		}
		if wlt.WalletID != "w9" {
			t.Errorf("Expected wallet_id w9, got %s", wlt.WalletID)
		}
	})

	t.Run("import passes mnemonic through", func(t *testing.T) {
		mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["mnemonic"] != mnemonic {
				t.Errorf("Mnemonic not passed through: %v", body["mnemonic"])
			}
			json.NewEncoder(w).Encode(Wallet{WalletID: "w10"})
		}))
		defer srv.Close()

		c := New(srv.URL)
		if _, err := c.CreateWallet(context.Background(), CreateWalletRequest{Name: "Imported", ChainType: ChainSOL, Mnemonic: mnemonic}); err != nil {
			t.Fatalf("CreateWallet failed: %v", err)
		}
	})
}

func TestSendTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions" || r.Method != http.MethodPost {
			t.Errorf("Expected POST /transactions, got %s %s", r.Method, r.URL.Path)
		}
		var req SendTransactionRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Amount != "0.25" {
			t.Errorf("Amount must stay a string, got %q", req.Amount)
		}
		json.NewEncoder(w).Encode(Transaction{TxHash: "0xhash", Status: TxPending, Amount: req.Amount})
	}))
	defer srv.Close()

	c := New(srv.URL)
	tx, err := c.SendTransaction(context.Background(), SendTransactionRequest{
		WalletID:  "w1",
		ToAddress: "0x0000000000000000000000000000000000000001",
		Amount:    "0.25",
	})
	if err != nil {
		t.Fatalf("SendTransaction failed: %v", err)
	}
	if tx.Status != TxPending {
		t.Errorf("Expected pending status, got %s", tx.Status)
	}
}

func TestListTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/w1" {
			t.Errorf("Expected path /transactions/w1, got %s", r.URL.Path)
		}
		w.Write([]byte(`[{"tx_hash":"0x1","status":"confirmed","amount":"1.0"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	txs, err := c.ListTransactions(context.Background(), "w1")
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(txs) != 1 || txs[0].Status != TxConfirmed {
		t.Errorf("Unexpected transactions: %+v", txs)
	}
}

func TestChat(t *testing.T) {
	t.Run("first turn omits chat_id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/ai/chat" || r.Method != http.MethodPost {
				t.Errorf("Expected POST /ai/chat, got %s %s", r.Method, r.URL.Path)
			}
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if _, ok := body["chat_id"]; ok {
				t.Error("Empty chat_id must be omitted")
			}
			json.NewEncoder(w).Encode(ChatResponse{ChatID: "chat-1", Response: "Hello!"})
		}))
		defer srv.Close()

		c := New(srv.URL)
		resp, err := c.Chat(context.Background(), ChatRequest{Message: "hi"})
		if err != nil {
			t.Fatalf("Chat failed: %v", err)
		}
		if resp.ChatID != "chat-1" {
			t.Errorf("Expected backend-assigned chat id, got %q", resp.ChatID)
		}
		if resp.Action != nil {
			t.Errorf("Expected no action, got %+v", resp.Action)
		}
	})

	t.Run("action payload decodes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"chat_id":"chat-1","response":"Checking...","action":{"type":"CHECK_BALANCE","wallet_id":"w1"}}`))
		}))
		defer srv.Close()

		c := New(srv.URL)
		resp, err := c.Chat(context.Background(), ChatRequest{Message: "balance?", ChatID: "chat-1", WalletID: "w1"})
		if err != nil {
			t.Fatalf("Chat failed: %v", err)
		}
		if resp.Action == nil {
			t.Fatal("Expected an action")
		}
		if resp.Action.Type != "CHECK_BALANCE" || resp.Action.WalletID != "w1" {
			t.Errorf("Unexpected action: %+v", resp.Action)
		}
	})

	t.Run("plain error body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		}))
		defer srv.Close()

		c := New(srv.URL)
		if _, err := c.Chat(context.Background(), ChatRequest{Message: "hi"}); err == nil {
			t.Fatal("Expected error for 502")
		}
	})
}
