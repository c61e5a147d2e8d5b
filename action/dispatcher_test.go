package action

import (
	"testing"

	"cryptoterm-tui/api"
)

func TestDispatch(t *testing.T) {
	t.Run("routes to registered handler", func(t *testing.T) {
		d := NewDispatcher(nil)

		var got string
		d.Register(KindCheckBalance, func(walletID string) {
			got = walletID
		})

		if !d.Dispatch(api.Action{Type: string(KindCheckBalance), WalletID: "w1"}) {
			t.Fatal("Dispatch must report true for a registered kind")
		}
		if got != "w1" {
			t.Errorf("Handler received %q, want w1", got)
		}
	})

	t.Run("each kind hits its own handler", func(t *testing.T) {
		d := NewDispatcher(nil)

		hits := map[Kind]int{}
		for _, k := range []Kind{
			KindCreateWallet,
			KindCheckBalance,
			KindSendTransaction,
			KindUpdateOwner,
			KindSetSponsor,
			KindBundleTransaction,
		} {
			k := k
			d.Register(k, func(string) { hits[k]++ })
		}

		for _, k := range []Kind{
			KindCreateWallet,
			KindCheckBalance,
			KindSendTransaction,
			KindUpdateOwner,
			KindSetSponsor,
			KindBundleTransaction,
		} {
			if !d.Dispatch(api.Action{Type: string(k)}) {
				t.Errorf("Dispatch(%s) reported false", k)
			}
		}

		for k, n := range hits {
			if n != 1 {
				t.Errorf("Handler for %s hit %d times, want 1", k, n)
			}
		}
	})

	t.Run("unknown kind is ignored", func(t *testing.T) {
		d := NewDispatcher(nil)
		d.Register(KindCheckBalance, func(string) {
			t.Error("Handler must not run for an unknown kind")
		})

		if d.Dispatch(api.Action{Type: "DELETE_EVERYTHING"}) {
			t.Error("Dispatch must report false for an unknown kind")
		}
	})

	t.Run("re-register replaces handler", func(t *testing.T) {
		d := NewDispatcher(nil)

		first, second := false, false
		d.Register(KindCreateWallet, func(string) { first = true })
		d.Register(KindCreateWallet, func(string) { second = true })

		d.Dispatch(api.Action{Type: string(KindCreateWallet)})
		if first {
			t.Error("Replaced handler must not run")
		}
		if !second {
			t.Error("Latest handler must run")
		}
	})
}
