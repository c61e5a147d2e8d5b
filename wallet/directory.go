// Package wallet holds the client-side wallet directory: the wallet list and
// the enriched detail of the currently selected wallet. The directory is
// owned by the update loop and mutated only through its methods.
package wallet

import (
	"time"

	"cryptoterm-tui/api"
)

// Detail is the enriched view of one selected wallet. Tokens and
// Transactions are best-effort: a failed fetch leaves them empty without
// failing the enrichment.
type Detail struct {
	Wallet       api.Wallet
	Balance      *api.Balance
	Tokens       []api.TokenHolding
	Transactions []api.Transaction
	LoadedAt     time.Time
	ErrMessage   string
}

// Directory is the wallet list plus the active selection. Each selection
// change bumps a generation counter; enrichment results are applied only when
// their generation still matches, so a slow response for a previously
// selected wallet can never overwrite the current one.
type Directory struct {
	wallets    []api.Wallet
	selectedID string
	generation uint64
	detail     Detail
	hasDetail  bool
}

// Wallets returns the held list in backend order.
func (d *Directory) Wallets() []api.Wallet { return d.wallets }

// Len returns the number of held wallets.
func (d *Directory) Len() int { return len(d.wallets) }

// Replace swaps the whole list. Callers keep the previous list by simply not
// calling Replace when the fetch failed.
func (d *Directory) Replace(wallets []api.Wallet) {
	d.wallets = wallets
}

// Append adds a freshly created or imported wallet to the end of the list.
func (d *Directory) Append(w api.Wallet) {
	d.wallets = append(d.wallets, w)
}

// At returns the wallet at list position i.
func (d *Directory) At(i int) (api.Wallet, bool) {
	if i < 0 || i >= len(d.wallets) {
		return api.Wallet{}, false
	}
	return d.wallets[i], true
}

// ByID looks a wallet up in the held list.
func (d *Directory) ByID(walletID string) (api.Wallet, bool) {
	for _, w := range d.wallets {
		if w.WalletID == walletID {
			return w, true
		}
	}
	return api.Wallet{}, false
}

// Select sets the active selection and returns the new enrichment
// generation. An empty id clears the selection (general context) and still
// bumps the generation so in-flight fetches for the old selection go stale.
func (d *Directory) Select(walletID string) uint64 {
	d.selectedID = walletID
	d.generation++
	d.detail = Detail{}
	d.hasDetail = false
	return d.generation
}

// SelectedID returns the active wallet id, or "" when none is selected.
func (d *Directory) SelectedID() string { return d.selectedID }

// Selected returns the selected wallet's list record, if any.
func (d *Directory) Selected() (api.Wallet, bool) {
	if d.selectedID == "" {
		return api.Wallet{}, false
	}
	return d.ByID(d.selectedID)
}

// Generation returns the current enrichment generation.
func (d *Directory) Generation() uint64 { return d.generation }

// ApplyDetail installs an enrichment result. It returns false and changes
// nothing when gen no longer matches the current selection's generation.
func (d *Directory) ApplyDetail(gen uint64, det Detail) bool {
	if gen != d.generation {
		return false
	}
	d.detail = det
	d.hasDetail = true
	return true
}

// Detail returns the installed detail and whether one is present for the
// current selection.
func (d *Directory) Detail() (Detail, bool) {
	return d.detail, d.hasDetail
}
