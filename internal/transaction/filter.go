package transaction

import "sort"

// Matches reports whether tx satisfies every constraint set on the filter.
// A zero filter matches everything.
func (f Filter) Matches(tx Transaction) bool {
	if f.Type != nil && tx.Type != *f.Type {
		return false
	}

	if f.Category != nil && tx.Category != *f.Category {
		return false
	}

	if f.MinAmount != nil && tx.Amount < *f.MinAmount {
		return false
	}

	if f.MaxAmount != nil && tx.Amount > *f.MaxAmount {
		return false
	}

	if f.DateFrom != nil && tx.Date.Before(*f.DateFrom) {
		return false
	}

	if f.DateTo != nil && tx.Date.After(*f.DateTo) {
		return false
	}

	return true
}

// FilterTransactions returns the transactions matching the filter, in
// their original relative order. The input is never mutated.
func FilterTransactions(txs []Transaction, f Filter) []Transaction {
	out := make([]Transaction, 0, len(txs))

	for _, tx := range txs {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}

	return out
}

// SortByDate returns a new slice ordered newest-first. Ties keep their
// original relative order; the input slice is left untouched.
func SortByDate(txs []Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	copy(out, txs)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out
}
