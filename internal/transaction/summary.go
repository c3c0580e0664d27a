package transaction

import "sort"

// CalculateSummary sums the list into income, expense, and balance totals
// in a single pass. An empty list yields all zeros.
func CalculateSummary(txs []Transaction) Summary {
	var s Summary

	for _, tx := range txs {
		if tx.Type == TypeIncome {
			s.TotalIncome += tx.Amount
		} else {
			s.TotalExpenses += tx.Amount
		}
	}

	s.TotalBalance = s.TotalIncome - s.TotalExpenses

	return s
}

// CategoryShare is one slice of the spending breakdown.
type CategoryShare struct {
	Category Category
	Amount   int64
	// Share of total expenses, in [0, 1].
	Share float64
}

// maxBreakdownEntries caps the breakdown at the largest categories.
const maxBreakdownEntries = 8

// ExpensesByCategory aggregates expense amounts per category and returns
// them largest-first with their share of total spending. Income is
// ignored. Ties keep the fixed category order.
func ExpensesByCategory(txs []Transaction) []CategoryShare {
	totals := make(map[Category]int64)

	var total int64

	for _, tx := range txs {
		if tx.Type != TypeExpense {
			continue
		}

		totals[tx.Category] += tx.Amount
		total += tx.Amount
	}

	if total == 0 {
		return nil
	}

	shares := make([]CategoryShare, 0, len(totals))
	for _, c := range Categories() {
		amount, ok := totals[c]
		if !ok {
			continue
		}

		shares = append(shares, CategoryShare{
			Category: c,
			Amount:   amount,
			Share:    float64(amount) / float64(total),
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount > shares[j].Amount
	})

	if len(shares) > maxBreakdownEntries {
		shares = shares[:maxBreakdownEntries]
	}

	return shares
}
