package view

import (
	"time"

	"centavo/internal/money"
	"centavo/internal/transaction"
)

// FormatAmount renders cents in the fixed currency format ($1,234.50).
func FormatAmount(cents int64) string {
	return money.FormatCents(cents)
}

// FormatDate renders a timestamp as dd-MM-yyyy.
func FormatDate(t time.Time) string {
	return money.FormatDate(t)
}

// FormatSigned renders an amount with its flow direction and theme color.
func FormatSigned(st Styles, tx transaction.Transaction) string {
	if tx.Type == transaction.TypeIncome {
		return st.Positive.Render("+" + FormatAmount(tx.Amount))
	}

	return st.Negative.Render("-" + FormatAmount(tx.Amount))
}
