package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Category is one of the fixed set of labels a transaction is filed under.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryBills         Category = "Bills"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategorySalary        Category = "Salary"
	CategoryBusiness      Category = "Business"
	CategoryOther         Category = "Other"
)

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTravel,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryHealthcare,
		CategoryEducation,
		CategorySalary,
		CategoryBusiness,
		CategoryOther,
	}
}

// ParseCategory maps a label onto a known category, falling back to Other.
func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if string(c) == s {
			return c
		}
	}

	return CategoryOther
}

// Transaction represents one recorded financial event.
type Transaction struct {
	ID          string
	Amount      int64 // Amount in cents
	Category    Category
	Type        Type
	Date        time.Time
	Description string
}

// Summary holds the derived totals over a transaction list. It is
// recomputed from the list on every change and never persisted.
type Summary struct {
	TotalIncome   int64
	TotalExpenses int64
	TotalBalance  int64
}

// Filter narrows a transaction list for display. Nil fields mean no
// constraint on that dimension; present fields are ANDed.
type Filter struct {
	Type      *Type
	Category  *Category
	MinAmount *int64
	MaxAmount *int64
	DateFrom  *time.Time
	DateTo    *time.Time
}

// CreateParams carries the caller-supplied fields of a new transaction.
// The ID is always generated at creation time; Date defaults to the
// creation time when left zero (imports supply historical dates).
type CreateParams struct {
	Amount      int64
	Category    Category
	Type        Type
	Description string
	Date        time.Time
}

// NewID returns a fresh opaque transaction identifier. A UUID replaces
// the time-plus-random scheme sometimes seen in trackers of this kind,
// so uniqueness does not depend on clock resolution.
func NewID() string {
	return uuid.NewString()
}
