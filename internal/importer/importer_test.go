package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centavo/internal/importer"
	"centavo/internal/transaction"
)

func TestParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"Exported from somewhere",
		"",
		"date,type,category,amount,description",
		"01-06-2024,expense,Food,12.50,groceries",
		"02-06-2024,income,Salary,2500,paycheck",
		"03-06-2024,expense,Spaceships,9.99,unknown category",
		"not a date,expense,Food,1.00,footer junk",
		"04-06-2024,transfer,Food,1.00,unknown type",
		"05-06-2024,expense,Food,-3,negative amount",
	}, "\n")

	p := importer.NewParser()

	got, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, int64(1250), got[0].Amount)
	assert.Equal(t, transaction.TypeExpense, got[0].Type)
	assert.Equal(t, transaction.CategoryFood, got[0].Category)
	assert.Equal(t, "groceries", got[0].Description)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), got[0].Date)

	assert.Equal(t, int64(250000), got[1].Amount)
	assert.Equal(t, transaction.TypeIncome, got[1].Type)
	assert.Equal(t, transaction.CategorySalary, got[1].Category)

	// Unknown categories land in Other instead of being dropped.
	assert.Equal(t, transaction.CategoryOther, got[2].Category)
}

func TestParser_HeaderIsCaseInsensitive(t *testing.T) {
	input := "Date,Type,Category,Amount,Description\n01-06-2024,expense,Bills,40.00,power\n"

	p := importer.NewParser()

	got, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(4000), got[0].Amount)
}

func TestParser_NoHeader(t *testing.T) {
	p := importer.NewParser()

	_, err := p.Parse(strings.NewReader("just,some,cells\n1,2,3\n"))
	assert.Error(t, err)
}

func TestParser_MissingOptionalColumns(t *testing.T) {
	// Type and description columns are optional in position but rows
	// without a recognizable type are skipped.
	input := "date,amount\n01-06-2024,5.00\n"

	p := importer.NewParser()

	got, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParser_Windows1252Description(t *testing.T) {
	raw := append([]byte("date,type,category,amount,description\n01-06-2024,expense,Food,3.00,caf"), 0xE9, '\n')

	p := importer.NewParser()

	got, err := p.Parse(strings.NewReader(string(raw)))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "café", got[0].Description)
}
