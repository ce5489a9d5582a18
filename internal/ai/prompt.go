// Package ai builds the finance-context prompt and relays it to the
// external chat-completion service.
package ai

import (
	"fmt"
	"strings"

	"github.com/DeniseL168/FinanceApp/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate sums the user's transactions by type and returns total
// income, total expense and the resulting balance.
func Aggregate(txs []models.Transaction) (income, expense, balance decimal.Decimal) {
	for _, tx := range txs {
		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil {
			// amounts are validated at write time; skip anything older
			// or hand-edited that no longer parses
			continue
		}
		switch tx.Type {
		case "income":
			income = income.Add(amount)
		case "expense":
			expense = expense.Add(amount)
		}
	}
	balance = income.Sub(expense)
	return income, expense, balance
}

// BuildPrompt embeds the user's aggregated finance data, the raw
// transaction list and the question into a single completion prompt.
func BuildPrompt(txs []models.Transaction, message string) string {
	income, expense, balance := Aggregate(txs)

	var b strings.Builder
	b.WriteString("User Finance Data:\n")
	fmt.Fprintf(&b, "Income: $%s\n", income)
	fmt.Fprintf(&b, "Expense: $%s\n", expense)
	fmt.Fprintf(&b, "Balance: $%s\n", balance)

	b.WriteString("Transactions: [")
	for i, tx := range txs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "{description: %s, amount: %s, type: %s, category: %s, date: %s}",
			tx.Description, tx.Amount, tx.Type, tx.Category, tx.Date)
	}
	b.WriteString("]\n")

	fmt.Fprintf(&b, "User question: %s", message)
	return b.String()
}
