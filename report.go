package ach

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Report returns a human-readable listing of each entry's individual name
// with its signed amount (credits negative) followed by the file's debit
// and credit totals. Serialization is forced first so the totals reflect
// the current batches.
func (f *File) Report() string {
	_ = f.String()

	var lines []string
	for _, b := range f.Batches {
		for _, e := range b.Entries {
			amount := int64(e.Amount)
			if e.IsCredit() {
				amount = -amount
			}
			lines = append(lines, fmt.Sprintf("%-25s%s", e.IndividualName+": ", formatCents(amount)))
		}
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%-25s%s", "Debit Total: ", formatCents(int64(f.Control.DebitTotal))))
	lines = append(lines, fmt.Sprintf("%-25s%s", "Credit Total: ", formatCents(int64(f.Control.CreditTotal))))
	return strings.Join(lines, "\r\n")
}

// formatCents renders a minor-unit amount as a right-aligned decimal
// string with two fraction digits.
func formatCents(cents int64) string {
	return fmt.Sprintf("%10s", decimal.New(cents, -2).StringFixed(2))
}
