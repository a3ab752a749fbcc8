package domain

// Expense is a standalone ledger line, not scoped by role or branch.
type Expense struct {
	ID     int64
	Name   *string
	Amount int
}
