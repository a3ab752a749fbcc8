package dto

// CreateExpenseRequest payload.
type CreateExpenseRequest struct {
	Name   *string `json:"name"`
	Amount *int    `json:"expense"`
}

// ExpenseResponse mirrors a stored ledger line.
type ExpenseResponse struct {
	ID     int64   `json:"id"`
	Name   *string `json:"name"`
	Amount int     `json:"expense"`
}
