package dto

// CreateSalaryRequest records a commission rule for a user.
type CreateSalaryRequest struct {
	UserID  int64 `json:"user_id"`
	Salary  int   `json:"salary"`
	Percent int   `json:"percent"`
}

// SalaryResponse mirrors a stored commission rule.
type SalaryResponse struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"user_id"`
	Salary  int   `json:"salary"`
	Percent int   `json:"percent"`
}

// PayrollRowResponse is one employee's aggregated earnings, rounded to two
// decimal places at this presentation boundary.
type PayrollRowResponse struct {
	ID         int64   `json:"id"`
	FirstName  *string `json:"f_name"`
	LastName   *string `json:"l_name"`
	MiddleName *string `json:"m_name"`
	Salary     float64 `json:"salary"`
}
