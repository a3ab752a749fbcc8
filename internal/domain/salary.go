package domain

// Salary is a commission rule tied to one user. The flat Salary figure is
// stored but not part of the payroll computation; only Percent is. A user
// without a salary row has an effective commission percent of zero.
type Salary struct {
	ID      int64
	Salary  int
	Percent int
	UserID  int64
}
