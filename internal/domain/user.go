package domain

// User is a staff member account. Branch membership is stored as two
// independent boolean flags rather than an enumerated value; nothing in the
// schema prevents a user from carrying both flags or neither.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsSuperuser  bool
	IsAdmin      bool
	FirstName    *string
	LastName     *string
	MiddleName   *string
	Baitursynov  bool
	Gagarina     bool
	Position     *string
}
