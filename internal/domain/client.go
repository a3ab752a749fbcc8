package domain

// Client is a customer record. Clients carry no branch of their own; branch
// scoping applies to appointments through their owning user only.
type Client struct {
	ID         int64
	FirstName  *string
	LastName   *string
	MiddleName *string
	Phone      *string
	Email      *string
	Visits     *int
	UserID     *int64
}
