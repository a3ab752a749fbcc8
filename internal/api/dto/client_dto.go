package dto

// CreateClientRequest payload.
type CreateClientRequest struct {
	FirstName  *string `json:"f_name"`
	LastName   *string `json:"l_name"`
	MiddleName *string `json:"m_name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Visits     *int    `json:"visit"`
}

// ClientResponse mirrors a stored client.
type ClientResponse struct {
	ID         int64   `json:"id"`
	FirstName  *string `json:"f_name"`
	LastName   *string `json:"l_name"`
	MiddleName *string `json:"m_name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Visits     *int    `json:"visit"`
}

// ClientShort is the client embedded in appointment responses.
type ClientShort struct {
	FirstName *string `json:"f_name"`
	LastName  *string `json:"l_name"`
	Phone     *string `json:"phone"`
}
