package dto

// CreateUserRequest payload.
type CreateUserRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FirstName   *string `json:"f_name"`
	LastName    *string `json:"l_name"`
	MiddleName  *string `json:"m_name"`
	Baitursynov bool    `json:"baitursynov"`
	Gagarina    bool    `json:"gagarina"`
	IsSuperuser bool    `json:"is_superuser"`
	IsAdmin     bool    `json:"is_admin"`
	Position    *string `json:"position"`
}

// UserResponse mirrors the stored account without the credential hash.
type UserResponse struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	FirstName   *string `json:"f_name"`
	LastName    *string `json:"l_name"`
	MiddleName  *string `json:"m_name"`
	Baitursynov bool    `json:"baitursynov"`
	Gagarina    bool    `json:"gagarina"`
	IsSuperuser bool    `json:"is_superuser"`
	IsAdmin     bool    `json:"is_admin"`
	Position    *string `json:"position"`
}

// UserShort is the owner embedded in appointment responses.
type UserShort struct {
	FirstName   *string `json:"f_name"`
	LastName    *string `json:"l_name"`
	Baitursynov bool    `json:"baitursynov"`
	Gagarina    bool    `json:"gagarina"`
}
