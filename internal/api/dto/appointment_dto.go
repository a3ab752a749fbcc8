package dto

import "time"

// CreateAppointmentRequest payload. The timestamp arrives as an ISO-8601
// string and is validated at the handler boundary.
type CreateAppointmentRequest struct {
	UserID            int64   `json:"user_id"`
	ClientID          int64   `json:"client_id"`
	DateOfAppointment string  `json:"date_of_appointment"`
	Price             *int    `json:"price"`
	Course            *string `json:"course"`
	Discount          *int    `json:"discount"`
	TypeOfPayment     *string `json:"type_of_payment"`
	TypeOfMassage     *string `json:"type_of_massage"`
	Duration          *int    `json:"duration"`
	Service           *string `json:"service"`
}

// AppointmentResponse mirrors a stored appointment with its owner and client.
type AppointmentResponse struct {
	ID                int64        `json:"id"`
	DateOfCreation    time.Time    `json:"date_of_creation"`
	DateOfAppointment time.Time    `json:"date_of_appointment"`
	IsFinished        bool         `json:"is_finished"`
	Price             *int         `json:"price"`
	Course            *string      `json:"course"`
	Discount          *int         `json:"discount"`
	TypeOfPayment     *string      `json:"type_of_payment"`
	TypeOfMassage     *string      `json:"type_of_massage"`
	Duration          *int         `json:"duration"`
	Service           *string      `json:"service"`
	User              *UserShort   `json:"user"`
	Client            *ClientShort `json:"clients"`
}
