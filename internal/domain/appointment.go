package domain

import "time"

// Appointment is the central mutable entity: one owning staff member, at most
// one client, a one-way finished flag. Once IsFinished is set it is never
// reset.
type Appointment struct {
	ID                int64
	DateOfCreation    time.Time
	DateOfAppointment time.Time
	IsFinished        bool

	Price         *int
	Course        *string
	Discount      *int
	TypeOfPayment *string
	TypeOfMassage *string
	Duration      *int
	Service       *string

	UserID   int64
	ClientID *int64

	// Owner and Client are populated by list queries that join the related
	// rows; mutation paths may leave them nil.
	Owner  *User
	Client *Client
}

// NetAmount is the price after applying the discount percentage. Absent price
// or discount counts as zero; this is the base for commission computation.
func (a *Appointment) NetAmount() float64 {
	price := 0
	if a.Price != nil {
		price = *a.Price
	}
	discount := 0
	if a.Discount != nil {
		discount = *a.Discount
	}
	return float64(price) - float64(price)*float64(discount)/100.0
}
