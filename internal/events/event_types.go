package events

import "time"

// EventType enumerates appointment lifecycle notifications.
type EventType string

const (
	EventAppointmentCreated   EventType = "appointment_created"
	EventAppointmentCompleted EventType = "appointment_completed"
	EventAppointmentDeleted   EventType = "appointment_deleted"
)

// BranchAll marks an event as relevant to every branch. Per-branch scoping of
// events would be possible but connected viewers currently filter client-side.
const BranchAll = "all"

// Event is the wire record fanned out to observers.
type Event struct {
	Type          EventType `json:"type"`
	Date          string    `json:"date"`
	Branch        string    `json:"branch"`
	AppointmentID int64     `json:"appointment_id"`
}

// NewAppointmentEvent builds an event carrying the appointment's calendar date.
func NewAppointmentEvent(eventType EventType, when time.Time, appointmentID int64) Event {
	return Event{
		Type:          eventType,
		Date:          when.Format("2006-01-02"),
		Branch:        BranchAll,
		AppointmentID: appointmentID,
	}
}
