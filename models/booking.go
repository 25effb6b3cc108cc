package models

import "time"

const (
	BookingStatusPending = "pending"
	MessageStatusNew     = "new"
)

// Booking is an at-home appointment request submitted through the booking form.
type Booking struct {
	ID          string    `json:"id" firestore:"-"`
	UserID      string    `json:"userId,omitempty" firestore:"userId,omitempty"` // set when the visitor was signed in
	Name        string    `json:"name" firestore:"name"`
	Phone       string    `json:"phone" firestore:"phone"`
	Email       string    `json:"email" firestore:"email"`
	Address     string    `json:"address" firestore:"address"`
	ServiceType string    `json:"serviceType" firestore:"serviceType"`
	Date        string    `json:"date" firestore:"date"` // "YYYY-MM-DD"
	Time        string    `json:"time" firestore:"time"` // one of BookingTimeSlots
	Notes       string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	Status      string    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Fields returns the document body written for a new booking. Timestamps are
// left to the document gateway.
func (b Booking) Fields() map[string]any {
	fields := map[string]any{
		"name":        b.Name,
		"phone":       b.Phone,
		"email":       b.Email,
		"address":     b.Address,
		"serviceType": b.ServiceType,
		"date":        b.Date,
		"time":        b.Time,
		"status":      b.Status,
	}
	if b.UserID != "" {
		fields["userId"] = b.UserID
	}
	if b.Notes != "" {
		fields["notes"] = b.Notes
	}
	return fields
}

// BookableServices are the service types offered in the booking form.
var BookableServices = []string{
	"Hair Cut & Styling",
	"Hair Coloring",
	"Wig Fitting & Styling",
	"Bridal Hair & Makeup",
	"Monthly Hair Care",
	"Wig Maintenance",
	"Custom Service",
}

// BookingTimeSlots are the appointment start times offered in the booking form.
var BookingTimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM",
}
