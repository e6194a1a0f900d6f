package models

import "time"

// Booking status values. Completed and cancelled are terminal.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// PendingExpiryMinutes is how long an unpaid pending booking keeps
// blocking its slot before it is treated as abandoned.
const PendingExpiryMinutes = 15

// BirthDetails carries the optional astrology inputs collected for
// services that need a birth chart.
type BirthDetails struct {
	Date  string  `bson:"date,omitempty" json:"date,omitempty"`   // "YYYY-MM-DD"
	Time  string  `bson:"time,omitempty" json:"time,omitempty"`   // "HH:MM"
	Place string  `bson:"place,omitempty" json:"place,omitempty"`
	Lat   float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lon   float64 `bson:"lon,omitempty" json:"lon,omitempty"`
}

// Booking represents a consultation reservation. The occupied interval is
// [TimeToMinutes(TimeSlot), TimeToMinutes(TimeSlot)+DurationMinutes) on Date.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	UserID          string        `bson:"user_id,omitempty" json:"user_id,omitempty"`
	UserName        string        `bson:"user_name" json:"user_name"`
	UserEmail       string        `bson:"user_email" json:"user_email"`
	UserPhone       string        `bson:"user_phone" json:"user_phone"`
	ServiceSlug     string        `bson:"service_slug" json:"service_slug"`
	ServiceTitle    string        `bson:"service_title" json:"service_title"`
	Date            string        `bson:"date" json:"date"`           // "YYYY-MM-DD"
	TimeSlot        string        `bson:"time_slot" json:"time_slot"` // "HH:MM" start
	DurationMinutes int           `bson:"duration_minutes" json:"duration_minutes"`
	PriceINR        int           `bson:"price_inr" json:"price_inr"`
	Status          string        `bson:"status" json:"status"`
	PaymentID       string        `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	Notes           string        `bson:"notes,omitempty" json:"notes"`
	BirthDetails    *BirthDetails `bson:"birth_details,omitempty" json:"birth_details,omitempty"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
}

// IsTerminal reports whether the booking has reached a final status.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingCompleted || b.Status == BookingCancelled
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}
