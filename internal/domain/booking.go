package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// RideStatus represents the trip state, orthogonal to payment
type RideStatus string

const (
	RidePending   RideStatus = "pending"
	RideCompleted RideStatus = "completed"
)

// Booking represents a yacht booking in the system
type Booking struct {
	ID      int64
	UserID  int64
	AgentID *int64 // Заполнен только для агентских бронирований
	YachtID int64

	Location     LocationType
	PackageLabel string
	SailingHours float64
	AnchorHours  float64

	StartDate time.Time
	EndDate   time.Time

	PeopleNo int
	Capacity int // Снапшот вместимости яхты на момент бронирования

	// Denormalized yacht data for history
	YachtName string
	YachtType string

	// Снапшот контактов клиента на момент бронирования:
	// для агентских бронирований это данные конечного клиента, а не агента
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	SpecialEvent   string
	SpecialRequest string

	Addons []AddonService

	PackageAmount float64
	AddonCost     float64
	GstAmount     float64
	TotalAmount   float64

	PaymentStatus   PaymentStatus
	RideStatus      RideStatus
	Status          BookingStatus
	RazorpayOrderID string
	IsAgentBooking  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the booking blocks the yacht's calendar
func (b *Booking) IsOccupying() bool {
	return b.Status == StatusConfirmed
}

// Interval returns the booking's occupied time window
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartDate, End: b.EndDate}
}

// Interval is a half-open time window [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the interval has positive length
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints do not count as a conflict:
// [10:00, 12:00) and [12:00, 13:00) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// WithBuffer returns the interval extended by buffer at the end.
// Used by the search path to keep turnaround headroom between trips.
func (i Interval) WithBuffer(buffer time.Duration) Interval {
	return Interval{Start: i.Start, End: i.End.Add(buffer)}
}
