package create_booking

import (
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	bookingmodels "github.com/harbourline/yacht-booking-service/internal/service/bookings/models"
	createBooking "github.com/harbourline/yacht-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	YachtID   int64    `json:"yachtId"`
	Package   string   `json:"package"`   // Метка пакета из каталога
	StartDate string   `json:"startDate"` // RFC 3339, например "2026-09-12T14:00:00+04:00"
	PeopleNo  int      `json:"peopleNo"`
	Addons    []string `json:"addonServices,omitempty"`

	SpecialEvent   string `json:"specialEvent,omitempty"`
	SpecialRequest string `json:"specialRequest,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking *bookingmodels.BookingResponse `json:"booking"`

	OrderID       string  `json:"orderId"`
	PackageAmount float64 `json:"packageAmount"`
	AddonCost     float64 `json:"addonCost"`
	GstAmount     float64 `json:"gstAmount"`
	TotalAmount   float64 `json:"totalAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startDate, err := time.Parse(time.RFC3339, r.StartDate)
	if err != nil {
		return nil, err
	}

	addons := make([]domain.AddonService, len(r.Addons))
	for i, a := range r.Addons {
		addons[i] = domain.AddonService(a)
	}

	return &createBooking.Request{
		UserID:         userID,
		YachtID:        r.YachtID,
		Package:        domain.PackageType(r.Package),
		StartDate:      startDate,
		PeopleNo:       r.PeopleNo,
		Addons:         addons,
		SpecialEvent:   r.SpecialEvent,
		SpecialRequest: r.SpecialRequest,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:       resp.Booking,
		OrderID:       resp.OrderID,
		PackageAmount: resp.PackageAmount,
		AddonCost:     resp.AddonCost,
		GstAmount:     resp.GstAmount,
		TotalAmount:   resp.TotalAmount,
	}
}
