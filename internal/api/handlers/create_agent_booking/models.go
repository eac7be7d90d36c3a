package create_agent_booking

import (
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	bookingmodels "github.com/harbourline/yacht-booking-service/internal/service/bookings/models"
	createAgentBooking "github.com/harbourline/yacht-booking-service/internal/usecase/create_agent_booking"
)

// CreateAgentBookingRequest HTTP request model.
// Контакты конечного клиента обязательны: агент бронирует от его имени
type CreateAgentBookingRequest struct {
	YachtID   int64    `json:"yachtId"`
	Package   string   `json:"package"`
	StartDate string   `json:"startDate"` // RFC 3339
	PeopleNo  int      `json:"peopleNo"`
	Addons    []string `json:"addonServices,omitempty"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`

	SpecialEvent   string `json:"specialEvent,omitempty"`
	SpecialRequest string `json:"specialRequest,omitempty"`
}

// CreateAgentBookingResponse HTTP response model
type CreateAgentBookingResponse struct {
	Booking *bookingmodels.BookingResponse `json:"booking"`

	OrderID        string  `json:"orderId"`
	PackageAmount  float64 `json:"packageAmount"`
	AddonCost      float64 `json:"addonCost"`
	GstAmount      float64 `json:"gstAmount"`
	TotalAmount    float64 `json:"totalAmount"`
	CommissionRate float64 `json:"commissionRate"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAgentBookingRequest) ToUseCaseRequest(agentID int64) (*createAgentBooking.Request, error) {
	startDate, err := time.Parse(time.RFC3339, r.StartDate)
	if err != nil {
		return nil, err
	}

	addons := make([]domain.AddonService, len(r.Addons))
	for i, a := range r.Addons {
		addons[i] = domain.AddonService(a)
	}

	return &createAgentBooking.Request{
		AgentID:        agentID,
		YachtID:        r.YachtID,
		Package:        domain.PackageType(r.Package),
		StartDate:      startDate,
		PeopleNo:       r.PeopleNo,
		Addons:         addons,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		CustomerEmail:  r.CustomerEmail,
		SpecialEvent:   r.SpecialEvent,
		SpecialRequest: r.SpecialRequest,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAgentBooking.Response) *CreateAgentBookingResponse {
	return &CreateAgentBookingResponse{
		Booking:        resp.Booking,
		OrderID:        resp.OrderID,
		PackageAmount:  resp.PackageAmount,
		AddonCost:      resp.AddonCost,
		GstAmount:      resp.GstAmount,
		TotalAmount:    resp.TotalAmount,
		CommissionRate: resp.CommissionRate,
	}
}
