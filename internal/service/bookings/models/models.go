package models

import (
	"errors"
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	AgentID      *int64 `json:"agentId,omitempty"`
	YachtID      int64  `json:"yachtId"`
	Location     string `json:"location"`
	PackageLabel string `json:"package"`

	StartDate string `json:"startDate"` // RFC 3339
	EndDate   string `json:"endDate"`   // RFC 3339

	PeopleNo int `json:"peopleNo"`
	Capacity int `json:"capacity"`

	YachtName string `json:"yachtName"`
	YachtType string `json:"yachtType"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	SpecialEvent   string `json:"specialEvent,omitempty"`
	SpecialRequest string `json:"specialRequest,omitempty"`

	Addons []string `json:"addonServices"`

	PackageAmount float64 `json:"packageAmount"`
	AddonCost     float64 `json:"addonCost"`
	GstAmount     float64 `json:"gstAmount"`
	TotalAmount   float64 `json:"totalAmount"`

	PaymentStatus   string `json:"paymentStatus"`
	RideStatus      string `json:"rideStatus"`
	Status          string `json:"status"`
	RazorpayOrderID string `json:"razorpayOrderId,omitempty"`
	IsAgentBooking  bool   `json:"isAgentBooking"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	addons := make([]string, len(b.Addons))
	for i, a := range b.Addons {
		addons[i] = string(a)
	}

	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		AgentID:         b.AgentID,
		YachtID:         b.YachtID,
		Location:        string(b.Location),
		PackageLabel:    b.PackageLabel,
		StartDate:       b.StartDate.Format(time.RFC3339),
		EndDate:         b.EndDate.Format(time.RFC3339),
		PeopleNo:        b.PeopleNo,
		Capacity:        b.Capacity,
		YachtName:       b.YachtName,
		YachtType:       b.YachtType,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   b.CustomerEmail,
		SpecialEvent:    b.SpecialEvent,
		SpecialRequest:  b.SpecialRequest,
		Addons:          addons,
		PackageAmount:   b.PackageAmount,
		AddonCost:       b.AddonCost,
		GstAmount:       b.GstAmount,
		TotalAmount:     b.TotalAmount,
		PaymentStatus:   string(b.PaymentStatus),
		RideStatus:      string(b.RideStatus),
		Status:          string(b.Status),
		RazorpayOrderID: b.RazorpayOrderID,
		IsAgentBooking:  b.IsAgentBooking,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusConfirmed,
		domain.StatusCanceled,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
