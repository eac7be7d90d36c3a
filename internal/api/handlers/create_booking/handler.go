package create_booking

import (
	"errors"
	"net/http"

	"github.com/harbourline/yacht-booking-service/internal/api/handlers"
	"github.com/harbourline/yacht-booking-service/internal/api/middleware"
	createBooking "github.com/harbourline/yacht-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStartDate   = "invalid start date, RFC 3339 timestamp expected"
	msgMissingUserID      = "missing user id"
	msgYachtNotFound      = "yacht not found"
	msgUserNotFound       = "user not found"
	msgYachtNotBookable   = "yacht is not open for booking"
	msgCapacityExceeded   = "people count exceeds yacht capacity"
	msgInvalidPackage     = "unknown or invalid package"
	msgUnavailable        = "yacht is not available for the requested time"
	msgGatewayError       = "payment order creation failed"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrUnavailable):
			h.logger.Warn("POST /bookings - Yacht unavailable: user_id=%d, yacht_id=%d", userID, req.YachtID)
			handlers.RespondConflict(w, msgUnavailable)

		case errors.Is(err, createBooking.ErrYachtNotFound):
			h.logger.Warn("POST /bookings - Yacht not found: yacht_id=%d", req.YachtID)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrYachtNotBookable):
			h.logger.Warn("POST /bookings - Yacht not bookable: yacht_id=%d", req.YachtID)
			handlers.RespondBadRequest(w, msgYachtNotBookable)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: yacht_id=%d, people=%d", req.YachtID, req.PeopleNo)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidPackage):
			h.logger.Warn("POST /bookings - Invalid package: package=%s", req.Package)
			handlers.RespondBadRequest(w, msgInvalidPackage)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrGateway):
			h.logger.Error("POST /bookings - Payment gateway error: user_id=%d, yacht_id=%d, error=%v",
				userID, req.YachtID, err)
			handlers.RespondBadGateway(w, msgGatewayError)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, yacht_id=%d, error=%v",
				userID, req.YachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, yacht_id=%d",
		result.Booking.ID, userID, req.YachtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
