package validate_promo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/harbourline/yacht-booking-service/internal/api/handlers"
	"github.com/harbourline/yacht-booking-service/internal/api/middleware"
	validatePromo "github.com/harbourline/yacht-booking-service/internal/usecase/validate_promo"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgMissingUserID      = "missing user id"
	msgBookingNotFound    = "booking not found"
	msgForbidden          = "access denied"
	msgGatewayError       = "payment order creation failed"
)

// ValidatePromoRequest HTTP request model
type ValidatePromoRequest struct {
	PromoCode string `json:"promoCode"`
}

type Handler struct {
	useCase ValidatePromoUseCase
	logger  Logger
}

func NewHandler(useCase ValidatePromoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/promo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/promo - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ValidatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/promo - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/promo - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	useCaseReq := &validatePromo.Request{
		BookingID: bookingID,
		UserID:    userID,
		Role:      string(role),
		PromoCode: req.PromoCode,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validatePromo.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/promo - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, validatePromo.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/promo - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, validatePromo.ErrInvalidPromo):
			// Сообщение промо-сервиса доносится до клиента как есть
			h.logger.Warn("POST /bookings/{id}/promo - Promo rejected: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, validatePromo.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/promo - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, validatePromo.ErrGateway):
			h.logger.Error("POST /bookings/{id}/promo - Payment gateway error: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadGateway(w, msgGatewayError)

		default:
			h.logger.Error("POST /bookings/{id}/promo - Failed to apply promo: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/promo - Promo applied: booking_id=%d, new_total=%.2f",
		bookingID, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
