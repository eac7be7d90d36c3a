package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/harbourline/yacht-booking-service/internal/api/handlers"
	"github.com/harbourline/yacht-booking-service/internal/api/middleware"
	"github.com/harbourline/yacht-booking-service/internal/domain"
	"github.com/harbourline/yacht-booking-service/internal/service/bookings"
	"github.com/harbourline/yacht-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidUserID = "invalid user id"
	msgInvalidStatus = "invalid booking status"
	msgMissingUserID = "missing user id"
	msgForbidden     = "access denied"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings
//
// История бронирований строится запросом по плательщику,
// отдельные списки на пользователе не ведутся
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Получаем ID аутентифицированного пользователя из контекста
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Свою историю видит сам пользователь, чужую - админ
	role, _ := middleware.GetUserRole(r.Context())
	if authUserID != userID && role != domain.RoleAdmin {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: user_id=%d, auth_user_id=%d", userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetUserBookingsRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/bookings - Invalid status: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - %d bookings retrieved: user_id=%d",
		len(result.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
