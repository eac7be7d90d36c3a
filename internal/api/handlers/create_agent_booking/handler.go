package create_agent_booking

import (
	"errors"
	"net/http"

	"github.com/harbourline/yacht-booking-service/internal/api/handlers"
	"github.com/harbourline/yacht-booking-service/internal/api/middleware"
	createAgentBooking "github.com/harbourline/yacht-booking-service/internal/usecase/create_agent_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStartDate   = "invalid start date, RFC 3339 timestamp expected"
	msgMissingUserID      = "missing user id"
	msgNotAnAgent         = "agent role required"
	msgYachtNotFound      = "yacht not found"
	msgAgentNotFound      = "agent not found"
	msgYachtNotBookable   = "yacht is not open for booking"
	msgCapacityExceeded   = "people count exceeds yacht capacity"
	msgInvalidPackage     = "unknown or invalid package"
	msgUnavailable        = "yacht is not available for the requested time"
	msgGatewayError       = "payment order creation failed"
)

type Handler struct {
	useCase CreateAgentBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateAgentBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/agent-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAgentBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agent-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем agentID и роль из контекста (через middleware Auth)
	agentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /agent-bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	role, _ := middleware.GetUserRole(r.Context())
	if !role.IsAgent() {
		h.logger.Warn("POST /agent-bookings - Non-agent role: user_id=%d, role=%s", agentID, role)
		handlers.RespondForbidden(w, msgNotAnAgent)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(agentID)
	if err != nil {
		h.logger.Warn("POST /agent-bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAgentBooking.ErrUnavailable):
			h.logger.Warn("POST /agent-bookings - Yacht unavailable: agent_id=%d, yacht_id=%d", agentID, req.YachtID)
			handlers.RespondConflict(w, msgUnavailable)

		case errors.Is(err, createAgentBooking.ErrYachtNotFound):
			h.logger.Warn("POST /agent-bookings - Yacht not found: yacht_id=%d", req.YachtID)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, createAgentBooking.ErrAgentNotFound):
			h.logger.Warn("POST /agent-bookings - Agent not found: agent_id=%d", agentID)
			handlers.RespondNotFound(w, msgAgentNotFound)

		case errors.Is(err, createAgentBooking.ErrYachtNotBookable):
			h.logger.Warn("POST /agent-bookings - Yacht not bookable: yacht_id=%d", req.YachtID)
			handlers.RespondBadRequest(w, msgYachtNotBookable)

		case errors.Is(err, createAgentBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /agent-bookings - Capacity exceeded: yacht_id=%d, people=%d", req.YachtID, req.PeopleNo)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createAgentBooking.ErrInvalidPackage):
			h.logger.Warn("POST /agent-bookings - Invalid package: package=%s", req.Package)
			handlers.RespondBadRequest(w, msgInvalidPackage)

		case errors.Is(err, createAgentBooking.ErrInvalidInput):
			h.logger.Warn("POST /agent-bookings - Invalid input: agent_id=%d, error=%v", agentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createAgentBooking.ErrGateway):
			h.logger.Error("POST /agent-bookings - Payment gateway error: agent_id=%d, yacht_id=%d, error=%v",
				agentID, req.YachtID, err)
			handlers.RespondBadGateway(w, msgGatewayError)

		default:
			h.logger.Error("POST /agent-bookings - Failed to create booking: agent_id=%d, yacht_id=%d, error=%v",
				agentID, req.YachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agent-bookings - Booking created successfully: booking_id=%d, agent_id=%d, yacht_id=%d",
		result.Booking.ID, agentID, req.YachtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
