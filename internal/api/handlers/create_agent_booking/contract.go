package create_agent_booking

import (
	"context"

	createAgentBooking "github.com/harbourline/yacht-booking-service/internal/usecase/create_agent_booking"
)

type CreateAgentBookingUseCase interface {
	Execute(ctx context.Context, req *createAgentBooking.Request) (*createAgentBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
