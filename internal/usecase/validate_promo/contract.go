package validate_promo

import (
	"context"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	"github.com/harbourline/yacht-booking-service/internal/integrations/promoservice"
	"github.com/harbourline/yacht-booking-service/internal/integrations/razorpay"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateTotalAndOrder(ctx context.Context, id int64, totalAmount float64, orderID string) error
}

// PromoServiceClient интерфейс клиента промо-сервиса
type PromoServiceClient interface {
	ValidateAndApplyPromo(ctx context.Context, code string, userID int64, role domain.Role, amount float64) (*promoservice.PromoResult, error)
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount float64, receipt string) (*razorpay.Order, error)
	CancelOrder(ctx context.Context, orderID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
