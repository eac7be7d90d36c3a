package create_agent_booking

import (
	"context"
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	"github.com/harbourline/yacht-booking-service/internal/integrations/razorpay"
	"github.com/harbourline/yacht-booking-service/internal/integrations/userservice"
	"github.com/harbourline/yacht-booking-service/internal/service/pricing"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, yachtID int64, interval domain.Interval) ([]*domain.Booking, error)
	SetOrderRef(ctx context.Context, id int64, orderID string) error
}

// YachtRepository интерфейс каталога яхт
type YachtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Yacht, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetAgent(ctx context.Context, agentID int64) (*userservice.Agent, error)
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount float64, receipt string) (*razorpay.Order, error)
	CancelOrder(ctx context.Context, orderID string)
}

// PricingCalculator интерфейс калькулятора стоимости
type PricingCalculator interface {
	Quote(yacht *domain.Yacht, duration domain.PackageDuration, start time.Time, addons []domain.AddonService) pricing.Quote
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
