package search_yachts

import (
	"context"

	"github.com/harbourline/yacht-booking-service/internal/domain"
)

// YachtRepository интерфейс каталога яхт
type YachtRepository interface {
	Search(ctx context.Context, criteria domain.YachtSearchCriteria) ([]*domain.Yacht, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindOverlapping(ctx context.Context, yachtID int64, interval domain.Interval) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
