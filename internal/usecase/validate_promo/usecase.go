package validate_promo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	bookingRepo "github.com/harbourline/yacht-booking-service/internal/infra/storage/booking"
	promoClient "github.com/harbourline/yacht-booking-service/internal/integrations/promoservice"
)

// UseCase use case применения промокода к существующему бронированию.
// Скидка считается от текущего итога бронирования: повторное применение
// промокода пересчитывает сумму от уже сниженного итога
type UseCase struct {
	bookingRepo BookingRepository
	promoClient PromoServiceClient
	gateway     PaymentGateway
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	promoServiceClient PromoServiceClient,
	gateway PaymentGateway,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepository,
		promoClient: promoServiceClient,
		gateway:     gateway,
		logger:      logger,
	}
}

// Execute выполняет use case применения промокода.
// Отклоненный код оставляет бронирование нетронутым: сумма и заказ
// платежного шлюза меняются только после успешной валидации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidatePromo: booking=%d, user=%d, code=%s", req.BookingID, req.UserID, req.PromoCode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidatePromo: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ValidatePromo: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ValidatePromo: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Промокод применяет только плательщик бронирования
	if booking.UserID != req.UserID {
		uc.logger.Warn("ValidatePromo: user=%d is not the payer of booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 4. Валидируем код на промо-сервисе от текущего итога
	result, err := uc.promoClient.ValidateAndApplyPromo(ctx, req.PromoCode, req.UserID, domain.Role(req.Role), booking.TotalAmount)
	if err != nil {
		if errors.Is(err, promoClient.ErrPromoRejected) {
			uc.logger.Warn("ValidatePromo: code %s rejected for booking id=%d: %v", req.PromoCode, req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidPromo, err)
		}
		uc.logger.Error("ValidatePromo: promo service error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: promo service error: %v", ErrInternal, err)
	}

	// 5. Пересчитываем итог от текущей суммы бронирования
	newTotal := booking.TotalAmount - result.Discount
	if newTotal < 0 {
		uc.logger.Warn("ValidatePromo: discount %.2f exceeds total %.2f for booking id=%d",
			result.Discount, booking.TotalAmount, req.BookingID)
		return nil, fmt.Errorf("%w: discount exceeds booking total", ErrInvalidPromo)
	}

	// 6. Создаем новый заказ платежного шлюза на сниженную сумму
	order, err := uc.gateway.CreateOrder(ctx, newTotal, strconv.FormatInt(booking.ID, 10))
	if err != nil {
		uc.logger.Error("ValidatePromo: failed to create payment order for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	// 7. Сохраняем новый итог и заказ одним обновлением
	if err := uc.bookingRepo.UpdateTotalAndOrder(ctx, booking.ID, newTotal, order.ID); err != nil {
		uc.logger.Error("ValidatePromo: failed to update booking id=%d: %v", req.BookingID, err)
		// Заказ уже создан, но бронирование не обновлено - отменяем заказ
		uc.gateway.CancelOrder(ctx, order.ID)
		return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
	}

	uc.logger.Info("ValidatePromo: booking id=%d total %.2f -> %.2f, order=%s",
		req.BookingID, booking.TotalAmount, newTotal, order.ID)

	return &Response{
		BookingID:    booking.ID,
		Discount:     result.Discount,
		DiscountType: result.DiscountType,
		TotalAmount:  newTotal,
		OrderID:      order.ID,
	}, nil
}
