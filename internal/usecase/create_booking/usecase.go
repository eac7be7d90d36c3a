package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	yachtRepo "github.com/harbourline/yacht-booking-service/internal/infra/storage/yacht"
	userClient "github.com/harbourline/yacht-booking-service/internal/integrations/userservice"
	bookingmodels "github.com/harbourline/yacht-booking-service/internal/service/bookings/models"
	"github.com/harbourline/yacht-booking-service/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	yachtRepo    YachtRepository
	userClient   UserServiceClient
	gateway      PaymentGateway
	calculator   PricingCalculator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	yachtRepository YachtRepository,
	userClient UserServiceClient,
	gateway PaymentGateway,
	calculator PricingCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		yachtRepo:    yachtRepository,
		userClient:   userClient,
		gateway:      gateway,
		calculator:   calculator,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений, вставка бронирования и создание заказа платежного
// шлюза выполняются в одной сериализуемой транзакции: при ошибке шлюза
// транзакция откатывается и бронирование не сохраняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, yacht=%d, package=%s, start=%s, people=%d",
		req.UserID, req.YachtID, req.Package, req.StartDate.Format(domain.DateFormat), req.PeopleNo)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем, что аренда в будущем
	now := uc.timeProvider.Now()
	if err := validateStartDate(req.StartDate, now); err != nil {
		uc.logger.Warn("CreateBooking: start date validation failed: %v", err)
		return nil, err
	}

	// 3. Извлекаем длительность из метки пакета
	duration, interval, err := resolveDuration(req.Package, req.StartDate)
	if err != nil {
		uc.logger.Warn("CreateBooking: package resolution failed: %v", err)
		return nil, err
	}

	// 4. Получаем яхту из каталога
	yacht, err := uc.yachtRepo.GetByID(ctx, req.YachtID)
	if err != nil {
		if errors.Is(err, yachtRepo.ErrYachtNotFound) {
			uc.logger.Warn("CreateBooking: yacht id=%d not found", req.YachtID)
			return nil, ErrYachtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get yacht id=%d: %v", req.YachtID, err)
		return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
	}

	if !yacht.IsBookable() {
		uc.logger.Warn("CreateBooking: yacht id=%d is not bookable", req.YachtID)
		return nil, ErrYachtNotBookable
	}

	// 5. Проверяем вместимость до любых расчетов и обращений к шлюзу
	if req.PeopleNo > yacht.Capacity {
		uc.logger.Warn("CreateBooking: people=%d exceeds capacity=%d for yacht id=%d",
			req.PeopleNo, yacht.Capacity, req.YachtID)
		return nil, fmt.Errorf("%w: requested %d, capacity %d", ErrCapacityExceeded, req.PeopleNo, yacht.Capacity)
	}

	// 6. Получаем пользователя для снапшота контактов
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 7. Считаем стоимость от текущего прайс-листа яхты
	quote := uc.calculator.Quote(yacht, duration, req.StartDate, req.Addons)

	uc.logger.Info("CreateBooking: quote for yacht id=%d: package=%.2f, addons=%.2f, gst=%.2f, total=%.2f, peak=%t",
		req.YachtID, quote.PackageAmount, quote.AddonCost, quote.GstAmount, quote.TotalAmount, quote.IsPeak)

	var (
		result  *domain.Booking
		orderID string
	)

	// 8. Сериализуемая транзакция: проверка занятости, вставка, заказ шлюза
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем пересекающиеся бронирования с блокировкой (FOR UPDATE)
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, req.YachtID, interval)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to find overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: yacht id=%d has %d conflicting bookings for [%s, %s)",
				req.YachtID, len(overlapping), interval.Start.Format(domain.DateFormat), interval.End.Format(domain.DateFormat))
			return ErrUnavailable
		}

		// 8.2. Создаем бронирование со снапшотами данных яхты и клиента
		booking := &domain.Booking{
			UserID:       req.UserID,
			YachtID:      yacht.ID,
			Location:     yacht.Location,
			PackageLabel: string(req.Package),
			SailingHours: duration.SailingHours,
			AnchorHours:  duration.AnchorHours,
			StartDate:    interval.Start,
			EndDate:      interval.End,
			PeopleNo:     req.PeopleNo,
			Capacity:     yacht.Capacity,
			YachtName:    yacht.Name,
			YachtType:    yacht.YachtType,

			CustomerName:  user.Name,
			CustomerPhone: user.Phone,
			CustomerEmail: user.Email,

			SpecialEvent:   req.SpecialEvent,
			SpecialRequest: req.SpecialRequest,

			Addons: req.Addons,

			PackageAmount: quote.PackageAmount,
			AddonCost:     quote.AddonCost,
			GstAmount:     quote.GstAmount,
			TotalAmount:   quote.TotalAmount,

			PaymentStatus: domain.PaymentPending,
			RideStatus:    domain.RidePending,
			Status:        domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			// Цепочка сохраняется: проигрыш в гонке (exclusion-ограничение,
			// ошибка сериализации) должен дойти до txmanager как *pq.Error
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 8.3. Создаем заказ платежного шлюза, receipt = ID бронирования.
		// Ошибка шлюза откатывает транзакцию целиком
		order, err := uc.gateway.CreateOrder(ctx, created.TotalAmount, strconv.FormatInt(created.ID, 10))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create payment order for booking id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: %v", ErrGateway, err)
		}
		orderID = order.ID

		// 8.4. Привязываем заказ к бронированию
		if err := uc.bookingRepo.SetOrderRef(txCtx, created.ID, order.ID); err != nil {
			uc.logger.Error("CreateBooking: failed to set order ref for booking id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to set order ref: %w", ErrInternal, err)
		}

		created.RazorpayOrderID = order.ID
		result = created
		return nil
	})

	if txErr != nil {
		// Заказ шлюза мог быть создан до отката транзакции - отменяем его
		if orderID != "" {
			uc.logger.Warn("CreateBooking: canceling orphaned payment order %s", orderID)
			uc.gateway.CancelOrder(ctx, orderID)
		}

		if errors.Is(txErr, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: serialization conflict for yacht id=%d, treating as unavailable", req.YachtID)
			return nil, fmt.Errorf("%w: concurrent booking attempt", ErrUnavailable)
		}

		return nil, txErr
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, order=%s", result.ID, result.RazorpayOrderID)

	return &Response{
		Booking:       bookingmodels.FromDomainBooking(result),
		OrderID:       result.RazorpayOrderID,
		PackageAmount: result.PackageAmount,
		AddonCost:     result.AddonCost,
		GstAmount:     result.GstAmount,
		TotalAmount:   result.TotalAmount,
	}, nil
}
