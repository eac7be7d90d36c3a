package create_agent_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	yachtRepo "github.com/harbourline/yacht-booking-service/internal/infra/storage/yacht"
	userClient "github.com/harbourline/yacht-booking-service/internal/integrations/userservice"
	bookingmodels "github.com/harbourline/yacht-booking-service/internal/service/bookings/models"
	"github.com/harbourline/yacht-booking-service/internal/service/pricing"
	"github.com/harbourline/yacht-booking-service/pkg/ptr"
	"github.com/harbourline/yacht-booking-service/pkg/txmanager"
)

// UseCase use case для создания бронирования агентом от имени клиента
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

// Execute выполняет use case агентского бронирования.
// Отличия от клиентского пути: контакты клиента берутся из запроса,
// а к итогу после налога один раз применяется комиссионная скидка агента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAgentBooking: agent=%d, yacht=%d, package=%s, start=%s, people=%d",
		req.AgentID, req.YachtID, req.Package, req.StartDate.Format(domain.DateFormat), req.PeopleNo)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAgentBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем, что аренда в будущем
	now := uc.timeProvider.Now()
	if err := validateStartDate(req.StartDate, now); err != nil {
		uc.logger.Warn("CreateAgentBooking: start date validation failed: %v", err)
		return nil, err
	}

	// 3. Извлекаем длительность из метки пакета
	duration, interval, err := resolveDuration(req.Package, req.StartDate)
	if err != nil {
		uc.logger.Warn("CreateAgentBooking: package resolution failed: %v", err)
		return nil, err
	}

	// 4. Получаем агента с комиссионной ставкой
	agent, err := uc.userClient.GetAgent(ctx, req.AgentID)
	if err != nil {
		if errors.Is(err, userClient.ErrAgentNotFound) {
			uc.logger.Warn("CreateAgentBooking: agent id=%d not found", req.AgentID)
			return nil, ErrAgentNotFound
		}
		uc.logger.Error("CreateAgentBooking: failed to get agent id=%d: %v", req.AgentID, err)
		return nil, fmt.Errorf("%w: failed to get agent: %v", ErrInternal, err)
	}

	if err := validateCommissionRate(agent.CommissionRate); err != nil {
		uc.logger.Error("CreateAgentBooking: agent id=%d has invalid commission rate %.2f",
			req.AgentID, agent.CommissionRate)
		return nil, err
	}

	// 5. Получаем яхту из каталога
	yacht, err := uc.yachtRepo.GetByID(ctx, req.YachtID)
	if err != nil {
		if errors.Is(err, yachtRepo.ErrYachtNotFound) {
			uc.logger.Warn("CreateAgentBooking: yacht id=%d not found", req.YachtID)
			return nil, ErrYachtNotFound
		}
		uc.logger.Error("CreateAgentBooking: failed to get yacht id=%d: %v", req.YachtID, err)
		return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
	}

	if !yacht.IsBookable() {
		uc.logger.Warn("CreateAgentBooking: yacht id=%d is not bookable", req.YachtID)
		return nil, ErrYachtNotBookable
	}

	// 6. Проверяем вместимость до любых расчетов и обращений к шлюзу
	if req.PeopleNo > yacht.Capacity {
		uc.logger.Warn("CreateAgentBooking: people=%d exceeds capacity=%d for yacht id=%d",
			req.PeopleNo, yacht.Capacity, req.YachtID)
		return nil, fmt.Errorf("%w: requested %d, capacity %d", ErrCapacityExceeded, req.PeopleNo, yacht.Capacity)
	}

	// 7. Считаем стоимость и применяем скидку агента после налога
	quote := uc.calculator.Quote(yacht, duration, req.StartDate, req.Addons)
	finalTotal := pricing.ApplyCommission(quote.TotalAmount, agent.CommissionRate)

	uc.logger.Info("CreateAgentBooking: quote for yacht id=%d: total=%.2f, commission=%.2f%%, final=%.2f",
		req.YachtID, quote.TotalAmount, agent.CommissionRate, finalTotal)

	var (
		result  *domain.Booking
		orderID string
	)

	// 8. Сериализуемая транзакция: проверка занятости, вставка, заказ шлюза
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем пересекающиеся бронирования с блокировкой (FOR UPDATE)
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, req.YachtID, interval)
		if err != nil {
			uc.logger.Error("CreateAgentBooking: failed to find overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateAgentBooking: yacht id=%d has %d conflicting bookings",
				req.YachtID, len(overlapping))
			return ErrUnavailable
		}

		// 8.2. Создаем бронирование: плательщик - агент, контакты - клиента
		booking := &domain.Booking{
			UserID:       req.AgentID,
			AgentID:      ptr.Ptr(req.AgentID),
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

			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,

			SpecialEvent:   req.SpecialEvent,
			SpecialRequest: req.SpecialRequest,

			Addons: req.Addons,

			PackageAmount: quote.PackageAmount,
			AddonCost:     quote.AddonCost,
			GstAmount:     quote.GstAmount,
			TotalAmount:   finalTotal,

			PaymentStatus:  domain.PaymentPending,
			RideStatus:     domain.RidePending,
			Status:         domain.StatusConfirmed,
			IsAgentBooking: true,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateAgentBooking: failed to create booking: %v", err)
			// Цепочка сохраняется: проигрыш в гонке (exclusion-ограничение,
			// ошибка сериализации) должен дойти до txmanager как *pq.Error
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 8.3. Создаем заказ платежного шлюза на итог после скидки
		order, err := uc.gateway.CreateOrder(ctx, created.TotalAmount, strconv.FormatInt(created.ID, 10))
		if err != nil {
			uc.logger.Error("CreateAgentBooking: failed to create payment order for booking id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: %v", ErrGateway, err)
		}
		orderID = order.ID

		// 8.4. Привязываем заказ к бронированию
		if err := uc.bookingRepo.SetOrderRef(txCtx, created.ID, order.ID); err != nil {
			uc.logger.Error("CreateAgentBooking: failed to set order ref for booking id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to set order ref: %w", ErrInternal, err)
		}

		created.RazorpayOrderID = order.ID
		result = created
		return nil
	})

	if txErr != nil {
		// Заказ шлюза мог быть создан до отката транзакции - отменяем его
		if orderID != "" {
			uc.logger.Warn("CreateAgentBooking: canceling orphaned payment order %s", orderID)
			uc.gateway.CancelOrder(ctx, orderID)
		}

		if errors.Is(txErr, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateAgentBooking: serialization conflict for yacht id=%d, treating as unavailable", req.YachtID)
			return nil, fmt.Errorf("%w: concurrent booking attempt", ErrUnavailable)
		}

		return nil, txErr
	}

	uc.logger.Info("CreateAgentBooking: successfully created booking id=%d, order=%s", result.ID, result.RazorpayOrderID)

	return &Response{
		Booking:        bookingmodels.FromDomainBooking(result),
		OrderID:        result.RazorpayOrderID,
		PackageAmount:  result.PackageAmount,
		AddonCost:      result.AddonCost,
		GstAmount:      result.GstAmount,
		TotalAmount:    result.TotalAmount,
		CommissionRate: agent.CommissionRate,
	}, nil
}
