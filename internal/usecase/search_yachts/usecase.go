package search_yachts

import (
	"context"
	"fmt"
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
)

// UseCase use case подбора свободных яхт под запрос клиента
type UseCase struct {
	yachtRepo    YachtRepository
	bookingRepo  BookingRepository
	searchBuffer time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// searchBuffer - запас на швартовку и уборку между поездками,
// добавляется к запрошенному интервалу только на пути поиска
func NewUseCase(
	yachtRepository YachtRepository,
	bookingRepo BookingRepository,
	searchBuffer time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		yachtRepo:    yachtRepository,
		bookingRepo:  bookingRepo,
		searchBuffer: searchBuffer,
		logger:       logger,
	}
}

// Execute выполняет use case подбора яхт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchYachts: location=%s, type=%s, people=%d, package=%s, start=%s",
		req.Location, req.YachtType, req.PeopleNo, req.Package, req.StartDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchYachts: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим интервал из метки пакета
	interval, err := resolveInterval(req.Package, req.StartDate)
	if err != nil {
		uc.logger.Warn("SearchYachts: package resolution failed: %v", err)
		return nil, err
	}

	// 3. Подбираем кандидатов по каталожным признакам
	candidates, err := uc.yachtRepo.Search(ctx, domain.YachtSearchCriteria{
		Location:  req.Location,
		YachtType: req.YachtType,
		PeopleNo:  req.PeopleNo,
		Addons:    req.Addons,
	})
	if err != nil {
		uc.logger.Error("SearchYachts: catalog search failed: %v", err)
		return nil, fmt.Errorf("%w: catalog search failed: %v", ErrInternal, err)
	}

	uc.logger.Info("SearchYachts: %d catalog candidates", len(candidates))

	// 4. Отбрасываем занятых: проверяем пересечения с запасом на швартовку
	buffered := interval.WithBuffer(uc.searchBuffer)

	available := make([]YachtResponse, 0, len(candidates))
	for _, yacht := range candidates {
		overlapping, err := uc.bookingRepo.FindOverlapping(ctx, yacht.ID, buffered)
		if err != nil {
			uc.logger.Error("SearchYachts: availability check failed for yacht id=%d: %v", yacht.ID, err)
			return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			continue
		}

		available = append(available, fromDomainYacht(yacht))
	}

	uc.logger.Info("SearchYachts: %d yachts available for [%s, %s)",
		len(available), interval.Start.Format(time.RFC3339), interval.End.Format(time.RFC3339))

	return &Response{
		StartDate: interval.Start,
		EndDate:   interval.End,
		Yachts:    available,
	}, nil
}
