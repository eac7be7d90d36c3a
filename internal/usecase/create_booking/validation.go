package create_booking

import (
	"fmt"
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.YachtID <= 0 {
		return fmt.Errorf("%w: yachtID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.PeopleNo <= 0 {
		return fmt.Errorf("%w: peopleNo must be positive", ErrInvalidInput)
	}

	if !req.Package.IsValid() {
		return fmt.Errorf("%w: unknown package %q", ErrInvalidPackage, string(req.Package))
	}

	return nil
}

// resolveDuration извлекает длительность из метки пакета и строит
// занимаемый интервал. Пакет с нулевой суммарной длительностью
// считается некорректным
func resolveDuration(pkg domain.PackageType, start time.Time) (domain.PackageDuration, domain.Interval, error) {
	duration := pkg.Duration()
	if duration.TotalHours() <= 0 {
		return domain.PackageDuration{}, domain.Interval{},
			fmt.Errorf("%w: package %q has no duration", ErrInvalidPackage, string(pkg))
	}

	end := start.Add(time.Duration(duration.TotalHours() * float64(time.Hour)))
	interval := domain.Interval{Start: start, End: end}
	if !interval.IsValid() {
		return domain.PackageDuration{}, domain.Interval{},
			fmt.Errorf("%w: computed interval is empty", ErrInvalidPackage)
	}

	return duration, interval, nil
}

// validateStartDate проверяет, что аренда начинается в будущем
func validateStartDate(start time.Time, now time.Time) error {
	if !start.After(now) {
		return fmt.Errorf("%w: startDate must be in the future", ErrInvalidInput)
	}
	return nil
}
