package search_yachts

import (
	"fmt"
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}

	if !req.Location.IsKnown() {
		return fmt.Errorf("%w: unknown location %q", ErrInvalidInput, string(req.Location))
	}

	if req.PeopleNo <= 0 {
		return fmt.Errorf("%w: peopleNo must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if !req.Package.IsValid() {
		return fmt.Errorf("%w: unknown package %q", ErrInvalidPackage, string(req.Package))
	}

	return nil
}

// resolveInterval строит занимаемый интервал из метки пакета
func resolveInterval(pkg domain.PackageType, start time.Time) (domain.Interval, error) {
	duration := pkg.Duration()
	if duration.TotalHours() <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: package %q has no duration", ErrInvalidPackage, string(pkg))
	}

	end := start.Add(time.Duration(duration.TotalHours() * float64(time.Hour)))
	return domain.Interval{Start: start, End: end}, nil
}
