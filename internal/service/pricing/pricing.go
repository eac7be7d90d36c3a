package pricing

import (
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
)

// Config бизнес-параметры расчета стоимости
// Peak-окно определяется по локальному гражданскому времени начала аренды
type Config struct {
	TaxPercent    float64
	PeakStartHour int
	PeakEndHour   int
	WeekendIsPeak bool
}

// Quote детализация стоимости бронирования
type Quote struct {
	PackageAmount float64
	AddonCost     float64
	GstAmount     float64
	TotalAmount   float64
	IsPeak        bool
}

// Calculator считает стоимость бронирования по прайс-листу яхты.
// Чистое вычисление без побочных эффектов: каждое бронирование
// пересчитывается от текущего состояния каталога
type Calculator struct {
	cfg Config
}

// NewCalculator создает новый калькулятор стоимости
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// IsPeak определяет peak/non-peak по локальному времени начала аренды.
// Выходные целиком считаются peak, если включено в конфигурации
func (c *Calculator) IsPeak(start time.Time) bool {
	if c.cfg.WeekendIsPeak {
		weekday := start.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			return true
		}
	}

	hour := start.Hour()
	return hour >= c.cfg.PeakStartHour && hour < c.cfg.PeakEndHour
}

// Quote считает полную стоимость бронирования:
//
//  1. packageAmount = sailingHours * ставка хода + anchorHours * ставка стоянки,
//     ставки выбираются по peak-определению времени начала
//  2. addonCost = сумма по выбранным услугам: почасовая ставка услуги из
//     прайс-листа яхты * полная длительность поездки. Услуга, которой нет
//     у яхты, дает 0 - не ошибка
//  3. gstAmount = (packageAmount + addonCost) * налог
//  4. totalAmount = packageAmount + addonCost + gstAmount
func (c *Calculator) Quote(yacht *domain.Yacht, duration domain.PackageDuration, start time.Time, addons []domain.AddonService) Quote {
	isPeak := c.IsPeak(start)

	packageAmount := duration.SailingHours*yacht.Price.Sailing.Rate(isPeak) +
		duration.AnchorHours*yacht.Price.Anchoring.Rate(isPeak)

	addonCost := c.addonCost(yacht, duration.TotalHours(), addons)

	gstAmount := (packageAmount + addonCost) * (c.cfg.TaxPercent / 100)

	return Quote{
		PackageAmount: packageAmount,
		AddonCost:     addonCost,
		GstAmount:     gstAmount,
		TotalAmount:   packageAmount + addonCost + gstAmount,
		IsPeak:        isPeak,
	}
}

// addonCost считает стоимость дополнительных услуг.
// Каждая услуга тарифицируется на полную длительность поездки,
// а не на отдельный под-интервал
func (c *Calculator) addonCost(yacht *domain.Yacht, totalHours float64, addons []domain.AddonService) float64 {
	var cost float64
	for _, service := range addons {
		rate, ok := yacht.AddonRate(service)
		if !ok {
			continue
		}
		cost += rate * totalHours
	}
	return cost
}

// ApplyCommission применяет комиссионную скидку агента к итоговой сумме.
// Скидка применяется один раз, после налога:
// finalTotal = total - total * rate / 100
func ApplyCommission(total float64, ratePercent float64) float64 {
	return total - total*ratePercent/100
}
