package create_agent_booking

import (
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	bookingmodels "github.com/harbourline/yacht-booking-service/internal/service/bookings/models"
)

// Request модель запроса на создание агентского бронирования.
// Контакты клиента передаются явно: в бронирование снапшотятся
// данные конечного клиента, а не агента
type Request struct {
	AgentID int64              // ID агента (из заголовков аутентификации)
	YachtID int64              // ID яхты
	Package domain.PackageType // Метка пакета

	StartDate time.Time // Время начала аренды

	PeopleNo int                   // Количество гостей
	Addons   []domain.AddonService // Выбранные дополнительные услуги

	CustomerName  string // Имя конечного клиента
	CustomerPhone string // Телефон конечного клиента
	CustomerEmail string // Email конечного клиента (опционально)

	SpecialEvent   string
	SpecialRequest string
}

// Response модель ответа с созданным агентским бронированием
type Response struct {
	Booking *bookingmodels.BookingResponse

	OrderID        string  // ID заказа платежного шлюза
	PackageAmount  float64 // Стоимость пакета
	AddonCost      float64 // Стоимость дополнительных услуг
	GstAmount      float64 // Налог
	TotalAmount    float64 // Итог после агентской скидки
	CommissionRate float64 // Примененная ставка агента в процентах
}
