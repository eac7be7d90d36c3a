package userservice

// User модель пользователя из справочника identity-сервиса
// Контактные поля снапшотятся в бронирование на момент создания
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Agent модель агента с комиссионной ставкой
type Agent struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CommissionRate float64 `json:"commissionRate"` // Скидка агента в процентах
	SuperAgentID   *int64  `json:"superAgentId,omitempty"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
