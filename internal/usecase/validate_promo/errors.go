package validate_promo

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("validate_promo: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит
	// другому пользователю
	ErrAccessDenied = errors.New("validate_promo: access denied")

	// ErrInvalidPromo возвращается, когда промо-сервис отклонил код
	// или скидка неприменима к текущей сумме
	ErrInvalidPromo = errors.New("validate_promo: invalid promo code")

	// ErrGateway возвращается при ошибке платежного шлюза
	ErrGateway = errors.New("validate_promo: payment gateway error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_promo: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_promo: internal error")
)
