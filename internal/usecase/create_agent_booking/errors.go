package create_agent_booking

import "errors"

var (
	// ErrYachtNotFound возвращается, когда яхта не найдена в каталоге
	ErrYachtNotFound = errors.New("create_agent_booking: yacht not found")

	// ErrYachtNotBookable возвращается, когда яхта снята с публикации
	// или ее прайс-лист заполнен не полностью
	ErrYachtNotBookable = errors.New("create_agent_booking: yacht is not bookable")

	// ErrAgentNotFound возвращается, когда агент не найден
	ErrAgentNotFound = errors.New("create_agent_booking: agent not found")

	// ErrCapacityExceeded возвращается, когда заявленное число гостей
	// превышает вместимость яхты
	ErrCapacityExceeded = errors.New("create_agent_booking: people count exceeds yacht capacity")

	// ErrInvalidPackage возвращается, когда пакет не входит в каталог
	// или из его метки нельзя извлечь длительность
	ErrInvalidPackage = errors.New("create_agent_booking: invalid package")

	// ErrUnavailable возвращается, когда яхта занята на запрошенный интервал
	ErrUnavailable = errors.New("create_agent_booking: yacht is not available for the requested time")

	// ErrGateway возвращается при ошибке платежного шлюза
	ErrGateway = errors.New("create_agent_booking: payment gateway error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_agent_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_agent_booking: internal error")
)
