package yacht

import "errors"

var (
	// ErrYachtNotFound возвращается, когда яхта не найдена
	ErrYachtNotFound = errors.New("yacht.repository: yacht not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("yacht.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("yacht.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("yacht.repository: failed to scan row")
)
