package search_yachts

import "errors"

var (
	// ErrInvalidPackage возвращается, когда пакет не входит в каталог
	// или из его метки нельзя извлечь длительность
	ErrInvalidPackage = errors.New("search_yachts: invalid package")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("search_yachts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_yachts: internal error")
)
