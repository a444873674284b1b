package create_lead

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_lead: invalid input data")

	// ErrUnitNotFound возвращается, когда юнит не найден в каталоге
	ErrUnitNotFound = errors.New("create_lead: unit not found")

	// ErrUnitNotBookable возвращается, когда юнит не подключён
	// к внешней системе бронирования
	ErrUnitNotBookable = errors.New("create_lead: unit is not bookable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_lead: internal error")
)
