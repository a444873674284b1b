package directory

import "errors"

var (
	// ErrUnavailable возвращается, когда каталог не удалось загрузить.
	// Потребители показывают пустое состояние; повторной загрузки нет -
	// политика ретраев принадлежит источнику данных.
	ErrUnavailable = errors.New("directory: unit directory unavailable")

	// ErrUnitNotFound возвращается, когда юнит не найден в каталоге
	ErrUnitNotFound = errors.New("directory: unit not found")
)
