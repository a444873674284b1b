package units

import "errors"

var (
	// ErrUnitNotFound возвращается, когда юнит не найден
	ErrUnitNotFound = errors.New("units.repository: unit not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("units.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("units.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("units.repository: failed to scan row")
)
