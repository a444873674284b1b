package unoservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("unoservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("unoservice client: invalid response")

	// ErrUnitNotFound возвращается, когда внешняя система не знает юнит
	ErrUnitNotFound = errors.New("unoservice client: franchise not found")
)
