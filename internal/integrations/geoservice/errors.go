package geoservice

import "errors"

var (
	// ErrInvalidPostalCode возвращается, когда CEP не состоит из 8 цифр
	ErrInvalidPostalCode = errors.New("geoservice client: postal code must be 8 digits")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geoservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе геокодера
	ErrInvalidResponse = errors.New("geoservice client: invalid response")
)
