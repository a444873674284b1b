package domain

// Time format constants
const (
	TimeFormat   = "15:04"      // HH:MM
	DateFormat   = "2006-01-02" // YYYY-MM-DD
	BRDateFormat = "02/01/2006" // dd/mm/yyyy, формат внешней системы бронирования
)

// Scheduling horizon and search tuning
const (
	// HorizonMonths - даты доступны от сегодня до сегодня + 6 календарных месяцев
	HorizonMonths = 6

	// CalendarWeeks x CalendarDays - фиксированная сетка календаря
	CalendarWeeks = 6
	CalendarDays  = 7

	// PostalCodeDigits - только 8-значный CEP считается полным адресным токеном
	PostalCodeDigits = 8

	// SearchDebounceMillis - пауза ввода перед запуском поиска
	SearchDebounceMillis = 200
)

// Contact validation constants
const (
	MinNameLength    = 3
	MinPhoneDigits   = 10
	MaxPhoneDigits   = 11
	PhoneCountryCode = "55"
)
