package geoservice

// nominatimResult один результат поиска геокодера
// Координаты приходят строками, парсим при маппинге
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
