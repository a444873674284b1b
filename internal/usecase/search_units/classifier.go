package search_units

import (
	"regexp"
	"strings"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

// numericLikePattern строка из цифр, пробелов и дефисов -
// то, как выглядит CEP в процессе набора ("01310-100", "01310 100")
var numericLikePattern = regexp.MustCompile(`^[0-9\-\s]+$`)

var nonDigits = regexp.MustCompile(`\D+`)

// Classify разбирает сырую строку запроса в поисковое решение.
// Чистая функция: один вход - ровно один вариант решения.
//
//   - пустая строка                 -> показать весь список
//   - 1-7 цифр (похоже на CEP)      -> весь список (не сужаем,
//     чтобы результаты не "мигали" при наборе индекса)
//   - 8 и более цифр                -> полный CEP (первые 8 цифр)
//   - иначе                         -> текстовый поиск по нормализованной строке
func Classify(raw string) domain.SearchDecision {
	q := strings.TrimSpace(raw)
	if q == "" {
		return domain.SearchDecision{Mode: domain.SearchModeAll}
	}

	digits := nonDigits.ReplaceAllString(q, "")

	if numericLikePattern.MatchString(q) {
		if len(digits) >= domain.PostalCodeDigits {
			return domain.SearchDecision{
				Mode:       domain.SearchModeFullPostalCode,
				PostalCode: digits[:domain.PostalCodeDigits],
			}
		}
		if len(digits) > 0 {
			return domain.SearchDecision{Mode: domain.SearchModePartialPostalCode}
		}
		// Только пробелы и дефисы
		return domain.SearchDecision{Mode: domain.SearchModeAll}
	}

	return domain.SearchDecision{
		Mode:  domain.SearchModeFreeText,
		Query: domain.NormalizeText(q),
	}
}
