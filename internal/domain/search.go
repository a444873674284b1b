package domain

// SearchMode determines how a raw search query is interpreted.
type SearchMode string

const (
	// SearchModeAll - пустой запрос, показываем полный список юнитов
	SearchModeAll SearchMode = "all"
	// SearchModePartialPostalCode - числовой запрос из 1-7 цифр (недобранный CEP),
	// намеренно ведёт себя как SearchModeAll, чтобы список не "мигал" при вводе
	SearchModePartialPostalCode SearchMode = "partial_postal_code"
	// SearchModeFullPostalCode - полный CEP из 8 цифр, запускает геокодирование
	SearchModeFullPostalCode SearchMode = "full_postal_code"
	// SearchModeFreeText - текстовый поиск по нормализованной подстроке
	SearchModeFreeText SearchMode = "free_text"
)

// SearchDecision is the classified form of one raw query string.
// Produced per keystroke and never persisted.
type SearchDecision struct {
	Mode SearchMode
	// PostalCode holds exactly 8 digits when Mode is SearchModeFullPostalCode
	PostalCode string
	// Query holds the normalized (lower-cased, diacritic-free) text when
	// Mode is SearchModeFreeText
	Query string
}

// Narrows reports whether the decision actually narrows the unit list.
// All and PartialPostalCode both keep the full list.
func (d SearchDecision) Narrows() bool {
	return d.Mode == SearchModeFullPostalCode || d.Mode == SearchModeFreeText
}
