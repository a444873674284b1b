package domain

import "strings"

// diacriticFold maps accented Latin letters used in pt-BR text to
// their base letters. Covers the Latin-1 supplement plus the few
// extras that appear in Brazilian place names.
var diacriticFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n', 'ý': 'y', 'ÿ': 'y',
}

// NormalizeText lower-cases s and strips diacritics, so that searches
// are case- and accent-insensitive ("São Paulo" matches "sao paulo").
func NormalizeText(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if folded, ok := diacriticFold[r]; ok {
			b.WriteRune(folded)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MatchesText reports whether unit u matches the normalized query nq
// by substring over any of its searchable address fields.
func (u *Unit) MatchesText(nq string) bool {
	a := u.Address
	fields := []string{
		u.Name,
		deref(a.City),
		deref(a.State),
		deref(a.PostalCode),
		deref(a.Street),
		deref(a.Number),
	}
	for _, f := range fields {
		if strings.Contains(NormalizeText(f), nq) {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
