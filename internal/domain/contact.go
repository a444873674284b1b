package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldError is a per-field validation message surfaced to the user.
type FieldError struct {
	Field   string
	Message string
}

var phoneDigitsOnly = regexp.MustCompile(`\D+`)

// PhoneDigits strips everything but digits from a phone input
func PhoneDigits(raw string) string {
	return phoneDigitsOnly.ReplaceAllString(raw, "")
}

// ValidateContact checks the contact sub-form: non-empty name of at
// least MinNameLength runes and a BR phone of 10-11 digits.
// Returns one message per failing field; empty slice means valid.
func ValidateContact(name, phone string) []FieldError {
	errs := make([]FieldError, 0)

	trimmedName := strings.TrimSpace(name)
	switch {
	case trimmedName == "":
		errs = append(errs, FieldError{Field: "name", Message: "Nome é obrigatório."})
	case utf8.RuneCountInString(trimmedName) < MinNameLength:
		errs = append(errs, FieldError{Field: "name", Message: "Nome precisa de pelo menos 3 caracteres."})
	}

	digits := PhoneDigits(phone)
	switch {
	case digits == "":
		errs = append(errs, FieldError{Field: "phone", Message: "Telefone é obrigatório."})
	case len(digits) < MinPhoneDigits || len(digits) > MaxPhoneDigits:
		errs = append(errs, FieldError{Field: "phone", Message: "Telefone inválido. Ex.: (11) 90000-0000"})
	}

	return errs
}
