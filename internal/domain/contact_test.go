package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "11900000000", PhoneDigits("(11) 90000-0000"))
	assert.Equal(t, "1133334444", PhoneDigits("11 3333-4444"))
	assert.Equal(t, "", PhoneDigits("abc"))
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name       string
		inputName  string
		inputPhone string
		wantFields []string
	}{
		{
			name:       "valid mobile",
			inputName:  "Maria Silva",
			inputPhone: "(11) 91234-5678",
			wantFields: nil,
		},
		{
			name:       "valid landline",
			inputName:  "João",
			inputPhone: "11 3333-4444",
			wantFields: nil,
		},
		{
			name:       "empty name",
			inputName:  "   ",
			inputPhone: "(11) 91234-5678",
			wantFields: []string{"name"},
		},
		{
			name:       "name too short",
			inputName:  "Jo",
			inputPhone: "(11) 91234-5678",
			wantFields: []string{"name"},
		},
		{
			name:       "empty phone",
			inputName:  "Maria Silva",
			inputPhone: "",
			wantFields: []string{"phone"},
		},
		{
			name:       "phone too short",
			inputName:  "Maria Silva",
			inputPhone: "1234",
			wantFields: []string{"phone"},
		},
		{
			name:       "phone too long",
			inputName:  "Maria Silva",
			inputPhone: "551190000000099",
			wantFields: []string{"phone"},
		},
		{
			name:       "both invalid",
			inputName:  "",
			inputPhone: "12",
			wantFields: []string{"name", "phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateContact(tt.inputName, tt.inputPhone)

			require.Len(t, errs, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, errs[i].Field)
				assert.NotEmpty(t, errs[i].Message)
			}
		})
	}
}

func TestValidateContact_AccentedNameLength(t *testing.T) {
	// Длина меряется в рунах: "Zoé" - три символа, валидно
	errs := ValidateContact("Zoé", "(11) 91234-5678")
	assert.Empty(t, errs)
}
