package validators

import (
	"loanproposal/cmd/internal/domain/entity"
	"loanproposal/cmd/internal/i18n"
	"math"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v float64) *float64 {
	return &v
}

func validInput() *entity.ProposalInput {
	return &entity.ProposalInput{
		FullName: "Jane Doe",
		CPF:      "12345678901",
		Address:  "123 Main St",
		Value:    amount(1500.0),
	}
}

func newValidator() *ProposalValidator {
	return NewProposalValidator(validator.New())
}

func TestValidate_AcceptsValidInput(t *testing.T) {
	result := newValidator().Validate(validInput(), i18n.New(i18n.BrazilianPortuguese))

	assert.True(t, result.Valid())
	assert.Empty(t, result.Errors)
}

func TestValidate_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *entity.ProposalInput)
		field  string
		valid  bool
	}{
		{
			name:   "full name with 29 characters",
			mutate: func(in *entity.ProposalInput) { in.FullName = strings.Repeat("a", 29) },
			valid:  true,
		},
		{
			name:   "full name with 30 characters",
			mutate: func(in *entity.ProposalInput) { in.FullName = strings.Repeat("a", 30) },
			field:  "full_name",
		},
		{
			name:   "full name with 29 multi-byte characters",
			mutate: func(in *entity.ProposalInput) { in.FullName = strings.Repeat("é", 29) },
			valid:  true,
		},
		{
			name:   "cpf with 11 characters",
			mutate: func(in *entity.ProposalInput) { in.CPF = "12345678901" },
			valid:  true,
		},
		{
			name:   "cpf with 12 characters",
			mutate: func(in *entity.ProposalInput) { in.CPF = "123456789012" },
			field:  "cpf",
		},
		{
			name:   "cpf is not checked for digits",
			mutate: func(in *entity.ProposalInput) { in.CPF = "abc" },
			valid:  true,
		},
		{
			name:   "address with 50 characters",
			mutate: func(in *entity.ProposalInput) { in.Address = strings.Repeat("r", 50) },
			valid:  true,
		},
		{
			name:   "address with 51 characters",
			mutate: func(in *entity.ProposalInput) { in.Address = strings.Repeat("r", 51) },
			field:  "address",
		},
		{
			name:   "value zero",
			mutate: func(in *entity.ProposalInput) { in.Value = amount(0) },
			valid:  true,
		},
		{
			name:   "value slightly negative",
			mutate: func(in *entity.ProposalInput) { in.Value = amount(-0.01) },
			field:  "value",
		},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			result := v.Validate(in, i18n.New(i18n.BrazilianPortuguese))
			if tt.valid {
				assert.True(t, result.Valid(), "unexpected errors: %v", result.Errors)
				return
			}

			assert.False(t, result.Valid())
			assert.Len(t, result.Errors, 1)
			assert.Contains(t, result.Errors, tt.field)
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(in *entity.ProposalInput)
		field    string
		expected string
	}{
		{
			name:     "empty full name",
			mutate:   func(in *entity.ProposalInput) { in.FullName = "" },
			field:    "full_name",
			expected: "Nome é obrigatório",
		},
		{
			name:     "long full name",
			mutate:   func(in *entity.ProposalInput) { in.FullName = strings.Repeat("a", 30) },
			field:    "full_name",
			expected: "Nome deve ter no máximo 29 caracteres",
		},
		{
			name:     "empty cpf",
			mutate:   func(in *entity.ProposalInput) { in.CPF = "" },
			field:    "cpf",
			expected: "CPF é obrigatório",
		},
		{
			name:     "empty address",
			mutate:   func(in *entity.ProposalInput) { in.Address = "" },
			field:    "address",
			expected: "Endereço é obrigatório",
		},
		{
			name:     "missing value stops at required",
			mutate:   func(in *entity.ProposalInput) { in.Value = nil },
			field:    "value",
			expected: "Valor é obrigatório",
		},
		{
			name:     "value that is not a number",
			mutate:   func(in *entity.ProposalInput) { in.Value = amount(math.NaN()) },
			field:    "value",
			expected: "Valor deve ser um número",
		},
		{
			name:     "infinite value",
			mutate:   func(in *entity.ProposalInput) { in.Value = amount(math.Inf(1)) },
			field:    "value",
			expected: "Valor deve ser um número",
		},
		{
			name:     "negative value",
			mutate:   func(in *entity.ProposalInput) { in.Value = amount(-10) },
			field:    "value",
			expected: "Valor não pode ser negativo",
		},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			result := v.Validate(in, i18n.New(i18n.BrazilianPortuguese))
			assert.Equal(t, tt.expected, result.Errors[tt.field])
		})
	}
}

func TestValidate_ReportsEveryInvalidField(t *testing.T) {
	in := &entity.ProposalInput{
		FullName: "",
		CPF:      strings.Repeat("1", 12),
		Address:  "",
		Value:    amount(-1),
	}

	result := newValidator().Validate(in, i18n.New(i18n.English))

	require.Len(t, result.Errors, 4)
	assert.Equal(t, "Name is required", result.Errors["full_name"])
	assert.Equal(t, "CPF must be at most 11 characters long", result.Errors["cpf"])
	assert.Equal(t, "Address is required", result.Errors["address"])
	assert.Equal(t, "Amount cannot be negative", result.Errors["value"])
}

func TestValidate_IsIdempotent(t *testing.T) {
	v := newValidator()
	loc := i18n.New(i18n.BrazilianPortuguese)
	in := &entity.ProposalInput{FullName: strings.Repeat("x", 40), CPF: "1"}

	first := v.Validate(in, loc)
	second := v.Validate(in, loc)

	assert.Equal(t, first, second)
	assert.Equal(t, strings.Repeat("x", 40), in.FullName)
	assert.Nil(t, in.Value)
}
