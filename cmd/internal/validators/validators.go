package validators

import (
	"fmt"
	"loanproposal/cmd/internal/contract"
	"loanproposal/cmd/internal/domain/entity"
	"loanproposal/cmd/internal/i18n"
	customrules "loanproposal/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// Rule is a single check on a field: a validator tag and the message shown
// when the tag does not hold.
type Rule struct {
	Tag     string
	Message i18n.Key
	Args    []any
}

// FieldRules binds an ordered list of rules to one field of the proposal.
// Rules run in order and the first failing one wins.
type FieldRules struct {
	Field string
	Value func(in *entity.ProposalInput) any
	Rules []Rule
}

// ProposalRules is the whole proposal schema.
var ProposalRules = []FieldRules{
	{
		Field: contract.FieldFullName,
		Value: func(in *entity.ProposalInput) any { return in.FullName },
		Rules: []Rule{
			{Tag: "required", Message: i18n.FullNameRequired},
			{Tag: maxLen(contract.FullNameMaxLength), Message: i18n.FullNameTooLong, Args: []any{contract.FullNameMaxLength}},
		},
	},
	{
		Field: contract.FieldCPF,
		Value: func(in *entity.ProposalInput) any { return in.CPF },
		Rules: []Rule{
			{Tag: "required", Message: i18n.CPFRequired},
			{Tag: maxLen(contract.CPFMaxLength), Message: i18n.CPFTooLong, Args: []any{contract.CPFMaxLength}},
		},
	},
	{
		Field: contract.FieldAddress,
		Value: func(in *entity.ProposalInput) any { return in.Address },
		Rules: []Rule{
			{Tag: "required", Message: i18n.AddressRequired},
			{Tag: maxLen(contract.AddressMaxLength), Message: i18n.AddressTooLong, Args: []any{contract.AddressMaxLength}},
		},
	},
	{
		Field: contract.FieldValue,
		Value: func(in *entity.ProposalInput) any { return in.Value },
		Rules: []Rule{
			{Tag: "required", Message: i18n.ValueRequired},
			{Tag: "finite", Message: i18n.ValueNotNumber},
			{Tag: "gte=0", Message: i18n.ValueNegative},
		},
	},
}

func maxLen(n int) string {
	return fmt.Sprintf("max=%d", n)
}

// ValidationResult maps every offending field to the message of its first
// failing rule. An empty result means the proposal can be submitted.
type ValidationResult struct {
	Errors map[string]string
}

func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

type ProposalValidator struct {
	validate *validator.Validate
	rules    []FieldRules
}

// NewProposalValidator registers the custom rules the schema needs on validate.
func NewProposalValidator(validate *validator.Validate) *ProposalValidator {
	customrules.Register(validate)
	return &ProposalValidator{
		validate: validate,
		rules:    ProposalRules,
	}
}

// Validate checks the input against the schema. It does not touch the input
// and always yields the same result for the same input.
func (p *ProposalValidator) Validate(in *entity.ProposalInput, loc *i18n.Localizer) *ValidationResult {
	result := &ValidationResult{Errors: make(map[string]string)}

	for _, field := range p.rules {
		value := field.Value(in)
		for _, rule := range field.Rules {
			err := p.validate.Var(value, rule.Tag)
			if err == nil {
				continue
			}

			if _, ok := err.(validator.ValidationErrors); !ok {
				// Unknown tag or unsupported type, a programming error in the schema.
				log.Errorf("validator: rule %q on field %s failed to run: %v", rule.Tag, field.Field, err)
				result.Errors[field.Field] = loc.T(i18n.InvalidValue)
				break
			}

			result.Errors[field.Field] = loc.T(rule.Message, rule.Args...)
			break
		}
	}
	return result
}
