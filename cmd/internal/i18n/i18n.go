// Package i18n holds the user-facing strings of the proposal form and picks
// the language to render them in.
package i18n

import (
	"errors"
	"fmt"

	"github.com/labstack/gommon/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type Key string

const (
	FullNameRequired Key = "full_name.required"
	FullNameTooLong  Key = "full_name.max"
	CPFRequired      Key = "cpf.required"
	CPFTooLong       Key = "cpf.max"
	AddressRequired  Key = "address.required"
	AddressTooLong   Key = "address.max"
	ValueRequired    Key = "value.required"
	ValueNotNumber   Key = "value.finite"
	ValueNegative    Key = "value.gte"
	InvalidValue     Key = "invalid"

	ProposalCreated Key = "toast.created"
	GenericError    Key = "toast.error"

	PageTitle           Key = "page.title"
	LabelFullName       Key = "label.full_name"
	LabelCPF            Key = "label.cpf"
	LabelAddress        Key = "label.address"
	LabelValue          Key = "label.value"
	PlaceholderFullName Key = "placeholder.full_name"
	PlaceholderCPF      Key = "placeholder.cpf"
	PlaceholderAddress  Key = "placeholder.address"
	PlaceholderValue    Key = "placeholder.value"
	SubmitButton        Key = "button.submit"
)

var (
	BrazilianPortuguese = language.BrazilianPortuguese
	English             = language.English

	messages = map[language.Tag]map[Key]string{
		BrazilianPortuguese: {
			FullNameRequired: "Nome é obrigatório",
			FullNameTooLong:  "Nome deve ter no máximo %d caracteres",
			CPFRequired:      "CPF é obrigatório",
			CPFTooLong:       "CPF deve ter no máximo %d caracteres",
			AddressRequired:  "Endereço é obrigatório",
			AddressTooLong:   "Endereço deve ter no máximo %d caracteres",
			ValueRequired:    "Valor é obrigatório",
			ValueNotNumber:   "Valor deve ser um número",
			ValueNegative:    "Valor não pode ser negativo",
			InvalidValue:     "Valor inválido",

			ProposalCreated: "Proposta criada com sucesso!",
			GenericError:    "Ocorreu um erro, tente novamente mais tarde.",

			PageTitle:           "Proposta de Empréstimo",
			LabelFullName:       "Nome Completo",
			LabelCPF:            "CPF",
			LabelAddress:        "Endereço",
			LabelValue:          "Valor do Empréstimo Pretendido",
			PlaceholderFullName: "Digite seu nome completo",
			PlaceholderCPF:      "Digite seu CPF",
			PlaceholderAddress:  "Digite seu endereço",
			PlaceholderValue:    "Digite o valor",
			SubmitButton:        "Enviar Proposta",
		},
		English: {
			FullNameRequired: "Name is required",
			FullNameTooLong:  "Name must be at most %d characters long",
			CPFRequired:      "CPF is required",
			CPFTooLong:       "CPF must be at most %d characters long",
			AddressRequired:  "Address is required",
			AddressTooLong:   "Address must be at most %d characters long",
			ValueRequired:    "Amount is required",
			ValueNotNumber:   "Amount must be a number",
			ValueNegative:    "Amount cannot be negative",
			InvalidValue:     "Invalid value",

			ProposalCreated: "Proposal created successfully!",
			GenericError:    "Something went wrong, please try again later.",

			PageTitle:           "Loan Proposal",
			LabelFullName:       "Full Name",
			LabelCPF:            "CPF",
			LabelAddress:        "Address",
			LabelValue:          "Requested Loan Amount",
			PlaceholderFullName: "Enter your full name",
			PlaceholderCPF:      "Enter your CPF",
			PlaceholderAddress:  "Enter your address",
			PlaceholderValue:    "Enter the amount",
			SubmitButton:        "Submit Proposal",
		},
	}

	cat = loadCatalog()
)

func loadCatalog() catalog.Catalog {
	b, err := buildCatalog(messages)
	if err != nil {
		log.Errorf("i18n: some messages failed to compile: %v", err)
	}
	return b
}

// buildCatalog registers every message. A message that fails to compile is
// still registered in its degraded form, and its error is returned alongside.
func buildCatalog(msgs map[language.Tag]map[Key]string) (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(BrazilianPortuguese))

	var errs []error
	for tag, byKey := range msgs {
		for key, msg := range byKey {
			if err := b.SetString(tag, string(key), msg); err != nil {
				errs = append(errs, fmt.Errorf("%s %s: %w", tag, key, err))
			}
		}
	}
	return b, errors.Join(errs...)
}

// Localizer renders catalog keys in a single language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

func New(tag language.Tag) *Localizer {
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

func (l *Localizer) Tag() language.Tag {
	return l.tag
}

func (l *Localizer) T(key Key, args ...any) string {
	return l.printer.Sprintf(string(key), args...)
}

// Negotiator maps an Accept-Language header to one of the supported languages.
type Negotiator struct {
	supported []language.Tag
	matcher   language.Matcher
}

// NewNegotiator builds a negotiator whose fallback is def. Unsupported
// defaults fall back to Brazilian Portuguese.
func NewNegotiator(def language.Tag) *Negotiator {
	if _, ok := messages[def]; !ok {
		def = BrazilianPortuguese
	}

	supported := []language.Tag{def}
	for _, tag := range []language.Tag{BrazilianPortuguese, English} {
		if tag != def {
			supported = append(supported, tag)
		}
	}

	return &Negotiator{
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}
}

func (n *Negotiator) Default() *Localizer {
	return New(n.supported[0])
}

func (n *Negotiator) Localizer(acceptLanguage string) *Localizer {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return n.Default()
	}

	_, idx, conf := n.matcher.Match(tags...)
	if conf == language.No {
		return n.Default()
	}
	return New(n.supported[idx])
}
