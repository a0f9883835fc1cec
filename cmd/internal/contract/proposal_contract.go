package contract

import (
	"loanproposal/cmd/internal/domain/entity"
	"math"
	"strconv"
	"strings"
)

const (
	FullNameMaxLength = 29
	CPFMaxLength      = 11
	AddressMaxLength  = 50
)

const (
	FieldFullName = "full_name"
	FieldCPF      = "cpf"
	FieldAddress  = "address"
	FieldValue    = "value"
	FieldToken    = "submission_token"
)

// ProposalForm is the urlencoded body posted by the HTML form. Value stays a
// string so that an empty or unparsable amount can be told apart from zero.
type ProposalForm struct {
	FullName string `form:"full_name"`
	CPF      string `form:"cpf"`
	Address  string `form:"address"`
	Value    string `form:"value"`
	Token    string `form:"submission_token"`
}

func (f *ProposalForm) ToInput() *entity.ProposalInput {
	return &entity.ProposalInput{
		FullName: f.FullName,
		CPF:      f.CPF,
		Address:  f.Address,
		Value:    parseAmount(f.Value),
	}
}

// parseAmount returns nil for an empty amount and NaN for anything that is not
// a number, mirroring what a browser number input reports.
func parseAmount(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		value = math.NaN()
	}
	return &value
}

// ProposalRequest is the JSON body accepted by the API variant of the form.
type ProposalRequest struct {
	FullName string   `json:"full_name"`
	CPF      string   `json:"cpf"`
	Address  string   `json:"address"`
	Value    *float64 `json:"value"`
	Token    string   `json:"submission_token"`
}

func (r *ProposalRequest) ToInput() *entity.ProposalInput {
	return &entity.ProposalInput{
		FullName: r.FullName,
		CPF:      r.CPF,
		Address:  r.Address,
		Value:    r.Value,
	}
}

type SubmissionResponse struct {
	Token        string                `json:"submission_token"`
	State        string                `json:"state"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

type NotificationResponse struct {
	Kind         string `json:"kind"`
	Message      string `json:"message"`
	AutoCloseMs  int64  `json:"auto_close_ms"`
	Closable     bool   `json:"closable"`
	PauseOnHover bool   `json:"pause_on_hover"`
	Draggable    bool   `json:"draggable"`
}
