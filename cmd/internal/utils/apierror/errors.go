package apierror

import "net/http"

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedJSONError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")

	DuplicateSubmissionError = NewSimple(http.StatusConflict, "This proposal is already being submitted")
)

// FromFieldErrors turns the per-field messages of a failed validation into a
// structured 422 response. Nil is returned when there is nothing to report.
func FromFieldErrors(problems map[string]string) *StructuredError {
	if len(problems) == 0 {
		return nil
	}

	structured := NewStructured(http.StatusUnprocessableEntity)
	for field, problem := range problems {
		structured.Add(field, problem)
	}
	return structured
}

func NewSimple(status int, msg string) *APIError {
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}
