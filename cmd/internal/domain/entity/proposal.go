package entity

// ProposalInput is the loan proposal as typed by the user. It only lives for
// the duration of a single submission.
type ProposalInput struct {
	FullName string
	CPF      string
	Address  string

	// Value is nil when the user left the amount empty.
	Value *float64
}

// Proposal is a proposal as returned by the remote API after creation.
// Server-assigned fields are optional, the API is free to omit them.
type Proposal struct {
	ID        int64
	FullName  string
	CPF       string
	Address   string
	Value     float64
	Status    string
	CreatedAt string
}

type OutcomeStatus string

const (
	OutcomeSucceeded OutcomeStatus = "SUCCEEDED"
	OutcomeFailed    OutcomeStatus = "FAILED"
)

// Outcome is the explicit result of forwarding a proposal to the remote API.
// Proposals is only set on success.
type Outcome struct {
	Status       OutcomeStatus
	Proposals    []*Proposal
	Notification *Notification
}

func (o *Outcome) Succeeded() bool {
	return o.Status == OutcomeSucceeded
}
