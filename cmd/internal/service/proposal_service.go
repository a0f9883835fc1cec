package service

import (
	"context"
	"errors"
	"loanproposal/cmd/internal/domain/entity"
	"loanproposal/cmd/internal/i18n"
	"loanproposal/cmd/internal/infrastructure/proposalapi"
	"loanproposal/cmd/internal/metrics"
	"loanproposal/cmd/internal/validators"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

var ErrDuplicateSubmission = errors.New("submission already in flight")

type ProposalAPI interface {
	CreateProposal(ctx context.Context, in *entity.ProposalInput) ([]*entity.Proposal, error)
}

type DefaultProposalService struct {
	API       ProposalAPI
	Validator *validators.ProposalValidator
	Metrics   *metrics.Metrics

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewProposalService(api ProposalAPI, validator *validators.ProposalValidator, m *metrics.Metrics) *DefaultProposalService {
	return &DefaultProposalService{
		API:       api,
		Validator: validator,
		Metrics:   m,
		inFlight:  make(map[string]struct{}),
	}
}

func (p *DefaultProposalService) Validate(in *entity.ProposalInput, loc *i18n.Localizer) *validators.ValidationResult {
	return p.Validator.Validate(in, loc)
}

// Submit forwards an already validated proposal. It never fails: transport
// and API errors are logged and turned into the generic error notification.
func (p *DefaultProposalService) Submit(ctx context.Context, in *entity.ProposalInput, loc *i18n.Localizer) *entity.Outcome {
	start := time.Now()
	proposals, err := p.API.CreateProposal(ctx, in)
	if err != nil {
		p.Metrics.APIDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		log.Errorf("failed to create proposal: %v", err)
		return &entity.Outcome{
			Status:       entity.OutcomeFailed,
			Notification: entity.NewNotification(entity.NotificationError, loc.T(i18n.GenericError)),
		}
	}

	p.Metrics.APIDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
	return &entity.Outcome{
		Status:       entity.OutcomeSucceeded,
		Proposals:    proposals,
		Notification: entity.NewNotification(entity.NotificationSuccess, loc.T(i18n.ProposalCreated)),
	}
}

// Process runs one press of the submit button through the form states. The
// proposal only reaches the API when every field is valid, and at most once
// per token while a previous attempt with the same token is still running.
func (p *DefaultProposalService) Process(ctx context.Context, token string, in *entity.ProposalInput, loc *i18n.Localizer) (*entity.Submission, error) {
	if token == "" {
		token = uuid.NewString()
	}
	sub := entity.NewSubmission(token)

	if err := sub.Advance(entity.StateValidating); err != nil {
		return nil, err
	}

	result := p.Validate(in, loc)
	if !result.Valid() {
		sub.Errors = result.Errors
		for field := range result.Errors {
			p.Metrics.ValidationFailures.WithLabelValues(field).Inc()
		}
		p.Metrics.Submissions.WithLabelValues(string(entity.StateIdle)).Inc()
		return sub, sub.Advance(entity.StateIdle)
	}

	if err := sub.Advance(entity.StateSubmitting); err != nil {
		return nil, err
	}

	if !p.acquire(token) {
		log.Warnf("dropping duplicate submission %s", token)
		return sub, ErrDuplicateSubmission
	}
	defer p.release(token)

	sub.Outcome = p.Submit(proposalapi.WithRequestID(ctx, token), in, loc)

	final := entity.StateFailed
	if sub.Outcome.Succeeded() {
		final = entity.StateSucceeded
	}
	p.Metrics.Submissions.WithLabelValues(string(final)).Inc()
	return sub, sub.Advance(final)
}

func (p *DefaultProposalService) acquire(token string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.inFlight[token]; ok {
		return false
	}
	p.inFlight[token] = struct{}{}
	return true
}

func (p *DefaultProposalService) release(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.inFlight, token)
}
