package handler

import (
	"context"
	"errors"
	"loanproposal/cmd/internal/contract"
	"loanproposal/cmd/internal/domain/entity"
	"loanproposal/cmd/internal/http/view"
	"loanproposal/cmd/internal/i18n"
	"loanproposal/cmd/internal/service"
	"loanproposal/cmd/internal/utils/apierror"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type ProposalService interface {
	Process(ctx context.Context, token string, in *entity.ProposalInput, loc *i18n.Localizer) (*entity.Submission, error)
}

type DefaultProposalRoute struct {
	ProposalService ProposalService
	Languages       *i18n.Negotiator
}

func NewProposalRoute(proposalService ProposalService, languages *i18n.Negotiator) *DefaultProposalRoute {
	return &DefaultProposalRoute{
		ProposalService: proposalService,
		Languages:       languages,
	}
}

func (p *DefaultProposalRoute) ShowForm(c echo.Context) error {
	page := &view.FormPage{
		Loc:   p.localizer(c),
		Token: uuid.NewString(),
	}
	return c.Render(http.StatusOK, view.FormTemplate, page)
}

func (p *DefaultProposalRoute) SubmitForm(c echo.Context) error {
	loc := p.localizer(c)

	var form contract.ProposalForm
	if err := c.Bind(&form); err != nil {
		log.Warnf("failed to bind proposal form: %v", err)
		page := &view.FormPage{
			Loc:          loc,
			Token:        uuid.NewString(),
			Notification: entity.NewNotification(entity.NotificationError, loc.T(i18n.GenericError)),
		}
		return c.Render(http.StatusBadRequest, view.FormTemplate, page)
	}

	page := &view.FormPage{
		Loc:    loc,
		Token:  uuid.NewString(),
		Values: form,
	}

	sub, err := p.ProposalService.Process(c.Request().Context(), form.Token, form.ToInput(), loc)
	if errors.Is(err, service.ErrDuplicateSubmission) {
		return c.Render(http.StatusConflict, view.FormTemplate, page)
	}
	if err != nil {
		log.Errorf("failed to process proposal form: %v", err)
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}

	page.Errors = sub.Errors
	page.Notification = sub.Notification()

	switch sub.State() {
	case entity.StateSucceeded:
		page.Values = contract.ProposalForm{}
	case entity.StateIdle:
		return c.Render(http.StatusUnprocessableEntity, view.FormTemplate, page)
	}
	return c.Render(http.StatusOK, view.FormTemplate, page)
}

func (p *DefaultProposalRoute) CreateProposal(c echo.Context) error {
	loc := p.localizer(c)

	var req contract.ProposalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	sub, err := p.ProposalService.Process(c.Request().Context(), req.Token, req.ToInput(), loc)
	if errors.Is(err, service.ErrDuplicateSubmission) {
		apierr := apierror.DuplicateSubmissionError
		return c.JSON(apierr.Code(), apierr)
	}
	if err != nil {
		log.Errorf("failed to process proposal: %v", err)
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}

	if apierr := apierror.FromFieldErrors(sub.Errors); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, toSubmissionResp(sub))
}

func (p *DefaultProposalRoute) localizer(c echo.Context) *i18n.Localizer {
	return p.Languages.Localizer(c.Request().Header.Get("Accept-Language"))
}

func toSubmissionResp(sub *entity.Submission) *contract.SubmissionResponse {
	return &contract.SubmissionResponse{
		Token:        sub.Token,
		State:        string(sub.State()),
		Notification: toNotificationResp(sub.Notification()),
	}
}

func toNotificationResp(n *entity.Notification) *contract.NotificationResponse {
	if n == nil {
		return nil
	}
	return &contract.NotificationResponse{
		Kind:         string(n.Kind),
		Message:      n.Message,
		AutoCloseMs:  n.AutoClose.Milliseconds(),
		Closable:     n.Closable,
		PauseOnHover: n.PauseOnHover,
		Draggable:    n.Draggable,
	}
}
