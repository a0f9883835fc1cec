package view

import (
	"embed"
	"html/template"
	"io"
	"loanproposal/cmd/internal/contract"
	"loanproposal/cmd/internal/domain/entity"
	"loanproposal/cmd/internal/i18n"

	"github.com/labstack/echo/v4"
)

const FormTemplate = "form.html"

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer plugs the embedded templates into echo.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// FormPage is everything the proposal form template needs.
type FormPage struct {
	Loc          *i18n.Localizer
	Token        string
	Values       contract.ProposalForm
	Errors       map[string]string
	Notification *entity.Notification
}

func (p *FormPage) Lang() string {
	return p.Loc.Tag().String()
}

func (p *FormPage) T(key i18n.Key) string {
	return p.Loc.T(key)
}
