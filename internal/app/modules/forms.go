package modules

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"formgate.io/formgate/internal/api/handlers"
	"formgate.io/formgate/internal/render"
	"formgate.io/formgate/internal/service"
)

// FormsModule owns the form template catalog and the signed document
// renderer. The renderer is stateless, so one instance is shared by every
// request through the render worker pool.
type FormsModule struct {
	templates         *service.TemplateService
	renderer          *render.Renderer
	maxAttachmentSize int64
}

// NewFormsModule creates the forms module from shared infrastructure.
func NewFormsModule(infra *Infrastructure) (*FormsModule, error) {
	if infra == nil || infra.EntClient == nil || infra.Config == nil {
		return nil, fmt.Errorf("forms module requires ent client and config")
	}

	cfg := infra.Config
	return &FormsModule{
		templates: service.NewTemplateService(infra.EntClient, cfg.Forms.RevisionPrefix),
		renderer: render.NewRenderer(render.OrgIdentity{
			Name:    cfg.Org.Name,
			Address: cfg.Org.Address,
			Contact: cfg.Org.Contact,
		}),
		maxAttachmentSize: cfg.Forms.MaxAttachmentSize,
	}, nil
}

// Templates exposes the template service for modules wired after this one.
func (m *FormsModule) Templates() *service.TemplateService { return m.templates }

func (m *FormsModule) Name() string { return "forms" }

func (m *FormsModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Templates = m.templates
	deps.Renderer = m.renderer
	deps.MaxAttachmentSize = m.maxAttachmentSize
}

func (m *FormsModule) RegisterWorkers(_ *river.Workers) {}

func (m *FormsModule) Shutdown(context.Context) error { return nil }
