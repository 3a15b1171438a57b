package template

import (
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/interfaces"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// Registry holds the compliance templates loaded at process start.
// It is immutable after construction and safe for concurrent use
// without synchronization.
type Registry struct {
	templates map[types.TemplateID]*model.ComplianceTemplate
}

// NewRegistry builds a registry from the given providers. Each provider
// contributes one template; duplicate template IDs are a configuration
// error, never silently overwritten.
func NewRegistry(providers ...interfaces.TemplateProvider) (*Registry, error) {
	templates := make(map[types.TemplateID]*model.ComplianceTemplate, len(providers))

	for _, provider := range providers {
		tmpl, err := provider.Template()
		if err != nil {
			return nil, goerr.Wrap(err, "template provider failed")
		}
		if err := tmpl.Validate(); err != nil {
			return nil, goerr.Wrap(model.ErrInvalidTemplate, err.Error(),
				goerr.V("template", tmpl.ID))
		}
		if _, exists := templates[tmpl.ID]; exists {
			return nil, goerr.Wrap(model.ErrInvalidTemplate, "duplicate template ID",
				goerr.V("template", tmpl.ID))
		}
		templates[tmpl.ID] = tmpl
	}

	return &Registry{templates: templates}, nil
}

// Get returns the template for the given ID. Unknown IDs return
// ErrTemplateNotFound; no default template is substituted.
func (r *Registry) Get(id types.TemplateID) (*model.ComplianceTemplate, error) {
	tmpl, ok := r.templates[id]
	if !ok {
		return nil, goerr.Wrap(model.ErrTemplateNotFound, "unknown template",
			goerr.V("template", id))
	}
	return tmpl, nil
}

// List returns all registered templates sorted by ID
func (r *Registry) List() []*model.ComplianceTemplate {
	templates := make([]*model.ComplianceTemplate, 0, len(r.templates))
	for _, tmpl := range r.templates {
		templates = append(templates, tmpl)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].ID < templates[j].ID
	})
	return templates
}

// Len returns the number of registered templates
func (r *Registry) Len() int {
	return len(r.templates)
}
