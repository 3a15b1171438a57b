package template

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/interfaces"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// templatesFile is the YAML shape of an external template definition file
type templatesFile struct {
	Templates []model.ComplianceTemplate `yaml:"templates"`
}

// LoadFile reads and validates a YAML template definition file.
// Each loaded template becomes its own registry entry.
func LoadFile(path string) ([]*model.ComplianceTemplate, error) {
	if path == "" {
		return nil, goerr.New("template file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "template file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read template file",
			goerr.V("path", path))
	}

	var file templatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse template YAML",
			goerr.V("path", path))
	}
	if len(file.Templates) == 0 {
		return nil, goerr.New("template file defines no templates",
			goerr.V("path", path))
	}

	templates := make([]*model.ComplianceTemplate, 0, len(file.Templates))
	for i := range file.Templates {
		tmpl := &file.Templates[i]
		if err := tmpl.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid template in file",
				goerr.V("path", path),
				goerr.V("index", i))
		}
		templates = append(templates, tmpl)
	}

	return templates, nil
}

// Providers wraps loaded templates as registry providers
func Providers(templates []*model.ComplianceTemplate) []interfaces.TemplateProvider {
	providers := make([]interfaces.TemplateProvider, 0, len(templates))
	for _, tmpl := range templates {
		providers = append(providers, staticProvider{tmpl: tmpl})
	}
	return providers
}

// staticProvider serves a pre-loaded template
type staticProvider struct {
	tmpl *model.ComplianceTemplate
}

// Template returns the wrapped template
func (p staticProvider) Template() (*model.ComplianceTemplate, error) {
	return p.tmpl, nil
}
