package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/interfaces"
	"github.com/scanlight-hq/scanlight/pkg/service/template"
	"github.com/urfave/cli/v3"
)

// Templates holds compliance template configuration
type Templates struct {
	FilePath string
}

// Flags returns CLI flags for Templates configuration
func (t *Templates) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "templates-file",
			Usage:       "YAML file with additional compliance templates",
			Category:    "Templates",
			Sources:     cli.EnvVars("SCANLIGHT_TEMPLATES_FILE"),
			Destination: &t.FilePath,
		},
	}
}

// Configure builds the template registry from the builtin providers plus
// any file-defined templates. The registry is immutable after this.
func (t *Templates) Configure() (*template.Registry, error) {
	providers := []interfaces.TemplateProvider{
		template.WCAG21Provider{},
		template.ADAProvider{},
		template.Section508Provider{},
	}

	if t.FilePath != "" {
		loaded, err := template.LoadFile(t.FilePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to load template file",
				goerr.V("path", t.FilePath))
		}
		providers = append(providers, template.Providers(loaded)...)
	}

	registry, err := template.NewRegistry(providers...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build template registry")
	}

	return registry, nil
}

// LogValue returns structured log value
func (t Templates) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("filePath", t.FilePath),
	)
}
