package interfaces

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
)

// TemplateProvider supplies one compliance template. Each supported
// standard registers its own provider; adding a standard means adding a
// provider, not editing a switch.
type TemplateProvider interface {
	// Template returns the provider's compliance template. The returned
	// value is treated as immutable after registry construction.
	Template() (*model.ComplianceTemplate, error)
}
