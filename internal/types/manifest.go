package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/confluentinc/cfnkit/internal/build_info"
)

const (
	ManifestFile = "manifest.json"
	NagSarifFile = "nag.sarif"
)

// Manifest describes one synth run: which stacks were written where.
type Manifest struct {
	RunID     string          `json:"run_id"`
	App       string          `json:"app"`
	BuildInfo BuildInfo       `json:"cfnkit_build_info"`
	Timestamp time.Time       `json:"timestamp"`
	Stacks    []ManifestStack `json:"stacks"`
	// NagSarif is the SARIF log of every nag report of the run.
	NagSarif string `json:"nag_sarif,omitempty"`
}

type ManifestStack struct {
	Name          string   `json:"name"`
	TemplateFile  string   `json:"template_file"`
	TemplateHash  string   `json:"template_hash"`
	ResourceCount int      `json:"resource_count"`
	NagReports    []string `json:"nag_reports,omitempty"`
}

func NewManifest(app string) *Manifest {
	return &Manifest{
		RunID: uuid.NewString(),
		App:   app,
		BuildInfo: BuildInfo{
			Version: build_info.Version,
			Commit:  build_info.Commit,
			Date:    build_info.Date,
		},
		Timestamp: time.Now().UTC(),
		Stacks:    []ManifestStack{},
	}
}

// Stack returns the manifest entry for a stack.
func (m *Manifest) Stack(name string) (*ManifestStack, bool) {
	for i := range m.Stacks {
		if m.Stacks[i].Name == name {
			return &m.Stacks[i], true
		}
	}
	return nil, false
}
