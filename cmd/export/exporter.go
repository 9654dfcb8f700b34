package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/confluentinc/cfnkit/internal/services/hcl"
	"github.com/confluentinc/cfnkit/internal/services/persistence"
	"github.com/confluentinc/cfnkit/internal/utils"
)

type ExporterOpts struct {
	Template  string
	StackName string
	Region    string
	OutDir    string
}

// Exporter converts a template into a Terraform configuration directory.
type Exporter struct {
	opts  ExporterOpts
	store persistence.Service
}

func NewExporter(opts ExporterOpts) *Exporter {
	if opts.StackName == "" {
		base := filepath.Base(opts.Template)
		opts.StackName = utils.CleanPathName(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	return &Exporter{opts: opts, store: persistence.NewDirService(opts.OutDir)}
}

// Run returns the names of the files written.
func (e *Exporter) Run() ([]string, error) {
	slog.Info("🏁 exporting template to terraform", "template", e.opts.Template, "region", e.opts.Region)

	tmpl, err := utils.LoadTemplate(e.opts.Template)
	if err != nil {
		return nil, err
	}
	if err := tmpl.Validate(); err != nil {
		return nil, fmt.Errorf("template is invalid: %w", err)
	}

	files, err := hcl.NewTerraformExportService(e.opts.Region, e.opts.StackName).GenerateTerraformFiles(tmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate terraform: %w", err)
	}

	contents := files.Files()
	names := make([]string, 0, len(contents))
	for name := range contents {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := e.store.WriteFile(name, []byte(contents[name])); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
		slog.Debug("📝 wrote terraform file", "file", e.store.Path(name))
	}

	slog.Info("✅ terraform export complete", "directory", e.opts.OutDir, "files", len(names))
	return names, nil
}
